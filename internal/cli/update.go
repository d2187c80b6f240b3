package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vvka-141/userdb/internal/tui"
	"github.com/vvka-141/userdb/pkg/userdb"
)

var updateCmd = &cobra.Command{
	Use:   "update <user-id>",
	Short: "Update a user's name and/or email",
	Long: `Update changes only the fields you provide; omitted fields keep
their current values.

When neither --name nor --email is given and a terminal is attached, an
interactive form opens pre-filled with the current values.

Exits with code 13 if no user with the given ID exists.

Examples:
  userdb update 6f1c9a70-1111-4a9b-9e1e-0f6d6c2a9b01 --email new@example.com
  userdb update 6f1c9a70-1111-4a9b-9e1e-0f6d6c2a9b01 --name "Grace Hopper" --email grace@example.com
  userdb update 6f1c9a70-1111-4a9b-9e1e-0f6d6c2a9b01    # interactive form`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

var updateFlags struct {
	conn    connFlagValues
	name    string
	email   string
	json    bool
	timeout time.Duration
}

func init() {
	rootCmd.AddCommand(updateCmd)
	addConnectionFlags(updateCmd, &updateFlags.conn)
	updateCmd.Flags().StringVar(&updateFlags.name, "name", "", "New name (unchanged if omitted)")
	updateCmd.Flags().StringVar(&updateFlags.email, "email", "", "New email (unchanged if omitted)")
	updateCmd.Flags().BoolVar(&updateFlags.json, "json", false, "Output as JSON")
	updateCmd.Flags().DurationVar(&updateFlags.timeout, "timeout", time.Minute, "Command timeout")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)

	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid user ID %q: %w", args[0], userdb.ErrInvalidInput)
	}

	ctx, cancel := commandContext(updateFlags.timeout)
	defer cancel()

	users, cleanup, err := openStore(ctx, &updateFlags.conn, verbose)
	if err != nil {
		return err
	}
	defer cleanup()

	patch := userdb.UserUpdate{}
	if cmd.Flags().Changed("name") {
		patch.Name = &updateFlags.name
	}
	if cmd.Flags().Changed("email") {
		patch.Email = &updateFlags.email
	}

	// No field flags: open the form pre-filled with current values.
	if patch.Name == nil && patch.Email == nil && tui.IsInteractive() {
		current, err := users.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return fmt.Errorf("user %s: %w", id, userdb.ErrNotFound)
		}

		result, err := tui.RunUserForm("Update user", current.Name, current.Email)
		if err != nil {
			return err
		}
		if result.Cancelled {
			fmt.Fprintln(os.Stderr, "Cancelled.")
			return nil
		}
		if result.Name != current.Name {
			patch.Name = &result.Name
		}
		if result.Email != current.Email {
			patch.Email = &result.Email
		}
		if patch.Name == nil && patch.Email == nil {
			fmt.Fprintln(os.Stderr, "Nothing changed.")
			return nil
		}
	}

	if err := patch.Validate(); err != nil {
		return err
	}

	updated, err := users.Update(ctx, id, patch)
	if err != nil {
		return err
	}
	if updated == nil {
		return fmt.Errorf("user %s: %w", id, userdb.ErrNotFound)
	}

	if updateFlags.json {
		return printJSON(os.Stdout, toView(updated))
	}
	success(os.Stdout, "Updated user %s", updated.ID)
	renderUser(os.Stdout, updated)
	return nil
}
