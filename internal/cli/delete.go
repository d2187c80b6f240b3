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

var deleteCmd = &cobra.Command{
	Use:   "delete <user-id>",
	Short: "Delete a user",
	Long: `Delete removes a user row and prints the row as it was before
deletion.

Asks for confirmation on a terminal unless --force is given.
Exits with code 13 if no user with the given ID exists.

Examples:
  userdb delete 6f1c9a70-1111-4a9b-9e1e-0f6d6c2a9b01
  userdb delete 6f1c9a70-1111-4a9b-9e1e-0f6d6c2a9b01 --force`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

var deleteFlags struct {
	conn    connFlagValues
	force   bool
	json    bool
	timeout time.Duration
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	addConnectionFlags(deleteCmd, &deleteFlags.conn)
	deleteCmd.Flags().BoolVar(&deleteFlags.force, "force", false,
		"Skip the interactive confirmation prompt\n"+
			"Use in CI/CD pipelines")
	deleteCmd.Flags().BoolVar(&deleteFlags.json, "json", false, "Output the deleted row as JSON")
	deleteCmd.Flags().DurationVar(&deleteFlags.timeout, "timeout", time.Minute, "Command timeout")
}

func runDelete(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)

	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid user ID %q: %w", args[0], userdb.ErrInvalidInput)
	}

	if !deleteFlags.force && tui.IsInteractive() {
		if !tui.PromptContinue(fmt.Sprintf("Delete user %s?", id)) {
			fmt.Fprintln(os.Stderr, "Cancelled.")
			return nil
		}
	}

	ctx, cancel := commandContext(deleteFlags.timeout)
	defer cancel()

	users, cleanup, err := openStore(ctx, &deleteFlags.conn, verbose)
	if err != nil {
		return err
	}
	defer cleanup()

	deleted, err := users.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted == nil {
		return fmt.Errorf("user %s: %w", id, userdb.ErrNotFound)
	}

	if deleteFlags.json {
		return printJSON(os.Stdout, toView(deleted))
	}
	success(os.Stdout, "Deleted user %s", deleted.ID)
	renderUser(os.Stdout, deleted)
	return nil
}
