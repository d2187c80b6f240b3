package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vvka-141/userdb/pkg/userdb"
)

var getCmd = &cobra.Command{
	Use:   "get <user-id>",
	Short: "Fetch a user by ID",
	Long: `Get fetches a single user row by its UUID.

Exits with code 13 if no user with the given ID exists.

Examples:
  userdb get 6f1c9a70-1111-4a9b-9e1e-0f6d6c2a9b01
  userdb get 6f1c9a70-1111-4a9b-9e1e-0f6d6c2a9b01 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

var getFlags struct {
	conn    connFlagValues
	json    bool
	timeout time.Duration
}

func init() {
	rootCmd.AddCommand(getCmd)
	addConnectionFlags(getCmd, &getFlags.conn)
	getCmd.Flags().BoolVar(&getFlags.json, "json", false, "Output as JSON")
	getCmd.Flags().DurationVar(&getFlags.timeout, "timeout", time.Minute, "Command timeout")
}

func runGet(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)

	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid user ID %q: %w", args[0], userdb.ErrInvalidInput)
	}

	ctx, cancel := commandContext(getFlags.timeout)
	defer cancel()

	users, cleanup, err := openStore(ctx, &getFlags.conn, verbose)
	if err != nil {
		return err
	}
	defer cleanup()

	user, err := users.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("user %s: %w", id, userdb.ErrNotFound)
	}

	if getFlags.json {
		return printJSON(os.Stdout, toView(user))
	}
	renderUser(os.Stdout, user)
	return nil
}
