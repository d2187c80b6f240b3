package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vvka-141/userdb/internal/tui"
	"github.com/vvka-141/userdb/pkg/userdb"
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new user",
	Long: `Create inserts a new user row. The server assigns the UUID.

When --name and --email are omitted and a terminal is attached, an
interactive form collects them.

Examples:
  userdb create --name "Ada Lovelace" --email ada@example.com
  userdb create    # interactive form`,
	Args: cobra.NoArgs,
	RunE: runCreate,
}

var createFlags struct {
	conn    connFlagValues
	name    string
	email   string
	json    bool
	timeout time.Duration
}

func init() {
	rootCmd.AddCommand(createCmd)
	addConnectionFlags(createCmd, &createFlags.conn)
	createCmd.Flags().StringVar(&createFlags.name, "name", "", "Full name of the user")
	createCmd.Flags().StringVar(&createFlags.email, "email", "", "Email address of the user")
	createCmd.Flags().BoolVar(&createFlags.json, "json", false, "Output as JSON")
	createCmd.Flags().DurationVar(&createFlags.timeout, "timeout", time.Minute, "Command timeout")
}

func runCreate(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)

	draft := userdb.NewUser{
		Name:  createFlags.name,
		Email: createFlags.email,
	}

	// Fall back to the interactive form when no fields were given.
	if draft.Name == "" && draft.Email == "" && tui.IsInteractive() {
		result, err := tui.RunUserForm("Create user", "", "")
		if err != nil {
			return err
		}
		if result.Cancelled {
			fmt.Fprintln(os.Stderr, "Cancelled.")
			return nil
		}
		draft.Name = result.Name
		draft.Email = result.Email
	}

	if err := draft.Validate(); err != nil {
		return err
	}

	ctx, cancel := commandContext(createFlags.timeout)
	defer cancel()

	users, cleanup, err := openStore(ctx, &createFlags.conn, verbose)
	if err != nil {
		return err
	}
	defer cleanup()

	created, err := users.Create(ctx, draft)
	if err != nil {
		return err
	}

	if createFlags.json {
		return printJSON(os.Stdout, toView(created))
	}
	success(os.Stdout, "Created user %s", created.ID)
	renderUser(os.Stdout, created)
	return nil
}
