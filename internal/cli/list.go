package cli

import (
	"os"
	"time"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all users",
	Long: `List fetches every user row.

Examples:
  userdb list
  userdb list --json | jq '.[].email'`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var listFlags struct {
	conn    connFlagValues
	json    bool
	timeout time.Duration
}

func init() {
	rootCmd.AddCommand(listCmd)
	addConnectionFlags(listCmd, &listFlags.conn)
	listCmd.Flags().BoolVar(&listFlags.json, "json", false, "Output as JSON")
	listCmd.Flags().DurationVar(&listFlags.timeout, "timeout", time.Minute, "Command timeout")
}

func runList(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)

	ctx, cancel := commandContext(listFlags.timeout)
	defer cancel()

	users, cleanup, err := openStore(ctx, &listFlags.conn, verbose)
	if err != nil {
		return err
	}
	defer cleanup()

	all, err := users.List(ctx)
	if err != nil {
		return err
	}

	if listFlags.json {
		views := make([]userView, 0, len(all))
		for i := range all {
			views = append(views, toView(&all[i]))
		}
		return printJSON(os.Stdout, views)
	}
	renderUserTable(os.Stdout, all)
	return nil
}
