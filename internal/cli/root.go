// Package cli wires the cobra command tree: connection resolution,
// store construction, and the user CRUD commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "userdb",
	Short: "PostgreSQL user directory tool",
	Long: `userdb manages a users table in PostgreSQL: look up, list, create,
update, and delete rows, with automatic retry on transient failures.

Connection parameters follow PostgreSQL conventions: flags beat
environment variables (PGHOST, PGPORT, PGUSER, PGDATABASE, DATABASE_URL)
which beat the optional userdb.yaml project file.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration or parameters
  11 - Database connection failed
  12 - User data failed validation
  13 - Requested row does not exist`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for userdb")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
