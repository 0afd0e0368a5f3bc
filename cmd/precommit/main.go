// Command precommit runs the checks declared in a repository's
// precommit.yaml against the staged change set, and optionally applies
// their fixes.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagAll     bool
	flagVerbose bool
	flagColor   bool
	flagNoColor bool
)

var rootCmd = &cobra.Command{
	Use:   "precommit",
	Short: "Simple git pre-commit hook management",
	Long: `precommit runs the checks declared in precommit.yaml against the files
staged for commit and reports which ones failed. Run without a subcommand
it behaves like 'precommit check'.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCheck,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagColor, "color", false, "Force colorized output, overriding the environment")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colorized output")
	rootCmd.Flags().BoolVar(&flagAll, "all", false, "Run all checks, including slow ones")
	rootCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Emit verbose output")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(fixCmd)
	rootCmd.AddCommand(initCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errProblemsFound) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
