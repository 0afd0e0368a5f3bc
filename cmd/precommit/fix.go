package main

import (
	"github.com/spf13/cobra"
)

var flagDryRun bool

var fixCmd = &cobra.Command{
	Use:   "fix",
	Short: "Apply available fixes for problems that 'check' finds",
	Long: `Run the registered checks and apply the fix action of every fixable
problem. Fix mode is advisory: it exits zero even when problems remain,
unless an internal error occurred.`,
	Args: cobra.NoArgs,
	RunE: runFix,
}

func init() {
	fixCmd.Flags().BoolVar(&flagAll, "all", false, "Run all checks, including slow ones")
	fixCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Emit verbose output")
	fixCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Report what would be fixed without running any fix")
}

func runFix(cmd *cobra.Command, args []string) error {
	eng, err := buildEngine(cmd, flagDryRun)
	if err != nil {
		return err
	}
	return eng.Fix(cmd.Context())
}
