package main

import (
	"errors"

	"github.com/spf13/cobra"
)

// errProblemsFound maps "checks failed" onto a non-zero exit without
// printing an Error: line; the report already said everything.
var errProblemsFound = errors.New("problems found")

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check for pre-commit failures",
	Args:  cobra.NoArgs,
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&flagAll, "all", false, "Run all checks, including slow ones")
	checkCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Emit verbose output")
}

func runCheck(cmd *cobra.Command, args []string) error {
	eng, err := buildEngine(cmd, false)
	if err != nil {
		return err
	}

	found, err := eng.Check(cmd.Context())
	if err != nil {
		return err
	}
	if found {
		return errProblemsFound
	}
	return nil
}
