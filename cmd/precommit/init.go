package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hollowlog/precommit/internal/config"
)

var flagForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default precommit.yaml and install the git hook",
	Long: `Create a precommit.yaml with a starter set of checks and install a
pre-commit hook that runs 'precommit check --all'. Existing files are
never overwritten unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&flagForce, "force", "f", false, "Overwrite existing configuration and hook files")
}

func runInit(cmd *cobra.Command, args []string) error {
	if err := chdirToRoot(cmd.Context()); err != nil {
		return err
	}

	hookPath := filepath.Join(".git", "hooks", "pre-commit")
	if !flagForce {
		if _, err := os.Stat(config.FileName); err == nil {
			return fmt.Errorf("%s already exists. Re-run with --force to overwrite it", config.FileName)
		}
		if _, err := os.Stat(hookPath); err == nil {
			return fmt.Errorf("%s already exists. Re-run with --force to overwrite it", hookPath)
		}
	}

	if err := os.WriteFile(config.FileName, []byte(config.DefaultManifest), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", config.FileName, err)
	}
	if err := os.WriteFile(hookPath, []byte(config.HookScript), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", hookPath, err)
	}
	// The hook must be executable by everyone.
	if err := os.Chmod(hookPath, 0o755); err != nil {
		return fmt.Errorf("making %s executable: %w", hookPath, err)
	}

	green := color.New(color.FgGreen).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	fmt.Printf("%s Wrote %s\n", green("✓"), cyan(config.FileName))
	fmt.Printf("%s Installed %s\n", green("✓"), cyan(hookPath))
	return nil
}
