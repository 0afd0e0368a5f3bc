package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/hollowlog/precommit/internal/checks"
	"github.com/hollowlog/precommit/internal/config"
	"github.com/hollowlog/precommit/internal/console"
	"github.com/hollowlog/precommit/internal/engine"
	"github.com/hollowlog/precommit/internal/git"
)

// buildEngine does the shared setup for check and fix: resolve color,
// chdir to the repository root, load the manifest, snapshot the
// repository state once, and wire the engine together.
func buildEngine(cmd *cobra.Command, dryRun bool) (*engine.Engine, error) {
	out, err := newConsole()
	if err != nil {
		return nil, err
	}

	ctx := cmd.Context()
	if err := chdirToRoot(ctx); err != nil {
		return nil, err
	}

	list, err := config.Load(config.FileName)
	if err != nil {
		if errors.Is(err, config.ErrNotFound) {
			return nil, fmt.Errorf("could not find %s. You can create it with 'precommit init'", config.FileName)
		}
		return nil, err
	}

	repo, err := git.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	gw := &checks.SystemGateway{}
	if flagVerbose {
		gw.Trace = func(argv []string) {
			out.Note("$ " + strings.Join(argv, " "))
		}
	}

	return engine.New(&engine.Config{
		Checks:   list.Checks(),
		Gateway:  gw,
		Repo:     repo,
		Console:  out,
		CheckAll: flagAll,
		DryRun:   dryRun,
		Verbose:  flagVerbose,
	})
}

func newConsole() (*console.Console, error) {
	_, noColorSet := os.LookupEnv("NO_COLOR")
	colored, err := resolveColor(noColorSet, isatty.IsTerminal(os.Stdout.Fd()))
	if err != nil {
		return nil, err
	}
	return console.New(os.Stdout, colored), nil
}

// resolveColor applies the precedence: explicit flags beat NO_COLOR,
// and NO_COLOR only takes effect when stdout is not a terminal.
func resolveColor(noColorEnv, stdoutIsTTY bool) (bool, error) {
	if flagColor && flagNoColor {
		return false, &checks.UsageError{Reason: "--color and --no-color are incompatible"}
	}
	if flagColor {
		return true, nil
	}
	if flagNoColor {
		return false, nil
	}
	if noColorEnv && !stdoutIsTTY {
		return false, nil
	}
	return true, nil
}

func chdirToRoot(ctx context.Context) error {
	root, err := git.FindRoot(ctx)
	if err != nil {
		return err
	}
	if err := os.Chdir(root); err != nil {
		return fmt.Errorf("cannot enter repository root %s: %w", root, err)
	}
	return nil
}
