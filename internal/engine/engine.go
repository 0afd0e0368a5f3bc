// Package engine drives one sequential pass over the registered checks:
// run each check, record pass/fail, optionally apply fixes, print the
// report, and tell the caller whether anything failed.
package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/hollowlog/precommit/internal/checks"
	"github.com/hollowlog/precommit/internal/console"
	"github.com/hollowlog/precommit/internal/git"
)

// Config assembles one engine run. All fields except the flags are
// required.
type Config struct {
	Checks  []checks.Check
	Gateway checks.Gateway
	Repo    *git.Repository
	Console *console.Console

	// CheckAll includes checks marked slow.
	CheckAll bool

	// DryRun reports what fix mode would do without executing fixes.
	DryRun bool

	// Verbose prints skipped checks and, through the gateway trace,
	// each external command.
	Verbose bool
}

// Engine executes checks strictly in registration order, one at a time.
// An Engine is good for a single invocation; counters are not reset.
type Engine struct {
	checks   []checks.Check
	gw       checks.Gateway
	repo     *git.Repository
	out      *console.Console
	checkAll bool
	dryRun   bool
	verbose  bool

	checksRun     int
	problemsFound int
	problemsFixed int
}

// New validates cfg and builds an engine.
func New(cfg *Config) (*Engine, error) {
	if cfg.Gateway == nil {
		return nil, fmt.Errorf("gateway is required")
	}
	if cfg.Repo == nil {
		return nil, fmt.Errorf("repository snapshot is required")
	}
	if cfg.Console == nil {
		return nil, fmt.Errorf("console is required")
	}

	return &Engine{
		checks:   cfg.Checks,
		gw:       cfg.Gateway,
		repo:     cfg.Repo,
		out:      cfg.Console,
		checkAll: cfg.CheckAll,
		dryRun:   cfg.DryRun,
		verbose:  cfg.Verbose,
	}, nil
}

// Check runs every registered check and prints the report. It returns
// whether any problems were found; the caller maps that to the exit
// status. An error means a check failed unexpectedly and the run was
// aborted.
func (e *Engine) Check(ctx context.Context) (bool, error) {
	fixable := 0
	for _, c := range e.checks {
		if e.skip(c) {
			continue
		}

		e.out.Header(c.Name())
		problem, err := c.Check(ctx, e.gw, e.repo)
		if err != nil {
			return false, fmt.Errorf("check %s failed unexpectedly: %w", c.Name(), err)
		}
		e.checksRun++

		if problem != nil {
			e.problemsFound++
			if problem.Message != "" {
				e.out.Detail(problem.Message)
			}
			if problem.Fixable() && c.Fixable() {
				fixable++
			}
			e.out.Failed()
		} else {
			e.out.Passed()
		}
		e.out.Blank()
	}

	summary := fmt.Sprintf("Ran %d checks. Detected %d issues.", e.checksRun, e.problemsFound)
	if fixable > 0 {
		summary += fmt.Sprintf(" Fix %d of them with 'precommit fix'.", fixable)
	}
	e.out.Blank()
	e.out.Summary(summary)

	return e.problemsFound > 0, nil
}

// Fix runs every registered check and applies the fix action of each
// fixable problem. Only fixable failures appear in the report; fixes
// from one check are not visible to later checks in the same pass.
// After any fix is applied the original staged and unstaged files are
// re-staged wholesale so the fixes are captured by the commit.
func (e *Engine) Fix(ctx context.Context) error {
	fixableRun := 0
	for _, c := range e.checks {
		if e.skip(c) {
			continue
		}

		problem, err := c.Check(ctx, e.gw, e.repo)
		if err != nil {
			return fmt.Errorf("check %s failed unexpectedly: %w", c.Name(), err)
		}
		if c.Fixable() {
			fixableRun++
		}
		if problem == nil || !problem.Fixable() || !c.Fixable() {
			// Unfixable problems are omitted from the fix report.
			continue
		}

		e.out.Header(c.Name())
		if problem.Message != "" {
			e.out.Detail(problem.Message)
		}
		e.problemsFound++
		e.problemsFixed++
		if e.dryRun {
			e.out.WouldFix()
		} else {
			if err := e.applyFix(ctx, problem); err != nil {
				return fmt.Errorf("fixing %s: %w", c.Name(), err)
			}
			e.out.Fixed()
		}
		e.out.Blank()
	}

	if e.problemsFixed > 0 && !e.dryRun {
		if err := e.restage(ctx); err != nil {
			return err
		}
	}

	e.out.Blank()
	e.out.Summary(fmt.Sprintf("Ran %d fixable checks. Detected %d issues. Fixed %d of them.",
		fixableRun, e.problemsFound, e.problemsFixed))
	return nil
}

func (e *Engine) skip(c checks.Check) bool {
	if !c.Slow() || e.checkAll {
		return false
	}
	if e.verbose {
		e.out.Note(fmt.Sprintf("skipping %s (slow; run with --all)", c.Name()))
	}
	return true
}

func (e *Engine) applyFix(ctx context.Context, problem *checks.Problem) error {
	if len(problem.Autofix) > 0 {
		// The fix command's exit status is deliberately ignored; the
		// next check run decides whether the problem is gone.
		_, err := e.gw.Run(ctx, problem.Autofix)
		return err
	}
	return problem.FixFunc(ctx, e.gw)
}

// restage re-adds every originally staged or unstaged file, minus files
// staged for deletion. This is a blanket re-add, not limited to files a
// fix actually touched, and so may also stage unrelated unstaged edits.
func (e *Engine) restage(ctx context.Context) error {
	deleted := make(map[string]bool, len(e.repo.StagedForDeletion))
	for _, path := range e.repo.StagedForDeletion {
		deleted[path] = true
	}

	seen := make(map[string]bool)
	var files []string
	for _, path := range append(append([]string{}, e.repo.Staged...), e.repo.Unstaged...) {
		if deleted[path] || seen[path] {
			continue
		}
		seen[path] = true
		files = append(files, path)
	}
	if len(files) == 0 {
		return nil
	}

	if e.verbose {
		e.out.Note("re-staging " + strings.Join(files, " "))
	}
	if _, err := e.gw.Run(ctx, append([]string{"git", "add"}, files...)); err != nil {
		return fmt.Errorf("re-staging fixed files: %w", err)
	}
	return nil
}
