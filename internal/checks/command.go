package checks

import (
	"context"
	"slices"
	"strings"

	"github.com/hollowlog/precommit/internal/git"
)

// CommandConfig describes an external tool invocation run as a check.
type CommandConfig struct {
	// Name is the display name for the report.
	Name string

	// Cmd is the base argv. A non-zero exit reports a problem.
	Cmd []string

	// Fix is the argv that resolves the problem. Empty means the check
	// is not fixable.
	Fix []string

	// PassFiles appends the filtered staged file list to Cmd (and Fix).
	PassFiles bool

	// Separately runs Cmd once per matched file instead of once with
	// all files. Requires PassFiles.
	Separately bool

	// Slow excludes the check from default runs.
	Slow bool

	Include []string
	Exclude []string
}

// Command wraps an external command whose non-zero exit status signals a
// problem. The command's combined output becomes the problem message.
type Command struct {
	name       string
	cmd        []string
	fix        []string
	passFiles  bool
	separately bool
	slow       bool
	filter     Filter
}

// NewCommand validates cfg and builds the check. Configuration mistakes
// surface here as UsageError, before anything executes.
func NewCommand(cfg CommandConfig) (*Command, error) {
	if cfg.Name == "" {
		return nil, &UsageError{Reason: "command check requires a name"}
	}
	if len(cfg.Cmd) == 0 {
		return nil, &UsageError{Reason: "command check " + cfg.Name + " requires a command"}
	}
	if cfg.Separately && !cfg.PassFiles {
		return nil, &UsageError{Reason: "if `separately` is set, `pass_files` must also be set"}
	}

	return &Command{
		name:       cfg.Name,
		cmd:        slices.Clone(cfg.Cmd),
		fix:        slices.Clone(cfg.Fix),
		passFiles:  cfg.PassFiles,
		separately: cfg.Separately,
		slow:       cfg.Slow,
		filter:     Filter{Include: cfg.Include, Exclude: cfg.Exclude},
	}, nil
}

func (c *Command) Name() string  { return c.name }
func (c *Command) Slow() bool    { return c.slow }
func (c *Command) Fixable() bool { return len(c.fix) > 0 }

// Check runs the wrapped command against the staged files.
func (c *Command) Check(ctx context.Context, gw Gateway, repo *git.Repository) (*Problem, error) {
	if c.separately {
		return c.checkSeparately(ctx, gw, repo)
	}

	argv := slices.Clone(c.cmd)
	var files []string
	if c.passFiles {
		files = c.filter.Apply(repo.Staged)
		argv = append(argv, files...)
	}

	result, err := gw.Run(ctx, argv)
	if err != nil {
		return nil, err
	}
	if !result.Failed() {
		return nil, nil
	}
	return &Problem{
		Message: strings.TrimRight(result.Output, "\n"),
		Autofix: c.fixArgv(files),
	}, nil
}

func (c *Command) checkSeparately(ctx context.Context, gw Gateway, repo *git.Repository) (*Problem, error) {
	failed := false
	var outputs []string
	for _, path := range c.filter.Apply(repo.Staged) {
		result, err := gw.Run(ctx, append(slices.Clone(c.cmd), path))
		if err != nil {
			return nil, err
		}
		if result.Failed() {
			failed = true
			if out := strings.TrimRight(result.Output, "\n"); out != "" {
				outputs = append(outputs, out)
			}
		}
	}
	if !failed {
		return nil, nil
	}
	// One shared fix command for all files, without trailing paths.
	return &Problem{
		Message: strings.Join(outputs, "\n"),
		Autofix: c.fixArgv(nil),
	}, nil
}

func (c *Command) fixArgv(files []string) []string {
	if len(c.fix) == 0 {
		return nil
	}
	return append(slices.Clone(c.fix), files...)
}
