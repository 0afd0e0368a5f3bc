package checks

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/hollowlog/precommit/internal/git"
)

// The marker is assembled at runtime so this file never trips its own check.
var doNotSubmit = "DO NOT " + "SUBMIT"

type doNotSubmitCheck struct {
	filter Filter
	slow   bool
}

// DoNotSubmit builds a check that flags staged files containing the
// forbidden marker string, case-insensitively. Not fixable.
func DoNotSubmit(opts FactoryOptions) (Check, error) {
	return &doNotSubmitCheck{
		filter: Filter{Include: opts.Include, Exclude: opts.Exclude},
		slow:   opts.Slow,
	}, nil
}

func (c *doNotSubmitCheck) Name() string  { return "DoNotSubmit" }
func (c *doNotSubmitCheck) Slow() bool    { return c.slow }
func (c *doNotSubmitCheck) Fixable() bool { return false }

func (c *doNotSubmitCheck) Check(ctx context.Context, gw Gateway, repo *git.Repository) (*Problem, error) {
	var bad []string
	for _, path := range c.filter.Apply(repo.Staged) {
		data, err := gw.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		if strings.Contains(strings.ToUpper(string(data)), doNotSubmit) {
			bad = append(bad, path)
		}
	}
	if len(bad) == 0 {
		return nil, nil
	}
	sort.Strings(bad)
	message := fmt.Sprintf("file contains '%s'\n%s", doNotSubmit, strings.Join(bad, "\n"))
	return &Problem{Message: message}, nil
}

type stagedAndUnstagedCheck struct {
	slow bool
}

// NoStagedAndUnstagedChanges builds a check that fails when a staged
// file also has unstaged edits, since the committed content would differ
// from what is on disk. The fix stages the unstaged edits.
func NoStagedAndUnstagedChanges(opts FactoryOptions) (Check, error) {
	return &stagedAndUnstagedCheck{slow: opts.Slow}, nil
}

func (c *stagedAndUnstagedCheck) Name() string  { return "NoStagedAndUnstagedChanges" }
func (c *stagedAndUnstagedCheck) Slow() bool    { return c.slow }
func (c *stagedAndUnstagedCheck) Fixable() bool { return true }

func (c *stagedAndUnstagedCheck) Check(ctx context.Context, gw Gateway, repo *git.Repository) (*Problem, error) {
	staged := make(map[string]bool, len(repo.Staged))
	for _, path := range repo.Staged {
		staged[path] = true
	}

	var both []string
	for _, path := range repo.Unstaged {
		if staged[path] {
			both = append(both, path)
		}
	}
	if len(both) == 0 {
		return nil, nil
	}
	sort.Strings(both)
	return &Problem{
		Message: strings.Join(both, "\n"),
		Autofix: append([]string{"git", "add"}, both...),
	}, nil
}

type whitespacePathCheck struct {
	filter Filter
	slow   bool
}

// NoWhitespaceInFilePath builds a check that flags staged paths
// containing whitespace. Not fixable.
func NoWhitespaceInFilePath(opts FactoryOptions) (Check, error) {
	return &whitespacePathCheck{
		filter: Filter{Include: opts.Include, Exclude: opts.Exclude},
		slow:   opts.Slow,
	}, nil
}

func (c *whitespacePathCheck) Name() string  { return "NoWhitespaceInFilePath" }
func (c *whitespacePathCheck) Slow() bool    { return c.slow }
func (c *whitespacePathCheck) Fixable() bool { return false }

func (c *whitespacePathCheck) Check(ctx context.Context, gw Gateway, repo *git.Repository) (*Problem, error) {
	var bad []string
	for _, path := range c.filter.Apply(repo.Staged) {
		if strings.ContainsFunc(path, unicode.IsSpace) {
			bad = append(bad, path)
		}
	}
	if len(bad) == 0 {
		return nil, nil
	}
	sort.Strings(bad)
	message := "file path contains whitespace\n" + strings.Join(bad, "\n")
	return &Problem{Message: message}, nil
}

type goFormatCheck struct {
	filter Filter
	slow   bool
}

// GoFormat builds a check that reports staged Go files gofmt would
// rewrite. gofmt -l exits zero even when files need formatting, so this
// check keys off its output instead of the exit status. The fix runs
// gofmt -w on the offending files.
func GoFormat(opts FactoryOptions) (Check, error) {
	return &goFormatCheck{
		filter: Filter{
			Include: append([]string{"*.go"}, opts.Include...),
			Exclude: opts.Exclude,
		},
		slow: opts.Slow,
	}, nil
}

func (c *goFormatCheck) Name() string  { return "GoFormat" }
func (c *goFormatCheck) Slow() bool    { return c.slow }
func (c *goFormatCheck) Fixable() bool { return true }

func (c *goFormatCheck) Check(ctx context.Context, gw Gateway, repo *git.Repository) (*Problem, error) {
	files := c.filter.Apply(repo.Staged)
	if len(files) == 0 {
		return nil, nil
	}

	result, err := gw.Run(ctx, append([]string{"gofmt", "-l"}, files...))
	if err != nil {
		return nil, err
	}
	if result.Failed() {
		// gofmt only exits non-zero on unparseable input.
		return &Problem{Message: strings.TrimRight(result.Output, "\n")}, nil
	}

	output := strings.TrimSpace(result.Output)
	if output == "" {
		return nil, nil
	}
	unformatted := strings.Split(output, "\n")
	return &Problem{
		Message: strings.Join(unformatted, "\n"),
		Autofix: append([]string{"gofmt", "-w"}, unformatted...),
	}, nil
}
