// Package checks defines the check capability, the Problem result value,
// and the built-in checks that ship with precommit.
package checks

import (
	"context"

	"github.com/hollowlog/precommit/internal/git"
)

// Check is a unit of validation over the staged change set.
//
// Check implementations must be safely re-invocable: the engine may call
// Check more than once (check mode followed by fix mode in the same
// process, for example) and expects the same classification each time as
// long as the repository snapshot is unchanged.
type Check interface {
	// Name is the section header shown in the report.
	Name() string

	// Slow marks checks that only run with --all.
	Slow() bool

	// Fixable reports whether fixing is ever meaningful for this check.
	// A fixable check may still return problems without a fix action.
	Fixable() bool

	// Check inspects the repository snapshot and returns a finding, or
	// nil when the check passes. The error return is reserved for
	// unexpected failures (a tool binary missing, an unreadable file)
	// and aborts the entire run.
	Check(ctx context.Context, gw Gateway, repo *git.Repository) (*Problem, error)
}

// Problem is a finding reported by a check. It is constructed fresh on
// every Check call and never mutated afterwards.
type Problem struct {
	// Message is shown in the report, one detail line per
	// newline-separated line. May be empty.
	Message string

	// Autofix is the argv of a command that resolves the finding.
	// Empty means the finding is not auto-fixable, even when the owning
	// check is Fixable.
	Autofix []string

	// FixFunc is an alternative fix action for findings no single
	// command can resolve. Ignored when Autofix is set.
	FixFunc func(ctx context.Context, gw Gateway) error
}

// Fixable reports whether the problem carries an executable fix action.
func (p *Problem) Fixable() bool {
	return p != nil && (len(p.Autofix) > 0 || p.FixFunc != nil)
}

// UsageError reports a misconfigured check or invocation. It is raised
// at construction time, before any check executes.
type UsageError struct {
	Reason string
}

func (e *UsageError) Error() string {
	return e.Reason
}

// FactoryOptions carries the per-entry knobs a configuration file can
// set on a built-in check.
type FactoryOptions struct {
	// Args are extra arguments appended to the check's base command.
	Args []string

	// Include patterns added to the check's defaults.
	Include []string

	// Exclude patterns; exclude always wins over include.
	Exclude []string

	// Slow excludes the check from default runs.
	Slow bool
}

// Factory builds a pre-configured built-in check.
type Factory func(opts FactoryOptions) (Check, error)

// Builtins maps configuration names to the check factories they refer to.
func Builtins() map[string]Factory {
	return map[string]Factory{
		"DoNotSubmit":                DoNotSubmit,
		"NoStagedAndUnstagedChanges": NoStagedAndUnstagedChanges,
		"NoWhitespaceInFilePath":     NoWhitespaceInFilePath,
		"GoFormat":                   GoFormat,
		"GoVet":                      GoVet,
		"GoLint":                     GoLint,
		"PythonFormat":               PythonFormat,
		"PythonLint":                 PythonLint,
		"PythonImportOrder":          PythonImportOrder,
		"PythonTypes":                PythonTypes,
		"JavaScriptLint":             JavaScriptLint,
		"RustFormat":                 RustFormat,
	}
}
