package engine

import (
	"slices"

	"github.com/hollowlog/precommit/internal/checks"
)

// Checklist is the ordered registry a configuration file populates.
// Registration order is execution and report order; duplicates are
// permitted and names are not required to be unique.
type Checklist struct {
	checks []checks.Check
}

// Check appends c to the list.
func (l *Checklist) Check(c checks.Check) error {
	if c == nil {
		return &checks.UsageError{Reason: "cannot register a nil check"}
	}
	l.checks = append(l.checks, c)
	return nil
}

// Checks returns the registered checks in registration order.
func (l *Checklist) Checks() []checks.Check {
	return slices.Clone(l.checks)
}
