package checks

import (
	"regexp"
	"strings"
)

// Filter selects the paths a check inspects. Patterns are shell-style
// globs (`*`, `?`, `[...]` classes) matched against the whole relative
// path, with `*` crossing directory separators. An empty include list
// matches everything; an empty exclude list matches nothing; exclude
// always wins over include.
type Filter struct {
	Include []string
	Exclude []string
}

// Apply returns the subset of paths the filter selects, preserving order.
func (f Filter) Apply(paths []string) []string {
	selected := make([]string, 0, len(paths))
	for _, path := range paths {
		if f.Match(path) {
			selected = append(selected, path)
		}
	}
	return selected
}

// Match reports whether a single path passes the filter.
func (f Filter) Match(path string) bool {
	for _, pattern := range f.Exclude {
		if matchGlob(pattern, path) {
			return false
		}
	}
	if len(f.Include) == 0 {
		return true
	}
	for _, pattern := range f.Include {
		if matchGlob(pattern, path) {
			return true
		}
	}
	return false
}

func matchGlob(pattern, path string) bool {
	re, err := globRegexp(pattern)
	if err != nil {
		return false
	}
	return re.MatchString(path)
}

// globRegexp translates a glob into an anchored regular expression.
// filepath.Match is not usable here: its `*` stops at separators, while
// these patterns treat the path as a flat string ("*.py" must match
// "src/app.py").
func globRegexp(pattern string) (*regexp.Regexp, error) {
	var b strings.Builder
	b.WriteString("^")
	for i := 0; i < len(pattern); i++ {
		switch c := pattern[i]; c {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		case '[':
			end := classEnd(pattern, i)
			if end < 0 {
				// Unterminated class matches a literal bracket.
				b.WriteString(`\[`)
				continue
			}
			class := pattern[i+1 : end]
			if strings.HasPrefix(class, "!") {
				class = "^" + class[1:]
			}
			b.WriteString("[" + strings.ReplaceAll(class, `\`, `\\`) + "]")
			i = end
		default:
			b.WriteString(regexp.QuoteMeta(string(c)))
		}
	}
	b.WriteString("$")
	return regexp.Compile(b.String())
}

// classEnd returns the index of the `]` closing the class that opens at
// start, or -1. A `]` in the first position is part of the class.
func classEnd(pattern string, start int) int {
	i := start + 1
	if i < len(pattern) && (pattern[i] == '!' || pattern[i] == '^') {
		i++
	}
	if i < len(pattern) && pattern[i] == ']' {
		i++
	}
	for ; i < len(pattern); i++ {
		if pattern[i] == ']' {
			return i
		}
	}
	return -1
}
