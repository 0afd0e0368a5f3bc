// Package console renders the check report. Whether output is colored
// is decided once at construction and threaded in explicitly; nothing
// here inspects the environment or toggles global state.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Console writes the sectioned report format:
//
//	o--[ CheckName ]
//	|  detail line
//	o--[ failed! ]
type Console struct {
	out   io.Writer
	frame *color.Color
	good  *color.Color
	bad   *color.Color
	warn  *color.Color
	note  *color.Color
}

// New builds a console writing to out. When colored is false every
// style is disabled and plain text is emitted.
func New(out io.Writer, colored bool) *Console {
	c := &Console{
		out:   out,
		frame: color.New(color.FgCyan),
		good:  color.New(color.FgGreen, color.Bold),
		bad:   color.New(color.FgRed, color.Bold),
		warn:  color.New(color.FgYellow, color.Bold),
		note:  color.New(color.FgHiBlack),
	}
	// Set the choice per style so the package-global NoColor detection
	// (tty sniffing) cannot override the explicit configuration.
	for _, style := range []*color.Color{c.frame, c.good, c.bad, c.warn, c.note} {
		if colored {
			style.EnableColor()
		} else {
			style.DisableColor()
		}
	}
	return c
}

// Header opens a report section for the named check.
func (c *Console) Header(name string) {
	fmt.Fprintln(c.out, c.frame.Sprintf("o--[ %s ]", name))
}

// Detail prints the body of a section, one framed line per input line.
func (c *Console) Detail(text string) {
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		fmt.Fprintf(c.out, "%s%s\n", c.frame.Sprint("|  "), line)
	}
}

// Passed closes a section for a check that found nothing.
func (c *Console) Passed() {
	fmt.Fprintln(c.out, c.good.Sprint("o--[ passed! ]"))
}

// Failed closes a section for a check that reported a problem.
func (c *Console) Failed() {
	fmt.Fprintln(c.out, c.bad.Sprint("o--[ failed! ]"))
}

// Fixed closes a section whose problem was fixed.
func (c *Console) Fixed() {
	fmt.Fprintln(c.out, c.good.Sprint("o--[ fixed! ]"))
}

// WouldFix closes a section whose fix was skipped under --dry-run.
func (c *Console) WouldFix() {
	fmt.Fprintln(c.out, c.warn.Sprint("o--[ would fix ]"))
}

// Blank separates sections.
func (c *Console) Blank() {
	fmt.Fprintln(c.out)
}

// Summary prints the final counters line, unstyled.
func (c *Console) Summary(text string) {
	fmt.Fprintln(c.out, text)
}

// Note prints dimmed side-channel output (--verbose traces, skips).
func (c *Console) Note(text string) {
	fmt.Fprintln(c.out, c.note.Sprint(text))
}
