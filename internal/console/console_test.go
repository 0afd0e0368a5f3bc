package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainOutput(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, false)

	c.Header("SomeCheck")
	c.Detail("first line\nsecond line")
	c.Failed()
	c.Blank()
	c.Header("OtherCheck")
	c.Passed()
	c.Blank()
	c.Blank()
	c.Summary("Ran 2 checks. Detected 1 issues.")

	want := strings.Join([]string{
		"o--[ SomeCheck ]",
		"|  first line",
		"|  second line",
		"o--[ failed! ]",
		"",
		"o--[ OtherCheck ]",
		"o--[ passed! ]",
		"",
		"",
		"Ran 2 checks. Detected 1 issues.",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestDetailTrimsTrailingNewline(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, false)

	c.Detail("only line\n")
	assert.Equal(t, "|  only line\n", buf.String())
}

func TestColorDisabledEmitsNoEscapes(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, false)

	c.Header("X")
	c.Failed()
	c.Fixed()
	c.WouldFix()
	c.Note("note")
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestColorEnabledStylesTrailers(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, true)

	c.Failed()
	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "o--[ failed! ]")
}
