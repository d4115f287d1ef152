package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSink_WriteLines tests plain one-per-line output
func TestSink_WriteLines(t *testing.T) {
	buf := new(bytes.Buffer)
	sink := NewSink(buf, Options{})

	err := sink.WriteLines("duct", []string{"safe, fast, productive."})

	require.NoError(t, err)
	assert.Equal(t, "safe, fast, productive.\n", buf.String())
}

// TestSink_WriteLines_OrderPreserved tests that lines come out in the order given
func TestSink_WriteLines_OrderPreserved(t *testing.T) {
	buf := new(bytes.Buffer)
	sink := NewSink(buf, Options{})

	err := sink.WriteLines("line", []string{"line one", "line two", "line one again"})

	require.NoError(t, err)
	assert.Equal(t, "line one\nline two\nline one again\n", buf.String())
}

// TestSink_WriteLines_NoMatches tests that zero lines writes nothing
func TestSink_WriteLines_NoMatches(t *testing.T) {
	buf := new(bytes.Buffer)
	sink := NewSink(buf, Options{})

	err := sink.WriteLines("q", nil)

	require.NoError(t, err)
	assert.Equal(t, "", buf.String())
}

// TestSink_WriteLines_ColorKeepsLineText tests that highlighting never
// loses or reorders characters of the line itself
func TestSink_WriteLines_ColorKeepsLineText(t *testing.T) {
	buf := new(bytes.Buffer)
	sink := NewSink(buf, Options{Color: true})

	err := sink.WriteLines("duct", []string{"safe, fast, productive."})

	require.NoError(t, err)
	out := buf.String()
	// Styling may or may not add escape sequences depending on the
	// detected color profile; the line's text must survive either way.
	assert.Contains(t, stripANSI(out), "safe, fast, productive.")
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

// TestSink_WriteLines_ColorEmptyQuery tests that the empty query skips highlighting
func TestSink_WriteLines_ColorEmptyQuery(t *testing.T) {
	buf := new(bytes.Buffer)
	sink := NewSink(buf, Options{Color: true})

	err := sink.WriteLines("", []string{"anything"})

	require.NoError(t, err)
	assert.Equal(t, "anything\n", buf.String())
}

// TestSink_Find_CaseSensitive tests occurrence location in the default mode
func TestSink_Find_CaseSensitive(t *testing.T) {
	sink := NewSink(new(bytes.Buffer), Options{})

	start, end := sink.find("fast", "safe, fast, productive.")
	assert.Equal(t, 6, start)
	assert.Equal(t, 10, end)

	start, end = sink.find("FAST", "safe, fast, productive.")
	assert.Equal(t, -1, start)
	assert.Equal(t, -1, end)
}

// TestSink_Find_IgnoreCase tests folded occurrence location
func TestSink_Find_IgnoreCase(t *testing.T) {
	sink := NewSink(new(bytes.Buffer), Options{IgnoreCase: true})

	start, end := sink.find("FAST", "safe, fast, productive.")
	assert.Equal(t, 6, start)
	assert.Equal(t, 10, end)
}

// stripANSI removes terminal escape sequences from s.
func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
