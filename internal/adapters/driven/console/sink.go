// Package console implements the ResultSink port for terminal output.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	textsearch "golang.org/x/text/search"

	"github.com/linegrep/linegrep/internal/core/ports/driven"
)

// Ensure Sink implements the port.
var _ driven.ResultSink = (*Sink)(nil)

// matchStyle renders the matched substring within a line.
var matchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)

// Options control how matched lines are rendered.
type Options struct {
	// Color enables highlighting of query occurrences.
	Color bool

	// IgnoreCase makes highlighting locate occurrences with Unicode
	// case folding, mirroring the matcher that produced the lines.
	IgnoreCase bool
}

// Sink writes matched lines to an io.Writer, one per line, in the
// order it receives them.
type Sink struct {
	w    io.Writer
	opts Options
}

// NewSink creates a sink writing to w.
func NewSink(w io.Writer, opts Options) *Sink {
	return &Sink{w: w, opts: opts}
}

// WriteLines writes the lines in order. When color is enabled, every
// occurrence of query within a line is highlighted. Lines are never
// reordered or filtered here.
func (s *Sink) WriteLines(query string, lines []string) error {
	for _, line := range lines {
		out := line
		if s.opts.Color && query != "" {
			out = s.highlight(query, line)
		}
		if _, err := fmt.Fprintln(s.w, out); err != nil {
			return err
		}
	}
	return nil
}

func (s *Sink) highlight(query, line string) string {
	var b strings.Builder
	rest := line
	for len(rest) > 0 {
		start, end := s.find(query, rest)
		if start < 0 || end <= start {
			b.WriteString(rest)
			break
		}
		b.WriteString(rest[:start])
		b.WriteString(matchStyle.Render(rest[start:end]))
		rest = rest[end:]
	}
	return b.String()
}

// find locates the next occurrence of query in text, honouring the
// IgnoreCase option. Returns (-1, -1) when query does not occur.
func (s *Sink) find(query, text string) (int, int) {
	if s.opts.IgnoreCase {
		return textsearch.New(language.Und, textsearch.IgnoreCase).IndexString(text, query)
	}
	i := strings.Index(text, query)
	if i < 0 {
		return -1, -1
	}
	return i, i + len(query)
}
