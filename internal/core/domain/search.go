package domain

import (
	"iter"
	"strings"
)

// SearchRequest pairs a query with the full text it runs against.
// Immutable once constructed. Lines produced from it are substrings
// of Contents, so they are only valid while Contents is held.
type SearchRequest struct {
	// Query is the literal substring to match. An empty Query
	// matches every line.
	Query string

	// Contents is the complete text to search.
	Contents string
}

// SearchOptions configures a single search invocation.
type SearchOptions struct {
	// IgnoreCase selects the case-insensitive matcher instead of
	// the default byte-exact one.
	IgnoreCase bool
}

// Lines yields the lines of Contents in order.
//
// Lines are terminated by \n; a \r directly before the terminator is
// stripped, so CRLF input splits cleanly. A final line without a
// terminator is still yielded, and a trailing terminator does not
// produce an empty final line. The sequence is finite and restartable.
func (r SearchRequest) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		rest := r.Contents
		for len(rest) > 0 {
			line := rest
			if i := strings.IndexByte(rest, '\n'); i >= 0 {
				line = rest[:i]
				rest = rest[i+1:]
			} else {
				rest = ""
			}
			if !yield(strings.TrimSuffix(line, "\r")) {
				return
			}
		}
	}
}
