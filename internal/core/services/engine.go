package services

import (
	"iter"
	"slices"
	"strings"

	"golang.org/x/text/language"
	textsearch "golang.org/x/text/search"

	"github.com/linegrep/linegrep/internal/core/domain"
)

// SearchLines returns a lazy, restartable sequence of the lines of
// contents that contain query as a literal substring, in their
// original order. Matching is case-sensitive and byte-exact: no
// normalisation, no regular expressions. An empty query matches
// every line. Yielded lines are substrings of contents.
func SearchLines(query, contents string) iter.Seq[string] {
	req := domain.SearchRequest{Query: query, Contents: contents}
	return func(yield func(string) bool) {
		for line := range req.Lines() {
			if strings.Contains(line, query) && !yield(line) {
				return
			}
		}
	}
}

// Search materialises SearchLines into a slice.
func Search(query, contents string) []string {
	return slices.Collect(SearchLines(query, contents))
}

// SearchCaseInsensitive is the case-insensitive variant of Search.
// It is a separate function rather than a mode flag so the default
// matching semantics stay byte-exact. Folding is Unicode-aware, so
// for example "STRASSE" matches a line containing "straße".
func SearchCaseInsensitive(query, contents string) []string {
	req := domain.SearchRequest{Query: query, Contents: contents}
	if query == "" {
		return slices.Collect(req.Lines())
	}

	pat := textsearch.New(language.Und, textsearch.IgnoreCase).CompileString(query)
	var matched []string
	for line := range req.Lines() {
		if start, _ := pat.IndexString(line); start >= 0 {
			matched = append(matched, line)
		}
	}
	return matched
}
