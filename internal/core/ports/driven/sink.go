package driven

// ResultSink receives matched lines and presents them to the user.
type ResultSink interface {
	// WriteLines writes the matched lines in order, one per line.
	// The query is passed alongside so sinks can highlight its
	// occurrences; sinks must never reorder or filter the lines.
	WriteLines(query string, lines []string) error
}
