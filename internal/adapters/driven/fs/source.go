// Package fs implements the FileSource port over the local filesystem.
package fs

import (
	"context"
	"os"

	"github.com/linegrep/linegrep/internal/core/ports/driven"
)

// Ensure Source implements the port.
var _ driven.FileSource = (*Source)(nil)

// Source reads files from the local filesystem.
type Source struct{}

// NewSource creates a filesystem-backed FileSource.
func NewSource() *Source {
	return &Source{}
}

// ReadFile returns the complete contents of the file at path.
// The whole file is materialised at once; the engine searches
// in-memory text, not a stream.
func (s *Source) ReadFile(_ context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
