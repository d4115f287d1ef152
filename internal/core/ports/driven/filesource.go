package driven

import "context"

// FileSource supplies the complete contents of named files.
// The core reads through this port so the engine stays a pure
// function over text.
type FileSource interface {
	// ReadFile returns the full contents of the file at path.
	// Errors are infrastructure errors (not found, unreadable) and
	// are propagated to the caller unchanged.
	ReadFile(ctx context.Context, path string) (string, error)
}
