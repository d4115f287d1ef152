package driving

import (
	"context"

	"github.com/linegrep/linegrep/internal/core/domain"
)

// Searcher runs a configured search and returns the matched lines.
type Searcher interface {
	// Search reads the file named by cfg.FilePath and returns its
	// lines containing cfg.Query, in source order.
	Search(ctx context.Context, cfg domain.Config, opts domain.SearchOptions) ([]string, error)
}
