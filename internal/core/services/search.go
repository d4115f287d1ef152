package services

import (
	"context"

	"github.com/linegrep/linegrep/internal/core/domain"
	"github.com/linegrep/linegrep/internal/core/ports/driven"
	"github.com/linegrep/linegrep/internal/core/ports/driving"
	"github.com/linegrep/linegrep/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.Searcher = (*SearchService)(nil)

// SearchService runs searches over files resolved through a FileSource.
type SearchService struct {
	files driven.FileSource
}

// NewSearchService creates a new search service.
func NewSearchService(files driven.FileSource) *SearchService {
	return &SearchService{files: files}
}

// Search reads the file named by cfg.FilePath and returns its lines
// containing cfg.Query, in source order. Read errors are returned
// unchanged; the matching itself defines no error conditions.
func (s *SearchService) Search(
	ctx context.Context, cfg domain.Config, opts domain.SearchOptions,
) ([]string, error) {
	logger.Section("Search Execution")
	logger.Debug("Query: %q", cfg.Query)
	logger.Debug("File: %s", cfg.FilePath)

	contents, err := s.files.ReadFile(ctx, cfg.FilePath)
	if err != nil {
		return nil, err
	}
	logger.Debug("Read %d bytes", len(contents))

	var lines []string
	if opts.IgnoreCase {
		logger.Debug("Matcher: case-insensitive")
		lines = SearchCaseInsensitive(cfg.Query, contents)
	} else {
		logger.Debug("Matcher: case-sensitive")
		lines = Search(cfg.Query, contents)
	}

	logger.Info("Matched %d line(s)", len(lines))
	return lines, nil
}
