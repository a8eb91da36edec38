package driven

import (
	"context"

	"github.com/custodia-labs/hnsearch/internal/core/domain"
)

// SearchAPI fetches pages of hits from the remote search service.
// Backed by the Hacker News Algolia API.
type SearchAPI interface {
	// Search returns one page of hits for query.
	// Pages are zero-based. Failures wrap domain.ErrRequestFailed.
	Search(ctx context.Context, query string, page, hitsPerPage int) (*domain.ResultPage, error)
}
