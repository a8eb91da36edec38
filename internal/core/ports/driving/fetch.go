package driving

import (
	"context"

	"github.com/custodia-labs/hnsearch/internal/core/domain"
)

// FetchController owns the query cache and the fetch lifecycle.
//
// Commands that start a fetch return the request instead of running it.
// The caller executes the request (possibly on another goroutine) and hands
// the result back through Apply, where staleness is checked.
type FetchController interface {
	// Start submits the configured default query.
	Start() *domain.FetchRequest

	// SubmitQuery makes term the active query.
	// Returns nil when no fetch is needed (cache hit, already loading, or disposed).
	SubmitQuery(term string) *domain.FetchRequest

	// LoadMore requests the next page of the active query.
	// Returns an error, and changes nothing, while a fetch is outstanding.
	LoadMore() (*domain.FetchRequest, error)

	// Execute performs the request against the search API.
	// It does not read or modify controller state.
	Execute(ctx context.Context, req domain.FetchRequest) domain.FetchResult

	// Apply resolves a request. Stale results are discarded and
	// reported as domain.ErrStaleResponse.
	Apply(result domain.FetchResult) error

	// Fetch executes and applies req. A nil req is a no-op.
	Fetch(ctx context.Context, req *domain.FetchRequest) error

	// DismissItem removes a hit from the active query's results.
	DismissItem(objectID string)

	// SetSortKey selects the presentation order.
	SetSortKey(key domain.SortKey)

	// SetFilter sets the local title filter. Empty clears it.
	SetFilter(pattern string)

	// Snapshot returns the read-only view of the active query.
	Snapshot() domain.Snapshot

	// State returns the current fetch state.
	State() domain.FetchState

	// Cache returns the current query cache value.
	Cache() domain.QueryCache

	// Dispose makes the controller inert. In-flight results are discarded.
	Dispose()

	// Disposed reports whether Dispose has been called.
	Disposed() bool
}
