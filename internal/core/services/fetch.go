package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/custodia-labs/hnsearch/internal/core/domain"
	"github.com/custodia-labs/hnsearch/internal/core/ports/driven"
	"github.com/custodia-labs/hnsearch/internal/core/ports/driving"
	"github.com/custodia-labs/hnsearch/internal/logger"
)

// Ensure FetchController implements the interface.
var _ driving.FetchController = (*FetchController)(nil)

// errorMessage prefixes every user-visible fetch failure.
const errorMessage = "Something went wrong..."

// FetchController is the single writer of the query cache and fetch state.
//
// Fetching is split into three steps so that the network call never holds
// the lock: SubmitQuery/LoadMore issue a request, Execute runs it, and
// Apply resumes with the result. Staleness is decided in Apply, against the
// state at that moment.
type FetchController struct {
	api      driven.SearchAPI
	settings domain.SearchSettings

	mu       sync.Mutex
	cache    domain.QueryCache
	state    domain.FetchState
	pending  *domain.FetchRequest
	sort     domain.SortState
	filter   string
	disposed bool
}

// NewFetchController creates a controller backed by api.
// A non-positive page size falls back to domain.DefaultPageSize.
func NewFetchController(api driven.SearchAPI, settings domain.SearchSettings) *FetchController {
	if settings.PageSize <= 0 {
		settings.PageSize = domain.DefaultPageSize
	}
	return &FetchController{
		api:      api,
		settings: settings,
		cache:    domain.NewQueryCache(),
	}
}

// Start submits the configured default query.
func (c *FetchController) Start() *domain.FetchRequest {
	return c.SubmitQuery(c.settings.DefaultQuery)
}

// SubmitQuery makes term the active query and returns the page 0 request
// when term is not cached yet.
func (c *FetchController) SubmitQuery(term string) *domain.FetchRequest {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.disposed {
		return nil
	}

	if term == c.state.ActiveQuery && c.state.IsLoading {
		logger.Debug("Query %q already loading", term)
		return nil
	}

	c.state.ActiveQuery = term
	c.state.Submitted = true

	if c.cache.Has(term) {
		logger.Debug("Cache hit for %q (page %d)", term, c.cache.CurrentPage(term))
		c.state.IsLoading = false
		c.state.Error = nil
		c.pending = nil
		return nil
	}

	logger.Debug("Cache miss for %q", term)
	return c.issue(term, 0)
}

// LoadMore requests the page after the active query's last merged page.
func (c *FetchController) LoadMore() (*domain.FetchRequest, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.disposed {
		return nil, domain.ErrDisposed
	}
	if !c.state.Submitted {
		return nil, domain.ErrNoActiveQuery
	}
	if c.state.IsLoading {
		return nil, domain.ErrFetchInProgress
	}

	query := c.state.ActiveQuery
	return c.issue(query, c.cache.CurrentPage(query)+1), nil
}

// issue records a new outstanding request (caller must hold lock).
func (c *FetchController) issue(query string, page int) *domain.FetchRequest {
	req := &domain.FetchRequest{
		ID:          uuid.NewString(),
		Query:       query,
		Page:        page,
		HitsPerPage: c.settings.PageSize,
	}

	c.state.IsLoading = true
	c.state.Error = nil
	pending := *req
	c.pending = &pending

	logger.Debug("Issued fetch %s: query=%q page=%d hitsPerPage=%d", req.ID, query, page, req.HitsPerPage)
	return req
}

// Execute performs req against the search API without touching state.
func (c *FetchController) Execute(ctx context.Context, req domain.FetchRequest) domain.FetchResult {
	result := domain.FetchResult{Request: req}

	page, err := c.api.Search(ctx, req.Query, req.Page, req.HitsPerPage)
	if err != nil {
		result.Err = err
		return result
	}
	if page == nil {
		result.Err = fmt.Errorf("%w: empty response", domain.ErrRequestFailed)
		return result
	}

	result.Hits = page.Hits
	result.Page = page.Page
	return result
}

// Apply resolves a fetch. A result is stale when the controller is
// disposed, its query is no longer active, or it does not answer the
// outstanding request. Stale results change nothing.
func (c *FetchController) Apply(result domain.FetchResult) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	req := result.Request

	if c.isStale(req) {
		logger.Debug("Discarding stale response %s: query=%q page=%d", req.ID, req.Query, req.Page)
		return domain.ErrStaleResponse
	}

	c.pending = nil
	c.state.IsLoading = false

	if result.Err == nil && result.Page != req.Page {
		result.Err = fmt.Errorf("%w: requested page %d, received page %d",
			domain.ErrRequestFailed, req.Page, result.Page)
	}

	if result.Err != nil {
		logger.Warn("Fetch failed for %q page %d: %v", req.Query, req.Page, result.Err)
		c.state.Error = &domain.ErrorInfo{Message: userMessage(result.Err)}
		return result.Err
	}

	c.cache = c.cache.MergePage(req.Query, result.Hits, req.Page)
	c.state.Error = nil

	logger.Debug("Merged %d hits for %q page %d (total %d)",
		len(result.Hits), req.Query, req.Page, c.cache.CurrentPage(req.Query))
	return nil
}

// isStale reports whether req no longer matters (caller must hold lock).
func (c *FetchController) isStale(req domain.FetchRequest) bool {
	if c.disposed {
		return true
	}
	if req.Query != c.state.ActiveQuery {
		return true
	}
	if c.pending == nil || c.pending.ID != req.ID || c.pending.Page != req.Page {
		return true
	}
	return false
}

// Fetch executes and applies req. Stale results are not reported as errors.
func (c *FetchController) Fetch(ctx context.Context, req *domain.FetchRequest) error {
	if req == nil {
		return nil
	}
	err := c.Apply(c.Execute(ctx, *req))
	if errors.Is(err, domain.ErrStaleResponse) {
		return nil
	}
	return err
}

// DismissItem removes objectID from the active query's cached hits.
func (c *FetchController) DismissItem(objectID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.disposed {
		return
	}
	c.cache = c.cache.RemoveItem(c.state.ActiveQuery, objectID)
	logger.Debug("Dismissed %s from %q", objectID, c.state.ActiveQuery)
}

// SetSortKey applies the sort toggle rule for key.
func (c *FetchController) SetSortKey(key domain.SortKey) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.disposed || !key.IsValid() {
		return
	}
	c.sort = c.sort.Select(key)
}

// SetFilter sets the local title filter.
func (c *FetchController) SetFilter(pattern string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.disposed {
		return
	}
	c.filter = pattern
}

// Snapshot returns the active query's hits after filtering and sorting.
func (c *FetchController) Snapshot() domain.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, cached := c.cache.Get(c.state.ActiveQuery)
	page := -1
	if cached {
		page = entry.Page
	}

	hits := c.sort.Apply(FilterHits(entry.Hits, c.filter))

	return domain.Snapshot{
		Query:     c.state.ActiveQuery,
		Active:    c.state.Submitted,
		Hits:      hits,
		Total:     len(entry.Hits),
		Page:      page,
		Cached:    cached,
		IsLoading: c.state.IsLoading,
		Error:     copyErrorInfo(c.state.Error),
		Sort:      c.sort,
		Filter:    c.filter,
	}
}

// State returns the current fetch state.
func (c *FetchController) State() domain.FetchState {
	c.mu.Lock()
	defer c.mu.Unlock()

	state := c.state
	state.Error = copyErrorInfo(c.state.Error)
	return state
}

// Cache returns the current query cache value.
func (c *FetchController) Cache() domain.QueryCache {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache
}

// Dispose makes the controller inert. It is safe to call more than once.
func (c *FetchController) Dispose() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.disposed {
		return
	}
	c.disposed = true
	c.pending = nil
	logger.Debug("Fetch controller disposed")
}

// Disposed reports whether Dispose has been called.
func (c *FetchController) Disposed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.disposed
}

// userMessage renders err for display.
func userMessage(err error) string {
	return errorMessage + " " + err.Error()
}

func copyErrorInfo(info *domain.ErrorInfo) *domain.ErrorInfo {
	if info == nil {
		return nil
	}
	c := *info
	return &c
}
