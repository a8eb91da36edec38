package domain

// ErrorInfo is the user-visible description of a failed fetch.
type ErrorInfo struct {
	// Message is displayed to the user as-is.
	Message string `json:"message"`
}

// FetchState is the controller's lifecycle state.
type FetchState struct {
	// ActiveQuery is the query the display currently intends to show.
	ActiveQuery string `json:"active_query"`

	// Submitted is true once any query, including "", has been submitted.
	Submitted bool `json:"submitted"`

	// IsLoading is true while a non-stale page fetch is outstanding.
	IsLoading bool `json:"is_loading"`

	// Error describes the last failed fetch for ActiveQuery, if any.
	Error *ErrorInfo `json:"error,omitempty"`
}

// FetchRequest is a page fetch issued by the controller but not yet resolved.
type FetchRequest struct {
	// ID identifies this request. Responses are matched against it when
	// they are applied.
	ID string `json:"id"`

	// Query is the search term.
	Query string `json:"query"`

	// Page is the zero-based page number requested.
	Page int `json:"page"`

	// HitsPerPage is the requested page size.
	HitsPerPage int `json:"hits_per_page"`
}

// FetchResult carries the outcome of executing a FetchRequest.
type FetchResult struct {
	// Request is the request this result answers.
	Request FetchRequest

	// Hits are the items returned by the search API.
	Hits []Item

	// Page is the page number reported by the search API.
	Page int

	// Err is non-nil when the request failed.
	Err error
}

// Snapshot is the read-only view handed to display adapters.
type Snapshot struct {
	// Query is the active query.
	Query string `json:"query"`

	// Active mirrors FetchState.Submitted.
	Active bool `json:"active"`

	// Hits are the active query's cached hits after filtering and sorting.
	Hits []Item `json:"hits"`

	// Total is the number of cached hits before filtering.
	Total int `json:"total"`

	// Page is the last merged page, or -1 when nothing is cached.
	Page int `json:"page"`

	// Cached is true when the active query has a cache entry.
	Cached bool `json:"cached"`

	// IsLoading mirrors FetchState.IsLoading.
	IsLoading bool `json:"is_loading"`

	// Error mirrors FetchState.Error.
	Error *ErrorInfo `json:"error,omitempty"`

	// Sort is the presentation ordering applied to Hits.
	Sort SortState `json:"sort"`

	// Filter is the local title filter applied to Hits.
	Filter string `json:"filter,omitempty"`
}

// CanLoadMore reports whether a "load more" command would be accepted.
func (s Snapshot) CanLoadMore() bool {
	return s.Active && !s.IsLoading
}
