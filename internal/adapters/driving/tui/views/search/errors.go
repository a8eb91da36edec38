package search

import "errors"

// Error definitions for the search view.
var (
	// ErrNoController indicates that no fetch controller was provided.
	ErrNoController = errors.New("fetch controller is required")
)
