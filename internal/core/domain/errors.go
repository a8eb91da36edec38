package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Fetch Errors.

	// ErrRequestFailed indicates the search API returned a non-success
	// status or the request could not be sent at all.
	ErrRequestFailed = errors.New("request failed")

	// ErrRateLimited indicates the API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")

	// ErrStaleResponse indicates a response arrived for a query that is no
	// longer active, or after the controller was disposed. It is never shown
	// to users.
	ErrStaleResponse = errors.New("stale response")

	// ErrFetchInProgress indicates a page fetch is already outstanding.
	ErrFetchInProgress = errors.New("fetch in progress")

	// ErrNoActiveQuery indicates there is no query to load more pages for.
	ErrNoActiveQuery = errors.New("no active query")

	// ErrDisposed indicates the controller has been disposed.
	ErrDisposed = errors.New("controller disposed")
)
