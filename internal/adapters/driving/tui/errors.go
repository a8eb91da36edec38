package tui

import "errors"

// ErrMissingFetchController is returned when the fetch controller is not provided.
var ErrMissingFetchController = errors.New("tui: fetch controller is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
