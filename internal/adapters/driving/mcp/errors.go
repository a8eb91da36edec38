// Package mcp provides an MCP (Model Context Protocol) server adapter for hnsearch.
// It lets AI assistants drive the same search session as the other interfaces.
package mcp

import "errors"

// ErrMissingFetchController is returned when the fetch controller is not provided.
var ErrMissingFetchController = errors.New("mcp: fetch controller is required")
