package mcp

import (
	"github.com/custodia-labs/hnsearch/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Fetch owns the search session shared by every tool call.
	Fetch driving.FetchController

	// Settings exposes the active configuration as a resource. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Fetch == nil {
		return ErrMissingFetchController
	}
	return nil
}
