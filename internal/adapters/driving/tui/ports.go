// Package tui provides an interactive terminal user interface for hnsearch.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/hnsearch/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces used by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Fetch owns the query cache and page fetches.
	Fetch driving.FetchController

	// Settings reports the active configuration on the help screen. Optional.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(fetch driving.FetchController, settings driving.SettingsService) *Ports {
	return &Ports{
		Fetch:    fetch,
		Settings: settings,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Fetch == nil {
		return ErrMissingFetchController
	}
	return nil
}
