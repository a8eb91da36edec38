package driving

import "github.com/custodia-labs/hnsearch/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save validates and persists application settings.
	Save(settings *domain.AppSettings) error

	// SetPageSize updates the number of hits requested per page.
	SetPageSize(size int) error

	// SetDefaultQuery updates the query submitted on start.
	SetDefaultQuery(query string) error

	// SetBaseURL updates the search API endpoint.
	SetBaseURL(baseURL string) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
