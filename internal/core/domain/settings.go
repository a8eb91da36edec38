package domain

import (
	"fmt"
	"strings"
	"time"
)

// Default configuration values.
const (
	// DefaultPageSize is the number of hits requested per page.
	DefaultPageSize = 100

	// MaxPageSize is the largest page size the search API accepts.
	MaxPageSize = 1000

	// DefaultQuery is searched when the user has not typed anything yet.
	DefaultQuery = "redux"

	// DefaultBaseURL is the Hacker News search API endpoint.
	DefaultBaseURL = "https://hn.algolia.com/api/v1"

	// DefaultTimeout bounds a single page request.
	DefaultTimeout = 10 * time.Second

	// DefaultRequestsPerSecond paces requests to the search API.
	DefaultRequestsPerSecond = 5.0

	// DefaultBurst is the number of requests allowed back to back.
	DefaultBurst = 5
)

// SearchSettings holds search behaviour configuration.
type SearchSettings struct {
	// PageSize is the number of hits requested per page.
	PageSize int

	// DefaultQuery is submitted when the application starts.
	DefaultQuery string
}

// APISettings holds search API client configuration.
type APISettings struct {
	// BaseURL is the API root, without the /search suffix.
	BaseURL string

	// Timeout bounds a single HTTP request.
	Timeout time.Duration

	// RequestsPerSecond is the sustained request rate.
	RequestsPerSecond float64

	// Burst is the maximum burst size.
	Burst int
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Search holds search behaviour settings.
	Search SearchSettings

	// API holds search API client settings.
	API APISettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Search: SearchSettings{
			PageSize:     DefaultPageSize,
			DefaultQuery: DefaultQuery,
		},
		API: APISettings{
			BaseURL:           DefaultBaseURL,
			Timeout:           DefaultTimeout,
			RequestsPerSecond: DefaultRequestsPerSecond,
			Burst:             DefaultBurst,
		},
	}
}

// Validate checks that the settings are usable.
func (s AppSettings) Validate() error {
	if s.Search.PageSize < 1 || s.Search.PageSize > MaxPageSize {
		return fmt.Errorf("%w: page size must be between 1 and %d, got %d",
			ErrInvalidInput, MaxPageSize, s.Search.PageSize)
	}
	if strings.TrimSpace(s.API.BaseURL) == "" {
		return fmt.Errorf("%w: api base url is required", ErrInvalidInput)
	}
	if s.API.Timeout <= 0 {
		return fmt.Errorf("%w: api timeout must be positive", ErrInvalidInput)
	}
	if s.API.RequestsPerSecond <= 0 {
		return fmt.Errorf("%w: requests per second must be positive", ErrInvalidInput)
	}
	if s.API.Burst < 1 {
		return fmt.Errorf("%w: burst must be at least 1", ErrInvalidInput)
	}
	return nil
}
