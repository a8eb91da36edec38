package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/custodia-labs/hnsearch/internal/core/domain"
	"github.com/custodia-labs/hnsearch/internal/core/ports/driven"
	"github.com/custodia-labs/hnsearch/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyPageSize          = "search.page_size"
	keyDefaultQuery      = "search.default_query"
	keyBaseURL           = "api.base_url"
	keyTimeoutSeconds    = "api.timeout_seconds"
	keyRequestsPerSecond = "api.requests_per_second"
	keyBurst             = "api.burst"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
// Missing or out of range values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Search: domain.SearchSettings{
			PageSize:     s.getPageSize(defaults.Search.PageSize),
			DefaultQuery: s.getString(keyDefaultQuery, defaults.Search.DefaultQuery),
		},
		API: domain.APISettings{
			BaseURL:           strings.TrimRight(s.getString(keyBaseURL, defaults.API.BaseURL), "/"),
			Timeout:           s.getTimeout(defaults.API.Timeout),
			RequestsPerSecond: s.getFloat(keyRequestsPerSecond, defaults.API.RequestsPerSecond),
			Burst:             s.getInt(keyBurst, defaults.API.Burst),
		},
	}

	return settings, nil
}

// Save validates and persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	// Save search settings
	if err := s.configStore.Set(keyPageSize, settings.Search.PageSize); err != nil {
		return fmt.Errorf("save page size: %w", err)
	}
	if err := s.configStore.Set(keyDefaultQuery, settings.Search.DefaultQuery); err != nil {
		return fmt.Errorf("save default query: %w", err)
	}

	// Save API settings
	if err := s.configStore.Set(keyBaseURL, settings.API.BaseURL); err != nil {
		return fmt.Errorf("save api base_url: %w", err)
	}
	if err := s.configStore.Set(keyTimeoutSeconds, int(settings.API.Timeout/time.Second)); err != nil {
		return fmt.Errorf("save api timeout: %w", err)
	}
	if err := s.configStore.Set(keyRequestsPerSecond, settings.API.RequestsPerSecond); err != nil {
		return fmt.Errorf("save api requests_per_second: %w", err)
	}
	if err := s.configStore.Set(keyBurst, settings.API.Burst); err != nil {
		return fmt.Errorf("save api burst: %w", err)
	}

	return nil
}

// SetPageSize updates the number of hits requested per page.
func (s *SettingsService) SetPageSize(size int) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Search.PageSize = size
	return s.Save(settings)
}

// SetDefaultQuery updates the query submitted on start.
func (s *SettingsService) SetDefaultQuery(query string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Search.DefaultQuery = query
	return s.Save(settings)
}

// SetBaseURL updates the search API endpoint.
func (s *SettingsService) SetBaseURL(baseURL string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.API.BaseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	return s.Save(settings)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	val := s.configStore.GetFloat(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getPageSize(defaultVal int) int {
	val := s.getInt(keyPageSize, defaultVal)
	if val > domain.MaxPageSize {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getTimeout(defaultVal time.Duration) time.Duration {
	secs := s.configStore.GetInt(keyTimeoutSeconds)
	if secs <= 0 {
		return defaultVal
	}
	return time.Duration(secs) * time.Second
}
