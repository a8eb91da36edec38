package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hnsearch/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/hnsearch/internal/core/domain"
)

func TestNewSettingsService(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NotNil(t, service)
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	require.NotNil(t, settings)
	assert.Equal(t, domain.DefaultAppSettings(), *settings)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("search.page_size", 50)
	_ = store.Set("search.default_query", "golang")
	_ = store.Set("api.base_url", "http://localhost:8080/")
	_ = store.Set("api.timeout_seconds", 3)
	_ = store.Set("api.requests_per_second", 1.5)
	_ = store.Set("api.burst", 2)

	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, 50, settings.Search.PageSize)
	assert.Equal(t, "golang", settings.Search.DefaultQuery)
	assert.Equal(t, "http://localhost:8080", settings.API.BaseURL)
	assert.Equal(t, 3*time.Second, settings.API.Timeout)
	assert.InDelta(t, 1.5, settings.API.RequestsPerSecond, 0.001)
	assert.Equal(t, 2, settings.API.Burst)
}

func TestSettingsService_Get_InvalidValuesReturnDefaults(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("search.page_size", 5000)
	_ = store.Set("api.timeout_seconds", -1)
	_ = store.Set("api.burst", 0)

	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	defaults := domain.DefaultAppSettings()
	assert.Equal(t, defaults.Search.PageSize, settings.Search.PageSize)
	assert.Equal(t, defaults.API.Timeout, settings.API.Timeout)
	assert.Equal(t, defaults.API.Burst, settings.API.Burst)
}

func TestSettingsService_Save(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	settings := &domain.AppSettings{
		Search: domain.SearchSettings{
			PageSize:     20,
			DefaultQuery: "rust",
		},
		API: domain.APISettings{
			BaseURL:           "http://example.test/api/v1",
			Timeout:           30 * time.Second,
			RequestsPerSecond: 2,
			Burst:             1,
		},
	}

	err := service.Save(settings)
	require.NoError(t, err)

	retrieved, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, *settings, *retrieved)
}

func TestSettingsService_Save_Invalid(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	settings := domain.DefaultAppSettings()
	settings.Search.PageSize = 0

	err := service.Save(&settings)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, exists := store.Get("search.page_size")
	assert.False(t, exists)
}

func TestSettingsService_SetPageSize(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{"minimum", 1, false},
		{"typical", 100, false},
		{"maximum", domain.MaxPageSize, false},
		{"zero", 0, true},
		{"too large", domain.MaxPageSize + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewSettingsService(memory.NewConfigStore())

			err := service.SetPageSize(tt.size)

			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			settings, _ := service.Get()
			assert.Equal(t, tt.size, settings.Search.PageSize)
		})
	}
}

func TestSettingsService_SetDefaultQuery(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	require.NoError(t, service.SetDefaultQuery("kubernetes"))

	settings, _ := service.Get()
	assert.Equal(t, "kubernetes", settings.Search.DefaultQuery)
}

func TestSettingsService_SetBaseURL(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	require.NoError(t, service.SetBaseURL(" http://localhost:9000/api/ "))

	settings, _ := service.Get()
	assert.Equal(t, "http://localhost:9000/api", settings.API.BaseURL)
}

func TestSettingsService_SetBaseURL_Empty(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	err := service.SetBaseURL("  ")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsService_GetDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	assert.Equal(t, domain.DefaultAppSettings(), service.GetDefaults())
}
