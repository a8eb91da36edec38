package mcp

import (
	"context"
	"sync"

	"github.com/custodia-labs/hnsearch/internal/core/domain"
	"github.com/custodia-labs/hnsearch/internal/core/ports/driven"
	"github.com/custodia-labs/hnsearch/internal/core/ports/driving"
)

// stubSearchAPI implements driven.SearchAPI with canned pages per query.
type stubSearchAPI struct {
	mu    sync.Mutex
	pages map[string][][]domain.Item
	err   error
	calls int
}

func (m *stubSearchAPI) Search(_ context.Context, query string, page, _ int) (*domain.ResultPage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	pages := m.pages[query]
	if page >= len(pages) {
		return &domain.ResultPage{Hits: []domain.Item{}, Page: page}, nil
	}
	return &domain.ResultPage{Hits: pages[page], Page: page}, nil
}

var _ driven.SearchAPI = (*stubSearchAPI)(nil)

// mockSettingsService implements driving.SettingsService for testing.
type mockSettingsService struct {
	settings *domain.AppSettings
	err      error
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.settings == nil {
		defaults := domain.DefaultAppSettings()
		return &defaults, nil
	}
	return m.settings, nil
}

func (m *mockSettingsService) Save(*domain.AppSettings) error { return nil }
func (m *mockSettingsService) SetPageSize(int) error          { return nil }
func (m *mockSettingsService) SetDefaultQuery(string) error   { return nil }
func (m *mockSettingsService) SetBaseURL(string) error        { return nil }
func (m *mockSettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

var _ driving.SettingsService = (*mockSettingsService)(nil)
