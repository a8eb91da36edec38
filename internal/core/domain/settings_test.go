package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultAppSettings(t *testing.T) {
	settings := DefaultAppSettings()

	assert.Equal(t, 100, settings.Search.PageSize)
	assert.Equal(t, "redux", settings.Search.DefaultQuery)
	assert.Equal(t, "https://hn.algolia.com/api/v1", settings.API.BaseURL)
	assert.Equal(t, 10*time.Second, settings.API.Timeout)
	assert.InDelta(t, 5.0, settings.API.RequestsPerSecond, 0.001)
	assert.Equal(t, 5, settings.API.Burst)
	require.NoError(t, settings.Validate())
}

func TestAppSettings_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(s *AppSettings)
		wantErr bool
	}{
		{name: "defaults are valid", modify: func(_ *AppSettings) {}},
		{name: "page size of one", modify: func(s *AppSettings) { s.Search.PageSize = 1 }},
		{name: "max page size", modify: func(s *AppSettings) { s.Search.PageSize = MaxPageSize }},
		{name: "empty default query is allowed", modify: func(s *AppSettings) { s.Search.DefaultQuery = "" }},
		{name: "zero page size", modify: func(s *AppSettings) { s.Search.PageSize = 0 }, wantErr: true},
		{name: "page size too large", modify: func(s *AppSettings) { s.Search.PageSize = MaxPageSize + 1 }, wantErr: true},
		{name: "blank base url", modify: func(s *AppSettings) { s.API.BaseURL = "  " }, wantErr: true},
		{name: "zero timeout", modify: func(s *AppSettings) { s.API.Timeout = 0 }, wantErr: true},
		{name: "zero rate", modify: func(s *AppSettings) { s.API.RequestsPerSecond = 0 }, wantErr: true},
		{name: "zero burst", modify: func(s *AppSettings) { s.API.Burst = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := DefaultAppSettings()
			tt.modify(&settings)

			err := settings.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			assert.NoError(t, err)
		})
	}
}
