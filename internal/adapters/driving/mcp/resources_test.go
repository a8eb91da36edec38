package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hnsearch/internal/core/domain"
)

func TestExtractObjectID(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{"valid item URI", "hnsearch://items/4242", "4242"},
		{"invalid prefix", "file://items/4242", ""},
		{"nested path", "hnsearch://items/4242/comments", ""},
		{"missing id", "hnsearch://items/", ""},
		{"empty URI", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractObjectID(tt.uri))
		})
	}
}

// Helper to create a ReadResourceRequest with the given URI.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestServer_handleResultsResource(t *testing.T) {
	ctx := context.Background()
	api := &stubSearchAPI{pages: map[string][][]domain.Item{"redux": {stories("r", 2)}}}
	server, _ := newTestServer(t, api, nil)
	_, _, err := server.handleSearch(ctx, nil, SearchInput{Query: "redux"})
	require.NoError(t, err)

	result, err := server.handleResultsResource(ctx, makeReadResourceRequest("hnsearch://results"))

	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	assert.Equal(t, "application/json", result.Contents[0].MIMEType)
	assert.Contains(t, result.Contents[0].Text, `"query": "redux"`)
	assert.Contains(t, result.Contents[0].Text, `"objectID": "r1"`)
	assert.Contains(t, result.Contents[0].Text, `"cached": true`)
}

func TestServer_handleItemResource(t *testing.T) {
	ctx := context.Background()
	api := &stubSearchAPI{pages: map[string][][]domain.Item{"redux": {stories("r", 2)}}}
	server, _ := newTestServer(t, api, nil)
	_, _, err := server.handleSearch(ctx, nil, SearchInput{Query: "redux"})
	require.NoError(t, err)

	t.Run("found", func(t *testing.T) {
		result, err := server.handleItemResource(ctx, makeReadResourceRequest("hnsearch://items/r1"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Contains(t, result.Contents[0].Text, `"title": "Story r1"`)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := server.handleItemResource(ctx, makeReadResourceRequest("hnsearch://items/zzz"))
		require.Error(t, err)
	})

	t.Run("invalid uri", func(t *testing.T) {
		_, err := server.handleItemResource(ctx, makeReadResourceRequest("hnsearch://other"))
		require.Error(t, err)
	})
}

func TestServer_handleSettingsResource(t *testing.T) {
	ctx := context.Background()
	req := makeReadResourceRequest("hnsearch://settings")

	t.Run("without settings service", func(t *testing.T) {
		server, _ := newTestServer(t, &stubSearchAPI{}, nil)

		_, err := server.handleSettingsResource(ctx, req)

		require.Error(t, err)
	})

	t.Run("returns settings", func(t *testing.T) {
		server, _ := newTestServer(t, &stubSearchAPI{}, &mockSettingsService{})

		result, err := server.handleSettingsResource(ctx, req)

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Contains(t, result.Contents[0].Text, `"page_size": 100`)
		assert.Contains(t, result.Contents[0].Text, `"timeout_seconds": 10`)
		assert.Contains(t, result.Contents[0].Text, domain.DefaultBaseURL)
	})

	t.Run("settings failure", func(t *testing.T) {
		server, _ := newTestServer(t, &stubSearchAPI{}, &mockSettingsService{err: errors.New("disk error")})

		_, err := server.handleSettingsResource(ctx, req)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "loading settings")
	})
}
