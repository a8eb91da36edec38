package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for hnsearch resources.
	uriScheme = "hnsearch://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "results",
		Name:        "results",
		Description: "The active query's results after filtering and sorting",
		MIMEType:    "application/json",
	}, s.handleResultsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "items/{objectId}",
		Name:        "item",
		Description: "A single story from the active query's results",
		MIMEType:    "application/json",
	}, s.handleItemResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "settings",
		Name:        "settings",
		Description: "Active search and API settings",
		MIMEType:    "application/json",
	}, s.handleSettingsResource)
}

// handleResultsResource returns the current snapshot as JSON.
func (s *Server) handleResultsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	return jsonResource(req.Params.URI, s.ports.Fetch.Snapshot())
}

// handleItemResource returns one story from the active results.
func (s *Server) handleItemResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	objectID := extractObjectID(req.Params.URI)
	if objectID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	out := toResultsOutput(s.ports.Fetch.Snapshot(), 0)
	for _, hit := range out.Hits {
		if hit.ObjectID == objectID {
			return jsonResource(req.Params.URI, hit)
		}
	}
	return nil, mcp.ResourceNotFoundError(req.Params.URI)
}

// handleSettingsResource returns the active settings.
func (s *Server) handleSettingsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Settings == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	settings, err := s.ports.Settings.Get()
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	type settingsInfo struct {
		PageSize          int     `json:"page_size"`
		DefaultQuery      string  `json:"default_query"`
		BaseURL           string  `json:"base_url"`
		TimeoutSeconds    int     `json:"timeout_seconds"`
		RequestsPerSecond float64 `json:"requests_per_second"`
		Burst             int     `json:"burst"`
	}

	return jsonResource(req.Params.URI, settingsInfo{
		PageSize:          settings.Search.PageSize,
		DefaultQuery:      settings.Search.DefaultQuery,
		BaseURL:           settings.API.BaseURL,
		TimeoutSeconds:    int(settings.API.Timeout.Seconds()),
		RequestsPerSecond: settings.API.RequestsPerSecond,
		Burst:             settings.API.Burst,
	})
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractObjectID extracts the object ID from a URI like hnsearch://items/{objectId}.
func extractObjectID(uri string) string {
	const prefix = uriScheme + "items/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
