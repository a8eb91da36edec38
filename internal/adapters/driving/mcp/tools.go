package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/hnsearch/internal/core/domain"
)

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"the Hacker News search term"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of hits to return (default all cached hits)"`
}

// LoadMoreInput is the input schema for the load_more tool.
type LoadMoreInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"maximum number of hits to return (default all cached hits)"`
}

// DismissInput is the input schema for the dismiss tool.
type DismissInput struct {
	ObjectID string `json:"object_id" jsonschema:"objectID of the story to remove from the results"`
}

// SortInput is the input schema for the sort tool.
type SortInput struct {
	Key string `json:"key" jsonschema:"one of none, title, author, comments, points; picking the active key reverses the order"`
}

// FilterInput is the input schema for the filter tool.
type FilterInput struct {
	Pattern string `json:"pattern" jsonschema:"fuzzy pattern matched against titles; empty clears the filter"`
}

// ResultsOutput is the output schema shared by every tool.
type ResultsOutput struct {
	Query    string      `json:"query"`
	Hits     []HitOutput `json:"hits"`
	Count    int         `json:"count"`
	Total    int         `json:"total"`
	Page     int         `json:"page"`
	Loading  bool        `json:"loading"`
	Error    string      `json:"error,omitempty"`
	Sort     string      `json:"sort"`
	Reversed bool        `json:"reversed"`
	Filter   string      `json:"filter,omitempty"`
}

// HitOutput represents a single story.
type HitOutput struct {
	ObjectID    string `json:"object_id"`
	Title       string `json:"title"`
	URL         string `json:"url,omitempty"`
	Author      string `json:"author"`
	Points      int    `json:"points"`
	NumComments int    `json:"num_comments"`
	CommentsURL string `json:"comments_url"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Search Hacker News stories. Repeated queries are served from the session cache",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "load_more",
		Description: "Fetch the next page for the active query and append it to the results",
	}, s.handleLoadMore)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "dismiss",
		Description: "Remove a story from the active query's results for this session",
	}, s.handleDismiss)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "sort",
		Description: "Order the displayed results by title, author, comments or points",
	}, s.handleSort)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "filter",
		Description: "Fuzzy filter the displayed results by title",
	}, s.handleFilter)
}

// handleSearch makes input.Query the active query and waits for its first page.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, ResultsOutput, error) {
	req := s.ports.Fetch.SubmitQuery(input.Query)
	if err := s.fetch(ctx, req); err != nil {
		return nil, ResultsOutput{}, err
	}
	return nil, s.results(input.Limit), nil
}

// handleLoadMore fetches the next page of the active query.
func (s *Server) handleLoadMore(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input LoadMoreInput,
) (*mcp.CallToolResult, ResultsOutput, error) {
	req, err := s.ports.Fetch.LoadMore()
	if err != nil {
		return nil, ResultsOutput{}, fmt.Errorf("load more: %w", err)
	}
	if err := s.fetch(ctx, req); err != nil {
		return nil, ResultsOutput{}, err
	}
	return nil, s.results(input.Limit), nil
}

// handleDismiss removes a story from the active results.
func (s *Server) handleDismiss(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input DismissInput,
) (*mcp.CallToolResult, ResultsOutput, error) {
	if input.ObjectID == "" {
		return nil, ResultsOutput{}, fmt.Errorf("%w: object_id is required", domain.ErrInvalidInput)
	}
	s.ports.Fetch.DismissItem(input.ObjectID)
	return nil, s.results(0), nil
}

// handleSort selects the presentation order.
func (s *Server) handleSort(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input SortInput,
) (*mcp.CallToolResult, ResultsOutput, error) {
	key, err := domain.ParseSortKey(input.Key)
	if err != nil {
		return nil, ResultsOutput{}, err
	}
	s.ports.Fetch.SetSortKey(key)
	return nil, s.results(0), nil
}

// handleFilter sets the title filter.
func (s *Server) handleFilter(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input FilterInput,
) (*mcp.CallToolResult, ResultsOutput, error) {
	s.ports.Fetch.SetFilter(input.Pattern)
	return nil, s.results(0), nil
}

// fetch runs req to completion. Request failures are left in the snapshot
// for the caller to read; only a disposed controller is reported as an error.
func (s *Server) fetch(ctx context.Context, req *domain.FetchRequest) error {
	if s.ports.Fetch.Disposed() {
		return domain.ErrDisposed
	}
	err := s.ports.Fetch.Fetch(ctx, req)
	if err != nil && !errors.Is(err, domain.ErrRequestFailed) {
		return err
	}
	return nil
}

// results converts the current snapshot, keeping at most limit hits.
func (s *Server) results(limit int) ResultsOutput {
	return toResultsOutput(s.ports.Fetch.Snapshot(), limit)
}

func toResultsOutput(snap domain.Snapshot, limit int) ResultsOutput {
	hits := snap.Hits
	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}

	out := ResultsOutput{
		Query:    snap.Query,
		Hits:     make([]HitOutput, len(hits)),
		Count:    len(hits),
		Total:    snap.Total,
		Page:     snap.Page,
		Loading:  snap.IsLoading,
		Sort:     string(snap.Sort.Key),
		Reversed: snap.Sort.Reversed,
		Filter:   snap.Filter,
	}
	if out.Sort == "" {
		out.Sort = string(domain.SortNone)
	}
	if snap.Error != nil {
		out.Error = snap.Error.Message
	}

	for i, item := range hits {
		out.Hits[i] = HitOutput{
			ObjectID:    item.ObjectID,
			Title:       item.Title,
			URL:         item.URL,
			Author:      item.Author,
			Points:      item.Points,
			NumComments: item.NumComments,
			CommentsURL: item.CommentsURL(),
		}
	}
	return out
}
