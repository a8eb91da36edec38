package algolia

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/custodia-labs/hnsearch/internal/core/domain"
	"github.com/custodia-labs/hnsearch/internal/core/ports/driven"
	"github.com/custodia-labs/hnsearch/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.SearchAPI = (*Client)(nil)

// maxErrorBody caps how much of a failed response is quoted in errors.
const maxErrorBody = 256

// Config holds configuration for the search API client.
type Config struct {
	// BaseURL is the API root, e.g. https://hn.algolia.com/api/v1.
	BaseURL string

	// Timeout bounds each HTTP request.
	Timeout time.Duration

	// RequestsPerSecond is the sustained request rate.
	RequestsPerSecond float64

	// Burst is the maximum number of back to back requests.
	Burst int

	// HTTPClient overrides the default client. Timeout is ignored when set.
	HTTPClient *http.Client
}

// ConfigFromSettings builds a Config from application settings.
func ConfigFromSettings(s domain.APISettings) Config {
	return Config{
		BaseURL:           s.BaseURL,
		Timeout:           s.Timeout,
		RequestsPerSecond: s.RequestsPerSecond,
		Burst:             s.Burst,
	}
}

// Client queries the Hacker News search API.
type Client struct {
	limiter *RateLimiter

	mu      sync.RWMutex
	baseURL string
	client  *http.Client
}

// NewClient creates a search API client. Zero config fields take defaults.
func NewClient(cfg Config) *Client {
	cfg = withDefaults(cfg)
	c := &Client{limiter: NewRateLimiter(cfg.RequestsPerSecond, cfg.Burst)}
	c.setEndpoint(cfg)
	return c
}

// Configure applies cfg to later requests. Requests already in flight
// finish against the old endpoint. An open backoff window is kept.
func (c *Client) Configure(cfg Config) {
	cfg = withDefaults(cfg)
	c.limiter.SetRate(cfg.RequestsPerSecond, cfg.Burst)
	c.setEndpoint(cfg)
	logger.Debug("Search API reconfigured: %s", cfg.BaseURL)
}

func (c *Client) setEndpoint(cfg Config) {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.baseURL = strings.TrimRight(cfg.BaseURL, "/")
	c.client = httpClient
}

func (c *Client) endpoint() (string, *http.Client) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.baseURL, c.client
}

func withDefaults(cfg Config) Config {
	if cfg.BaseURL == "" {
		cfg.BaseURL = domain.DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = domain.DefaultTimeout
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = domain.DefaultRequestsPerSecond
	}
	if cfg.Burst <= 0 {
		cfg.Burst = domain.DefaultBurst
	}
	return cfg
}

// searchResponse is the subset of the API response we decode.
type searchResponse struct {
	Hits        []searchHit `json:"hits"`
	Page        int         `json:"page"`
	NbHits      int         `json:"nbHits"`
	NbPages     int         `json:"nbPages"`
	HitsPerPage int         `json:"hitsPerPage"`
}

// searchHit mirrors one API hit. Nullable fields decode to zero values.
type searchHit struct {
	ObjectID    string `json:"objectID"`
	Title       string `json:"title"`
	StoryTitle  string `json:"story_title"`
	URL         string `json:"url"`
	StoryURL    string `json:"story_url"`
	Author      string `json:"author"`
	NumComments int    `json:"num_comments"`
	Points      int    `json:"points"`
}

func (h searchHit) toItem() domain.Item {
	item := domain.Item{
		ObjectID:    h.ObjectID,
		Title:       h.Title,
		URL:         h.URL,
		Author:      h.Author,
		NumComments: h.NumComments,
		Points:      h.Points,
	}
	if item.Title == "" {
		item.Title = h.StoryTitle
	}
	if item.URL == "" {
		item.URL = h.StoryURL
	}
	return item
}

// Search fetches one page of hits for query.
func (c *Client) Search(ctx context.Context, query string, page, hitsPerPage int) (*domain.ResultPage, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrRequestFailed, err)
	}

	baseURL, httpClient := c.endpoint()

	params := url.Values{}
	params.Set("query", query)
	params.Set("page", strconv.Itoa(page))
	params.Set("hitsPerPage", strconv.Itoa(hitsPerPage))
	endpoint := baseURL + "/search?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %w", domain.ErrRequestFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	logger.Debug("GET %s", endpoint)
	defer logger.Elapsed("GET "+endpoint, time.Now())

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrRequestFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	logger.Debug("GET %s: %d", endpoint, resp.StatusCode)

	if resp.StatusCode == http.StatusTooManyRequests {
		c.limiter.Backoff(parseRetryAfter(resp.Header.Get("Retry-After")))
		return nil, fmt.Errorf("%w: %w", domain.ErrRequestFailed, domain.ErrRateLimited)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("%w: status %d: %s",
			domain.ErrRequestFailed, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var decoded searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("%w: decode response: %w", domain.ErrRequestFailed, err)
	}

	hits := make([]domain.Item, 0, len(decoded.Hits))
	for _, h := range decoded.Hits {
		hits = append(hits, h.toItem())
	}

	logger.Debug("Search %q page %d/%d: %d hits", query, decoded.Page, decoded.NbPages, len(hits))

	return &domain.ResultPage{Hits: hits, Page: decoded.Page}, nil
}
