// Package firecrawl implements the primary search source against the
// Firecrawl search API, which returns scraped page content alongside the
// usual title/URL/description triple.
package firecrawl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	retry "github.com/avast/retry-go/v4"
	"go.uber.org/zap"

	"github.com/toolscout/toolscout/internal/domain"
	"github.com/toolscout/toolscout/internal/domain/hit"
	"github.com/toolscout/toolscout/internal/metrics"
)

const (
	sourceName     = "firecrawl"
	defaultBaseURL = "https://api.firecrawl.dev"
)

// Client queries the Firecrawl search API.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	attempts   uint
	logger     *zap.Logger
}

// Config holds the Firecrawl client settings.
type Config struct {
	APIKey        string
	BaseURL       string
	Timeout       time.Duration
	RetryAttempts uint
	Logger        *zap.Logger
}

// New creates a Firecrawl client.
func New(cfg *Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	attempts := cfg.RetryAttempts
	if attempts == 0 {
		attempts = 1
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		attempts:   attempts,
		logger:     cfg.Logger,
	}
}

// Name implements retrieval.Source.
func (c *Client) Name() string { return sourceName }

type scrapeOptions struct {
	Formats []string `json:"formats"`
}

type searchRequest struct {
	Query         string        `json:"query"`
	Limit         int           `json:"limit"`
	ScrapeOptions scrapeOptions `json:"scrapeOptions"`
}

type searchItem struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Markdown    string `json:"markdown"`
}

type searchResponse struct {
	Success bool         `json:"success"`
	Data    []searchItem `json:"data"`
}

// Fetch implements retrieval.Source. All failures are wrapped with
// domain.ErrSourceUnavailable so the orchestrator can recover uniformly.
func (c *Client) Fetch(ctx context.Context, query string, limit int) ([]hit.Hit, error) {
	payload, err := json.Marshal(searchRequest{
		Query:         query,
		Limit:         limit,
		ScrapeOptions: scrapeOptions{Formats: []string{"markdown"}},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal firecrawl request: %w", err)
	}

	start := time.Now()

	var resp searchResponse
	err = retry.Do(
		func() error { return c.post(ctx, payload, &resp) },
		retry.Context(ctx),
		retry.Attempts(c.attempts),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
	)

	metrics.SourceRequestDuration.WithLabelValues(sourceName).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.SourceRequestsTotal.WithLabelValues(sourceName, "error").Inc()
		return nil, fmt.Errorf("firecrawl search %q: %s: %w", query, err, domain.ErrSourceUnavailable)
	}

	hits := make([]hit.Hit, 0, limit)
	for i, item := range resp.Data {
		if i >= limit {
			break
		}
		body := item.Markdown
		if body == "" {
			body = item.Description
		}
		hits = append(hits, hit.New(item.Title, item.URL, body, hit.Firecrawl, i+1))
	}

	metrics.SourceRequestsTotal.WithLabelValues(sourceName, "success").Inc()
	metrics.SourceHitsTotal.WithLabelValues(sourceName).Add(float64(len(hits)))

	c.logger.Debug("firecrawl search completed",
		zap.String("query", query),
		zap.Int("hits", len(hits)),
	)

	return hits, nil
}

// post performs one search attempt. resp is overwritten on each attempt.
func (c *Client) post(ctx context.Context, payload []byte, out *searchResponse) error {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+"/v1/search", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	*out = searchResponse{}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if !out.Success {
		return fmt.Errorf("api reported failure")
	}
	return nil
}
