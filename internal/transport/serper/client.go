// Package serper implements the secondary search source against the
// Serper web search API.
package serper

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
	sourceName     = "serper"
	defaultBaseURL = "https://google.serper.dev"

	// maxResults is the Serper free-tier cap per request.
	maxResults = 10
)

// Client queries the Serper search API.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	attempts   uint
	logger     *zap.Logger
}

// Config holds the Serper client settings.
type Config struct {
	APIKey        string
	BaseURL       string
	Timeout       time.Duration
	RetryAttempts uint
	Logger        *zap.Logger
}

// New creates a Serper client.
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

type searchRequest struct {
	Query string `json:"q"`
	Num   int    `json:"num"`
}

type organicItem struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

type searchResponse struct {
	Organic []organicItem `json:"organic"`
}

// Fetch implements retrieval.Source. All failures are wrapped with
// domain.ErrSourceUnavailable so the orchestrator can recover uniformly.
func (c *Client) Fetch(ctx context.Context, query string, limit int) ([]hit.Hit, error) {
	if limit > maxResults {
		limit = maxResults
	}

	payload, err := json.Marshal(searchRequest{Query: query, Num: limit})
	if err != nil {
		return nil, fmt.Errorf("marshal serper request: %w", err)
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
		return nil, fmt.Errorf("serper search %q: %s: %w", query, err, domain.ErrSourceUnavailable)
	}

	hits := make([]hit.Hit, 0, limit)
	for i, item := range resp.Organic {
		if i >= limit {
			break
		}
		hits = append(hits, hit.New(item.Title, item.Link, item.Snippet, hit.Serper, i+1))
	}

	metrics.SourceRequestsTotal.WithLabelValues(sourceName, "success").Inc()
	metrics.SourceHitsTotal.WithLabelValues(sourceName).Add(float64(len(hits)))

	c.logger.Debug("serper search completed",
		zap.String("query", query),
		zap.Int("hits", len(hits)),
	)

	return hits, nil
}

// post performs one search attempt. resp is overwritten on each attempt.
func (c *Client) post(ctx context.Context, payload []byte, out *searchResponse) error {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+"/search", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("X-API-KEY", c.apiKey)
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
	return nil
}
