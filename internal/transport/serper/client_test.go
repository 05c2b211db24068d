package serper

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/toolscout/toolscout/internal/domain"
	"github.com/toolscout/toolscout/internal/domain/hit"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := New(&Config{
		APIKey:        "test-key",
		BaseURL:       srv.URL,
		Timeout:       time.Second,
		RetryAttempts: 1,
		Logger:        zap.NewNop(),
	})
	return c, srv
}

func TestFetch_ParsesOrganicResults(t *testing.T) {
	var gotReq searchRequest
	var gotAPIKey string

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAPIKey = r.Header.Get("X-API-KEY")
		if r.URL.Path != "/search" {
			t.Errorf("path: got %s, want /search", r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&gotReq)

		_ = json.NewEncoder(w).Encode(searchResponse{Organic: []organicItem{
			{Title: "First", Link: "http://a.com", Snippet: "snippet a"},
			{Title: "Second", Link: "http://b.com", Snippet: "snippet b"},
		}})
	})

	hits, err := c.Fetch(context.Background(), "mlflow alternatives", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotAPIKey != "test-key" {
		t.Errorf("X-API-KEY: got %q", gotAPIKey)
	}
	if gotReq.Query != "mlflow alternatives" || gotReq.Num != 5 {
		t.Errorf("request: got %+v", gotReq)
	}

	if len(hits) != 2 {
		t.Fatalf("expected 2 hits, got %d", len(hits))
	}
	if hits[0].Title() != "First" || hits[0].URL() != "http://a.com" || hits[0].Body() != "snippet a" {
		t.Errorf("unexpected first hit: %+v", hits[0])
	}
	if hits[0].Position() != 1 || hits[1].Position() != 2 {
		t.Errorf("positions: got %d, %d", hits[0].Position(), hits[1].Position())
	}
	if hits[0].Source() != hit.Serper {
		t.Errorf("source: got %s", hits[0].Source())
	}
}

func TestFetch_ClampsLimit(t *testing.T) {
	var gotReq searchRequest

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotReq)
		_ = json.NewEncoder(w).Encode(searchResponse{})
	})

	if _, err := c.Fetch(context.Background(), "q1", 25); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotReq.Num != maxResults {
		t.Errorf("num: got %d, want %d", gotReq.Num, maxResults)
	}
}

func TestFetch_TruncatesExtraResults(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		items := make([]organicItem, 8)
		for i := range items {
			items[i] = organicItem{Title: "Item", Link: "http://x.com"}
		}
		_ = json.NewEncoder(w).Encode(searchResponse{Organic: items})
	})

	hits, err := c.Fetch(context.Background(), "q1", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hits) != 3 {
		t.Errorf("expected 3 hits, got %d", len(hits))
	}
}

func TestFetch_ServerErrorWrapped(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.Fetch(context.Background(), "q1", 5)
	if !errors.Is(err, domain.ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
}

func TestFetch_RetriesOnFailure(t *testing.T) {
	var attempts int

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_ = json.NewEncoder(w).Encode(searchResponse{Organic: []organicItem{
			{Title: "Recovered", Link: "http://a.com"},
		}})
	}))
	defer srv.Close()

	c := New(&Config{
		APIKey:        "test-key",
		BaseURL:       srv.URL,
		Timeout:       time.Second,
		RetryAttempts: 2,
		Logger:        zap.NewNop(),
	})

	hits, err := c.Fetch(context.Background(), "q1", 5)
	if err != nil {
		t.Fatalf("unexpected error after retry: %v", err)
	}
	if attempts != 2 {
		t.Errorf("expected 2 attempts, got %d", attempts)
	}
	if len(hits) != 1 {
		t.Errorf("expected 1 hit, got %d", len(hits))
	}
}
