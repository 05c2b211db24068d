// Package hitcache caches raw source hits in a key-value store so
// repeated queries skip the backend round-trip.
package hitcache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/toolscout/toolscout/internal/db"
	"github.com/toolscout/toolscout/internal/domain/hit"
)

const cacheKeyPrefix = "toolscout:hits:"

// store is the consumer interface for the hit cache (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// source mirrors retrieval.Source so the decorator can wrap any backend
// without importing the usecase layer.
type source interface {
	Name() string
	Fetch(ctx context.Context, query string, limit int) ([]hit.Hit, error)
}

// CachedSource caches successful fetches of an inner search source.
type CachedSource struct {
	inner      source
	store      store
	ttl        time.Duration
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger
}

// New creates a caching decorator.
// cacheTotal is a counter vec with label "result" ("hit"/"miss"), passed explicitly.
func New(
	inner source,
	s store,
	ttl time.Duration,
	cacheTotal *prometheus.CounterVec,
	logger *zap.Logger,
) *CachedSource {
	return &CachedSource{
		inner:      inner,
		store:      s,
		ttl:        ttl,
		cacheTotal: cacheTotal,
		logger:     logger,
	}
}

// Name implements retrieval.Source.
func (c *CachedSource) Name() string { return c.inner.Name() }

// Fetch returns cached hits or calls the inner source. Only successful
// fetches are cached; failures always pass through so a transient outage
// never poisons the cache.
func (c *CachedSource) Fetch(ctx context.Context, query string, limit int) ([]hit.Hit, error) {
	key := c.cacheKey(query, limit)

	if hits, ok := c.getFromCache(ctx, key); ok {
		c.incCache("hit")
		return hits, nil
	}

	c.incCache("miss")

	hits, err := c.inner.Fetch(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", c.inner.Name(), err)
	}

	c.putToCache(ctx, key, hits)
	return hits, nil
}

func (c *CachedSource) incCache(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(result).Inc()
	}
}

func (c *CachedSource) cacheKey(query string, limit int) string {
	h := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%d", c.inner.Name(), query, limit)))
	return cacheKeyPrefix + hex.EncodeToString(h[:])
}

// cachedHit is the wire form of a hit inside the cache.
type cachedHit struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	Body     string `json:"body"`
	Source   string `json:"source"`
	Position int    `json:"position"`
}

func (c *CachedSource) getFromCache(ctx context.Context, key string) ([]hit.Hit, bool) {
	data, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			c.logger.Warn("Failed to get cached hits", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	if len(data) == 0 {
		return nil, false
	}

	var cached []cachedHit
	if err := json.Unmarshal(data, &cached); err != nil {
		c.logger.Warn("Failed to parse cached hits", zap.String("key", key), zap.Error(err))
		return nil, false
	}

	hits := make([]hit.Hit, 0, len(cached))
	for _, ch := range cached {
		hits = append(hits, hit.New(ch.Title, ch.URL, ch.Body, hit.Source(ch.Source), ch.Position))
	}
	return hits, true
}

func (c *CachedSource) putToCache(ctx context.Context, key string, hits []hit.Hit) {
	cached := make([]cachedHit, 0, len(hits))
	for _, h := range hits {
		cached = append(cached, cachedHit{
			Title:    h.Title(),
			URL:      h.URL(),
			Body:     h.Body(),
			Source:   string(h.Source()),
			Position: h.Position(),
		})
	}

	data, err := json.Marshal(cached)
	if err != nil {
		c.logger.Warn("Failed to encode hits for cache", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.store.SetWithTTL(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn("Failed to cache hits", zap.String("key", key), zap.Error(err))
	}
}
