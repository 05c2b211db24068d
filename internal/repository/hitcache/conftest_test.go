package hitcache

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/toolscout/toolscout/internal/domain/hit"
)

// mockStore implements the store interface with pluggable functions.
type mockStore struct {
	getFn func(ctx context.Context, key string) ([]byte, error)
	setFn func(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

func (m *mockStore) Get(ctx context.Context, key string) ([]byte, error) {
	return m.getFn(ctx, key)
}

func (m *mockStore) SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setFn == nil {
		return nil
	}
	return m.setFn(ctx, key, value, ttl)
}

// mockSource implements the source interface.
type mockSource struct {
	hits  []hit.Hit
	err   error
	calls int
}

func (m *mockSource) Name() string { return "mock" }

func (m *mockSource) Fetch(_ context.Context, _ string, _ int) ([]hit.Hit, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.hits, nil
}

func newTestCachedSource(t *testing.T, inner *mockSource) (*CachedSource, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	cs := New(inner, ms, time.Hour, nil, zap.NewNop())
	return cs, ms
}
