package criteriacache

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/aiconsole/internal/db"
	"github.com/kailas-cloud/aiconsole/internal/domain/catalog"
	"github.com/kailas-cloud/aiconsole/internal/domain/search/filter"
)

type mockTranslator struct {
	result    filter.Criteria
	err       error
	calls     int
	lastQuery string
}

func (m *mockTranslator) Translate(_ context.Context, query string, _ catalog.Stats) (filter.Criteria, error) {
	m.calls++
	m.lastQuery = query
	return m.result, m.err
}

// mockKVStore implements the consumer interface for tests.
type mockKVStore struct {
	getFn func(ctx context.Context, key string) ([]byte, error)
	setFn func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	delFn func(ctx context.Context, key string) error
}

func (m *mockKVStore) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFn != nil {
		return m.getFn(ctx, key)
	}
	return nil, db.ErrKeyNotFound
}

func (m *mockKVStore) SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setFn != nil {
		return m.setFn(ctx, key, value, ttl)
	}
	return nil
}

func (m *mockKVStore) Del(ctx context.Context, key string) error {
	if m.delFn != nil {
		return m.delFn(ctx, key)
	}
	return nil
}

// memKVStore is a map-backed store for round-trip tests.
type memKVStore struct {
	data map[string][]byte
}

func (m *memKVStore) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := m.data[key]
	if !ok {
		return nil, db.ErrKeyNotFound
	}
	return v, nil
}

func (m *memKVStore) SetWithTTL(_ context.Context, key string, value []byte, _ time.Duration) error {
	m.data[key] = value
	return nil
}

func (m *memKVStore) Del(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

var testStats = catalog.Stats{
	Count:      3,
	Categories: []string{"Books", "Electronics"},
	MinPrice:   9.99,
	MaxPrice:   199.99,
}

func newTestCachedTranslator(t *testing.T, inner *mockTranslator) (*CachedTranslator, *mockKVStore) {
	t.Helper()
	ms := &mockKVStore{}
	ct := New(inner, ms, time.Hour, nil, zap.NewNop())
	return ct, ms
}
