package criteriacache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/aiconsole/internal/db"
	"github.com/kailas-cloud/aiconsole/internal/domain"
	"github.com/kailas-cloud/aiconsole/internal/domain/catalog"
	"github.com/kailas-cloud/aiconsole/internal/domain/search/filter"
)

const cacheKeyPrefix = "aiconsole:criteria:"

// store is the consumer interface for the criteria cache (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// CachedTranslator caches translated criteria in a key-value store.
// The cache never fails a translation: store errors are logged and bypassed.
type CachedTranslator struct {
	inner      domain.CriteriaTranslator
	store      store
	ttl        time.Duration
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger
}

// New creates a caching decorator.
// cacheTotal is a counter vec with label "result" ("hit"/"miss"), passed explicitly.
func New(
	inner domain.CriteriaTranslator,
	s store,
	ttl time.Duration,
	cacheTotal *prometheus.CounterVec,
	logger *zap.Logger,
) *CachedTranslator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedTranslator{
		inner:      inner,
		store:      s,
		ttl:        ttl,
		cacheTotal: cacheTotal,
		logger:     logger,
	}
}

// Translate returns cached criteria or calls the inner translator.
// Entries are scoped to the catalog shape, so changing the catalog invalidates them.
func (c *CachedTranslator) Translate(ctx context.Context, query string, stats catalog.Stats) (filter.Criteria, error) {
	key := cacheKey(query, stats)

	if criteria, ok := c.getFromCache(ctx, key); ok {
		c.incCache("hit")
		return criteria, nil
	}

	c.incCache("miss")

	criteria, err := c.inner.Translate(ctx, query, stats)
	if err != nil {
		return filter.Criteria{}, fmt.Errorf("translate query: %w", err)
	}

	c.putToCache(ctx, key, criteria)
	return criteria, nil
}

func (c *CachedTranslator) incCache(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(result).Inc()
	}
}

// cacheKey hashes the normalized query together with a catalog fingerprint.
// The key is looser than the request: the inner translator sees the query as
// typed, but queries differing only in case or spacing share one entry, so a
// hit may answer a differently cased query. Criteria text matches
// case-insensitively, so the shared entry filters the same records.
func cacheKey(query string, stats catalog.Stats) string {
	h := sha256.New()
	h.Write([]byte(normalizeQuery(query)))
	h.Write([]byte{0})
	h.Write([]byte(fingerprint(stats)))
	return cacheKeyPrefix + hex.EncodeToString(h.Sum(nil))
}

func normalizeQuery(q string) string {
	return strings.ToLower(strings.Join(strings.Fields(q), " "))
}

func fingerprint(s catalog.Stats) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(s.Count))
	b.WriteByte('|')
	b.WriteString(strconv.FormatFloat(s.MinPrice, 'g', -1, 64))
	b.WriteByte('|')
	b.WriteString(strconv.FormatFloat(s.MaxPrice, 'g', -1, 64))
	for _, cat := range s.Categories {
		b.WriteByte('|')
		b.WriteString(cat)
	}
	return b.String()
}

func (c *CachedTranslator) getFromCache(ctx context.Context, key string) (filter.Criteria, bool) {
	data, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			c.logger.Warn("Failed to get cached criteria", zap.String("key", key), zap.Error(err))
		}
		return filter.Criteria{}, false
	}
	if len(data) == 0 {
		return filter.Criteria{}, false
	}

	var criteria filter.Criteria
	if err := json.Unmarshal(data, &criteria); err != nil {
		c.logger.Warn("Failed to parse cached criteria, evicting", zap.String("key", key), zap.Error(err))
		if err := c.store.Del(ctx, key); err != nil {
			c.logger.Warn("Failed to evict cached criteria", zap.String("key", key), zap.Error(err))
		}
		return filter.Criteria{}, false
	}

	return criteria, true
}

func (c *CachedTranslator) putToCache(ctx context.Context, key string, criteria filter.Criteria) {
	data, err := json.Marshal(criteria)
	if err != nil {
		c.logger.Warn("Failed to encode criteria", zap.Error(err))
		return
	}
	if err := c.store.SetWithTTL(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn("Failed to cache criteria", zap.String("key", key), zap.Error(err))
	}
}
