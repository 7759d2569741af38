package productsearch

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/aiconsole/internal/domain"
	"github.com/kailas-cloud/aiconsole/internal/domain/catalog"
	"github.com/kailas-cloud/aiconsole/internal/domain/search/filter"
)

// Result is the outcome of a natural-language search.
type Result struct {
	Query    string
	Criteria filter.Criteria
	Products []catalog.Product
}

// Service answers natural-language product searches over an in-memory catalog.
// The catalog is fixed at construction, so the service is safe for concurrent use.
type Service struct {
	products   []catalog.Product
	stats      catalog.Stats
	translator Translator
	logger     *zap.Logger
}

// New creates a search service. products is copied.
func New(products []catalog.Product, translator Translator, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	owned := slices.Clone(products)
	return &Service{
		products:   owned,
		stats:      catalog.Summarize(owned),
		translator: translator,
		logger:     logger,
	}
}

// Search translates query into criteria and filters the catalog with them.
// Translation errors are returned as-is (wrapped); there is no fallback parsing.
func (s *Service) Search(ctx context.Context, query string) (Result, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Result{}, domain.ErrEmptyQuery
	}
	if len(s.products) == 0 {
		return Result{}, domain.ErrEmptyCatalog
	}

	start := time.Now()
	criteria, err := s.translator.Translate(ctx, query, s.stats)
	if err != nil {
		return Result{}, fmt.Errorf("search %q: %w", query, err)
	}

	products := filter.Apply(s.products, criteria)

	s.logger.Info("Search completed",
		zap.String("query", query),
		zap.Stringer("criteria", criteria),
		zap.Int("matched", len(products)),
		zap.Int("catalog_size", len(s.products)),
		zap.Duration("duration", time.Since(start)),
	)

	return Result{Query: query, Criteria: criteria, Products: products}, nil
}

// Filter applies criteria directly without a translation round-trip.
func (s *Service) Filter(criteria filter.Criteria) []catalog.Product {
	return filter.Apply(s.products, criteria)
}

// Catalog returns a copy of the loaded products.
func (s *Service) Catalog() []catalog.Product {
	return slices.Clone(s.products)
}

// Stats returns the catalog statistics given to the translator.
func (s *Service) Stats() catalog.Stats {
	return s.stats
}

// Size returns the number of loaded products.
func (s *Service) Size() int {
	return len(s.products)
}
