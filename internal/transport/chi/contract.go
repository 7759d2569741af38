package chi

import (
	"context"

	"github.com/kailas-cloud/aiconsole/internal/domain/catalog"
	"github.com/kailas-cloud/aiconsole/internal/domain/search/filter"
	healthuc "github.com/kailas-cloud/aiconsole/internal/usecase/health"
	"github.com/kailas-cloud/aiconsole/internal/usecase/productsearch"
)

// ProductSearcher answers natural-language and structured product searches.
type ProductSearcher interface {
	Search(ctx context.Context, query string) (productsearch.Result, error)
	Filter(criteria filter.Criteria) []catalog.Product
}

// HealthChecker aggregates component health.
type HealthChecker interface {
	Check(ctx context.Context) healthuc.Report
}
