package productsearch

import (
	"context"

	"github.com/kailas-cloud/aiconsole/internal/domain/catalog"
	"github.com/kailas-cloud/aiconsole/internal/domain/search/filter"
)

// Translator turns a natural-language query into filter criteria.
type Translator interface {
	Translate(ctx context.Context, query string, stats catalog.Stats) (filter.Criteria, error)
}
