package productsearch

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kailas-cloud/aiconsole/internal/domain"
	"github.com/kailas-cloud/aiconsole/internal/domain/catalog"
	"github.com/kailas-cloud/aiconsole/internal/domain/search/filter"
)

// --- Mocks ---

type mockTranslator struct {
	criteria  filter.Criteria
	err       error
	calls     int
	lastQuery string
	lastStats catalog.Stats
}

func (m *mockTranslator) Translate(_ context.Context, query string, stats catalog.Stats) (filter.Criteria, error) {
	m.calls++
	m.lastQuery = query
	m.lastStats = stats
	return m.criteria, m.err
}

func ptr[T any](v T) *T { return &v }

var testCatalog = []catalog.Product{
	{Name: "Wireless Headphones", Category: "Electronics", Price: 99.99, Rating: 4.5, InStock: true},
	{Name: "Smart Watch", Category: "Electronics", Price: 199.99, Rating: 4.6, InStock: true},
	{Name: "Novel: The Great Adventure", Category: "Books", Price: 14.99, Rating: 4.3, InStock: true},
	{Name: "Cookbook", Category: "Books", Price: 24.99, Rating: 4.8, InStock: false},
}

// --- Tests ---

func TestSearch(t *testing.T) {
	tr := &mockTranslator{criteria: filter.Criteria{CategoryEquals: ptr("Books"), InStock: ptr(true)}}
	svc := New(testCatalog, tr, nil)

	res, err := svc.Search(context.Background(), "  books in stock  ")
	require.NoError(t, err)

	assert.Equal(t, "books in stock", res.Query)
	assert.Equal(t, "books in stock", tr.lastQuery)
	require.Len(t, res.Products, 1)
	assert.Equal(t, "Novel: The Great Adventure", res.Products[0].Name)
	assert.Equal(t, 4, tr.lastStats.Count)
	assert.Equal(t, []string{"Books", "Electronics"}, tr.lastStats.Categories)
}

func TestSearch_EmptyCriteriaReturnsCatalog(t *testing.T) {
	svc := New(testCatalog, &mockTranslator{}, nil)

	res, err := svc.Search(context.Background(), "show me everything")
	require.NoError(t, err)
	assert.Equal(t, testCatalog, res.Products)
}

func TestSearch_EmptyQuery(t *testing.T) {
	tr := &mockTranslator{}
	svc := New(testCatalog, tr, nil)

	for _, q := range []string{"", "   ", "\t\n"} {
		_, err := svc.Search(context.Background(), q)
		assert.ErrorIs(t, err, domain.ErrEmptyQuery)
	}
	assert.Zero(t, tr.calls, "translator must not be called for empty queries")
}

func TestSearch_EmptyCatalog(t *testing.T) {
	tr := &mockTranslator{}
	svc := New(nil, tr, nil)

	_, err := svc.Search(context.Background(), "anything")
	assert.ErrorIs(t, err, domain.ErrEmptyCatalog)
	assert.Zero(t, tr.calls)
}

func TestSearch_TranslatorErrorPropagates(t *testing.T) {
	tr := &mockTranslator{err: domain.NewToolArgumentsError("filter_products", "max_price: want number")}
	svc := New(testCatalog, tr, nil)

	_, err := svc.Search(context.Background(), "cheap")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidToolArguments)

	var argErr *domain.ToolArgumentsError
	assert.True(t, errors.As(err, &argErr))
	assert.Equal(t, 1, tr.calls, "no retries")
}

func TestFilter(t *testing.T) {
	tr := &mockTranslator{}
	svc := New(testCatalog, tr, nil)

	got := svc.Filter(filter.Criteria{MaxPrice: ptr(25.0)})
	require.Len(t, got, 2)
	assert.Equal(t, "Novel: The Great Adventure", got[0].Name)
	assert.Equal(t, "Cookbook", got[1].Name)
	assert.Zero(t, tr.calls)
}

func TestCatalogIsCopied(t *testing.T) {
	input := []catalog.Product{{Name: "A", Price: 1}}
	svc := New(input, &mockTranslator{}, nil)

	input[0].Name = "mutated"
	assert.Equal(t, "A", svc.Catalog()[0].Name)

	out := svc.Catalog()
	out[0].Name = "mutated again"
	assert.Equal(t, "A", svc.Catalog()[0].Name)
	assert.Equal(t, 1, svc.Size())
}

func TestStats(t *testing.T) {
	svc := New(testCatalog, &mockTranslator{}, nil)
	st := svc.Stats()

	assert.Equal(t, 4, st.Count)
	assert.InDelta(t, 14.99, st.MinPrice, 1e-9)
	assert.InDelta(t, 199.99, st.MaxPrice, 1e-9)
}
