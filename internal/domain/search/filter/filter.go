package filter

import (
	"strings"

	"github.com/kailas-cloud/aiconsole/internal/domain/catalog"
)

// Apply returns the products that satisfy every criterion present in c.
// The result is a new slice in catalog order; products is never modified.
// Empty criteria return a copy of the whole catalog.
func Apply(products []catalog.Product, c Criteria) []catalog.Product {
	m := compile(c)
	out := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if m.match(p) {
			out = append(out, p)
		}
	}
	return out
}

// Match reports whether a single product satisfies every criterion present in c.
func Match(p catalog.Product, c Criteria) bool {
	return compile(c).match(p)
}

// matcher holds criteria with text already normalized, so a pass over the
// catalog lowercases each criterion once.
type matcher struct {
	nameContains   *string
	categoryEquals *string
	maxPrice       *float64
	minRating      *float64
	inStock        *bool
}

func compile(c Criteria) matcher {
	m := matcher{
		maxPrice:  c.MaxPrice,
		minRating: c.MinRating,
		inStock:   c.InStock,
	}
	if c.NameContains != nil {
		s := normalize(*c.NameContains)
		m.nameContains = &s
	}
	if c.CategoryEquals != nil {
		s := normalize(*c.CategoryEquals)
		m.categoryEquals = &s
	}
	return m
}

func (m matcher) match(p catalog.Product) bool {
	if m.categoryEquals != nil && normalize(p.Category) != *m.categoryEquals {
		return false
	}
	if m.nameContains != nil && !strings.Contains(normalize(p.Name), *m.nameContains) {
		return false
	}
	if m.maxPrice != nil && !(p.Price <= *m.maxPrice) {
		return false
	}
	if m.minRating != nil && !(p.Rating >= *m.minRating) {
		return false
	}
	if m.inStock != nil && p.InStock != *m.inStock {
		return false
	}
	return true
}

// normalize is applied identically to record and criterion text.
func normalize(s string) string {
	return strings.ToLower(s)
}
