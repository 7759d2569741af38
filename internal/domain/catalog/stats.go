package catalog

import "slices"

// Stats is a compact description of a catalog, used to ground model prompts.
type Stats struct {
	Count      int
	Categories []string
	MinPrice   float64
	MaxPrice   float64
}

// Summarize computes catalog statistics. Categories are de-duplicated and sorted.
func Summarize(products []Product) Stats {
	s := Stats{Count: len(products)}
	if len(products) == 0 {
		return s
	}

	seen := make(map[string]struct{}, len(products))
	s.MinPrice = products[0].Price
	s.MaxPrice = products[0].Price
	for _, p := range products {
		if _, ok := seen[p.Category]; !ok {
			seen[p.Category] = struct{}{}
			s.Categories = append(s.Categories, p.Category)
		}
		s.MinPrice = min(s.MinPrice, p.Price)
		s.MaxPrice = max(s.MaxPrice, p.Price)
	}
	slices.Sort(s.Categories)
	return s
}
