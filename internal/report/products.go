package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/kailas-cloud/aiconsole/internal/domain/catalog"
)

// Products writes a numbered console listing of products to w.
func Products(w io.Writer, products []catalog.Product) error {
	if len(products) == 0 {
		_, err := fmt.Fprintln(w, "\nNo products matched your criteria.")
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\nFound %d matching products:\n", len(products))
	b.WriteString(strings.Repeat("=", 60) + "\n")
	for i, p := range products {
		stock := "✗ Out of Stock"
		if p.InStock {
			stock = "✓ In Stock"
		}
		fmt.Fprintf(&b, "%d. %s\n", i+1, p.Name)
		fmt.Fprintf(&b, "   Category: %s | Price: $%.2f\n", p.Category, p.Price)
		fmt.Fprintf(&b, "   Rating: %s/5.0 | %s\n", formatRating(p.Rating), stock)
		b.WriteString(strings.Repeat("-", 40) + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// formatRating prints whole ratings with one decimal ("4.0") and keeps the
// precision of fractional ones ("4.75").
func formatRating(r float64) string {
	if r == math.Trunc(r) && !math.IsInf(r, 0) {
		return strconv.FormatFloat(r, 'f', 1, 64)
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
