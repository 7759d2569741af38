package filter

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Criteria is a sparse set of optional product predicates.
// A nil field imposes no constraint.
type Criteria struct {
	NameContains   *string  `json:"name_contains,omitempty"`
	CategoryEquals *string  `json:"category_equals,omitempty"`
	MaxPrice       *float64 `json:"max_price,omitempty"`
	MinRating      *float64 `json:"min_rating,omitempty"`
	InStock        *bool    `json:"in_stock,omitempty"`
}

// Argument keys accepted from upstream translators. product_name and category
// are the names used in the filter_products tool declaration.
const (
	KeyNameContains   = "name_contains"
	KeyProductName    = "product_name"
	KeyCategoryEquals = "category_equals"
	KeyCategory       = "category"
	KeyMaxPrice       = "max_price"
	KeyMinRating      = "min_rating"
	KeyInStock        = "in_stock"
)

// IsEmpty reports whether no criterion is present.
func (c Criteria) IsEmpty() bool { return c.Count() == 0 }

// Count returns the number of present criteria.
func (c Criteria) Count() int {
	n := 0
	if c.NameContains != nil {
		n++
	}
	if c.CategoryEquals != nil {
		n++
	}
	if c.MaxPrice != nil {
		n++
	}
	if c.MinRating != nil {
		n++
	}
	if c.InStock != nil {
		n++
	}
	return n
}

func (c Criteria) String() string {
	if c.IsEmpty() {
		return "{}"
	}
	parts := make([]string, 0, c.Count())
	if c.NameContains != nil {
		parts = append(parts, fmt.Sprintf("%s=%q", KeyNameContains, *c.NameContains))
	}
	if c.CategoryEquals != nil {
		parts = append(parts, fmt.Sprintf("%s=%q", KeyCategoryEquals, *c.CategoryEquals))
	}
	if c.MaxPrice != nil {
		parts = append(parts, fmt.Sprintf("%s=%g", KeyMaxPrice, *c.MaxPrice))
	}
	if c.MinRating != nil {
		parts = append(parts, fmt.Sprintf("%s=%g", KeyMinRating, *c.MinRating))
	}
	if c.InStock != nil {
		parts = append(parts, fmt.Sprintf("%s=%t", KeyInStock, *c.InStock))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// ParseArguments decodes a JSON object of tool-call arguments into Criteria.
// Only a payload that is not a JSON object is an error.
func ParseArguments(data []byte) (Criteria, error) {
	var args map[string]any
	if err := json.Unmarshal(data, &args); err != nil {
		return Criteria{}, fmt.Errorf("decode criteria arguments: %w", err)
	}
	return FromArguments(args), nil
}

// FromArguments builds Criteria from a decoded argument object.
// Unknown keys and values of an unusable type are ignored, leaving the field absent.
// Empty text counts as absent.
func FromArguments(args map[string]any) Criteria {
	var c Criteria
	c.NameContains = firstText(args, KeyNameContains, KeyProductName)
	c.CategoryEquals = firstText(args, KeyCategoryEquals, KeyCategory)
	c.MaxPrice = number(args[KeyMaxPrice])
	c.MinRating = number(args[KeyMinRating])
	c.InStock = boolean(args[KeyInStock])
	return c
}

func firstText(args map[string]any, keys ...string) *string {
	for _, k := range keys {
		if s, ok := args[k].(string); ok {
			if s = strings.TrimSpace(s); s != "" {
				return &s
			}
		}
	}
	return nil
}

func number(v any) *float64 {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int64:
		f = float64(x)
	case json.Number:
		parsed, err := x.Float64()
		if err != nil {
			return nil
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

func boolean(v any) *bool {
	switch x := v.(type) {
	case bool:
		return &x
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(x))
		if err != nil {
			return nil
		}
		return &b
	default:
		return nil
	}
}
