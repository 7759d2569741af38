package catalog

import (
	"encoding/json"
	"fmt"
)

// Product is one catalog record.
// Values are passed by copy; nothing in this module mutates a loaded Product.
type Product struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Rating   float64 `json:"rating"`
	InStock  bool    `json:"in_stock"`
}

// UnmarshalJSON decodes a product field by field.
// A missing field or a field of the wrong JSON type keeps its zero value
// instead of failing the whole catalog; unknown fields are ignored.
func (p *Product) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("product must be a JSON object: %w", err)
	}

	var out Product
	decodeField(raw, "name", &out.Name)
	decodeField(raw, "category", &out.Category)
	decodeField(raw, "price", &out.Price)
	decodeField(raw, "rating", &out.Rating)
	decodeField(raw, "in_stock", &out.InStock)

	*p = out
	return nil
}

func decodeField[T any](raw map[string]json.RawMessage, key string, dst *T) {
	msg, ok := raw[key]
	if !ok {
		return
	}
	var v T
	if json.Unmarshal(msg, &v) != nil {
		return
	}
	*dst = v
}
