package filter

import (
	"encoding/json"
	"testing"

	"github.com/kailas-cloud/aiconsole/internal/domain/catalog"
)

func TestFromArguments_AllKeys(t *testing.T) {
	c := FromArguments(map[string]any{
		"name_contains":   "phone",
		"category_equals": "Electronics",
		"max_price":       100.0,
		"min_rating":      4.5,
		"in_stock":        true,
	})

	if c.Count() != 5 {
		t.Fatalf("Count() = %d, want 5", c.Count())
	}
	if *c.NameContains != "phone" || *c.CategoryEquals != "Electronics" {
		t.Errorf("text criteria = %q, %q", *c.NameContains, *c.CategoryEquals)
	}
	if *c.MaxPrice != 100 || *c.MinRating != 4.5 || !*c.InStock {
		t.Errorf("numeric/bool criteria = %v, %v, %v", *c.MaxPrice, *c.MinRating, *c.InStock)
	}
}

func TestFromArguments_ToolAliases(t *testing.T) {
	c := FromArguments(map[string]any{
		"product_name": "headphones",
		"category":     "Electronics",
	})

	if c.NameContains == nil || *c.NameContains != "headphones" {
		t.Errorf("product_name not mapped: %v", c.NameContains)
	}
	if c.CategoryEquals == nil || *c.CategoryEquals != "Electronics" {
		t.Errorf("category not mapped: %v", c.CategoryEquals)
	}
}

func TestFromArguments_CanonicalKeyWins(t *testing.T) {
	c := FromArguments(map[string]any{
		"name_contains": "lamp",
		"product_name":  "desk",
	})
	if *c.NameContains != "lamp" {
		t.Errorf("NameContains = %q, want lamp", *c.NameContains)
	}
}

func TestFromArguments_IgnoresUnknownAndMistyped(t *testing.T) {
	c := FromArguments(map[string]any{
		"color":      "red",
		"max_price":  "cheap",
		"min_rating": []any{4},
		"in_stock":   "maybe",
		"category":   42,
	})

	if !c.IsEmpty() {
		t.Errorf("expected empty criteria, got %s", c)
	}
}

func TestFromArguments_EmptyTextIsAbsent(t *testing.T) {
	c := FromArguments(map[string]any{"category": "  ", "product_name": ""})
	if !c.IsEmpty() {
		t.Errorf("expected empty criteria, got %s", c)
	}
}

func TestFromArguments_TrimsText(t *testing.T) {
	c := FromArguments(map[string]any{
		"category_equals": " Books ",
		"name_contains":   "\tnovel\n",
	})

	if c.CategoryEquals == nil || *c.CategoryEquals != "Books" {
		t.Fatalf("CategoryEquals = %v, want \"Books\"", c.CategoryEquals)
	}
	if c.NameContains == nil || *c.NameContains != "novel" {
		t.Fatalf("NameContains = %v, want \"novel\"", c.NameContains)
	}

	products := []catalog.Product{
		{Name: "Novel", Category: "Books"},
		{Name: "Novel Lamp", Category: "Home"},
	}
	got := Apply(products, c)
	if len(got) != 1 || got[0].Name != "Novel" {
		t.Errorf("Apply = %+v, want [Novel]", got)
	}
}

func TestFromArguments_BlankTextMatchesAll(t *testing.T) {
	c := FromArguments(map[string]any{"category_equals": "   "})
	if !c.IsEmpty() {
		t.Fatalf("blank category should be absent, got %s", c)
	}

	products := []catalog.Product{{Name: "A", Category: "Books"}, {Name: "B"}}
	if got := Apply(products, c); len(got) != 2 {
		t.Errorf("Apply = %+v, want all products", got)
	}
}

func TestFromArguments_NumericStringsAndBoolStrings(t *testing.T) {
	c := FromArguments(map[string]any{
		"max_price":  " 49.5 ",
		"min_rating": json.Number("4"),
		"in_stock":   "false",
	})

	if c.MaxPrice == nil || *c.MaxPrice != 49.5 {
		t.Errorf("MaxPrice = %v", c.MaxPrice)
	}
	if c.MinRating == nil || *c.MinRating != 4 {
		t.Errorf("MinRating = %v", c.MinRating)
	}
	if c.InStock == nil || *c.InStock {
		t.Errorf("InStock = %v", c.InStock)
	}
}

func TestFromArguments_RejectsNonFinite(t *testing.T) {
	c := FromArguments(map[string]any{"max_price": "NaN", "min_rating": "+Inf"})
	if !c.IsEmpty() {
		t.Errorf("expected non-finite numbers to be ignored, got %s", c)
	}
}

func TestParseArguments(t *testing.T) {
	c, err := ParseArguments([]byte(`{"category":"Books","min_rating":4.5,"in_stock":true,"extra":{"x":1}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Count() != 3 {
		t.Errorf("Count() = %d, want 3", c.Count())
	}
}

func TestParseArguments_NotAnObject(t *testing.T) {
	for _, in := range []string{`[1,2]`, `not json`, `"text"`} {
		if _, err := ParseArguments([]byte(in)); err == nil {
			t.Errorf("ParseArguments(%s): expected error", in)
		}
	}
}

func TestCriteria_String(t *testing.T) {
	if got := (Criteria{}).String(); got != "{}" {
		t.Errorf("String() = %q", got)
	}
	c := Criteria{CategoryEquals: strPtr("Books"), MaxPrice: floatPtr(20), InStock: boolPtr(true)}
	want := `{category_equals="Books", max_price=20, in_stock=true}`
	if got := c.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestCriteria_JSONRoundTripOmitsAbsent(t *testing.T) {
	data, err := json.Marshal(Criteria{MaxPrice: floatPtr(30)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"max_price":30}` {
		t.Errorf("json = %s", data)
	}
}
