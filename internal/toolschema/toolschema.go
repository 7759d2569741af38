// Package toolschema declares the functions offered to the model and validates
// the arguments it returns against their JSON schemas.
package toolschema

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/kailas-cloud/aiconsole/internal/domain"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// Function names declared to the model.
const (
	FilterProductsName = "filter_products"
	AudioSummaryName   = "create_audio_summary"
)

// Tool is a function declaration with a compiled parameter schema.
type Tool struct {
	Name        string
	Description string
	Parameters  json.RawMessage

	schema *jsonschema.Schema
}

var (
	registryOnce sync.Once
	registry     map[string]*Tool
	registryErr  error
)

var declarations = []struct {
	name, description, file string
}{
	{
		name:        FilterProductsName,
		description: "Filter products based on user preferences and criteria",
		file:        "schemas/filter_products.json",
	},
	{
		name:        AudioSummaryName,
		description: "Create a structured summary and analytics of transcribed audio content",
		file:        "schemas/create_audio_summary.json",
	},
}

func load() (map[string]*Tool, error) {
	registryOnce.Do(func() {
		registry = make(map[string]*Tool, len(declarations))
		compiler := jsonschema.NewCompiler()
		for _, d := range declarations {
			raw, err := schemaFS.ReadFile(d.file)
			if err != nil {
				registryErr = fmt.Errorf("read schema %s: %w", d.file, err)
				return
			}
			doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
			if err != nil {
				registryErr = fmt.Errorf("parse schema %s: %w", d.file, err)
				return
			}
			url := "https://aiconsole.local/tools/" + d.name + ".json"
			if err := compiler.AddResource(url, doc); err != nil {
				registryErr = fmt.Errorf("add schema %s: %w", d.name, err)
				return
			}
			sch, err := compiler.Compile(url)
			if err != nil {
				registryErr = fmt.Errorf("compile schema %s: %w", d.name, err)
				return
			}
			registry[d.name] = &Tool{
				Name:        d.name,
				Description: d.description,
				Parameters:  json.RawMessage(raw),
				schema:      sch,
			}
		}
	})
	return registry, registryErr
}

// Lookup returns the declared tool with the given name.
func Lookup(name string) (*Tool, error) {
	tools, err := load()
	if err != nil {
		return nil, err
	}
	t, ok := tools[name]
	if !ok {
		return nil, fmt.Errorf("unknown tool %q", name)
	}
	return t, nil
}

// MustLookup returns the declared tool or panics. Declarations are embedded,
// so a failure here is a build defect.
func MustLookup(name string) *Tool {
	t, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return t
}

// FilterProducts returns the filter_products declaration.
func FilterProducts() *Tool { return MustLookup(FilterProductsName) }

// AudioSummary returns the create_audio_summary declaration.
func AudioSummary() *Tool { return MustLookup(AudioSummaryName) }

// Validate decodes raw function arguments and checks them against the schema.
// Errors wrap domain.ErrInvalidToolArguments.
func (t *Tool) Validate(args []byte) error {
	if len(bytes.TrimSpace(args)) == 0 {
		return domain.NewToolArgumentsError(t.Name, "empty arguments")
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(args))
	if err != nil {
		return domain.NewToolArgumentsError(t.Name, "malformed JSON: "+err.Error())
	}
	if err := t.schema.Validate(inst); err != nil {
		return domain.NewToolArgumentsError(t.Name, flatten(err))
	}
	return nil
}

// flatten turns a multi-line validation report into a single line.
func flatten(err error) string {
	lines := strings.Split(strings.TrimSpace(err.Error()), "\n")
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		l = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(l), "-"))
		if l == "" || strings.HasPrefix(l, "jsonschema validation failed") {
			continue
		}
		out = append(out, l)
	}
	if len(out) == 0 {
		return err.Error()
	}
	return strings.Join(out, "; ")
}
