package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/kailas-cloud/aiconsole/internal/domain"
	domcat "github.com/kailas-cloud/aiconsole/internal/domain/catalog"
)

// Load reads a product catalog from a JSON file holding an array of objects.
func Load(path string) ([]domcat.Product, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, domain.ErrCatalogNotFound)
		}
		return nil, fmt.Errorf("open catalog %s: %w", path, err)
	}
	defer f.Close()

	products, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return products, nil
}

// Decode reads a JSON array of products. An empty array is valid.
func Decode(r io.Reader) ([]domcat.Product, error) {
	var products []domcat.Product
	if err := json.NewDecoder(r).Decode(&products); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidCatalog, err)
	}
	if products == nil {
		products = []domcat.Product{}
	}
	return products, nil
}
