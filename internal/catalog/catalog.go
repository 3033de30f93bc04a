// Package catalog loads the static product catalog a listing session works on.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"shopgrid/internal/domain"
)

// EmbeddedSource is the Source name of the built-in catalog
const EmbeddedSource = "embedded"

//go:embed products.yaml
var embeddedProducts []byte

var (
	ErrDuplicateID   = errors.New("duplicate product id")
	ErrMissingID     = errors.New("product id is empty")
	ErrMissingName   = errors.New("product name is empty")
	ErrNegativePrice = errors.New("product price is negative")
)

type catalogFile struct {
	Products []domain.Product `yaml:"products"`
}

// Catalog is an ordered, read-only product list
type Catalog struct {
	Source   string
	products []domain.Product
}

// New builds a catalog from products after validating them
func New(source string, products []domain.Product) (*Catalog, error) {
	if err := Validate(products); err != nil {
		return nil, err
	}
	return &Catalog{
		Source:   source,
		products: append([]domain.Product(nil), products...),
	}, nil
}

// Load decodes a YAML catalog from r
func Load(source string, r io.Reader) (*Catalog, error) {
	var file catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return New(source, nil)
		}
		return nil, fmt.Errorf("failed to parse catalog %s: %w", source, err)
	}
	return New(source, file.Products)
}

// LoadFile loads a YAML catalog from path
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()
	return Load(path, f)
}

// Default returns the catalog compiled into the binary
func Default() (*Catalog, error) {
	return Load(EmbeddedSource, bytes.NewReader(embeddedProducts))
}

// Open loads the catalog at path, or the embedded one when path is empty
func Open(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

// Products returns a copy of the catalog in its original order
func (c *Catalog) Products() []domain.Product {
	if c == nil {
		return []domain.Product{}
	}
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Len returns the number of products
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.products)
}

// Validate reports every malformed entry in products
func Validate(products []domain.Product) error {
	var errs []error
	seen := make(map[string]int, len(products))
	for i, p := range products {
		if p.ID == "" {
			errs = append(errs, fmt.Errorf("entry %d: %w", i, ErrMissingID))
		} else if first, ok := seen[p.ID]; ok {
			errs = append(errs, fmt.Errorf("entry %d: %w %q (first seen at entry %d)", i, ErrDuplicateID, p.ID, first))
		} else {
			seen[p.ID] = i
		}
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("entry %d: %w", i, ErrMissingName))
		}
		if p.Price < 0 {
			errs = append(errs, fmt.Errorf("entry %d: %w (%.2f)", i, ErrNegativePrice, p.Price))
		}
	}
	return errors.Join(errs...)
}
