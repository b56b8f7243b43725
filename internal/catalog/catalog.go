// Package catalog provides the read-only product list the storefront sells.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/guttosm/catalog-service/internal/domain/model"
)

var (
	// ErrEmptyCatalog is returned when a catalog has no products.
	ErrEmptyCatalog = errors.New("catalog has no products")
	// ErrDuplicateID is returned when two products share an ID.
	ErrDuplicateID = errors.New("duplicate product id")
	// ErrInvalidProduct is returned when a product fails validation.
	ErrInvalidProduct = errors.New("invalid product")
)

// Source exposes the ordered product list.
type Source interface {
	// Products returns the catalog in display order. Callers must not mutate it.
	Products() []model.Product
	// Product looks up a product by ID.
	Product(id string) (model.Product, bool)
}

// Catalog is an immutable, validated product list.
type Catalog struct {
	products []model.Product
	index    map[string]int
}

// New validates products and builds a Catalog. The input slice is copied.
func New(products []model.Product) (*Catalog, error) {
	if len(products) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		products: make([]model.Product, len(products)),
		index:    make(map[string]int, len(products)),
	}
	copy(c.products, products)

	for i, p := range c.products {
		if err := validate(p); err != nil {
			return nil, err
		}
		if _, exists := c.index[p.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, p.ID)
		}
		c.index[p.ID] = i
	}

	return c, nil
}

// Products returns the products in catalog order.
func (c *Catalog) Products() []model.Product {
	out := make([]model.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Product returns the product with the given ID.
func (c *Catalog) Product(id string) (model.Product, bool) {
	i, ok := c.index[id]
	if !ok {
		return model.Product{}, false
	}
	return c.products[i], true
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}

// Search returns the products whose name, collection or SKU contain term,
// ignoring case. An empty term returns every product.
func (c *Catalog) Search(term string) []model.Product {
	out := make([]model.Product, 0, len(c.products))
	for _, p := range c.products {
		if Matches(p, term) {
			out = append(out, p)
		}
	}
	return out
}

// Matches reports whether term is a case-insensitive substring of the
// product's name, collection or SKU. Accents are not folded.
func Matches(p model.Product, term string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	return strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.Collection), needle) ||
		strings.Contains(strings.ToLower(p.SKU), needle)
}

// LoadFile reads a JSON array of products from path.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	var products []model.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", path, err)
	}

	return New(products)
}

// Load returns the catalog at path, or the built-in catalog when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

func validate(p model.Product) error {
	switch {
	case strings.TrimSpace(p.ID) == "":
		return fmt.Errorf("%w: empty id", ErrInvalidProduct)
	case p.UnitVolume < 0:
		return fmt.Errorf("%w: %s: negative unit volume", ErrInvalidProduct, p.ID)
	case p.UnitWeight < 0:
		return fmt.Errorf("%w: %s: negative unit weight", ErrInvalidProduct, p.ID)
	case p.WholesalePrice.IsNegative():
		return fmt.Errorf("%w: %s: negative wholesale price", ErrInvalidProduct, p.ID)
	case p.SuggestedRetailPrice.IsNegative():
		return fmt.Errorf("%w: %s: negative suggested retail price", ErrInvalidProduct, p.ID)
	}
	return nil
}
