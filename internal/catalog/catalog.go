// Package catalog holds the static book catalog and the query engine that
// filters and sorts it for display.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/wishwaD7/digital-books-store/internal/domain"
)

// AllGenres is the sentinel genre filter value that matches every product.
const AllGenres = "All"

// Catalog is a read-only, finite set of products. Genres are derived once at
// construction since the catalog never changes afterwards.
type Catalog struct {
	products []domain.Product
	byID     map[string]domain.Product
	genres   []string
}

// New validates products and builds a Catalog. IDs must be unique, formats
// known, prices non-negative and discounts within [0,1].
func New(products []domain.Product) (*Catalog, error) {
	byID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		if p.ID == "" {
			return nil, fmt.Errorf("product %q: empty id", p.Title)
		}
		if _, dup := byID[p.ID]; dup {
			return nil, fmt.Errorf("product %q: duplicate id %s", p.Title, p.ID)
		}
		if !p.Format.Valid() {
			return nil, fmt.Errorf("product %s: unknown format %q", p.ID, p.Format)
		}
		if p.Price.IsNegative() {
			return nil, fmt.Errorf("product %s: negative price", p.ID)
		}
		if p.Discount.IsNegative() || p.Discount.GreaterThan(decimal.NewFromInt(1)) {
			return nil, fmt.Errorf("product %s: discount out of range", p.ID)
		}
		byID[p.ID] = p
	}

	owned := make([]domain.Product, len(products))
	copy(owned, products)

	return &Catalog{
		products: owned,
		byID:     byID,
		genres:   deriveGenres(owned),
	}, nil
}

// LoadFile reads a JSON array of products from path.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return New(products)
}

// WriteFile writes products as the JSON array LoadFile reads back.
func WriteFile(path string, products []domain.Product) error {
	data, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename catalog: %w", err)
	}
	return nil
}

// Products returns all products in catalog order.
func (c *Catalog) Products() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Get returns the product with the given id, or domain.ErrNotFound.
func (c *Catalog) Get(id string) (domain.Product, error) {
	p, ok := c.byID[id]
	if !ok {
		return domain.Product{}, domain.ErrNotFound
	}
	return p, nil
}

// Genres returns the distinct genres sorted ascending, prefixed with the
// AllGenres sentinel. The result feeds the filter choices.
func (c *Catalog) Genres() []string {
	out := make([]string, len(c.genres))
	copy(out, c.genres)
	return out
}

func (c *Catalog) Len() int { return len(c.products) }

func deriveGenres(products []domain.Product) []string {
	seen := make(map[string]struct{}, len(products))
	distinct := make([]string, 0, len(products))
	for _, p := range products {
		if _, ok := seen[p.Genre]; ok {
			continue
		}
		seen[p.Genre] = struct{}{}
		distinct = append(distinct, p.Genre)
	}
	sort.Strings(distinct)
	return append([]string{AllGenres}, distinct...)
}
