package catalog

import (
	pkgerrors "github.com/pawmart/storefront-backend/pkg/errors"
)

// CategoryAll is the sentinel meaning "no category filter".
const CategoryAll = "All"

// Catalog holds the immutable product listing seeded at process start.
type Catalog struct {
	products   []Product
	byID       map[string]int
	categories []string
}

// New builds a catalog from seed products. Product ids must be unique.
func New(products []Product) (*Catalog, error) {
	byID := make(map[string]int, len(products))
	categories := []string{CategoryAll}
	seenCategory := map[string]bool{}
	for i, p := range products {
		if p.ID == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
		}
		if _, ok := byID[p.ID]; ok {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "duplicate product id "+p.ID)
		}
		if p.Price.IsNegative() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "product price must not be negative")
		}
		byID[p.ID] = i
		if p.Category != "" && !seenCategory[p.Category] {
			seenCategory[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return &Catalog{
		products:   products,
		byID:       byID,
		categories: categories,
	}, nil
}

// Products returns a copy of the full listing in seed order.
func (c *Catalog) Products() []Product {
	out := make([]Product, 0, len(c.products))
	for _, p := range c.products {
		out = append(out, p.Copy())
	}
	return out
}

// FindByID returns a copy of the product with the given id.
func (c *Catalog) FindByID(id string) (Product, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return Product{}, false
	}
	return c.products[idx].Copy(), true
}

// Categories returns the category tags in seed order, led by CategoryAll.
func (c *Catalog) Categories() []string {
	return append([]string(nil), c.categories...)
}

// Featured returns the products flagged is_featured.
func (c *Catalog) Featured() []Product {
	return c.filter(func(p Product) bool { return p.IsFeatured })
}

// Trending returns the products flagged is_trending.
func (c *Catalog) Trending() []Product {
	return c.filter(func(p Product) bool { return p.IsTrending })
}

// Len returns the number of seeded products.
func (c *Catalog) Len() int {
	return len(c.products)
}

func (c *Catalog) filter(keep func(Product) bool) []Product {
	var out []Product
	for _, p := range c.products {
		if keep(p) {
			out = append(out, p.Copy())
		}
	}
	return out
}
