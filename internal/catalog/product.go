package catalog

import "github.com/shopspring/decimal"

// Product is process-wide read-only reference data. Instances are copied out
// of the catalog and never mutated after seeding.
type Product struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"original_price,omitempty"`
	Images        []string         `json:"images"`
	Category      string           `json:"category"`
	Brand         string           `json:"brand"`
	Description   string           `json:"description"`
	Sizes         []string         `json:"sizes"`
	Colors        []string         `json:"colors"`
	Rating        float64          `json:"rating"`
	ReviewCount   int              `json:"review_count"`
	IsNew         bool             `json:"is_new"`
	IsTrending    bool             `json:"is_trending"`
	IsFeatured    bool             `json:"is_featured"`
	IsOnSale      bool             `json:"is_on_sale"`
}

// Copy returns a product with its own backing slices so callers cannot
// reach the seeded data through aliasing.
func (p Product) Copy() Product {
	out := p
	out.Images = append([]string(nil), p.Images...)
	out.Sizes = append([]string(nil), p.Sizes...)
	out.Colors = append([]string(nil), p.Colors...)
	if p.OriginalPrice != nil {
		v := *p.OriginalPrice
		out.OriginalPrice = &v
	}
	return out
}
