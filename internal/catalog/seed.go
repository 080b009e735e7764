package catalog

import "github.com/shopspring/decimal"

// Default returns the built-in pet storefront catalog. The listing is the
// only "backend" data the service has; it lives for the whole process.
func Default() (*Catalog, error) {
	return New(seedProducts())
}

func seedProducts() []Product {
	return []Product{
		{
			ID:            "1",
			Name:          "Minimalist Pet Bed",
			Price:         decimal.NewFromInt(89),
			OriginalPrice: priceOf(129),
			Images: []string{
				"https://cdn.pawmart.dev/products/minimalist-pet-bed-1.jpg",
				"https://cdn.pawmart.dev/products/minimalist-pet-bed-2.jpg",
			},
			Category:    "Pet Beds",
			Brand:       "COZY",
			Description: "Clean-lined pet bed crafted from sustainable materials",
			Sizes:       []string{"Small", "Medium", "Large"},
			Colors:      []string{"White", "Black", "Natural"},
			Rating:      4.8,
			ReviewCount: 124,
			IsOnSale:    true,
		},
		{
			ID:    "2",
			Name:  "Ceramic Food Bowl Set",
			Price: decimal.NewFromInt(145),
			Images: []string{
				"https://cdn.pawmart.dev/products/ceramic-food-bowl-set-1.jpg",
				"https://cdn.pawmart.dev/products/ceramic-food-bowl-set-2.jpg",
			},
			Category:    "Feeding",
			Brand:       "PURE",
			Description: "Handcrafted ceramic bowls with anti-slip base",
			Sizes:       []string{"Small", "Medium", "Large", "XL"},
			Colors:      []string{"White", "Charcoal", "Stone"},
			Rating:      4.9,
			ReviewCount: 89,
			IsTrending:  true,
			IsFeatured:  true,
		},
		{
			ID:    "3",
			Name:  "Modern Cat Tree",
			Price: decimal.NewFromInt(320),
			Images: []string{
				"https://cdn.pawmart.dev/products/modern-cat-tree-1.jpg",
				"https://cdn.pawmart.dev/products/modern-cat-tree-2.jpg",
			},
			Category:    "Cat Furniture",
			Brand:       "MINIMAL",
			Description: "Contemporary cat tower with multiple levels and scratching posts",
			Sizes:       []string{"120cm", "150cm", "180cm"},
			Colors:      []string{"Black", "White", "Gray"},
			Rating:      4.6,
			ReviewCount: 156,
			IsFeatured:  true,
		},
		{
			ID:    "4",
			Name:  "Wall-Mounted Pet Feeder",
			Price: decimal.NewFromInt(75),
			Images: []string{
				"https://cdn.pawmart.dev/products/wall-mounted-pet-feeder-1.jpg",
			},
			Category:    "Feeding",
			Brand:       "FORM",
			Description: "Space-saving wall feeder for modern pet owners",
			Sizes:       []string{"Single Bowl", "Double Bowl", "Triple Bowl"},
			Colors:      []string{"White", "Black"},
			Rating:      4.7,
			ReviewCount: 67,
			IsTrending:  true,
			IsNew:       true,
		},
		{
			ID:            "5",
			Name:          "Bamboo Pet Toy Box",
			Price:         decimal.NewFromInt(45),
			OriginalPrice: priceOf(65),
			Images: []string{
				"https://cdn.pawmart.dev/products/bamboo-pet-toy-box-1.jpg",
				"https://cdn.pawmart.dev/products/bamboo-pet-toy-box-2.jpg",
			},
			Category:    "Storage",
			Brand:       "NATURAL",
			Description: "Sustainable bamboo storage for pet toys and accessories",
			Sizes:       []string{"Small", "Medium", "Large"},
			Colors:      []string{"Natural", "Black", "White"},
			Rating:      4.5,
			ReviewCount: 203,
			IsOnSale:    true,
		},
		{
			ID:    "6",
			Name:  "Designer Water Fountain",
			Price: decimal.NewFromInt(125),
			Images: []string{
				"https://cdn.pawmart.dev/products/designer-water-fountain-1.jpg",
				"https://cdn.pawmart.dev/products/designer-water-fountain-2.jpg",
			},
			Category:    "Water & Feeding",
			Brand:       "FLOW",
			Description: "Sculptural pet water fountain with filtration system",
			Sizes:       []string{"1L", "2L", "3L"},
			Colors:      []string{"Matte Black", "Pure White", "Brushed Steel"},
			Rating:      4.9,
			ReviewCount: 45,
			IsFeatured:  true,
			IsNew:       true,
		},
		{
			ID:    "7",
			Name:  "Luxury Pet Carrier Set",
			Price: decimal.NewFromInt(180),
			Images: []string{
				"https://cdn.pawmart.dev/products/luxury-pet-carrier-set-1.jpg",
				"https://cdn.pawmart.dev/products/luxury-pet-carrier-set-2.jpg",
			},
			Category:    "Travel",
			Brand:       "VOYAGE",
			Description: "Premium travel carriers with comfort padding",
			Sizes:       []string{"Small Pets", "Medium Pets", "Large Pets"},
			Colors:      []string{"Gray", "White", "Charcoal"},
			Rating:      4.8,
			ReviewCount: 92,
			IsTrending:  true,
		},
		{
			ID:            "8",
			Name:          "Smart Pet Activity Monitor",
			Price:         decimal.NewFromInt(220),
			OriginalPrice: priceOf(290),
			Images: []string{
				"https://cdn.pawmart.dev/products/smart-pet-activity-monitor-1.jpg",
				"https://cdn.pawmart.dev/products/smart-pet-activity-monitor-2.jpg",
			},
			Category:    "Tech & Wellness",
			Brand:       "SMART",
			Description: "Advanced activity tracker with health monitoring features",
			Sizes:       []string{"Small Collar", "Medium Collar", "Large Collar"},
			Colors:      []string{"Matte Black", "Pure White"},
			Rating:      4.7,
			ReviewCount: 134,
			IsOnSale:    true,
		},
	}
}

func priceOf(value int64) *decimal.Decimal {
	d := decimal.NewFromInt(value)
	return &d
}
