// internal/domain/catalog/seed.go
package catalog

// NewSeeded creates a catalog populated with the demo product set.
func NewSeeded() *Catalog {
	return New(seedProducts(), seedCategories())
}

func seedProducts() []Product {
	return []Product{
		{
			ID:            "prod-001",
			Name:          "Wireless Noise-Cancelling Headphones",
			Description:   "Over-ear headphones with active noise cancellation and 30-hour battery life.",
			Price:         19999,
			OriginalPrice: 24999,
			Category:      "electronics",
			Images:        []string{"/images/products/headphones-1.jpg", "/images/products/headphones-2.jpg"},
			Rating:        4.7,
			ReviewCount:   1284,
			Stock:         42,
			Featured:      true,
			Tags:          []string{"audio", "wireless", "travel"},
		},
		{
			ID:          "prod-002",
			Name:        "Smart Fitness Watch",
			Description: "Water-resistant fitness tracker with heart rate monitoring and GPS.",
			Price:       14999,
			Category:    "electronics",
			Images:      []string{"/images/products/watch-1.jpg"},
			Rating:      4.4,
			ReviewCount: 867,
			Stock:       18,
			Featured:    true,
			Tags:        []string{"fitness", "wearable"},
		},
		{
			ID:            "prod-003",
			Name:          "Organic Cotton T-Shirt",
			Description:   "Classic fit t-shirt made from 100% organic cotton.",
			Price:         2499,
			OriginalPrice: 2999,
			Category:      "clothing",
			Images:        []string{"/images/products/tshirt-1.jpg"},
			Rating:        4.2,
			ReviewCount:   312,
			Stock:         120,
			Featured:      false,
			Tags:          []string{"organic", "basics"},
		},
		{
			ID:          "prod-004",
			Name:        "Insulated Stainless Water Bottle",
			Description: "Keeps drinks cold for 24 hours and hot for 12. 750ml capacity.",
			Price:       3499,
			Category:    "home",
			Images:      []string{"/images/products/bottle-1.jpg"},
			Rating:      4.8,
			ReviewCount: 2045,
			Stock:       64,
			Featured:    true,
			Tags:        []string{"hydration", "eco"},
		},
		{
			ID:          "prod-005",
			Name:        "Mechanical Keyboard",
			Description: "Tenkeyless mechanical keyboard with hot-swappable switches and RGB backlight.",
			Price:       8999,
			Category:    "electronics",
			Images:      []string{"/images/products/keyboard-1.jpg"},
			Rating:      4.6,
			ReviewCount: 534,
			Stock:       27,
			Featured:    false,
			Tags:        []string{"gaming", "desk"},
		},
		{
			ID:            "prod-006",
			Name:          "Ceramic Pour-Over Coffee Set",
			Description:   "Hand-glazed ceramic dripper with matching carafe and two mugs.",
			Price:         5499,
			OriginalPrice: 6999,
			Category:      "home",
			Images:        []string{"/images/products/coffee-1.jpg"},
			Rating:        4.5,
			ReviewCount:   189,
			Stock:         15,
			Featured:      false,
			Tags:          []string{"coffee", "kitchen"},
		},
		{
			ID:          "prod-007",
			Name:        "Trail Running Shoes",
			Description: "Lightweight trail shoes with aggressive grip and rock plate protection.",
			Price:       12999,
			Category:    "clothing",
			Images:      []string{"/images/products/shoes-1.jpg", "/images/products/shoes-2.jpg"},
			Rating:      4.3,
			ReviewCount: 421,
			Stock:       33,
			Featured:    true,
			Tags:        []string{"running", "outdoor"},
		},
		{
			ID:          "prod-008",
			Name:        "Leather Messenger Bag",
			Description: "Full-grain leather bag with padded 15-inch laptop compartment.",
			Price:       17999,
			Category:    "accessories",
			Images:      []string{"/images/products/bag-1.jpg"},
			Rating:      4.9,
			ReviewCount: 97,
			Stock:       8,
			Featured:    false,
			Tags:        []string{"leather", "work"},
		},
		{
			ID:          "prod-009",
			Name:        "Yoga Mat",
			Description: "Non-slip natural rubber yoga mat, 5mm thick with alignment lines.",
			Price:       4999,
			Category:    "sports",
			Images:      []string{"/images/products/mat-1.jpg"},
			Rating:      4.1,
			ReviewCount: 256,
			Stock:       51,
			Featured:    false,
			Tags:        []string{"yoga", "fitness"},
		},
		{
			ID:            "prod-010",
			Name:          "Portable Bluetooth Speaker",
			Description:   "Pocket-size speaker with surprisingly big sound and 12-hour playtime.",
			Price:         6499,
			OriginalPrice: 7999,
			Category:      "electronics",
			Images:        []string{"/images/products/speaker-1.jpg"},
			Rating:        4.0,
			ReviewCount:   743,
			Stock:         0,
			Featured:      false,
			Tags:          []string{"audio", "portable"},
		},
	}
}

func seedCategories() []Category {
	return []Category{
		{ID: "cat-001", Name: "Electronics", Slug: "electronics", Image: "/images/categories/electronics.jpg", ProductCount: 4},
		{ID: "cat-002", Name: "Clothing", Slug: "clothing", Image: "/images/categories/clothing.jpg", ProductCount: 2},
		{ID: "cat-003", Name: "Home", Slug: "home", Image: "/images/categories/home.jpg", ProductCount: 2},
		{ID: "cat-004", Name: "Accessories", Slug: "accessories", Image: "/images/categories/accessories.jpg", ProductCount: 1},
		{ID: "cat-005", Name: "Sports", Slug: "sports", Image: "/images/categories/sports.jpg", ProductCount: 1},
	}
}
