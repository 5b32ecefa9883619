// internal/domain/catalog/entity.go
package catalog

// Product represents a catalog product. The catalog is read-only: state
// managers snapshot products but never mutate them. Prices are in cents.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         int64    `json:"price"`
	OriginalPrice int64    `json:"original_price,omitempty"` // Pre-discount price, 0 when not discounted
	Category      string   `json:"category"`
	Images        []string `json:"images"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"review_count"`
	Stock         int      `json:"stock"`
	Featured      bool     `json:"featured"`
	Tags          []string `json:"tags"`
}

// Category represents a product category
type Category struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Image        string `json:"image"`
	ProductCount int    `json:"product_count"`
}

// InStock reports whether the product has remaining inventory.
func (p *Product) InStock() bool {
	return p.Stock > 0
}

// DiscountPercent returns the rounded discount percentage, or 0 when the
// product is not discounted.
func (p *Product) DiscountPercent() int {
	if p.OriginalPrice <= p.Price || p.OriginalPrice == 0 {
		return 0
	}
	return int(float64(p.OriginalPrice-p.Price)/float64(p.OriginalPrice)*100 + 0.5)
}
