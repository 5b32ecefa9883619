// internal/domain/cart/entity.go
package cart

import (
	"time"

	"github.com/your-org/storefront/internal/domain/catalog"
)

// Item represents a cart line item: a product snapshot plus the quantity
// held. The snapshot is taken at time of add; later catalog changes do not
// reprice the line.
type Item struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Product   catalog.Product `json:"product"`
	AddedAt   time.Time       `json:"added_at"`
}

// LineTotal returns the line price in cents.
func (i Item) LineTotal() int64 {
	return i.Product.Price * int64(i.Quantity)
}

// Totals represents derived cart totals
type Totals struct {
	ItemCount   int   `json:"item_count"`   // Sum of all quantities
	UniqueItems int   `json:"unique_items"` // Number of distinct products
	Subtotal    int64 `json:"subtotal"`     // Total before tax/shipping, in cents
}
