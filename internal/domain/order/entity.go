// internal/domain/order/entity.go
package order

import (
	"time"

	"github.com/your-org/storefront/internal/domain/cart"
)

// Order statuses. Simulated orders start in processing and never advance.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

// Pricing represents the order pricing breakdown in cents.
type Pricing struct {
	Subtotal       int64 `json:"subtotal"`
	ShippingCost   int64 `json:"shipping_cost"`
	TaxAmount      int64 `json:"tax_amount"`
	DiscountAmount int64 `json:"discount_amount"`
	TotalAmount    int64 `json:"total_amount"`
}

// ShippingAddress is the address captured at checkout. Free-form demo
// input, not validated against any address service.
type ShippingAddress struct {
	FullName string `json:"full_name"`
	Street   string `json:"street"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zip_code"`
	Country  string `json:"country"`
	Phone    string `json:"phone,omitempty"`
}

// Order represents a placed (simulated) order.
type Order struct {
	ID              string          `json:"id"`
	OrderNumber     string          `json:"order_number"`
	UserID          string          `json:"user_id"`
	Email           string          `json:"email"`
	Items           []cart.Item     `json:"items"`
	Pricing         Pricing         `json:"pricing"`
	CouponCode      string          `json:"coupon_code,omitempty"`
	ShippingAddress ShippingAddress `json:"shipping_address"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
}
