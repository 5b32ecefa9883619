// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/order"
	"github.com/your-org/storefront/internal/domain/session"
)

// Checkout preconditions.
var (
	ErrNotAuthenticated = errors.New("checkout requires an authenticated user")
	ErrEmptyCart        = errors.New("cart is empty")
)

// ConfirmationMailer sends order confirmations. Optional; checkout works
// without one.
type ConfirmationMailer interface {
	SendOrderConfirmation(ctx context.Context, o *order.Order) error
}

// Service simulates checkout: it prices the cart, applies coupons, fakes
// the processing delay, and records the resulting order. No real payment
// happens anywhere in here.
type Service struct {
	cartManager    *cart.Manager
	sessionManager *session.Manager
	orderManager   *order.Manager
	config         *config.Config
	log            *logrus.Logger
	mailer         ConfirmationMailer
}

// NewService creates a new checkout service. mailer may be nil.
func NewService(
	cartManager *cart.Manager,
	sessionManager *session.Manager,
	orderManager *order.Manager,
	cfg *config.Config,
	log *logrus.Logger,
	mailer ConfirmationMailer,
) *Service {
	return &Service{
		cartManager:    cartManager,
		sessionManager: sessionManager,
		orderManager:   orderManager,
		config:         cfg,
		log:            log,
		mailer:         mailer,
	}
}

// Quote represents the priced cart. Amounts are in cents.
type Quote struct {
	Subtotal       int64              `json:"subtotal"`
	ShippingCost   int64              `json:"shipping_cost"`
	TaxAmount      int64              `json:"tax_amount"`
	DiscountAmount int64              `json:"discount_amount"`
	TotalAmount    int64              `json:"total_amount"`
	FreeShipping   bool               `json:"free_shipping"`
	AppliedCoupon  *CouponApplication `json:"applied_coupon,omitempty"`
}

// CouponApplication represents the result of applying a coupon code.
type CouponApplication struct {
	Code           string  `json:"code"`
	DiscountType   string  `json:"discount_type"` // percentage, fixed_amount
	DiscountValue  float64 `json:"discount_value"`
	DiscountAmount int64   `json:"discount_amount"`
	MinOrderAmount int64   `json:"min_order_amount"`
	Applied        bool    `json:"applied"`
	Message        string  `json:"message,omitempty"`
}

// PlaceOrderRequest represents a place order request
type PlaceOrderRequest struct {
	ShippingAddress order.ShippingAddress `json:"shipping_address" binding:"required"`
	CouponCode      string                `json:"coupon_code,omitempty"`
}

// GetQuote prices the current cart. Shipping is free above the configured
// threshold, a flat rate otherwise; tax applies to the subtotal; a coupon
// discount is subtracted last. An empty cart quotes to zero.
func (s *Service) GetQuote(couponCode string) Quote {
	subtotal := s.cartManager.Subtotal()

	quote := Quote{Subtotal: subtotal}
	if subtotal == 0 {
		return quote
	}

	if subtotal > s.config.Checkout.FreeShippingThreshold {
		quote.FreeShipping = true
	} else {
		quote.ShippingCost = s.config.Checkout.FlatShippingRate
	}

	quote.TaxAmount = subtotal * s.config.Checkout.TaxRateBasisPoints / 10000

	if couponCode != "" {
		coupon := s.validateCoupon(couponCode, subtotal)
		quote.AppliedCoupon = coupon
		if coupon.Applied {
			quote.DiscountAmount = coupon.DiscountAmount
		}
	}

	quote.TotalAmount = quote.Subtotal + quote.ShippingCost + quote.TaxAmount - quote.DiscountAmount
	if quote.TotalAmount < 0 {
		quote.TotalAmount = 0
	}

	return quote
}

// PlaceOrder runs the simulated checkout: it requires an authenticated
// user and a non-empty cart, waits out the fake processing delay (honoring
// context cancellation), records the order, and clears the cart.
func (s *Service) PlaceOrder(ctx context.Context, req *PlaceOrderRequest) (*order.Order, error) {
	user := s.sessionManager.CurrentUser()
	if user == nil {
		return nil, ErrNotAuthenticated
	}

	items := s.cartManager.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	quote := s.GetQuote(req.CouponCode)

	if err := s.simulateProcessing(ctx); err != nil {
		return nil, err
	}

	id := uuid.New().String()
	o := order.Order{
		ID:          id,
		OrderNumber: fmt.Sprintf("ORD-%s", strings.ToUpper(id[:8])),
		UserID:      user.ID,
		Email:       user.Email,
		Items:       items,
		Pricing: order.Pricing{
			Subtotal:       quote.Subtotal,
			ShippingCost:   quote.ShippingCost,
			TaxAmount:      quote.TaxAmount,
			DiscountAmount: quote.DiscountAmount,
			TotalAmount:    quote.TotalAmount,
		},
		CouponCode:      couponCodeIfApplied(quote),
		ShippingAddress: req.ShippingAddress,
		Status:          order.StatusProcessing,
		CreatedAt:       time.Now().UTC(),
	}

	s.orderManager.Record(o)
	s.cartManager.ClearCart()

	s.log.WithFields(logrus.Fields{
		"order_id":     o.ID,
		"order_number": o.OrderNumber,
		"user_id":      o.UserID,
		"total":        o.Pricing.TotalAmount,
	}).Info("order placed")

	if s.mailer != nil {
		if err := s.mailer.SendOrderConfirmation(ctx, &o); err != nil {
			// Confirmation email failures never fail the order.
			s.log.WithError(err).Warn("failed to send order confirmation")
		}
	}

	return &o, nil
}

func couponCodeIfApplied(quote Quote) string {
	if quote.AppliedCoupon != nil && quote.AppliedCoupon.Applied {
		return quote.AppliedCoupon.Code
	}
	return ""
}

func (s *Service) simulateProcessing(ctx context.Context) error {
	if s.config.Checkout.ProcessingDelay <= 0 {
		return nil
	}

	timer := time.NewTimer(s.config.Checkout.ProcessingDelay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// validateCoupon checks a code against the demo coupon table.
func (s *Service) validateCoupon(code string, subtotal int64) *CouponApplication {
	coupons := map[string]CouponApplication{
		"SAVE10": {
			Code:           "SAVE10",
			DiscountType:   "percentage",
			DiscountValue:  10.0,
			MinOrderAmount: 2500,
		},
		"WELCOME20": {
			Code:           "WELCOME20",
			DiscountType:   "percentage",
			DiscountValue:  20.0,
			MinOrderAmount: 1000,
		},
		"FLAT5": {
			Code:           "FLAT5",
			DiscountType:   "fixed_amount",
			DiscountValue:  500,
			MinOrderAmount: 2000,
		},
	}

	code = strings.ToUpper(strings.TrimSpace(code))
	coupon, exists := coupons[code]
	if !exists {
		return &CouponApplication{
			Code:    code,
			Message: "Invalid coupon code",
		}
	}

	if subtotal < coupon.MinOrderAmount {
		coupon.Message = fmt.Sprintf("Minimum order amount of $%.2f required", float64(coupon.MinOrderAmount)/100)
		return &coupon
	}

	if coupon.DiscountType == "percentage" {
		coupon.DiscountAmount = int64(float64(subtotal) * coupon.DiscountValue / 100)
	} else {
		coupon.DiscountAmount = int64(coupon.DiscountValue)
	}

	coupon.Applied = true
	coupon.Message = fmt.Sprintf("Coupon applied! You saved $%.2f", float64(coupon.DiscountAmount)/100)
	return &coupon
}
