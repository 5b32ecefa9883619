// internal/domain/checkout/service_test.go
package checkout

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/catalog"
	"github.com/your-org/storefront/internal/domain/order"
	"github.com/your-org/storefront/internal/domain/session"
	"github.com/your-org/storefront/internal/infrastructure/storage"
	"golang.org/x/crypto/bcrypt"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			DemoMode:   true,
			LoginDelay: 0,
		},
		Checkout: config.CheckoutConfig{
			FreeShippingThreshold: 5000,
			FlatShippingRate:      1000,
			TaxRateBasisPoints:    1000,
			ProcessingDelay:       0,
		},
		Security: config.SecurityConfig{
			BcryptCost: bcrypt.MinCost,
		},
	}
}

type fixture struct {
	service  *Service
	cart     *cart.Manager
	sessions *session.Manager
	orders   *order.Manager
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := storage.NewMemoryStore()
	log := testLogger()
	cfg := testConfig()

	cartManager := cart.NewManager(store, log)
	sessions := session.NewManager(store, cfg, log)
	orders := order.NewManager(store, log)

	return &fixture{
		service:  NewService(cartManager, sessions, orders, cfg, log, nil),
		cart:     cartManager,
		sessions: sessions,
		orders:   orders,
	}
}

func (f *fixture) addProduct(id string, price int64, quantity int) {
	f.cart.AddToCart(&catalog.Product{ID: id, Name: "Product " + id, Price: price, Stock: 10}, quantity)
}

func testAddress() order.ShippingAddress {
	return order.ShippingAddress{
		FullName: "Jane Doe",
		Street:   "1 Main St",
		City:     "Springfield",
		State:    "IL",
		ZipCode:  "62701",
		Country:  "US",
	}
}

func TestQuoteEmptyCartIsZero(t *testing.T) {
	f := newFixture(t)

	quote := f.service.GetQuote("")
	assert.Equal(t, Quote{}, quote)
}

func TestQuoteFlatShippingBelowThreshold(t *testing.T) {
	f := newFixture(t)
	f.addProduct("prod-001", 1500, 2) // subtotal 3000

	quote := f.service.GetQuote("")
	assert.Equal(t, int64(3000), quote.Subtotal)
	assert.Equal(t, int64(1000), quote.ShippingCost)
	assert.Equal(t, int64(300), quote.TaxAmount)
	assert.Equal(t, int64(4300), quote.TotalAmount)
	assert.False(t, quote.FreeShipping)
}

func TestQuoteFreeShippingAboveThreshold(t *testing.T) {
	f := newFixture(t)
	f.addProduct("prod-001", 3000, 2) // subtotal 6000

	quote := f.service.GetQuote("")
	assert.Equal(t, int64(6000), quote.Subtotal)
	assert.Equal(t, int64(0), quote.ShippingCost)
	assert.True(t, quote.FreeShipping)
	assert.Equal(t, int64(600), quote.TaxAmount)
	assert.Equal(t, int64(6600), quote.TotalAmount)
}

func TestQuoteExactThresholdStillPaysShipping(t *testing.T) {
	f := newFixture(t)
	f.addProduct("prod-001", 5000, 1)

	quote := f.service.GetQuote("")
	assert.False(t, quote.FreeShipping)
	assert.Equal(t, int64(1000), quote.ShippingCost)
}

func TestQuotePercentageCoupon(t *testing.T) {
	f := newFixture(t)
	f.addProduct("prod-001", 1500, 2) // subtotal 3000

	quote := f.service.GetQuote("SAVE10")
	require.NotNil(t, quote.AppliedCoupon)
	assert.True(t, quote.AppliedCoupon.Applied)
	assert.Equal(t, int64(300), quote.DiscountAmount)
	assert.Equal(t, int64(4000), quote.TotalAmount)
}

func TestQuoteFixedAmountCoupon(t *testing.T) {
	f := newFixture(t)
	f.addProduct("prod-001", 2500, 1)

	quote := f.service.GetQuote("flat5") // codes are case-insensitive
	require.NotNil(t, quote.AppliedCoupon)
	assert.True(t, quote.AppliedCoupon.Applied)
	assert.Equal(t, int64(500), quote.DiscountAmount)
}

func TestQuoteCouponBelowMinimumIsNotApplied(t *testing.T) {
	f := newFixture(t)
	f.addProduct("prod-001", 1000, 1) // below SAVE10's 2500 minimum

	quote := f.service.GetQuote("SAVE10")
	require.NotNil(t, quote.AppliedCoupon)
	assert.False(t, quote.AppliedCoupon.Applied)
	assert.Equal(t, int64(0), quote.DiscountAmount)
	assert.NotEmpty(t, quote.AppliedCoupon.Message)
}

func TestQuoteUnknownCouponIsNotApplied(t *testing.T) {
	f := newFixture(t)
	f.addProduct("prod-001", 3000, 1)

	quote := f.service.GetQuote("NOPE")
	require.NotNil(t, quote.AppliedCoupon)
	assert.False(t, quote.AppliedCoupon.Applied)
	assert.Equal(t, "Invalid coupon code", quote.AppliedCoupon.Message)
}

func TestPlaceOrderRequiresAuthentication(t *testing.T) {
	f := newFixture(t)
	f.addProduct("prod-001", 3000, 1)

	_, err := f.service.PlaceOrder(context.Background(), &PlaceOrderRequest{ShippingAddress: testAddress()})
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestPlaceOrderRequiresNonEmptyCart(t *testing.T) {
	f := newFixture(t)
	_, err := f.sessions.Login(context.Background(), "jane@example.com", "password")
	require.NoError(t, err)

	_, err = f.service.PlaceOrder(context.Background(), &PlaceOrderRequest{ShippingAddress: testAddress()})
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestPlaceOrderRecordsAndClearsCart(t *testing.T) {
	f := newFixture(t)
	user, err := f.sessions.Login(context.Background(), "jane@example.com", "password")
	require.NoError(t, err)

	f.addProduct("prod-001", 1500, 2)
	f.addProduct("prod-002", 500, 1)

	placed, err := f.service.PlaceOrder(context.Background(), &PlaceOrderRequest{ShippingAddress: testAddress()})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(placed.OrderNumber, "ORD-"))
	assert.Equal(t, user.ID, placed.UserID)
	assert.Equal(t, order.StatusProcessing, placed.Status)
	assert.Len(t, placed.Items, 2)
	assert.Equal(t, int64(3500), placed.Pricing.Subtotal)
	assert.Equal(t, int64(1000), placed.Pricing.ShippingCost)
	assert.Equal(t, int64(350), placed.Pricing.TaxAmount)
	assert.Equal(t, int64(4850), placed.Pricing.TotalAmount)

	// Cart is cleared and the order shows up in history.
	assert.Empty(t, f.cart.Items())
	history := f.orders.List(user.ID)
	require.Len(t, history, 1)
	assert.Equal(t, placed.ID, history[0].ID)
}

func TestPlaceOrderRecordsAppliedCoupon(t *testing.T) {
	f := newFixture(t)
	_, err := f.sessions.Login(context.Background(), "jane@example.com", "password")
	require.NoError(t, err)

	f.addProduct("prod-001", 1500, 2)

	placed, err := f.service.PlaceOrder(context.Background(), &PlaceOrderRequest{
		ShippingAddress: testAddress(),
		CouponCode:      "SAVE10",
	})
	require.NoError(t, err)

	assert.Equal(t, "SAVE10", placed.CouponCode)
	assert.Equal(t, int64(300), placed.Pricing.DiscountAmount)
}

func TestPlaceOrderHonorsContextCancellation(t *testing.T) {
	f := newFixture(t)
	f.service.config.Checkout.ProcessingDelay = time.Minute

	_, err := f.sessions.Login(context.Background(), "jane@example.com", "password")
	require.NoError(t, err)
	f.addProduct("prod-001", 3000, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = f.service.PlaceOrder(ctx, &PlaceOrderRequest{ShippingAddress: testAddress()})
	assert.ErrorIs(t, err, context.Canceled)

	// Nothing committed on a torn down request.
	assert.Len(t, f.cart.Items(), 1)
	assert.Empty(t, f.orders.List("anyone"))
}
