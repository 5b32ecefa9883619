// internal/domain/cart/manager.go
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/domain/catalog"
	"github.com/your-org/storefront/internal/infrastructure/storage"
)

// Manager holds the cart line items and keeps them synchronized with the
// persistent store. Items keep insertion order: new products append,
// existing products update in place. At most one item exists per product id.
type Manager struct {
	mu    sync.RWMutex
	items []Item
	store storage.Store
	log   *logrus.Logger
}

// NewManager creates the cart manager and rehydrates persisted items.
// A corrupt stored blob falls back to an empty cart.
func NewManager(store storage.Store, log *logrus.Logger) *Manager {
	m := &Manager{
		store: store,
		log:   log,
	}

	m.restore()
	return m
}

// AddToCart merges the product into the cart: an existing line's quantity
// is incremented, otherwise a new line is appended with a snapshot of the
// product. Quantities below one count as one. Stock is not enforced here;
// the caller is responsible for clamping against availability.
func (m *Manager) AddToCart(product *catalog.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.items {
		if m.items[i].ProductID == product.ID {
			m.items[i].Quantity += quantity
			m.persistLocked()
			return
		}
	}

	m.items = append(m.items, Item{
		ProductID: product.ID,
		Quantity:  quantity,
		Product:   *product,
		AddedAt:   time.Now().UTC(),
	})
	m.persistLocked()
}

// RemoveFromCart removes the matching line, if any. Removing an absent
// product is a no-op.
func (m *Manager) RemoveFromCart(productID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.items {
		if m.items[i].ProductID == productID {
			m.items = append(m.items[:i], m.items[i+1:]...)
			m.persistLocked()
			return
		}
	}
}

// UpdateQuantity sets a line's quantity to exactly the given value. A value
// of zero or less removes the line. Updating an absent product is a no-op.
func (m *Manager) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		m.RemoveFromCart(productID)
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.items {
		if m.items[i].ProductID == productID {
			m.items[i].Quantity = quantity
			m.persistLocked()
			return
		}
	}
}

// ClearCart empties the cart.
func (m *Manager) ClearCart() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items = nil
	m.persistLocked()
}

// IsInCart reports whether the product has a line in the cart.
func (m *Manager) IsInCart(productID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.items {
		if m.items[i].ProductID == productID {
			return true
		}
	}
	return false
}

// Items returns a copy of the cart lines in insertion order.
func (m *Manager) Items() []Item {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Item, len(m.items))
	copy(out, m.items)
	return out
}

// ItemCount returns the sum of all line quantities. Recomputed on every
// read; cart size is bounded by human shopping behavior.
func (m *Manager) ItemCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	count := 0
	for i := range m.items {
		count += m.items[i].Quantity
	}
	return count
}

// Subtotal returns the cart subtotal in cents, priced from the product
// snapshots.
func (m *Manager) Subtotal() int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.subtotalLocked()
}

// CalculateTotals returns all derived totals in one pass.
func (m *Manager) CalculateTotals() Totals {
	m.mu.RLock()
	defer m.mu.RUnlock()

	totals := Totals{
		UniqueItems: len(m.items),
	}
	for i := range m.items {
		totals.ItemCount += m.items[i].Quantity
		totals.Subtotal += m.items[i].LineTotal()
	}
	return totals
}

func (m *Manager) subtotalLocked() int64 {
	var subtotal int64
	for i := range m.items {
		subtotal += m.items[i].LineTotal()
	}
	return subtotal
}

func (m *Manager) persistLocked() {
	items := m.items
	if items == nil {
		items = []Item{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		m.log.WithError(err).Warn("failed to encode cart")
		return
	}
	if err := m.store.Write(context.Background(), storage.KeyCart, data); err != nil {
		m.log.WithError(err).Warn("failed to persist cart")
	}
}

func (m *Manager) restore() {
	data, err := m.store.Read(context.Background(), storage.KeyCart)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			m.log.WithError(err).Warn("failed to read persisted cart")
		}
		return
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		m.log.Warn("discarding corrupt persisted cart")
		return
	}

	// Drop lines that violate the quantity invariant.
	valid := items[:0]
	for _, item := range items {
		if item.ProductID == "" || item.Quantity < 1 {
			continue
		}
		valid = append(valid, item)
	}

	m.items = valid
}
