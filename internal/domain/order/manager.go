// internal/domain/order/manager.go
package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/infrastructure/storage"
)

// ErrNotFound is returned when no order matches the given id.
var ErrNotFound = errors.New("order not found")

// Manager holds the session's order history, persisted as an append-only
// sequence.
type Manager struct {
	mu     sync.RWMutex
	orders []Order
	store  storage.Store
	log    *logrus.Logger
}

// NewManager creates the order manager and rehydrates persisted history.
// A corrupt stored blob falls back to an empty history.
func NewManager(store storage.Store, log *logrus.Logger) *Manager {
	m := &Manager{
		store: store,
		log:   log,
	}

	m.restore()
	return m
}

// Record appends an order to the history.
func (m *Manager) Record(order Order) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.orders = append(m.orders, order)
	m.persistLocked()
}

// List returns orders for a user, newest first.
func (m *Manager) List(userID string) []Order {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []Order
	for i := len(m.orders) - 1; i >= 0; i-- {
		if m.orders[i].UserID == userID {
			out = append(out, m.orders[i])
		}
	}
	return out
}

// Get retrieves a user's order by id.
func (m *Manager) Get(userID, orderID string) (*Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.orders {
		if m.orders[i].ID == orderID && m.orders[i].UserID == userID {
			o := m.orders[i]
			return &o, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, orderID)
}

func (m *Manager) persistLocked() {
	data, err := json.Marshal(m.orders)
	if err != nil {
		m.log.WithError(err).Warn("failed to encode orders")
		return
	}
	if err := m.store.Write(context.Background(), storage.KeyOrders, data); err != nil {
		m.log.WithError(err).Warn("failed to persist orders")
	}
}

func (m *Manager) restore() {
	data, err := m.store.Read(context.Background(), storage.KeyOrders)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			m.log.WithError(err).Warn("failed to read persisted orders")
		}
		return
	}

	var orders []Order
	if err := json.Unmarshal(data, &orders); err != nil {
		m.log.Warn("discarding corrupt persisted orders")
		return
	}

	m.orders = orders
}
