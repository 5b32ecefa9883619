// internal/domain/wishlist/manager.go
package wishlist

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/infrastructure/storage"
)

// Manager holds the set of saved product ids and keeps it synchronized
// with the persistent store. Membership is what matters; insertion order
// is preserved in the underlying sequence.
type Manager struct {
	mu    sync.RWMutex
	items []string
	store storage.Store
	log   *logrus.Logger
}

// NewManager creates the wishlist manager and rehydrates persisted ids.
// A corrupt stored blob falls back to an empty wishlist.
func NewManager(store storage.Store, log *logrus.Logger) *Manager {
	m := &Manager{
		store: store,
		log:   log,
	}

	m.restore()
	return m
}

// AddToWishlist appends the product id if not already present. Adding an
// existing id is a no-op.
func (m *Manager) AddToWishlist(productID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.containsLocked(productID) {
		return
	}

	m.items = append(m.items, productID)
	m.persistLocked()
}

// RemoveFromWishlist removes the product id if present; no-op otherwise.
func (m *Manager) RemoveFromWishlist(productID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, id := range m.items {
		if id == productID {
			m.items = append(m.items[:i], m.items[i+1:]...)
			m.persistLocked()
			return
		}
	}
}

// ToggleWishlist removes the id when present, adds it otherwise. The whole
// toggle happens under one lock so no intermediate state is observable.
func (m *Manager) ToggleWishlist(productID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, id := range m.items {
		if id == productID {
			m.items = append(m.items[:i], m.items[i+1:]...)
			m.persistLocked()
			return false
		}
	}

	m.items = append(m.items, productID)
	m.persistLocked()
	return true
}

// IsInWishlist reports membership.
func (m *Manager) IsInWishlist(productID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.containsLocked(productID)
}

// Items returns a copy of the saved product ids in insertion order.
func (m *Manager) Items() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]string, len(m.items))
	copy(out, m.items)
	return out
}

// Count returns the number of saved product ids.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

func (m *Manager) containsLocked(productID string) bool {
	for _, id := range m.items {
		if id == productID {
			return true
		}
	}
	return false
}

func (m *Manager) persistLocked() {
	items := m.items
	if items == nil {
		items = []string{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		m.log.WithError(err).Warn("failed to encode wishlist")
		return
	}
	if err := m.store.Write(context.Background(), storage.KeyWishlist, data); err != nil {
		m.log.WithError(err).Warn("failed to persist wishlist")
	}
}

func (m *Manager) restore() {
	data, err := m.store.Read(context.Background(), storage.KeyWishlist)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			m.log.WithError(err).Warn("failed to read persisted wishlist")
		}
		return
	}

	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		m.log.Warn("discarding corrupt persisted wishlist")
		return
	}

	// Deduplicate defensively; the sequence is a set.
	seen := make(map[string]bool, len(items))
	unique := items[:0]
	for _, id := range items {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, id)
	}

	m.items = unique
}
