// internal/domain/theme/manager.go
package theme

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/infrastructure/storage"
)

// Supported theme names.
const (
	Light  = "light"
	Dark   = "dark"
	System = "system"
)

// Manager holds the theme preference, persisted alongside the rest of the
// session state.
type Manager struct {
	mu      sync.RWMutex
	current string
	store   storage.Store
	log     *logrus.Logger
}

// NewManager creates the theme manager and rehydrates the persisted
// preference. An invalid or corrupt stored value falls back to the system
// default.
func NewManager(store storage.Store, log *logrus.Logger) *Manager {
	m := &Manager{
		current: System,
		store:   store,
		log:     log,
	}

	m.restore()
	return m
}

// Current returns the active theme name.
func (m *Manager) Current() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Set switches the theme and persists it.
func (m *Manager) Set(name string) error {
	if !valid(name) {
		return fmt.Errorf("unknown theme %q", name)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.current = name

	data, err := json.Marshal(name)
	if err != nil {
		return fmt.Errorf("failed to encode theme: %w", err)
	}
	if err := m.store.Write(context.Background(), storage.KeyTheme, data); err != nil {
		m.log.WithError(err).Warn("failed to persist theme")
	}
	return nil
}

func valid(name string) bool {
	return name == Light || name == Dark || name == System
}

func (m *Manager) restore() {
	data, err := m.store.Read(context.Background(), storage.KeyTheme)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			m.log.WithError(err).Warn("failed to read persisted theme")
		}
		return
	}

	var name string
	if err := json.Unmarshal(data, &name); err != nil || !valid(name) {
		m.log.Warn("discarding corrupt persisted theme")
		return
	}

	m.current = name
}
