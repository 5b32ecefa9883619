// internal/domain/session/manager.go
package session

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/infrastructure/storage"
	"github.com/your-org/storefront/internal/pkg/auth"
)

// ErrInvalidCredentials is returned by Login outside demo mode when the
// email is unknown or the password does not match. The message is generic
// on purpose.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Manager holds the current user identity and keeps it synchronized with
// the persistent store. It is constructed once at application start and
// passed explicitly to whatever needs it.
type Manager struct {
	mu        sync.RWMutex
	current   *User
	store     storage.Store
	log       *logrus.Logger
	passwords *auth.PasswordManager
	known     map[string]User // keyed by lowercase email
	demoMode  bool
	delay     time.Duration
}

// NewManager creates the session manager and rehydrates the persisted user.
// A corrupt stored record falls back to anonymous.
func NewManager(store storage.Store, cfg *config.Config, log *logrus.Logger) *Manager {
	m := &Manager{
		store:     store,
		log:       log,
		passwords: auth.NewPasswordManager(cfg),
		known:     make(map[string]User),
		demoMode:  cfg.Auth.DemoMode,
		delay:     cfg.Auth.LoginDelay,
	}

	m.restore()
	return m
}

// RegisterKnownUser adds a user to the known-users collaborator. The
// password is hashed; an empty password leaves the user demo-only.
func (m *Manager) RegisterKnownUser(user User, password string) error {
	if password != "" {
		hash, err := m.passwords.HashPassword(password)
		if err != nil {
			return err
		}
		user.PasswordHash = hash
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.known[strings.ToLower(user.Email)] = user
	return nil
}

// Login authenticates by email. The call simulates network latency and
// honors context cancellation so a torn down request never commits a late
// state update.
//
// Known emails resolve to their seeded record. Unknown emails succeed in
// demo mode by synthesizing a new customer; outside demo mode they fail
// with ErrInvalidCredentials, as does a wrong password.
func (m *Manager) Login(ctx context.Context, email, password string) (*User, error) {
	if err := m.simulateLatency(ctx); err != nil {
		return nil, err
	}

	email = strings.ToLower(strings.TrimSpace(email))

	m.mu.Lock()
	defer m.mu.Unlock()

	if known, ok := m.known[email]; ok {
		if !m.demoMode {
			if known.PasswordHash == "" {
				return nil, ErrInvalidCredentials
			}
			if err := m.passwords.VerifyPassword(password, known.PasswordHash); err != nil {
				return nil, ErrInvalidCredentials
			}
		}
		m.setCurrentLocked(&known)
		return m.copyCurrentLocked(), nil
	}

	if !m.demoMode {
		return nil, ErrInvalidCredentials
	}

	// Demo auth: any credentials are valid, a fresh customer is minted
	// from the email.
	user := User{
		ID:        uuid.New().String(),
		Email:     email,
		Name:      nameFromEmail(email),
		Role:      RoleCustomer,
		CreatedAt: time.Now().UTC(),
	}

	m.setCurrentLocked(&user)
	return m.copyCurrentLocked(), nil
}

// Signup installs a new customer account. It always succeeds after the
// simulated latency.
func (m *Manager) Signup(ctx context.Context, email, password, name string) (*User, error) {
	if err := m.simulateLatency(ctx); err != nil {
		return nil, err
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" {
		name = nameFromEmail(email)
	}

	user := User{
		ID:        uuid.New().String(),
		Email:     email,
		Name:      name,
		Avatar:    avatarURL(name),
		Role:      RoleCustomer,
		CreatedAt: time.Now().UTC(),
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.setCurrentLocked(&user)
	return m.copyCurrentLocked(), nil
}

// Logout clears the current user and removes the persisted record.
func (m *Manager) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.current = nil
	if err := m.store.Remove(context.Background(), storage.KeyUser); err != nil {
		m.log.WithError(err).Warn("failed to remove persisted user")
	}
}

// CurrentUser returns a copy of the active user, or nil when anonymous.
func (m *Manager) CurrentUser() *User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.copyCurrentLocked()
}

// IsAuthenticated reports whether a user is active.
func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current != nil
}

// IsAdmin reports whether the active user has the admin role.
func (m *Manager) IsAdmin() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current != nil && m.current.IsAdmin()
}

func (m *Manager) simulateLatency(ctx context.Context) error {
	if m.delay <= 0 {
		return nil
	}

	timer := time.NewTimer(m.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *Manager) setCurrentLocked(user *User) {
	u := *user
	u.PasswordHash = ""
	m.current = &u
	m.persistLocked()
}

func (m *Manager) persistLocked() {
	data, err := json.Marshal(m.current)
	if err != nil {
		m.log.WithError(err).Warn("failed to encode user")
		return
	}
	if err := m.store.Write(context.Background(), storage.KeyUser, data); err != nil {
		m.log.WithError(err).Warn("failed to persist user")
	}
}

func (m *Manager) copyCurrentLocked() *User {
	if m.current == nil {
		return nil
	}
	u := *m.current
	return &u
}

func (m *Manager) restore() {
	data, err := m.store.Read(context.Background(), storage.KeyUser)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			m.log.WithError(err).Warn("failed to read persisted user")
		}
		return
	}

	var user User
	if err := json.Unmarshal(data, &user); err != nil || user.ID == "" {
		m.log.Warn("discarding corrupt persisted user")
		return
	}

	m.current = &user
}
