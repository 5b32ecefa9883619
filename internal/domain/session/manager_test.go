// internal/domain/session/manager_test.go
package session

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/infrastructure/storage"
	"golang.org/x/crypto/bcrypt"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testConfig(demoMode bool) *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			DemoMode:   demoMode,
			LoginDelay: 0,
		},
		Security: config.SecurityConfig{
			BcryptCost: bcrypt.MinCost,
		},
	}
}

func TestDemoLoginUnknownEmailSynthesizesCustomer(t *testing.T) {
	m := NewManager(storage.NewMemoryStore(), testConfig(true), testLogger())

	user, err := m.Login(context.Background(), "jane.doe@example.com", "whatever")
	require.NoError(t, err)
	require.NotNil(t, user)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "jane.doe@example.com", user.Email)
	assert.Equal(t, "Jane Doe", user.Name)
	assert.Equal(t, RoleCustomer, user.Role)
	assert.True(t, m.IsAuthenticated())
	assert.False(t, m.IsAdmin())
}

func TestDemoLoginKnownEmailUsesSeededProfile(t *testing.T) {
	m := NewManager(storage.NewMemoryStore(), testConfig(true), testLogger())
	require.NoError(t, m.RegisterKnownUser(User{
		ID:    "user-admin-001",
		Email: "admin@example.com",
		Name:  "Store Admin",
		Role:  RoleAdmin,
	}, "Admin123!"))

	// Demo mode ignores the password entirely.
	user, err := m.Login(context.Background(), "Admin@Example.com", "wrong-password")
	require.NoError(t, err)

	assert.Equal(t, "user-admin-001", user.ID)
	assert.Equal(t, RoleAdmin, user.Role)
	assert.Empty(t, user.PasswordHash)
	assert.True(t, m.IsAdmin())
}

func TestHardenedLoginRejectsUnknownEmail(t *testing.T) {
	m := NewManager(storage.NewMemoryStore(), testConfig(false), testLogger())

	user, err := m.Login(context.Background(), "stranger@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, user)
	assert.False(t, m.IsAuthenticated())
}

func TestHardenedLoginVerifiesPassword(t *testing.T) {
	m := NewManager(storage.NewMemoryStore(), testConfig(false), testLogger())
	require.NoError(t, m.RegisterKnownUser(User{
		ID:    "user-demo-001",
		Email: "demo@example.com",
		Name:  "Demo Shopper",
		Role:  RoleCustomer,
	}, "Demo1234!"))

	_, err := m.Login(context.Background(), "demo@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	user, err := m.Login(context.Background(), "demo@example.com", "Demo1234!")
	require.NoError(t, err)
	assert.Equal(t, "user-demo-001", user.ID)
}

func TestLoginHonorsContextCancellation(t *testing.T) {
	cfg := testConfig(true)
	cfg.Auth.LoginDelay = time.Minute
	m := NewManager(storage.NewMemoryStore(), cfg, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	user, err := m.Login(ctx, "jane@example.com", "password")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, user)
	assert.False(t, m.IsAuthenticated())
}

func TestSignupAlwaysSucceeds(t *testing.T) {
	m := NewManager(storage.NewMemoryStore(), testConfig(true), testLogger())

	user, err := m.Signup(context.Background(), "new.user@example.com", "password123", "")
	require.NoError(t, err)

	assert.Equal(t, "New User", user.Name)
	assert.NotEmpty(t, user.Avatar)
	assert.Equal(t, RoleCustomer, user.Role)
	assert.True(t, m.IsAuthenticated())
}

func TestLogoutClearsSessionAndStore(t *testing.T) {
	store := storage.NewMemoryStore()
	m := NewManager(store, testConfig(true), testLogger())

	_, err := m.Login(context.Background(), "jane@example.com", "password")
	require.NoError(t, err)

	m.Logout()
	assert.Nil(t, m.CurrentUser())
	assert.False(t, m.IsAuthenticated())

	_, err = store.Read(context.Background(), storage.KeyUser)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestSessionPersistsAcrossManagers(t *testing.T) {
	store := storage.NewMemoryStore()

	m1 := NewManager(store, testConfig(true), testLogger())
	logged, err := m1.Login(context.Background(), "jane@example.com", "password")
	require.NoError(t, err)

	m2 := NewManager(store, testConfig(true), testLogger())
	restored := m2.CurrentUser()
	require.NotNil(t, restored)
	assert.Equal(t, logged.ID, restored.ID)
	assert.Equal(t, logged.Email, restored.Email)
}

func TestCorruptPersistedUserFallsBackToAnonymous(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.Write(context.Background(), storage.KeyUser, []byte("{broken")))

	m := NewManager(store, testConfig(true), testLogger())
	assert.Nil(t, m.CurrentUser())
	assert.False(t, m.IsAuthenticated())
}

func TestPersistedUserWithoutIDIsDiscarded(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.Write(context.Background(), storage.KeyUser, []byte(`{"email":"x@example.com"}`)))

	m := NewManager(store, testConfig(true), testLogger())
	assert.Nil(t, m.CurrentUser())
}
