// internal/pkg/auth/jwt_test.go
package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront/internal/config"
)

func jwtConfig(expiry time.Duration) *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "storefront-test"},
		JWT: config.JWTConfig{
			Secret:            "test-secret-key-that-is-long-enough!",
			AccessTokenExpiry: expiry,
		},
	}
}

func TestGenerateAndValidateAccessToken(t *testing.T) {
	m := NewJWTManager(jwtConfig(time.Hour))

	token, err := m.GenerateAccessToken("user-001", "jane@example.com", "customer")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-001", claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, "customer", claims.Role)
	assert.Equal(t, "user:user-001", claims.Subject)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	m := NewJWTManager(jwtConfig(-time.Minute))

	token, err := m.GenerateAccessToken("user-001", "jane@example.com", "customer")
	require.NoError(t, err)

	_, err = m.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	m := NewJWTManager(jwtConfig(time.Hour))
	token, err := m.GenerateAccessToken("user-001", "jane@example.com", "customer")
	require.NoError(t, err)

	other := NewJWTManager(&config.Config{
		JWT: config.JWTConfig{
			Secret:            "a-completely-different-secret-value!",
			AccessTokenExpiry: time.Hour,
		},
	})
	_, err = other.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsGarbage(t *testing.T) {
	m := NewJWTManager(jwtConfig(time.Hour))

	_, err := m.ValidateAccessToken("not.a.token")
	assert.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	assert.Equal(t, "abc123", ExtractTokenFromHeader("Bearer abc123"))
	assert.Empty(t, ExtractTokenFromHeader("abc123"))
	assert.Empty(t, ExtractTokenFromHeader("Basic abc123"))
	assert.Empty(t, ExtractTokenFromHeader(""))
}

func TestPasswordHashAndVerify(t *testing.T) {
	p := NewPasswordManager(&config.Config{
		Security: config.SecurityConfig{BcryptCost: 4},
	})

	hash, err := p.HashPassword("Demo1234!")
	require.NoError(t, err)
	assert.NotEqual(t, "Demo1234!", hash)

	assert.NoError(t, p.VerifyPassword("Demo1234!", hash))
	assert.Error(t, p.VerifyPassword("wrong-password", hash))
}

func TestPasswordLengthValidation(t *testing.T) {
	p := NewPasswordManager(&config.Config{
		Security: config.SecurityConfig{BcryptCost: 4},
	})

	_, err := p.HashPassword("short")
	assert.Error(t, err)
}
