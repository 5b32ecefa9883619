// internal/config/config_test.go
package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{Port: "8080"},
		Storage: StorageConfig{
			Driver:   "file",
			FilePath: "data/session.json",
		},
		JWT: JWTConfig{
			Secret:            "test-secret-key-that-is-long-enough!",
			AccessTokenExpiry: time.Hour,
		},
		Checkout: CheckoutConfig{
			FreeShippingThreshold: 5000,
			FlatShippingRate:      1000,
			TaxRateBasisPoints:    1000,
		},
	}
}

func TestValidateAcceptsValidConfig(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func TestValidateRejectsShortJWTSecret(t *testing.T) {
	cfg := validConfig()
	cfg.JWT.Secret = "too-short"
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsUnknownStorageDriver(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.Driver = "cassandra"
	assert.Error(t, cfg.Validate())
}

func TestValidateFileDriverRequiresPath(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.FilePath = ""
	assert.Error(t, cfg.Validate())
}

func TestValidateMemoryDriverNeedsNothing(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.Driver = "memory"
	cfg.Storage.FilePath = ""
	assert.NoError(t, cfg.Validate())
}

func TestValidateRejectsOutOfRangeTaxRate(t *testing.T) {
	cfg := validConfig()
	cfg.Checkout.TaxRateBasisPoints = 10001
	assert.Error(t, cfg.Validate())

	cfg.Checkout.TaxRateBasisPoints = -1
	assert.Error(t, cfg.Validate())
}

func TestValidateRequiresPort(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Port = ""
	assert.Error(t, cfg.Validate())
}

func TestEnvironmentHelpers(t *testing.T) {
	cfg := validConfig()

	cfg.App.Environment = "development"
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())

	cfg.App.Environment = "production"
	assert.True(t, cfg.IsProduction())
}

func TestGetRedisAddr(t *testing.T) {
	cfg := validConfig()
	cfg.Redis.Host = "localhost"
	cfg.Redis.Port = "6379"
	assert.Equal(t, "localhost:6379", cfg.GetRedisAddr())
}
