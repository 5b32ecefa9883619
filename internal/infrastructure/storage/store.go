// internal/infrastructure/storage/store.go
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/your-org/storefront/internal/config"
)

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("storage: key not found")

// Well-known keys for persisted session state.
const (
	KeyUser     = "user"
	KeyCart     = "cart"
	KeyWishlist = "wishlist"
	KeyTheme    = "theme"
	KeyOrders   = "orders"
)

// Store is the durable key-value persistence mechanism behind the state
// managers. Values are opaque blobs; the store is single-writer with
// last-write-wins semantics.
type Store interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	Close() error
}

// Open creates a store for the configured driver.
func Open(cfg *config.Config) (Store, error) {
	switch cfg.Storage.Driver {
	case "file":
		return NewFileStore(cfg.Storage.FilePath)
	case "redis":
		return NewRedisStore(cfg)
	case "postgres":
		return NewGormStore(cfg)
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
