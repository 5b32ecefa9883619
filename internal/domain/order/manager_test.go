// internal/domain/order/manager_test.go
package order

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront/internal/infrastructure/storage"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testOrder(id, userID string) Order {
	return Order{
		ID:          id,
		OrderNumber: "ORD-" + id,
		UserID:      userID,
		Email:       userID + "@example.com",
		Status:      StatusProcessing,
		CreatedAt:   time.Now().UTC(),
	}
}

func TestListReturnsNewestFirstPerUser(t *testing.T) {
	m := NewManager(storage.NewMemoryStore(), testLogger())

	m.Record(testOrder("o1", "user-a"))
	m.Record(testOrder("o2", "user-b"))
	m.Record(testOrder("o3", "user-a"))

	list := m.List("user-a")
	require.Len(t, list, 2)
	assert.Equal(t, "o3", list[0].ID)
	assert.Equal(t, "o1", list[1].ID)
}

func TestGetScopesToUser(t *testing.T) {
	m := NewManager(storage.NewMemoryStore(), testLogger())
	m.Record(testOrder("o1", "user-a"))

	got, err := m.Get("user-a", "o1")
	require.NoError(t, err)
	assert.Equal(t, "o1", got.ID)

	// Another user's id never resolves someone else's order.
	_, err = m.Get("user-b", "o1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOrdersPersistAcrossManagers(t *testing.T) {
	store := storage.NewMemoryStore()

	m1 := NewManager(store, testLogger())
	m1.Record(testOrder("o1", "user-a"))

	m2 := NewManager(store, testLogger())
	list := m2.List("user-a")
	require.Len(t, list, 1)
	assert.Equal(t, "ORD-o1", list[0].OrderNumber)
}

func TestCorruptPersistedOrdersFallBackToEmpty(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.Write(context.Background(), storage.KeyOrders, []byte("[broken")))

	m := NewManager(store, testLogger())
	assert.Empty(t, m.List("user-a"))
}
