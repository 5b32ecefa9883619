// internal/domain/theme/manager_test.go
package theme

import (
	"context"
	"io"
	"testing"

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

func TestDefaultThemeIsSystem(t *testing.T) {
	m := NewManager(storage.NewMemoryStore(), testLogger())
	assert.Equal(t, System, m.Current())
}

func TestSetValidTheme(t *testing.T) {
	m := NewManager(storage.NewMemoryStore(), testLogger())

	require.NoError(t, m.Set(Dark))
	assert.Equal(t, Dark, m.Current())

	require.NoError(t, m.Set(Light))
	assert.Equal(t, Light, m.Current())
}

func TestSetUnknownThemeIsRejected(t *testing.T) {
	m := NewManager(storage.NewMemoryStore(), testLogger())

	err := m.Set("solarized")
	assert.Error(t, err)
	assert.Equal(t, System, m.Current())
}

func TestThemePersistsAcrossManagers(t *testing.T) {
	store := storage.NewMemoryStore()

	m1 := NewManager(store, testLogger())
	require.NoError(t, m1.Set(Dark))

	m2 := NewManager(store, testLogger())
	assert.Equal(t, Dark, m2.Current())
}

func TestCorruptPersistedThemeFallsBackToSystem(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.Write(context.Background(), storage.KeyTheme, []byte(`"neon"`)))

	m := NewManager(store, testLogger())
	assert.Equal(t, System, m.Current())
}
