// internal/infrastructure/storage/store_test.go
package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront/internal/config"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.Read(ctx, KeyCart)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Write(ctx, KeyCart, []byte(`[1,2,3]`)))

	got, err := s.Read(ctx, KeyCart)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[1,2,3]`), got)

	require.NoError(t, s.Remove(ctx, KeyCart))
	_, err = s.Read(ctx, KeyCart)
	assert.ErrorIs(t, err, ErrNotFound)

	// Removing an absent key is a no-op.
	assert.NoError(t, s.Remove(ctx, "never-written"))
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	value := []byte(`"original"`)
	require.NoError(t, s.Write(ctx, KeyTheme, value))
	value[1] = 'X'

	got, err := s.Read(ctx, KeyTheme)
	require.NoError(t, err)
	assert.Equal(t, []byte(`"original"`), got)
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "session.json")
	ctx := context.Background()

	s, err := NewFileStore(path)
	require.NoError(t, err)

	require.NoError(t, s.Write(ctx, KeyUser, []byte(`{"id":"u1"}`)))
	require.NoError(t, s.Write(ctx, KeyTheme, []byte(`"dark"`)))
	require.NoError(t, s.Close())

	// Reopen and read back.
	s2, err := NewFileStore(path)
	require.NoError(t, err)

	got, err := s2.Read(ctx, KeyUser)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"u1"}`, string(got))

	got, err = s2.Read(ctx, KeyTheme)
	require.NoError(t, err)
	assert.Equal(t, `"dark"`, string(got))
}

func TestFileStoreRemovePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	ctx := context.Background()

	s, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Write(ctx, KeyWishlist, []byte(`["p1"]`)))
	require.NoError(t, s.Remove(ctx, KeyWishlist))

	s2, err := NewFileStore(path)
	require.NoError(t, err)
	_, err = s2.Read(ctx, KeyWishlist)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStoreCorruptDocumentStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{{{{"), 0o644))

	s, err := NewFileStore(path)
	require.NoError(t, err)

	_, err = s.Read(context.Background(), KeyUser)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOpenSelectsDriver(t *testing.T) {
	memCfg := &config.Config{Storage: config.StorageConfig{Driver: "memory"}}
	s, err := Open(memCfg)
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)

	fileCfg := &config.Config{Storage: config.StorageConfig{
		Driver:   "file",
		FilePath: filepath.Join(t.TempDir(), "session.json"),
	}}
	s, err = Open(fileCfg)
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, s)

	_, err = Open(&config.Config{Storage: config.StorageConfig{Driver: "bogus"}})
	assert.Error(t, err)
}
