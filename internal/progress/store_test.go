package progress

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreMissingKey(t *testing.T) {
	store := NewMemoryStore()
	_, ok, err := store.Read("absent")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Delete("absent"))
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Write("k", []byte("payload")))

	b, ok, err := store.Read("k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "payload", string(b))

	require.NoError(t, store.Delete("k"))
	_, ok, err = store.Read("k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, ok, err := store.Read("p1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Write("p1", []byte(`{"tokens":1}`)))
	b, ok, err := store.Read("p1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"tokens":1}`, string(b))

	require.NoError(t, store.Delete("p1"))
	_, ok, err = store.Read("p1")
	require.NoError(t, err)
	assert.False(t, ok)
	require.NoError(t, store.Delete("p1"))
}

func TestFileStoreSanitizesKeys(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Write("../../etc/passwd", []byte("x")))

	// The write must land inside the data dir under a scrubbed name.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, filepath.Base(entries[0].Name()), entries[0].Name())

	b, ok, err := store.Read("../../etc/passwd")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "x", string(b))
}

func TestFileStoreBlankKeyUsesDefault(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Write("", []byte("d")))
	_, err = os.Stat(filepath.Join(dir, "default.json"))
	require.NoError(t, err)
}
