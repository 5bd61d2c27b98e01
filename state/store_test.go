package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestNew_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "jiggler")
	store, err := New(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, store.Dir())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestReadPID_FreshDirectory(t *testing.T) {
	store := newTestStore(t)
	_, ok := store.ReadPID()
	assert.False(t, ok)
}

func TestWriteAndReadPID(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.WritePID(12345))

	pid, ok := store.ReadPID()
	assert.True(t, ok)
	assert.Equal(t, 12345, pid)

	// Overwrite replaces the prior value.
	require.NoError(t, store.WritePID(54321))
	pid, _ = store.ReadPID()
	assert.Equal(t, 54321, pid)
}

func TestReadPID_GarbageRecord(t *testing.T) {
	store := newTestStore(t)

	for _, contents := range []string{"", "not-a-pid", "-4", "0", "12.5"} {
		require.NoError(t, os.WriteFile(filepath.Join(store.Dir(), "jiggler.pid"), []byte(contents), 0o644))
		_, ok := store.ReadPID()
		assert.False(t, ok, "contents %q", contents)
	}
}

func TestClearPID_Idempotent(t *testing.T) {
	store := newTestStore(t)

	// Clearing an absent record succeeds silently.
	require.NoError(t, store.ClearPID())

	require.NoError(t, store.WritePID(100))
	require.NoError(t, store.ClearPID())
	_, ok := store.ReadPID()
	assert.False(t, ok)

	require.NoError(t, store.ClearPID())
}

func TestStopMarker(t *testing.T) {
	store := newTestStore(t)
	assert.False(t, store.HasStop())

	require.NoError(t, store.SetStop())
	assert.True(t, store.HasStop())

	// SetStop is idempotent.
	require.NoError(t, store.SetStop())
	assert.True(t, store.HasStop())

	require.NoError(t, store.ClearStop())
	assert.False(t, store.HasStop())

	// ClearStop on an absent marker succeeds silently.
	require.NoError(t, store.ClearStop())
}

func TestPIDAndStopAreIndependent(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.WritePID(42))
	require.NoError(t, store.SetStop())

	require.NoError(t, store.ClearPID())
	assert.True(t, store.HasStop(), "clearing the pid must not touch the stop marker")
}
