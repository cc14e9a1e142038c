package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFile_GetMissingKey(t *testing.T) {
	store, err := NewFile(t.TempDir())
	require.NoError(t, err)

	_, ok, err := store.Get("orderCreationData:abc")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestFile_SetThenGet(t *testing.T) {
	store, err := NewFile(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("orderCreationData:abc", []byte(`{"customerId":"cus_1"}`)))

	value, ok, err := store.Get("orderCreationData:abc")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`{"customerId":"cus_1"}`), value)
}

func TestFile_SetReplacesWholeValue(t *testing.T) {
	store, err := NewFile(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("k", []byte("first value, quite long")))
	require.NoError(t, store.Set("k", []byte("second")))

	value, ok, err := store.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("second"), value)
}

func TestFile_Delete(t *testing.T) {
	store, err := NewFile(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("k", []byte("v")))
	require.NoError(t, store.Delete("k"))

	_, ok, err := store.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting again is a no-op, not an error.
	assert.NoError(t, store.Delete("k"))
}

func TestFile_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	store, err := NewFile(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("customers", []byte(`[{"id":"cus_1"}]`)))

	reopened, err := NewFile(dir)
	require.NoError(t, err)

	value, ok, err := reopened.Get("customers")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`[{"id":"cus_1"}]`), value)
}

func TestMemory_RoundTrip(t *testing.T) {
	store := NewMemory()

	_, ok, err := store.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set("k", []byte("v")))
	value, ok, err := store.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), value)

	require.NoError(t, store.Delete("k"))
	_, ok, err = store.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)
}
