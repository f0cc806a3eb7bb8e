package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courtside/internal/store"
)

func newTestKV(t *testing.T) *store.BadgerKV {
	t.Helper()

	kv, err := store.OpenBadger(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { kv.Close() })

	return kv
}

func TestBadgerKV(t *testing.T) {
	kv := newTestKV(t)

	t.Run("absent key reports not found", func(t *testing.T) {
		_, found, err := kv.Get("missing")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, kv.Set(store.UserKey, []byte("jordan")))

		value, found, err := kv.Get(store.UserKey)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, []byte("jordan"), value)
	})

	t.Run("set overwrites the whole value", func(t *testing.T) {
		require.NoError(t, kv.Set(store.UserKey, []byte("pippen")))

		value, _, err := kv.Get(store.UserKey)
		require.NoError(t, err)
		assert.Equal(t, []byte("pippen"), value)
	})

	t.Run("delete removes the key", func(t *testing.T) {
		require.NoError(t, kv.Delete(store.UserKey))

		_, found, err := kv.Get(store.UserKey)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("deleting an absent key is a no-op", func(t *testing.T) {
		assert.NoError(t, kv.Delete("missing"))
	})
}
