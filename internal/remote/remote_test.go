package remote

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_NotConfigured(t *testing.T) {
	t.Parallel()

	store, err := Open(context.Background(), FirestoreConfig{})
	assert.Nil(t, store)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestMemoryStore_SetDocument(t *testing.T) {
	t.Parallel()
	store := NewMemoryStore()

	err := store.SetDocument(context.Background(), "cities", "LA", map[string]interface{}{"value": "colorItem"})
	require.NoError(t, err)

	doc, ok := store.Document("cities", "LA")
	require.True(t, ok)
	assert.Equal(t, "colorItem", doc["value"])
	assert.Equal(t, 1, store.Writes())
}

func TestMemoryStore_Overwrites(t *testing.T) {
	t.Parallel()
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.SetDocument(ctx, "cities", "LA", map[string]interface{}{"a": 1}))
	require.NoError(t, store.SetDocument(ctx, "cities", "LA", map[string]interface{}{"b": 2}))

	doc, ok := store.Document("cities", "LA")
	require.True(t, ok)
	assert.NotContains(t, doc, "a")
	assert.Equal(t, 2, doc["b"])
	assert.Equal(t, 2, store.Writes())
}

func TestMemoryStore_FailWith(t *testing.T) {
	t.Parallel()
	store := NewMemoryStore()
	boom := errors.New("unavailable")
	store.FailWith(boom)

	err := store.SetDocument(context.Background(), "cities", "LA", map[string]interface{}{})
	assert.ErrorIs(t, err, boom)

	_, ok := store.Document("cities", "LA")
	assert.False(t, ok)
	assert.Equal(t, 1, store.Writes())
}

func TestMemoryStore_CancelledContext(t *testing.T) {
	t.Parallel()
	store := NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := store.SetDocument(ctx, "cities", "LA", map[string]interface{}{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, store.Writes())
}
