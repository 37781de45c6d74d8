// internal/domain/cart/store_test.go
package cart

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Hour)

	c := NewCart()
	c.Items = append(c.Items, Item{ID: "safari-jeep", Name: "Safari Jeep", Price: 120, Quantity: 2})
	c.recalculate()

	require.NoError(t, store.Save(ctx, "session-1", c))

	loaded, err := store.Load(ctx, "session-1")
	require.NoError(t, err)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, "safari-jeep", loaded.Items[0].ID)
	assert.Equal(t, 240.0, loaded.Total)
}

func TestMemoryStoreMissingSessionYieldsEmptyCart(t *testing.T) {
	store := NewMemoryStore(time.Hour)

	c, err := store.Load(context.Background(), "never-seen")
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
	assert.NotNil(t, c.Items)
}

func TestMemoryStoreCorruptSnapshotYieldsEmptyCart(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	store.put("session-1", []byte("{not json"))

	c, err := store.Load(context.Background(), "session-1")
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
	assert.NotNil(t, c.Items)
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Millisecond)

	c := NewCart()
	c.Items = append(c.Items, Item{ID: "safari-jeep", Price: 120, Quantity: 1})
	require.NoError(t, store.Save(ctx, "session-1", c))

	time.Sleep(5 * time.Millisecond)

	loaded, err := store.Load(ctx, "session-1")
	require.NoError(t, err)
	assert.True(t, loaded.IsEmpty())
}

func TestMemoryStoreDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Hour)

	c := NewCart()
	c.Items = append(c.Items, Item{ID: "safari-jeep", Price: 120, Quantity: 1})
	require.NoError(t, store.Save(ctx, "session-1", c))
	require.NoError(t, store.Delete(ctx, "session-1"))

	loaded, err := store.Load(ctx, "session-1")
	require.NoError(t, err)
	assert.True(t, loaded.IsEmpty())
}
