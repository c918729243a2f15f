package state

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lokapasar/internal/domain/entity"
)

func product(id, storeID string, price float64, discount *float64) entity.Product {
	return entity.Product{
		ID:            id,
		StoreID:       storeID,
		Name:          "Product " + id,
		Price:         price,
		DiscountPrice: discount,
		IsActive:      true,
	}
}

func newTestCart(t *testing.T) *CartStore {
	t.Helper()
	return NewCartStore(context.Background(), NewMemoryPersister(), "test:cart")
}

func TestAddToCartMergesSameProductAndVariant(t *testing.T) {
	ctx := context.Background()
	cart := newTestCart(t)
	p1 := product("p1", "s1", 10000, nil)

	require.NoError(t, cart.AddItem(ctx, p1, 2, nil))
	require.NoError(t, cart.AddItem(ctx, p1, 3, nil))

	items := cart.Snapshot()
	require.Len(t, items["s1"], 1)
	assert.Equal(t, 5, items["s1"][0].Quantity)
	assert.Equal(t, 50000.0, cart.StoreTotal("s1"))
}

func TestAddToCartVariantsCoexist(t *testing.T) {
	ctx := context.Background()
	cart := newTestCart(t)
	p1 := product("p1", "s1", 10000, nil)

	require.NoError(t, cart.AddItem(ctx, p1, 1, entity.SelectedVariant{"size": "M"}))
	require.NoError(t, cart.AddItem(ctx, p1, 1, entity.SelectedVariant{"size": "L"}))

	items := cart.Snapshot()
	assert.Len(t, items["s1"], 2)
}

func TestAddToCartMergesEquivalentVariantOrder(t *testing.T) {
	ctx := context.Background()
	cart := newTestCart(t)
	p1 := product("p1", "s1", 10000, nil)

	require.NoError(t, cart.AddItem(ctx, p1, 1, entity.SelectedVariant{"color": "red", "size": "M"}))
	require.NoError(t, cart.AddItem(ctx, p1, 1, entity.SelectedVariant{"size": "M", "color": "red"}))

	items := cart.Snapshot()
	require.Len(t, items["s1"], 1)
	assert.Equal(t, 2, items["s1"][0].Quantity)
}

func TestAddToCartRejectsNonPositiveQuantity(t *testing.T) {
	ctx := context.Background()
	cart := newTestCart(t)
	p1 := product("p1", "s1", 10000, nil)

	assert.Error(t, cart.AddItem(ctx, p1, 0, nil))
	assert.Error(t, cart.AddItem(ctx, p1, -2, nil))
	assert.Equal(t, 0, cart.TotalItems())
}

func TestRemoveLastItemDropsStoreKey(t *testing.T) {
	ctx := context.Background()
	cart := newTestCart(t)
	p1 := product("p1", "s1", 10000, nil)

	require.NoError(t, cart.AddItem(ctx, p1, 2, nil))
	cart.RemoveItem(ctx, "s1", "p1", nil)

	assert.Equal(t, 0, cart.ItemCount("s1"))
	_, present := cart.Snapshot()["s1"]
	assert.False(t, present, "empty bucket must not persist")
}

func TestRemoveUnknownItemIsNoOp(t *testing.T) {
	ctx := context.Background()
	cart := newTestCart(t)
	p1 := product("p1", "s1", 10000, nil)

	require.NoError(t, cart.AddItem(ctx, p1, 1, nil))
	cart.RemoveItem(ctx, "s1", "missing", nil)
	cart.RemoveItem(ctx, "unknown-store", "p1", nil)

	assert.Equal(t, 1, cart.TotalItems())
}

func TestUpdateQuantitySetsAbsoluteValue(t *testing.T) {
	ctx := context.Background()
	cart := newTestCart(t)
	p1 := product("p1", "s1", 10000, nil)

	require.NoError(t, cart.AddItem(ctx, p1, 2, nil))
	cart.UpdateQuantity(ctx, "s1", "p1", 7, nil)

	assert.Equal(t, 7, cart.ItemCount("s1"))
}

func TestUpdateQuantityZeroBehavesLikeRemove(t *testing.T) {
	ctx := context.Background()
	cart := newTestCart(t)
	p1 := product("p1", "s1", 10000, nil)

	require.NoError(t, cart.AddItem(ctx, p1, 2, nil))
	cart.UpdateQuantity(ctx, "s1", "p1", 0, nil)

	assert.Equal(t, 0, cart.ItemCount("s1"))
	_, present := cart.Snapshot()["s1"]
	assert.False(t, present)
}

func TestTotalPriceUsesEffectivePrice(t *testing.T) {
	ctx := context.Background()
	cart := newTestCart(t)
	discount := 15000.0
	p1 := product("p1", "s1", 10000, nil)
	p2 := product("p2", "s1", 20000, &discount)

	require.NoError(t, cart.AddItem(ctx, p1, 2, nil))
	require.NoError(t, cart.AddItem(ctx, p2, 1, nil))

	assert.Equal(t, 35000.0, cart.TotalPrice())
	assert.Equal(t, 3, cart.TotalItems())
}

func TestStoreAggregatesForUnknownStore(t *testing.T) {
	cart := newTestCart(t)

	assert.Equal(t, 0.0, cart.StoreTotal("nope"))
	assert.Equal(t, 0, cart.ItemCount("nope"))
}

func TestClearCartIsIdempotent(t *testing.T) {
	ctx := context.Background()
	cart := newTestCart(t)
	p1 := product("p1", "s1", 10000, nil)

	require.NoError(t, cart.AddItem(ctx, p1, 2, nil))
	cart.Clear(ctx)
	cart.Clear(ctx)

	assert.Empty(t, cart.Snapshot())
	assert.Equal(t, 0, cart.TotalItems())
}

func TestClearStoreCartLeavesOtherStores(t *testing.T) {
	ctx := context.Background()
	cart := newTestCart(t)
	p1 := product("p1", "s1", 10000, nil)
	p2 := product("p2", "s2", 5000, nil)

	require.NoError(t, cart.AddItem(ctx, p1, 1, nil))
	require.NoError(t, cart.AddItem(ctx, p2, 1, nil))
	cart.ClearStore(ctx, "s1")

	assert.Equal(t, 0, cart.ItemCount("s1"))
	assert.Equal(t, 1, cart.ItemCount("s2"))
}

func TestCartSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	persister := NewMemoryPersister()
	cart := NewCartStore(ctx, persister, "test:cart")
	p1 := product("p1", "s1", 10000, nil)

	require.NoError(t, cart.AddItem(ctx, p1, 4, entity.SelectedVariant{"size": "M"}))

	restored := NewCartStore(ctx, persister, "test:cart")
	assert.Equal(t, 4, restored.ItemCount("s1"))
	assert.Equal(t, 40000.0, restored.TotalPrice())

	items := restored.Snapshot()
	require.Len(t, items["s1"], 1)
	assert.Equal(t, "size:M", items["s1"][0].Variant.Encode())
}

func TestCartSnapshotIsDetached(t *testing.T) {
	ctx := context.Background()
	cart := newTestCart(t)
	p1 := product("p1", "s1", 10000, nil)

	require.NoError(t, cart.AddItem(ctx, p1, 1, nil))

	snapshot := cart.Snapshot()
	snapshot["s1"][0].Quantity = 99

	assert.Equal(t, 1, cart.ItemCount("s1"))
}
