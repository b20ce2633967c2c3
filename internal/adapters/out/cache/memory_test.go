package cache_test

import (
	"testing"
	"time"

	"github.com/R4UZ3R/olaclick-backend-challenge/internal/adapters/out/cache"
	"github.com/R4UZ3R/olaclick-backend-challenge/internal/core/domain/model/kernel"
	"github.com/R4UZ3R/olaclick-backend-challenge/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cachedOrders(t *testing.T) []*order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), "Lomo saltado", 1, decimal.NewFromInt(60))
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), "Carlos Gómez", []order.Item{item}, time.Now())
	require.NoError(t, err)
	return []*order.Order{o}
}

func TestMemoryActiveOrdersCache_MissWhenEmpty(t *testing.T) {
	c := cache.NewMemoryActiveOrdersCache()

	orders, hit, err := c.Get(t.Context())

	require.NoError(t, err)
	assert.False(t, hit)
	assert.Nil(t, orders)
}

func TestMemoryActiveOrdersCache_SetThenGet(t *testing.T) {
	ctx := t.Context()
	c := cache.NewMemoryActiveOrdersCache()
	snapshot := cachedOrders(t)

	require.NoError(t, c.Set(ctx, snapshot, time.Minute))

	orders, hit, err := c.Get(ctx)
	require.NoError(t, err)
	assert.True(t, hit)
	require.Len(t, orders, 1)
	assert.True(t, snapshot[0].ID().IsEqual(orders[0].ID()))
}

func TestMemoryActiveOrdersCache_EntryExpires(t *testing.T) {
	ctx := t.Context()
	c := cache.NewMemoryActiveOrdersCache()

	require.NoError(t, c.Set(ctx, cachedOrders(t), 10*time.Millisecond))
	time.Sleep(20 * time.Millisecond)

	orders, hit, err := c.Get(ctx)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Nil(t, orders)
}

func TestMemoryActiveOrdersCache_InvalidateDropsEntry(t *testing.T) {
	ctx := t.Context()
	c := cache.NewMemoryActiveOrdersCache()

	require.NoError(t, c.Set(ctx, cachedOrders(t), time.Minute))
	require.NoError(t, c.Invalidate(ctx))

	_, hit, err := c.Get(ctx)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestMemoryActiveOrdersCache_EmptySnapshotIsAHit(t *testing.T) {
	ctx := t.Context()
	c := cache.NewMemoryActiveOrdersCache()

	require.NoError(t, c.Set(ctx, []*order.Order{}, time.Minute))

	orders, hit, err := c.Get(ctx)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Empty(t, orders)
}
