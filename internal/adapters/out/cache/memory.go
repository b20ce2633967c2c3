// Package cache provides the active-orders cache adapters. The cache holds
// one snapshot of the active-orders listing under a single slot; mutations
// invalidate it and reads repopulate it with a fresh TTL.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/R4UZ3R/olaclick-backend-challenge/internal/core/domain/model/order"
)

// MemoryActiveOrdersCache is an in-process single-slot cache. It serves
// deployments without Redis and the test suites; entries expire lazily on
// read.
type MemoryActiveOrdersCache struct {
	mu        sync.Mutex
	orders    []*order.Order
	expiresAt time.Time
	present   bool
}

// NewMemoryActiveOrdersCache creates an empty in-process cache.
func NewMemoryActiveOrdersCache() *MemoryActiveOrdersCache {
	return &MemoryActiveOrdersCache{}
}

// Set stores the snapshot with the given TTL, replacing any previous entry.
func (c *MemoryActiveOrdersCache) Set(_ context.Context, orders []*order.Order, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.orders = orders
	c.expiresAt = time.Now().Add(ttl)
	c.present = true
	return nil
}

// Get returns the cached snapshot and whether it was present. An expired
// entry counts as a miss and is dropped.
func (c *MemoryActiveOrdersCache) Get(_ context.Context) ([]*order.Order, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.present {
		return nil, false, nil
	}

	if time.Now().After(c.expiresAt) {
		c.orders = nil
		c.present = false
		return nil, false, nil
	}

	return c.orders, true, nil
}

// Invalidate drops the cached snapshot.
func (c *MemoryActiveOrdersCache) Invalidate(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.orders = nil
	c.present = false
	return nil
}
