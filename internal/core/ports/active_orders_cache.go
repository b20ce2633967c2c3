package ports

import (
	"context"
	"time"

	"github.com/R4UZ3R/olaclick-backend-challenge/internal/core/domain/model/order"
)

// ActiveOrdersTTL bounds the staleness of the cached active-orders
// projection. Mutations invalidate the slot rather than refreshing it, so a
// crash between commit and invalidate is repaired by expiry at the latest.
const ActiveOrdersTTL = 30 * time.Second

// ActiveOrdersCache is a single-slot, time-expiring cache of the
// active-orders projection. There is exactly one slot (one constant key);
// invalidation always clears the whole slot.
type ActiveOrdersCache interface {
	// Set stores the projection, expiring ttl after the write.
	Set(ctx context.Context, orders []*order.Order, ttl time.Duration) error

	// Get returns the cached projection. The bool is false when the slot is
	// empty or expired.
	Get(ctx context.Context) ([]*order.Order, bool, error)

	// Invalidate clears the slot.
	Invalidate(ctx context.Context) error
}
