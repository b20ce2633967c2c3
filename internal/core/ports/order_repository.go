// Package ports defines the contracts between the application core and
// infrastructure: the order repository, the transactional unit of work, and
// the active-orders cache.
package ports

import (
	"context"

	"github.com/R4UZ3R/olaclick-backend-challenge/internal/core/domain/model/kernel"
	"github.com/R4UZ3R/olaclick-backend-challenge/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Mutating methods must run inside a unit of work so that writes to the
// orders, order_items, and order_logs tables commit or roll back together.
type OrderRepository interface {
	// Add persists a new order aggregate: the order row, its item rows, and
	// the log rows recorded so far, in one operation.
	Add(ctx context.Context, aggregate *order.Order) error

	// UpdateStatus persists the aggregate's current status, guarded by the
	// status the caller read. If the stored status no longer matches
	// previous, nothing is updated and an errs.VersionIsInvalidError is
	// returned; this closes the concurrent double-advance race.
	UpdateStatus(ctx context.Context, aggregate *order.Order, previous order.Status) error

	// AppendLog persists a single status transition record for the order.
	AppendLog(ctx context.Context, orderID kernel.UUID, log order.StatusLog) error

	// Delete removes the order; its items and logs are removed by cascade.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves an order with its items (insertion order) and logs
	// (chronological). Returns errs.ObjectNotFoundError when absent.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllActive retrieves all orders whose status is not delivered,
	// newest first, with items populated. Delivered orders are deleted on
	// transition, so the status filter is defensive.
	GetAllActive(ctx context.Context) ([]*order.Order, error)
}
