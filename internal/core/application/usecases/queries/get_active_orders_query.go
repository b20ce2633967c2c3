// Package queries contains the read-side operations: the cached
// active-orders listing and the single-order lookup. Queries never mutate
// state and run outside any transaction.
package queries

import (
	"context"
	"errors"

	"github.com/R4UZ3R/olaclick-backend-challenge/internal/core/domain/model/kernel"
	"github.com/R4UZ3R/olaclick-backend-challenge/internal/core/domain/model/order"
	"github.com/R4UZ3R/olaclick-backend-challenge/internal/pkg/guard"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// OrderReader provides the read-only persistence operations the query
// handlers need. Satisfied by ports.OrderRepository.
type OrderReader interface {
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
	GetAllActive(ctx context.Context) ([]*order.Order, error)
}

// GetActiveOrdersQuery retrieves every order whose status is not delivered,
// newest first. This is a parameterless query; the projection it produces is
// the one slot held by the active-orders cache.
type GetActiveOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query for the active-orders listing.
func NewGetActiveOrdersQuery() GetActiveOrdersQuery {
	return GetActiveOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}
