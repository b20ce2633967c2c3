package queries

import (
	"context"

	"github.com/R4UZ3R/olaclick-backend-challenge/internal/core/domain/model/order"
)

// GetOrderQueryHandler retrieves a single order with items and logs
// populated. This lookup is deliberately uncached: only the active-orders
// projection goes through the cache.
type GetOrderQueryHandler struct {
	reader OrderReader
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(reader OrderReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{reader: reader}
}

// Handle returns the order or errs.ObjectNotFoundError when absent.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.reader.Get(ctx, query.OrderID())
}
