package queries

import (
	"context"

	"github.com/R4UZ3R/olaclick-backend-challenge/internal/core/domain/model/order"
	"github.com/R4UZ3R/olaclick-backend-challenge/internal/core/ports"
)

// GetActiveOrdersQueryHandler serves the active-orders projection, reading
// through the single-slot cache. On a miss it queries the store, fills the
// cache with the 30-second TTL, and returns the fresh result.
type GetActiveOrdersQueryHandler struct {
	reader OrderReader
	cache  ports.ActiveOrdersCache
}

// NewGetActiveOrdersQueryHandler creates a handler for the active-orders
// listing.
func NewGetActiveOrdersQueryHandler(reader OrderReader, cache ports.ActiveOrdersCache) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{
		reader: reader,
		cache:  cache,
	}
}

// Handle returns all non-delivered orders with items populated, ordered by
// creation time descending. Cache failures degrade to a store read; they
// never fail the query.
func (h GetActiveOrdersQueryHandler) Handle(ctx context.Context, query GetActiveOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if cached, ok, err := h.cache.Get(ctx); err == nil && ok {
		return cached, nil
	}

	orders, err := h.reader.GetAllActive(ctx)
	if err != nil {
		return nil, err
	}

	// Best-effort: an unreachable cache must not break reads.
	_ = h.cache.Set(ctx, orders, ports.ActiveOrdersTTL)

	return orders, nil
}
