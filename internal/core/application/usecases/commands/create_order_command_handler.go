package commands

import (
	"context"
	"time"

	"github.com/R4UZ3R/olaclick-backend-challenge/internal/core/domain/model/kernel"
	"github.com/R4UZ3R/olaclick-backend-challenge/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation:
// building the aggregate, computing the total, persisting the order with its
// items and the creation log entry in one transaction, and invalidating the
// active-orders cache.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	cache      CacheInvalidator
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, cache CacheInvalidator) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

// Handle processes the order creation command. The order row, its item rows,
// and the initial log row commit or roll back together; no partial order is
// ever visible. Returns the created order with items populated.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(cmd.Items()))
	for _, input := range cmd.Items() {
		item, err := order.NewItem(kernel.NewUUID(), input.Description, input.Quantity, input.UnitPrice)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.ClientName(), items, time.Now())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	// Invalidation is best-effort: if it fails the cache self-repairs at
	// TTL expiry, which the read path tolerates.
	_ = h.cache.Invalidate(ctx)

	return newOrder, nil
}
