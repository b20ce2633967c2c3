package commands

import (
	"context"
	"time"

	"github.com/R4UZ3R/olaclick-backend-challenge/internal/core/domain/model/order"
)

// AdvanceOrderResult is the tagged outcome of an advance operation. A
// missing order is an error (errs.ObjectNotFoundError), so the result only
// has to distinguish the remaining outcomes:
//
//   - Completed true: the terminal transition was logged and the order was
//     deleted; Order is nil. Callers must treat this as success.
//   - Completed false: Order holds the refreshed order, either advanced to
//     its new status or (defensively) returned unchanged when the current
//     status has no successor.
type AdvanceOrderResult struct {
	Order     *order.Order
	Completed bool
}

// AdvanceOrderCommandHandler handles status advancement: it reads the order,
// applies the transition table, appends the audit log entry, deletes the
// order on the terminal transition, and invalidates the active-orders cache.
// All row writes of one call share a single transaction.
type AdvanceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	cache      CacheInvalidator
}

// NewAdvanceOrderCommandHandler creates a handler for status advancement.
func NewAdvanceOrderCommandHandler(uowFactory OrderUoWFactory, cache CacheInvalidator) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

// Handle processes the advance command.
//
// The status update is guarded by the status read at the start of the
// transaction; a concurrent advance of the same order makes the guard miss
// and the whole unit of work rolls back with errs.VersionIsInvalidError
// instead of double-advancing or losing a log entry.
func (h *AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) (AdvanceOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return AdvanceOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AdvanceOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	aggregate, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return AdvanceOrderResult{}, err
	}

	previous := aggregate.Status()
	log, advanced, err := aggregate.Advance(time.Now())
	if err != nil {
		return AdvanceOrderResult{}, err
	}
	if !advanced {
		// No successor for the current status: no state change, no log.
		return AdvanceOrderResult{Order: aggregate}, nil
	}

	if err = repo.UpdateStatus(ctx, aggregate, previous); err != nil {
		return AdvanceOrderResult{}, err
	}

	if err = repo.AppendLog(ctx, aggregate.ID(), log); err != nil {
		return AdvanceOrderResult{}, err
	}

	if aggregate.Status().IsTerminal() {
		if err = repo.Delete(ctx, aggregate.ID()); err != nil {
			return AdvanceOrderResult{}, err
		}

		if err = uow.Commit(ctx); err != nil {
			return AdvanceOrderResult{}, err
		}

		_ = h.cache.Invalidate(ctx)
		return AdvanceOrderResult{Completed: true}, nil
	}

	refreshed, err := repo.Get(ctx, aggregate.ID())
	if err != nil {
		return AdvanceOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AdvanceOrderResult{}, err
	}

	_ = h.cache.Invalidate(ctx)
	return AdvanceOrderResult{Order: refreshed}, nil
}
