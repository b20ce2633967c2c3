// Package commands contains the business operations that modify system
// state: order creation and status advancement. All commands follow a
// consistent pattern: validation, one transaction spanning every row write,
// and cache invalidation after commit.
package commands

import (
	"context"

	"github.com/R4UZ3R/olaclick-backend-challenge/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each mutating operation runs inside exactly one transaction
// spanning the orders, order_items, and order_logs tables.
type (
	// TxManager handles the database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides the order repository bound to the
	// current transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderUoW manages transactions for order mutations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates a fresh unit of work per command.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CacheInvalidator clears the active-orders projection after a
	// successful mutation. Satisfied by ports.ActiveOrdersCache.
	CacheInvalidator interface {
		Invalidate(ctx context.Context) error
	}
)
