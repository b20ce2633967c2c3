package cmd

import (
	"github.com/R4UZ3R/olaclick-backend-challenge/internal/adapters/out/cache"
	"github.com/R4UZ3R/olaclick-backend-challenge/internal/adapters/out/postgres"
	"github.com/R4UZ3R/olaclick-backend-challenge/internal/adapters/out/postgres/orderrepo"
	"github.com/R4UZ3R/olaclick-backend-challenge/internal/core/application/usecases/commands"
	"github.com/R4UZ3R/olaclick-backend-challenge/internal/core/application/usecases/queries"
	"github.com/R4UZ3R/olaclick-backend-challenge/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	cache      ports.ActiveOrdersCache
}

// NewCompositionRoot wires the adapters. Redis backs the active-orders cache
// when RedisAddr is configured; otherwise the in-process cache is used.
func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	var activeOrdersCache ports.ActiveOrdersCache
	if config.RedisAddr != "" {
		activeOrdersCache = cache.NewRedisActiveOrdersCache(config.RedisAddr)
	} else {
		activeOrdersCache = cache.NewMemoryActiveOrdersCache()
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		cache:      activeOrdersCache,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.cache)
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceOrderCommandHandler(f, c.cache)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(orderrepo.NewGormOrderRepository(c.gormDB), c.cache)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(orderrepo.NewGormOrderRepository(c.gormDB))
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
