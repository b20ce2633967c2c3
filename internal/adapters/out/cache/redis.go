package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/R4UZ3R/olaclick-backend-challenge/internal/core/domain/model/kernel"
	"github.com/R4UZ3R/olaclick-backend-challenge/internal/core/domain/model/order"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// activeOrdersKey is the single cache slot for the active-orders listing.
const activeOrdersKey = "active_orders"

// cachedOrder is the JSON shape of one order in the Redis slot. Logs are not
// cached; the listing never shows them.
type cachedOrder struct {
	ID         string            `json:"id"`
	ClientName string            `json:"client_name"`
	Status     string            `json:"status"`
	Total      decimal.Decimal   `json:"total"`
	CreatedAt  time.Time         `json:"created_at"`
	Items      []cachedOrderItem `json:"items"`
}

type cachedOrderItem struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// RedisActiveOrdersCache stores the active-orders snapshot in Redis so the
// cache survives restarts and is shared between instances. TTL enforcement
// is delegated to Redis key expiry.
type RedisActiveOrdersCache struct {
	client *redis.Client
}

// NewRedisActiveOrdersCache creates a cache backed by the Redis server at addr.
func NewRedisActiveOrdersCache(addr string) *RedisActiveOrdersCache {
	return &RedisActiveOrdersCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

// Set serializes the snapshot and stores it with the given TTL.
func (c *RedisActiveOrdersCache) Set(ctx context.Context, orders []*order.Order, ttl time.Duration) error {
	cached := make([]cachedOrder, 0, len(orders))
	for _, o := range orders {
		cached = append(cached, toCached(o))
	}

	payload, err := json.Marshal(cached)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, activeOrdersKey, payload, ttl).Err()
}

// Get returns the cached snapshot and whether the slot was present. A
// missing or expired key is a miss, not an error.
func (c *RedisActiveOrdersCache) Get(ctx context.Context) ([]*order.Order, bool, error) {
	payload, err := c.client.Get(ctx, activeOrdersKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var cached []cachedOrder
	if err = json.Unmarshal(payload, &cached); err != nil {
		return nil, false, err
	}

	orders := make([]*order.Order, 0, len(cached))
	for _, entry := range cached {
		o, restoreErr := fromCached(entry)
		if restoreErr != nil {
			return nil, false, restoreErr
		}
		orders = append(orders, o)
	}

	return orders, true, nil
}

// Invalidate deletes the cache slot.
func (c *RedisActiveOrdersCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, activeOrdersKey).Err()
}

// Close releases the underlying Redis connection.
func (c *RedisActiveOrdersCache) Close() error {
	return c.client.Close()
}

func toCached(o *order.Order) cachedOrder {
	items := make([]cachedOrderItem, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, cachedOrderItem{
			ID:          item.ID().String(),
			Description: item.Description(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice(),
			Subtotal:    item.Subtotal(),
		})
	}

	return cachedOrder{
		ID:         o.ID().String(),
		ClientName: o.ClientName(),
		Status:     o.Status().String(),
		Total:      o.Total(),
		CreatedAt:  o.CreatedAt(),
		Items:      items,
	}
}

func fromCached(entry cachedOrder) (*order.Order, error) {
	id, err := kernel.UUIDFromString(entry.ID)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(entry.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(entry.Items))
	for _, itemEntry := range entry.Items {
		itemID, itemErr := kernel.UUIDFromString(itemEntry.ID)
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.RestoreItem(itemID, itemEntry.Description,
			itemEntry.Quantity, itemEntry.UnitPrice, itemEntry.Subtotal)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, entry.ClientName, status, entry.Total, entry.CreatedAt, items, nil)
}
