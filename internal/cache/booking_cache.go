package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	dom "github.com/surendhiran2000/theatre-management/internal/domain"
)

const (
	keyAll        = "booking:list"
	keyUserPrefix = "booking:user:"
)

// BookingCache caches booking list results in Redis.
type BookingCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewBookingCache returns a new BookingCache.
func NewBookingCache(rdb *redis.Client, ttl time.Duration) *BookingCache {
	return &BookingCache{rdb: rdb, ttl: ttl}
}

// GetAll returns the cached full list or nil if miss.
func (c *BookingCache) GetAll(ctx context.Context) ([]dom.Booking, error) {
	return c.get(ctx, keyAll)
}

// SetAll stores the full list in cache.
func (c *BookingCache) SetAll(ctx context.Context, list []dom.Booking) error {
	return c.set(ctx, keyAll, list)
}

// GetByUser returns the cached per-user list or nil if miss.
func (c *BookingCache) GetByUser(ctx context.Context, userID string) ([]dom.Booking, error) {
	return c.get(ctx, keyUserPrefix+userID)
}

// SetByUser stores a per-user list in cache.
func (c *BookingCache) SetByUser(ctx context.Context, userID string, list []dom.Booking) error {
	return c.set(ctx, keyUserPrefix+userID, list)
}

// InvalidateAll removes the full list and every per-user key (invalidation on write).
func (c *BookingCache) InvalidateAll(ctx context.Context) error {
	if err := c.rdb.Del(ctx, keyAll).Err(); err != nil {
		return err
	}
	iter := c.rdb.Scan(ctx, 0, keyUserPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func (c *BookingCache) get(ctx context.Context, key string) ([]dom.Booking, error) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var list []dom.Booking
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *BookingCache) set(ctx context.Context, key string, list []dom.Booking) error {
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, b, c.ttl).Err()
}
