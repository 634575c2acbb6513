// Package cache содержит кэш каталога товаров в Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mmeshcher/retail-store/internal/model"
)

const productKeyPrefix = "retailstore:product:"

// ProductCache хранит снимки товаров в Redis в виде JSON.
// Нулевой или nil-кэш ничего не хранит и всегда сообщает о промахе.
type ProductCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewProductCache создаёт кэш товаров поверх клиента Redis.
func NewProductCache(client *redis.Client, ttl time.Duration) *ProductCache {
	return &ProductCache{client: client, ttl: ttl}
}

func productKey(id string) string {
	return productKeyPrefix + id
}

// Get возвращает товар из кэша и признак попадания.
func (c *ProductCache) Get(ctx context.Context, id string) (*model.Product, bool, error) {
	if c == nil || c.client == nil || id == "" {
		return nil, false, nil
	}

	data, err := c.client.Get(ctx, productKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get cached product: %w", err)
	}

	var p model.Product
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, false, fmt.Errorf("decode cached product: %w", err)
	}
	return &p, true, nil
}

// Set сохраняет товар в кэш на настроенное время.
func (c *ProductCache) Set(ctx context.Context, p *model.Product) error {
	if c == nil || c.client == nil || p == nil || p.ID == "" {
		return nil
	}

	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode product: %w", err)
	}
	if err := c.client.Set(ctx, productKey(p.ID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("set cached product: %w", err)
	}
	return nil
}

// Invalidate удаляет товар из кэша.
func (c *ProductCache) Invalidate(ctx context.Context, id string) error {
	if c == nil || c.client == nil || id == "" {
		return nil
	}
	if err := c.client.Del(ctx, productKey(id)).Err(); err != nil {
		return fmt.Errorf("invalidate cached product: %w", err)
	}
	return nil
}

// Ping проверяет доступность Redis. Без клиента кэш считается готовым.
func (c *ProductCache) Ping(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Ping(ctx).Err()
}
