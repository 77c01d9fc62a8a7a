package rediscache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"wiseBuy/domain"
	"wiseBuy/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const productCatalogKey = "wisebuy:catalog:products"

type ProductSource interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
}

// ProductCache is a read-through catalog cache. It fails open: any Redis
// error falls back to the underlying repository.
type ProductCache struct {
	client *redis.Client
	source ProductSource
	ttl    time.Duration
}

func NewProductCache(client *redis.Client, source ProductSource, ttl time.Duration) *ProductCache {
	return &ProductCache{
		client: client,
		source: source,
		ttl:    ttl,
	}
}

func (c *ProductCache) FindAll(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if c.client != nil {
		raw, err := c.client.Get(ctx, productCatalogKey).Result()
		if err == nil {
			var products []domain.Product
			if err := json.Unmarshal([]byte(raw), &products); err == nil {
				return products, nil
			}
			logger.Warn("corrupt catalog cache entry, falling through", "key", productCatalogKey)
		}
	}

	products, err := c.source.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if c.client != nil && c.ttl > 0 {
		if raw, err := json.Marshal(products); err == nil {
			if err := c.client.Set(ctx, productCatalogKey, raw, c.ttl).Err(); err != nil {
				logger.Warn("failed to populate catalog cache", "error", err)
			}
		}
	}

	return products, nil
}

// Invalidate drops the cached catalog, e.g. after a product write.
func (c *ProductCache) Invalidate(ctx context.Context) error {
	if c.client == nil {
		return nil
	}
	if err := c.client.Del(ctx, productCatalogKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate catalog cache: %w", err)
	}
	return nil
}
