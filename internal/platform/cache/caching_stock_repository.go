// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"stockwatch/internal/feature/stocks/domain/entity"
	"stockwatch/internal/feature/stocks/usecase"
)

// scanCount is the COUNT hint passed to SCAN during invalidation.
const scanCount = 200

// CachingStockRepository decorates a StockRepository with Redis caching.
// Lookups by id, by symbol, the full list and the per-industry lists are cached.
// Company-name searches and existence checks always go to the inner repository.
type CachingStockRepository struct {
	inner     usecase.StockRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.StockRepository = (*CachingStockRepository)(nil)

// NewCachingStockRepository decorates a StockRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "stocks".
// A nil rdb disables caching.
func NewCachingStockRepository(rdb *redis.Client, ttl time.Duration, inner usecase.StockRepository, namespace string) *CachingStockRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "stocks"
	}
	return &CachingStockRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Create inserts the stock and drops the cached lists.
func (c *CachingStockRepository) Create(ctx context.Context, s *entity.Stock) error {
	if err := c.inner.Create(ctx, s); err != nil {
		return err
	}
	if c.rdb == nil {
		return nil
	}
	_ = c.deleteByPattern(ctx, c.listPrefix()+"*")
	return nil
}

// FindByID returns the stock, checking the cache first.
func (c *CachingStockRepository) FindByID(ctx context.Context, id uint) (*entity.Stock, error) {
	return cached(ctx, c, c.idKey(id), func() (*entity.Stock, error) {
		return c.inner.FindByID(ctx, id)
	})
}

// FindBySymbol returns the stock, checking the cache first.
func (c *CachingStockRepository) FindBySymbol(ctx context.Context, symbol string) (*entity.Stock, error) {
	return cached(ctx, c, c.symbolKey(symbol), func() (*entity.Stock, error) {
		return c.inner.FindBySymbol(ctx, symbol)
	})
}

// List returns every stock, checking the cache first.
func (c *CachingStockRepository) List(ctx context.Context) ([]entity.Stock, error) {
	return cached(ctx, c, c.listPrefix()+"all", func() ([]entity.Stock, error) {
		return c.inner.List(ctx)
	})
}

// ListByIndustry returns the stocks of one industry, checking the cache first.
func (c *CachingStockRepository) ListByIndustry(ctx context.Context, industry string) ([]entity.Stock, error) {
	return cached(ctx, c, c.listPrefix()+"industry:"+industry, func() ([]entity.Stock, error) {
		return c.inner.ListByIndustry(ctx, industry)
	})
}

// SearchByCompanyName is never cached.
func (c *CachingStockRepository) SearchByCompanyName(ctx context.Context, fragment string) ([]entity.Stock, error) {
	return c.inner.SearchByCompanyName(ctx, fragment)
}

// ExistsByID is never cached. A FindByID racing a Delete can refill the id key for up to ttl,
// and other features must not create records against a deleted stock in that window.
func (c *CachingStockRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	return c.inner.ExistsByID(ctx, id)
}

// Update writes through and invalidates the stock's entries and all lists.
func (c *CachingStockRepository) Update(ctx context.Context, s *entity.Stock) error {
	if err := c.inner.Update(ctx, s); err != nil {
		return err
	}
	if c.rdb == nil {
		return nil
	}
	_ = c.rdb.Del(ctx, c.idKey(s.ID), c.symbolKey(s.Symbol)).Err()
	_ = c.deleteByPattern(ctx, c.listPrefix()+"*")
	return nil
}

// Delete removes the stock and clears the namespace, since the symbol key is unknown here.
func (c *CachingStockRepository) Delete(ctx context.Context, id uint) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	if c.rdb == nil {
		return nil
	}
	_ = c.deleteByPattern(ctx, c.namespace+":*")
	return nil
}

// cached implements read-through caching for a single key.
// Errors from load are returned as-is and never cached.
func cached[T any](ctx context.Context, c *CachingStockRepository, key string, load func() (T, error)) (T, error) {
	if c.rdb == nil {
		return load()
	}

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out T
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := load()
	if err != nil {
		var zero T
		return zero, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return out, nil
}

func (c *CachingStockRepository) idKey(id uint) string {
	return fmt.Sprintf("%s:id:%d", c.namespace, id)
}

func (c *CachingStockRepository) symbolKey(symbol string) string {
	return c.namespace + ":symbol:" + symbol
}

func (c *CachingStockRepository) listPrefix() string {
	return c.namespace + ":list:"
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingStockRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, scanCount).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}
