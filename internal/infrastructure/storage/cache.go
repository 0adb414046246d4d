package storage

import (
	"context"
	"sync"
	"time"

	"github.com/eruerumiru/makeshop-recotest/internal/domain/constants"
	"github.com/eruerumiru/makeshop-recotest/internal/domain/entity"
	"github.com/eruerumiru/makeshop-recotest/internal/domain/repository"
)

// CachedCatalogRepository wraps another repository with a single-entry TTL
// cache so a burst of recommendation requests does not hammer the backing
// store. An expired entry is re-fetched lazily; a fetch error falls back to
// the stale copy when one exists.
type CachedCatalogRepository struct {
	inner repository.CatalogRepository

	mu        sync.RWMutex
	rows      []entity.CatalogRow
	fetchedAt time.Time
	ttl       time.Duration

	// Statistics
	hits   int64
	misses int64
}

func NewCachedCatalogRepository(inner repository.CatalogRepository, ttl time.Duration) *CachedCatalogRepository {
	if ttl <= 0 {
		ttl = constants.CatalogCacheTTL
	}
	return &CachedCatalogRepository{inner: inner, ttl: ttl}
}

func (c *CachedCatalogRepository) ListProducts(ctx context.Context) ([]entity.CatalogRow, error) {
	c.mu.RLock()
	fresh := c.rows != nil && time.Since(c.fetchedAt) <= c.ttl
	cached := c.rows
	c.mu.RUnlock()

	if fresh {
		c.mu.Lock()
		c.hits++
		c.mu.Unlock()
		return cached, nil
	}

	rows, err := c.inner.ListProducts(ctx)
	if err != nil {
		// Stale data beats no data.
		if cached != nil {
			return cached, nil
		}
		return nil, err
	}

	c.mu.Lock()
	c.rows = rows
	c.fetchedAt = time.Now()
	c.misses++
	c.mu.Unlock()
	return rows, nil
}

// Invalidate drops the cached catalog, forcing a re-fetch on the next call.
func (c *CachedCatalogRepository) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rows = nil
	c.fetchedAt = time.Time{}
}

// Stats returns hit/miss counters for diagnostics.
func (c *CachedCatalogRepository) Stats() (hits, misses int64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
