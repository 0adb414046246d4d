package storage

import (
	"context"
	"sync"

	"github.com/eruerumiru/makeshop-recotest/internal/domain/entity"
)

// MemoryCatalogRepository holds the catalog in memory. Used for tests and as
// the target of one-shot imports.
type MemoryCatalogRepository struct {
	mu   sync.RWMutex
	rows []entity.CatalogRow
}

func NewMemoryCatalogRepository(rows []entity.CatalogRow) *MemoryCatalogRepository {
	return &MemoryCatalogRepository{rows: rows}
}

// ListProducts returns a copy so callers cannot mutate the shared slice.
func (r *MemoryCatalogRepository) ListProducts(_ context.Context) ([]entity.CatalogRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.CatalogRow, len(r.rows))
	copy(out, r.rows)
	return out, nil
}

// Replace swaps the whole catalog atomically.
func (r *MemoryCatalogRepository) Replace(rows []entity.CatalogRow) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = make([]entity.CatalogRow, len(rows))
	copy(r.rows, rows)
}
