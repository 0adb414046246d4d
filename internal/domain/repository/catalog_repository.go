package repository

import (
	"context"

	"github.com/eruerumiru/makeshop-recotest/internal/domain/entity"
)

// CatalogRepository feeds the engine an already-materialized product list.
// Implementations own their staleness policy and encoding normalization; rows
// handed over are valid UTF-8 text. Upstream unavailability is the only error
// the engine surfaces to callers.
type CatalogRepository interface {
	ListProducts(ctx context.Context) ([]entity.CatalogRow, error)
}
