package storage

import (
	"context"
	"fmt"

	"github.com/eruerumiru/makeshop-recotest/internal/domain/entity"
	"github.com/eruerumiru/makeshop-recotest/internal/domain/repository"
)

// CatalogUpserter accepts catalog rows for persistence.
type CatalogUpserter interface {
	UpsertProducts(ctx context.Context, items []entity.CatalogRow) error
}

// ImportCatalog copies every row from src into dst, typically a merchant
// export file into postgres at startup. Returns the number of rows imported.
func ImportCatalog(ctx context.Context, src repository.CatalogRepository, dst CatalogUpserter) (int, error) {
	rows, err := src.ListProducts(ctx)
	if err != nil {
		return 0, fmt.Errorf("read import source: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	if err := dst.UpsertProducts(ctx, rows); err != nil {
		return 0, fmt.Errorf("import catalog: %w", err)
	}
	return len(rows), nil
}
