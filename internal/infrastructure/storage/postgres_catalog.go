package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/eruerumiru/makeshop-recotest/internal/domain/entity"
)

const (
	postgresConnectAttempts = 20
	postgresConnectDelay    = 2 * time.Second
)

// PostgresCatalogRepository reads the merchant catalog from a products table.
type PostgresCatalogRepository struct {
	db *sql.DB
}

// NewPostgresCatalogRepository opens the database with retry, since the
// container may start before postgres accepts connections, and ensures the
// products table exists.
func NewPostgresCatalogRepository(dsn string) (*PostgresCatalogRepository, error) {
	db, err := openPostgresWithRetry(dsn)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	repo := &PostgresCatalogRepository{db: db}
	if err := repo.ensureSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return repo, nil
}

func openPostgresWithRetry(dsn string) (*sql.DB, error) {
	var lastErr error
	for attempt := 1; attempt <= postgresConnectAttempts; attempt++ {
		db, err := sql.Open("postgres", dsn)
		if err == nil {
			if pingErr := db.Ping(); pingErr == nil {
				return db, nil
			} else {
				err = pingErr
			}
		}
		if db != nil {
			_ = db.Close()
		}
		lastErr = err
		if attempt < postgresConnectAttempts {
			time.Sleep(postgresConnectDelay)
		}
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("postgres connection failed")
	}
	return nil, lastErr
}

func (r *PostgresCatalogRepository) ensureSchema() error {
	_, err := r.db.Exec(`
		CREATE TABLE IF NOT EXISTS products (
			sku         TEXT PRIMARY KEY,
			system_code TEXT NOT NULL DEFAULT '',
			name        TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			price       INTEGER NOT NULL,
			quantity    INTEGER NOT NULL DEFAULT 0,
			url         TEXT NOT NULL DEFAULT ''
		)`)
	return err
}

// ListProducts returns in-stock rows only; the engine filters further.
func (r *PostgresCatalogRepository) ListProducts(ctx context.Context) ([]entity.CatalogRow, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT sku, system_code, name, description, price, quantity, url
		FROM products
		WHERE quantity > 0
		ORDER BY sku`)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var out []entity.CatalogRow
	for rows.Next() {
		var row entity.CatalogRow
		if err := rows.Scan(&row.SKU, &row.SystemCode, &row.Name, &row.Description,
			&row.Price, &row.Quantity, &row.URL); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return out, nil
}

// UpsertProducts replaces or inserts rows, used by the catalog import flow.
func (r *PostgresCatalogRepository) UpsertProducts(ctx context.Context, items []entity.CatalogRow) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO products (sku, system_code, name, description, price, quantity, url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (sku) DO UPDATE SET
			system_code = EXCLUDED.system_code,
			name        = EXCLUDED.name,
			description = EXCLUDED.description,
			price       = EXCLUDED.price,
			quantity    = EXCLUDED.quantity,
			url         = EXCLUDED.url`)
	if err != nil {
		return fmt.Errorf("prepare upsert: %w", err)
	}
	defer stmt.Close()

	for _, item := range items {
		if _, err := stmt.ExecContext(ctx, item.SKU, item.SystemCode, item.Name,
			item.Description, item.Price, item.Quantity, item.URL); err != nil {
			return fmt.Errorf("upsert %s: %w", item.SKU, err)
		}
	}
	return tx.Commit()
}

func (r *PostgresCatalogRepository) Close() error {
	return r.db.Close()
}
