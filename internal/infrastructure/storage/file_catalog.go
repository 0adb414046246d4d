package storage

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/eruerumiru/makeshop-recotest/internal/domain/entity"
)

// FileCatalogRepository loads the catalog from a merchant export file,
// either .xlsx or .csv. The file is re-read on every call; wrap with
// CachedCatalogRepository to bound the cost.
type FileCatalogRepository struct {
	path string
}

func NewFileCatalogRepository(path string) *FileCatalogRepository {
	return &FileCatalogRepository{path: path}
}

func (r *FileCatalogRepository) ListProducts(_ context.Context) ([]entity.CatalogRow, error) {
	switch strings.ToLower(filepath.Ext(r.path)) {
	case ".xlsx":
		return loadExcelCatalog(r.path)
	case ".csv":
		return loadCSVCatalog(r.path)
	default:
		return nil, fmt.Errorf("unsupported catalog file %q: expected .xlsx or .csv", r.path)
	}
}

func loadExcelCatalog(path string) ([]entity.CatalogRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("catalog %s has no sheets", path)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	return parseCatalogRows(rows)
}

func loadCSVCatalog(path string) ([]entity.CatalogRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return parseCatalogRows(rows)
}

// catalog column headers recognized in the export file, lowercase.
var catalogColumns = map[string]int{
	"sku": 0, "商品id": 0,
	"system_code": 1, "システム商品コード": 1,
	"name": 2, "商品名": 2,
	"description": 3, "商品説明": 3,
	"price": 4, "販売価格": 4,
	"quantity": 5, "在庫数": 5,
	"url": 6, "商品url": 6,
}

// parseCatalogRows maps a header row plus data rows into catalog entities.
// Unknown columns are ignored; rows missing a name are skipped.
func parseCatalogRows(rows [][]string) ([]entity.CatalogRow, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("catalog file is empty")
	}

	// Map each physical column to its logical slot from the header.
	slots := make([]int, len(rows[0]))
	recognized := false
	for i, h := range rows[0] {
		key := strings.ToLower(strings.TrimSpace(h))
		if slot, ok := catalogColumns[key]; ok {
			slots[i] = slot
			recognized = true
		} else {
			slots[i] = -1
		}
	}
	if !recognized {
		return nil, fmt.Errorf("catalog header row has no recognized columns")
	}

	out := make([]entity.CatalogRow, 0, len(rows)-1)
	for _, rec := range rows[1:] {
		var fields [7]string
		for i, v := range rec {
			if i < len(slots) && slots[i] >= 0 {
				fields[slots[i]] = strings.TrimSpace(v)
			}
		}
		if fields[2] == "" {
			continue
		}
		out = append(out, entity.CatalogRow{
			SKU:         fields[0],
			SystemCode:  fields[1],
			Name:        fields[2],
			Description: fields[3],
			Price:       parsePrice(fields[4]),
			Quantity:    parseQuantityField(fields[5]),
			URL:         fields[6],
		})
	}
	return out, nil
}

// parsePrice reads an integer yen amount, tolerating commas and a currency
// suffix as merchant exports often include them.
func parsePrice(raw string) int {
	cleaned := strings.NewReplacer(",", "", "円", "", "¥", "", " ", "").Replace(raw)
	n, err := strconv.Atoi(cleaned)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func parseQuantityField(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
