package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-ledger/internal/domain/entity"
)

// StockRow es una fila de la proyección ledger_stock.
type StockRow struct {
	Category string
	Product  string
	Position int
	Quantity decimal.Decimal
}

// StockProjectionRepo mantiene ledger_stock, una vista tabular del catálogo
// para consultas SQL externas (usable con pool o tx).
type StockProjectionRepo struct {
	q Querier
}

// NewStockProjectionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockProjectionRepository(q Querier) *StockProjectionRepo {
	return &StockProjectionRepo{q: q}
}

// Replace borra las filas de la clave y copia el catálogo actual.
func (r *StockProjectionRepo) Replace(ctx context.Context, key string, categories []entity.Category) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM ledger_stock WHERE storage_key = $1`, key); err != nil {
		return fmt.Errorf("delete stock: %w", err)
	}
	var rows [][]any
	pos := 0
	for _, c := range categories {
		for _, p := range c.Products {
			rows = append(rows, []any{key, c.Name, p.Name, pos, decimal.NewFromInt(int64(p.Quantity))})
			pos++
		}
	}
	if len(rows) == 0 {
		return nil
	}
	_, err := r.q.CopyFrom(ctx,
		pgx.Identifier{"ledger_stock"},
		[]string{"storage_key", "category", "product", "position", "quantity"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("copy stock: %w", err)
	}
	return nil
}

// List devuelve la proyección de una clave en el orden del catálogo.
func (r *StockProjectionRepo) List(ctx context.Context, key string) ([]StockRow, error) {
	rows, err := r.q.Query(ctx, `
		SELECT category, product, position, quantity
		FROM ledger_stock WHERE storage_key = $1
		ORDER BY position`, key)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
	var list []StockRow
	for rows.Next() {
		var s StockRow
		if err := rows.Scan(&s.Category, &s.Product, &s.Position, &s.Quantity); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
