package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/akinalp/milan/database"
	"github.com/akinalp/milan/models"
	"github.com/akinalp/milan/pkg"
)

type sqliteStockRepo struct {
	db database.TxQuerier
}

// NewSQLiteStockRepo, constructor — interface döner.
func NewSQLiteStockRepo(db database.TxQuerier) StockRepository {
	return &sqliteStockRepo{db: db}
}

const stockColumns = `id, name, quantity, unit, min_threshold, updated_at`

func scanStock(row interface{ Scan(...any) error }) (*models.StockItem, error) {
	var s models.StockItem
	if err := row.Scan(&s.ID, &s.Name, &s.Quantity, &s.Unit, &s.MinThreshold, &s.LastUpdated); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sqliteStockRepo) list(ctx context.Context, query string) ([]models.StockItem, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock items: %w", err)
	}
	defer rows.Close()

	items := []models.StockItem{}
	for rows.Next() {
		s, err := scanStock(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan stock row: %w", err)
		}
		items = append(items, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stock rows: %w", err)
	}
	return items, nil
}

func (r *sqliteStockRepo) Create(ctx context.Context, item *models.StockItem) error {
	query := `
		INSERT INTO stock_items (id, name, quantity, unit, min_threshold)
		VALUES (lower(hex(randomblob(8))), ?, ?, ?, ?)
		RETURNING id, updated_at`

	err := r.db.QueryRowContext(ctx, query, item.Name, item.Quantity, item.Unit, item.MinThreshold).
		Scan(&item.ID, &item.LastUpdated)
	if err != nil {
		return fmt.Errorf("failed to create stock item: %w", err)
	}
	return nil
}

func (r *sqliteStockRepo) GetByID(ctx context.Context, id string) (*models.StockItem, error) {
	s, err := scanStock(r.db.QueryRowContext(ctx, `SELECT `+stockColumns+` FROM stock_items WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get stock item by id: %w", err)
	}
	return s, nil
}

func (r *sqliteStockRepo) List(ctx context.Context) ([]models.StockItem, error) {
	return r.list(ctx, `SELECT `+stockColumns+` FROM stock_items ORDER BY name COLLATE NOCASE ASC, rowid ASC`)
}

func (r *sqliteStockRepo) ListLow(ctx context.Context) ([]models.StockItem, error) {
	return r.list(ctx, `SELECT `+stockColumns+` FROM stock_items
		WHERE quantity <= min_threshold
		ORDER BY name COLLATE NOCASE ASC, rowid ASC`)
}

func (r *sqliteStockRepo) Update(ctx context.Context, item *models.StockItem) error {
	err := r.db.QueryRowContext(ctx, `
		UPDATE stock_items
		SET name = ?, quantity = ?, unit = ?, min_threshold = ?,
		    updated_at = strftime('%Y-%m-%d %H:%M:%f','now')
		WHERE id = ?
		RETURNING updated_at`,
		item.Name, item.Quantity, item.Unit, item.MinThreshold, item.ID).Scan(&item.LastUpdated)
	if errors.Is(err, sql.ErrNoRows) {
		return pkg.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update stock item: %w", err)
	}
	return nil
}

func (r *sqliteStockRepo) UpdateQuantity(ctx context.Context, id string, quantity float64) (*models.StockItem, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE stock_items
		SET quantity = ?, updated_at = strftime('%Y-%m-%d %H:%M:%f','now')
		WHERE id = ?
		RETURNING `+stockColumns, quantity, id)

	s, err := scanStock(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update stock quantity: %w", err)
	}
	return s, nil
}

func (r *sqliteStockRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM stock_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete stock item: %w", err)
	}
	return requireAffected(result)
}
