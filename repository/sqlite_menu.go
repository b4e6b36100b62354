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

// sqliteMenuRepo, MenuRepository interface'inin SQLite implementasyonu.
type sqliteMenuRepo struct {
	db database.TxQuerier
}

// NewSQLiteMenuRepo, constructor — interface döner.
func NewSQLiteMenuRepo(db database.TxQuerier) MenuRepository {
	return &sqliteMenuRepo{db: db}
}

const menuColumns = `id, name, price, category, is_veg, image_url, is_featured, created_at`

func scanMenuItem(row interface{ Scan(...any) error }) (*models.MenuItem, error) {
	var item models.MenuItem
	err := row.Scan(&item.ID, &item.Name, &item.Price, &item.Category,
		&item.IsVeg, &item.Image, &item.IsFeatured, &item.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *sqliteMenuRepo) Create(ctx context.Context, item *models.MenuItem) error {
	query := `
		INSERT INTO menu_items (id, name, price, category, is_veg, image_url, is_featured)
		VALUES (lower(hex(randomblob(8))), ?, ?, ?, ?, ?, ?)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		item.Name, item.Price, item.Category, item.IsVeg, item.Image, item.IsFeatured,
	).Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create menu item: %w", err)
	}

	return nil
}

func (r *sqliteMenuRepo) GetByID(ctx context.Context, id string) (*models.MenuItem, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+menuColumns+` FROM menu_items WHERE id = ?`, id)

	item, err := scanMenuItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get menu item by id: %w", err)
	}

	return item, nil
}

func (r *sqliteMenuRepo) List(ctx context.Context) ([]models.MenuItem, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+menuColumns+` FROM menu_items ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	defer rows.Close()

	items := []models.MenuItem{}
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan menu item row: %w", err)
		}
		items = append(items, *item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating menu item rows: %w", err)
	}

	return items, nil
}

func (r *sqliteMenuRepo) Update(ctx context.Context, item *models.MenuItem) error {
	query := `
		UPDATE menu_items
		SET name = ?, price = ?, category = ?, is_veg = ?, image_url = ?, is_featured = ?
		WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query,
		item.Name, item.Price, item.Category, item.IsVeg, item.Image, item.IsFeatured, item.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update menu item: %w", err)
	}

	return requireAffected(result)
}

func (r *sqliteMenuRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM menu_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete menu item: %w", err)
	}

	return requireAffected(result)
}

func (r *sqliteMenuRepo) Count(ctx context.Context) (int, error) {
	return countRows(ctx, r.db, `SELECT COUNT(*) FROM menu_items`)
}
