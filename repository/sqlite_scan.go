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

// sqliteScanRepo, toplu sıralama transaction'ı için *sql.DB tutar.
type sqliteScanRepo struct {
	db *sql.DB
}

// NewSQLiteScanRepo, constructor — interface döner.
func NewSQLiteScanRepo(db *sql.DB) ScanRepository {
	return &sqliteScanRepo{db: db}
}

func scanMenuScan(row interface{ Scan(...any) error }) (*models.MenuScan, error) {
	var s models.MenuScan
	var order sql.NullInt64
	if err := row.Scan(&s.ID, &s.Title, &s.Image, &order, &s.CreatedAt); err != nil {
		return nil, err
	}
	s.Order = intPtr(order)
	return &s, nil
}

func (r *sqliteScanRepo) Create(ctx context.Context, scan *models.MenuScan) error {
	query := `
		INSERT INTO menu_scans (id, title, image_url, display_order)
		VALUES (lower(hex(randomblob(8))), ?, ?, ?)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, scan.Title, scan.Image, nullableInt(scan.Order)).
		Scan(&scan.ID, &scan.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create menu scan: %w", err)
	}
	return nil
}

func (r *sqliteScanRepo) GetByID(ctx context.Context, id string) (*models.MenuScan, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, title, image_url, display_order, created_at FROM menu_scans WHERE id = ?`, id)

	s, err := scanMenuScan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get menu scan by id: %w", err)
	}
	return s, nil
}

func (r *sqliteScanRepo) List(ctx context.Context) ([]models.MenuScan, error) {
	// SQLite'ta NULL'lar ASC sıralamada başa gelir — "IS NULL" ile sona itilir.
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, image_url, display_order, created_at
		FROM menu_scans
		ORDER BY display_order IS NULL, display_order ASC, created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu scans: %w", err)
	}
	defer rows.Close()

	list := []models.MenuScan{}
	for rows.Next() {
		s, err := scanMenuScan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan menu scan row: %w", err)
		}
		list = append(list, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating menu scan rows: %w", err)
	}
	return list, nil
}

func (r *sqliteScanRepo) Update(ctx context.Context, scan *models.MenuScan) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE menu_scans SET title = ?, image_url = ?, display_order = ? WHERE id = ?`,
		scan.Title, scan.Image, nullableInt(scan.Order), scan.ID)
	if err != nil {
		return fmt.Errorf("failed to update menu scan: %w", err)
	}
	return requireAffected(result)
}

func (r *sqliteScanRepo) UpdateOrder(ctx context.Context, id string, order *int) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE menu_scans SET display_order = ? WHERE id = ?`, nullableInt(order), id)
	if err != nil {
		return fmt.Errorf("failed to update menu scan order: %w", err)
	}
	return requireAffected(result)
}

// UpdateOrders, birden fazla taramanın sırasını atomik olarak günceller.
// Bir id bulunamazsa tüm değişiklikler geri alınır.
func (r *sqliteScanRepo) UpdateOrders(ctx context.Context, items []models.PositionUpdate) error {
	return database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `UPDATE menu_scans SET display_order = ? WHERE id = ?`)
		if err != nil {
			return fmt.Errorf("failed to prepare statement: %w", err)
		}
		defer stmt.Close()

		for _, item := range items {
			result, err := stmt.ExecContext(ctx, item.Position, item.ID)
			if err != nil {
				return fmt.Errorf("failed to update order for scan %s: %w", item.ID, err)
			}
			affected, err := result.RowsAffected()
			if err != nil {
				return fmt.Errorf("failed to check rows affected for scan %s: %w", item.ID, err)
			}
			if affected == 0 {
				return fmt.Errorf("%w: scan %s", pkg.ErrNotFound, item.ID)
			}
		}
		return nil
	})
}

func (r *sqliteScanRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM menu_scans WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete menu scan: %w", err)
	}
	return requireAffected(result)
}
