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

type sqliteHighlightRepo struct {
	db database.TxQuerier
}

// NewSQLiteHighlightRepo, constructor — interface döner.
func NewSQLiteHighlightRepo(db database.TxQuerier) HighlightRepository {
	return &sqliteHighlightRepo{db: db}
}

func scanHighlight(row interface{ Scan(...any) error }) (*models.MenuHighlight, error) {
	var h models.MenuHighlight
	var price sql.NullString
	if err := row.Scan(&h.ID, &h.Name, &h.Image, &price, &h.CreatedAt); err != nil {
		return nil, err
	}
	h.Price = stringPtr(price)
	return &h, nil
}

func (r *sqliteHighlightRepo) Create(ctx context.Context, h *models.MenuHighlight) error {
	query := `
		INSERT INTO menu_highlights (id, name, image_url, price)
		VALUES (lower(hex(randomblob(8))), ?, ?, ?)
		RETURNING id, created_at`

	if err := r.db.QueryRowContext(ctx, query, h.Name, h.Image, h.Price).Scan(&h.ID, &h.CreatedAt); err != nil {
		return fmt.Errorf("failed to create highlight: %w", err)
	}
	return nil
}

func (r *sqliteHighlightRepo) GetByID(ctx context.Context, id string) (*models.MenuHighlight, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, image_url, price, created_at FROM menu_highlights WHERE id = ?`, id)

	h, err := scanHighlight(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get highlight by id: %w", err)
	}
	return h, nil
}

func (r *sqliteHighlightRepo) List(ctx context.Context) ([]models.MenuHighlight, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, image_url, price, created_at
		FROM menu_highlights ORDER BY created_at ASC, rowid ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list highlights: %w", err)
	}
	defer rows.Close()

	list := []models.MenuHighlight{}
	for rows.Next() {
		h, err := scanHighlight(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan highlight row: %w", err)
		}
		list = append(list, *h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating highlight rows: %w", err)
	}
	return list, nil
}

func (r *sqliteHighlightRepo) Update(ctx context.Context, h *models.MenuHighlight) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE menu_highlights SET name = ?, image_url = ?, price = ? WHERE id = ?`,
		h.Name, h.Image, h.Price, h.ID)
	if err != nil {
		return fmt.Errorf("failed to update highlight: %w", err)
	}
	return requireAffected(result)
}

func (r *sqliteHighlightRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM menu_highlights WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete highlight: %w", err)
	}
	return requireAffected(result)
}
