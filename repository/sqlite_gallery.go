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

// sqliteGalleryRepo, vitrin sıralaması transaction'ı için *sql.DB tutar.
type sqliteGalleryRepo struct {
	db *sql.DB
}

// NewSQLiteGalleryRepo, constructor — interface döner.
func NewSQLiteGalleryRepo(db *sql.DB) GalleryRepository {
	return &sqliteGalleryRepo{db: db}
}

const galleryColumns = `id, image_url, alt_text, likes, showcase_order, created_at`

func scanGalleryImage(row interface{ Scan(...any) error }) (*models.GalleryImage, error) {
	var g models.GalleryImage
	var order sql.NullInt64
	if err := row.Scan(&g.ID, &g.URL, &g.Alt, &g.Likes, &order, &g.CreatedAt); err != nil {
		return nil, err
	}
	g.ShowcaseOrder = intPtr(order)
	return &g, nil
}

func (r *sqliteGalleryRepo) query(ctx context.Context, query string, args ...any) ([]models.GalleryImage, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list gallery images: %w", err)
	}
	defer rows.Close()

	images := []models.GalleryImage{}
	for rows.Next() {
		g, err := scanGalleryImage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan gallery row: %w", err)
		}
		images = append(images, *g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating gallery rows: %w", err)
	}
	return images, nil
}

func (r *sqliteGalleryRepo) List(ctx context.Context) ([]models.GalleryImage, error) {
	return r.query(ctx, `SELECT `+galleryColumns+` FROM gallery ORDER BY created_at DESC, rowid DESC`)
}

func (r *sqliteGalleryRepo) ListShowcase(ctx context.Context, limit int) ([]models.GalleryImage, error) {
	return r.query(ctx, `SELECT `+galleryColumns+` FROM gallery
		WHERE showcase_order IS NOT NULL
		ORDER BY showcase_order ASC, created_at DESC
		LIMIT ?`, limit)
}

func (r *sqliteGalleryRepo) GetByID(ctx context.Context, id string) (*models.GalleryImage, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+galleryColumns+` FROM gallery WHERE id = ?`, id)

	g, err := scanGalleryImage(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get gallery image by id: %w", err)
	}
	return g, nil
}

func (r *sqliteGalleryRepo) Create(ctx context.Context, img *models.GalleryImage) error {
	query := `
		INSERT INTO gallery (id, image_url, alt_text, likes, showcase_order)
		VALUES (lower(hex(randomblob(8))), ?, ?, ?, ?)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, img.URL, img.Alt, img.Likes, nullableInt(img.ShowcaseOrder)).
		Scan(&img.ID, &img.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create gallery image: %w", err)
	}
	return nil
}

func (r *sqliteGalleryRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM gallery WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete gallery image: %w", err)
	}
	return requireAffected(result)
}

func (r *sqliteGalleryRepo) IncrementLikes(ctx context.Context, id string) (int, error) {
	var likes int
	err := r.db.QueryRowContext(ctx,
		`UPDATE gallery SET likes = likes + 1 WHERE id = ? RETURNING likes`, id).Scan(&likes)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, pkg.ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to increment likes: %w", err)
	}
	return likes, nil
}

func (r *sqliteGalleryRepo) SetShowcaseOrder(ctx context.Context, id string, order *int) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE gallery SET showcase_order = ? WHERE id = ?`, nullableInt(order), id)
	if err != nil {
		return fmt.Errorf("failed to set showcase order: %w", err)
	}
	return requireAffected(result)
}

func (r *sqliteGalleryRepo) ReplaceShowcaseOrder(ctx context.Context, ids []string) error {
	return database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`UPDATE gallery SET showcase_order = NULL WHERE showcase_order IS NOT NULL`); err != nil {
			return fmt.Errorf("failed to clear showcase order: %w", err)
		}

		stmt, err := tx.PrepareContext(ctx, `UPDATE gallery SET showcase_order = ? WHERE id = ?`)
		if err != nil {
			return fmt.Errorf("failed to prepare showcase update: %w", err)
		}
		defer stmt.Close()

		for i, id := range ids {
			result, err := stmt.ExecContext(ctx, i+1, id)
			if err != nil {
				return fmt.Errorf("failed to set showcase order for %s: %w", id, err)
			}
			if err := requireAffected(result); err != nil {
				return fmt.Errorf("gallery image %s: %w", id, err)
			}
		}
		return nil
	})
}

func (r *sqliteGalleryRepo) TotalLikes(ctx context.Context) (int, error) {
	return countRows(ctx, r.db, `SELECT COALESCE(SUM(likes), 0) FROM gallery`)
}
