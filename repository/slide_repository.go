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

// Carousel tabloları. Aynı şemaya sahiptirler.
const (
	SlideTableHero    = "hero_images"
	SlideTableMakrana = "makrana_images"
)

// SlideRepository, ana sayfa carousel görselleri için veritabanı işlemleri.
// Hangi tabloya yazılacağı constructor'da belirlenir.
type SlideRepository interface {
	// List, display_order'a göre artan sırada.
	List(ctx context.Context) ([]models.SlideImage, error)
	GetByID(ctx context.Context, id string) (*models.SlideImage, error)
	// Create, görseli listenin sonuna (max(display_order)+1) ekler.
	Create(ctx context.Context, slide *models.SlideImage) error
	Delete(ctx context.Context, id string) error
}

type sqliteSlideRepo struct {
	db    database.TxQuerier
	table string
}

// NewSQLiteSlideRepo, constructor — interface döner.
// table yalnızca SlideTableHero veya SlideTableMakrana olabilir; tablo adı
// SQL'e doğrudan yazıldığı için başka değer panic'e yol açar.
func NewSQLiteSlideRepo(db database.TxQuerier, table string) SlideRepository {
	if table != SlideTableHero && table != SlideTableMakrana {
		panic(fmt.Sprintf("repository: unknown slide table %q", table))
	}
	return &sqliteSlideRepo{db: db, table: table}
}

func (r *sqliteSlideRepo) List(ctx context.Context) ([]models.SlideImage, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, image_url, display_order, created_at FROM `+r.table+`
		 ORDER BY display_order ASC, created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", r.table, err)
	}
	defer rows.Close()

	slides := []models.SlideImage{}
	for rows.Next() {
		var s models.SlideImage
		if err := rows.Scan(&s.ID, &s.ImageURL, &s.DisplayOrder, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", r.table, err)
		}
		slides = append(slides, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s rows: %w", r.table, err)
	}
	return slides, nil
}

func (r *sqliteSlideRepo) GetByID(ctx context.Context, id string) (*models.SlideImage, error) {
	var s models.SlideImage
	err := r.db.QueryRowContext(ctx,
		`SELECT id, image_url, display_order, created_at FROM `+r.table+` WHERE id = ?`, id).
		Scan(&s.ID, &s.ImageURL, &s.DisplayOrder, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s by id: %w", r.table, err)
	}
	return &s, nil
}

func (r *sqliteSlideRepo) Create(ctx context.Context, slide *models.SlideImage) error {
	query := `
		INSERT INTO ` + r.table + ` (id, image_url, display_order)
		VALUES (lower(hex(randomblob(8))), ?, (SELECT COALESCE(MAX(display_order), 0) + 1 FROM ` + r.table + `))
		RETURNING id, display_order, created_at`

	err := r.db.QueryRowContext(ctx, query, slide.ImageURL).
		Scan(&slide.ID, &slide.DisplayOrder, &slide.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", r.table, err)
	}
	return nil
}

func (r *sqliteSlideRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM `+r.table+` WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", r.table, err)
	}
	return requireAffected(result)
}
