package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/akinalp/milan/database"
	"github.com/akinalp/milan/models"
	"github.com/akinalp/milan/pkg"
)

type sqliteReviewRepo struct {
	db database.TxQuerier
}

// NewSQLiteReviewRepo, constructor — interface döner.
func NewSQLiteReviewRepo(db database.TxQuerier) ReviewRepository {
	return &sqliteReviewRepo{db: db}
}

const reviewColumns = `id, customer_name, rating, comment, image_url, tags, likes, source,
	is_approved, owner_response, created_at`

// scanReview, satırı Review'a çevirir.
// Tek image_url kolonu Images dizisine, tags JSON metni []string'e açılır.
func scanReview(row interface{ Scan(...any) error }) (*models.Review, error) {
	var (
		rv       models.Review
		imageURL string
		tagsJSON string
		response sql.NullString
		source   string
	)
	err := row.Scan(&rv.ID, &rv.UserName, &rv.Rating, &rv.Content, &imageURL, &tagsJSON,
		&rv.Likes, &source, &rv.IsApproved, &response, &rv.Date)
	if err != nil {
		return nil, err
	}

	rv.Source = models.ReviewSource(source)
	rv.OwnerResponse = stringPtr(response)
	rv.Images = []string{}
	if imageURL != "" {
		rv.Images = append(rv.Images, imageURL)
	}
	rv.Tags = []string{}
	if tagsJSON != "" {
		if err := json.Unmarshal([]byte(tagsJSON), &rv.Tags); err != nil {
			return nil, fmt.Errorf("invalid tags json: %w", err)
		}
	}
	return &rv, nil
}

func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("failed to encode tags: %w", err)
	}
	return string(b), nil
}

func (r *sqliteReviewRepo) Create(ctx context.Context, review *models.Review) error {
	tags, err := encodeTags(review.Tags)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO reviews (id, customer_name, rating, comment, image_url, tags, likes, source, is_approved, owner_response)
		VALUES (lower(hex(randomblob(8))), ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id, created_at`

	err = r.db.QueryRowContext(ctx, query,
		review.UserName, review.Rating, review.Content, review.ImageURL(), tags,
		review.Likes, string(review.Source), review.IsApproved, review.OwnerResponse,
	).Scan(&review.ID, &review.Date)
	if err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

func (r *sqliteReviewRepo) GetByID(ctx context.Context, id string) (*models.Review, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+reviewColumns+` FROM reviews WHERE id = ?`, id)

	rv, err := scanReview(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get review by id: %w", err)
	}
	return rv, nil
}

func (r *sqliteReviewRepo) ListApproved(ctx context.Context) ([]models.Review, error) {
	return r.list(ctx, `SELECT `+reviewColumns+` FROM reviews WHERE is_approved = 1
		ORDER BY created_at DESC, rowid DESC`)
}

func (r *sqliteReviewRepo) ListAll(ctx context.Context) ([]models.Review, error) {
	return r.list(ctx, `SELECT `+reviewColumns+` FROM reviews ORDER BY created_at DESC, rowid DESC`)
}

func (r *sqliteReviewRepo) list(ctx context.Context, query string) ([]models.Review, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review row: %w", err)
		}
		reviews = append(reviews, *rv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating review rows: %w", err)
	}
	return reviews, nil
}

func (r *sqliteReviewRepo) Update(ctx context.Context, review *models.Review) error {
	tags, err := encodeTags(review.Tags)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, `
		UPDATE reviews
		SET customer_name = ?, rating = ?, comment = ?, image_url = ?, tags = ?,
		    is_approved = ?, owner_response = ?
		WHERE id = ?`,
		review.UserName, review.Rating, review.Content, review.ImageURL(), tags,
		review.IsApproved, review.OwnerResponse, review.ID)
	if err != nil {
		return fmt.Errorf("failed to update review: %w", err)
	}
	return requireAffected(result)
}

func (r *sqliteReviewRepo) SetApproved(ctx context.Context, id string, approved bool) error {
	result, err := r.db.ExecContext(ctx, `UPDATE reviews SET is_approved = ? WHERE id = ?`, approved, id)
	if err != nil {
		return fmt.Errorf("failed to set review approval: %w", err)
	}
	return requireAffected(result)
}

func (r *sqliteReviewRepo) SetOwnerResponse(ctx context.Context, id string, response *string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE reviews SET owner_response = ? WHERE id = ?`, response, id)
	if err != nil {
		return fmt.Errorf("failed to set owner response: %w", err)
	}
	return requireAffected(result)
}

func (r *sqliteReviewRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM reviews WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	return requireAffected(result)
}

func (r *sqliteReviewRepo) CountApproved(ctx context.Context) (int, error) {
	return countRows(ctx, r.db, `SELECT COUNT(*) FROM reviews WHERE is_approved = 1`)
}
