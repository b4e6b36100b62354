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

type sqliteUdharRepo struct {
	db database.TxQuerier
}

// NewSQLiteUdharRepo, constructor — interface döner.
func NewSQLiteUdharRepo(db database.TxQuerier) UdharRepository {
	return &sqliteUdharRepo{db: db}
}

const udharColumns = `id, customer_name, phone, amount, description, is_paid, created_at`

func scanUdhar(row interface{ Scan(...any) error }) (*models.UdharRecord, error) {
	var u models.UdharRecord
	err := row.Scan(&u.ID, &u.CustomerName, &u.Phone, &u.Amount, &u.Description, &u.IsPaid, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *sqliteUdharRepo) Create(ctx context.Context, rec *models.UdharRecord) error {
	query := `
		INSERT INTO udhar_records (id, customer_name, phone, amount, description, is_paid)
		VALUES (lower(hex(randomblob(8))), ?, ?, ?, ?, 0)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, rec.CustomerName, rec.Phone, rec.Amount, rec.Description).
		Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create udhar record: %w", err)
	}
	rec.IsPaid = false
	return nil
}

func (r *sqliteUdharRepo) GetByID(ctx context.Context, id string) (*models.UdharRecord, error) {
	u, err := scanUdhar(r.db.QueryRowContext(ctx, `SELECT `+udharColumns+` FROM udhar_records WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get udhar record by id: %w", err)
	}
	return u, nil
}

func (r *sqliteUdharRepo) List(ctx context.Context) ([]models.UdharRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+udharColumns+` FROM udhar_records ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list udhar records: %w", err)
	}
	defer rows.Close()

	records := []models.UdharRecord{}
	for rows.Next() {
		u, err := scanUdhar(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan udhar row: %w", err)
		}
		records = append(records, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating udhar rows: %w", err)
	}
	return records, nil
}

func (r *sqliteUdharRepo) SetPaid(ctx context.Context, id string, paid bool) error {
	result, err := r.db.ExecContext(ctx, `UPDATE udhar_records SET is_paid = ? WHERE id = ?`, paid, id)
	if err != nil {
		return fmt.Errorf("failed to set udhar paid status: %w", err)
	}
	return requireAffected(result)
}

func (r *sqliteUdharRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM udhar_records WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete udhar record: %w", err)
	}
	return requireAffected(result)
}

func (r *sqliteUdharRepo) Summary(ctx context.Context) (*models.UdharSummary, error) {
	var s models.UdharSummary
	err := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(CASE WHEN is_paid = 0 THEN amount END), 0),
		       COUNT(CASE WHEN is_paid = 0 THEN 1 END),
		       COUNT(CASE WHEN is_paid = 1 THEN 1 END)
		FROM udhar_records`).Scan(&s.Outstanding, &s.UnpaidCount, &s.PaidCount)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize udhar records: %w", err)
	}
	return &s, nil
}
