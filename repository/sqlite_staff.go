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

type sqliteStaffRepo struct {
	db database.TxQuerier
}

// NewSQLiteStaffRepo, constructor — interface döner.
func NewSQLiteStaffRepo(db database.TxQuerier) StaffRepository {
	return &sqliteStaffRepo{db: db}
}

const staffColumns = `id, name, role, phone, email, aadhar, date_of_joining, image_url, created_at`

func scanStaff(row interface{ Scan(...any) error }) (*models.StaffMember, error) {
	var s models.StaffMember
	err := row.Scan(&s.ID, &s.Name, &s.Role, &s.Phone, &s.Email, &s.Aadhar,
		&s.DateOfJoining, &s.Image, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sqliteStaffRepo) Create(ctx context.Context, s *models.StaffMember) error {
	query := `
		INSERT INTO staff (id, name, role, phone, email, aadhar, date_of_joining, image_url)
		VALUES (lower(hex(randomblob(8))), ?, ?, ?, ?, ?, ?, ?)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		s.Name, s.Role, s.Phone, s.Email, s.Aadhar, s.DateOfJoining, s.Image,
	).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create staff member: %w", err)
	}
	return nil
}

func (r *sqliteStaffRepo) GetByID(ctx context.Context, id string) (*models.StaffMember, error) {
	s, err := scanStaff(r.db.QueryRowContext(ctx, `SELECT `+staffColumns+` FROM staff WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get staff member by id: %w", err)
	}
	return s, nil
}

func (r *sqliteStaffRepo) List(ctx context.Context) ([]models.StaffMember, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+staffColumns+` FROM staff ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	defer rows.Close()

	staff := []models.StaffMember{}
	for rows.Next() {
		s, err := scanStaff(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan staff row: %w", err)
		}
		staff = append(staff, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating staff rows: %w", err)
	}
	return staff, nil
}

func (r *sqliteStaffRepo) Update(ctx context.Context, s *models.StaffMember) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE staff
		SET name = ?, role = ?, phone = ?, email = ?, aadhar = ?, date_of_joining = ?, image_url = ?
		WHERE id = ?`,
		s.Name, s.Role, s.Phone, s.Email, s.Aadhar, s.DateOfJoining, s.Image, s.ID)
	if err != nil {
		return fmt.Errorf("failed to update staff member: %w", err)
	}
	return requireAffected(result)
}

func (r *sqliteStaffRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM staff WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete staff member: %w", err)
	}
	return requireAffected(result)
}

func (r *sqliteStaffRepo) Count(ctx context.Context) (int, error) {
	return countRows(ctx, r.db, `SELECT COUNT(*) FROM staff`)
}
