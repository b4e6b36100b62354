package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/akinalp/milan/database"
	"github.com/akinalp/milan/pkg"
)

// SettingRepository, key/value site ayarları. Değerler ham JSON olarak tutulur;
// şekli service katmanı bilir.
type SettingRepository interface {
	// Get, key yoksa pkg.ErrNotFound döner.
	Get(ctx context.Context, key string) ([]byte, error)
	Upsert(ctx context.Context, key string, value []byte) error
}

type sqliteSettingRepo struct {
	db database.TxQuerier
}

// NewSQLiteSettingRepo, constructor — interface döner.
func NewSQLiteSettingRepo(db database.TxQuerier) SettingRepository {
	return &sqliteSettingRepo{db: db}
}

func (r *sqliteSettingRepo) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get setting %q: %w", key, err)
	}
	return []byte(value), nil
}

func (r *sqliteSettingRepo) Upsert(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO settings (key, value, updated_at)
		VALUES (?, ?, strftime('%Y-%m-%d %H:%M:%f','now'))
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(value))
	if err != nil {
		return fmt.Errorf("failed to upsert setting %q: %w", key, err)
	}
	return nil
}
