package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/akinalp/milan/database"
	"github.com/akinalp/milan/pkg"
	"github.com/akinalp/milan/pkg/cart"
)

// sqliteCartStore, CartStore'un SQLite implementasyonu.
// expires_at unix milisaniye olarak yazılır; karşılaştırma Go tarafındaki saatle yapılır.
type sqliteCartStore struct {
	db  database.TxQuerier
	now func() time.Time
}

// NewSQLiteCartStore, constructor — interface döner.
func NewSQLiteCartStore(db database.TxQuerier) CartStore {
	return &sqliteCartStore{db: db, now: time.Now}
}

func (s *sqliteCartStore) Load(ctx context.Context, id string) (*cart.Cart, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM carts WHERE id = ? AND expires_at > ?`, id, s.now().UnixMilli()).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	var c cart.Cart
	if err := json.Unmarshal([]byte(payload), &c); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}
	return &c, nil
}

func (s *sqliteCartStore) Save(ctx context.Context, id string, c *cart.Cart, ttl time.Duration) error {
	payload, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO carts (id, payload, expires_at) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET payload = excluded.payload, expires_at = excluded.expires_at`,
		id, string(payload), s.now().Add(ttl).UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

func (s *sqliteCartStore) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM carts WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}
	return nil
}

func (s *sqliteCartStore) PurgeExpired(ctx context.Context) (int64, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM carts WHERE expires_at <= ?`, s.now().UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("failed to purge expired carts: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check rows affected: %w", err)
	}
	return n, nil
}
