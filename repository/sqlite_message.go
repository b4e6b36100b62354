package repository

import (
	"context"
	"fmt"

	"github.com/akinalp/milan/database"
	"github.com/akinalp/milan/models"
)

// sqliteMessageRepo, MessageRepository interface'inin SQLite implementasyonu.
type sqliteMessageRepo struct {
	db database.TxQuerier
}

// NewSQLiteMessageRepo, constructor — interface döner.
func NewSQLiteMessageRepo(db database.TxQuerier) MessageRepository {
	return &sqliteMessageRepo{db: db}
}

func (r *sqliteMessageRepo) Create(ctx context.Context, msg *models.CustomerMessage) error {
	query := `
		INSERT INTO messages (id, name, phone, message)
		VALUES (lower(hex(randomblob(8))), ?, ?, ?)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, msg.Name, msg.Phone, msg.Message).
		Scan(&msg.ID, &msg.Date)
	if err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

func (r *sqliteMessageRepo) List(ctx context.Context) ([]models.CustomerMessage, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, phone, message, created_at
		FROM messages
		ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	messages := []models.CustomerMessage{}
	for rows.Next() {
		var m models.CustomerMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Phone, &m.Message, &m.Date); err != nil {
			return nil, fmt.Errorf("failed to scan message row: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating message rows: %w", err)
	}
	return messages, nil
}

func (r *sqliteMessageRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM messages WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}
	return requireAffected(result)
}

func (r *sqliteMessageRepo) Count(ctx context.Context) (int, error) {
	return countRows(ctx, r.db, `SELECT COUNT(*) FROM messages`)
}
