package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/akinalp/milan/database"
	"github.com/akinalp/milan/pkg"
)

// requireAffected, UPDATE/DELETE hiçbir satıra dokunmadıysa pkg.ErrNotFound döner.
func requireAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if affected == 0 {
		return pkg.ErrNotFound
	}
	return nil
}

// countRows, tek bir COUNT/SUM sorgusunu çalıştırır.
func countRows(ctx context.Context, db database.TxQuerier, query string, args ...any) (int, error) {
	var n int
	if err := db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count rows: %w", err)
	}
	return n, nil
}

// nullableInt, *int'i SQL parametresine çevirir (nil → NULL).
func nullableInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

// intPtr, sql.NullInt64'ü *int'e çevirir.
func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

// stringPtr, sql.NullString'i *string'e çevirir.
func stringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}
