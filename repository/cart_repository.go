package repository

import (
	"context"
	"time"

	"github.com/akinalp/milan/pkg/cart"
)

// CartStore, ziyaretçi sepetlerinin key/value deposu.
//
// Redis ayarlıysa Redis, değilse SQLite "carts" tablosu kullanılır.
// Süresi dolmuş sepet bulunmamış sayılır.
type CartStore interface {
	// Load, sepet yoksa veya süresi dolmuşsa pkg.ErrNotFound döner.
	Load(ctx context.Context, id string) (*cart.Cart, error)
	// Save, sepeti yazar ve TTL'i baştan başlatır.
	Save(ctx context.Context, id string, c *cart.Cart, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
	// PurgeExpired, süresi dolmuş sepetleri fiziksel olarak siler.
	// Kendi TTL'i olan backend'lerde no-op'tur.
	PurgeExpired(ctx context.Context) (int64, error)
}
