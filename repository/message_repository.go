package repository

import (
	"context"

	"github.com/akinalp/milan/models"
)

// MessageRepository, iletişim formu mesajları için veritabanı işlemleri.
//
// Mesajlar düzenlenmez; admin yalnızca okur ve siler.
type MessageRepository interface {
	Create(ctx context.Context, msg *models.CustomerMessage) error
	// List, yeniden eskiye sıralı döner.
	List(ctx context.Context) ([]models.CustomerMessage, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
