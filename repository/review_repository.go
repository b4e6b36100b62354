package repository

import (
	"context"

	"github.com/akinalp/milan/models"
)

// ReviewRepository, müşteri yorumları için veritabanı işlemleri.
type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	GetByID(ctx context.Context, id string) (*models.Review, error)
	// ListApproved, public sitede gösterilen onaylı yorumlar (yeniden eskiye).
	ListApproved(ctx context.Context) ([]models.Review, error)
	// ListAll, admin moderasyon listesi (yeniden eskiye).
	ListAll(ctx context.Context) ([]models.Review, error)
	Update(ctx context.Context, review *models.Review) error
	SetApproved(ctx context.Context, id string, approved bool) error
	SetOwnerResponse(ctx context.Context, id string, response *string) error
	Delete(ctx context.Context, id string) error
	CountApproved(ctx context.Context) (int, error)
}
