package repository

import (
	"context"

	"github.com/akinalp/milan/models"
)

// GalleryRepository, galeri görselleri için veritabanı işlemleri.
type GalleryRepository interface {
	// List, yeniden eskiye.
	List(ctx context.Context) ([]models.GalleryImage, error)
	// ListShowcase, vitrindeki görselleri sıra numarasına göre döner (en fazla limit).
	ListShowcase(ctx context.Context, limit int) ([]models.GalleryImage, error)
	GetByID(ctx context.Context, id string) (*models.GalleryImage, error)
	Create(ctx context.Context, img *models.GalleryImage) error
	Delete(ctx context.Context, id string) error
	// IncrementLikes, like sayısını tek UPDATE ile artırır ve yeni değeri döner.
	IncrementLikes(ctx context.Context, id string) (int, error)
	// SetShowcaseOrder, tek görselin vitrin sırasını ayarlar (nil = vitrinden çıkar).
	SetShowcaseOrder(ctx context.Context, id string, order *int) error
	// ReplaceShowcaseOrder, tüm vitrin sıralarını temizler ve ids'e 1..n atar.
	// Tek transaction — ya hepsi yazılır ya hiçbiri.
	ReplaceShowcaseOrder(ctx context.Context, ids []string) error
	TotalLikes(ctx context.Context) (int, error)
}
