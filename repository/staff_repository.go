package repository

import (
	"context"

	"github.com/akinalp/milan/models"
)

// StaffRepository, personel kayıtları için veritabanı işlemleri.
type StaffRepository interface {
	Create(ctx context.Context, s *models.StaffMember) error
	GetByID(ctx context.Context, id string) (*models.StaffMember, error)
	List(ctx context.Context) ([]models.StaffMember, error)
	Update(ctx context.Context, s *models.StaffMember) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// UdharRepository, veresiye defteri için veritabanı işlemleri.
type UdharRepository interface {
	// Create, kaydı her zaman ödenmemiş olarak açar.
	Create(ctx context.Context, rec *models.UdharRecord) error
	GetByID(ctx context.Context, id string) (*models.UdharRecord, error)
	List(ctx context.Context) ([]models.UdharRecord, error)
	SetPaid(ctx context.Context, id string, paid bool) error
	Delete(ctx context.Context, id string) error
	// Summary, ödenmemiş toplam tutar ve kayıt sayıları.
	Summary(ctx context.Context) (*models.UdharSummary, error)
}

// StockRepository, mutfak stok kalemleri için veritabanı işlemleri.
type StockRepository interface {
	Create(ctx context.Context, item *models.StockItem) error
	GetByID(ctx context.Context, id string) (*models.StockItem, error)
	// List, isme göre alfabetik.
	List(ctx context.Context) ([]models.StockItem, error)
	Update(ctx context.Context, item *models.StockItem) error
	// UpdateQuantity, miktarı yazar ve updated_at'i yeniler. Güncel kaydı döner.
	UpdateQuantity(ctx context.Context, id string, quantity float64) (*models.StockItem, error)
	Delete(ctx context.Context, id string) error
	// ListLow, quantity <= min_threshold olan kalemler.
	ListLow(ctx context.Context) ([]models.StockItem, error)
}
