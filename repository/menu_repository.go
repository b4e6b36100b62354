package repository

import (
	"context"

	"github.com/akinalp/milan/models"
)

// MenuRepository, menü yemekleri için veritabanı işlemleri.
type MenuRepository interface {
	Create(ctx context.Context, item *models.MenuItem) error
	GetByID(ctx context.Context, id string) (*models.MenuItem, error)
	// List, en yeni eklenen önce.
	List(ctx context.Context) ([]models.MenuItem, error)
	Update(ctx context.Context, item *models.MenuItem) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// HighlightRepository, menü highlight kartları için veritabanı işlemleri.
type HighlightRepository interface {
	Create(ctx context.Context, h *models.MenuHighlight) error
	GetByID(ctx context.Context, id string) (*models.MenuHighlight, error)
	// List, eklenme sırasıyla (eskiden yeniye).
	List(ctx context.Context) ([]models.MenuHighlight, error)
	Update(ctx context.Context, h *models.MenuHighlight) error
	Delete(ctx context.Context, id string) error
}

// ScanRepository, taranmış menü sayfaları için veritabanı işlemleri.
type ScanRepository interface {
	Create(ctx context.Context, scan *models.MenuScan) error
	GetByID(ctx context.Context, id string) (*models.MenuScan, error)
	// List, display_order'a göre artan; sırası olmayanlar en sonda.
	List(ctx context.Context) ([]models.MenuScan, error)
	Update(ctx context.Context, scan *models.MenuScan) error
	UpdateOrder(ctx context.Context, id string, order *int) error
	// UpdateOrders, tüm sıraları tek transaction'da yazar.
	UpdateOrders(ctx context.Context, items []models.PositionUpdate) error
	Delete(ctx context.Context, id string) error
}
