package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/akinalp/milan/models"
	"github.com/akinalp/milan/pkg"
	"github.com/akinalp/milan/pkg/cart"
	"github.com/akinalp/milan/pkg/metrics"
	"github.com/akinalp/milan/repository"
)

// CartService, ziyaretçi sepeti. Her sepet bir id ile CartStore'da durur;
// her değişiklikten sonra sepet TTL yenilenerek kaydedilir.
//
// id boş veya bulunamazsa yeni bir sepet açılır ve yanıt yeni id'yi taşır.
type CartService interface {
	Get(ctx context.Context, id string) (*cart.Summary, error)
	Add(ctx context.Context, id string, req *models.AddToCartRequest) (*cart.Summary, error)
	Remove(ctx context.Context, id, itemID string) (*cart.Summary, error)
	UpdateQuantity(ctx context.Context, id, itemID string, req *models.CartDeltaRequest) (*cart.Summary, error)
	Clear(ctx context.Context, id string) (*cart.Summary, error)
	Checkout(ctx context.Context, id string) (*models.CheckoutResponse, error)
}

type cartService struct {
	store      repository.CartStore
	menuRepo   repository.MenuRepository
	ttl        time.Duration
	restaurant string
	whatsApp   string
	metrics    *metrics.Metrics
}

// NewCartService, constructor.
func NewCartService(
	store repository.CartStore,
	menuRepo repository.MenuRepository,
	ttl time.Duration,
	restaurant, whatsApp string,
	m *metrics.Metrics,
) CartService {
	return &cartService{
		store:      store,
		menuRepo:   menuRepo,
		ttl:        ttl,
		restaurant: restaurant,
		whatsApp:   whatsApp,
		metrics:    m,
	}
}

// load, sepeti okur. Yoksa yeni id ile boş sepet döner.
func (s *cartService) load(ctx context.Context, id string) (string, *cart.Cart, error) {
	if id == "" {
		return uuid.NewString(), &cart.Cart{}, nil
	}
	c, err := s.store.Load(ctx, id)
	if errors.Is(err, pkg.ErrNotFound) {
		return uuid.NewString(), &cart.Cart{}, nil
	}
	if err != nil {
		return "", nil, fmt.Errorf("failed to load cart: %w", err)
	}
	return id, c, nil
}

// mutate, sepeti yükler, fn ile değiştirir ve kaydeder.
func (s *cartService) mutate(ctx context.Context, id string, fn func(c *cart.Cart) error) (*cart.Summary, error) {
	id, c, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(c); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, id, c, s.ttl); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}
	summary := c.Summarize(id)
	return &summary, nil
}

func (s *cartService) Get(ctx context.Context, id string) (*cart.Summary, error) {
	id, c, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	summary := c.Summarize(id)
	return &summary, nil
}

func (s *cartService) Add(ctx context.Context, id string, req *models.AddToCartRequest) (*cart.Summary, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	// Fiyat ve isim istemciden değil menüden gelir.
	item, err := s.menuRepo.GetByID(ctx, req.MenuItemID)
	if err != nil {
		return nil, err
	}

	return s.mutate(ctx, id, func(c *cart.Cart) error {
		c.Add(cart.Item{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Category: item.Category,
			IsVeg:    item.IsVeg,
			Image:    item.Image,
		})
		return nil
	})
}

func (s *cartService) Remove(ctx context.Context, id, itemID string) (*cart.Summary, error) {
	return s.mutate(ctx, id, func(c *cart.Cart) error {
		c.Remove(itemID)
		return nil
	})
}

func (s *cartService) UpdateQuantity(ctx context.Context, id, itemID string, req *models.CartDeltaRequest) (*cart.Summary, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}
	return s.mutate(ctx, id, func(c *cart.Cart) error {
		c.UpdateQuantity(itemID, req.Delta)
		return nil
	})
}

// Clear, sepeti depodan siler; boş sepet yazılmaz. Aynı id ile gelen
// sonraki istek yeni bir sepet alır.
func (s *cartService) Clear(ctx context.Context, id string) (*cart.Summary, error) {
	if id == "" {
		id = uuid.NewString()
	} else if err := s.store.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to clear cart: %w", err)
	}
	summary := (&cart.Cart{}).Summarize(id)
	return &summary, nil
}

// Checkout, WhatsApp sipariş mesajını ve bağlantısını üretir.
// Sepet boşaltılmaz; sipariş WhatsApp tarafında onaylanır.
func (s *cartService) Checkout(ctx context.Context, id string) (*models.CheckoutResponse, error) {
	_, c, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.IsEmpty() {
		return nil, fmt.Errorf("%w: cart is empty", pkg.ErrBadRequest)
	}

	msg := c.OrderMessage(s.restaurant)
	s.metrics.CheckedOut()
	return &models.CheckoutResponse{
		Message: msg,
		URL:     cart.WhatsAppURL(s.whatsApp, msg),
	}, nil
}
