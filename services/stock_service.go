package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/akinalp/milan/models"
	"github.com/akinalp/milan/pkg"
	"github.com/akinalp/milan/repository"
)

// StockService, mutfak stok takibi.
type StockService interface {
	// List, search boş değilse isimde (büyük/küçük harf duyarsız) geçen kalemler.
	List(ctx context.Context, search string) ([]models.StockItem, error)
	Create(ctx context.Context, req *models.CreateStockRequest) (*models.StockItem, error)
	Update(ctx context.Context, id string, req *models.UpdateStockRequest) (*models.StockItem, error)
	UpdateQuantity(ctx context.Context, id string, req *models.UpdateQuantityRequest) (*models.StockItem, error)
	Delete(ctx context.Context, id string) error
	LowStock(ctx context.Context) ([]models.StockItem, error)
}

type stockService struct {
	repo repository.StockRepository
}

// NewStockService, constructor.
func NewStockService(repo repository.StockRepository) StockService {
	return &stockService{repo: repo}
}

func (s *stockService) List(ctx context.Context, search string) ([]models.StockItem, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	query := strings.ToLower(strings.TrimSpace(search))
	if query == "" {
		return items, nil
	}
	out := []models.StockItem{}
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Name), query) {
			out = append(out, it)
		}
	}
	return out, nil
}

func (s *stockService) Create(ctx context.Context, req *models.CreateStockRequest) (*models.StockItem, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	item := &models.StockItem{
		Name:         req.Name,
		Quantity:     req.Quantity,
		Unit:         req.Unit,
		MinThreshold: *req.MinThreshold,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create stock item: %w", err)
	}
	return item, nil
}

func (s *stockService) Update(ctx context.Context, id string, req *models.UpdateStockRequest) (*models.StockItem, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.Apply(item)
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *stockService) UpdateQuantity(ctx context.Context, id string, req *models.UpdateQuantityRequest) (*models.StockItem, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}
	return s.repo.UpdateQuantity(ctx, id, req.Quantity)
}

func (s *stockService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *stockService) LowStock(ctx context.Context) ([]models.StockItem, error) {
	return s.repo.ListLow(ctx)
}
