package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/akinalp/milan/models"
	"github.com/akinalp/milan/pkg"
	"github.com/akinalp/milan/pkg/objectstore"
	"github.com/akinalp/milan/repository"
)

// ScanService, basılı menü taramaları.
type ScanService interface {
	List(ctx context.Context) ([]models.MenuScan, error)
	Create(ctx context.Context, req *models.CreateScanRequest) (*models.MenuScan, error)
	Update(ctx context.Context, id string, req *models.UpdateScanRequest) (*models.MenuScan, error)
	SetOrder(ctx context.Context, id string, req *models.SetOrderRequest) error
	// Reorder, ids sırasına göre 1..n atar (tek transaction).
	Reorder(ctx context.Context, req *models.ReorderRequest) ([]models.MenuScan, error)
	Delete(ctx context.Context, id string) error
}

type scanService struct {
	repo   repository.ScanRepository
	images imageCleaner
}

// NewScanService, constructor.
func NewScanService(repo repository.ScanRepository, store objectstore.Store, logger *zap.Logger) ScanService {
	return &scanService{
		repo:   repo,
		images: newImageCleaner(store, logger.Named("scan")),
	}
}

func (s *scanService) List(ctx context.Context) ([]models.MenuScan, error) {
	return s.repo.List(ctx)
}

func (s *scanService) Create(ctx context.Context, req *models.CreateScanRequest) (*models.MenuScan, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	scan := &models.MenuScan{Title: req.Title, Image: req.Image, Order: req.Order}
	if err := s.repo.Create(ctx, scan); err != nil {
		return nil, fmt.Errorf("failed to create menu scan: %w", err)
	}
	return scan, nil
}

func (s *scanService) Update(ctx context.Context, id string, req *models.UpdateScanRequest) (*models.MenuScan, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	scan, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	oldImage := scan.Image

	if req.Title != nil {
		scan.Title = *req.Title
	}
	if req.Image != nil {
		scan.Image = *req.Image
	}
	if err := s.repo.Update(ctx, scan); err != nil {
		return nil, err
	}

	s.images.replaced(ctx, oldImage, scan.Image)
	return scan, nil
}

func (s *scanService) SetOrder(ctx context.Context, id string, req *models.SetOrderRequest) error {
	if err := req.Validate(); err != nil {
		return fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}
	return s.repo.UpdateOrder(ctx, id, req.Order)
}

func (s *scanService) Reorder(ctx context.Context, req *models.ReorderRequest) ([]models.MenuScan, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}
	if len(req.IDs) == 0 {
		return nil, fmt.Errorf("%w: ids cannot be empty", pkg.ErrBadRequest)
	}

	if err := s.repo.UpdateOrders(ctx, req.Positions()); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}

func (s *scanService) Delete(ctx context.Context, id string) error {
	scan, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.images.remove(ctx, scan.Image)
	return nil
}
