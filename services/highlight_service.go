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

// HighlightService, menü sayfası öne çıkan kartları.
type HighlightService interface {
	List(ctx context.Context) ([]models.MenuHighlight, error)
	Create(ctx context.Context, req *models.CreateHighlightRequest) (*models.MenuHighlight, error)
	Update(ctx context.Context, id string, req *models.UpdateHighlightRequest) (*models.MenuHighlight, error)
	Delete(ctx context.Context, id string) error
}

type highlightService struct {
	repo   repository.HighlightRepository
	images imageCleaner
}

// NewHighlightService, constructor.
func NewHighlightService(repo repository.HighlightRepository, store objectstore.Store, logger *zap.Logger) HighlightService {
	return &highlightService{
		repo:   repo,
		images: newImageCleaner(store, logger.Named("highlight")),
	}
}

func (s *highlightService) List(ctx context.Context) ([]models.MenuHighlight, error) {
	return s.repo.List(ctx)
}

func (s *highlightService) Create(ctx context.Context, req *models.CreateHighlightRequest) (*models.MenuHighlight, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	h := &models.MenuHighlight{Name: req.Name, Image: req.Image, Price: req.Price}
	if err := s.repo.Create(ctx, h); err != nil {
		return nil, fmt.Errorf("failed to create highlight: %w", err)
	}
	return h, nil
}

func (s *highlightService) Update(ctx context.Context, id string, req *models.UpdateHighlightRequest) (*models.MenuHighlight, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	h, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	oldImage := h.Image

	req.Apply(h)
	if err := s.repo.Update(ctx, h); err != nil {
		return nil, err
	}

	s.images.replaced(ctx, oldImage, h.Image)
	return h, nil
}

func (s *highlightService) Delete(ctx context.Context, id string) error {
	h, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.images.remove(ctx, h.Image)
	return nil
}
