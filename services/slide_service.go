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

// SlideService, ana sayfa carousel'i (hero veya makrana).
// Her carousel için ayrı bir instance oluşturulur.
type SlideService interface {
	List(ctx context.Context) ([]models.SlideImage, error)
	// URLs, sadece görsel adresleri (public sayfalar için).
	URLs(ctx context.Context) ([]string, error)
	Add(ctx context.Context, req *models.AddSlideRequest) (*models.SlideImage, error)
	Delete(ctx context.Context, id string) error
}

type slideService struct {
	repo   repository.SlideRepository
	images imageCleaner
}

// NewSlideService, constructor. name log'larda carousel'i ayırt eder.
func NewSlideService(repo repository.SlideRepository, store objectstore.Store, name string, logger *zap.Logger) SlideService {
	return &slideService{
		repo:   repo,
		images: newImageCleaner(store, logger.Named(name)),
	}
}

func (s *slideService) List(ctx context.Context) ([]models.SlideImage, error) {
	return s.repo.List(ctx)
}

func (s *slideService) URLs(ctx context.Context) ([]string, error) {
	slides, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	urls := make([]string, len(slides))
	for i, sl := range slides {
		urls[i] = sl.ImageURL
	}
	return urls, nil
}

func (s *slideService) Add(ctx context.Context, req *models.AddSlideRequest) (*models.SlideImage, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	slide := &models.SlideImage{ImageURL: req.ImageURL}
	if err := s.repo.Create(ctx, slide); err != nil {
		return nil, fmt.Errorf("failed to add slide: %w", err)
	}
	return slide, nil
}

func (s *slideService) Delete(ctx context.Context, id string) error {
	slide, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.images.remove(ctx, slide.ImageURL)
	return nil
}
