package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/akinalp/milan/models"
	"github.com/akinalp/milan/repository"
)

// DashboardService, admin ana sayfası sayaçları.
type DashboardService interface {
	Stats(ctx context.Context) (*models.DashboardStats, error)
}

type dashboardService struct {
	menuRepo    repository.MenuRepository
	reviewRepo  repository.ReviewRepository
	messageRepo repository.MessageRepository
	staffRepo   repository.StaffRepository
	galleryRepo repository.GalleryRepository
}

// NewDashboardService, constructor.
func NewDashboardService(
	menuRepo repository.MenuRepository,
	reviewRepo repository.ReviewRepository,
	messageRepo repository.MessageRepository,
	staffRepo repository.StaffRepository,
	galleryRepo repository.GalleryRepository,
) DashboardService {
	return &dashboardService{
		menuRepo:    menuRepo,
		reviewRepo:  reviewRepo,
		messageRepo: messageRepo,
		staffRepo:   staffRepo,
		galleryRepo: galleryRepo,
	}
}

// Stats, beş sayacı paralel okur. Biri hata verirse hepsi iptal edilir.
func (s *dashboardService) Stats(ctx context.Context) (*models.DashboardStats, error) {
	var stats models.DashboardStats
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		stats.Dishes, err = s.menuRepo.Count(ctx)
		return err
	})
	g.Go(func() (err error) {
		stats.Reviews, err = s.reviewRepo.CountApproved(ctx)
		return err
	})
	g.Go(func() (err error) {
		stats.Messages, err = s.messageRepo.Count(ctx)
		return err
	})
	g.Go(func() (err error) {
		stats.Staff, err = s.staffRepo.Count(ctx)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalLikes, err = s.galleryRepo.TotalLikes(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &stats, nil
}
