package services

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/akinalp/milan/models"
	"github.com/akinalp/milan/pkg"
	"github.com/akinalp/milan/pkg/cache"
	"github.com/akinalp/milan/pkg/metrics"
	"github.com/akinalp/milan/pkg/objectstore"
	"github.com/akinalp/milan/repository"
	"github.com/akinalp/milan/ws"
)

// GalleryService, galeri ve ana sayfa vitrini.
type GalleryService interface {
	List(ctx context.Context) ([]models.GalleryImage, error)
	// AdminList, önce vitrindekiler (sıraya göre), sonra diğerleri.
	AdminList(ctx context.Context) ([]models.GalleryImage, error)
	// Showcase, vitrindeki en fazla 5 görsel; vitrin boşsa galerinin ilk 5'i.
	Showcase(ctx context.Context) ([]models.GalleryImage, error)
	Add(ctx context.Context, req *models.AddGalleryImageRequest) (*models.GalleryImage, error)
	Delete(ctx context.Context, id string) error
	// Like, görselin like sayısını artırır. Aynı istemci aynı görseli
	// 24 saat içinde tekrar like'larsa sayı artmaz, güncel değer döner.
	Like(ctx context.Context, id, clientKey string) (*models.LikeResult, error)
	SetShowcaseOrder(ctx context.Context, id string, req *models.SetOrderRequest) error
	// SaveOrder, ids sırasıyla 1..n atar; listede olmayanlar vitrinden çıkar.
	SaveOrder(ctx context.Context, req *models.ReorderRequest) ([]models.GalleryImage, error)
}

type galleryService struct {
	repo    repository.GalleryRepository
	likes   *cache.TTLCache[string, struct{}]
	hub     ws.Publisher
	metrics *metrics.Metrics
	images  imageCleaner
}

// NewGalleryService, constructor.
// likes, "clientKey:imageID" key'lerini tutan dedupe cache'idir (TTL 24 saat).
func NewGalleryService(
	repo repository.GalleryRepository,
	likes *cache.TTLCache[string, struct{}],
	store objectstore.Store,
	hub ws.Publisher,
	m *metrics.Metrics,
	logger *zap.Logger,
) GalleryService {
	return &galleryService{
		repo:    repo,
		likes:   likes,
		hub:     hub,
		metrics: m,
		images:  newImageCleaner(store, logger.Named("gallery")),
	}
}

func (s *galleryService) List(ctx context.Context) ([]models.GalleryImage, error) {
	return s.repo.List(ctx)
}

func (s *galleryService) AdminList(ctx context.Context) ([]models.GalleryImage, error) {
	images, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return ShowcaseFirst(images), nil
}

func (s *galleryService) Showcase(ctx context.Context) ([]models.GalleryImage, error) {
	ranked, err := s.repo.ListShowcase(ctx, models.ShowcaseLimit)
	if err != nil {
		return nil, err
	}
	if len(ranked) > 0 {
		return ranked, nil
	}

	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) > models.ShowcaseLimit {
		all = all[:models.ShowcaseLimit]
	}
	return all, nil
}

func (s *galleryService) Add(ctx context.Context, req *models.AddGalleryImageRequest) (*models.GalleryImage, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	img := &models.GalleryImage{URL: req.URL, Alt: req.Alt}
	if err := s.repo.Create(ctx, img); err != nil {
		return nil, fmt.Errorf("failed to add gallery image: %w", err)
	}
	return img, nil
}

func (s *galleryService) Delete(ctx context.Context, id string) error {
	img, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if s.likes != nil {
		suffix := ":" + id
		s.likes.DeleteFunc(func(key string) bool { return strings.HasSuffix(key, suffix) })
	}
	s.images.remove(ctx, img.URL)
	return nil
}

func (s *galleryService) Like(ctx context.Context, id, clientKey string) (*models.LikeResult, error) {
	key := clientKey + ":" + id
	if s.likes != nil && clientKey != "" && !s.likes.SetIfAbsent(key, struct{}{}) {
		img, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return &models.LikeResult{ID: id, Likes: img.Likes}, nil
	}

	likes, err := s.repo.IncrementLikes(ctx, id)
	if err != nil {
		// Yazılamayan like tekrar denenebilsin.
		if s.likes != nil {
			s.likes.Delete(key)
		}
		return nil, err
	}

	s.metrics.GalleryLiked()
	s.hub.Publish(ws.Event{Op: ws.OpGalleryLike, Data: ws.GalleryLikeData{ID: id, Likes: likes}})
	return &models.LikeResult{ID: id, Likes: likes}, nil
}

func (s *galleryService) SetShowcaseOrder(ctx context.Context, id string, req *models.SetOrderRequest) error {
	if err := req.Validate(); err != nil {
		return fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}
	return s.repo.SetShowcaseOrder(ctx, id, req.Order)
}

func (s *galleryService) SaveOrder(ctx context.Context, req *models.ReorderRequest) ([]models.GalleryImage, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	if err := s.repo.ReplaceShowcaseOrder(ctx, req.IDs); err != nil {
		return nil, err
	}

	s.hub.Publish(ws.Event{Op: ws.OpGalleryReorder, Data: ws.GalleryReorderData{IDs: req.IDs}})
	return s.AdminList(ctx)
}

// ShowcaseFirst, vitrindeki görselleri sıra numarasına göre başa alır;
// vitrinde olmayanlar orijinal sıralarını korur. Girdi değişmez.
func ShowcaseFirst(images []models.GalleryImage) []models.GalleryImage {
	out := slices.Clone(images)
	slices.SortStableFunc(out, func(a, b models.GalleryImage) int {
		switch {
		case a.InShowcase() && b.InShowcase():
			return *a.ShowcaseOrder - *b.ShowcaseOrder
		case a.InShowcase():
			return -1
		case b.InShowcase():
			return 1
		}
		return 0
	})
	return out
}
