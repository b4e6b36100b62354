package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/akinalp/milan/models"
	"github.com/akinalp/milan/pkg"
	"github.com/akinalp/milan/pkg/email"
	"github.com/akinalp/milan/pkg/metrics"
	"github.com/akinalp/milan/pkg/objectstore"
	"github.com/akinalp/milan/repository"
	"github.com/akinalp/milan/ws"
)

// ReviewService, yorum iş mantığı interface'i.
type ReviewService interface {
	// ListApproved, public sitede gösterilen yorumlar.
	ListApproved(ctx context.Context) ([]models.Review, error)
	// Feed, onaylı yorumlar üzerinde filtre/sıralama + sayaçlar.
	Feed(ctx context.Context, q FeedQuery) (*models.ReviewFeed, error)
	// ListAll, admin moderasyon listesi (onaysızlar dahil).
	ListAll(ctx context.Context) ([]models.Review, error)
	// Submit, ziyaretçi yorumu: her zaman onay bekler, kaynak Website.
	Submit(ctx context.Context, req *models.CreateReviewRequest) (*models.Review, error)
	// Create, admin'in elle eklediği yorum (ör. Google'dan aktarılan).
	Create(ctx context.Context, req *models.CreateReviewRequest) (*models.Review, error)
	Update(ctx context.Context, id string, req *models.UpdateReviewRequest) (*models.Review, error)
	SetApproved(ctx context.Context, id string, approved bool) (*models.Review, error)
	ToggleApproved(ctx context.Context, id string) (*models.Review, error)
	Reply(ctx context.Context, id string, req *models.ReplyReviewRequest) (*models.Review, error)
	Delete(ctx context.Context, id string) error
}

type reviewService struct {
	repo     repository.ReviewRepository
	notifier email.Notifier
	hub      ws.Publisher
	metrics  *metrics.Metrics
	store    objectstore.Store
	images   imageCleaner
	logger   *zap.Logger
}

// NewReviewService, constructor.
func NewReviewService(
	repo repository.ReviewRepository,
	store objectstore.Store,
	notifier email.Notifier,
	hub ws.Publisher,
	m *metrics.Metrics,
	logger *zap.Logger,
) ReviewService {
	logger = logger.Named("review")
	return &reviewService{
		repo:     repo,
		notifier: notifier,
		hub:      hub,
		metrics:  m,
		store:    store,
		images:   newImageCleaner(store, logger),
		logger:   logger,
	}
}

func (s *reviewService) ListApproved(ctx context.Context) ([]models.Review, error) {
	return s.repo.ListApproved(ctx)
}

func (s *reviewService) Feed(ctx context.Context, q FeedQuery) (*models.ReviewFeed, error) {
	reviews, err := s.repo.ListApproved(ctx)
	if err != nil {
		return nil, err
	}
	feed := BuildReviewFeed(reviews, q)
	return &feed, nil
}

func (s *reviewService) ListAll(ctx context.Context) ([]models.Review, error) {
	return s.repo.ListAll(ctx)
}

func (s *reviewService) Submit(ctx context.Context, req *models.CreateReviewRequest) (*models.Review, error) {
	req.IsApproved = false
	req.Source = models.ReviewSourceWebsite
	for _, img := range req.Images {
		if img = strings.TrimSpace(img); img != "" && !s.isGuestUpload(img) {
			return nil, fmt.Errorf("%w: review images must be uploaded with the review form", pkg.ErrBadRequest)
		}
	}

	review, err := s.create(ctx, req)
	if err != nil {
		return nil, err
	}

	s.metrics.Submitted("review")
	s.hub.Publish(ws.Event{Op: ws.OpReviewCreate, Data: review})
	notifyAsync(ctx, s.logger, "pending_review", func(ctx context.Context) error {
		return s.notifier.NotifyPendingReview(ctx, review)
	})
	return review, nil
}

func (s *reviewService) Create(ctx context.Context, req *models.CreateReviewRequest) (*models.Review, error) {
	return s.create(ctx, req)
}

func (s *reviewService) create(ctx context.Context, req *models.CreateReviewRequest) (*models.Review, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	images := []string{}
	for _, img := range req.Images {
		if img = strings.TrimSpace(img); img != "" {
			images = append(images, img)
		}
	}

	review := &models.Review{
		UserName:   req.UserName,
		Rating:     req.Rating,
		Content:    req.Content,
		Images:     images,
		Tags:       req.Tags,
		Source:     req.Source,
		IsApproved: req.IsApproved,
	}
	if err := s.repo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return review, nil
}

func (s *reviewService) Update(ctx context.Context, id string, req *models.UpdateReviewRequest) (*models.Review, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	review, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.Apply(review)
	if err := s.repo.Update(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewService) SetApproved(ctx context.Context, id string, approved bool) (*models.Review, error) {
	if err := s.repo.SetApproved(ctx, id, approved); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *reviewService) ToggleApproved(ctx context.Context, id string) (*models.Review, error) {
	review, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.SetApproved(ctx, id, !review.IsApproved); err != nil {
		return nil, err
	}
	review.IsApproved = !review.IsApproved
	return review, nil
}

func (s *reviewService) Reply(ctx context.Context, id string, req *models.ReplyReviewRequest) (*models.Review, error) {
	var response *string
	if text := strings.TrimSpace(req.Response); text != "" {
		if len([]rune(text)) > 1000 {
			return nil, fmt.Errorf("%w: response must be at most 1000 characters", pkg.ErrBadRequest)
		}
		response = &text
	}

	if err := s.repo.SetOwnerResponse(ctx, id, response); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *reviewService) Delete(ctx context.Context, id string) error {
	review, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	// Admin yorumlarına iliştirilmiş site görselleri (logo, menü) silinmez.
	for _, img := range review.Images {
		if s.isGuestUpload(img) {
			s.images.remove(ctx, img)
		}
	}
	return nil
}

// isGuestUpload, URL bu depoda UploadPublic ile oluşturulmuş bir nesne mi?
func (s *reviewService) isGuestUpload(u string) bool {
	return s.store != nil && s.store.Owns(u) && objectstore.IsGuestObject(u)
}
