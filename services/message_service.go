package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/akinalp/milan/models"
	"github.com/akinalp/milan/pkg"
	"github.com/akinalp/milan/pkg/email"
	"github.com/akinalp/milan/pkg/metrics"
	"github.com/akinalp/milan/repository"
	"github.com/akinalp/milan/ws"
)

// MessageService, iletişim formu mesajları.
type MessageService interface {
	// Submit, ziyaretçi mesajı: kaydeder, admin paneline ve sahibin email'ine bildirir.
	Submit(ctx context.Context, req *models.CreateMessageRequest) (*models.CustomerMessage, error)
	List(ctx context.Context) ([]models.CustomerMessage, error)
	Delete(ctx context.Context, id string) error
}

type messageService struct {
	repo     repository.MessageRepository
	notifier email.Notifier
	hub      ws.Publisher
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// NewMessageService, constructor.
func NewMessageService(
	repo repository.MessageRepository,
	notifier email.Notifier,
	hub ws.Publisher,
	m *metrics.Metrics,
	logger *zap.Logger,
) MessageService {
	return &messageService{
		repo:     repo,
		notifier: notifier,
		hub:      hub,
		metrics:  m,
		logger:   logger.Named("message"),
	}
}

func (s *messageService) Submit(ctx context.Context, req *models.CreateMessageRequest) (*models.CustomerMessage, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	msg := &models.CustomerMessage{Name: req.Name, Phone: req.Phone, Message: req.Message}
	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	s.metrics.Submitted("message")
	s.hub.Publish(ws.Event{Op: ws.OpMessageCreate, Data: msg})
	notifyAsync(ctx, s.logger, "new_message", func(ctx context.Context) error {
		return s.notifier.NotifyNewMessage(ctx, msg)
	})
	return msg, nil
}

func (s *messageService) List(ctx context.Context) ([]models.CustomerMessage, error) {
	return s.repo.List(ctx)
}

func (s *messageService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
