package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/akinalp/milan/models"
	"github.com/akinalp/milan/pkg"
	"github.com/akinalp/milan/repository"
)

// UdharService, veresiye defteri.
type UdharService interface {
	// List, search boş değilse müşteri adında (büyük/küçük harf duyarsız)
	// veya telefonda geçen kayıtları döner.
	List(ctx context.Context, search string) ([]models.UdharRecord, error)
	Create(ctx context.Context, req *models.CreateUdharRequest) (*models.UdharRecord, error)
	SetPaid(ctx context.Context, id string, paid bool) (*models.UdharRecord, error)
	TogglePaid(ctx context.Context, id string) (*models.UdharRecord, error)
	Delete(ctx context.Context, id string) error
	Summary(ctx context.Context) (*models.UdharSummary, error)
}

type udharService struct {
	repo repository.UdharRepository
}

// NewUdharService, constructor.
func NewUdharService(repo repository.UdharRepository) UdharService {
	return &udharService{repo: repo}
}

func (s *udharService) List(ctx context.Context, search string) ([]models.UdharRecord, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return SearchUdhar(records, search), nil
}

func (s *udharService) Create(ctx context.Context, req *models.CreateUdharRequest) (*models.UdharRecord, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	rec := &models.UdharRecord{
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Amount:       req.Amount,
		Description:  req.Description,
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to create udhar record: %w", err)
	}
	return rec, nil
}

func (s *udharService) SetPaid(ctx context.Context, id string, paid bool) (*models.UdharRecord, error) {
	if err := s.repo.SetPaid(ctx, id, paid); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *udharService) TogglePaid(ctx context.Context, id string) (*models.UdharRecord, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.SetPaid(ctx, id, !rec.IsPaid); err != nil {
		return nil, err
	}
	rec.IsPaid = !rec.IsPaid
	return rec, nil
}

func (s *udharService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *udharService) Summary(ctx context.Context) (*models.UdharSummary, error) {
	return s.repo.Summary(ctx)
}

// SearchUdhar, isim (büyük/küçük harf duyarsız) veya telefon eşleşmesiyle süzer.
func SearchUdhar(records []models.UdharRecord, search string) []models.UdharRecord {
	search = strings.TrimSpace(search)
	if search == "" {
		return records
	}
	lower := strings.ToLower(search)

	out := []models.UdharRecord{}
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.CustomerName), lower) || strings.Contains(r.Phone, search) {
			out = append(out, r)
		}
	}
	return out
}
