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

// StaffService, personel listesi.
type StaffService interface {
	List(ctx context.Context) ([]models.StaffMember, error)
	Get(ctx context.Context, id string) (*models.StaffMember, error)
	Create(ctx context.Context, req *models.CreateStaffRequest) (*models.StaffMember, error)
	Update(ctx context.Context, id string, req *models.UpdateStaffRequest) (*models.StaffMember, error)
	Delete(ctx context.Context, id string) error
}

type staffService struct {
	repo   repository.StaffRepository
	images imageCleaner
}

// NewStaffService, constructor.
func NewStaffService(repo repository.StaffRepository, store objectstore.Store, logger *zap.Logger) StaffService {
	return &staffService{
		repo:   repo,
		images: newImageCleaner(store, logger.Named("staff")),
	}
}

func (s *staffService) List(ctx context.Context) ([]models.StaffMember, error) {
	return s.repo.List(ctx)
}

func (s *staffService) Get(ctx context.Context, id string) (*models.StaffMember, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *staffService) Create(ctx context.Context, req *models.CreateStaffRequest) (*models.StaffMember, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	member := &models.StaffMember{
		Name:          req.Name,
		Role:          req.Role,
		Phone:         req.Phone,
		Email:         req.Email,
		Aadhar:        req.Aadhar,
		DateOfJoining: req.DateOfJoining,
		Image:         req.Image,
	}
	if err := s.repo.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to create staff member: %w", err)
	}
	return member, nil
}

func (s *staffService) Update(ctx context.Context, id string, req *models.UpdateStaffRequest) (*models.StaffMember, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	member, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	oldImage := member.Image

	req.Apply(member)
	if err := s.repo.Update(ctx, member); err != nil {
		return nil, err
	}

	s.images.replaced(ctx, oldImage, member.Image)
	return member, nil
}

func (s *staffService) Delete(ctx context.Context, id string) error {
	member, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.images.remove(ctx, member.Image)
	return nil
}
