package repository

import (
	"context"
	"fmt"

	"github.com/akinalp/milan/models"
	"github.com/akinalp/milan/pkg/crypto"
)

// encryptedStaffRepo, Aadhar alanını yazarken şifreleyip okurken çözen decorator.
// Çağıranın gördüğü StaffMember her zaman düz metin taşır.
type encryptedStaffRepo struct {
	inner  StaffRepository
	cipher *crypto.Cipher
}

// NewEncryptedStaffRepo, inner repository'yi Aadhar şifrelemesiyle sarar.
func NewEncryptedStaffRepo(inner StaffRepository, c *crypto.Cipher) StaffRepository {
	return &encryptedStaffRepo{inner: inner, cipher: c}
}

func (r *encryptedStaffRepo) seal(s *models.StaffMember) (*models.StaffMember, error) {
	sealed := *s
	var err error
	sealed.Aadhar, err = r.cipher.Seal(s.Aadhar)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt aadhar: %w", err)
	}
	return &sealed, nil
}

func (r *encryptedStaffRepo) open(s *models.StaffMember) error {
	plain, err := r.cipher.Open(s.Aadhar)
	if err != nil {
		return fmt.Errorf("failed to decrypt aadhar for staff %s: %w", s.ID, err)
	}
	s.Aadhar = plain
	return nil
}

func (r *encryptedStaffRepo) Create(ctx context.Context, s *models.StaffMember) error {
	sealed, err := r.seal(s)
	if err != nil {
		return err
	}
	if err := r.inner.Create(ctx, sealed); err != nil {
		return err
	}
	s.ID, s.CreatedAt = sealed.ID, sealed.CreatedAt
	return nil
}

func (r *encryptedStaffRepo) GetByID(ctx context.Context, id string) (*models.StaffMember, error) {
	s, err := r.inner.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.open(s); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *encryptedStaffRepo) List(ctx context.Context) ([]models.StaffMember, error) {
	list, err := r.inner.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if err := r.open(&list[i]); err != nil {
			return nil, err
		}
	}
	return list, nil
}

func (r *encryptedStaffRepo) Update(ctx context.Context, s *models.StaffMember) error {
	sealed, err := r.seal(s)
	if err != nil {
		return err
	}
	return r.inner.Update(ctx, sealed)
}

func (r *encryptedStaffRepo) Delete(ctx context.Context, id string) error {
	return r.inner.Delete(ctx, id)
}

func (r *encryptedStaffRepo) Count(ctx context.Context) (int, error) {
	return r.inner.Count(ctx)
}
