package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/akinalp/milan/models"
	"github.com/akinalp/milan/pkg"
	"github.com/akinalp/milan/pkg/cache"
	"github.com/akinalp/milan/pkg/objectstore"
	"github.com/akinalp/milan/repository"
)

// SettingsService, iletişim bilgileri ve logo ayarları.
//
// Public sayfalar her istekte bu değerleri okur; ham JSON değerleri kısa
// süreli cache'te tutulur ve her yazmada cache'ten düşülür.
type SettingsService interface {
	GetContact(ctx context.Context) (*models.ContactInfo, error)
	SetContact(ctx context.Context, info *models.ContactInfo) (*models.ContactInfo, error)
	GetLogo(ctx context.Context) (string, error)
	// SetLogo, logoyu değiştirir; eski logo nesnesi depodan silinir. Boş URL logoyu kaldırır.
	SetLogo(ctx context.Context, req *models.SetLogoRequest) (string, error)
}

type settingsService struct {
	repo   repository.SettingRepository
	cache  *cache.TTLCache[string, string]
	images imageCleaner
}

// NewSettingsService, constructor. valueCache nil ise cache kullanılmaz.
func NewSettingsService(
	repo repository.SettingRepository,
	valueCache *cache.TTLCache[string, string],
	store objectstore.Store,
	logger *zap.Logger,
) SettingsService {
	return &settingsService{
		repo:   repo,
		cache:  valueCache,
		images: newImageCleaner(store, logger.Named("settings")),
	}
}

// raw, ayarın JSON değerini döner; kayıt yoksa boş string.
func (s *settingsService) raw(ctx context.Context, key string) (string, error) {
	if s.cache != nil {
		if v, ok := s.cache.Get(key); ok {
			return v, nil
		}
	}

	data, err := s.repo.Get(ctx, key)
	if err != nil && !errors.Is(err, pkg.ErrNotFound) {
		return "", err
	}
	value := string(data)

	if s.cache != nil {
		s.cache.Set(key, value)
	}
	return value, nil
}

func (s *settingsService) put(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode setting %q: %w", key, err)
	}
	if err := s.repo.Upsert(ctx, key, data); err != nil {
		return err
	}
	if s.cache != nil {
		s.cache.Delete(key)
	}
	return nil
}

func (s *settingsService) GetContact(ctx context.Context) (*models.ContactInfo, error) {
	value, err := s.raw(ctx, models.SettingContactInfo)
	if err != nil {
		return nil, err
	}
	info := ParseContactInfo(value)
	return &info, nil
}

func (s *settingsService) SetContact(ctx context.Context, info *models.ContactInfo) (*models.ContactInfo, error) {
	if err := info.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}
	if err := s.put(ctx, models.SettingContactInfo, info); err != nil {
		return nil, err
	}
	return info, nil
}

func (s *settingsService) GetLogo(ctx context.Context) (string, error) {
	value, err := s.raw(ctx, models.SettingLogoURL)
	if err != nil {
		return "", err
	}
	return gjson.Get(value, "url").String(), nil
}

func (s *settingsService) SetLogo(ctx context.Context, req *models.SetLogoRequest) (string, error) {
	url := strings.TrimSpace(req.URL)

	current, err := s.GetLogo(ctx)
	if err != nil {
		return "", err
	}
	if err := s.put(ctx, models.SettingLogoURL, models.LogoSetting{URL: url}); err != nil {
		return "", err
	}

	s.images.replaced(ctx, current, url)
	return url, nil
}

// ParseContactInfo, contact_info ayarının JSON değerini okur.
// Eksik alanlar boş string kalır; eski kayıtlardaki "mapsLink" anahtarı da kabul edilir.
func ParseContactInfo(value string) models.ContactInfo {
	if value == "" || !gjson.Valid(value) {
		return models.ContactInfo{}
	}
	doc := gjson.Parse(value)
	info := models.ContactInfo{
		WhatsApp: doc.Get("whatsapp").String(),
		Phone:    doc.Get("phone").String(),
		Address:  doc.Get("address").String(),
		MapsLink: doc.Get("maps_link").String(),
	}
	if info.MapsLink == "" {
		info.MapsLink = doc.Get("mapsLink").String()
	}
	return info
}
