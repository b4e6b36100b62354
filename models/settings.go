package models

import (
	"fmt"
	"strings"
	"time"
)

// Settings tablosundaki sabit key'ler.
// Değerler JSON olarak saklanır.
const (
	SettingContactInfo = "contact_info" // ContactInfo
	SettingLogoURL     = "logo_url"     // {"url": "..."}
)

// ContactInfo, restoranın iletişim bilgileri.
// Kayıt yoksa tüm alanlar boş string döner.
type ContactInfo struct {
	WhatsApp string `json:"whatsapp"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	MapsLink string `json:"maps_link"`
}

// Validate, ContactInfo alanlarını trim'ler ve maps linkini kontrol eder.
func (c *ContactInfo) Validate() error {
	c.WhatsApp = strings.TrimSpace(c.WhatsApp)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Address = strings.TrimSpace(c.Address)
	c.MapsLink = strings.TrimSpace(c.MapsLink)
	if c.MapsLink != "" && !strings.HasPrefix(c.MapsLink, "http://") && !strings.HasPrefix(c.MapsLink, "https://") {
		return fmt.Errorf("maps link must be an http(s) URL")
	}
	return nil
}

// LogoSetting, logo ayarının JSON şekli.
type LogoSetting struct {
	URL string `json:"url"`
}

// SetLogoRequest, logo değiştirme isteği. Boş URL logoyu kaldırır.
type SetLogoRequest struct {
	URL string `json:"url"`
}

// SlideImage, hero veya makrana carousel'indeki tek bir görsel.
// İki tablo aynı şekle sahiptir (hero_images, makrana_images).
type SlideImage struct {
	ID           string    `json:"id"`
	ImageURL     string    `json:"image_url"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

// AddSlideRequest, carousel'e görsel ekleme isteği.
type AddSlideRequest struct {
	ImageURL string `json:"image_url"`
}

// Validate, AddSlideRequest'in geçerli olup olmadığını kontrol eder.
func (r *AddSlideRequest) Validate() error {
	r.ImageURL = strings.TrimSpace(r.ImageURL)
	if r.ImageURL == "" {
		return fmt.Errorf("image_url is required")
	}
	return nil
}
