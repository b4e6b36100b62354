package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// ShowcaseLimit, ana sayfa vitrininde gösterilen en fazla galeri görseli.
const ShowcaseLimit = 5

// GalleryImage, galerideki bir görsel.
//
// ShowcaseOrder nil değilse görsel ana sayfa vitrinindedir;
// değer vitrindeki sırasıdır (1 = ilk).
type GalleryImage struct {
	ID            string    `json:"id"`
	URL           string    `json:"url"`
	Alt           string    `json:"alt"`
	Likes         int       `json:"likes"`
	ShowcaseOrder *int      `json:"showcase_order"`
	CreatedAt     time.Time `json:"created_at"`
}

// InShowcase, görsel vitrinde mi?
func (g *GalleryImage) InShowcase() bool {
	return g.ShowcaseOrder != nil
}

// AddGalleryImageRequest, galeriye görsel ekleme isteği.
type AddGalleryImageRequest struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// Validate, AddGalleryImageRequest'in geçerli olup olmadığını kontrol eder.
func (r *AddGalleryImageRequest) Validate() error {
	r.URL = strings.TrimSpace(r.URL)
	if r.URL == "" {
		return fmt.Errorf("url is required")
	}
	r.Alt = strings.TrimSpace(r.Alt)
	if utf8.RuneCountInString(r.Alt) > 200 {
		return fmt.Errorf("alt text must be at most 200 characters")
	}
	return nil
}

// LikeResult, like işleminin sonucu — sunucunun onayladığı güncel sayı.
type LikeResult struct {
	ID    string `json:"id"`
	Likes int    `json:"likes"`
}
