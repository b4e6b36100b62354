package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// MenuItem, menüdeki bir yemeği temsil eder.
// DB'deki "menu_items" tablosunun Go karşılığı.
type MenuItem struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Price      float64   `json:"price"`
	Category   string    `json:"category"`
	IsVeg      bool      `json:"is_veg"`
	Image      string    `json:"image"`
	IsFeatured bool      `json:"is_featured"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreateMenuItemRequest, yeni yemek ekleme isteği.
// IsVeg pointer'dır — gönderilmezse varsayılan olarak vejetaryen kabul edilir.
type CreateMenuItemRequest struct {
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Category   string  `json:"category"`
	IsVeg      *bool   `json:"is_veg"`
	Image      string  `json:"image"`
	IsFeatured bool    `json:"is_featured"`
}

// Validate, CreateMenuItemRequest'in geçerli olup olmadığını kontrol eder.
func (r *CreateMenuItemRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if err := validateName("dish name", r.Name, 100); err != nil {
		return err
	}
	if r.Price < 0 {
		return fmt.Errorf("price cannot be negative")
	}
	r.Category = strings.TrimSpace(r.Category)
	if r.Category == "" {
		return fmt.Errorf("category is required")
	}
	if utf8.RuneCountInString(r.Category) > 50 {
		return fmt.Errorf("category must be at most 50 characters")
	}
	r.Image = strings.TrimSpace(r.Image)
	return nil
}

// UpdateMenuItemRequest, yemek güncelleme isteği.
// Pointer alanlar — nil ise o alan güncellenmez (partial update).
type UpdateMenuItemRequest struct {
	Name       *string  `json:"name"`
	Price      *float64 `json:"price"`
	Category   *string  `json:"category"`
	IsVeg      *bool    `json:"is_veg"`
	Image      *string  `json:"image"`
	IsFeatured *bool    `json:"is_featured"`
}

// Validate, UpdateMenuItemRequest'in geçerli olup olmadığını kontrol eder.
func (r *UpdateMenuItemRequest) Validate() error {
	if r.Name != nil {
		*r.Name = strings.TrimSpace(*r.Name)
		if err := validateName("dish name", *r.Name, 100); err != nil {
			return err
		}
	}
	if r.Price != nil && *r.Price < 0 {
		return fmt.Errorf("price cannot be negative")
	}
	if r.Category != nil {
		*r.Category = strings.TrimSpace(*r.Category)
		if *r.Category == "" {
			return fmt.Errorf("category is required")
		}
	}
	if r.Image != nil {
		*r.Image = strings.TrimSpace(*r.Image)
	}
	return nil
}

// Apply, request'teki dolu alanları item üzerine yazar.
func (r *UpdateMenuItemRequest) Apply(item *MenuItem) {
	if r.Name != nil {
		item.Name = *r.Name
	}
	if r.Price != nil {
		item.Price = *r.Price
	}
	if r.Category != nil {
		item.Category = *r.Category
	}
	if r.IsVeg != nil {
		item.IsVeg = *r.IsVeg
	}
	if r.Image != nil {
		item.Image = *r.Image
	}
	if r.IsFeatured != nil {
		item.IsFeatured = *r.IsFeatured
	}
}

// MenuHighlight, menü sayfasının üstündeki "öne çıkanlar" kartı.
// Fiyat opsiyonel ve serbest metindir ("₹120 onwards" gibi).
type MenuHighlight struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	Price     *string   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateHighlightRequest, yeni highlight kartı ekleme isteği.
type CreateHighlightRequest struct {
	Name  string  `json:"name"`
	Image string  `json:"image"`
	Price *string `json:"price"`
}

// Validate, CreateHighlightRequest'in geçerli olup olmadığını kontrol eder.
func (r *CreateHighlightRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if err := validateName("highlight name", r.Name, 100); err != nil {
		return err
	}
	r.Image = strings.TrimSpace(r.Image)
	if r.Image == "" {
		return fmt.Errorf("image is required")
	}
	r.Price = trimOptional(r.Price)
	return nil
}

// UpdateHighlightRequest, highlight güncelleme isteği (partial update).
// ClearPrice true ise fiyat NULL yapılır.
type UpdateHighlightRequest struct {
	Name       *string `json:"name"`
	Image      *string `json:"image"`
	Price      *string `json:"price"`
	ClearPrice bool    `json:"clear_price"`
}

// Validate, UpdateHighlightRequest'in geçerli olup olmadığını kontrol eder.
func (r *UpdateHighlightRequest) Validate() error {
	if r.Name != nil {
		*r.Name = strings.TrimSpace(*r.Name)
		if err := validateName("highlight name", *r.Name, 100); err != nil {
			return err
		}
	}
	if r.Image != nil {
		*r.Image = strings.TrimSpace(*r.Image)
		if *r.Image == "" {
			return fmt.Errorf("image cannot be empty")
		}
	}
	if r.Price != nil {
		r.Price = trimOptional(r.Price)
		if r.Price == nil {
			r.ClearPrice = true
		}
	}
	return nil
}

// Apply, request'teki dolu alanları highlight üzerine yazar.
func (r *UpdateHighlightRequest) Apply(h *MenuHighlight) {
	if r.Name != nil {
		h.Name = *r.Name
	}
	if r.Image != nil {
		h.Image = *r.Image
	}
	if r.ClearPrice {
		h.Price = nil
	} else if r.Price != nil {
		h.Price = r.Price
	}
}

// MenuScan, basılı menünün taranmış sayfası.
// Order nil ise sıralamada en sona düşer.
type MenuScan struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Image     string    `json:"image"`
	Order     *int      `json:"order"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateScanRequest, yeni menü taraması ekleme isteği.
type CreateScanRequest struct {
	Title string `json:"title"`
	Image string `json:"image"`
	Order *int   `json:"order"`
}

// Validate, CreateScanRequest'in geçerli olup olmadığını kontrol eder.
func (r *CreateScanRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	if utf8.RuneCountInString(r.Title) > 100 {
		return fmt.Errorf("title must be at most 100 characters")
	}
	r.Image = strings.TrimSpace(r.Image)
	if r.Image == "" {
		return fmt.Errorf("image is required")
	}
	if r.Order != nil && *r.Order < 0 {
		return fmt.Errorf("order cannot be negative")
	}
	return nil
}

// UpdateScanRequest, menü taraması güncelleme isteği (partial update).
type UpdateScanRequest struct {
	Title *string `json:"title"`
	Image *string `json:"image"`
}

// Validate, UpdateScanRequest'in geçerli olup olmadığını kontrol eder.
func (r *UpdateScanRequest) Validate() error {
	if r.Title != nil {
		*r.Title = strings.TrimSpace(*r.Title)
		if utf8.RuneCountInString(*r.Title) > 100 {
			return fmt.Errorf("title must be at most 100 characters")
		}
	}
	if r.Image != nil {
		*r.Image = strings.TrimSpace(*r.Image)
		if *r.Image == "" {
			return fmt.Errorf("image cannot be empty")
		}
	}
	return nil
}

// SetOrderRequest, tek bir kaydın sıra değerini ayarlar.
// Order nil ise sıra temizlenir (NULL).
type SetOrderRequest struct {
	Order *int `json:"order"`
}

// Validate, SetOrderRequest'in geçerli olup olmadığını kontrol eder.
func (r *SetOrderRequest) Validate() error {
	if r.Order != nil && *r.Order < 0 {
		return fmt.Errorf("order cannot be negative")
	}
	return nil
}

// PositionUpdate, batch sıralama güncellemesi için tek bir item.
type PositionUpdate struct {
	ID       string `json:"id"`
	Position int    `json:"position"`
}

// ReorderRequest, sürükle-bırak sonrası yeni sıralama isteği.
// IDs listesi yeni sırayı taşır — ilk eleman 1. sıraya yerleşir.
type ReorderRequest struct {
	IDs []string `json:"ids"`
}

// Validate, ReorderRequest'in geçerli olup olmadığını kontrol eder.
// Boş liste geçerlidir — galeride "vitrini temizle" anlamına gelir.
func (r *ReorderRequest) Validate() error {
	seen := make(map[string]bool, len(r.IDs))
	for _, id := range r.IDs {
		if id == "" {
			return fmt.Errorf("id cannot be empty")
		}
		if seen[id] {
			return fmt.Errorf("duplicate id: %s", id)
		}
		seen[id] = true
	}
	return nil
}

// Positions, IDs listesini 1'den başlayan sıra değerlerine çevirir.
func (r *ReorderRequest) Positions() []PositionUpdate {
	items := make([]PositionUpdate, len(r.IDs))
	for i, id := range r.IDs {
		items[i] = PositionUpdate{ID: id, Position: i + 1}
	}
	return items
}

// trimOptional, opsiyonel string'i trim'ler; boş kalırsa nil döner.
func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// validateName, zorunlu bir isim alanının uzunluğunu kontrol eder.
func validateName(field, value string, max int) error {
	n := utf8.RuneCountInString(value)
	if n < 1 {
		return fmt.Errorf("%s is required", field)
	}
	if n > max {
		return fmt.Errorf("%s must be at most %d characters", field, max)
	}
	return nil
}
