package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// ReviewSource, yorumun nereden geldiğini belirtir.
type ReviewSource string

const (
	ReviewSourceGoogle  ReviewSource = "Google"
	ReviewSourceWebsite ReviewSource = "Website"
)

// Review, bir müşteri yorumunu temsil eder.
// DB'de "reviews" tablosu: customer_name → UserName, comment → Content.
//
// Tek bir resim saklanır (image_url) ama API'de Images dizisi olarak döner —
// feed skorlaması resim sayısı üzerinden yapılır.
type Review struct {
	ID            string       `json:"id"`
	UserName      string       `json:"user_name"`
	Rating        int          `json:"rating"`
	Date          time.Time    `json:"date"`
	Content       string       `json:"content"`
	Images        []string     `json:"images"`
	Tags          []string     `json:"tags"`
	OwnerResponse *string      `json:"owner_response"`
	Likes         int          `json:"likes"`
	Source        ReviewSource `json:"source"`
	IsApproved    bool         `json:"is_approved"`
}

// ImageURL, saklanan tek resmin URL'ini döner (yoksa boş string).
func (r *Review) ImageURL() string {
	if len(r.Images) == 0 {
		return ""
	}
	return r.Images[0]
}

// CreateReviewRequest, yorum gönderme isteği.
//
// Public formdan gelen isteklerde IsApproved ve Source handler tarafından
// sıfırlanır — onay yalnızca admin'in yetkisindedir.
type CreateReviewRequest struct {
	UserName   string       `json:"user_name"`
	Rating     int          `json:"rating"`
	Content    string       `json:"content"`
	Images     []string     `json:"images"`
	Tags       []string     `json:"tags"`
	Source     ReviewSource `json:"source"`
	IsApproved bool         `json:"is_approved"`
}

// Validate, CreateReviewRequest'in geçerli olup olmadığını kontrol eder.
func (r *CreateReviewRequest) Validate() error {
	r.UserName = strings.TrimSpace(r.UserName)
	if err := validateName("name", r.UserName, 100); err != nil {
		return err
	}
	if r.Rating < 1 || r.Rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5")
	}
	r.Content = strings.TrimSpace(r.Content)
	if r.Content == "" {
		return fmt.Errorf("review content is required")
	}
	if utf8.RuneCountInString(r.Content) > 2000 {
		return fmt.Errorf("review content must be at most 2000 characters")
	}
	if len(r.Images) > 1 {
		return fmt.Errorf("at most one image can be attached")
	}
	if r.Source == "" {
		r.Source = ReviewSourceWebsite
	}
	if r.Source != ReviewSourceGoogle && r.Source != ReviewSourceWebsite {
		return fmt.Errorf("source must be 'Google' or 'Website'")
	}
	r.Tags = cleanTags(r.Tags)
	return nil
}

// UpdateReviewRequest, admin'in yorum düzenleme isteği (partial update).
type UpdateReviewRequest struct {
	UserName      *string  `json:"user_name"`
	Rating        *int     `json:"rating"`
	Content       *string  `json:"content"`
	Tags          []string `json:"tags"`
	OwnerResponse *string  `json:"owner_response"`
	IsApproved    *bool    `json:"is_approved"`
}

// Validate, UpdateReviewRequest'in geçerli olup olmadığını kontrol eder.
func (r *UpdateReviewRequest) Validate() error {
	if r.UserName != nil {
		*r.UserName = strings.TrimSpace(*r.UserName)
		if err := validateName("name", *r.UserName, 100); err != nil {
			return err
		}
	}
	if r.Rating != nil && (*r.Rating < 1 || *r.Rating > 5) {
		return fmt.Errorf("rating must be between 1 and 5")
	}
	if r.Content != nil {
		*r.Content = strings.TrimSpace(*r.Content)
		if *r.Content == "" {
			return fmt.Errorf("review content is required")
		}
	}
	if r.OwnerResponse != nil {
		*r.OwnerResponse = strings.TrimSpace(*r.OwnerResponse)
	}
	if r.Tags != nil {
		r.Tags = cleanTags(r.Tags)
	}
	return nil
}

// Apply, request'teki dolu alanları review üzerine yazar.
// Boş owner_response cevabı kaldırır.
func (r *UpdateReviewRequest) Apply(rev *Review) {
	if r.UserName != nil {
		rev.UserName = *r.UserName
	}
	if r.Rating != nil {
		rev.Rating = *r.Rating
	}
	if r.Content != nil {
		rev.Content = *r.Content
	}
	if r.Tags != nil {
		rev.Tags = r.Tags
	}
	if r.OwnerResponse != nil {
		if *r.OwnerResponse == "" {
			rev.OwnerResponse = nil
		} else {
			resp := *r.OwnerResponse
			rev.OwnerResponse = &resp
		}
	}
	if r.IsApproved != nil {
		rev.IsApproved = *r.IsApproved
	}
}

// ApproveReviewRequest, onay durumunu ayarlama isteği.
type ApproveReviewRequest struct {
	Approved bool `json:"approved"`
}

// ReplyReviewRequest, restoran sahibinin cevabı. Boş cevap mevcut cevabı siler.
type ReplyReviewRequest struct {
	Response string `json:"response"`
}

// ReviewStats, yorum özet kartı: toplam, ortalama ve yıldız dağılımı.
// Average string'dir — tek ondalık basamakla formatlanmış ("4.3", boşsa "0.0").
type ReviewStats struct {
	Total        int         `json:"total"`
	Average      string      `json:"average"`
	Distribution map[int]int `json:"distribution"`
}

// ReviewFeed, filtrelenmiş/sıralanmış yorum listesi ve sayaçlar.
type ReviewFeed struct {
	Reviews   []Review       `json:"reviews"`
	TagCounts map[string]int `json:"tag_counts"`
	Stats     ReviewStats    `json:"stats"`
}

func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
