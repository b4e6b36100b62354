package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// UdharRecord, müşteriye verilen veresiye (udhar) kaydı.
// Yeni kayıt her zaman ödenmemiş olarak açılır.
type UdharRecord struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customer_name"`
	Phone        string    `json:"phone"`
	Amount       float64   `json:"amount"`
	Description  string    `json:"description"`
	IsPaid       bool      `json:"is_paid"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateUdharRequest, yeni veresiye kaydı isteği.
type CreateUdharRequest struct {
	CustomerName string  `json:"customer_name"`
	Phone        string  `json:"phone"`
	Amount       float64 `json:"amount"`
	Description  string  `json:"description"`
}

// Validate, CreateUdharRequest'in geçerli olup olmadığını kontrol eder.
func (r *CreateUdharRequest) Validate() error {
	r.CustomerName = strings.TrimSpace(r.CustomerName)
	if err := validateName("customer name", r.CustomerName, 100); err != nil {
		return err
	}
	r.Phone = strings.TrimSpace(r.Phone)
	if utf8.RuneCountInString(r.Phone) > 20 {
		return fmt.Errorf("phone must be at most 20 characters")
	}
	if r.Amount <= 0 {
		return fmt.Errorf("amount must be greater than zero")
	}
	r.Description = strings.TrimSpace(r.Description)
	if utf8.RuneCountInString(r.Description) > 500 {
		return fmt.Errorf("description must be at most 500 characters")
	}
	return nil
}

// SetPaidRequest, ödeme durumu değiştirme isteği.
type SetPaidRequest struct {
	IsPaid bool `json:"is_paid"`
}

// UdharSummary, veresiye defteri özeti.
// Outstanding = ödenmemiş kayıtların toplam tutarı.
type UdharSummary struct {
	Outstanding float64 `json:"outstanding"`
	UnpaidCount int     `json:"unpaid_count"`
	PaidCount   int     `json:"paid_count"`
}

// DefaultMinThreshold, eşik verilmezse kullanılan düşük stok sınırı.
const DefaultMinThreshold = 5

// StockItem, mutfak stok kalemi.
// Quantity <= MinThreshold ise kalem "düşük stok" sayılır.
type StockItem struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Quantity     float64   `json:"quantity"`
	Unit         string    `json:"unit"`
	MinThreshold float64   `json:"min_threshold"`
	LastUpdated  time.Time `json:"last_updated"`
}

// IsLow, stok eşiğin altında veya eşit mi?
func (s *StockItem) IsLow() bool {
	return s.Quantity <= s.MinThreshold
}

// CreateStockRequest, yeni stok kalemi isteği.
// MinThreshold nil veya 0 ise DefaultMinThreshold kullanılır.
type CreateStockRequest struct {
	Name         string   `json:"name"`
	Quantity     float64  `json:"quantity"`
	Unit         string   `json:"unit"`
	MinThreshold *float64 `json:"min_threshold"`
}

// Validate, CreateStockRequest'in geçerli olup olmadığını kontrol eder.
func (r *CreateStockRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if err := validateName("item name", r.Name, 100); err != nil {
		return err
	}
	if r.Quantity < 0 {
		return fmt.Errorf("quantity cannot be negative")
	}
	r.Unit = strings.TrimSpace(r.Unit)
	if r.Unit == "" {
		r.Unit = "kg"
	}
	if utf8.RuneCountInString(r.Unit) > 10 {
		return fmt.Errorf("unit must be at most 10 characters")
	}
	if r.MinThreshold == nil || *r.MinThreshold == 0 {
		def := float64(DefaultMinThreshold)
		r.MinThreshold = &def
	}
	if *r.MinThreshold < 0 {
		return fmt.Errorf("min threshold cannot be negative")
	}
	return nil
}

// UpdateStockRequest, stok kalemi güncelleme isteği (partial update).
type UpdateStockRequest struct {
	Name         *string  `json:"name"`
	Quantity     *float64 `json:"quantity"`
	Unit         *string  `json:"unit"`
	MinThreshold *float64 `json:"min_threshold"`
}

// Validate, UpdateStockRequest'in geçerli olup olmadığını kontrol eder.
func (r *UpdateStockRequest) Validate() error {
	if r.Name != nil {
		*r.Name = strings.TrimSpace(*r.Name)
		if err := validateName("item name", *r.Name, 100); err != nil {
			return err
		}
	}
	if r.Quantity != nil && *r.Quantity < 0 {
		return fmt.Errorf("quantity cannot be negative")
	}
	if r.Unit != nil {
		*r.Unit = strings.TrimSpace(*r.Unit)
		if *r.Unit == "" {
			return fmt.Errorf("unit cannot be empty")
		}
	}
	if r.MinThreshold != nil && *r.MinThreshold < 0 {
		return fmt.Errorf("min threshold cannot be negative")
	}
	return nil
}

// Apply, request'teki dolu alanları stok kalemi üzerine yazar.
func (r *UpdateStockRequest) Apply(s *StockItem) {
	if r.Name != nil {
		s.Name = *r.Name
	}
	if r.Quantity != nil {
		s.Quantity = *r.Quantity
	}
	if r.Unit != nil {
		s.Unit = *r.Unit
	}
	if r.MinThreshold != nil {
		s.MinThreshold = *r.MinThreshold
	}
}

// UpdateQuantityRequest, sadece miktar güncelleme isteği.
type UpdateQuantityRequest struct {
	Quantity float64 `json:"quantity"`
}

// Validate, UpdateQuantityRequest'in geçerli olup olmadığını kontrol eder.
func (r *UpdateQuantityRequest) Validate() error {
	if r.Quantity < 0 {
		return fmt.Errorf("quantity cannot be negative")
	}
	return nil
}
