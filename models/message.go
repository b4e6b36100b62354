package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// CustomerMessage, iletişim formundan gelen mesaj.
// DB'deki "messages" tablosu; Date = created_at.
type CustomerMessage struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Phone   string    `json:"phone"`
	Message string    `json:"message"`
	Date    time.Time `json:"date"`
}

// CreateMessageRequest, iletişim formu gönderimi.
type CreateMessageRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// Validate, CreateMessageRequest'in geçerli olup olmadığını kontrol eder.
func (r *CreateMessageRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if err := validateName("name", r.Name, 100); err != nil {
		return err
	}
	r.Phone = strings.TrimSpace(r.Phone)
	if r.Phone == "" {
		return fmt.Errorf("phone is required")
	}
	if utf8.RuneCountInString(r.Phone) > 20 {
		return fmt.Errorf("phone must be at most 20 characters")
	}
	r.Message = strings.TrimSpace(r.Message)
	if r.Message == "" {
		return fmt.Errorf("message is required")
	}
	if utf8.RuneCountInString(r.Message) > 2000 {
		return fmt.Errorf("message must be at most 2000 characters")
	}
	return nil
}
