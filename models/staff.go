package models

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// StaffMember, personel kaydı.
// Aadhar (12 haneli kimlik no) yalnızca admin panelde görünür.
type StaffMember struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Role          string    `json:"role"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email,omitempty"`
	Aadhar        string    `json:"aadhar"`
	DateOfJoining string    `json:"date_of_joining"`
	Image         string    `json:"image,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// CreateStaffRequest, personel ekleme isteği.
type CreateStaffRequest struct {
	Name          string `json:"name"`
	Role          string `json:"role"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Aadhar        string `json:"aadhar"`
	DateOfJoining string `json:"date_of_joining"`
	Image         string `json:"image"`
}

// Validate, CreateStaffRequest'in geçerli olup olmadığını kontrol eder.
func (r *CreateStaffRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if err := validateName("name", r.Name, 100); err != nil {
		return err
	}
	r.Role = strings.TrimSpace(r.Role)
	if err := validateName("role", r.Role, 50); err != nil {
		return err
	}
	r.Phone = strings.TrimSpace(r.Phone)
	if r.Phone == "" {
		return fmt.Errorf("phone is required")
	}
	r.Email = strings.TrimSpace(r.Email)
	if r.Email != "" && !strings.Contains(r.Email, "@") {
		return fmt.Errorf("invalid email")
	}
	r.Aadhar = strings.TrimSpace(r.Aadhar)
	if err := validateAadhar(r.Aadhar); err != nil {
		return err
	}
	r.DateOfJoining = strings.TrimSpace(r.DateOfJoining)
	if err := validateDate(r.DateOfJoining); err != nil {
		return err
	}
	r.Image = strings.TrimSpace(r.Image)
	return nil
}

// UpdateStaffRequest, personel güncelleme isteği (partial update).
type UpdateStaffRequest struct {
	Name          *string `json:"name"`
	Role          *string `json:"role"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email"`
	Aadhar        *string `json:"aadhar"`
	DateOfJoining *string `json:"date_of_joining"`
	Image         *string `json:"image"`
}

// Validate, UpdateStaffRequest'in geçerli olup olmadığını kontrol eder.
func (r *UpdateStaffRequest) Validate() error {
	if r.Name != nil {
		*r.Name = strings.TrimSpace(*r.Name)
		if err := validateName("name", *r.Name, 100); err != nil {
			return err
		}
	}
	if r.Role != nil {
		*r.Role = strings.TrimSpace(*r.Role)
		if err := validateName("role", *r.Role, 50); err != nil {
			return err
		}
	}
	if r.Phone != nil {
		*r.Phone = strings.TrimSpace(*r.Phone)
		if *r.Phone == "" {
			return fmt.Errorf("phone is required")
		}
	}
	if r.Email != nil {
		*r.Email = strings.TrimSpace(*r.Email)
		if *r.Email != "" && !strings.Contains(*r.Email, "@") {
			return fmt.Errorf("invalid email")
		}
	}
	if r.Aadhar != nil {
		*r.Aadhar = strings.TrimSpace(*r.Aadhar)
		if err := validateAadhar(*r.Aadhar); err != nil {
			return err
		}
	}
	if r.DateOfJoining != nil {
		*r.DateOfJoining = strings.TrimSpace(*r.DateOfJoining)
		if err := validateDate(*r.DateOfJoining); err != nil {
			return err
		}
	}
	if r.Image != nil {
		*r.Image = strings.TrimSpace(*r.Image)
	}
	return nil
}

// Apply, request'teki dolu alanları personel kaydı üzerine yazar.
func (r *UpdateStaffRequest) Apply(s *StaffMember) {
	if r.Name != nil {
		s.Name = *r.Name
	}
	if r.Role != nil {
		s.Role = *r.Role
	}
	if r.Phone != nil {
		s.Phone = *r.Phone
	}
	if r.Email != nil {
		s.Email = *r.Email
	}
	if r.Aadhar != nil {
		s.Aadhar = *r.Aadhar
	}
	if r.DateOfJoining != nil {
		s.DateOfJoining = *r.DateOfJoining
	}
	if r.Image != nil {
		s.Image = *r.Image
	}
}

// validateAadhar, boş veya boşluklar hariç 12 rakam kabul eder.
func validateAadhar(v string) error {
	if v == "" {
		return nil
	}
	digits := 0
	for _, ch := range v {
		switch {
		case unicode.IsDigit(ch):
			digits++
		case ch == ' ':
		default:
			return fmt.Errorf("aadhar must contain only digits")
		}
	}
	if digits != 12 {
		return fmt.Errorf("aadhar must be 12 digits")
	}
	return nil
}

// validateDate, boş veya YYYY-MM-DD formatında tarih kabul eder.
func validateDate(v string) error {
	if v == "" {
		return nil
	}
	if utf8.RuneCountInString(v) != 10 {
		return fmt.Errorf("date_of_joining must be in YYYY-MM-DD format")
	}
	if _, err := time.Parse(time.DateOnly, v); err != nil {
		return fmt.Errorf("date_of_joining must be in YYYY-MM-DD format")
	}
	return nil
}
