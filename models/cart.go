package models

import "fmt"

// AddToCartRequest, sepete ürün ekleme isteği.
// Fiyat ve isim istemciden alınmaz — menüden okunur.
type AddToCartRequest struct {
	MenuItemID string `json:"menu_item_id"`
}

// Validate, AddToCartRequest'in geçerli olup olmadığını kontrol eder.
func (r *AddToCartRequest) Validate() error {
	if r.MenuItemID == "" {
		return fmt.Errorf("menu_item_id is required")
	}
	return nil
}

// CartDeltaRequest, sepetteki bir ürünün adedini delta kadar değiştirir.
// Sonuç 0 veya altına düşerse ürün sepetten çıkar.
type CartDeltaRequest struct {
	Delta int `json:"delta"`
}

// Validate, CartDeltaRequest'in geçerli olup olmadığını kontrol eder.
func (r *CartDeltaRequest) Validate() error {
	if r.Delta == 0 {
		return fmt.Errorf("delta cannot be zero")
	}
	if r.Delta > 100 || r.Delta < -100 {
		return fmt.Errorf("delta must be between -100 and 100")
	}
	return nil
}

// CheckoutResponse, WhatsApp sipariş bağlantısı.
type CheckoutResponse struct {
	Message string `json:"message"`
	URL     string `json:"url"`
}
