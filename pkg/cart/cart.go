// Package cart, sipariş sepetinin saf (I/O'suz) mantığını içerir.
//
// Cart bir değer tipidir; her işlem sepeti yerinde değiştirir ve
// kalıcılık çağıran tarafın sorumluluğundadır (CartService her değişiklikte kaydeder).
package cart

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Item, sepetteki bir menü ürünü ve adedi.
// İsim ve fiyat ekleme anındaki menü kaydından kopyalanır.
type Item struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	IsVeg    bool    `json:"is_veg"`
	Image    string  `json:"image"`
	Quantity int     `json:"quantity"`
}

// Cart, ürünleri eklenme sırasıyla tutar.
type Cart struct {
	Items []Item `json:"items"`
}

// Add, ürün sepette varsa adedini 1 artırır, yoksa adet 1 ile sona ekler.
func (c *Cart) Add(product Item) {
	for i := range c.Items {
		if c.Items[i].ID == product.ID {
			c.Items[i].Quantity++
			return
		}
	}
	product.Quantity = 1
	c.Items = append(c.Items, product)
}

// Remove, ürünü sepetten çıkarır. Ürün yoksa hiçbir şey yapmaz.
func (c *Cart) Remove(id string) {
	out := c.Items[:0]
	for _, it := range c.Items {
		if it.ID != id {
			out = append(out, it)
		}
	}
	c.Items = out
}

// UpdateQuantity, ürünün adedini delta kadar değiştirir.
// Adet 0'ın altına inmez; 0'a düşen ürünler sepetten çıkar.
func (c *Cart) UpdateQuantity(id string, delta int) {
	out := c.Items[:0]
	for _, it := range c.Items {
		if it.ID == id {
			it.Quantity = max(0, it.Quantity+delta)
		}
		if it.Quantity > 0 {
			out = append(out, it)
		}
	}
	c.Items = out
}

// Clear, sepeti boşaltır.
func (c *Cart) Clear() {
	c.Items = nil
}

// TotalPrice, Σ fiyat × adet.
func (c *Cart) TotalPrice() float64 {
	var total float64
	for _, it := range c.Items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// TotalItems, Σ adet.
func (c *Cart) TotalItems() int {
	var total int
	for _, it := range c.Items {
		total += it.Quantity
	}
	return total
}

// IsEmpty, sepette ürün yok mu?
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Summary, API yanıtı: ürünler ve toplamlar.
type Summary struct {
	ID         string  `json:"id"`
	Items      []Item  `json:"items"`
	TotalPrice float64 `json:"total_price"`
	TotalItems int     `json:"total_items"`
}

// Summarize, sepeti toplamlarıyla birlikte döner.
func (c *Cart) Summarize(id string) Summary {
	items := c.Items
	if items == nil {
		items = []Item{}
	}
	return Summary{
		ID:         id,
		Items:      items,
		TotalPrice: c.TotalPrice(),
		TotalItems: c.TotalItems(),
	}
}

// OrderMessage, WhatsApp'a gönderilecek sipariş metnini üretir:
//
//	Hello <restaurant>, I would like to order:
//
//	• 2 x Masala Dosa (₹120)
//
//	Total Amount: ₹240
//
//	Please confirm my order.
func (c *Cart) OrderMessage(restaurant string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s, I would like to order:\n\n", restaurant)
	for _, it := range c.Items {
		fmt.Fprintf(&b, "• %d x %s (₹%s)\n", it.Quantity, it.Name, formatAmount(it.Price))
	}
	fmt.Fprintf(&b, "\nTotal Amount: ₹%s", formatAmount(c.TotalPrice()))
	b.WriteString("\n\nPlease confirm my order.")
	return b.String()
}

// WhatsAppURL, mesajı önceden dolduran wa.me bağlantısı.
// number ülke koduyla, başında + olmadan yazılır (ör: 917023232376).
// Boşluklar "%20" olarak kodlanır ("+" değil).
func WhatsAppURL(number, message string) string {
	text := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return "https://wa.me/" + number + "?text=" + text
}

// formatAmount, tutarı gereksiz ondalık olmadan yazar: 120 → "120", 99.5 → "99.5".
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
