package handlers

import (
	"net/http"

	"github.com/akinalp/milan/models"
	"github.com/akinalp/milan/pkg"
	"github.com/akinalp/milan/services"
)

// CartIDHeader, ziyaretçinin sepet id'sini taşıyan header.
// İlk istekte boş gönderilir; yanıttaki "id" sonraki isteklerde kullanılır.
const CartIDHeader = "X-Cart-ID"

// CartHandler, ziyaretçi sepeti ve WhatsApp checkout.
type CartHandler struct {
	cartService services.CartService
}

// NewCartHandler, constructor.
func NewCartHandler(cartService services.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

func cartID(r *http.Request) string {
	return r.Header.Get(CartIDHeader)
}

// Get godoc
// GET /api/cart
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	summary, err := h.cartService.Get(r.Context(), cartID(r))
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, summary)
}

// Add godoc
// POST /api/cart/items
// Body: { "menu_item_id": "..." } — ürün varsa adet 1 artar.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req models.AddToCartRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	summary, err := h.cartService.Add(r.Context(), cartID(r), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, summary)
}

// UpdateQuantity godoc
// PATCH /api/cart/items/{id}
// Body: { "delta": -1 } — adet 0'a düşerse ürün çıkar.
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var req models.CartDeltaRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	summary, err := h.cartService.UpdateQuantity(r.Context(), cartID(r), r.PathValue("id"), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, summary)
}

// Remove godoc
// DELETE /api/cart/items/{id}
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	summary, err := h.cartService.Remove(r.Context(), cartID(r), r.PathValue("id"))
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, summary)
}

// Clear godoc
// DELETE /api/cart
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	summary, err := h.cartService.Clear(r.Context(), cartID(r))
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, summary)
}

// Checkout godoc
// POST /api/cart/checkout
// Yanıt: { "message": "...", "url": "https://wa.me/...?text=..." }
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	resp, err := h.cartService.Checkout(r.Context(), cartID(r))
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, resp)
}
