package handlers

import (
	"net/http"

	"github.com/akinalp/milan/models"
	"github.com/akinalp/milan/pkg"
	"github.com/akinalp/milan/pkg/ratelimit"
	"github.com/akinalp/milan/services"
)

// GalleryHandler, galeri, like ve ana sayfa vitrini.
type GalleryHandler struct {
	galleryService services.GalleryService
}

// NewGalleryHandler, constructor.
func NewGalleryHandler(galleryService services.GalleryService) *GalleryHandler {
	return &GalleryHandler{galleryService: galleryService}
}

// List godoc
// GET /api/gallery
func (h *GalleryHandler) List(w http.ResponseWriter, r *http.Request) {
	images, err := h.galleryService.List(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, images)
}

// Showcase godoc
// GET /api/gallery/showcase
func (h *GalleryHandler) Showcase(w http.ResponseWriter, r *http.Request) {
	images, err := h.galleryService.Showcase(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, images)
}

// Like godoc
// POST /api/gallery/{id}/like
// Aynı IP aynı görseli 24 saatte bir kez beğenebilir; tekrar istek
// güncel sayıyı döner. Yanıttaki sayı sunucunun onayladığı değerdir.
func (h *GalleryHandler) Like(w http.ResponseWriter, r *http.Request) {
	result, err := h.galleryService.Like(r.Context(), r.PathValue("id"), ratelimit.ExtractIP(r))
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, result)
}

// AdminList godoc
// GET /api/admin/gallery
// Vitrindekiler sırasıyla başta, diğerleri en yeni önce.
func (h *GalleryHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	images, err := h.galleryService.AdminList(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, images)
}

// Add godoc
// POST /api/admin/gallery
func (h *GalleryHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req models.AddGalleryImageRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	img, err := h.galleryService.Add(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusCreated, img)
}

// Delete godoc
// DELETE /api/admin/gallery/{id}
func (h *GalleryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.galleryService.Delete(r.Context(), r.PathValue("id")); err != nil {
		pkg.Error(w, err)
		return
	}
	deleted(w)
}

// SetShowcaseOrder godoc
// PUT /api/admin/gallery/{id}/showcase
// Body: { "order": 2 } — null vitrinden çıkarır.
func (h *GalleryHandler) SetShowcaseOrder(w http.ResponseWriter, r *http.Request) {
	var req models.SetOrderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.galleryService.SetShowcaseOrder(r.Context(), r.PathValue("id"), &req); err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, map[string]string{"message": "order updated"})
}

// SaveOrder godoc
// PUT /api/admin/gallery/showcase
// Body: { "ids": [...] } — vitrin tek transaction'da yeniden yazılır.
func (h *GalleryHandler) SaveOrder(w http.ResponseWriter, r *http.Request) {
	var req models.ReorderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	images, err := h.galleryService.SaveOrder(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, images)
}
