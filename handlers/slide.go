package handlers

import (
	"net/http"

	"github.com/akinalp/milan/models"
	"github.com/akinalp/milan/pkg"
	"github.com/akinalp/milan/services"
)

// SlideHandler, ana sayfa slider görselleri. Hero ve makrana
// slider'ları için ayrı ayrı oluşturulur.
type SlideHandler struct {
	slideService services.SlideService
}

// NewSlideHandler, constructor.
func NewSlideHandler(slideService services.SlideService) *SlideHandler {
	return &SlideHandler{slideService: slideService}
}

// URLs godoc
// GET /api/slides/hero, GET /api/slides/makrana
// Public site sadece sıralı URL listesini kullanır.
func (h *SlideHandler) URLs(w http.ResponseWriter, r *http.Request) {
	urls, err := h.slideService.URLs(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, urls)
}

// List godoc
// GET /api/admin/slides/{hero|makrana}
func (h *SlideHandler) List(w http.ResponseWriter, r *http.Request) {
	slides, err := h.slideService.List(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, slides)
}

// Add godoc
// POST /api/admin/slides/{hero|makrana}
func (h *SlideHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req models.AddSlideRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	slide, err := h.slideService.Add(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusCreated, slide)
}

// Delete godoc
// DELETE /api/admin/slides/{hero|makrana}/{id}
func (h *SlideHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.slideService.Delete(r.Context(), r.PathValue("id")); err != nil {
		pkg.Error(w, err)
		return
	}
	deleted(w)
}
