package handlers

import (
	"net/http"

	"github.com/akinalp/milan/models"
	"github.com/akinalp/milan/pkg"
	"github.com/akinalp/milan/services"
)

// MenuHandler, menü, öne çıkanlar (highlight) ve taranmış menü sayfaları.
type MenuHandler struct {
	menuService      services.MenuService
	highlightService services.HighlightService
	scanService      services.ScanService
}

// NewMenuHandler, constructor.
func NewMenuHandler(menuService services.MenuService, highlightService services.HighlightService, scanService services.ScanService) *MenuHandler {
	return &MenuHandler{
		menuService:      menuService,
		highlightService: highlightService,
		scanService:      scanService,
	}
}

// List godoc
// GET /api/menu?category=Starters&q=paneer
// category "All" veya boş → filtre yok. q isimde büyük/küçük harf duyarsız aranır.
func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items, err := h.menuService.Filter(r.Context(), q.Get("category"), q.Get("q"))
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, items)
}

// Categories godoc
// GET /api/menu/categories
func (h *MenuHandler) Categories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.menuService.Categories(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, cats)
}

// Get godoc
// GET /api/menu/{id}
func (h *MenuHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.menuService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, item)
}

// Create godoc
// POST /api/admin/menu
func (h *MenuHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateMenuItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	item, err := h.menuService.Create(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusCreated, item)
}

// Update godoc
// PATCH /api/admin/menu/{id}
func (h *MenuHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateMenuItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	item, err := h.menuService.Update(r.Context(), r.PathValue("id"), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, item)
}

// Delete godoc
// DELETE /api/admin/menu/{id}
func (h *MenuHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.menuService.Delete(r.Context(), r.PathValue("id")); err != nil {
		pkg.Error(w, err)
		return
	}
	deleted(w)
}

// ListHighlights godoc
// GET /api/highlights
func (h *MenuHandler) ListHighlights(w http.ResponseWriter, r *http.Request) {
	list, err := h.highlightService.List(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, list)
}

// CreateHighlight godoc
// POST /api/admin/highlights
func (h *MenuHandler) CreateHighlight(w http.ResponseWriter, r *http.Request) {
	var req models.CreateHighlightRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	hl, err := h.highlightService.Create(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusCreated, hl)
}

// UpdateHighlight godoc
// PATCH /api/admin/highlights/{id}
func (h *MenuHandler) UpdateHighlight(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateHighlightRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	hl, err := h.highlightService.Update(r.Context(), r.PathValue("id"), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, hl)
}

// DeleteHighlight godoc
// DELETE /api/admin/highlights/{id}
func (h *MenuHandler) DeleteHighlight(w http.ResponseWriter, r *http.Request) {
	if err := h.highlightService.Delete(r.Context(), r.PathValue("id")); err != nil {
		pkg.Error(w, err)
		return
	}
	deleted(w)
}

// ListScans godoc
// GET /api/scans
func (h *MenuHandler) ListScans(w http.ResponseWriter, r *http.Request) {
	list, err := h.scanService.List(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, list)
}

// CreateScan godoc
// POST /api/admin/scans
func (h *MenuHandler) CreateScan(w http.ResponseWriter, r *http.Request) {
	var req models.CreateScanRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	scan, err := h.scanService.Create(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusCreated, scan)
}

// UpdateScan godoc
// PATCH /api/admin/scans/{id}
func (h *MenuHandler) UpdateScan(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateScanRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	scan, err := h.scanService.Update(r.Context(), r.PathValue("id"), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, scan)
}

// SetScanOrder godoc
// PUT /api/admin/scans/{id}/order
func (h *MenuHandler) SetScanOrder(w http.ResponseWriter, r *http.Request) {
	var req models.SetOrderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.scanService.SetOrder(r.Context(), r.PathValue("id"), &req); err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, map[string]string{"message": "order updated"})
}

// ReorderScans godoc
// PUT /api/admin/scans/order
// Body: { "ids": ["b", "a", "c"] } — sıra 1'den başlayarak atanır.
func (h *MenuHandler) ReorderScans(w http.ResponseWriter, r *http.Request) {
	var req models.ReorderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	scans, err := h.scanService.Reorder(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, scans)
}

// DeleteScan godoc
// DELETE /api/admin/scans/{id}
func (h *MenuHandler) DeleteScan(w http.ResponseWriter, r *http.Request) {
	if err := h.scanService.Delete(r.Context(), r.PathValue("id")); err != nil {
		pkg.Error(w, err)
		return
	}
	deleted(w)
}
