package handlers

import (
	"net/http"

	"github.com/akinalp/milan/models"
	"github.com/akinalp/milan/pkg"
	"github.com/akinalp/milan/services"
)

// LedgerHandler, veresiye (udhar) defteri ve mutfak stoğu.
type LedgerHandler struct {
	udharService services.UdharService
	stockService services.StockService
}

// NewLedgerHandler, constructor.
func NewLedgerHandler(udharService services.UdharService, stockService services.StockService) *LedgerHandler {
	return &LedgerHandler{udharService: udharService, stockService: stockService}
}

// ListUdhar godoc
// GET /api/admin/udhar?q=ravi
func (h *LedgerHandler) ListUdhar(w http.ResponseWriter, r *http.Request) {
	records, err := h.udharService.List(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, records)
}

// UdharSummary godoc
// GET /api/admin/udhar/summary
func (h *LedgerHandler) UdharSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.udharService.Summary(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, summary)
}

// CreateUdhar godoc
// POST /api/admin/udhar
func (h *LedgerHandler) CreateUdhar(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUdharRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	rec, err := h.udharService.Create(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusCreated, rec)
}

// SetUdharPaid godoc
// PUT /api/admin/udhar/{id}/paid
// Body: { "is_paid": true }
func (h *LedgerHandler) SetUdharPaid(w http.ResponseWriter, r *http.Request) {
	var req models.SetPaidRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	rec, err := h.udharService.SetPaid(r.Context(), r.PathValue("id"), req.IsPaid)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, rec)
}

// ToggleUdharPaid godoc
// POST /api/admin/udhar/{id}/toggle
func (h *LedgerHandler) ToggleUdharPaid(w http.ResponseWriter, r *http.Request) {
	rec, err := h.udharService.TogglePaid(r.Context(), r.PathValue("id"))
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, rec)
}

// DeleteUdhar godoc
// DELETE /api/admin/udhar/{id}
func (h *LedgerHandler) DeleteUdhar(w http.ResponseWriter, r *http.Request) {
	if err := h.udharService.Delete(r.Context(), r.PathValue("id")); err != nil {
		pkg.Error(w, err)
		return
	}
	deleted(w)
}

// ListStock godoc
// GET /api/admin/stock?q=rice
func (h *LedgerHandler) ListStock(w http.ResponseWriter, r *http.Request) {
	items, err := h.stockService.List(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, items)
}

// LowStock godoc
// GET /api/admin/stock/low
func (h *LedgerHandler) LowStock(w http.ResponseWriter, r *http.Request) {
	items, err := h.stockService.LowStock(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, items)
}

// CreateStock godoc
// POST /api/admin/stock
func (h *LedgerHandler) CreateStock(w http.ResponseWriter, r *http.Request) {
	var req models.CreateStockRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	item, err := h.stockService.Create(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusCreated, item)
}

// UpdateStock godoc
// PATCH /api/admin/stock/{id}
func (h *LedgerHandler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateStockRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	item, err := h.stockService.Update(r.Context(), r.PathValue("id"), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, item)
}

// UpdateStockQuantity godoc
// PUT /api/admin/stock/{id}/quantity
// Body: { "quantity": 12.5 }
func (h *LedgerHandler) UpdateStockQuantity(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateQuantityRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	item, err := h.stockService.UpdateQuantity(r.Context(), r.PathValue("id"), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, item)
}

// DeleteStock godoc
// DELETE /api/admin/stock/{id}
func (h *LedgerHandler) DeleteStock(w http.ResponseWriter, r *http.Request) {
	if err := h.stockService.Delete(r.Context(), r.PathValue("id")); err != nil {
		pkg.Error(w, err)
		return
	}
	deleted(w)
}
