package handlers

import (
	"net/http"

	"github.com/akinalp/milan/models"
	"github.com/akinalp/milan/pkg"
	"github.com/akinalp/milan/services"
)

// StaffHandler, personel yönetimi (sadece admin).
type StaffHandler struct {
	staffService services.StaffService
}

// NewStaffHandler, constructor.
func NewStaffHandler(staffService services.StaffService) *StaffHandler {
	return &StaffHandler{staffService: staffService}
}

// List godoc
// GET /api/admin/staff
func (h *StaffHandler) List(w http.ResponseWriter, r *http.Request) {
	staff, err := h.staffService.List(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, staff)
}

// Get godoc
// GET /api/admin/staff/{id}
func (h *StaffHandler) Get(w http.ResponseWriter, r *http.Request) {
	member, err := h.staffService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, member)
}

// Create godoc
// POST /api/admin/staff
func (h *StaffHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateStaffRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	member, err := h.staffService.Create(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusCreated, member)
}

// Update godoc
// PATCH /api/admin/staff/{id}
func (h *StaffHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateStaffRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	member, err := h.staffService.Update(r.Context(), r.PathValue("id"), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, member)
}

// Delete godoc
// DELETE /api/admin/staff/{id}
func (h *StaffHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.staffService.Delete(r.Context(), r.PathValue("id")); err != nil {
		pkg.Error(w, err)
		return
	}
	deleted(w)
}
