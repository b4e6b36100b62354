package handlers

import (
	"net/http"

	"github.com/akinalp/milan/pkg"
	"github.com/akinalp/milan/services"
)

// DashboardHandler, admin ana sayfası.
type DashboardHandler struct {
	dashboardService services.DashboardService
}

// NewDashboardHandler, constructor.
func NewDashboardHandler(dashboardService services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats godoc
// GET /api/admin/dashboard
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.Stats(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, stats)
}
