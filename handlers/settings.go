package handlers

import (
	"net/http"

	"github.com/akinalp/milan/models"
	"github.com/akinalp/milan/pkg"
	"github.com/akinalp/milan/services"
)

// SettingsHandler, site ayarları (iletişim bilgileri, logo).
type SettingsHandler struct {
	settingsService services.SettingsService
}

// NewSettingsHandler, constructor.
func NewSettingsHandler(settingsService services.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetContact godoc
// GET /api/settings/contact
func (h *SettingsHandler) GetContact(w http.ResponseWriter, r *http.Request) {
	info, err := h.settingsService.GetContact(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, info)
}

// SetContact godoc
// PUT /api/admin/settings/contact
func (h *SettingsHandler) SetContact(w http.ResponseWriter, r *http.Request) {
	var req models.ContactInfo
	if !decodeJSON(w, r, &req) {
		return
	}
	info, err := h.settingsService.SetContact(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, info)
}

// GetLogo godoc
// GET /api/settings/logo
// Logo ayarlanmamışsa url boş string döner.
func (h *SettingsHandler) GetLogo(w http.ResponseWriter, r *http.Request) {
	url, err := h.settingsService.GetLogo(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, models.LogoSetting{URL: url})
}

// SetLogo godoc
// PUT /api/admin/settings/logo
func (h *SettingsHandler) SetLogo(w http.ResponseWriter, r *http.Request) {
	var req models.SetLogoRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	url, err := h.settingsService.SetLogo(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, models.LogoSetting{URL: url})
}
