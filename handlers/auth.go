package handlers

import (
	"net/http"
	"strconv"

	"github.com/akinalp/milan/models"
	"github.com/akinalp/milan/pkg"
	"github.com/akinalp/milan/pkg/metrics"
	"github.com/akinalp/milan/pkg/ratelimit"
	"github.com/akinalp/milan/services"
)

// AuthHandler, admin giriş endpoint'leri.
type AuthHandler struct {
	authService  services.AuthService
	loginLimiter *ratelimit.LoginRateLimiter
	metrics      *metrics.Metrics
}

// NewAuthHandler, constructor.
// loginLimiter nil ise brute-force koruması devre dışıdır.
func NewAuthHandler(authService services.AuthService, loginLimiter *ratelimit.LoginRateLimiter, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		loginLimiter: loginLimiter,
		metrics:      m,
	}
}

// Login godoc
// POST /api/auth/login
//
// IP başına deneme limiti vardır; aşılırsa 429 + Retry-After.
// Başarılı giriş sayacı sıfırlar.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ip := ratelimit.ExtractIP(r)
	if h.loginLimiter != nil && !h.loginLimiter.Allow(ip) {
		retryAfter := h.loginLimiter.RetryAfterSeconds(ip)
		h.metrics.RateLimited("login")
		w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
		pkg.ErrorWithMessage(w, http.StatusTooManyRequests,
			"too many login attempts, please try again in "+ratelimit.FormatRetryMessage(retryAfter))
		return
	}

	var req models.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	if h.loginLimiter != nil {
		h.loginLimiter.Reset(ip)
	}
	pkg.JSON(w, http.StatusOK, resp)
}

// Me godoc
// GET /api/admin/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	admin, ok := AdminFromContext(r)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "admin not found in context")
		return
	}
	pkg.JSON(w, http.StatusOK, admin)
}
