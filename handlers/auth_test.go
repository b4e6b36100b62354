package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akinalp/milan/models"
	"github.com/akinalp/milan/pkg"
	"github.com/akinalp/milan/pkg/metrics"
	"github.com/akinalp/milan/pkg/ratelimit"
)

type stubAuthService struct{}

func (stubAuthService) Login(_ context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	if req.Password != "chai123" {
		return nil, pkg.ErrUnauthorized
	}
	return &models.LoginResponse{AccessToken: "tok", Username: "admin"}, nil
}

func (stubAuthService) ValidateAccessToken(string) (*models.TokenClaims, error) {
	return nil, pkg.ErrUnauthorized
}

func login(h *AuthHandler, password string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"username":"admin","password":"`+password+`"}`))
	req.RemoteAddr = "198.51.100.7:5000"
	rec := httptest.NewRecorder()
	h.Login(rec, req)
	return rec
}

func TestLoginRateLimited(t *testing.T) {
	limiter := ratelimit.NewLoginRateLimiter(2, time.Minute)
	t.Cleanup(limiter.Close)
	h := NewAuthHandler(stubAuthService{}, limiter, metrics.New())

	assert.Equal(t, http.StatusUnauthorized, login(h, "nope").Code)
	assert.Equal(t, http.StatusUnauthorized, login(h, "nope").Code)

	blocked := login(h, "chai123")
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)
	assert.NotEmpty(t, blocked.Header().Get("Retry-After"))
}

func TestLoginSuccessResetsAttempts(t *testing.T) {
	limiter := ratelimit.NewLoginRateLimiter(2, time.Minute)
	t.Cleanup(limiter.Close)
	h := NewAuthHandler(stubAuthService{}, limiter, metrics.New())

	assert.Equal(t, http.StatusUnauthorized, login(h, "nope").Code)

	ok := login(h, "chai123")
	require.Equal(t, http.StatusOK, ok.Code)
	var resp models.LoginResponse
	decodeEnvelope(t, ok, &resp)
	assert.Equal(t, "tok", resp.AccessToken)

	assert.Equal(t, http.StatusUnauthorized, login(h, "nope").Code)
	assert.Equal(t, http.StatusUnauthorized, login(h, "nope").Code, "counter was reset")
}

func TestMeRequiresIdentity(t *testing.T) {
	h := NewAuthHandler(stubAuthService{}, nil, metrics.New())

	rec := httptest.NewRecorder()
	h.Me(rec, httptest.NewRequest(http.MethodGet, "/api/admin/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/me", nil)
	req = req.WithContext(context.WithValue(req.Context(), AdminContextKey, &models.AdminIdentity{Username: "admin", Role: models.AdminRole}))
	rec = httptest.NewRecorder()
	h.Me(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
