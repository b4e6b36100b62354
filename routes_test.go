package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akinalp/milan/pkg/metrics"
	"github.com/akinalp/milan/pkg/ratelimit"
	"github.com/akinalp/milan/services"
)

// newRouteMux, handler'lar olmadan route tablosunu kurar. Admin route'ları
// token kontrolünde durduğu için handler'a hiç ulaşılmaz.
func newRouteMux(t *testing.T, uploadDir string) (*http.ServeMux, services.AuthService) {
	t.Helper()
	limiters := &RateLimiters{
		Login:  ratelimit.NewLoginRateLimiter(5, time.Minute),
		Public: ratelimit.NewIPLimiter(60, 10),
	}
	t.Cleanup(limiters.Close)

	auth := services.NewAuthService("admin", "", "route-test-secret", time.Hour)
	mux := http.NewServeMux()
	initRoutes(mux, &Handlers{}, auth, limiters, metrics.New(), uploadDir)
	return mux, auth
}

func TestAdminRoutesRequireToken(t *testing.T) {
	mux, _ := newRouteMux(t, "")

	routes := []struct{ method, path string }{
		{http.MethodGet, "/api/admin/me"},
		{http.MethodGet, "/api/admin/dashboard"},
		{http.MethodPost, "/api/admin/upload"},
		{http.MethodPost, "/api/admin/menu"},
		{http.MethodPatch, "/api/admin/menu/m1"},
		{http.MethodDelete, "/api/admin/highlights/h1"},
		{http.MethodPut, "/api/admin/scans/order"},
		{http.MethodGet, "/api/admin/reviews"},
		{http.MethodPost, "/api/admin/reviews/r1/toggle"},
		{http.MethodDelete, "/api/admin/reviews/r1"},
		{http.MethodGet, "/api/admin/messages"},
		{http.MethodPut, "/api/admin/settings/logo"},
		{http.MethodPost, "/api/admin/slides/hero"},
		{http.MethodDelete, "/api/admin/slides/makrana/s1"},
		{http.MethodPut, "/api/admin/gallery/showcase"},
		{http.MethodGet, "/api/admin/staff/st1"},
		{http.MethodGet, "/api/admin/udhar/summary"},
		{http.MethodPut, "/api/admin/stock/k1/quantity"},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(rt.method, rt.path, nil))
			assert.Equal(t, http.StatusUnauthorized, rec.Code)

			req := httptest.NewRequest(rt.method, rt.path, nil)
			req.Header.Set("Authorization", "Bearer not-a-jwt")
			rec = httptest.NewRecorder()
			mux.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestPublicRoutes(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "1-dosa.jpg"), []byte("jpeg"), 0644))
	mux, _ := newRouteMux(t, dir)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/uploads/1-dosa.jpg", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "jpeg", rec.Body.String())

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/uploads/sub%2F1-dosa.jpg", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
