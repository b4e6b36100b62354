package middleware

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/akinalp/milan/handlers"
	"github.com/akinalp/milan/models"
	"github.com/akinalp/milan/pkg"
	"github.com/akinalp/milan/pkg/metrics"
	"github.com/akinalp/milan/pkg/ratelimit"
)

type stubValidator struct {
	claims *models.TokenClaims
	err    error
}

func (v stubValidator) ValidateAccessToken(string) (*models.TokenClaims, error) {
	return v.claims, v.err
}

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func TestAuthRequire(t *testing.T) {
	var seen *models.AdminIdentity
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = handlers.AdminFromContext(r)
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name      string
		header    string
		validator stubValidator
		want      int
	}{
		{"missing header", "", stubValidator{}, http.StatusUnauthorized},
		{"not bearer", "Basic abc", stubValidator{}, http.StatusUnauthorized},
		{"invalid token", "Bearer x", stubValidator{err: pkg.ErrUnauthorized}, http.StatusUnauthorized},
		{"wrong role", "Bearer x", stubValidator{err: pkg.ErrForbidden}, http.StatusForbidden},
		{"valid", "Bearer x", stubValidator{claims: &models.TokenClaims{Username: "admin", Role: models.AdminRole}}, http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = nil
			req := httptest.NewRequest(http.MethodGet, "/api/admin/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			NewAuthMiddleware(tt.validator).Require(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
			if tt.want == http.StatusNoContent {
				require.NotNil(t, seen)
				assert.Equal(t, "admin", seen.Username)
			} else {
				assert.Nil(t, seen)
			}
		})
	}
}

func TestRateLimit(t *testing.T) {
	limiter := ratelimit.NewIPLimiter(1, 2)
	t.Cleanup(limiter.Close)
	h := NewRateLimitMiddleware(limiter, metrics.New()).Limit(http.HandlerFunc(okHandler))

	do := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/messages", nil)
		req.RemoteAddr = ip + ":40000"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusNoContent, do("203.0.113.1").Code)
	assert.Equal(t, http.StatusNoContent, do("203.0.113.1").Code)

	blocked := do("203.0.113.1")
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)
	assert.NotEmpty(t, blocked.Header().Get("Retry-After"))
	assert.Contains(t, blocked.Body.String(), "too many requests")

	assert.Equal(t, http.StatusNoContent, do("203.0.113.2").Code, "limits are per IP")
}

func TestRequestLoggerLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", okHandler)
	mux.HandleFunc("GET /boom", func(w http.ResponseWriter, _ *http.Request) {
		pkg.Error(w, errors.New("db down"))
	})
	mux.HandleFunc("GET /missing", func(w http.ResponseWriter, _ *http.Request) {
		pkg.Error(w, pkg.ErrNotFound)
	})
	h := RequestLogger(logger)(mux)

	for _, path := range []string{"/api/health", "/boom", "/missing"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, int64(500), entries[1].ContextMap()["status"])
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
}

func TestInstrumentRecordsRoutePattern(t *testing.T) {
	m := metrics.New()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/menu/{id}", okHandler)
	h := Instrument(m)(mux)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/menu/abc", nil))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), `route="GET /api/menu/{id}",status="204"`)
	assert.Contains(t, string(body), `route="unmatched",status="404"`)
}

type plainWriter struct{ http.ResponseWriter }

func TestStatusRecorder(t *testing.T) {
	inner := httptest.NewRecorder()
	rec := newStatusRecorder(inner)

	rec.WriteHeader(http.StatusCreated)
	_, err := rec.Write([]byte("hello"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, rec.status)
	assert.Equal(t, 5, rec.bytes)
	assert.Same(t, inner, rec.Unwrap())

	_, _, err = newStatusRecorder(plainWriter{inner}).Hijack()
	assert.Error(t, err, "hijack needs an http.Hijacker underneath")
}
