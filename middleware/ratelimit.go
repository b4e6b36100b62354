package middleware

import (
	"net/http"
	"strconv"

	"github.com/akinalp/milan/pkg"
	"github.com/akinalp/milan/pkg/metrics"
	"github.com/akinalp/milan/pkg/ratelimit"
)

// RateLimitMiddleware, public yazma endpoint'leri (yorum, mesaj, like, upload)
// için IP başına token bucket uygular.
type RateLimitMiddleware struct {
	limiter *ratelimit.IPLimiter
	metrics *metrics.Metrics
}

// NewRateLimitMiddleware, constructor.
func NewRateLimitMiddleware(limiter *ratelimit.IPLimiter, m *metrics.Metrics) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: limiter, metrics: m}
}

// Limit, limit aşılırsa 429 ve Retry-After header'ı döner.
func (m *RateLimitMiddleware) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := ratelimit.ExtractIP(r)
		if !m.limiter.Allow(ip) {
			retryAfter := m.limiter.RetryAfterSeconds(ip)
			m.metrics.RateLimited("public")
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			pkg.ErrorWithMessage(w, http.StatusTooManyRequests,
				"too many requests, please try again in "+ratelimit.FormatRetryMessage(retryAfter))
			return
		}
		next.ServeHTTP(w, r)
	})
}
