package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/akinalp/milan/pkg/metrics"
)

// Instrument, istek sayısı, süresi ve in-flight gauge'unu Prometheus'a yazar.
// Route label'ı ServeMux pattern'idir; eşleşmeyen istekler "unmatched" sayılır.
func Instrument(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			done := m.RequestStarted()
			defer done()

			start := time.Now()
			rec := newStatusRecorder(w)
			next.ServeHTTP(rec, r)

			// r.Pattern, mux eşleştirmesinden sonra aynı *Request üzerinde dolar.
			route := r.Pattern
			if route == "" {
				route = "unmatched"
			}
			m.ObserveHTTP(r.Method, route, strconv.Itoa(rec.status), time.Since(start))
		})
	}
}
