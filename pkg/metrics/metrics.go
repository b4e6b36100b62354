// Package metrics, Prometheus collector'larını tek bir registry altında toplar.
//
// Global default registry yerine kendi registry'miz kullanılır —
// test'lerde her seferinde temiz bir Metrics oluşturulabilir.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "milan"

// Metrics, uygulamanın tüm collector'ları.
type Metrics struct {
	Registry *prometheus.Registry

	httpInFlight prometheus.Gauge
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	galleryLikes   prometheus.Counter
	submissions    *prometheus.CounterVec
	uploads        *prometheus.CounterVec
	uploadBytes    prometheus.Histogram
	cartCheckouts  prometheus.Counter
	jobRuns        *prometheus.CounterVec
	wsClients      prometheus.Gauge
	rateLimitDrops *prometheus.CounterVec
}

// New, collector'ları oluşturur ve yeni bir registry'ye kaydeder.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		httpInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		}, []string{"method", "route"}),
		galleryLikes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "gallery",
			Name:      "likes_total",
			Help:      "Accepted gallery likes.",
		}),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "public",
			Name:      "submissions_total",
			Help:      "Public form submissions by kind (review, message).",
		}, []string{"kind"}),
		uploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "storage",
			Name:      "uploads_total",
			Help:      "Image uploads by result.",
		}, []string{"result"}),
		uploadBytes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "storage",
			Name:      "upload_bytes",
			Help:      "Stored image size after compression.",
			Buckets:   prometheus.ExponentialBuckets(16*1024, 2, 10),
		}),
		cartCheckouts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cart",
			Name:      "checkouts_total",
			Help:      "WhatsApp checkout links generated.",
		}),
		jobRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "jobs",
			Name:      "runs_total",
			Help:      "Scheduled job runs by job and result.",
		}, []string{"job", "result"}),
		wsClients: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "ws",
			Name:      "clients",
			Help:      "Connected admin WebSocket clients.",
		}),
		rateLimitDrops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "rate_limited_total",
			Help:      "Requests rejected by rate limiters.",
		}, []string{"scope"}),
	}

	m.Registry.MustRegister(
		m.httpInFlight,
		m.httpRequests,
		m.httpDuration,
		m.galleryLikes,
		m.submissions,
		m.uploads,
		m.uploadBytes,
		m.cartCheckouts,
		m.jobRuns,
		m.wsClients,
		m.rateLimitDrops,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
	return m
}

// Handler, /metrics endpoint'i için HTTP handler döner.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// RequestStarted, in-flight sayacını artırır; dönen fonksiyon isteği kapatır.
func (m *Metrics) RequestStarted() func() {
	m.httpInFlight.Inc()
	return m.httpInFlight.Dec
}

// ObserveHTTP, tamamlanan bir isteği kaydeder.
// route, ServeMux pattern'idir (ör: "GET /api/menu/{id}") — label kardinalitesi sınırlı kalır.
func (m *Metrics) ObserveHTTP(method, route, status string, d time.Duration) {
	m.httpRequests.WithLabelValues(method, route, status).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// GalleryLiked, kabul edilen bir like'ı sayar.
func (m *Metrics) GalleryLiked() { m.galleryLikes.Inc() }

// Submitted, public form gönderimini sayar ("review", "message").
func (m *Metrics) Submitted(kind string) { m.submissions.WithLabelValues(kind).Inc() }

// Uploaded, resim yükleme sonucunu kaydeder.
func (m *Metrics) Uploaded(ok bool, size int) {
	if !ok {
		m.uploads.WithLabelValues("error").Inc()
		return
	}
	m.uploads.WithLabelValues("ok").Inc()
	m.uploadBytes.Observe(float64(size))
}

// CheckedOut, üretilen checkout linkini sayar.
func (m *Metrics) CheckedOut() { m.cartCheckouts.Inc() }

// JobRan, cron job sonucunu kaydeder.
func (m *Metrics) JobRan(job string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.jobRuns.WithLabelValues(job, result).Inc()
}

// SetWSClients, bağlı admin WS client sayısını günceller.
func (m *Metrics) SetWSClients(n int) { m.wsClients.Set(float64(n)) }

// RateLimited, reddedilen isteği scope'a göre sayar ("public", "login").
func (m *Metrics) RateLimited(scope string) { m.rateLimitDrops.WithLabelValues(scope).Inc() }
