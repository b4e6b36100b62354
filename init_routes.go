// Package main — HTTP route registration.
//
// initRoutes, tüm API endpoint'lerini mux'a bağlar.
// Middleware chain helper'ları:
//   - admin: JWT token doğrulaması (back office)
//   - limited: IP başına rate limit (public yazma endpoint'leri)
package main

import (
	"net/http"
	"strings"

	"github.com/akinalp/milan/middleware"
	"github.com/akinalp/milan/pkg"
	"github.com/akinalp/milan/pkg/metrics"
	"github.com/akinalp/milan/services"
	"github.com/akinalp/milan/static"
)

// initRoutes, middleware chain'i kurar ve tüm endpoint'leri mux'a bağlar.
//
// uploadDir boş değilse local storage dosyaları /api/uploads/ altından servis edilir.
func initRoutes(
	mux *http.ServeMux,
	h *Handlers,
	authService services.AuthService,
	limiters *RateLimiters,
	m *metrics.Metrics,
	uploadDir string,
) {
	// ─── Middleware ───
	authMw := middleware.NewAuthMiddleware(authService)
	rateMw := middleware.NewRateLimitMiddleware(limiters.Public, m)

	// ─── Middleware Chain Helpers ───
	admin := func(handler http.HandlerFunc) http.Handler {
		return authMw.Require(handler)
	}
	limited := func(handler http.HandlerFunc) http.Handler {
		return rateMw.Limit(handler)
	}

	// ╔══════════════════════════════════════════╗
	// ║  PUBLIC                                  ║
	// ╚══════════════════════════════════════════╝

	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		pkg.JSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "milan"})
	})
	mux.Handle("GET /metrics", m.Handler())

	// Sayfa aggregate'leri
	mux.HandleFunc("GET /api/site", h.Page.SiteInfo)
	mux.HandleFunc("GET /api/pages/home", h.Page.Home)
	mux.HandleFunc("GET /api/pages/menu", h.Page.Menu)
	mux.HandleFunc("GET /api/pages/gallery", h.Page.Gallery)
	mux.HandleFunc("GET /api/pages/about", h.Page.About)

	// Menü — literal path'ler parametrik path'lerden önce
	mux.HandleFunc("GET /api/menu", h.Menu.List)
	mux.HandleFunc("GET /api/menu/categories", h.Menu.Categories)
	mux.HandleFunc("GET /api/menu/{id}", h.Menu.Get)
	mux.HandleFunc("GET /api/highlights", h.Menu.ListHighlights)
	mux.HandleFunc("GET /api/scans", h.Menu.ListScans)

	// Yorumlar ve mesajlar
	mux.HandleFunc("GET /api/reviews", h.Review.Feed)
	mux.Handle("POST /api/reviews", limited(h.Review.Submit))
	mux.Handle("POST /api/messages", limited(h.Message.Submit))
	mux.Handle("POST /api/uploads/review", limited(h.Upload.UploadPublic))

	// Ayarlar ve slider'lar
	mux.HandleFunc("GET /api/settings/contact", h.Settings.GetContact)
	mux.HandleFunc("GET /api/settings/logo", h.Settings.GetLogo)
	mux.HandleFunc("GET /api/slides/hero", h.Hero.URLs)
	mux.HandleFunc("GET /api/slides/makrana", h.Makrana.URLs)

	// Galeri
	mux.HandleFunc("GET /api/gallery", h.Gallery.List)
	mux.HandleFunc("GET /api/gallery/showcase", h.Gallery.Showcase)
	mux.Handle("POST /api/gallery/{id}/like", limited(h.Gallery.Like))

	// Sepet — sepet id'si X-Cart-ID header'ında taşınır
	mux.HandleFunc("GET /api/cart", h.Cart.Get)
	mux.HandleFunc("DELETE /api/cart", h.Cart.Clear)
	mux.HandleFunc("POST /api/cart/items", h.Cart.Add)
	mux.HandleFunc("PATCH /api/cart/items/{id}", h.Cart.UpdateQuantity)
	mux.HandleFunc("DELETE /api/cart/items/{id}", h.Cart.Remove)
	mux.HandleFunc("POST /api/cart/checkout", h.Cart.Checkout)

	// Auth
	mux.HandleFunc("POST /api/auth/login", h.Auth.Login)

	// ╔══════════════════════════════════════════╗
	// ║  ADMIN (JWT)                             ║
	// ╚══════════════════════════════════════════╝

	mux.Handle("GET /api/admin/me", admin(h.Auth.Me))
	mux.Handle("GET /api/admin/dashboard", admin(h.Dashboard.Stats))
	mux.Handle("POST /api/admin/upload", admin(h.Upload.Upload))

	// Menü
	mux.Handle("POST /api/admin/menu", admin(h.Menu.Create))
	mux.Handle("PATCH /api/admin/menu/{id}", admin(h.Menu.Update))
	mux.Handle("DELETE /api/admin/menu/{id}", admin(h.Menu.Delete))
	mux.Handle("POST /api/admin/highlights", admin(h.Menu.CreateHighlight))
	mux.Handle("PATCH /api/admin/highlights/{id}", admin(h.Menu.UpdateHighlight))
	mux.Handle("DELETE /api/admin/highlights/{id}", admin(h.Menu.DeleteHighlight))
	mux.Handle("POST /api/admin/scans", admin(h.Menu.CreateScan))
	mux.Handle("PUT /api/admin/scans/order", admin(h.Menu.ReorderScans))
	mux.Handle("PATCH /api/admin/scans/{id}", admin(h.Menu.UpdateScan))
	mux.Handle("PUT /api/admin/scans/{id}/order", admin(h.Menu.SetScanOrder))
	mux.Handle("DELETE /api/admin/scans/{id}", admin(h.Menu.DeleteScan))

	// Yorum moderasyonu
	mux.Handle("GET /api/admin/reviews", admin(h.Review.AdminList))
	mux.Handle("POST /api/admin/reviews", admin(h.Review.Create))
	mux.Handle("PATCH /api/admin/reviews/{id}", admin(h.Review.Update))
	mux.Handle("PUT /api/admin/reviews/{id}/approval", admin(h.Review.SetApproved))
	mux.Handle("POST /api/admin/reviews/{id}/toggle", admin(h.Review.ToggleApproved))
	mux.Handle("PUT /api/admin/reviews/{id}/reply", admin(h.Review.Reply))
	mux.Handle("DELETE /api/admin/reviews/{id}", admin(h.Review.Delete))

	// Mesajlar
	mux.Handle("GET /api/admin/messages", admin(h.Message.List))
	mux.Handle("DELETE /api/admin/messages/{id}", admin(h.Message.Delete))

	// Ayarlar ve slider'lar
	mux.Handle("PUT /api/admin/settings/contact", admin(h.Settings.SetContact))
	mux.Handle("PUT /api/admin/settings/logo", admin(h.Settings.SetLogo))
	mux.Handle("GET /api/admin/slides/hero", admin(h.Hero.List))
	mux.Handle("POST /api/admin/slides/hero", admin(h.Hero.Add))
	mux.Handle("DELETE /api/admin/slides/hero/{id}", admin(h.Hero.Delete))
	mux.Handle("GET /api/admin/slides/makrana", admin(h.Makrana.List))
	mux.Handle("POST /api/admin/slides/makrana", admin(h.Makrana.Add))
	mux.Handle("DELETE /api/admin/slides/makrana/{id}", admin(h.Makrana.Delete))

	// Galeri
	mux.Handle("GET /api/admin/gallery", admin(h.Gallery.AdminList))
	mux.Handle("POST /api/admin/gallery", admin(h.Gallery.Add))
	mux.Handle("PUT /api/admin/gallery/showcase", admin(h.Gallery.SaveOrder))
	mux.Handle("PUT /api/admin/gallery/{id}/showcase", admin(h.Gallery.SetShowcaseOrder))
	mux.Handle("DELETE /api/admin/gallery/{id}", admin(h.Gallery.Delete))

	// Personel
	mux.Handle("GET /api/admin/staff", admin(h.Staff.List))
	mux.Handle("POST /api/admin/staff", admin(h.Staff.Create))
	mux.Handle("GET /api/admin/staff/{id}", admin(h.Staff.Get))
	mux.Handle("PATCH /api/admin/staff/{id}", admin(h.Staff.Update))
	mux.Handle("DELETE /api/admin/staff/{id}", admin(h.Staff.Delete))

	// Udhar defteri
	mux.Handle("GET /api/admin/udhar", admin(h.Ledger.ListUdhar))
	mux.Handle("GET /api/admin/udhar/summary", admin(h.Ledger.UdharSummary))
	mux.Handle("POST /api/admin/udhar", admin(h.Ledger.CreateUdhar))
	mux.Handle("PUT /api/admin/udhar/{id}/paid", admin(h.Ledger.SetUdharPaid))
	mux.Handle("POST /api/admin/udhar/{id}/toggle", admin(h.Ledger.ToggleUdharPaid))
	mux.Handle("DELETE /api/admin/udhar/{id}", admin(h.Ledger.DeleteUdhar))

	// Stok
	mux.Handle("GET /api/admin/stock", admin(h.Ledger.ListStock))
	mux.Handle("GET /api/admin/stock/low", admin(h.Ledger.LowStock))
	mux.Handle("POST /api/admin/stock", admin(h.Ledger.CreateStock))
	mux.Handle("PATCH /api/admin/stock/{id}", admin(h.Ledger.UpdateStock))
	mux.Handle("PUT /api/admin/stock/{id}/quantity", admin(h.Ledger.UpdateStockQuantity))
	mux.Handle("DELETE /api/admin/stock/{id}", admin(h.Ledger.DeleteStock))

	// WebSocket — tarayıcı upgrade sırasında header gönderemez,
	// token query parametresiyle gelir: /ws?token=JWT
	mux.HandleFunc("GET /ws", h.WS.HandleConnection)

	// ╔══════════════════════════════════════════╗
	// ║  STATIC                                  ║
	// ╚══════════════════════════════════════════╝

	// Local storage dosyaları. Sadece düz dosya isimleri kabul edilir.
	if uploadDir != "" {
		files := http.FileServer(http.Dir(uploadDir))
		mux.Handle("GET /api/uploads/", http.StripPrefix("/api/uploads/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "" || strings.ContainsAny(r.URL.Path, `/\`) {
				http.NotFound(w, r)
				return
			}
			files.ServeHTTP(w, r)
		})))
	}

	// Gömülü frontend (SPA fallback)
	mux.Handle("GET /", static.Handler())
}
