// Package main — Handler katmanı başlatma.
//
// Handler'lar "thin"dir — sadece HTTP parse + service call + response write.
package main

import (
	"go.uber.org/zap"

	"github.com/akinalp/milan/config"
	"github.com/akinalp/milan/handlers"
	"github.com/akinalp/milan/pkg/metrics"
	"github.com/akinalp/milan/ws"
)

// Handlers, tüm handler instance'larını tutan container struct.
type Handlers struct {
	Auth      *handlers.AuthHandler
	Page      *handlers.PageHandler
	Menu      *handlers.MenuHandler
	Review    *handlers.ReviewHandler
	Message   *handlers.MessageHandler
	Settings  *handlers.SettingsHandler
	Hero      *handlers.SlideHandler
	Makrana   *handlers.SlideHandler
	Gallery   *handlers.GalleryHandler
	Staff     *handlers.StaffHandler
	Ledger    *handlers.LedgerHandler
	Cart      *handlers.CartHandler
	Dashboard *handlers.DashboardHandler
	Upload    *handlers.UploadHandler
	WS        *ws.Handler
}

// initHandlers, tüm handler'ları service ve limiter bağımlılıklarıyla oluşturur.
func initHandlers(
	svcs *Services,
	limiters *RateLimiters,
	hub *ws.Hub,
	cfg *config.Config,
	m *metrics.Metrics,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		Auth:      handlers.NewAuthHandler(svcs.Auth, limiters.Login, m),
		Page:      handlers.NewPageHandler(svcs.Page),
		Menu:      handlers.NewMenuHandler(svcs.Menu, svcs.Highlight, svcs.Scan),
		Review:    handlers.NewReviewHandler(svcs.Review),
		Message:   handlers.NewMessageHandler(svcs.Message),
		Settings:  handlers.NewSettingsHandler(svcs.Settings),
		Hero:      handlers.NewSlideHandler(svcs.Hero),
		Makrana:   handlers.NewSlideHandler(svcs.Makrana),
		Gallery:   handlers.NewGalleryHandler(svcs.Gallery),
		Staff:     handlers.NewStaffHandler(svcs.Staff),
		Ledger:    handlers.NewLedgerHandler(svcs.Udhar, svcs.Stock),
		Cart:      handlers.NewCartHandler(svcs.Cart),
		Dashboard: handlers.NewDashboardHandler(svcs.Dashboard),
		Upload:    handlers.NewUploadHandler(svcs.Upload, cfg.Upload.MaxSize, cfg.Upload.PublicMaxSize),
		WS:        ws.NewHandler(hub, svcs.Auth, cfg.Server.AllowedOrigins, logger),
	}
}
