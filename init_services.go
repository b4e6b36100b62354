// Package main — Service katmanı başlatma.
//
// initServices, tüm service implementasyonlarını oluşturur.
// Sıralama kuralı: PageService diğer service'leri birleştirdiği için en son kurulur.
package main

import (
	"time"

	"go.uber.org/zap"

	"github.com/akinalp/milan/config"
	"github.com/akinalp/milan/pkg/cache"
	"github.com/akinalp/milan/pkg/email"
	"github.com/akinalp/milan/pkg/metrics"
	"github.com/akinalp/milan/pkg/objectstore"
	"github.com/akinalp/milan/pkg/ratelimit"
	"github.com/akinalp/milan/services"
	"github.com/akinalp/milan/ws"
)

// Services, tüm service instance'larını tutan container struct.
type Services struct {
	Auth      services.AuthService
	Menu      services.MenuService
	Highlight services.HighlightService
	Scan      services.ScanService
	Review    services.ReviewService
	Message   services.MessageService
	Settings  services.SettingsService
	Hero      services.SlideService
	Makrana   services.SlideService
	Gallery   services.GalleryService
	Staff     services.StaffService
	Udhar     services.UdharService
	Stock     services.StockService
	Cart      services.CartService
	Dashboard services.DashboardService
	Upload    services.UploadService
	Page      services.PageService
}

// Caches, süreç içi TTL cache'leri. Shutdown'da Close edilir.
type Caches struct {
	Likes    *cache.TTLCache[string, struct{}]
	Settings *cache.TTLCache[string, string]
}

func initCaches() *Caches {
	return &Caches{
		Likes:    cache.New[string, struct{}](24*time.Hour, 10*time.Minute),
		Settings: cache.New[string, string](time.Minute, 5*time.Minute),
	}
}

// Close, cache temizleme goroutine'lerini durdurur.
func (c *Caches) Close() {
	c.Likes.Close()
	c.Settings.Close()
}

// RateLimiters, HTTP katmanındaki limiter'lar. Shutdown'da Close edilir.
type RateLimiters struct {
	Login  *ratelimit.LoginRateLimiter
	Public *ratelimit.IPLimiter
}

func initRateLimiters(cfg *config.Config) *RateLimiters {
	return &RateLimiters{
		Login:  ratelimit.NewLoginRateLimiter(5, 2*time.Minute),
		Public: ratelimit.NewIPLimiter(cfg.RateLimit.PublicPerMinute, cfg.RateLimit.PublicBurst),
	}
}

// Close, limiter temizleme goroutine'lerini durdurur.
func (l *RateLimiters) Close() {
	l.Login.Close()
	l.Public.Close()
}

// initServices, repository'ler ve altyapı bağımlılıklarıyla tüm service'leri kurar.
func initServices(
	cfg *config.Config,
	repos *Repositories,
	adminPasswordHash string,
	store objectstore.Store,
	notifier email.Notifier,
	hub ws.Publisher,
	caches *Caches,
	m *metrics.Metrics,
	logger *zap.Logger,
) *Services {
	menu := services.NewMenuService(repos.Menu, store, logger)
	highlight := services.NewHighlightService(repos.Highlight, store, logger)
	scan := services.NewScanService(repos.Scan, store, logger)
	review := services.NewReviewService(repos.Review, store, notifier, hub, m, logger)
	settings := services.NewSettingsService(repos.Setting, caches.Settings, store, logger)
	hero := services.NewSlideService(repos.Hero, store, "hero", logger)
	makrana := services.NewSlideService(repos.Makrana, store, "makrana", logger)
	gallery := services.NewGalleryService(repos.Gallery, caches.Likes, store, hub, m, logger)

	return &Services{
		Auth:      services.NewAuthService(cfg.Admin.Username, adminPasswordHash, cfg.JWT.Secret, cfg.JWT.TokenExpiry),
		Menu:      menu,
		Highlight: highlight,
		Scan:      scan,
		Review:    review,
		Message:   services.NewMessageService(repos.Message, notifier, hub, m, logger),
		Settings:  settings,
		Hero:      hero,
		Makrana:   makrana,
		Gallery:   gallery,
		Staff:     services.NewStaffService(repos.Staff, store, logger),
		Udhar:     services.NewUdharService(repos.Udhar),
		Stock:     services.NewStockService(repos.Stock),
		Cart: services.NewCartService(
			repos.Cart, repos.Menu, cfg.Redis.CartTTL,
			cfg.Site.RestaurantName, cfg.Site.WhatsAppNumber, m,
		),
		Dashboard: services.NewDashboardService(repos.Menu, repos.Review, repos.Message, repos.Staff, repos.Gallery),
		Upload:    services.NewUploadService(store, cfg.Upload.MaxSize, cfg.Upload.PublicMaxSize, m, logger),
		Page: services.NewPageService(
			menu, highlight, scan, review, hero, makrana, gallery, settings,
			cfg.Site.RestaurantName,
		),
	}
}
