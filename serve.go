package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/akinalp/milan/config"
	"github.com/akinalp/milan/database"
	"github.com/akinalp/milan/middleware"
	"github.com/akinalp/milan/pkg/crypto"
	"github.com/akinalp/milan/pkg/email"
	"github.com/akinalp/milan/pkg/logger"
	"github.com/akinalp/milan/pkg/metrics"
	"github.com/akinalp/milan/pkg/objectstore"
	"github.com/akinalp/milan/pkg/ratelimit"
	"github.com/akinalp/milan/pkg/supabase"
	"github.com/akinalp/milan/repository"
	"github.com/akinalp/milan/services"
	"github.com/akinalp/milan/ws"
)

// shutdownTimeout, graceful shutdown için bekleme süresi.
const shutdownTimeout = 10 * time.Second

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			log, err := logger.New(cfg.Log.Level, cfg.Log.Development)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			return runServer(cmd.Context(), cfg, log)
		},
	}
}

// runServer, tüm katmanları kurar ve sinyal gelene kadar çalışır.
//
// Wire-up sırası:
//  1. Database + migration
//  2. Object store (local / supabase), cart KV (redis / sqlite)
//  3. Repository → Service → Handler
//  4. WebSocket hub, cron scheduler
//  5. Router + middleware chain + HTTP server
//  6. Graceful shutdown
func runServer(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	mainLog := log.Named("main")
	mainLog.Info("milan server starting", zap.Int("port", cfg.Server.Port))

	// ─── 1. Database ───
	db, err := database.New(cfg.Database.Path, database.Migrations(), log)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	m := metrics.New()

	// ─── 2. Storage ───
	store, uploadDir, err := newObjectStore(cfg)
	if err != nil {
		return err
	}
	mainLog.Info("object store ready", zap.String("backend", cfg.Storage.Backend))

	var cartStore repository.CartStore
	if cfg.Redis.URL != "" {
		client, err := newRedisClient(ctx, cfg.Redis.URL)
		if err != nil {
			return err
		}
		defer client.Close()
		cartStore = repository.NewRedisCartStore(client)
		mainLog.Info("cart store: redis")
	} else {
		mainLog.Info("cart store: sqlite")
	}

	var staffCipher *crypto.Cipher
	if cfg.Security.DataKey != "" {
		staffCipher, err = crypto.NewCipher(cfg.Security.DataKey)
		if err != nil {
			return fmt.Errorf("failed to create data cipher: %w", err)
		}
	} else {
		mainLog.Warn("DATA_ENCRYPTION_KEY not set, staff aadhar numbers are stored in plain text")
	}

	adminHash := cfg.Admin.PasswordHash
	if adminHash == "" {
		adminHash, err = services.HashPassword(cfg.Admin.Password)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}
	}

	var notifier email.Notifier
	if cfg.Email.EmailEnabled() {
		notifier = email.NewResendNotifier(cfg.Email.ResendAPIKey, cfg.Email.FromEmail, cfg.Email.OwnerEmail, cfg.Site.RestaurantName)
		mainLog.Info("email notifications enabled", zap.String("owner", cfg.Email.OwnerEmail))
	} else {
		notifier = email.NewNopNotifier()
		mainLog.Warn("email notifications disabled (RESEND_API_KEY, RESEND_FROM or OWNER_EMAIL missing)")
	}

	// ─── 3. WebSocket Hub ───
	hub := ws.NewHub(log, m.SetWSClients)
	go hub.Run()

	// ─── 4. Layers ───
	caches := initCaches()
	defer caches.Close()
	limiters := initRateLimiters(cfg)
	defer limiters.Close()

	repos := initRepositories(db.Conn, cartStore, staffCipher)
	svcs := initServices(cfg, repos, adminHash, store, notifier, hub, caches, m, log)
	h := initHandlers(svcs, limiters, hub, cfg, m, log)

	scheduler, err := services.NewScheduler(cfg.Jobs.LowStockSchedule, repos.Stock, repos.Cart, notifier, hub, m, log)
	if err != nil {
		return err
	}
	scheduler.Start()

	// ─── 5. Router ───
	mux := http.NewServeMux()
	initRoutes(mux, h, svcs.Auth, limiters, m, uploadDir)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Cart-ID"},
		ExposedHeaders:   []string{"Retry-After"},
		AllowCredentials: true,
	})

	ipResolver, err := ratelimit.NewIPResolver(cfg.Server.TrustedProxies)
	if err != nil {
		return err
	}

	handler := corsHandler.Handler(
		middleware.Instrument(m)(
			middleware.RequestLogger(log)(
				ipResolver.Middleware(mux),
			),
		),
	)

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// ─── 6. Graceful Shutdown ───
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		mainLog.Info("server listening", zap.String("addr", cfg.Server.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
	}
	mainLog.Info("shutting down...")

	// Önce admin WS bağlantıları kapanır, sonra HTTP server yeni istek almayı
	// bırakıp mevcutları bekler, en son süren cron job'ları beklenir.
	hub.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		mainLog.Error("forced shutdown", zap.Error(err))
	}
	scheduler.Stop(shutdownCtx)

	mainLog.Info("server stopped gracefully")
	return nil
}

// newObjectStore, STORAGE_BACKEND'e göre resim deposunu kurar.
// Local backend'de ikinci dönüş değeri servis edilecek upload dizinidir.
func newObjectStore(cfg *config.Config) (objectstore.Store, string, error) {
	switch cfg.Storage.Backend {
	case config.StorageSupabase:
		client, err := supabase.New(supabase.Config{
			URL:    cfg.Storage.SupabaseURL,
			APIKey: cfg.Storage.SupabaseKey,
		})
		if err != nil {
			return nil, "", fmt.Errorf("failed to create supabase client: %w", err)
		}
		return objectstore.NewSupabaseStore(client.Bucket(cfg.Storage.SupabaseBucket)), "", nil
	default:
		store, err := objectstore.NewLocalStore(cfg.Upload.Dir)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create upload directory: %w", err)
		}
		return store, cfg.Upload.Dir, nil
	}
}

// newRedisClient, REDIS_URL'den client oluşturur ve bağlantıyı test eder.
func newRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}
