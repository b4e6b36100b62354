// Package config, uygulamanın tüm konfigürasyonunu merkezi olarak yönetir.
// Environment variable'lardan okur, .env dosyasını da destekler.
//
// Config struct'ı tüm ayarları tek bir yerde toplar, böylece
// her yerde ayrı ayrı os.Getenv() çağırmak yerine tek bir Config nesnesi taşırız.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/akinalp/milan/pkg/crypto"
	"github.com/akinalp/milan/pkg/ratelimit"
)

// Storage backend isimleri.
const (
	StorageLocal    = "local"
	StorageSupabase = "supabase"
)

// Config, uygulamanın tüm konfigürasyon değerlerini taşır.
// Her alt bölüm ayrı bir struct — her struct tek bir concern'ü temsil eder.
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Admin     AdminConfig
	JWT       JWTConfig
	Upload    UploadConfig
	Storage   StorageConfig
	Redis     RedisConfig
	Email     EmailConfig
	Site      SiteConfig
	RateLimit RateLimitConfig
	Jobs      JobsConfig
	Log       LogConfig
	Security  SecurityConfig
}

// ServerConfig, HTTP server ayarları.
type ServerConfig struct {
	Host           string
	Port           int
	AllowedOrigins []string
	// TrustedProxies, X-Forwarded-For'u okunabilecek reverse proxy'ler (IP veya CIDR).
	// Boşsa client IP'si her zaman bağlantının uzak adresidir.
	TrustedProxies []string
}

// DatabaseConfig, SQLite database ayarları.
type DatabaseConfig struct {
	Path string // SQLite dosya yolu (ör: ./data/milan.db)
}

// AdminConfig, back office giriş bilgileri.
//
// Tek bir admin hesabı vardır. Password düz metin verilirse başlangıçta
// bcrypt ile hash'lenir; PasswordHash verilirse doğrudan kullanılır.
type AdminConfig struct {
	Username     string
	Password     string
	PasswordHash string
}

// JWTConfig, admin session token ayarları.
type JWTConfig struct {
	Secret      string        // Token imzalama anahtarı — GİZLİ TUTULMALI
	TokenExpiry time.Duration // Varsayılan: 12 saat
}

// UploadConfig, resim yükleme ayarları.
type UploadConfig struct {
	Dir           string // Local storage kullanılıyorsa dosyaların kaydedileceği dizin
	MaxSize       int64  // Byte cinsinden max dosya boyutu (varsayılan: 10MB)
	PublicMaxSize int64  // Public review resmi için daha düşük limit (varsayılan: 5MB)
}

// StorageConfig, resim depolama backend'i seçimi.
type StorageConfig struct {
	Backend        string // "local" veya "supabase"
	SupabaseURL    string
	SupabaseKey    string
	SupabaseBucket string
}

// RedisConfig, sepet (cart) KV store ayarları.
// URL boşsa sepetler SQLite'taki carts tablosunda tutulur.
type RedisConfig struct {
	URL     string
	CartTTL time.Duration
}

// EmailConfig, restoran sahibine giden bildirim email ayarları.
type EmailConfig struct {
	ResendAPIKey string
	FromEmail    string
	OwnerEmail   string
}

// SiteConfig, public sitede kullanılan sabitler.
type SiteConfig struct {
	RestaurantName string
	WhatsAppNumber string
}

// RateLimitConfig, public yazma endpoint'leri (review, mesaj, like) için limit.
type RateLimitConfig struct {
	PublicPerMinute int
	PublicBurst     int
}

// JobsConfig, cron job ayarları.
type JobsConfig struct {
	LowStockSchedule string // Standart 5 alanlı cron ifadesi
}

// SecurityConfig, veri şifreleme ayarları.
// DataKey boşsa personel Aadhar numaraları düz metin saklanır.
type SecurityConfig struct {
	DataKey string // 64 hex karakter (AES-256)
}

// LogConfig, zap logger ayarları.
type LogConfig struct {
	Level       string
	Development bool
}

// Load, environment variable'lardan Config oluşturur.
// .env dosyası varsa önce onu yükler (development kolaylığı için).
func Load() (*Config, error) {
	// .env dosyası yoksa hata vermez, sessizce devam eder.
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("SERVER_PORT", "9090"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	tokenExpiry, err := time.ParseDuration(getEnv("JWT_TOKEN_EXPIRY", "12h"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_TOKEN_EXPIRY: %w", err)
	}

	maxSize, err := strconv.ParseInt(getEnv("UPLOAD_MAX_SIZE", "10485760"), 10, 64) // 10MB
	if err != nil {
		return nil, fmt.Errorf("invalid UPLOAD_MAX_SIZE: %w", err)
	}

	publicMaxSize, err := strconv.ParseInt(getEnv("UPLOAD_PUBLIC_MAX_SIZE", "5242880"), 10, 64) // 5MB
	if err != nil {
		return nil, fmt.Errorf("invalid UPLOAD_PUBLIC_MAX_SIZE: %w", err)
	}

	cartTTL, err := time.ParseDuration(getEnv("CART_TTL", "720h"))
	if err != nil {
		return nil, fmt.Errorf("invalid CART_TTL: %w", err)
	}

	perMinute, err := strconv.Atoi(getEnv("RATE_LIMIT_PUBLIC_PER_MINUTE", "20"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_PUBLIC_PER_MINUTE: %w", err)
	}

	burst, err := strconv.Atoi(getEnv("RATE_LIMIT_PUBLIC_BURST", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_PUBLIC_BURST: %w", err)
	}

	devLog, err := strconv.ParseBool(getEnv("LOG_DEVELOPMENT", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_DEVELOPMENT: %w", err)
	}

	jwtSecret := getEnv("JWT_SECRET", "")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	admin := AdminConfig{
		Username:     strings.ToLower(strings.TrimSpace(getEnv("ADMIN_USERNAME", "admin"))),
		Password:     getEnv("ADMIN_PASSWORD", ""),
		PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
	}
	if admin.Password == "" && admin.PasswordHash == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD or ADMIN_PASSWORD_HASH environment variable is required")
	}

	storage := StorageConfig{
		Backend:        strings.ToLower(getEnv("STORAGE_BACKEND", StorageLocal)),
		SupabaseURL:    getEnv("SUPABASE_URL", ""),
		SupabaseKey:    getEnv("SUPABASE_SERVICE_KEY", ""),
		SupabaseBucket: getEnv("SUPABASE_BUCKET", "images"),
	}
	switch storage.Backend {
	case StorageLocal:
	case StorageSupabase:
		if storage.SupabaseURL == "" || storage.SupabaseKey == "" {
			return nil, fmt.Errorf("SUPABASE_URL and SUPABASE_SERVICE_KEY are required when STORAGE_BACKEND=supabase")
		}
	default:
		return nil, fmt.Errorf("invalid STORAGE_BACKEND: %q", storage.Backend)
	}

	trustedProxies := splitList(getEnv("TRUSTED_PROXIES", ""))
	if _, err := ratelimit.NewIPResolver(trustedProxies); err != nil {
		return nil, fmt.Errorf("invalid TRUSTED_PROXIES: %w", err)
	}

	dataKey := getEnv("DATA_ENCRYPTION_KEY", "")
	if dataKey != "" {
		if _, err := crypto.DeriveKey(dataKey); err != nil {
			return nil, fmt.Errorf("invalid DATA_ENCRYPTION_KEY: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			Port:           port,
			AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
			TrustedProxies: trustedProxies,
		},
		Database: DatabaseConfig{
			Path: getEnv("DATABASE_PATH", "./data/milan.db"),
		},
		Admin: admin,
		JWT: JWTConfig{
			Secret:      jwtSecret,
			TokenExpiry: tokenExpiry,
		},
		Upload: UploadConfig{
			Dir:           getEnv("UPLOAD_DIR", "./data/uploads"),
			MaxSize:       maxSize,
			PublicMaxSize: publicMaxSize,
		},
		Storage: storage,
		Redis: RedisConfig{
			URL:     getEnv("REDIS_URL", ""),
			CartTTL: cartTTL,
		},
		Email: EmailConfig{
			ResendAPIKey: getEnv("RESEND_API_KEY", ""),
			FromEmail:    getEnv("RESEND_FROM", ""),
			OwnerEmail:   getEnv("OWNER_EMAIL", ""),
		},
		Site: SiteConfig{
			RestaurantName: getEnv("RESTAURANT_NAME", "Milan Restaurant"),
			WhatsAppNumber: getEnv("WHATSAPP_NUMBER", "917023232376"),
		},
		RateLimit: RateLimitConfig{
			PublicPerMinute: perMinute,
			PublicBurst:     burst,
		},
		Jobs: JobsConfig{
			LowStockSchedule: getEnv("LOW_STOCK_SCHEDULE", "0 9 * * *"),
		},
		Log: LogConfig{
			Level:       getEnv("LOG_LEVEL", "info"),
			Development: devLog,
		},
		Security: SecurityConfig{
			DataKey: dataKey,
		},
	}

	return cfg, nil
}

// Addr, HTTP server'ın dinleyeceği adresi döner (ör: "0.0.0.0:9090").
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// EmailEnabled, bildirim email'i için gerekli tüm alanlar dolu mu?
func (c *EmailConfig) EmailEnabled() bool {
	return c.ResendAPIKey != "" && c.FromEmail != "" && c.OwnerEmail != ""
}

// getEnv, environment variable'ı okur, yoksa fallback değeri döner.
func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

// splitList, virgülle ayrılmış listeyi parse eder, boş elemanları atlar.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
