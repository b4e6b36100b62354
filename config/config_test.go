package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// baseEnv, Load'un zorunlu alanlarını doldurur.
func baseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("ADMIN_PASSWORD", "chai123")
	t.Setenv("STORAGE_BACKEND", "local")
	t.Setenv("DATA_ENCRYPTION_KEY", "")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("CART_TTL", "720h")
	t.Setenv("TRUSTED_PROXIES", "")
}

func TestLoadDefaults(t *testing.T) {
	baseEnv(t)
	t.Setenv("ADMIN_USERNAME", "  Owner ")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://milan.test, ,http://localhost:3000")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "owner", cfg.Admin.Username)
	assert.Equal(t, 720*time.Hour, cfg.Redis.CartTTL)
	assert.Equal(t, []string{"https://milan.test", "http://localhost:3000"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, StorageLocal, cfg.Storage.Backend)
	assert.Empty(t, cfg.Server.TrustedProxies, "forwarded headers are ignored by default")
	assert.True(t, strings.HasSuffix(cfg.Server.Addr(), ":9090"))
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{"missing jwt secret", "JWT_SECRET", "", "JWT_SECRET"},
		{"bad port", "SERVER_PORT", "http", "SERVER_PORT"},
		{"bad cart ttl", "CART_TTL", "forever", "CART_TTL"},
		{"unknown storage", "STORAGE_BACKEND", "s3", "STORAGE_BACKEND"},
		{"supabase without url", "STORAGE_BACKEND", "supabase", "SUPABASE_URL"},
		{"short data key", "DATA_ENCRYPTION_KEY", "abcd", "DATA_ENCRYPTION_KEY"},
		{"bad trusted proxy", "TRUSTED_PROXIES", "127.0.0.1,caddy", "TRUSTED_PROXIES"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			baseEnv(t)
			t.Setenv("SUPABASE_URL", "")
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoadRequiresAdminPassword(t *testing.T) {
	baseEnv(t)
	t.Setenv("ADMIN_PASSWORD", "")
	t.Setenv("ADMIN_PASSWORD_HASH", "")

	_, err := Load()
	assert.ErrorContains(t, err, "ADMIN_PASSWORD")
}

func TestEmailEnabled(t *testing.T) {
	assert.False(t, (&EmailConfig{ResendAPIKey: "re_x"}).EmailEnabled())
	assert.True(t, (&EmailConfig{ResendAPIKey: "re_x", FromEmail: "a@b", OwnerEmail: "c@d"}).EmailEnabled())
}

func TestLoadTrustedProxies(t *testing.T) {
	baseEnv(t)
	t.Setenv("TRUSTED_PROXIES", "127.0.0.1, 172.16.0.0/12")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"127.0.0.1", "172.16.0.0/12"}, cfg.Server.TrustedProxies)
}
