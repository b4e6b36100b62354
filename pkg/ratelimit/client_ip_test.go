package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIPResolver(t *testing.T) {
	resolver, err := NewIPResolver([]string{"10.0.0.0/8", " 192.0.2.10 "})
	require.NoError(t, err)

	tests := []struct {
		name    string
		remote  string
		headers map[string]string
		want    string
	}{
		{"direct client ignores forwarded headers", "203.0.113.9:5000",
			map[string]string{"X-Forwarded-For": "1.2.3.4", "X-Real-IP": "5.6.7.8"}, "203.0.113.9"},
		{"trusted proxy uses last untrusted hop", "10.0.0.2:5000",
			map[string]string{"X-Forwarded-For": "1.2.3.4, 203.0.113.7, 10.0.0.1"}, "203.0.113.7"},
		{"single trusted ip", "192.0.2.10:443",
			map[string]string{"X-Forwarded-For": "198.51.100.4"}, "198.51.100.4"},
		{"trusted proxy falls back to real ip", "10.0.0.2:5000",
			map[string]string{"X-Real-IP": " 198.51.100.4 "}, "198.51.100.4"},
		{"garbage hop stops the walk", "10.0.0.2:5000",
			map[string]string{"X-Forwarded-For": "not-an-ip"}, "10.0.0.2"},
		{"remote without port", "192.0.2.1", nil, "192.0.2.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, resolver.Resolve(r))
		})
	}
}

func TestNewIPResolverRejectsBadEntries(t *testing.T) {
	_, err := NewIPResolver([]string{"10.0.0.0/33"})
	assert.Error(t, err)
	_, err = NewIPResolver([]string{"proxy.local"})
	assert.Error(t, err)

	r, err := NewIPResolver(nil)
	require.NoError(t, err)
	assert.Empty(t, r.trusted)
}

func TestExtractIPUsesResolvedAddress(t *testing.T) {
	resolver, err := NewIPResolver(nil)
	require.NoError(t, err)

	var got string
	h := resolver.Middleware(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = ExtractIP(r)
	}))

	r := httptest.NewRequest(http.MethodPost, "/api/gallery/1/like", nil)
	r.RemoteAddr = "203.0.113.9:5000"
	r.Header.Set("X-Forwarded-For", "1.1.1.1")
	h.ServeHTTP(httptest.NewRecorder(), r)
	assert.Equal(t, "203.0.113.9", got, "spoofed header is ignored without a trusted proxy")

	bare := httptest.NewRequest(http.MethodGet, "/", nil)
	bare.RemoteAddr = "192.0.2.1:1"
	bare.Header.Set("X-Forwarded-For", "1.1.1.1")
	assert.Equal(t, "192.0.2.1", ExtractIP(bare))
}
