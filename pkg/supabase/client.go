// Package supabase, Supabase Storage REST API için küçük bir client.
//
// Sadece resim yaşam döngüsünün ihtiyaç duyduğu çağrılar vardır:
// bucket'a yükleme, silme ve public URL üretme. Geçici hatalarda (429, 5xx,
// ağ timeout'u) exponential backoff ile tekrar denenir.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// RetryConfig, tekrar deneme davranışı.
type RetryConfig struct {
	MaxRetries        int
	InitialBackoff    time.Duration
	MaxBackoff        time.Duration
	BackoffMultiplier float64
	Jitter            float64 // 0.0 - 1.0
}

// DefaultRetryConfig, üretim için makul varsayılanlar.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:        3,
		InitialBackoff:    100 * time.Millisecond,
		MaxBackoff:        5 * time.Second,
		BackoffMultiplier: 2.0,
		Jitter:            0.1,
	}
}

// Config, client ayarları.
type Config struct {
	URL        string // https://<project>.supabase.co
	APIKey     string // service role key — sadece sunucuda tutulur
	HTTPClient *http.Client
	Retry      *RetryConfig
}

// Client, Supabase REST client'ı.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	retry      RetryConfig
}

// New, yeni bir client oluşturur.
func New(cfg Config) (*Client, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("supabase URL is required")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("supabase API key is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	retry := DefaultRetryConfig()
	if cfg.Retry != nil {
		retry = *cfg.Retry
	}

	return &Client{
		baseURL:    strings.TrimSuffix(cfg.URL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
		retry:      retry,
	}, nil
}

// Bucket, bir storage bucket'ı için client döner.
func (c *Client) Bucket(name string) *BucketClient {
	return &BucketClient{client: c, bucket: name}
}

// BucketClient, tek bir bucket üzerindeki işlemler.
type BucketClient struct {
	client *Client
	bucket string
}

// Name, bucket adı.
func (b *BucketClient) Name() string { return b.bucket }

// Upload, dosyayı bucket'a yükler. Aynı isimde dosya varsa hata döner (upsert kapalı).
func (b *BucketClient) Upload(ctx context.Context, path string, data []byte, contentType string) error {
	reqURL := fmt.Sprintf("%s/storage/v1/object/%s/%s", b.client.baseURL, b.bucket, escapePath(path))

	resp, err := b.client.do(ctx, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("Cache-Control", "max-age=3600")
		req.Header.Set("x-upsert", "false")
		return req, nil
	})
	if err != nil {
		return fmt.Errorf("upload %s: %w", path, err)
	}
	return resp.Error()
}

// Remove, verilen yolları bucket'tan siler.
func (b *BucketClient) Remove(ctx context.Context, paths []string) error {
	reqURL := fmt.Sprintf("%s/storage/v1/object/%s", b.client.baseURL, b.bucket)
	body, err := json.Marshal(map[string][]string{"prefixes": paths})
	if err != nil {
		return fmt.Errorf("marshal remove body: %w", err)
	}

	resp, err := b.client.do(ctx, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodDelete, reqURL, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		return req, nil
	})
	if err != nil {
		return fmt.Errorf("remove %v: %w", paths, err)
	}
	return resp.Error()
}

// PublicURLPrefix, bu bucket'taki public dosyaların URL prefix'i.
func (b *BucketClient) PublicURLPrefix() string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/", b.client.baseURL, b.bucket)
}

// PublicURL, dosyanın public URL'i.
func (b *BucketClient) PublicURL(path string) string {
	return b.PublicURLPrefix() + escapePath(path)
}

// Response, ham API yanıtı.
type Response struct {
	StatusCode int
	Body       []byte
}

// Error, yanıt başarısızsa Supabase'in mesajını taşıyan error döner.
func (r *Response) Error() error {
	if r.StatusCode < 400 {
		return nil
	}
	var errResp struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(r.Body, &errResp); err == nil {
		if errResp.Message != "" {
			return &APIError{StatusCode: r.StatusCode, Message: errResp.Message}
		}
		if errResp.Error != "" {
			return &APIError{StatusCode: r.StatusCode, Message: errResp.Error}
		}
	}
	return &APIError{StatusCode: r.StatusCode}
}

// APIError, Supabase'in 4xx/5xx yanıtı.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("supabase error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("supabase error (%d): %s", e.StatusCode, e.Message)
}

// do, isteği tekrar deneme ile çalıştırır.
// newReq her denemede yeni bir request üretir — body tekrar okunabilir olmalı.
func (c *Client) do(ctx context.Context, newReq func() (*http.Request, error)) (*Response, error) {
	var lastErr error
	var last *Response

	for attempt := 0; attempt <= c.retry.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.backoff(attempt)):
			}
		}

		req, err := newReq()
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		c.setHeaders(req)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if isRetryableError(err) {
				lastErr = err
				continue
			}
			return nil, fmt.Errorf("http request: %w", err)
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("read response: %w", err)
		}

		last = &Response{StatusCode: resp.StatusCode, Body: body}
		if isRetryableStatus(resp.StatusCode) {
			lastErr = nil
			continue
		}
		return last, nil
	}

	if last != nil {
		return last, nil
	}
	return nil, fmt.Errorf("retries exhausted: %w", lastErr)
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}
}

func (c *Client) backoff(attempt int) time.Duration {
	d := float64(c.retry.InitialBackoff) * math.Pow(c.retry.BackoffMultiplier, float64(attempt-1))
	if d > float64(c.retry.MaxBackoff) {
		d = float64(c.retry.MaxBackoff)
	}
	if c.retry.Jitter > 0 {
		d += d * c.retry.Jitter * (rand.Float64()*2 - 1)
	}
	return time.Duration(d)
}

func isRetryableStatus(code int) bool {
	switch code {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

func isRetryableError(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// escapePath, yol segmentlerini URL için escape eder ("/" korunur).
func escapePath(p string) string {
	parts := strings.Split(p, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	return strings.Join(parts, "/")
}
