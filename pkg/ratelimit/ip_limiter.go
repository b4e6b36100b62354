package ratelimit

import (
	"math"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// visitor, bir IP'nin token bucket'ı ve son görülme zamanı.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPLimiter, public yazma endpoint'leri için IP başına token bucket.
//
// perMinute: dakikada dolan token sayısı, burst: aynı anda harcanabilecek token.
// 10 dakika boyunca görülmeyen IP'lerin bucket'ı silinir.
//
//	limiter := NewIPLimiter(20, 5)
//	if !limiter.Allow(ip) { return 429 }
type IPLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rate     rate.Limit
	burst    int
	idleTTL  time.Duration

	stopCleanup chan struct{}
	stopOnce    sync.Once
}

// NewIPLimiter, limiter'ı oluşturur ve temizleme goroutine'ini başlatır.
func NewIPLimiter(perMinute, burst int) *IPLimiter {
	if perMinute <= 0 {
		perMinute = 1
	}
	if burst <= 0 {
		burst = 1
	}
	l := &IPLimiter{
		visitors:    make(map[string]*visitor),
		rate:        rate.Limit(float64(perMinute) / 60.0),
		burst:       burst,
		idleTTL:     10 * time.Minute,
		stopCleanup: make(chan struct{}),
	}
	go l.cleanupLoop()
	return l
}

func (l *IPLimiter) get(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = time.Now()
	return v.limiter
}

// Allow, IP için bir token harcar. Token yoksa false döner.
func (l *IPLimiter) Allow(ip string) bool {
	return l.get(ip).Allow()
}

// RetryAfterSeconds, bir sonraki token'ın dolmasına kalan süre (en az 1 saniye).
func (l *IPLimiter) RetryAfterSeconds(ip string) int {
	lim := l.get(ip)
	r := lim.Reserve()
	delay := r.Delay()
	r.Cancel()
	return int(math.Max(1, math.Ceil(delay.Seconds())))
}

// Close, temizleme goroutine'ini durdurur.
func (l *IPLimiter) Close() {
	l.stopOnce.Do(func() { close(l.stopCleanup) })
}

func (l *IPLimiter) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.cleanup(time.Now())
		case <-l.stopCleanup:
			return
		}
	}
}

func (l *IPLimiter) cleanup(now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for ip, v := range l.visitors {
		if now.Sub(v.lastSeen) > l.idleTTL {
			delete(l.visitors, ip)
		}
	}
}

func (l *IPLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.visitors)
}
