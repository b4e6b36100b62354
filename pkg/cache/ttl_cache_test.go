package cache

import (
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeClock, cache'in now fonksiyonunu elle ilerletir.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (f *fakeClock) now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.t
}

func (f *fakeClock) advance(d time.Duration) {
	f.mu.Lock()
	f.t = f.t.Add(d)
	f.mu.Unlock()
}

func newTestCache(ttl time.Duration) (*TTLCache[string, int], *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	c := New[string, int](ttl, time.Hour)
	c.now = clock.now
	return c, clock
}

func TestGetSetExpiry(t *testing.T) {
	c, clock := newTestCache(time.Minute)
	defer c.Close()

	c.Set("a", 1)
	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	clock.advance(2 * time.Minute)
	_, ok = c.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 1, c.Len(), "expired entries stay until eviction")

	c.evictExpired()
	assert.Zero(t, c.Len())
}

func TestSetIfAbsent(t *testing.T) {
	c, clock := newTestCache(24 * time.Hour)
	defer c.Close()

	assert.True(t, c.SetIfAbsent("ip:img", 1))
	assert.False(t, c.SetIfAbsent("ip:img", 2))

	v, _ := c.Get("ip:img")
	assert.Equal(t, 1, v)

	clock.advance(25 * time.Hour)
	assert.True(t, c.SetIfAbsent("ip:img", 3))
}

func TestSetIfAbsentConcurrent(t *testing.T) {
	c, _ := newTestCache(time.Hour)
	defer c.Close()

	var wins atomic.Int32
	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if c.SetIfAbsent("same", 1) {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
}

func TestDeleteFunc(t *testing.T) {
	c, _ := newTestCache(time.Hour)
	defer c.Close()

	c.Set("1.1.1.1:img1", 1)
	c.Set("2.2.2.2:img1", 1)
	c.Set("1.1.1.1:img2", 1)

	c.DeleteFunc(func(k string) bool { return strings.HasSuffix(k, ":img1") })

	assert.Equal(t, 1, c.Len())
	_, ok := c.Get("1.1.1.1:img2")
	assert.True(t, ok)

	c.Delete("1.1.1.1:img2")
	assert.Zero(t, c.Len())
}

func TestCloseIsIdempotent(t *testing.T) {
	c := New[string, int](time.Minute, time.Millisecond)
	c.Close()
	c.Close()
}
