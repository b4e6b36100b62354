package services

import (
	"context"
	"database/sql"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/akinalp/milan/database"
	"github.com/akinalp/milan/models"
	"github.com/akinalp/milan/pkg"
	"github.com/akinalp/milan/pkg/cart"
	"github.com/akinalp/milan/ws"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.New(database.MemoryPath, database.Migrations(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db.Conn
}

func ptr[T any](v T) *T { return &v }

// recordingHub, yayınlanan event'leri saklar.
type recordingHub struct {
	mu     sync.Mutex
	events []ws.Event
}

func (h *recordingHub) Publish(e ws.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, e)
}

func (h *recordingHub) ops() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, 0, len(h.events))
	for _, e := range h.events {
		out = append(out, e.Op)
	}
	return out
}

// fakeNotifier, bildirimleri kanala yazar; async gönderimler beklenebilir.
type fakeNotifier struct {
	reviews  chan *models.Review
	messages chan *models.CustomerMessage
	lowStock chan []models.StockItem
	err      error
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{
		reviews:  make(chan *models.Review, 4),
		messages: make(chan *models.CustomerMessage, 4),
		lowStock: make(chan []models.StockItem, 4),
	}
}

func (n *fakeNotifier) NotifyNewMessage(_ context.Context, msg *models.CustomerMessage) error {
	n.messages <- msg
	return n.err
}

func (n *fakeNotifier) NotifyPendingReview(_ context.Context, r *models.Review) error {
	n.reviews <- r
	return n.err
}

func (n *fakeNotifier) NotifyLowStock(_ context.Context, items []models.StockItem) error {
	n.lowStock <- items
	return n.err
}

// memCartStore, TTL'i yok sayan bellek içi CartStore.
type memCartStore struct {
	mu     sync.Mutex
	carts  map[string]cart.Cart
	saves  int
	purged int64
}

func newMemCartStore() *memCartStore {
	return &memCartStore{carts: map[string]cart.Cart{}}
}

func (s *memCartStore) Load(_ context.Context, id string) (*cart.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[id]
	if !ok {
		return nil, pkg.ErrNotFound
	}
	c.Items = append([]cart.Item(nil), c.Items...)
	return &c, nil
}

func (s *memCartStore) Save(_ context.Context, id string, c *cart.Cart, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[id] = cart.Cart{Items: append([]cart.Item(nil), c.Items...)}
	s.saves++
	return nil
}

func (s *memCartStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, id)
	return nil
}

func (s *memCartStore) PurgeExpired(context.Context) (int64, error) {
	return s.purged, nil
}

// fakeStore, silinen URL'leri kaydeden objectstore.Store.
type fakeStore struct {
	mu      sync.Mutex
	deleted []string
}

func (s *fakeStore) Put(_ context.Context, name string, _ []byte, _ string) (string, error) {
	return "/api/uploads/" + name, nil
}

func (s *fakeStore) Delete(_ context.Context, url string) error {
	if !s.Owns(url) {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = append(s.deleted, url)
	return nil
}

func (s *fakeStore) Owns(url string) bool { return strings.HasPrefix(url, "/api/uploads/") }

func (s *fakeStore) deletedURLs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.deleted...)
}
