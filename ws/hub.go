package ws

import (
	"encoding/json"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// Publisher, service katmanının WebSocket event'leri yayınlamak için
// kullandığı interface. Service'ler Hub'ın concrete struct'ına bağımlı değildir.
type Publisher interface {
	Publish(event Event)
}

// Hub, tüm admin WebSocket bağlantılarını yönetir.
//
// Kayıt senkron yapılır; çıkışlar unregister channel'ı üzerinden Run
// goroutine'inde işlenir. clients map'ine okuma (broadcast) RLock ile yapılır.
type Hub struct {
	clients map[*Client]struct{}
	mu      sync.RWMutex

	unregister chan *Client
	done       chan struct{}
	stopOnce   sync.Once

	seq atomic.Int64

	logger *zap.Logger
	// onCountChange, bağlantı sayısı her değiştiğinde çağrılır (metrics gauge).
	onCountChange func(int)
}

// NewHub, yeni bir Hub oluşturur. onCountChange nil olabilir.
func NewHub(logger *zap.Logger, onCountChange func(int)) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	if onCountChange == nil {
		onCountChange = func(int) {}
	}
	return &Hub{
		clients:       make(map[*Client]struct{}),
		unregister:    make(chan *Client),
		done:          make(chan struct{}),
		logger:        logger.Named("ws"),
		onCountChange: onCountChange,
	}
}

// Run, Hub'ın ana event loop'udur. main'de `go hub.Run()` ile başlatılır,
// Shutdown çağrılınca döner.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.unregister:
			h.removeClient(client)
		case <-h.done:
			return
		}
	}
}

// Register, client'ı Hub'a senkron olarak ekler; döndüğünde client event
// almaya hazırdır. Hub kapandıysa false döner.
func (h *Hub) Register(c *Client) bool {
	h.mu.Lock()
	select {
	case <-h.done:
		h.mu.Unlock()
		return false
	default:
	}
	h.clients[c] = struct{}{}
	n := len(h.clients)
	h.mu.Unlock()

	h.logger.Info("admin connected", zap.String("username", c.username), zap.Int("connections", n))
	h.onCountChange(n)
	return true
}

// Unregister, client'ı Hub'dan çıkarır. Hub kapandıysa hiçbir şey yapmaz.
func (h *Hub) Unregister(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	_, ok := h.clients[client]
	if ok {
		delete(h.clients, client)
		close(client.send)
	}
	n := len(h.clients)
	h.mu.Unlock()

	if ok {
		h.logger.Info("admin disconnected", zap.String("username", client.username), zap.Int("connections", n))
		h.onCountChange(n)
	}
}

// Publish, bağlı tüm client'lara event gönderir.
// Buffer'ı dolu (yavaş) client'lar Hub'dan çıkarılır.
func (h *Hub) Publish(event Event) {
	event.Seq = h.seq.Add(1)

	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("failed to marshal event", zap.String("op", event.Op), zap.Error(err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			go h.Unregister(client)
		}
	}
}

// deliver, tek bir client'a mesaj bırakır. send channel'ı yalnızca Hub kilidi
// altında kapatıldığı için üyelik kontrolü aynı kilit altında yapılır.
// Client Hub'da değilse true, buffer doluysa false döner.
func (h *Hub) deliver(c *Client, data []byte) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if _, ok := h.clients[c]; !ok {
		return true
	}
	select {
	case c.send <- data:
		return true
	default:
		go h.Unregister(c)
		return false
	}
}

// ConnectionCount, bağlı client sayısı.
func (h *Hub) ConnectionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Shutdown, Run loop'unu durdurur ve tüm bağlantıları kapatır.
// Birden fazla çağrı güvenlidir.
func (h *Hub) Shutdown() {
	h.stopOnce.Do(func() {
		close(h.done)

		h.mu.Lock()
		for client := range h.clients {
			close(client.send)
		}
		h.clients = make(map[*Client]struct{})
		h.mu.Unlock()

		h.onCountChange(0)
		h.logger.Info("hub shut down, all connections closed")
	})
}
