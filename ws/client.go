package ws

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// WebSocket bağlantı sabitleri
const (
	// writeWait: Bir mesajı yazmak için maksimum bekleme süresi.
	writeWait = 10 * time.Second

	// pongWait: 3 heartbeat kaçırma = 30s × 3 = 90s.
	// Bu sürede heartbeat gelmezse bağlantı kopmuş sayılır.
	pongWait = 90 * time.Second

	// maxMessageSize: Panel yalnızca heartbeat gönderir.
	maxMessageSize = 1024

	// sendBufferSize: Buffer doluysa client yavaş sayılır ve Hub'dan çıkarılır.
	sendBufferSize = 64
)

// Client, tek bir admin WebSocket bağlantısını temsil eder.
//
// Her bağlantı için iki goroutine çalışır: ReadPump (heartbeat okur)
// ve WritePump (Hub'dan gelen event'leri yazar). gorilla/websocket aynı anda
// tek okuyucu ve tek yazıcı destekler.
type Client struct {
	hub      *Hub
	conn     *websocket.Conn
	username string
	send     chan []byte
	mu       sync.Mutex // conn.WriteMessage çağrılarını korur
	logger   *zap.Logger
}

// ReadPump, bağlantıdan gelen mesajları okur. Bağlantı kapanana kadar bloklar.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.logger.Warn("failed to set read deadline", zap.Error(err))
		return
	}

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Warn("unexpected close", zap.Error(err))
			}
			return
		}

		var event Event
		if err := json.Unmarshal(raw, &event); err != nil {
			c.logger.Debug("invalid message", zap.Error(err))
			continue
		}

		switch event.Op {
		case OpHeartbeat:
			if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
				c.logger.Warn("failed to set read deadline", zap.Error(err))
				return
			}
			c.sendEvent(Event{Op: OpHeartbeatAck})
		default:
			c.logger.Debug("unknown op", zap.String("op", event.Op))
		}
	}
}

// sendEvent, client'a tek bir event gönderir.
func (c *Client) sendEvent(event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		c.logger.Error("failed to marshal event", zap.Error(err))
		return
	}
	if !c.hub.deliver(c, data) {
		c.logger.Warn("send buffer full, dropping connection")
	}
}

// WritePump, Hub'dan gelen mesajları bağlantıya yazar.
// send channel'ı kapanınca close frame yazıp döner.
func (c *Client) WritePump() {
	defer c.conn.Close()

	for message := range c.send {
		if err := c.writeMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
	_ = c.writeMessage(websocket.CloseMessage, nil)
}

func (c *Client) writeMessage(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.conn.WriteMessage(messageType, data)
}
