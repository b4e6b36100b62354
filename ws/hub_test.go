package ws

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/akinalp/milan/models"
	"github.com/akinalp/milan/pkg"
)

func newTestClient(h *Hub, name string, buffer int) *Client {
	return &Client{hub: h, username: name, send: make(chan []byte, buffer)}
}

func decodeEvent(t *testing.T, data []byte) Event {
	t.Helper()
	var e Event
	require.NoError(t, json.Unmarshal(data, &e))
	return e
}

func TestHubPublish(t *testing.T) {
	defer goleak.VerifyNone(t)

	var count atomic.Int64
	h := NewHub(nil, func(n int) { count.Store(int64(n)) })
	go h.Run()
	defer h.Shutdown()

	a := newTestClient(h, "admin", 4)
	b := newTestClient(h, "admin", 4)
	require.True(t, h.Register(a))
	require.True(t, h.Register(b))
	assert.Equal(t, 2, h.ConnectionCount())
	assert.EqualValues(t, 2, count.Load())

	h.Publish(Event{Op: OpMessageCreate, Data: map[string]string{"name": "Ravi"}})
	h.Publish(Event{Op: OpGalleryLike, Data: GalleryLikeData{ID: "g1", Likes: 3}})

	for _, c := range []*Client{a, b} {
		first := decodeEvent(t, <-c.send)
		second := decodeEvent(t, <-c.send)
		assert.Equal(t, OpMessageCreate, first.Op)
		assert.Equal(t, OpGalleryLike, second.Op)
		assert.Less(t, first.Seq, second.Seq)
	}

	h.Unregister(a)
	require.Eventually(t, func() bool { return h.ConnectionCount() == 1 }, time.Second, 10*time.Millisecond)
	_, open := <-a.send
	assert.False(t, open, "unregister closes the send channel")
}

func TestHubDropsSlowClient(t *testing.T) {
	defer goleak.VerifyNone(t)

	h := NewHub(nil, nil)
	go h.Run()
	defer h.Shutdown()

	slow := newTestClient(h, "admin", 1)
	require.True(t, h.Register(slow))

	h.Publish(Event{Op: OpStockLow})
	h.Publish(Event{Op: OpStockLow})

	require.Eventually(t, func() bool { return h.ConnectionCount() == 0 }, time.Second, 10*time.Millisecond)
}

func TestHubShutdown(t *testing.T) {
	defer goleak.VerifyNone(t)

	h := NewHub(nil, nil)
	go h.Run()

	c := newTestClient(h, "admin", 1)
	require.True(t, h.Register(c))

	h.Shutdown()
	h.Shutdown()

	_, open := <-c.send
	assert.False(t, open)
	assert.False(t, h.Register(newTestClient(h, "admin", 1)), "closed hub refuses clients")
	h.Unregister(c)
}

type stubValidator struct{}

func (stubValidator) ValidateAccessToken(token string) (*models.TokenClaims, error) {
	if token != "good" {
		return nil, pkg.ErrUnauthorized
	}
	return &models.TokenClaims{Username: "admin", Role: models.AdminRole}, nil
}

func TestHandlerConnection(t *testing.T) {
	h := NewHub(nil, nil)
	go h.Run()
	defer h.Shutdown()

	srv := httptest.NewServer(http.HandlerFunc(NewHandler(h, stubValidator{}, nil, nil).HandleConnection))
	defer srv.Close()
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")

	_, resp, err := websocket.DefaultDialer.Dial(wsURL+"?token=bad", nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL+"?token=good", nil)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	var ready Event
	require.NoError(t, conn.ReadJSON(&ready))
	assert.Equal(t, OpReady, ready.Op)

	require.NoError(t, conn.WriteJSON(Event{Op: OpHeartbeat}))
	var ack Event
	require.NoError(t, conn.ReadJSON(&ack))
	assert.Equal(t, OpHeartbeatAck, ack.Op)

	h.Publish(Event{Op: OpReviewCreate})
	var ev Event
	require.NoError(t, conn.ReadJSON(&ev))
	assert.Equal(t, OpReviewCreate, ev.Op)

	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool { return h.ConnectionCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}
