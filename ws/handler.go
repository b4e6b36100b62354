package ws

import (
	"net/http"
	"slices"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/akinalp/milan/models"
)

// TokenValidator, WebSocket handler'ın JWT doğrulaması için kullandığı interface.
// services paketine bağımlılık (ws → services → ws döngüsü) olmasın diye burada tanımlıdır.
type TokenValidator interface {
	ValidateAccessToken(tokenString string) (*models.TokenClaims, error)
}

// Handler, admin WebSocket bağlantı isteklerini işler.
type Handler struct {
	hub            *Hub
	tokenValidator TokenValidator
	upgrader       websocket.Upgrader
	logger         *zap.Logger
}

// NewHandler, yeni bir WebSocket handler oluşturur.
//
// allowedOrigins boşsa her origin kabul edilir (geliştirme ortamı).
func NewHandler(hub *Hub, tokenValidator TokenValidator, allowedOrigins []string, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		hub:            hub,
		tokenValidator: tokenValidator,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return len(allowedOrigins) == 0 || origin == "" || slices.Contains(allowedOrigins, origin)
			},
		},
		logger: logger.Named("ws"),
	}
}

// HandleConnection, HTTP bağlantısını WebSocket'e yükseltir ve client'ı Hub'a kaydeder.
//
// Tarayıcı WebSocket'e header ekleyemediği için token query parametresinden gelir:
//
//	ws://host/ws?token=JWT
func (h *Handler) HandleConnection(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		http.Error(w, "missing token", http.StatusUnauthorized)
		return
	}

	claims, err := h.tokenValidator.ValidateAccessToken(token)
	if err != nil || claims.Role != models.AdminRole {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("upgrade failed", zap.String("username", claims.Username), zap.Error(err))
		return
	}

	client := &Client{
		hub:      h.hub,
		conn:     conn,
		username: claims.Username,
		send:     make(chan []byte, sendBufferSize),
		logger:   h.logger.With(zap.String("username", claims.Username)),
	}

	if !h.hub.Register(client) {
		conn.Close()
		return
	}

	client.sendEvent(Event{Op: OpReady, Data: ReadyData{
		Username:    claims.Username,
		Connections: h.hub.ConnectionCount(),
	}})

	go client.WritePump()
	client.ReadPump()
}
