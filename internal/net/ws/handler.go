// Package ws is the websocket transport adapter: it upgrades HTTP requests,
// mints an opaque handle per connection, and feeds the hub's three callbacks
// (connect, message, disconnect) from the read loop.
package ws

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"hop-and-holler/server/internal/game"
)

// Handler serves the /ws endpoint.
type Handler struct {
	hub      *game.Hub
	logger   *zap.SugaredLogger
	maxFrame int64
	upgrader websocket.Upgrader
}

// NewHandler builds the websocket handler. maxFrameBytes bounds inbound
// frames at the transport level.
func NewHandler(hub *game.Hub, maxFrameBytes int, logger *zap.SugaredLogger) *Handler {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Handler{
		hub:      hub,
		logger:   logger,
		maxFrame: int64(maxFrameBytes),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// Handle upgrades the request and runs the connection's read loop until the
// peer goes away. Every exit path releases the player slot exactly once.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warnw("websocket upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	handle := uuid.NewString()
	if err := h.hub.Connect(handle, newSession(conn)); err != nil {
		message := websocket.FormatCloseMessage(websocket.CloseTryAgainLater, "server full")
		conn.WriteMessage(websocket.CloseMessage, message)
		conn.Close()
		return
	}

	conn.SetReadLimit(h.maxFrame)
	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			h.hub.Disconnect(handle)
			return
		}
		h.hub.Receive(handle, payload)
	}
}
