// Package net assembles the HTTP surface: health, diagnostics, recent chat,
// and the websocket endpoint.
package net

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"go.uber.org/zap"

	"hop-and-holler/server/internal/game"
	"hop-and-holler/server/internal/net/ws"
)

const defaultRecentChat = 20

// HTTPHandlerConfig carries the wiring for the HTTP surface.
type HTTPHandlerConfig struct {
	MaxFrameBytes int
	Logger        *zap.SugaredLogger
}

// NewHTTPHandler builds the router serving the whole HTTP surface for a hub.
func NewHTTPHandler(hub *game.Hub, cfg HTTPHandlerConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	wsHandler := ws.NewHandler(hub, cfg.MaxFrameBytes, logger)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("ok"))
	})

	r.Get("/diagnostics", func(w http.ResponseWriter, _ *http.Request) {
		diag := hub.DiagnosticsSnapshot()
		payload := struct {
			Status     string `json:"status"`
			ServerTime int64  `json:"serverTime"`
			game.Diagnostics
		}{
			Status:      "ok",
			ServerTime:  time.Now().UnixMilli(),
			Diagnostics: diag,
		}
		writeJSON(w, logger, payload)
	})

	r.Get("/chat/recent", func(w http.ResponseWriter, r *http.Request) {
		n := defaultRecentChat
		if raw := r.URL.Query().Get("n"); raw != "" {
			value, err := strconv.Atoi(raw)
			if err != nil || value <= 0 {
				http.Error(w, "invalid n", http.StatusBadRequest)
				return
			}
			n = value
		}
		entries := hub.RecentChat(n)
		if entries == nil {
			entries = []game.ChatEntry{}
		}
		payload := struct {
			Entries []game.ChatEntry `json:"entries"`
		}{Entries: entries}
		writeJSON(w, logger, payload)
	})

	r.Get("/ws", wsHandler.Handle)

	return r
}

func writeJSON(w http.ResponseWriter, logger *zap.SugaredLogger, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		logger.Errorw("failed to encode response", "error", err)
		http.Error(w, "failed to encode", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}
