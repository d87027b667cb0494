// Package app wires the process together: environment, config, logger, hub,
// HTTP server, and shutdown.
package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hop-and-holler/server/internal/config"
	"hop-and-holler/server/internal/game"
	"hop-and-holler/server/internal/logging"
	servernet "hop-and-holler/server/internal/net"
)

const shutdownTimeout = 5 * time.Second

// Run boots the server and blocks until the context is cancelled, a
// termination signal arrives, or the listener fails.
func Run(ctx context.Context) error {
	// A missing .env is the normal case outside development.
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG")
	if configPath == "" {
		configPath = "config.toml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if addr := os.Getenv("ADDR"); addr != "" {
		cfg.Server.Addr = addr
	}

	logger, syncLogs, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer syncLogs()

	tokens := cfg.TokenRegistry()
	logger.Infow("token registry provisioned", "tokens", tokens.Len())

	hub := game.NewHub(cfg.GameConfig(), tokens, logger)
	stop := make(chan struct{})
	go hub.RunSimulation(stop)

	handler := servernet.NewHTTPHandler(hub, servernet.HTTPHandlerConfig{
		MaxFrameBytes: cfg.Server.MaxFrameBytes,
		Logger:        logger,
	})
	srv := &http.Server{Addr: cfg.Server.Addr, Handler: handler}

	serveErr := make(chan error, 1)
	go func() {
		logger.Infow("server listening", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		close(stop)
		return err
	case <-quit:
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	// Closing stop means the tick timer is simply never re-armed again.
	close(stop)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
