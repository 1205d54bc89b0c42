package main

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"impostor/internal/app"
	"impostor/internal/config"
	"impostor/internal/store"
	httpTransport "impostor/internal/transport/http"
)

//go:embed web
var webFS embed.FS

func serve(ctx context.Context, cfg *config.Config) error {
	logger := newLogger(cfg.Logging)
	slog.SetDefault(logger)

	logger.Info("starting impostor server",
		"version", releaseVersion,
		"env", cfg.Server.Env,
		"port", cfg.Server.Port,
		"variant", cfg.Game.Variant,
		"storage", cfg.Storage.Driver,
	)

	roster, closeRoster, err := openRosterStore(cfg.Storage)
	if err != nil {
		return err
	}
	defer closeRoster()

	hub := app.NewTableHub(cfg.Settings(), roster, cfg.Game.TableCodeLength, logger)
	defer hub.Close()

	server := httpTransport.NewServer(cfg, hub, logger, webFS)

	errc := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server stopped")
	return nil
}

func openRosterStore(cfg config.StorageConfig) (app.RosterStore, func() error, error) {
	switch cfg.Driver {
	case "sqlite":
		s, err := store.OpenSQLRosterStore(cfg.DSN)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	default:
		return store.NewMemoryRosterStore(), func() error { return nil }, nil
	}
}

func newLogger(cfg config.LoggingConfig) *slog.Logger {
	logOpts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Level),
	}

	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, logOpts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, logOpts))
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
