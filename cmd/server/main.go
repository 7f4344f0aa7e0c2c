package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"wordscapes/internal/app"
	"wordscapes/internal/config"
	"wordscapes/internal/domain"
	httpTransport "wordscapes/internal/transport/http"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set up logger
	logger := newLogger(cfg.Logging, os.Stdout)

	logger.Info().
		Str("env", cfg.Server.Env).
		Str("port", cfg.Server.Port).
		Msg("starting word puzzle server")

	catalog, err := app.DefaultCatalog()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid level data")
	}
	settings := domain.Settings{
		RoundSeconds:       cfg.Game.RoundSeconds,
		MaxTimeouts:        cfg.Game.MaxTimeouts,
		HintPenaltySeconds: cfg.Game.HintPenaltySeconds,
		MinWordLength:      cfg.Game.MinWordLength,
	}
	for i, level := range catalog.Levels() {
		if short := level.ShortWords(settings.MinWordLength); len(short) > 0 {
			logger.Warn().
				Int("level", i).
				Strs("words", short).
				Int("minWordLength", settings.MinWordLength).
				Msg("level has words that cannot be entered")
		}
	}

	// Create game hub
	hub := app.NewGameHub(catalog, app.HubConfig{
		Session: app.SessionConfig{
			Settings:     settings,
			TickInterval: cfg.Game.TickInterval,
		},
		IdleTimeout: cfg.Game.SessionIdleTimeout,
	}, logger)
	defer hub.Close()

	// Create HTTP server
	server := httpTransport.NewServer(cfg, hub, logger)

	// Start server in goroutine
	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("server forced to shutdown")
	}

	logger.Info().Msg("server stopped")
}

// newLogger builds the process logger: JSON lines when format is "json",
// human-readable console output otherwise.
func newLogger(cfg config.LoggingConfig, out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	if cfg.Format != "json" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
