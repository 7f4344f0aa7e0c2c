package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"wordscapes/internal/app"
	"wordscapes/internal/config"
	"wordscapes/internal/transport/ws"
)

// Server represents the HTTP server
type Server struct {
	server *http.Server
	router chi.Router
	hub    *app.GameHub
	config *config.Config
	logger zerolog.Logger
}

// NewServer creates a new HTTP server
func NewServer(cfg *config.Config, hub *app.GameHub, logger zerolog.Logger) *Server {
	s := &Server{
		hub:    hub,
		config: cfg,
		logger: logger,
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(s.requestLogger)
	r.Use(cors)
	s.setupRoutes(r)
	s.router = r

	s.server = &http.Server{
		Addr:         cfg.GetAddr(),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/games", s.handleCreateGame)
		r.Get("/games/{gameId}", s.handleGetGame)
		r.Delete("/games/{gameId}", s.handleDeleteGame)
		r.Get("/levels", s.handleLevels)
		r.Get("/health", s.handleHealth)
		r.Get("/stats", s.handleStats)
	})

	// WebSocket
	wsHandler := ws.NewHandler(s.hub, ws.Limits{
		RatePerSecond: s.config.Server.InputRatePerSecond,
		Burst:         s.config.Server.InputBurst,
	}, s.logger)
	r.Method(http.MethodGet, "/ws", wsHandler)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.sendError(w, http.StatusNotFound, "NOT_FOUND", "No route for "+r.URL.Path)
	})
}

// Handler returns the routed handler, for tests and embedding
func (s *Server) Handler() http.Handler {
	return s.router
}

// requestLogger logs every request once it has been served
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(wrapped, r)

		event := s.logger.Info()
		if !s.config.IsDevelopment() && r.URL.Path == "/api/health" {
			event = s.logger.Debug()
		}
		event.
			Str("requestId", chimw.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", wrapped.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

// cors adds permissive CORS headers and answers preflight requests
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info().Str("addr", s.server.Addr).Msg("server starting")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info().Msg("server shutting down")
	return s.server.Shutdown(ctx)
}
