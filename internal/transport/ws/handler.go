package ws

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"wordscapes/internal/app"
)

// Limits bounds how fast one connection may send input
type Limits struct {
	RatePerSecond int
	Burst         int
}

// Handler handles WebSocket connections
type Handler struct {
	hub      *app.GameHub
	upgrader websocket.Upgrader
	limits   Limits
	logger   zerolog.Logger
}

// NewHandler creates a new WebSocket handler
func NewHandler(hub *app.GameHub, limits Limits, logger zerolog.Logger) *Handler {
	if limits.RatePerSecond <= 0 {
		limits.RatePerSecond = 20
	}
	if limits.Burst <= 0 {
		limits.Burst = limits.RatePerSecond
	}
	return &Handler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// Allow all origins for development
				// In production, you should validate the origin
				return true
			},
		},
		limits: limits,
		logger: logger,
	}
}

// ServeHTTP handles WebSocket upgrade requests
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("gameId")
	if gameID == "" {
		http.Error(w, "gameId is required", http.StatusBadRequest)
		return
	}

	session, err := h.hub.GetSession(gameID)
	if err != nil {
		http.Error(w, "Game not found", http.StatusNotFound)
		return
	}

	// Upgrade connection to WebSocket
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error().Err(err).Msg("websocket upgrade failed")
		return
	}

	clientID := uuid.NewString()
	limiter := rate.NewLimiter(rate.Limit(h.limits.RatePerSecond), h.limits.Burst)
	client := NewClient(conn, session, clientID, limiter, h.logger.With().Str("gameId", gameID).Logger())

	// Send the current state before any event can be broadcast to the client
	client.sendConnected()
	session.RegisterClient(client)

	h.logger.Info().
		Str("gameId", gameID).
		Str("clientId", clientID).
		Msg("websocket connected")

	client.Run()
}
