package app

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"wordscapes/internal/domain"
)

const (
	// DefaultIdleTimeout is how long an unattended game is kept
	DefaultIdleTimeout = 2 * time.Hour

	cleanupInterval = 10 * time.Minute
)

// HubConfig configures the sessions a hub creates
type HubConfig struct {
	Session     SessionConfig
	IdleTimeout time.Duration
}

// GameHub manages all active game sessions
type GameHub struct {
	sessions  map[string]*GameSession
	mu        sync.RWMutex
	catalog   *domain.Catalog
	cfg       HubConfig
	logger    zerolog.Logger
	done      chan struct{}
	closeOnce sync.Once
}

// NewGameHub creates a new game hub serving levels from catalog
func NewGameHub(catalog *domain.Catalog, cfg HubConfig, logger zerolog.Logger) *GameHub {
	if cfg.IdleTimeout <= 0 {
		cfg.IdleTimeout = DefaultIdleTimeout
	}
	hub := &GameHub{
		sessions: make(map[string]*GameSession),
		catalog:  catalog,
		cfg:      cfg,
		logger:   logger,
		done:     make(chan struct{}),
	}

	// Start cleanup goroutine
	go hub.cleanupLoop()

	return hub
}

// Catalog returns the levels every session plays through
func (h *GameHub) Catalog() *domain.Catalog {
	return h.catalog
}

// CreateGame creates a new game at the first level and returns its session
func (h *GameHub) CreateGame() *GameSession {
	id := uuid.NewString()
	session := NewGameSession(id, h.catalog, h.cfg.Session, h.logger)

	h.mu.Lock()
	h.sessions[id] = session
	h.mu.Unlock()

	h.logger.Info().Str("gameId", id).Msg("game created")

	return session
}

// GetSession returns a game session by id
func (h *GameHub) GetSession(id string) (*GameSession, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	session, ok := h.sessions[id]
	if !ok {
		return nil, domain.ErrGameNotFound
	}

	return session, nil
}

// DeleteSession removes a game session
func (h *GameHub) DeleteSession(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if session, ok := h.sessions[id]; ok {
		session.Close()
		delete(h.sessions, id)
		h.logger.Info().Str("gameId", id).Msg("game deleted")
	}
}

// GetSessionCount returns the number of active sessions
func (h *GameHub) GetSessionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// GetClientCount returns the number of connected clients across all sessions
func (h *GameHub) GetClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	total := 0
	for _, session := range h.sessions {
		total += session.ClientCount()
	}
	return total
}

// Close shuts down the hub and all sessions
func (h *GameHub) Close() {
	h.closeOnce.Do(func() {
		close(h.done)

		h.mu.Lock()
		defer h.mu.Unlock()

		for _, session := range h.sessions {
			session.Close()
		}
		h.sessions = make(map[string]*GameSession)
	})
}

// cleanupLoop periodically cleans up stale games
func (h *GameHub) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-h.done:
			return
		case now := <-ticker.C:
			h.cleanupStaleGames(now)
		}
	}
}

// cleanupStaleGames removes games nobody is connected to that have seen no
// player command for longer than the idle timeout
func (h *GameHub) cleanupStaleGames(now time.Time) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	stale := make([]string, 0)
	for id, session := range h.sessions {
		if session.ClientCount() == 0 && now.Sub(session.LastActive()) > h.cfg.IdleTimeout {
			stale = append(stale, id)
		}
	}

	for _, id := range stale {
		h.sessions[id].Close()
		delete(h.sessions, id)
		h.logger.Info().Str("gameId", id).Msg("stale game cleaned up")
	}

	return len(stale)
}
