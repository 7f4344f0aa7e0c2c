package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"wordscapes/internal/domain"
)

// Response is a standard API response
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
}

// ErrorInfo contains error details
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CreateGameResponse is the response for game creation
type CreateGameResponse struct {
	GameID string `json:"gameId"`
}

// LevelInfo describes a level without giving away its words
type LevelInfo struct {
	Index       int `json:"index"`
	LetterCount int `json:"letterCount"`
	WordCount   int `json:"wordCount"`
}

// LevelsResponse is the response for the level listing
type LevelsResponse struct {
	Count  int         `json:"count"`
	Levels []LevelInfo `json:"levels"`
}

// HealthResponse is the response for health check
type HealthResponse struct {
	Status string `json:"status"`
}

// StatsResponse is the response for stats endpoint
type StatsResponse struct {
	ActiveGames      int `json:"activeGames"`
	ConnectedClients int `json:"connectedClients"`
}

// handleCreateGame handles POST /api/games
func (s *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	session := s.hub.CreateGame()

	w.Header().Set("Location", "/api/games/"+session.ID())
	s.sendJSON(w, http.StatusCreated, &Response{
		Success: true,
		Data:    &CreateGameResponse{GameID: session.ID()},
	})
}

// handleGetGame handles GET /api/games/{gameId}
func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	session, err := s.hub.GetSession(chi.URLParam(r, "gameId"))
	if err != nil {
		s.sendLookupError(w, err)
		return
	}

	s.sendSuccess(w, session.Snapshot())
}

// handleDeleteGame handles DELETE /api/games/{gameId}
func (s *Server) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameId")
	if _, err := s.hub.GetSession(gameID); err != nil {
		s.sendLookupError(w, err)
		return
	}

	s.hub.DeleteSession(gameID)
	s.sendSuccess(w, &CreateGameResponse{GameID: gameID})
}

// handleLevels handles GET /api/levels
func (s *Server) handleLevels(w http.ResponseWriter, r *http.Request) {
	levels := s.hub.Catalog().Levels()
	resp := &LevelsResponse{
		Count:  len(levels),
		Levels: make([]LevelInfo, 0, len(levels)),
	}
	for i, level := range levels {
		resp.Levels = append(resp.Levels, LevelInfo{
			Index:       i,
			LetterCount: len([]rune(level.Letters())),
			WordCount:   len(level.Words()),
		})
	}

	s.sendSuccess(w, resp)
}

// handleHealth handles GET /api/health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.sendSuccess(w, &HealthResponse{
		Status: "ok",
	})
}

// handleStats handles GET /api/stats
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	s.sendSuccess(w, &StatsResponse{
		ActiveGames:      s.hub.GetSessionCount(),
		ConnectedClients: s.hub.GetClientCount(),
	})
}

// sendLookupError maps a session lookup failure to a response
func (s *Server) sendLookupError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrGameNotFound) {
		s.sendError(w, http.StatusNotFound, "GAME_NOT_FOUND", "Game not found")
		return
	}
	s.logger.Error().Err(err).Msg("session lookup failed")
	s.sendError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
}

// sendSuccess sends a successful JSON response
func (s *Server) sendSuccess(w http.ResponseWriter, data interface{}) {
	s.sendJSON(w, http.StatusOK, &Response{
		Success: true,
		Data:    data,
	})
}

// sendError sends an error JSON response
func (s *Server) sendError(w http.ResponseWriter, status int, code, message string) {
	s.sendJSON(w, status, &Response{
		Success: false,
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
		},
	})
}

func (s *Server) sendJSON(w http.ResponseWriter, status int, resp *Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Debug().Err(err).Msg("failed to write response")
	}
}
