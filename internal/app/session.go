package app

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"wordscapes/internal/domain"
)

const eventQueueSize = 256

// ClientConnection represents a connected client
type ClientConnection interface {
	Send(message interface{}) error
	GetClientID() string
	Close() error
}

// SessionConfig holds the per-session rules and clock rate
type SessionConfig struct {
	Settings     domain.Settings
	TickInterval time.Duration
}

// GameSession wraps a puzzle with concurrency control and client management.
// Every command and every clock tick runs under mu, so the puzzle only ever
// sees one caller at a time.
type GameSession struct {
	id         string
	puzzle     *domain.Puzzle
	mu         sync.Mutex
	createdAt  time.Time
	lastActive time.Time

	clients   map[string]ClientConnection // clientID -> client
	clientsMu sync.RWMutex
	logger    zerolog.Logger

	tickInterval time.Duration

	// Event channel for broadcasting
	events    chan *domain.GameEvent
	done      chan struct{}
	closeOnce sync.Once
}

// NewGameSession creates a session, loads the first level and starts the
// round clock and the event broadcaster.
func NewGameSession(id string, catalog *domain.Catalog, cfg SessionConfig, logger zerolog.Logger) *GameSession {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = time.Second
	}
	now := time.Now()
	s := &GameSession{
		id:           id,
		createdAt:    now,
		lastActive:   now,
		clients:      make(map[string]ClientConnection),
		logger:       logger.With().Str("gameId", id).Logger(),
		tickInterval: cfg.TickInterval,
		events:       make(chan *domain.GameEvent, eventQueueSize),
		done:         make(chan struct{}),
	}
	s.puzzle = domain.NewPuzzle(catalog, cfg.Settings, &sessionListener{session: s})

	s.mu.Lock()
	s.puzzle.LoadLevel(0)
	s.mu.Unlock()

	go s.eventLoop()
	go s.clockLoop()

	return s
}

// ID returns the game id
func (s *GameSession) ID() string {
	return s.id
}

// CreatedAt returns when the session was created
func (s *GameSession) CreatedAt() time.Time {
	return s.createdAt
}

// LastActive returns the time of the last player command
func (s *GameSession) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// Phase returns the current puzzle phase
func (s *GameSession) Phase() domain.Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.puzzle.Phase()
}

// Snapshot returns the current puzzle state
func (s *GameSession) Snapshot() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.puzzle.Snapshot()
}

// RegisterClient registers a client connection
func (s *GameSession) RegisterClient(client ClientConnection) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	s.clients[client.GetClientID()] = client
}

// UnregisterClient removes a client connection
func (s *GameSession) UnregisterClient(clientID string) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	delete(s.clients, clientID)
}

// ClientCount returns the number of connected clients
func (s *GameSession) ClientCount() int {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()
	return len(s.clients)
}

// SubmitLetter feeds one letter into the candidate word
func (s *GameSession) SubmitLetter(letter rune) {
	s.command(func(p *domain.Puzzle) {
		p.SubmitLetter(letter)
	})
}

// SubmitWord feeds every letter of word into the candidate word
func (s *GameSession) SubmitWord(word string) {
	s.command(func(p *domain.Puzzle) {
		p.SubmitLetters(word)
	})
}

// NextLevel continues after a completed level
func (s *GameSession) NextLevel() {
	s.command(func(p *domain.Puzzle) {
		p.NextLevel()
	})
}

// RestartLevel reloads the current level
func (s *GameSession) RestartLevel() {
	s.command(func(p *domain.Puzzle) {
		p.RestartLevel()
	})
}

// RestartGame starts over from the first level with a zero score
func (s *GameSession) RestartGame() {
	s.command(func(p *domain.Puzzle) {
		p.RestartGame()
	})
}

// RequestHint spends a hint on the player's behalf
func (s *GameSession) RequestHint() domain.Hint {
	var hint domain.Hint
	s.command(func(p *domain.Puzzle) {
		hint = p.ProvideHint()
	})
	return hint
}

func (s *GameSession) command(fn func(p *domain.Puzzle)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = time.Now()
	fn(s.puzzle)
}

// clockLoop drives the round clock. The clock only runs while somebody is
// connected to watch it.
func (s *GameSession) clockLoop() {
	ticker := time.NewTicker(s.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			if s.ClientCount() == 0 {
				continue
			}
			s.tick()
		}
	}
}

func (s *GameSession) tick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.puzzle.Tick()
}

// queueEvent adds an event to the broadcast queue
func (s *GameSession) queueEvent(event *domain.GameEvent) {
	select {
	case s.events <- event:
	default:
		s.logger.Warn().Str("type", string(event.Type)).Msg("event queue full, dropping event")
	}
}

// eventLoop processes events and broadcasts to clients
func (s *GameSession) eventLoop() {
	for {
		select {
		case <-s.done:
			return
		case event := <-s.events:
			s.broadcastEvent(event)
		}
	}
}

// broadcastEvent sends an event to every client
func (s *GameSession) broadcastEvent(event *domain.GameEvent) {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()

	for clientID, client := range s.clients {
		if err := client.Send(event); err != nil {
			s.logger.Debug().Str("clientId", clientID).Err(err).Msg("failed to send to client")
		}
	}
}

// Close shuts down the session
func (s *GameSession) Close() {
	s.closeOnce.Do(func() {
		close(s.done)

		s.clientsMu.Lock()
		for _, client := range s.clients {
			client.Close()
		}
		s.clients = make(map[string]ClientConnection)
		s.clientsMu.Unlock()
	})
}

// sessionListener turns puzzle notifications into queued game events. It is
// invoked with the session lock held.
type sessionListener struct {
	session *GameSession
}

func (l *sessionListener) emit(eventType domain.EventType, payload interface{}) {
	l.session.queueEvent(domain.NewEvent(eventType, l.session.id, payload))
}

func (l *sessionListener) OnLevelStarted(levelIndex int, letters []rune) {
	l.session.logger.Info().Int("level", levelIndex).Msg("level started")
	l.emit(domain.EventLevelStarted, &domain.LevelStartedPayload{
		LevelIndex: levelIndex,
		Letters:    string(letters),
	})
}

func (l *sessionListener) OnLetterRevealed(slotLength, position int, letter rune, isHint bool) {
	l.emit(domain.EventLetterRevealed, &domain.LetterRevealedPayload{
		SlotLength: slotLength,
		Position:   position,
		Letter:     string(letter),
		IsHint:     isHint,
	})
}

func (l *sessionListener) OnWordAccepted(word string) {
	l.emit(domain.EventWordAccepted, &domain.WordPayload{Word: word})
}

func (l *sessionListener) OnWordRejected(word string) {
	l.emit(domain.EventWordRejected, &domain.WordPayload{Word: word})
}

func (l *sessionListener) OnScoreChanged(score int) {
	l.emit(domain.EventScoreChanged, &domain.ScorePayload{Score: score})
}

func (l *sessionListener) OnClockTick(secondsRemaining int) {
	l.emit(domain.EventClockTick, &domain.ClockPayload{SecondsRemaining: secondsRemaining})
}

func (l *sessionListener) OnHintConsumed(hintsUsed int) {
	l.emit(domain.EventHintConsumed, &domain.HintPayload{HintsUsed: hintsUsed})
}

func (l *sessionListener) OnLevelComplete(levelIndex, score int) {
	l.session.logger.Info().Int("level", levelIndex).Int("score", score).Msg("level complete")
	l.emit(domain.EventLevelComplete, &domain.LevelResultPayload{
		LevelIndex:  levelIndex,
		Score:       score,
		Performance: l.session.puzzle.Performance(),
	})
}

func (l *sessionListener) OnGameOver(levelIndex, score int) {
	l.session.logger.Info().Int("level", levelIndex).Int("score", score).Msg("game over")
	l.emit(domain.EventGameOver, &domain.LevelResultPayload{
		LevelIndex: levelIndex,
		Score:      score,
	})
}

func (l *sessionListener) OnGameComplete(finalScore, totalHints int) {
	l.session.logger.Info().Int("score", finalScore).Int("hints", totalHints).Msg("game complete")
	l.emit(domain.EventGameComplete, &domain.GameCompletePayload{
		FinalScore: finalScore,
		TotalHints: totalHints,
	})
}
