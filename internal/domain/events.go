package domain

import "time"

// Listener receives state-change notifications from a Puzzle. Calls are made
// synchronously and in order while the puzzle is mid-transition; listeners
// may read puzzle state but must not issue commands to it.
type Listener interface {
	OnLevelStarted(levelIndex int, letters []rune)
	OnLetterRevealed(slotLength, position int, letter rune, isHint bool)
	OnWordAccepted(word string)
	OnWordRejected(word string)
	OnScoreChanged(score int)
	OnClockTick(secondsRemaining int)
	OnHintConsumed(hintsUsed int)
	OnLevelComplete(levelIndex, score int)
	OnGameOver(levelIndex, score int)
	OnGameComplete(finalScore, totalHints int)
}

// NopListener ignores every notification
type NopListener struct{}

func (NopListener) OnLevelStarted(int, []rune) {}
func (NopListener) OnLetterRevealed(int, int, rune, bool) {}
func (NopListener) OnWordAccepted(string) {}
func (NopListener) OnWordRejected(string) {}
func (NopListener) OnScoreChanged(int) {}
func (NopListener) OnClockTick(int) {}
func (NopListener) OnHintConsumed(int) {}
func (NopListener) OnLevelComplete(int, int) {}
func (NopListener) OnGameOver(int, int) {}
func (NopListener) OnGameComplete(int, int) {}

// EventType represents the type of game event
type EventType string

const (
	EventLevelStarted   EventType = "LEVEL_STARTED"
	EventLetterRevealed EventType = "LETTER_REVEALED"
	EventWordAccepted   EventType = "WORD_ACCEPTED"
	EventWordRejected   EventType = "WORD_REJECTED"
	EventScoreChanged   EventType = "SCORE_CHANGED"
	EventClockTick      EventType = "CLOCK_TICK"
	EventHintConsumed   EventType = "HINT_CONSUMED"
	EventLevelComplete  EventType = "LEVEL_COMPLETE"
	EventGameOver       EventType = "GAME_OVER"
	EventGameComplete   EventType = "GAME_COMPLETE"
)

// GameEvent represents an event that occurred in the game
type GameEvent struct {
	Type      EventType   `json:"type"`
	GameID    string      `json:"gameId"`
	Payload   interface{} `json:"payload,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// NewEvent creates a new game event
func NewEvent(eventType EventType, gameID string, payload interface{}) *GameEvent {
	return &GameEvent{
		Type:      eventType,
		GameID:    gameID,
		Payload:   payload,
		Timestamp: time.Now(),
	}
}

// Payload types for different events

// LevelStartedPayload is sent when a level is loaded
type LevelStartedPayload struct {
	LevelIndex int    `json:"levelIndex"`
	Letters    string `json:"letters"` // shuffled pool
}

// LetterRevealedPayload is sent for every newly visible slot cell
type LetterRevealedPayload struct {
	SlotLength int    `json:"slotLength"`
	Position   int    `json:"position"`
	Letter     string `json:"letter"`
	IsHint     bool   `json:"isHint"`
}

// WordPayload is sent when a candidate word is accepted or rejected
type WordPayload struct {
	Word string `json:"word"`
}

// ScorePayload is sent when the session score changes
type ScorePayload struct {
	Score int `json:"score"`
}

// ClockPayload is sent every round-clock second and on clock resets
type ClockPayload struct {
	SecondsRemaining int `json:"secondsRemaining"`
}

// HintPayload is sent when a hint is spent
type HintPayload struct {
	HintsUsed int `json:"hintsUsed"`
}

// LevelResultPayload is sent when a level ends, won or lost
type LevelResultPayload struct {
	LevelIndex  int    `json:"levelIndex"`
	Score       int    `json:"score"`
	Performance string `json:"performance,omitempty"`
}

// GameCompletePayload is sent after the last level
type GameCompletePayload struct {
	FinalScore int `json:"finalScore"`
	TotalHints int `json:"totalHints"`
}
