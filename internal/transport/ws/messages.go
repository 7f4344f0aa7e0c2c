package ws

import (
	"time"

	"wordscapes/internal/domain"
)

// MessageType represents the type of WebSocket message
type MessageType string

// Client → Server message types
const (
	MsgSubmitLetter MessageType = "submit_letter"
	MsgSubmitWord   MessageType = "submit_word"
	MsgNextLevel    MessageType = "next_level"
	MsgRestartLevel MessageType = "restart_level"
	MsgRestartGame  MessageType = "restart_game"
	MsgRequestHint  MessageType = "request_hint"
	MsgPing         MessageType = "ping"
)

// Server → Client message types
const (
	MsgConnected      MessageType = "connected"
	MsgError          MessageType = "error"
	MsgLevelStarted   MessageType = "level_started"
	MsgLetterRevealed MessageType = "letter_revealed"
	MsgWordAccepted   MessageType = "word_accepted"
	MsgWordRejected   MessageType = "word_rejected"
	MsgScoreChanged   MessageType = "score_changed"
	MsgClockTick      MessageType = "clock_tick"
	MsgHintConsumed   MessageType = "hint_consumed"
	MsgLevelComplete  MessageType = "level_complete"
	MsgGameOver       MessageType = "game_over"
	MsgGameComplete   MessageType = "game_complete"
	MsgPong           MessageType = "pong"
)

var eventMessageTypes = map[domain.EventType]MessageType{
	domain.EventLevelStarted:   MsgLevelStarted,
	domain.EventLetterRevealed: MsgLetterRevealed,
	domain.EventWordAccepted:   MsgWordAccepted,
	domain.EventWordRejected:   MsgWordRejected,
	domain.EventScoreChanged:   MsgScoreChanged,
	domain.EventClockTick:      MsgClockTick,
	domain.EventHintConsumed:   MsgHintConsumed,
	domain.EventLevelComplete:  MsgLevelComplete,
	domain.EventGameOver:       MsgGameOver,
	domain.EventGameComplete:   MsgGameComplete,
}

// ClientMessage represents a message from client to server
type ClientMessage struct {
	Type    MessageType `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

// ServerMessage represents a message from server to client
type ServerMessage struct {
	Type      MessageType `json:"type"`
	Payload   interface{} `json:"payload,omitempty"`
	Timestamp string      `json:"timestamp"`
}

// NewServerMessage creates a new server message with current timestamp
func NewServerMessage(msgType MessageType, payload interface{}) *ServerMessage {
	return &ServerMessage{
		Type:      msgType,
		Payload:   payload,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// EventMessage converts a game event into the message sent to clients.
// ok is false for event types with no client message.
func EventMessage(event *domain.GameEvent) (*ServerMessage, bool) {
	msgType, ok := eventMessageTypes[event.Type]
	if !ok {
		return nil, false
	}
	return &ServerMessage{
		Type:      msgType,
		Payload:   event.Payload,
		Timestamp: event.Timestamp.UTC().Format(time.RFC3339),
	}, true
}

// Client message payloads

// SubmitLetterPayload is the payload for submit_letter message
type SubmitLetterPayload struct {
	Letter string `json:"letter"`
}

// SubmitWordPayload is the payload for submit_word message
type SubmitWordPayload struct {
	Word string `json:"word"`
}

// Server message payloads

// ConnectedPayload is the payload for connected message
type ConnectedPayload struct {
	ClientID string          `json:"clientId"`
	GameID   string          `json:"gameId"`
	State    domain.Snapshot `json:"state"`
}

// ErrorPayload is the payload for error message
type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error codes
const (
	ErrCodeInvalidMessage = "INVALID_MESSAGE"
	ErrCodeGameNotFound   = "GAME_NOT_FOUND"
	ErrCodeRateLimited    = "RATE_LIMITED"
	ErrCodeInternalError  = "INTERNAL_ERROR"
)
