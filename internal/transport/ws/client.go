package ws

import (
	"encoding/json"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"wordscapes/internal/app"
	"wordscapes/internal/domain"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 4096

	// Size of the send channel buffer
	sendBufferSize = 256
)

// Client represents a WebSocket client connection
type Client struct {
	conn     *websocket.Conn
	session  *app.GameSession
	clientID string
	send     chan []byte
	done     chan struct{}
	limiter  *rate.Limiter
	logger   zerolog.Logger
	mu       sync.Mutex
	closed   bool
}

// NewClient creates a new WebSocket client
func NewClient(conn *websocket.Conn, session *app.GameSession, clientID string, limiter *rate.Limiter, logger zerolog.Logger) *Client {
	return &Client{
		conn:     conn,
		session:  session,
		clientID: clientID,
		send:     make(chan []byte, sendBufferSize),
		done:     make(chan struct{}),
		limiter:  limiter,
		logger:   logger.With().Str("clientId", clientID).Logger(),
	}
}

// GetClientID returns the id of this connection
func (c *Client) GetClientID() string {
	return c.clientID
}

// Send implements app.ClientConnection interface. Game events are
// translated into their client message type.
func (c *Client) Send(message interface{}) error {
	if event, ok := message.(*domain.GameEvent); ok {
		msg, ok := EventMessage(event)
		if !ok {
			return nil
		}
		message = msg
	}

	data, err := json.Marshal(message)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}

	select {
	case c.send <- data:
		return nil
	default:
		// Buffer full, message dropped
		c.logger.Warn().Msg("send buffer full, message dropped")
		return nil
	}
}

// Close implements app.ClientConnection interface
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}

	c.closed = true
	close(c.done)
	return c.conn.Close()
}

// Run starts the client's read and write pumps
func (c *Client) Run() {
	go c.writePump()
	c.readPump()
}

// readPump pumps messages from the WebSocket connection
func (c *Client) readPump() {
	defer func() {
		c.session.UnregisterClient(c.clientID)
		c.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Debug().Err(err).Msg("websocket read error")
			}
			break
		}

		if !c.limiter.Allow() {
			c.sendError(ErrCodeRateLimited, "Too many messages")
			continue
		}
		c.handleMessage(message)
	}
}

// writePump pumps messages from the send channel to the WebSocket connection
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case <-c.done:
			return
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			// Add queued messages to the current websocket message
			n := len(c.send)
			for i := 0; i < n; i++ {
				w.Write([]byte{'\n'})
				w.Write(<-c.send)
			}

			if err := w.Close(); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// handleMessage processes an incoming message from the client
func (c *Client) handleMessage(data []byte) {
	var msg ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		c.sendError(ErrCodeInvalidMessage, "Invalid message format")
		return
	}

	switch msg.Type {
	case MsgSubmitLetter:
		c.handleSubmitLetter(msg.Payload)
	case MsgSubmitWord:
		c.handleSubmitWord(msg.Payload)
	case MsgNextLevel:
		c.session.NextLevel()
	case MsgRestartLevel:
		c.session.RestartLevel()
	case MsgRestartGame:
		c.session.RestartGame()
	case MsgRequestHint:
		hint := c.session.RequestHint()
		c.logger.Debug().Bool("consumed", hint.Consumed).Str("word", hint.Word).Msg("hint requested")
	case MsgPing:
		c.sendPong()
	default:
		c.sendError(ErrCodeInvalidMessage, "Unknown message type")
	}
}

// handleSubmitLetter handles a submit_letter message
func (c *Client) handleSubmitLetter(payload interface{}) {
	payloadMap, ok := payload.(map[string]interface{})
	if !ok {
		c.sendError(ErrCodeInvalidMessage, "Invalid payload")
		return
	}

	letter, ok := payloadMap["letter"].(string)
	if !ok || utf8.RuneCountInString(letter) != 1 {
		c.sendError(ErrCodeInvalidMessage, "Exactly one letter is required")
		return
	}

	r, _ := utf8.DecodeRuneInString(letter)
	c.session.SubmitLetter(r)
}

// handleSubmitWord handles a submit_word message
func (c *Client) handleSubmitWord(payload interface{}) {
	payloadMap, ok := payload.(map[string]interface{})
	if !ok {
		c.sendError(ErrCodeInvalidMessage, "Invalid payload")
		return
	}

	word, ok := payloadMap["word"].(string)
	if !ok || word == "" {
		c.sendError(ErrCodeInvalidMessage, "Word is required")
		return
	}

	c.session.SubmitWord(word)
}

// sendConnected sends the connected message to the client
func (c *Client) sendConnected() {
	payload := &ConnectedPayload{
		ClientID: c.clientID,
		GameID:   c.session.ID(),
		State:    c.session.Snapshot(),
	}

	msg := NewServerMessage(MsgConnected, payload)
	c.Send(msg)
}

// sendError sends an error message to the client
func (c *Client) sendError(code, message string) {
	payload := &ErrorPayload{
		Code:    code,
		Message: message,
	}

	msg := NewServerMessage(MsgError, payload)
	c.Send(msg)
}

// sendPong sends a pong message in response to ping
func (c *Client) sendPong() {
	msg := NewServerMessage(MsgPong, nil)
	c.Send(msg)
}
