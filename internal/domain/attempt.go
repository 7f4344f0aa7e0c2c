package domain

import "time"

// WordAttempt records one resolved candidate word in the level history
type WordAttempt struct {
	Word      string    `json:"word"`
	Accepted  bool      `json:"accepted"` // the word was in the remaining dictionary
	Timestamp time.Time `json:"timestamp"`
}

// NewWordAttempt creates a new history entry
func NewWordAttempt(word string, accepted bool) WordAttempt {
	return WordAttempt{
		Word:      word,
		Accepted:  accepted,
		Timestamp: time.Now(),
	}
}
