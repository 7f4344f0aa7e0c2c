package domain

import "errors"

// Domain errors
var (
	ErrGameNotFound      = errors.New("game not found")
	ErrNoLevels          = errors.New("catalog has no levels")
	ErrEmptyLetters      = errors.New("level has an empty letter pool")
	ErrEmptyDictionary   = errors.New("level has an empty dictionary")
	ErrWordTooLong       = errors.New("word is longer than the letter pool")
	ErrWordNotSpellable  = errors.New("word cannot be spelled from the letter pool")
	ErrInvalidTransition = errors.New("invalid phase transition")
)
