package domain

import (
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
)

// Board is the mutable state of one level attempt: the words still to be
// solved and the slots they resolve through. The puzzle owns it and lends it
// to the hint engine for the duration of a single call, so there is exactly
// one writer of the remaining words.
type Board struct {
	remaining []string
	slots     *SlotSet
	listener  Listener
}

func newBoard(level Level, listener Listener) *Board {
	words := level.Words()
	return &Board{
		remaining: words,
		slots:     BuildSlots(words),
		listener:  listener,
	}
}

// Slots returns the level's slot set
func (b *Board) Slots() *SlotSet {
	return b.slots
}

// Remaining returns a copy of the unsolved words in dictionary order
func (b *Board) Remaining() []string {
	return append([]string(nil), b.remaining...)
}

// RemainingCount returns the number of unsolved words
func (b *Board) RemainingCount() int {
	return len(b.remaining)
}

// Contains reports whether word is still unsolved
func (b *Board) Contains(word string) bool {
	return lo.Contains(b.remaining, word)
}

// HasPrefix reports whether prefix is a strict prefix of an unsolved word
func (b *Board) HasPrefix(prefix string) bool {
	return lo.ContainsBy(b.remaining, func(w string) bool {
		return len(w) > len(prefix) && strings.HasPrefix(w, prefix)
	})
}

// FirstOfLength returns the first unsolved word with length runes
func (b *Board) FirstOfLength(length int) (string, bool) {
	return lo.Find(b.remaining, func(w string) bool {
		return utf8.RuneCountInString(w) == length
	})
}

// remove drops word from the unsolved set; it reports whether it was present.
func (b *Board) remove(word string) bool {
	if !b.Contains(word) {
		return false
	}
	b.remaining = lo.Without(b.remaining, word)
	return true
}

// reveal shows a letter in slot and notifies the listener when it was new.
func (b *Board) reveal(slot *WordSlot, position int, letter rune, isHint bool) bool {
	if !slot.RevealLetter(position, letter, isHint) {
		return false
	}
	b.listener.OnLetterRevealed(slot.Length(), position, letter, isHint)
	return true
}

// fill writes every letter of word into its slot and marks the slot filled.
func (b *Board) fill(slot *WordSlot, word string) {
	for i, r := range []rune(word) {
		if slot.place(i, r, false) {
			b.listener.OnLetterRevealed(slot.Length(), i, r, false)
		}
	}
	slot.markFilled()
}
