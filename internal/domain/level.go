package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
)

// Level is one stage of play: a letter pool and the words it can spell.
// Words keep their declaration order so that every ordered choice the engine
// makes over the dictionary is reproducible.
type Level struct {
	letters string
	words   []string
}

// NewLevel normalises letters and words to upper case, drops duplicate words
// and rejects data that cannot be played.
func NewLevel(letters string, words ...string) (Level, error) {
	letters = strings.ToUpper(strings.TrimSpace(letters))
	if letters == "" {
		return Level{}, ErrEmptyLetters
	}

	normalized := lo.Uniq(lo.FilterMap(words, func(w string, _ int) (string, bool) {
		w = strings.ToUpper(strings.TrimSpace(w))
		return w, w != ""
	}))
	if len(normalized) == 0 {
		return Level{}, fmt.Errorf("level %s: %w", letters, ErrEmptyDictionary)
	}

	pool := lo.CountValues([]rune(letters))
	for _, w := range normalized {
		if utf8.RuneCountInString(w) > utf8.RuneCountInString(letters) {
			return Level{}, fmt.Errorf("level %s: %q: %w", letters, w, ErrWordTooLong)
		}
		need := lo.CountValues([]rune(w))
		for r, n := range need {
			if pool[r] < n {
				return Level{}, fmt.Errorf("level %s: %q: %w", letters, w, ErrWordNotSpellable)
			}
		}
	}

	return Level{letters: letters, words: normalized}, nil
}

// MustLevel is like NewLevel but panics on invalid data.
// It is intended for compiled-in level tables.
func MustLevel(letters string, words ...string) Level {
	l, err := NewLevel(letters, words...)
	if err != nil {
		panic(err)
	}
	return l
}

// Letters returns the letter pool in its defined order
func (l Level) Letters() string {
	return l.letters
}

// Words returns a copy of the dictionary in declaration order
func (l Level) Words() []string {
	return append([]string(nil), l.words...)
}

// IsValidWord reports whether word is in the dictionary, ignoring case
func (l Level) IsValidWord(word string) bool {
	return lo.Contains(l.words, strings.ToUpper(word))
}

// MaxWordLength returns the length of the longest dictionary word
func (l Level) MaxWordLength() int {
	return lo.Max(lo.Map(l.words, func(w string, _ int) int {
		return utf8.RuneCountInString(w)
	}))
}

// ShortWords returns the dictionary words shorter than min. Such words can
// never be reached by letter entry, which only resolves candidates of at
// least min letters, but they still take part in hint rotation.
func (l Level) ShortWords(min int) []string {
	return lo.Filter(l.words, func(w string, _ int) bool {
		return utf8.RuneCountInString(w) < min
	})
}

// Catalog is the immutable, ordered list of levels for a playthrough.
type Catalog struct {
	levels []Level
}

// NewCatalog builds a catalog. An empty catalog is a configuration fault.
func NewCatalog(levels ...Level) (*Catalog, error) {
	if len(levels) == 0 {
		return nil, ErrNoLevels
	}
	return &Catalog{levels: append([]Level(nil), levels...)}, nil
}

// Levels returns the levels in play order
func (c *Catalog) Levels() []Level {
	return append([]Level(nil), c.levels...)
}

// Count returns the number of levels
func (c *Catalog) Count() int {
	return len(c.levels)
}

// Level returns the level at index. ok is false when index is out of range,
// which callers treat as the end of the game.
func (c *Catalog) Level(index int) (Level, bool) {
	if index < 0 || index >= len(c.levels) {
		return Level{}, false
	}
	return c.levels[index], true
}
