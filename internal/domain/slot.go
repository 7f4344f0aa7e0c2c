package domain

import (
	"sort"
	"unicode/utf8"

	"github.com/samber/lo"
)

// WordSlot is the box group shared by every dictionary word of one length.
// Only one word of a length is on display at a time; solving it fills the slot.
type WordSlot struct {
	length   int
	letters  []rune // zero rune for hidden positions
	hinted   []bool
	revealed map[int]struct{}
	filled   bool
}

func newWordSlot(length int) *WordSlot {
	return &WordSlot{
		length:   length,
		letters:  make([]rune, length),
		hinted:   make([]bool, length),
		revealed: make(map[int]struct{}, length),
	}
}

// Length returns the word length this slot represents
func (s *WordSlot) Length() int {
	return s.length
}

// RevealLetter shows letter at position. It reports false when position is
// out of range or already revealed; a second reveal never changes the slot.
func (s *WordSlot) RevealLetter(position int, letter rune, isHint bool) bool {
	if position < 0 || position >= s.length {
		return false
	}
	if _, ok := s.revealed[position]; ok {
		return false
	}
	s.revealed[position] = struct{}{}
	s.letters[position] = letter
	s.hinted[position] = isHint
	return true
}

// place writes letter at position whether or not it was revealed, so a solved
// word replaces letters hinted for a different word of the same length. It
// reports whether the visible cell changed.
func (s *WordSlot) place(position int, letter rune, isHint bool) bool {
	if position < 0 || position >= s.length {
		return false
	}
	if _, ok := s.revealed[position]; ok && s.letters[position] == letter {
		return false
	}
	s.revealed[position] = struct{}{}
	s.letters[position] = letter
	s.hinted[position] = isHint
	return true
}

// IsRevealed reports whether position has been revealed
func (s *WordSlot) IsRevealed(position int) bool {
	_, ok := s.revealed[position]
	return ok
}

// RevealedCount returns the number of revealed positions
func (s *WordSlot) RevealedCount() int {
	return len(s.revealed)
}

// RevealedPositions returns the revealed positions in ascending order
func (s *WordSlot) RevealedPositions() []int {
	positions := lo.Keys(s.revealed)
	sort.Ints(positions)
	return positions
}

// Complete reports whether every position is revealed
func (s *WordSlot) Complete() bool {
	return len(s.revealed) == s.length
}

// Filled reports whether the slot's current word has been solved
func (s *WordSlot) Filled() bool {
	return s.filled
}

// markFilled flips filled once every position is revealed.
func (s *WordSlot) markFilled() bool {
	if !s.Complete() {
		return false
	}
	s.filled = true
	return true
}

// Reset hides every letter and clears the filled flag
func (s *WordSlot) Reset() {
	s.letters = make([]rune, s.length)
	s.hinted = make([]bool, s.length)
	s.revealed = make(map[int]struct{}, s.length)
	s.filled = false
}

// View returns a snapshot of the slot for display
func (s *WordSlot) View() SlotView {
	cells := make([]CellView, s.length)
	for i := range cells {
		if s.IsRevealed(i) {
			cells[i] = CellView{Letter: string(s.letters[i]), Hint: s.hinted[i]}
		}
	}
	return SlotView{Length: s.length, Filled: s.filled, Cells: cells}
}

// SlotSet holds one slot per distinct word length in a level.
// Iteration runs from the longest length to the shortest.
type SlotSet struct {
	order    []int
	byLength map[int]*WordSlot
}

// BuildSlots derives a fresh slot for every distinct word length in words
func BuildSlots(words []string) *SlotSet {
	lengths := lo.Uniq(lo.Map(words, func(w string, _ int) int {
		return utf8.RuneCountInString(w)
	}))
	sort.Sort(sort.Reverse(sort.IntSlice(lengths)))

	set := &SlotSet{order: lengths, byLength: make(map[int]*WordSlot, len(lengths))}
	for _, n := range lengths {
		set.byLength[n] = newWordSlot(n)
	}
	return set
}

// Get returns the slot for length
func (ss *SlotSet) Get(length int) (*WordSlot, bool) {
	s, ok := ss.byLength[length]
	return s, ok
}

// All returns the slots in iteration order
func (ss *SlotSet) All() []*WordSlot {
	return lo.Map(ss.order, func(n int, _ int) *WordSlot {
		return ss.byLength[n]
	})
}

// Lengths returns the slot lengths in iteration order
func (ss *SlotSet) Lengths() []int {
	return append([]int(nil), ss.order...)
}

// FirstUnfilled returns the first slot, in iteration order, that is not filled
func (ss *SlotSet) FirstUnfilled() (*WordSlot, bool) {
	return lo.Find(ss.All(), func(s *WordSlot) bool {
		return !s.Filled()
	})
}

// AllFilled reports whether every slot is filled; this is the level
// completion predicate
func (ss *SlotSet) AllFilled() bool {
	return lo.EveryBy(ss.All(), func(s *WordSlot) bool {
		return s.Filled()
	})
}

// Reset clears every slot
func (ss *SlotSet) Reset() {
	for _, s := range ss.byLength {
		s.Reset()
	}
}
