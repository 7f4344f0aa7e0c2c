package domain

// Hint describes the outcome of one ProvideHint call.
type Hint struct {
	Consumed bool   // a hint was spent on Word
	Word     string // the active word of the targeted slot
	Position int    // position the cursor pointed at
	Letter   rune
	Revealed bool // false when Position was already visible
	Solved   bool // the reveal completed the word
}

// HintEngine reveals letters of unsolved words on the player's behalf.
// It keeps a reveal cursor per word and counts the hints spent in the level.
type HintEngine struct {
	cursors   map[string]int
	hintsUsed int
	level     int
}

// NewHintEngine creates a hint engine with no level loaded
func NewHintEngine() *HintEngine {
	return &HintEngine{cursors: make(map[string]int)}
}

// InitializeLevel forgets all cursors and resets the hint counter
func (h *HintEngine) InitializeLevel(levelNumber int) {
	h.cursors = make(map[string]int)
	h.hintsUsed = 0
	h.level = levelNumber
}

// Level returns the 1-based level number the engine was initialised for
func (h *HintEngine) Level() int {
	return h.level
}

// HintsUsed returns the hints spent in the current level
func (h *HintEngine) HintsUsed() int {
	return h.hintsUsed
}

// Cursor returns the next position that will be hinted for word
func (h *HintEngine) Cursor(word string) int {
	return h.cursors[word]
}

// ProvideHint reveals the next letter of the active word of the first open
// slot. Hints racing a finished level are expected, so a missing slot, a
// missing word or an exhausted cursor all leave the board untouched and
// consume nothing.
func (h *HintEngine) ProvideHint(b *Board) Hint {
	slot, ok := b.Slots().FirstUnfilled()
	if !ok {
		return Hint{}
	}
	word, ok := b.FirstOfLength(slot.Length())
	if !ok {
		return Hint{}
	}

	runes := []rune(word)
	pos := h.cursors[word]
	if pos >= len(runes) {
		return Hint{}
	}
	h.cursors[word] = pos + 1

	hint := Hint{Consumed: true, Word: word, Position: pos, Letter: runes[pos]}
	hint.Revealed = b.reveal(slot, pos, runes[pos], true)

	if slot.markFilled() {
		hint.Solved = true
		h.WordSolved(b, word)
	}

	h.hintsUsed++
	return hint
}

// WordSolved removes word from the board and rotates the next word of the
// same length into its slot by revealing that word's first letter, provided
// the slot is still open.
func (h *HintEngine) WordSolved(b *Board, word string) {
	b.remove(word)
	if b.RemainingCount() == 0 {
		return
	}

	next, ok := b.FirstOfLength(len([]rune(word)))
	if !ok {
		return
	}
	slot, ok := b.Slots().Get(len([]rune(next)))
	if !ok || slot.Filled() {
		return
	}
	b.reveal(slot, 0, []rune(next)[0], false)
	h.cursors[next] = 1
}
