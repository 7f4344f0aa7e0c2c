package domain

import (
	"fmt"
	"testing"
)

// recorder collects listener notifications as readable strings
type recorder struct {
	events []string
}

func (r *recorder) add(format string, args ...interface{}) {
	r.events = append(r.events, fmt.Sprintf(format, args...))
}

func (r *recorder) OnLevelStarted(levelIndex int, letters []rune) {
	r.add("level_started:%d", levelIndex)
}

func (r *recorder) OnLetterRevealed(slotLength, position int, letter rune, isHint bool) {
	r.add("revealed:%d:%d:%c:%t", slotLength, position, letter, isHint)
}

func (r *recorder) OnWordAccepted(word string) { r.add("accepted:%s", word) }
func (r *recorder) OnWordRejected(word string) { r.add("rejected:%s", word) }
func (r *recorder) OnScoreChanged(score int) { r.add("score:%d", score) }
func (r *recorder) OnClockTick(seconds int) { r.add("clock:%d", seconds) }
func (r *recorder) OnHintConsumed(hintsUsed int) { r.add("hint:%d", hintsUsed) }

func (r *recorder) OnLevelComplete(levelIndex, score int) {
	r.add("level_complete:%d:%d", levelIndex, score)
}

func (r *recorder) OnGameOver(levelIndex, score int) {
	r.add("game_over:%d:%d", levelIndex, score)
}

func (r *recorder) OnGameComplete(finalScore, totalHints int) {
	r.add("game_complete:%d:%d", finalScore, totalHints)
}

func (r *recorder) count(event string) int {
	n := 0
	for _, e := range r.events {
		if e == event {
			n++
		}
	}
	return n
}

func (r *recorder) reset() {
	r.events = nil
}

// newTestPuzzle builds a loaded puzzle over the given levels with the
// default settings and an identity shuffle
func newTestPuzzle(t *testing.T, levels ...Level) (*Puzzle, *recorder) {
	t.Helper()
	catalog, err := NewCatalog(levels...)
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	rec := &recorder{}
	p := NewPuzzle(catalog, DefaultSettings(), rec)
	p.SetShuffler(func([]rune) {})
	p.LoadLevel(0)
	return p, rec
}

func tickN(p *Puzzle, n int) {
	for i := 0; i < n; i++ {
		p.Tick()
	}
}
