package domain

import (
	"encoding/json"
	"sort"
	"strings"
	"testing"
)

func TestSubmitWordCompletesLevel(t *testing.T) {
	p, rec := newTestPuzzle(t, MustLevel("SUGBO", "BUGO"))
	rec.reset()

	p.SubmitLetters("bugo")

	if p.Score() != 80 {
		t.Errorf("Score() = %d, want 80", p.Score())
	}
	if p.Phase() != PhaseLevelComplete {
		t.Errorf("Phase() = %s, want LEVEL_COMPLETE", p.Phase())
	}
	if p.Candidate() != "" {
		t.Errorf("Candidate() = %q, want empty", p.Candidate())
	}
	for _, want := range []string{"accepted:BUGO", "score:80", "level_complete:0:80"} {
		if rec.count(want) != 1 {
			t.Errorf("expected %q once, events: %v", want, rec.events)
		}
	}
	if rec.count("rejected:BUG") != 0 {
		t.Error("a live prefix must not be reported as rejected")
	}

	history := p.History()
	if len(history) != 2 || history[0].Word != "BUG" || history[0].Accepted || history[1].Word != "BUGO" || !history[1].Accepted {
		t.Errorf("History() = %+v", history)
	}
	if got := p.Performance(); got != "Excellent! Perfect solve with no hints!" {
		t.Errorf("Performance() = %q", got)
	}
}

func TestDeadEndCandidateIsCleared(t *testing.T) {
	p, rec := newTestPuzzle(t, MustLevel("SUGBO", "BUGO", "SUGO"))

	p.SubmitLetters("SUB")
	if p.Candidate() != "" {
		t.Errorf("Candidate() = %q, want empty after a dead end", p.Candidate())
	}
	if rec.count("rejected:SUB") != 1 {
		t.Errorf("expected SUB rejected, events: %v", rec.events)
	}

	p.SubmitLetters("SUG")
	if p.Candidate() != "SUG" {
		t.Errorf("Candidate() = %q, want SUG", p.Candidate())
	}

	p.SubmitLetter('o')
	if p.Score() != 80 || p.Phase() != PhaseLevelComplete {
		t.Errorf("score = %d, phase = %s", p.Score(), p.Phase())
	}
}

func TestMemberWithFilledSlotIsRejected(t *testing.T) {
	p, rec := newTestPuzzle(t, MustLevel("KALBUO", "KALO", "BOLA", "ABO"))

	p.SubmitLetters("KALO")
	if p.Score() != 80 {
		t.Fatalf("Score() = %d, want 80", p.Score())
	}

	p.SubmitLetters("BOLA")
	if p.Score() != 80 {
		t.Errorf("Score() = %d, a filled slot must not score again", p.Score())
	}
	if rec.count("rejected:BOLA") != 1 {
		t.Errorf("expected BOLA rejected, events: %v", rec.events)
	}
	if p.Phase() != PhaseActive {
		t.Errorf("Phase() = %s, want ACTIVE", p.Phase())
	}
}

func TestSubmitLetterIgnoresInvalidInput(t *testing.T) {
	p, _ := newTestPuzzle(t, MustLevel("SUGBO", "BUGO"))

	p.SubmitLetters("1 -")
	if p.Candidate() != "" {
		t.Errorf("Candidate() = %q, non-letters must be ignored", p.Candidate())
	}

	p.SubmitLetters("bu")
	if p.Candidate() != "BU" {
		t.Errorf("Candidate() = %q, want BU", p.Candidate())
	}

	p.ClearCandidate()
	p.SubmitLetters("BUGO")
	p.SubmitLetters("BUGO")
	if p.Score() != 80 {
		t.Errorf("input after the level ended changed the score to %d", p.Score())
	}
}

func TestThreeTimeoutsEndLevel(t *testing.T) {
	p, rec := newTestPuzzle(t, MustLevel("KALBUO", "ABO", "KALO"))

	tickN(p, 60)
	if p.TimeoutStreak() != 1 || p.SecondsRemaining() != 60 || p.HintsUsed() != 1 {
		t.Fatalf("after first timeout: streak=%d clock=%d hints=%d", p.TimeoutStreak(), p.SecondsRemaining(), p.HintsUsed())
	}
	if rec.count("revealed:4:0:K:true") != 1 {
		t.Errorf("timeout should hint K, events: %v", rec.events)
	}

	tickN(p, 60)
	if p.TimeoutStreak() != 2 || p.TotalHints() != 2 {
		t.Fatalf("after second timeout: streak=%d total=%d", p.TimeoutStreak(), p.TotalHints())
	}

	tickN(p, 60)
	if p.Phase() != PhaseGameOver {
		t.Fatalf("Phase() = %s, want GAME_OVER", p.Phase())
	}
	if rec.count("game_over:0:0") != 1 {
		t.Errorf("expected one game over, events: %v", rec.events)
	}

	tickN(p, 5)
	if p.SecondsRemaining() != 0 || p.TimeoutStreak() != 3 {
		t.Errorf("ticks after game over changed state: clock=%d streak=%d", p.SecondsRemaining(), p.TimeoutStreak())
	}
}

func TestAcceptedWordResetsTimeoutStreak(t *testing.T) {
	p, _ := newTestPuzzle(t, MustLevel("KALBUO", "ABO", "KALO"))
	tickN(p, 120)

	p.SubmitLetters("ABO")

	if p.TimeoutStreak() != 0 {
		t.Errorf("TimeoutStreak() = %d, want 0", p.TimeoutStreak())
	}
	if p.Score() != 30 {
		t.Errorf("Score() = %d, want 30 after two hints", p.Score())
	}
}

func TestProvideHintSolvesWordWithoutScoring(t *testing.T) {
	p, rec := newTestPuzzle(t, MustLevel("KALBUO", "ABO", "KALO"))

	for i := 0; i < 4; i++ {
		if !p.ProvideHint().Consumed {
			t.Fatalf("hint %d not consumed", i)
		}
	}

	if p.SecondsRemaining() != 20 {
		t.Errorf("SecondsRemaining() = %d, want 20", p.SecondsRemaining())
	}
	if p.Score() != 0 || p.Phase() != PhaseActive {
		t.Errorf("score = %d, phase = %s", p.Score(), p.Phase())
	}
	if p.Board().RemainingCount() != 1 {
		t.Errorf("RemainingCount() = %d, want 1", p.Board().RemainingCount())
	}
	if rec.count("hint:4") != 1 {
		t.Errorf("expected hint:4, events: %v", rec.events)
	}

	p.SubmitLetters("ABO")
	if p.Score() != 30 || p.Phase() != PhaseLevelComplete {
		t.Errorf("score = %d, phase = %s", p.Score(), p.Phase())
	}
	if got := p.Performance(); got != "Good work! Keep practicing to solve without hints!" {
		t.Errorf("Performance() = %q", got)
	}
}

func TestHintOnLastSlotCompletesLevel(t *testing.T) {
	p, rec := newTestPuzzle(t, MustLevel("KALBUO", "KALO"))

	for i := 0; i < 4; i++ {
		p.ProvideHint()
	}

	if p.Phase() != PhaseLevelComplete {
		t.Errorf("Phase() = %s, want LEVEL_COMPLETE", p.Phase())
	}
	if rec.count("level_complete:0:0") != 1 {
		t.Errorf("expected level complete, events: %v", rec.events)
	}
	if p.ProvideHint().Consumed {
		t.Error("hints outside an active level must not be consumed")
	}
}

func TestHintPenaltyFloorsAtZero(t *testing.T) {
	p, rec := newTestPuzzle(t, MustLevel("KALBUO", "ABO", "KALO"))
	tickN(p, 55)

	p.ProvideHint()
	if p.SecondsRemaining() != 0 || p.TimeoutStreak() != 0 {
		t.Fatalf("clock = %d, streak = %d", p.SecondsRemaining(), p.TimeoutStreak())
	}

	p.Tick()
	if p.TimeoutStreak() != 1 || p.SecondsRemaining() != 60 || p.TotalHints() != 2 {
		t.Errorf("streak=%d clock=%d total=%d", p.TimeoutStreak(), p.SecondsRemaining(), p.TotalHints())
	}
	if rec.count("clock:-1") != 0 {
		t.Error("the clock must not count below zero")
	}
}

func TestRestartLevelKeepsScore(t *testing.T) {
	p, _ := newTestPuzzle(t, MustLevel("KALBUO", "ABO", "KALO"))
	p.SubmitLetters("ABO")
	p.ProvideHint()
	tickN(p, 10)

	p.RestartLevel()

	if p.Score() != 60 {
		t.Errorf("Score() = %d, want 60", p.Score())
	}
	if p.Phase() != PhaseActive || p.SecondsRemaining() != 60 || p.HintsUsed() != 0 {
		t.Errorf("phase=%s clock=%d hints=%d", p.Phase(), p.SecondsRemaining(), p.HintsUsed())
	}
	if p.Board().RemainingCount() != 2 || len(p.History()) != 0 {
		t.Errorf("remaining=%d history=%d", p.Board().RemainingCount(), len(p.History()))
	}
	for _, s := range p.Snapshot().Slots {
		for _, c := range s.Cells {
			if c.Letter != "" {
				t.Fatalf("slot %d still shows %q", s.Length, c.Letter)
			}
		}
	}
}

func TestRestartGame(t *testing.T) {
	p, rec := newTestPuzzle(t,
		MustLevel("SUGBO", "BUGO"),
		MustLevel("KALBUO", "ABO", "KALO"),
	)
	p.SubmitLetters("BUGO")
	p.NextLevel()
	p.ProvideHint()
	rec.reset()

	p.RestartGame()

	if p.Score() != 0 || p.LevelIndex() != 0 || p.TotalHints() != 0 || p.Phase() != PhaseActive {
		t.Errorf("score=%d level=%d total=%d phase=%s", p.Score(), p.LevelIndex(), p.TotalHints(), p.Phase())
	}
	if rec.count("score:0") != 1 || rec.count("level_started:0") != 1 {
		t.Errorf("events: %v", rec.events)
	}
}

func TestNextLevelThroughGameComplete(t *testing.T) {
	p, rec := newTestPuzzle(t,
		MustLevel("SUGBO", "BUGO"),
		MustLevel("KALBUO", "KALO"),
	)

	p.NextLevel()
	if p.LevelIndex() != 0 {
		t.Fatal("NextLevel must wait for the level to complete")
	}

	p.SubmitLetters("BUGO")
	p.NextLevel()
	if p.LevelIndex() != 1 || p.Phase() != PhaseActive {
		t.Fatalf("level=%d phase=%s", p.LevelIndex(), p.Phase())
	}

	p.ProvideHint()
	p.SubmitLetters("KALO")
	if p.Score() != 120 {
		t.Errorf("Score() = %d, want 120", p.Score())
	}

	p.NextLevel()
	if p.Phase() != PhaseGameComplete || p.Board() != nil {
		t.Errorf("phase=%s board=%v", p.Phase(), p.Board())
	}
	if rec.count("game_complete:120:1") != 1 {
		t.Errorf("expected game complete, events: %v", rec.events)
	}

	snap := p.Snapshot()
	if snap.Slots == nil || len(snap.Slots) != 0 || snap.History == nil {
		t.Errorf("snapshot should carry empty collections: %+v", snap)
	}
}

func TestLoadLevelOutOfRange(t *testing.T) {
	p, rec := newTestPuzzle(t, MustLevel("SUGBO", "BUGO"))

	p.LoadLevel(7)
	if p.Phase() != PhaseGameComplete || rec.count("game_complete:0:0") != 1 {
		t.Fatalf("phase=%s events=%v", p.Phase(), rec.events)
	}

	p.SubmitLetters("BUGO")
	p.Tick()
	if p.Score() != 0 {
		t.Error("input after game complete must be ignored")
	}

	p.LoadLevel(-3)
	if p.Phase() != PhaseActive || p.LevelIndex() != 0 {
		t.Errorf("phase=%s level=%d", p.Phase(), p.LevelIndex())
	}
}

func TestSnapshotHidesUnsolvedWords(t *testing.T) {
	p, _ := newTestPuzzle(t, MustLevel("KALBUO", "ABO", "KALO"))
	p.ProvideHint()

	data, err := json.Marshal(p.Snapshot())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, word := range []string{"KALO", "ABO"} {
		if strings.Contains(string(data), word) {
			t.Errorf("snapshot leaks %s: %s", word, data)
		}
	}

	snap := p.Snapshot()
	if snap.LevelCount != 1 || snap.WordsRemaining != 2 || snap.Letters != "KALBUO" {
		t.Errorf("snapshot = %+v", snap)
	}
	if len(snap.Slots) != 2 || snap.Slots[0].Length != 4 || snap.Slots[0].Cells[0].Letter != "K" || !snap.Slots[0].Cells[0].Hint {
		t.Errorf("slots = %+v", snap.Slots)
	}
}

func TestDefaultShuffleKeepsLetters(t *testing.T) {
	catalog, _ := NewCatalog(MustLevel("PANAGHIUSA", "PANA"))
	p := NewPuzzle(catalog, DefaultSettings(), nil)
	p.LoadLevel(0)

	got := p.Letters()
	sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })
	want := []rune("PANAGHIUSA")
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })
	if string(got) != string(want) {
		t.Errorf("shuffled pool %q is not a permutation of %q", string(got), string(want))
	}
}
