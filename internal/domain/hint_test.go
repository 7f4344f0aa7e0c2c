package domain

import (
	"reflect"
	"testing"
)

func newTestBoard(level Level) (*Board, *recorder) {
	rec := &recorder{}
	return newBoard(level, rec), rec
}

func TestProvideHintSolvesWord(t *testing.T) {
	b, rec := newTestBoard(MustLevel("KALBUO", "ABO", "KALO"))
	h := NewHintEngine()
	h.InitializeLevel(2)

	for i, want := range "KALO" {
		hint := h.ProvideHint(b)
		if !hint.Consumed || hint.Word != "KALO" || hint.Position != i || hint.Letter != want || !hint.Revealed {
			t.Fatalf("hint %d = %+v", i, hint)
		}
		if solved := i == 3; hint.Solved != solved {
			t.Errorf("hint %d Solved = %v, want %v", i, hint.Solved, solved)
		}
	}

	slot, _ := b.Slots().Get(4)
	if !slot.Filled() {
		t.Error("KALO slot should be filled")
	}
	if h.HintsUsed() != 4 {
		t.Errorf("HintsUsed() = %d, want 4", h.HintsUsed())
	}
	if got := b.Remaining(); !reflect.DeepEqual(got, []string{"ABO"}) {
		t.Errorf("Remaining() = %v, want [ABO]", got)
	}
	if rec.count("revealed:4:3:O:true") != 1 {
		t.Errorf("missing hinted reveal of O, events: %v", rec.events)
	}

	// The next hint moves on to the shorter slot
	if hint := h.ProvideHint(b); hint.Word != "ABO" || hint.Position != 0 {
		t.Errorf("fifth hint = %+v, want ABO at 0", hint)
	}
}

func TestProvideHintOnRevealedPositionIsConsumed(t *testing.T) {
	b, _ := newTestBoard(MustLevel("KALBUO", "KALO"))
	h := NewHintEngine()
	slot, _ := b.Slots().Get(4)
	b.reveal(slot, 0, 'K', false)

	hint := h.ProvideHint(b)
	if !hint.Consumed || hint.Revealed || hint.Position != 0 {
		t.Errorf("hint = %+v, want consumed without a new reveal", hint)
	}
	if h.Cursor("KALO") != 1 || h.HintsUsed() != 1 {
		t.Errorf("cursor = %d, hintsUsed = %d", h.Cursor("KALO"), h.HintsUsed())
	}
}

func TestProvideHintNoOps(t *testing.T) {
	t.Run("all slots filled", func(t *testing.T) {
		b, _ := newTestBoard(MustLevel("SUGBO", "BUGO"))
		h := NewHintEngine()
		slot, _ := b.Slots().Get(4)
		b.fill(slot, "BUGO")

		if hint := h.ProvideHint(b); hint.Consumed {
			t.Errorf("hint = %+v, want nothing consumed", hint)
		}
		if h.HintsUsed() != 0 {
			t.Errorf("HintsUsed() = %d, want 0", h.HintsUsed())
		}
	})

	t.Run("no word for the open slot", func(t *testing.T) {
		b, _ := newTestBoard(MustLevel("KALBUO", "ABO", "KALO"))
		h := NewHintEngine()
		h.WordSolved(b, "KALO")

		if hint := h.ProvideHint(b); hint.Consumed {
			t.Errorf("hint = %+v, want nothing consumed", hint)
		}
	})

	t.Run("cursor exhausted", func(t *testing.T) {
		b, _ := newTestBoard(MustLevel("KALBUO", "KALO"))
		h := NewHintEngine()
		h.cursors["KALO"] = 4

		if hint := h.ProvideHint(b); hint.Consumed {
			t.Errorf("hint = %+v, want nothing consumed", hint)
		}
		if slot, _ := b.Slots().Get(4); slot.RevealedCount() != 0 {
			t.Error("board should be untouched")
		}
	})
}

func TestWordSolvedRotatesNextWord(t *testing.T) {
	b, rec := newTestBoard(MustLevel("SUGBO", "BUGO", "SUGO"))
	h := NewHintEngine()

	h.WordSolved(b, "BUGO")

	if got := b.Remaining(); !reflect.DeepEqual(got, []string{"SUGO"}) {
		t.Fatalf("Remaining() = %v, want [SUGO]", got)
	}
	if h.Cursor("SUGO") != 1 {
		t.Errorf("Cursor(SUGO) = %d, want 1", h.Cursor("SUGO"))
	}
	if rec.count("revealed:4:0:S:false") != 1 {
		t.Errorf("expected first letter of SUGO, events: %v", rec.events)
	}

	hint := h.ProvideHint(b)
	if hint.Word != "SUGO" || hint.Position != 1 || hint.Letter != 'U' {
		t.Errorf("hint = %+v, want SUGO at 1", hint)
	}
}

func TestWordSolvedSkipsFilledSlot(t *testing.T) {
	b, rec := newTestBoard(MustLevel("SUGBO", "BUGO", "SUGO"))
	h := NewHintEngine()
	slot, _ := b.Slots().Get(4)
	b.fill(slot, "BUGO")
	rec.reset()

	h.WordSolved(b, "BUGO")

	if len(rec.events) != 0 {
		t.Errorf("no reveal expected on a filled slot, got %v", rec.events)
	}
	if h.Cursor("SUGO") != 0 {
		t.Errorf("Cursor(SUGO) = %d, want 0", h.Cursor("SUGO"))
	}
}

func TestInitializeLevelResetsState(t *testing.T) {
	b, _ := newTestBoard(MustLevel("KALBUO", "KALO"))
	h := NewHintEngine()
	h.ProvideHint(b)

	h.InitializeLevel(3)

	if h.HintsUsed() != 0 || h.Cursor("KALO") != 0 || h.Level() != 3 {
		t.Errorf("after InitializeLevel: used=%d cursor=%d level=%d", h.HintsUsed(), h.Cursor("KALO"), h.Level())
	}
}
