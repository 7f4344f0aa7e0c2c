package domain

// CellView is one box of a slot; Letter is empty while hidden
type CellView struct {
	Letter string `json:"letter,omitempty"`
	Hint   bool   `json:"hint,omitempty"`
}

// SlotView is a display copy of a WordSlot
type SlotView struct {
	Length int        `json:"length"`
	Filled bool       `json:"filled"`
	Cells  []CellView `json:"cells"`
}

// Snapshot is a read-only copy of a puzzle's state for display and
// reconnecting clients. It never contains unsolved words.
type Snapshot struct {
	Phase            Phase         `json:"phase"`
	LevelIndex       int           `json:"levelIndex"`
	LevelCount       int           `json:"levelCount"`
	Letters          string        `json:"letters"`
	Slots            []SlotView    `json:"slots"`
	Candidate        string        `json:"candidate"`
	Score            int           `json:"score"`
	SecondsRemaining int           `json:"secondsRemaining"`
	TimeoutStreak    int           `json:"timeoutStreak"`
	MaxTimeouts      int           `json:"maxTimeouts"`
	HintsUsed        int           `json:"hintsUsed"`
	TotalHints       int           `json:"totalHints"`
	WordsRemaining   int           `json:"wordsRemaining"`
	History          []WordAttempt `json:"history"`
	Performance      string        `json:"performance,omitempty"`
}
