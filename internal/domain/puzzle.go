package domain

import (
	"math/rand"
	"unicode"
	"unicode/utf8"
)

// Settings holds the tunable rules of a puzzle session
type Settings struct {
	RoundSeconds       int `json:"roundSeconds"`       // round clock length
	MaxTimeouts        int `json:"maxTimeouts"`        // consecutive expiries that end the level
	HintPenaltySeconds int `json:"hintPenaltySeconds"` // clock deducted per hint
	MinWordLength      int `json:"minWordLength"`      // candidate length that triggers resolution
}

// DefaultSettings returns the default puzzle settings
func DefaultSettings() Settings {
	return Settings{
		RoundSeconds:       60,
		MaxTimeouts:        3,
		HintPenaltySeconds: 10,
		MinWordLength:      3,
	}
}

// Puzzle is the authoritative state machine for one playthrough of a
// catalog. It is not safe for concurrent use; callers serialise letters,
// ticks and level commands.
type Puzzle struct {
	catalog  *Catalog
	settings Settings
	listener Listener
	shuffle  func([]rune)

	phase            Phase
	levelIndex       int
	board            *Board
	hints            *HintEngine
	letters          []rune
	candidate        string
	history          []WordAttempt
	score            int
	totalHints       int
	secondsRemaining int
	timeoutStreak    int
}

// NewPuzzle creates a puzzle in the loading phase. A nil listener discards
// notifications.
func NewPuzzle(catalog *Catalog, settings Settings, listener Listener) *Puzzle {
	if listener == nil {
		listener = NopListener{}
	}
	return &Puzzle{
		catalog:  catalog,
		settings: settings,
		listener: listener,
		shuffle: func(letters []rune) {
			rand.Shuffle(len(letters), func(i, j int) {
				letters[i], letters[j] = letters[j], letters[i]
			})
		},
		phase: PhaseLoading,
		hints: NewHintEngine(),
	}
}

// SetShuffler replaces the letter-pool shuffle. Letter order is cosmetic.
func (p *Puzzle) SetShuffler(shuffle func([]rune)) {
	p.shuffle = shuffle
}

// transition moves to target if the phase table allows it
func (p *Puzzle) transition(target Phase) error {
	if !p.phase.CanTransitionTo(target) {
		return ErrInvalidTransition
	}
	p.phase = target
	return nil
}

// LoadLevel starts the level at index, discarding any in-flight state of the
// current level. An index past the last level completes the game.
func (p *Puzzle) LoadLevel(index int) {
	if index < 0 {
		index = 0
	}
	p.levelIndex = index

	level, ok := p.catalog.Level(index)
	if !ok {
		if p.transition(PhaseGameComplete) == nil {
			p.board = nil
			p.candidate = ""
			p.listener.OnGameComplete(p.score, p.totalHints)
		}
		return
	}
	if p.transition(PhaseActive) != nil {
		return
	}

	p.board = newBoard(level, p.listener)
	p.hints.InitializeLevel(index + 1)
	p.letters = []rune(level.Letters())
	p.shuffle(p.letters)
	p.candidate = ""
	p.history = nil
	p.secondsRemaining = p.settings.RoundSeconds
	p.timeoutStreak = 0

	p.listener.OnLevelStarted(index, append([]rune(nil), p.letters...))
	p.listener.OnClockTick(p.secondsRemaining)
}

// NextLevel continues from a completed level to the one after it
func (p *Puzzle) NextLevel() {
	if p.phase != PhaseLevelComplete {
		return
	}
	p.LoadLevel(p.levelIndex + 1)
}

// RestartLevel reloads the current level, keeping the session score
func (p *Puzzle) RestartLevel() {
	p.LoadLevel(p.levelIndex)
}

// RestartGame clears the score and hint history and starts from level 0
func (p *Puzzle) RestartGame() {
	p.score = 0
	p.totalHints = 0
	p.hints = NewHintEngine()
	p.listener.OnScoreChanged(p.score)
	p.LoadLevel(0)
}

// SubmitLetter appends ch to the candidate word. Once the candidate reaches
// the minimum word length it is resolved against the remaining words.
// Input outside an active level and non-letters are ignored.
func (p *Puzzle) SubmitLetter(ch rune) {
	if p.phase != PhaseActive || !unicode.IsLetter(ch) {
		return
	}
	p.candidate += string(unicode.ToUpper(ch))
	if utf8.RuneCountInString(p.candidate) >= p.settings.MinWordLength {
		p.resolve()
	}
}

// SubmitLetters feeds every rune of s through SubmitLetter
func (p *Puzzle) SubmitLetters(s string) {
	for _, r := range s {
		p.SubmitLetter(r)
	}
}

// resolve checks the candidate word. Accepted words fill their slot and
// score. Any other candidate is kept while it can still grow into an
// unsolved word and is rejected and cleared once it cannot.
func (p *Puzzle) resolve() {
	word := p.candidate
	member := p.board.Contains(word)
	p.history = append(p.history, NewWordAttempt(word, member))

	if member {
		slot, ok := p.board.Slots().Get(utf8.RuneCountInString(word))
		if ok && !slot.Filled() {
			p.accept(slot, word)
			return
		}
	}

	if p.board.HasPrefix(word) {
		return
	}
	p.listener.OnWordRejected(word)
	p.candidate = ""
}

func (p *Puzzle) accept(slot *WordSlot, word string) {
	p.board.fill(slot, word)
	points := Score(word, p.hints.HintsUsed())
	p.score += points

	p.listener.OnWordAccepted(word)
	p.listener.OnScoreChanged(p.score)

	p.hints.WordSolved(p.board, word)
	p.candidate = ""
	p.timeoutStreak = 0

	if p.board.Slots().AllFilled() {
		p.completeLevel()
	}
}

// ClearCandidate discards the letters entered so far
func (p *Puzzle) ClearCandidate() {
	p.candidate = ""
}

// Tick advances the round clock by one second. When the clock runs out the
// timeout streak grows; reaching the timeout budget ends the level,
// otherwise a hint is spent and the clock restarts.
func (p *Puzzle) Tick() {
	if p.phase != PhaseActive {
		return
	}
	// A hint penalty can leave the clock at zero; the next tick times out
	// without counting below it.
	if p.secondsRemaining > 0 {
		p.secondsRemaining--
		p.listener.OnClockTick(p.secondsRemaining)
		if p.secondsRemaining > 0 {
			return
		}
	}

	p.timeoutStreak++
	if p.timeoutStreak >= p.settings.MaxTimeouts {
		if p.transition(PhaseGameOver) == nil {
			p.listener.OnGameOver(p.levelIndex, p.score)
		}
		return
	}

	p.ProvideHint()
	if p.phase != PhaseActive {
		return
	}
	p.secondsRemaining = p.settings.RoundSeconds
	p.listener.OnClockTick(p.secondsRemaining)
}

// ProvideHint spends a hint on the first open slot. Each spent hint costs
// round-clock time; a hint that completes the last open slot completes the
// level.
func (p *Puzzle) ProvideHint() Hint {
	if p.phase != PhaseActive {
		return Hint{}
	}
	hint := p.hints.ProvideHint(p.board)
	if !hint.Consumed {
		return hint
	}

	p.totalHints++
	p.secondsRemaining = max(p.secondsRemaining-p.settings.HintPenaltySeconds, 0)
	p.listener.OnHintConsumed(p.hints.HintsUsed())
	p.listener.OnClockTick(p.secondsRemaining)

	if hint.Solved && p.board.Slots().AllFilled() {
		p.completeLevel()
	}
	return hint
}

func (p *Puzzle) completeLevel() {
	if p.transition(PhaseLevelComplete) == nil {
		p.listener.OnLevelComplete(p.levelIndex, p.score)
	}
}

// Performance returns a short verdict on the current level based on hint use
// and the time left on the round clock
func (p *Puzzle) Performance() string {
	hintsUsed := p.hints.HintsUsed()
	switch {
	case hintsUsed == 0 && p.secondsRemaining > p.settings.RoundSeconds/2:
		return "Excellent! Perfect solve with no hints!"
	case hintsUsed == 0:
		return "Great job! Solved without hints!"
	case p.secondsRemaining > 0:
		return "Good work! Keep practicing to solve without hints!"
	default:
		return "Keep trying! You're making progress!"
	}
}

// Phase returns the current phase
func (p *Puzzle) Phase() Phase {
	return p.phase
}

// LevelIndex returns the 0-based index of the current level
func (p *Puzzle) LevelIndex() int {
	return p.levelIndex
}

// Score returns the session score
func (p *Puzzle) Score() int {
	return p.score
}

// Candidate returns the letters entered toward the next word
func (p *Puzzle) Candidate() string {
	return p.candidate
}

// SecondsRemaining returns the round clock
func (p *Puzzle) SecondsRemaining() int {
	return p.secondsRemaining
}

// TimeoutStreak returns the consecutive round-clock expiries since the level
// loaded or a word was last accepted
func (p *Puzzle) TimeoutStreak() int {
	return p.timeoutStreak
}

// HintsUsed returns the hints spent in the current level
func (p *Puzzle) HintsUsed() int {
	return p.hints.HintsUsed()
}

// TotalHints returns the hints spent since the game started
func (p *Puzzle) TotalHints() int {
	return p.totalHints
}

// Letters returns the shuffled letter pool of the current level
func (p *Puzzle) Letters() []rune {
	return append([]rune(nil), p.letters...)
}

// History returns the word attempts of the current level
func (p *Puzzle) History() []WordAttempt {
	return append([]WordAttempt(nil), p.history...)
}

// Board returns the current level's board, or nil outside a level
func (p *Puzzle) Board() *Board {
	return p.board
}

// Settings returns the rules the puzzle was created with
func (p *Puzzle) Settings() Settings {
	return p.settings
}

// Snapshot returns a display copy of the puzzle state
func (p *Puzzle) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:            p.phase,
		LevelIndex:       p.levelIndex,
		LevelCount:       p.catalog.Count(),
		Letters:          string(p.letters),
		Slots:            []SlotView{},
		Candidate:        p.candidate,
		Score:            p.score,
		SecondsRemaining: p.secondsRemaining,
		TimeoutStreak:    p.timeoutStreak,
		MaxTimeouts:      p.settings.MaxTimeouts,
		HintsUsed:        p.hints.HintsUsed(),
		TotalHints:       p.totalHints,
		History:          p.History(),
	}
	if p.board != nil {
		for _, s := range p.board.Slots().All() {
			snap.Slots = append(snap.Slots, s.View())
		}
		snap.WordsRemaining = p.board.RemainingCount()
	}
	if p.phase == PhaseLevelComplete {
		snap.Performance = p.Performance()
	}
	if snap.History == nil {
		snap.History = []WordAttempt{}
	}
	return snap
}
