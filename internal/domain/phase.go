package domain

// Phase represents the current phase of a puzzle session
type Phase string

const (
	PhaseLoading       Phase = "LOADING"        // No level loaded yet
	PhaseActive        Phase = "ACTIVE"         // Clock running, accepting letters
	PhaseLevelComplete Phase = "LEVEL_COMPLETE" // Every slot filled, waiting to continue
	PhaseGameOver      Phase = "GAME_OVER"      // Timeout budget exhausted
	PhaseGameComplete  Phase = "GAME_COMPLETE"  // Past the last level
)

// String returns the string representation of the phase
func (p Phase) String() string {
	return string(p)
}

// IsTerminal reports whether the phase waits for a restart or level change
// before accepting play input again
func (p Phase) IsTerminal() bool {
	return p == PhaseGameOver || p == PhaseGameComplete
}

// CanTransitionTo checks if a transition from current phase to target phase is valid
func (p Phase) CanTransitionTo(target Phase) bool {
	validTransitions := map[Phase][]Phase{
		PhaseLoading:       {PhaseActive, PhaseGameComplete},
		PhaseActive:        {PhaseActive, PhaseLevelComplete, PhaseGameOver, PhaseGameComplete}, // Active -> Active on restart
		PhaseLevelComplete: {PhaseActive, PhaseGameComplete},
		PhaseGameOver:      {PhaseActive, PhaseGameComplete},
		PhaseGameComplete:  {PhaseActive, PhaseGameComplete},
	}

	allowed, ok := validTransitions[p]
	if !ok {
		return false
	}

	for _, phase := range allowed {
		if phase == target {
			return true
		}
	}
	return false
}
