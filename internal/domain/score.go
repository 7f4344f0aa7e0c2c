package domain

import "unicode/utf8"

const (
	pointsPerLetter  = 10
	longWordBonusMin = 4 // letters beyond this earn the long-word bonus
	pointsPerBonus   = 5
)

// Score returns the points for solving word. hintsUsed is the level's
// cumulative hint count at the moment of the solve: any hint earlier in the
// level removes the no-hint doubling for every later word.
func Score(word string, hintsUsed int) int {
	n := utf8.RuneCountInString(word)
	points := n * pointsPerLetter
	if hintsUsed == 0 {
		points *= 2
	}
	if n > longWordBonusMin {
		points += (n - longWordBonusMin) * pointsPerBonus
	}
	return points
}
