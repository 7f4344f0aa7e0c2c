package app

import "wordscapes/internal/domain"

// DefaultLevels is the compiled-in level table, easiest first.
// Duplicate dictionary entries in the source data are dropped by domain.NewLevel.
var DefaultLevels = []struct {
	Letters string
	Words   []string
}{
	// Level 1: Easy
	{"SUGBO", []string{"BUGO", "SUGO", "GUSO", "BUSOG", "UBOS", "GUBO"}},

	// Level 2: Semi-Easy
	{"KALBUO", []string{
		"BULAK", "KALBU", "KULBA", "BUKAL", "ABO",
		"KALO", "BOLA", "KUBAL", "BOLA", "BULA",
	}},

	// Level 3: Medium
	{"BALAYAN", []string{"LAYA", "BALAY", "LABAN", "ALAY", "BALA", "BALAYAN", "LABA"}},

	// Level 4: Harder
	{"KUSOGAN", []string{
		"KUSOG", "KUSOGA", "USOG", "SUKO", "GUSO",
		"KUSOGAN", "KUGON", "GAKOS", "SUKA",
	}},

	// Level 5: Hard
	{"KAMINGAW", []string{
		"MINGAW", "KAMINGAW", "AGAW", "NAKAW",
		"KAGAW", "KAWANG", "KAMI", "MINAW",
	}},

	// Level 6: Very Difficult
	{"PANAGHIUSA", []string{
		"PANAG", "HIUSA", "PAGHIUSA", "HUSA", "PANA", "GIUSA", "PANAGHIUSA",
		"USA", "GIUNSA", "GAPAS", "GISA", "USAP", "NIPA", "GANA", "GAHI",
		"ANAG", "SAPA", "GAPAS", "HANAP", "PUSA", "HAPI",
	}},

	// Level 7: Expert
	{"KINATIBUKANO", []string{
		"TINIBUKAN", "KINATIBUKAN", "TIBUOK", "TIBUKAN", "KATIBUKAN", "KATINA",
		"BUKA", "BUKOT", "KANA", "KINI", "TABI", "ABO", "TINA", "ANOK", "ANAK", "TIBU",
	}},
}

// DefaultCatalog builds the catalog from DefaultLevels. Invalid level data
// is a startup fault.
func DefaultCatalog() (*domain.Catalog, error) {
	levels := make([]domain.Level, 0, len(DefaultLevels))
	for _, def := range DefaultLevels {
		level, err := domain.NewLevel(def.Letters, def.Words...)
		if err != nil {
			return nil, err
		}
		levels = append(levels, level)
	}
	return domain.NewCatalog(levels...)
}
