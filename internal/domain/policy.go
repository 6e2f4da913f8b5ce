package domain

// ProgressPolicy bundles the numeric policy tables the engine runs on.
// Pure domain type; the config package produces one at startup.
type ProgressPolicy struct {
	// BoxIntervals maps Leitner box 1..5 to the review interval in days.
	// Must be strictly increasing; the UI promises "higher box = more
	// durable", so the monotonicity is load-bearing.
	BoxIntervals [5]int

	// XP amounts per event source. Wrong answers never award XP.
	XPFlashcardCorrect int
	XPQuizCorrect      int
	XPGameCompleted    int

	// Level curve: XPForLevel(L) = round(CurveBase * (L-1)^CurveExponent).
	CurveBase     float64
	CurveExponent float64
	MaxLevel      int

	// JournalLimit caps the persisted review journal.
	JournalLimit int
}

// DefaultPolicy returns the shipped policy tables.
func DefaultPolicy() ProgressPolicy {
	return ProgressPolicy{
		BoxIntervals:       [5]int{1, 3, 7, 14, 30},
		XPFlashcardCorrect: 10,
		XPQuizCorrect:      20,
		XPGameCompleted:    30,
		CurveBase:          100,
		CurveExponent:      1.7,
		MaxLevel:           200,
		JournalLimit:       500,
	}
}
