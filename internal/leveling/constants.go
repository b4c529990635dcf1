package leveling

// Level curve constants
const (
	// MinLevel is the level of a character with no XP
	MinLevel = 1

	// FlatXPPerLevel is the XP needed for each level past the threshold table
	FlatXPPerLevel = 700

	// MaxIterationLevel bounds the level search for absurd XP totals
	MaxIterationLevel = 100000
)

// Streak multiplier constants
const (
	// StreakBonusPerDay is the multiplier added per streak day
	StreakBonusPerDay = 0.05

	// MaxStreakMultiplier caps the streak multiplier (reached at 20 days)
	MaxStreakMultiplier = 2.0

	floatTolerance = 1e-9
)

// levelThresholds is the XP needed to advance into levels 2..5
var levelThresholds = []int64{100, 250, 450, 700}
