package progression

import "time"

// Character cache defaults
const (
	DefaultCacheSize = 1000
	DefaultCacheTTL  = 5 * time.Minute
)

// XP and stat growth for duration-scaled activities
const (
	MinutesPerXPStep = 10
	XPPerMinutesStep = 5
	KnowledgeMinutes = 20 // minutes per knowledge point
	FocusMinutes     = 25 // minutes per focus point
	MinDurationGain  = 1
)

// RecapDays is the length of the weekly recap window, today included
const RecapDays = 7

// Level-up sources carried on character.level_up events
const (
	LevelUpSourceActivity = "activity"
	LevelUpSourceQuest    = "quest"
)

// Log messages
const (
	LogMsgCharacterCreated  = "Character created"
	LogMsgCharacterImported = "Character imported"
	LogMsgActivityLogged    = "Activity logged"
	LogMsgStreakReset       = "Streak reset"
	LogMsgQuestCompleted    = "Special quest completed"
	LogMsgStatPrestiged     = "Stat prestiged"
)
