package domain

// Character limits
const (
	// MaxStat is the ceiling for every stat value
	MaxStat = 100

	// BaselineStat is the value every stat starts at before class bonuses
	BaselineStat = 5

	// MaxActivityMinutes bounds the duration accepted for a single log
	MaxActivityMinutes = 600

	// DailyMinimumXP is the XP a character must earn in one day to keep a streak alive
	DailyMinimumXP = 20
)

// Boss roster limits
const (
	// MaxUserBosses is the number of live bosses a character may hold
	MaxUserBosses = 4

	// MinBossHP is the smallest max HP a boss can be created with
	MinBossHP = 250

	// FinalBossHPThreshold marks bosses counted as final bosses on defeat (strictly greater)
	FinalBossHPThreshold = 500
)

// Input limits for user-provided strings
const (
	MaxNameLength     = 50
	MaxUsernameLength = 32
	MaxTags           = 10
)
