package boss

// Damage formula coefficients
const (
	BaseDamage           = 6.0
	StatDamageFactor     = 1.25
	StatGainDamageFactor = 8.0
	MinutesPerDamageStep = 10
	DamagePerMinutesStep = 3
	StudyFlavorFactor    = 0.9
	WeaknessMultiplier   = 1.6
	MinDamage            = 1
)

// Reward formula: 100 XP at the minimum HP plus 5 XP per 10 HP above it
const (
	BaseXPReward      = 100
	XPRewardHPStep    = 10
	XPRewardPerHPStep = 5
)

// Log sources for level up events
const (
	LevelUpSourceBoss = "boss"
)
