// Package leveling maps cumulative XP to levels and computes the streak XP multiplier.
// Every function is pure.
package leveling

import "math"

// xpNeededForLevel returns the XP required to advance from level-1 to level
func xpNeededForLevel(level int) int64 {
	if level <= MinLevel {
		return 0
	}
	idx := level - 2
	if idx < len(levelThresholds) {
		return levelThresholds[idx]
	}
	return FlatXPPerLevel
}

// XPForLevel returns the cumulative XP at which a character reaches level
func XPForLevel(level int) int64 {
	if level <= MinLevel {
		return 0
	}

	cumulative := int64(0)
	for l := MinLevel + 1; l <= level && l <= len(levelThresholds)+1; l++ {
		cumulative += xpNeededForLevel(l)
	}
	if extra := level - (len(levelThresholds) + 1); extra > 0 {
		cumulative += int64(extra) * FlatXPPerLevel
	}
	return cumulative
}

// XPToLevel returns the largest level whose cumulative threshold is <= totalXP
func XPToLevel(totalXP int64) int {
	if totalXP <= 0 {
		return MinLevel
	}

	level := MinLevel
	cumulative := int64(0)
	for level-MinLevel < len(levelThresholds) {
		next := xpNeededForLevel(level + 1)
		if cumulative+next > totalXP {
			return level
		}
		cumulative += next
		level++
	}

	// Past the table every level costs the same amount
	extra := (totalXP - cumulative) / FlatXPPerLevel
	if extra > MaxIterationLevel {
		extra = MaxIterationLevel
	}
	return level + int(extra)
}

// XPProgressInLevel returns how far into the current level totalXP is,
// and how much XP the current level spans in total
func XPProgressInLevel(totalXP int64) (current int64, needed int64) {
	if totalXP < 0 {
		totalXP = 0
	}
	level := XPToLevel(totalXP)
	current = totalXP - XPForLevel(level)
	needed = xpNeededForLevel(level + 1)
	return current, needed
}

// StreakMultiplier returns min(1 + streakDays*0.05, 2.0)
func StreakMultiplier(streakDays int) float64 {
	if streakDays < 0 {
		streakDays = 0
	}
	return math.Min(1.0+float64(streakDays)*StreakBonusPerDay, MaxStreakMultiplier)
}

// ApplyStreak scales a raw XP amount by the streak multiplier, floors it and
// never returns less than 1
func ApplyStreak(rawXP int, streakDays int) int {
	scaled := float64(rawXP) * StreakMultiplier(streakDays)
	// absorb float drift from the 0.05 step before flooring
	xp := int(math.Floor(scaled + floatTolerance))
	if xp < 1 {
		return 1
	}
	return xp
}
