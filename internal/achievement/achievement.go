// Package achievement names achievements and grants them idempotently.
package achievement

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/StudyQuest_Go/internal/domain"
	"github.com/osse101/StudyQuest_Go/internal/leveling"
)

// Fixed achievement ids
const (
	FirstQuest = "First Quest Completed"
	Streak7    = "7-Day Streak"
	Streak30   = "30-Day Streak"
)

// Streak thresholds that grant an achievement when crossed
const (
	Streak7Days  = 7
	Streak30Days = 30
)

// ReachedLevel names the achievement for reaching level n
func ReachedLevel(n int) string {
	return fmt.Sprintf("Reached Level %d", n)
}

// BossDefeated names the achievement for defeating a boss
func BossDefeated(name string, xp int) string {
	return fmt.Sprintf("Defeated %s Boss (+%d XP)", name, xp)
}

// Looted names the achievement for receiving a cosmetic as boss loot
func Looted(icon, label string) string {
	return fmt.Sprintf("Looted: %s %s", icon, label)
}

// QuestComplete names the achievement for claiming a special quest
func QuestComplete(title string) string {
	return fmt.Sprintf("Quest Complete: %s", title)
}

// Prestige names the achievement for the n-th prestige of a stat
func Prestige(stat domain.Stat, n int) string {
	return fmt.Sprintf("%s Prestige %d", cases.Title(language.English).String(string(stat)), n)
}

// Grant adds id to the character and appends it to granted when it is new
func Grant(c *domain.Character, granted []string, id string) []string {
	if c.AddAchievement(id) {
		granted = append(granted, id)
	}
	return granted
}

// GrantXP adds xp to the character, recomputes the level and grants a
// "Reached Level N" achievement for every level gained.
func GrantXP(c *domain.Character, xp int, granted []string) []string {
	if xp <= 0 {
		return granted
	}
	oldLevel := leveling.XPToLevel(c.TotalXP)
	c.TotalXP += int64(xp)
	c.Level = leveling.XPToLevel(c.TotalXP)
	for lvl := oldLevel + 1; lvl <= c.Level; lvl++ {
		granted = Grant(c, granted, ReachedLevel(lvl))
	}
	return granted
}

// GrantStreak grants streak milestone achievements reached by days
func GrantStreak(c *domain.Character, days int, granted []string) []string {
	if days >= Streak7Days {
		granted = Grant(c, granted, Streak7)
	}
	if days >= Streak30Days {
		granted = Grant(c, granted, Streak30)
	}
	return granted
}
