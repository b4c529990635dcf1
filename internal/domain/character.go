package domain

import (
	"slices"
	"time"
)

// ClassID identifies a character class preset
type ClassID string

// Character is a player's progression state. Level is derived from TotalXP and
// is recomputed whenever the character is loaded or XP changes.
type Character struct {
	ID                       string       `json:"id"`
	Name                     string       `json:"name"`
	Username                 string       `json:"username"`
	Level                    int          `json:"level"`
	TotalXP                  int64        `json:"total_xp"`
	Stats                    StatBlock    `json:"stats"`
	StreakDays               int          `json:"streak_days"`
	LastActivityDate         Date         `json:"last_activity_date,omitempty"`
	Achievements             []string     `json:"achievements"`
	UnlockedCosmetics        []string     `json:"unlocked_cosmetics"`
	StatPrestige             map[Stat]int `json:"stat_prestige"`
	ClassID                  ClassID      `json:"class_id,omitempty"`
	StarterWeapon            string       `json:"starter_weapon,omitempty"`
	ActiveBossID             string       `json:"active_boss_id,omitempty"`
	BossesDefeatedCount      int          `json:"bosses_defeated_count"`
	FinalBossesDefeatedCount int          `json:"final_bosses_defeated_count"`
	CompletedQuests          []string     `json:"completed_quests"`
	CreatedAt                time.Time    `json:"created_at"`
	UpdatedAt                time.Time    `json:"updated_at"`
}

// HasAchievement reports whether the achievement has been granted
func (c *Character) HasAchievement(id string) bool {
	return slices.Contains(c.Achievements, id)
}

// AddAchievement appends an achievement if it is not held yet.
// It returns true when the achievement was newly granted.
func (c *Character) AddAchievement(id string) bool {
	if c.HasAchievement(id) {
		return false
	}
	c.Achievements = append(c.Achievements, id)
	return true
}

// HasCosmetic reports whether a cosmetic was explicitly unlocked
func (c *Character) HasCosmetic(id string) bool {
	return slices.Contains(c.UnlockedCosmetics, id)
}

// AddCosmetic marks a cosmetic as explicitly unlocked
func (c *Character) AddCosmetic(id string) bool {
	if c.HasCosmetic(id) {
		return false
	}
	c.UnlockedCosmetics = append(c.UnlockedCosmetics, id)
	return true
}

// HasCompletedQuest reports whether a special quest was already claimed
func (c *Character) HasCompletedQuest(id string) bool {
	return slices.Contains(c.CompletedQuests, id)
}

// Clone returns a deep copy so callers can mutate without touching shared state
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}
	out := *c
	out.Achievements = slices.Clone(c.Achievements)
	out.UnlockedCosmetics = slices.Clone(c.UnlockedCosmetics)
	out.CompletedQuests = slices.Clone(c.CompletedQuests)
	out.StatPrestige = make(map[Stat]int, len(c.StatPrestige))
	for k, v := range c.StatPrestige {
		out.StatPrestige[k] = v
	}
	return &out
}

// CreateCharacterInput carries the fields chosen at character creation
type CreateCharacterInput struct {
	Name          string  `json:"name"`
	Username      string  `json:"username"`
	ClassID       ClassID `json:"class_id,omitempty"`
	StarterWeapon string  `json:"starter_weapon,omitempty"`
}
