package domain

// CharacterXPPayload is carried by every event that changes a character's XP.
// Leaderboard subscribers only need these fields.
type CharacterXPPayload struct {
	CharacterID string `json:"character_id"`
	Username    string `json:"username"`
	Name        string `json:"name"`
	TotalXP     int64  `json:"total_xp"`
	Level       int    `json:"level"`
}

// ActivityLoggedPayload is the event payload for activity.logged events
type ActivityLoggedPayload struct {
	CharacterXPPayload
	ActivityID string `json:"activity_id"`
	Stat       Stat   `json:"stat"`
	XPEarned   int    `json:"xp_earned"`
	Minutes    int    `json:"minutes,omitempty"`
	Timestamp  int64  `json:"timestamp"`
}

// LevelUpPayload is the event payload for character.level_up events
type LevelUpPayload struct {
	CharacterXPPayload
	OldLevel int    `json:"old_level"`
	NewLevel int    `json:"new_level"`
	Source   string `json:"source"`
}

// StreakExtendedPayload is the event payload for streak.extended events
type StreakExtendedPayload struct {
	CharacterID string `json:"character_id"`
	StreakDays  int    `json:"streak_days"`
	Date        Date   `json:"date"`
}

// BossDefeatedPayload is the event payload for boss.defeated events
type BossDefeatedPayload struct {
	CharacterXPPayload
	BossID    string `json:"boss_id"`
	BossName  string `json:"boss_name"`
	MaxHP     int    `json:"max_hp"`
	XPAwarded int    `json:"xp_awarded"`
	LootID    string `json:"loot_id,omitempty"`
	Final     bool   `json:"final"`
}

// QuestCompletedPayload is the event payload for quest.completed events
type QuestCompletedPayload struct {
	CharacterXPPayload
	QuestID   string `json:"quest_id"`
	XPAwarded int    `json:"xp_awarded"`
}

// StatPrestigedPayload is the event payload for stat.prestiged events
type StatPrestigedPayload struct {
	CharacterID string `json:"character_id"`
	Stat        Stat   `json:"stat"`
	Prestige    int    `json:"prestige"`
}

// XPPayloadOf extracts the leaderboard fields from a character
func XPPayloadOf(c *Character) CharacterXPPayload {
	return CharacterXPPayload{
		CharacterID: c.ID,
		Username:    c.Username,
		Name:        c.Name,
		TotalXP:     c.TotalXP,
		Level:       c.Level,
	}
}
