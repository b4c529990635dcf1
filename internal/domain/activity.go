package domain

import "time"

// ActivityDefinition is a catalog entry describing a loggable activity
type ActivityDefinition struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Stat        Stat   `json:"stat"`
	BaseXP      int    `json:"base_xp"`
	StatGain    int    `json:"stat_gain"`
	UsesMinutes bool   `json:"uses_minutes"`
}

// ActivityLog is an immutable record of one successful log.
// XPEarned is frozen at write time.
type ActivityLog struct {
	ID          string    `json:"id"`
	CharacterID string    `json:"character_id"`
	ActivityID  string    `json:"activity_id"`
	LoggedAt    time.Time `json:"logged_at"`
	LocalDate   Date      `json:"local_date"`
	Minutes     int       `json:"minutes,omitempty"`
	ProofURL    string    `json:"proof_url"`
	Tags        []string  `json:"tags,omitempty"`
	XPEarned    int       `json:"xp_earned"`
}

// LogOptions are the caller-supplied parameters of an activity log
type LogOptions struct {
	Minutes  int      `json:"minutes,omitempty"`
	ProofURL string   `json:"proof_url"`
	Tags     []string `json:"tags,omitempty"`
}

// LogResult is the outcome of a successful activity log.
// StreakExtended replaces the old "streak extended" hook: callers inspect it directly.
type LogResult struct {
	Character       *Character   `json:"character"`
	Log             ActivityLog  `json:"log"`
	XPEarned        int          `json:"xp_earned"`
	StatGained      int          `json:"stat_gained"`
	OldLevel        int          `json:"old_level"`
	NewLevel        int          `json:"new_level"`
	StreakExtended  bool         `json:"streak_extended"`
	StreakReset     bool         `json:"streak_reset"`
	NewAchievements []string     `json:"new_achievements"`
	Boss            *BossOutcome `json:"boss,omitempty"`
}

// LeveledUp reports whether the log raised the character's level
func (r *LogResult) LeveledUp() bool {
	return r.NewLevel > r.OldLevel
}

// DailyXP is the XP earned on one calendar day
type DailyXP struct {
	Date Date `json:"date"`
	XP   int  `json:"xp"`
}

// WeeklyRecap summarizes the trailing seven days of activity logs
type WeeklyRecap struct {
	CharacterID   string       `json:"character_id"`
	From          Date         `json:"from"`
	To            Date         `json:"to"`
	TotalXP       int          `json:"total_xp"`
	ActivityCount int          `json:"activity_count"`
	Days          []DailyXP    `json:"days"`
	XPByStat      map[Stat]int `json:"xp_by_stat"`
	TopActivityID string       `json:"top_activity_id,omitempty"`
}
