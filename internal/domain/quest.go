package domain

// SpecialQuest is a one-time quest that can be claimed with proof
type SpecialQuest struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	XPReward    int    `json:"xp_reward"`
	Stat        Stat   `json:"stat,omitempty"`
	StatReward  int    `json:"stat_reward,omitempty"`
}

// QuestResult is the outcome of claiming a special quest
type QuestResult struct {
	Character       *Character `json:"character"`
	QuestID         string     `json:"quest_id"`
	XPAwarded       int        `json:"xp_awarded"`
	OldLevel        int        `json:"old_level"`
	NewLevel        int        `json:"new_level"`
	NewAchievements []string   `json:"new_achievements"`
}
