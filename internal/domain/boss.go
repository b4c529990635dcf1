package domain

import "time"

// UserBoss is a user-defined HP pool damaged by activity logging.
// Defeated is one-way; XPReward and WeaknessStat are fixed at creation.
type UserBoss struct {
	ID           string     `json:"id"`
	OwnerID      string     `json:"owner_id"`
	Name         string     `json:"name"`
	MaxHP        int        `json:"max_hp"`
	CurrentHP    int        `json:"current_hp"`
	Defeated     bool       `json:"defeated"`
	DefeatedAt   *time.Time `json:"defeated_at,omitempty"`
	XPReward     int        `json:"xp_reward"`
	WeaknessStat Stat       `json:"weakness_stat"`
	Loot         []string   `json:"loot"`
	Removed      bool       `json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
}

// IsFinalBoss reports whether defeating this boss counts toward the final boss tally
func (b *UserBoss) IsFinalBoss() bool {
	return b.MaxHP > FinalBossHPThreshold
}

// BossOutcome describes what a single activity log did to the active boss
type BossOutcome struct {
	BossID      string `json:"boss_id"`
	BossName    string `json:"boss_name"`
	Damage      int    `json:"damage"`
	RemainingHP int    `json:"remaining_hp"`
	Weakness    bool   `json:"weakness_hit"`
	Defeated    bool   `json:"defeated"`
	XPAwarded   int    `json:"xp_awarded,omitempty"`
	LootID      string `json:"loot_id,omitempty"`
}
