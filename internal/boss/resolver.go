// Package boss resolves activity damage against user-defined bosses and
// manages each character's boss roster.
package boss

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/osse101/StudyQuest_Go/internal/achievement"
	"github.com/osse101/StudyQuest_Go/internal/activity"
	"github.com/osse101/StudyQuest_Go/internal/cosmetic"
	"github.com/osse101/StudyQuest_Go/internal/domain"
)

// XPRewardFor computes the reward frozen into a boss at creation
func XPRewardFor(maxHP int) int {
	if maxHP < domain.MinBossHP {
		maxHP = domain.MinBossHP
	}
	return BaseXPReward + (maxHP-domain.MinBossHP)/XPRewardHPStep*XPRewardPerHPStep
}

// Damage computes the damage an activity deals to a boss with the given weakness.
// stats must already include the stat growth from the log. The second return
// value reports whether the weakness multiplier applied.
func Damage(stats domain.StatBlock, def domain.ActivityDefinition, minutes int, weakness domain.Stat) (int, bool) {
	dmg := BaseDamage +
		float64(stats.Get(def.Stat))*StatDamageFactor +
		float64(def.StatGain)*StatGainDamageFactor

	if def.UsesMinutes && minutes > 0 {
		dmg += float64(minutes / MinutesPerDamageStep * DamagePerMinutesStep)
	}
	if activity.IsStudyClass(def.ID) {
		dmg += float64(stats.Knowledge)*StudyFlavorFactor + float64(stats.Focus)*StudyFlavorFactor
	}

	weak := weakness != "" && weakness == def.Stat
	if weak {
		dmg *= WeaknessMultiplier
	}

	out := int(math.Floor(dmg))
	if out < MinDamage {
		out = MinDamage
	}
	return out, weak
}

// Resolver applies activity damage to bosses. The random source drives loot
// and weakness selection; it is guarded so one Resolver can serve concurrent requests.
type Resolver struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewResolver creates a resolver drawing from rng
func NewResolver(rng *rand.Rand) *Resolver {
	return &Resolver{rng: rng}
}

// RandomWeakness draws a weakness stat uniformly
func (r *Resolver) RandomWeakness() domain.Stat {
	r.mu.Lock()
	defer r.mu.Unlock()
	return domain.AllStats[r.rng.Intn(len(domain.AllStats))]
}

func (r *Resolver) pickLoot(c *domain.Character) (domain.CosmeticItem, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return cosmetic.PickLootCosmetic(r.rng, c.Achievements, c.Level, c.UnlockedCosmetics)
}

// ApplyDamage resolves one activity log against the character's active boss.
// It mutates c and b in place and returns nil when nothing happened: no boss,
// a boss that is not the active target, or a boss that is already defeated.
// Achievements granted along the way are appended to granted.
func (r *Resolver) ApplyDamage(c *domain.Character, b *domain.UserBoss, def domain.ActivityDefinition, minutes int, now time.Time, granted []string) (*domain.BossOutcome, []string) {
	if b == nil || b.Defeated || b.Removed || c.ActiveBossID == "" || c.ActiveBossID != b.ID {
		return nil, granted
	}

	dmg, weak := Damage(c.Stats, def, minutes, b.WeaknessStat)
	b.CurrentHP -= dmg
	if b.CurrentHP < 0 {
		b.CurrentHP = 0
	}

	outcome := &domain.BossOutcome{
		BossID:      b.ID,
		BossName:    b.Name,
		Damage:      dmg,
		RemainingHP: b.CurrentHP,
		Weakness:    weak,
	}
	if b.CurrentHP > 0 {
		return outcome, granted
	}

	granted = r.defeat(c, b, now, outcome, granted)
	return outcome, granted
}

func (r *Resolver) defeat(c *domain.Character, b *domain.UserBoss, now time.Time, outcome *domain.BossOutcome, granted []string) []string {
	defeatedAt := now
	b.Defeated = true
	b.DefeatedAt = &defeatedAt

	granted = achievement.GrantXP(c, b.XPReward, granted)
	granted = achievement.Grant(c, granted, achievement.BossDefeated(b.Name, b.XPReward))

	if item, ok := r.pickLoot(c); ok {
		b.Loot = append(b.Loot, item.ID)
		c.AddCosmetic(item.ID)
		granted = achievement.Grant(c, granted, achievement.Looted(item.Icon, item.Label))
		outcome.LootID = item.ID
	}

	b.Removed = true
	if c.ActiveBossID == b.ID {
		c.ActiveBossID = ""
	}
	c.BossesDefeatedCount++
	if b.IsFinalBoss() {
		c.FinalBossesDefeatedCount++
	}

	outcome.Defeated = true
	outcome.XPAwarded = b.XPReward
	return granted
}
