package progression

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/osse101/StudyQuest_Go/internal/achievement"
	"github.com/osse101/StudyQuest_Go/internal/activity"
	"github.com/osse101/StudyQuest_Go/internal/boss"
	"github.com/osse101/StudyQuest_Go/internal/domain"
	"github.com/osse101/StudyQuest_Go/internal/event"
	"github.com/osse101/StudyQuest_Go/internal/leveling"
	"github.com/osse101/StudyQuest_Go/internal/logger"
	"github.com/osse101/StudyQuest_Go/internal/repository"
)

// LogActivity records one activity for a character. Proof, activity id and
// character are validated in that order and any failure leaves no trace.
// On success the log, stats, XP, streak, achievements and boss damage are
// committed together.
func (s *service) LogActivity(ctx context.Context, characterID, activityID string, opts domain.LogOptions) (*domain.LogResult, error) {
	log := logger.FromContext(ctx)

	proof, err := requireProof(opts.ProofURL)
	if err != nil {
		return nil, err
	}
	def, ok := activity.Lookup(activityID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownActivity, activityID)
	}
	minutes := ClampMinutes(opts.Minutes)

	tx, err := s.repo.BeginCharacterTx(ctx, characterID)
	if err != nil {
		return nil, err
	}
	defer repository.SafeRollback(ctx, tx)

	c, err := tx.GetCharacter(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	today := domain.DateOf(now, s.loc)
	oldLevel := c.Level

	// XP uses the streak as it stood before this log
	xp := EarnedXP(def, minutes, c.StreakDays)

	entry := domain.ActivityLog{
		ID:          uuid.NewString(),
		CharacterID: c.ID,
		ActivityID:  def.ID,
		LoggedAt:    now.UTC(),
		LocalDate:   today,
		Minutes:     minutes,
		ProofURL:    proof,
		Tags:        normalizeTags(opts.Tags),
		XPEarned:    xp,
	}
	if err := tx.AppendActivityLog(ctx, &entry); err != nil {
		return nil, fmt.Errorf("failed to append activity log: %w", err)
	}

	gained := c.Stats.Add(def.Stat, StatGain(def, minutes))

	c.TotalXP += int64(xp)
	c.Level = leveling.XPToLevel(c.TotalXP)

	todayXP, err := tx.SumXPForDate(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("failed to sum today's xp: %w", err)
	}
	extended, reset := AdvanceStreak(c, todayXP, today)

	granted := achievement.Grant(c, []string{}, achievement.FirstQuest)
	granted = achievement.GrantStreak(c, c.StreakDays, granted)
	for lvl := oldLevel + 1; lvl <= c.Level; lvl++ {
		granted = achievement.Grant(c, granted, achievement.ReachedLevel(lvl))
	}
	levelAfterActivity := c.Level

	var (
		outcome *domain.BossOutcome
		target  *domain.UserBoss
	)
	if c.ActiveBossID != "" {
		target, err = tx.GetBoss(ctx, c.ActiveBossID)
		if err != nil && !errors.Is(err, domain.ErrBossNotFound) {
			return nil, err
		}
		if target == nil || target.OwnerID != c.ID {
			log.Warn("Active boss missing, clearing target", "character_id", c.ID, "boss_id", c.ActiveBossID)
			c.ActiveBossID = ""
			target = nil
		}
	}
	if target != nil {
		outcome, granted = s.resolver.ApplyDamage(c, target, def, minutes, now.UTC(), granted)
		if outcome != nil {
			if err := tx.UpdateBoss(ctx, target); err != nil {
				return nil, fmt.Errorf("failed to update boss: %w", err)
			}
		}
	}

	c.UpdatedAt = now.UTC()
	if err := tx.UpdateCharacter(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to update character: %w", err)
	}
	if err := s.commit(ctx, tx, c); err != nil {
		return nil, err
	}

	log.Info(LogMsgActivityLogged,
		"character_id", c.ID,
		"activity", def.ID,
		"xp", xp,
		"stat", def.Stat,
		"stat_gained", gained,
		"streak_days", c.StreakDays,
		"level", c.Level)
	if reset {
		log.Info(LogMsgStreakReset, "character_id", c.ID, "last_activity_date", c.LastActivityDate)
	}

	events := []event.Event{event.NewActivityLoggedEvent(c, entry, def.Stat)}
	if levelAfterActivity > oldLevel {
		events = append(events, event.NewLevelUpEvent(c, oldLevel, levelAfterActivity, LevelUpSourceActivity))
	}
	if extended {
		events = append(events, event.NewStreakExtendedEvent(c.ID, c.StreakDays, today))
	}
	if outcome != nil && outcome.Defeated {
		events = append(events, event.NewBossDefeatedEvent(c, target, outcome.LootID))
		if c.Level > levelAfterActivity {
			events = append(events, event.NewLevelUpEvent(c, levelAfterActivity, c.Level, boss.LevelUpSourceBoss))
		}
	}
	s.publish(ctx, events...)

	return &domain.LogResult{
		Character:       c.Clone(),
		Log:             entry,
		XPEarned:        xp,
		StatGained:      gained,
		OldLevel:        oldLevel,
		NewLevel:        c.Level,
		StreakExtended:  extended,
		StreakReset:     reset,
		NewAchievements: granted,
		Boss:            outcome,
	}, nil
}

// ClampMinutes bounds a duration to [0, MaxActivityMinutes]
func ClampMinutes(minutes int) int {
	if minutes < 0 {
		return 0
	}
	if minutes > domain.MaxActivityMinutes {
		return domain.MaxActivityMinutes
	}
	return minutes
}

// EarnedXP is floor(max(1, (baseXp + minutesBonus) * streakMultiplier))
func EarnedXP(def domain.ActivityDefinition, minutes, streakDays int) int {
	raw := def.BaseXP
	if def.UsesMinutes && minutes > 0 {
		raw += (minutes / MinutesPerXPStep) * XPPerMinutesStep
	}
	return leveling.ApplyStreak(raw, streakDays)
}

// StatGain is the stat increase of one log before clamping.
// Duration-scaled knowledge and focus activities grow with minutes;
// everything else gains the catalog's flat amount.
func StatGain(def domain.ActivityDefinition, minutes int) int {
	if def.UsesMinutes && minutes > 0 {
		switch def.Stat {
		case domain.StatKnowledge:
			return max(MinDurationGain, minutes/KnowledgeMinutes)
		case domain.StatFocus:
			return max(MinDurationGain, minutes/FocusMinutes)
		}
	}
	return def.StatGain
}

// AdvanceStreak runs the daily streak state machine for a log made on today,
// given the XP earned so far today including that log.
//
// Below the daily minimum the streak drops to 0 as soon as today is after the
// last counted day, even though today may still reach the minimum later.
func AdvanceStreak(c *domain.Character, todayXP int, today domain.Date) (extended, reset bool) {
	if todayXP >= domain.DailyMinimumXP {
		if c.LastActivityDate == today {
			return false, false
		}
		if !c.LastActivityDate.IsZero() && c.LastActivityDate.AddDays(1) == today {
			c.StreakDays++
		} else {
			c.StreakDays = 1
		}
		c.LastActivityDate = today
		return true, false
	}

	if !c.LastActivityDate.IsZero() && c.LastActivityDate.Before(today) {
		reset = c.StreakDays != 0
		c.StreakDays = 0
	}
	return false, reset
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		out = append(out, t)
		if len(out) == domain.MaxTags {
			break
		}
	}
	return out
}
