package progression

import (
	"context"
	"fmt"

	"github.com/osse101/StudyQuest_Go/internal/achievement"
	"github.com/osse101/StudyQuest_Go/internal/domain"
	"github.com/osse101/StudyQuest_Go/internal/event"
	"github.com/osse101/StudyQuest_Go/internal/logger"
	"github.com/osse101/StudyQuest_Go/internal/repository"
)

// PrestigeStat resets a maxed stat to 0 and counts one prestige for it
func (s *service) PrestigeStat(ctx context.Context, characterID string, stat domain.Stat) (*domain.Character, error) {
	if _, err := domain.ParseStat(string(stat)); err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginCharacterTx(ctx, characterID)
	if err != nil {
		return nil, err
	}
	defer repository.SafeRollback(ctx, tx)

	c, err := tx.GetCharacter(ctx)
	if err != nil {
		return nil, err
	}
	if value := c.Stats.Get(stat); value != domain.MaxStat {
		return nil, fmt.Errorf("%w: %s is %d", domain.ErrStatNotMaxed, stat, value)
	}

	c.Stats.Set(stat, 0)
	c.StatPrestige[stat]++
	prestige := c.StatPrestige[stat]
	achievement.Grant(c, nil, achievement.Prestige(stat, prestige))

	c.UpdatedAt = s.now().UTC()
	if err := tx.UpdateCharacter(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to update character: %w", err)
	}
	if err := s.commit(ctx, tx, c); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgStatPrestiged, "character_id", c.ID, "stat", stat, "prestige", prestige)
	s.publish(ctx, event.NewStatPrestigedEvent(c.ID, stat, prestige))
	return c.Clone(), nil
}
