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

// CompleteSpecialQuest claims a one-time quest. It follows the same proof
// contract as LogActivity but writes no activity log, so streaks are untouched.
func (s *service) CompleteSpecialQuest(ctx context.Context, characterID, questID, proof string) (*domain.QuestResult, error) {
	if _, err := requireProof(proof); err != nil {
		return nil, err
	}
	q, ok := s.quests.Lookup(questID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownQuest, questID)
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
	if c.HasCompletedQuest(q.ID) {
		return nil, fmt.Errorf("%w: %s", domain.ErrQuestAlreadyCompleted, q.ID)
	}

	oldLevel := c.Level
	granted := achievement.GrantXP(c, q.XPReward, []string{})
	if q.Stat != "" && q.StatReward > 0 {
		c.Stats.Add(q.Stat, q.StatReward)
	}
	c.CompletedQuests = append(c.CompletedQuests, q.ID)
	granted = achievement.Grant(c, granted, achievement.QuestComplete(q.Title))

	c.UpdatedAt = s.now().UTC()
	if err := tx.UpdateCharacter(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to update character: %w", err)
	}
	if err := s.commit(ctx, tx, c); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgQuestCompleted, "character_id", c.ID, "quest_id", q.ID, "xp", q.XPReward)

	events := []event.Event{event.NewQuestCompletedEvent(c, q.ID, q.XPReward)}
	if c.Level > oldLevel {
		events = append(events, event.NewLevelUpEvent(c, oldLevel, c.Level, LevelUpSourceQuest))
	}
	s.publish(ctx, events...)

	return &domain.QuestResult{
		Character:       c.Clone(),
		QuestID:         q.ID,
		XPAwarded:       q.XPReward,
		OldLevel:        oldLevel,
		NewLevel:        c.Level,
		NewAchievements: granted,
	}, nil
}
