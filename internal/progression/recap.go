package progression

import (
	"context"

	"github.com/osse101/StudyQuest_Go/internal/activity"
	"github.com/osse101/StudyQuest_Go/internal/domain"
)

// WeeklyRecap aggregates the last RecapDays local days of logs, today included
func (s *service) WeeklyRecap(ctx context.Context, characterID string) (*domain.WeeklyRecap, error) {
	if _, err := s.GetCharacter(ctx, characterID); err != nil {
		return nil, err
	}

	to := s.today()
	from := to.AddDays(-(RecapDays - 1))
	logs, err := s.repo.ListActivityLogs(ctx, characterID, from, to)
	if err != nil {
		return nil, err
	}
	return BuildRecap(characterID, from, logs), nil
}

// BuildRecap folds logs into a recap covering RecapDays days starting at from
func BuildRecap(characterID string, from domain.Date, logs []domain.ActivityLog) *domain.WeeklyRecap {
	recap := &domain.WeeklyRecap{
		CharacterID: characterID,
		From:        from,
		To:          from.AddDays(RecapDays - 1),
		Days:        make([]domain.DailyXP, RecapDays),
		XPByStat:    make(map[domain.Stat]int, len(domain.AllStats)),
	}
	dayIndex := make(map[domain.Date]int, RecapDays)
	for i := range recap.Days {
		d := from.AddDays(i)
		recap.Days[i] = domain.DailyXP{Date: d}
		dayIndex[d] = i
	}
	for _, st := range domain.AllStats {
		recap.XPByStat[st] = 0
	}

	byActivity := make(map[string]int)
	for _, l := range logs {
		i, ok := dayIndex[l.LocalDate]
		if !ok {
			continue
		}
		recap.Days[i].XP += l.XPEarned
		recap.TotalXP += l.XPEarned
		recap.ActivityCount++
		byActivity[l.ActivityID] += l.XPEarned
		if def, ok := activity.Lookup(l.ActivityID); ok {
			recap.XPByStat[def.Stat] += l.XPEarned
		}
	}

	best := -1
	for id, xp := range byActivity {
		if xp > best || (xp == best && id < recap.TopActivityID) {
			best = xp
			recap.TopActivityID = id
		}
	}
	return recap
}
