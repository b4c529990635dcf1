package snapshot

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/osse101/StudyQuest_Go/internal/domain"
)

// characterV1 is the legacy document. Pointer fields were optional.
type characterV1 struct {
	ID                       string         `json:"id"`
	Name                     string         `json:"name"`
	Username                 string         `json:"username"`
	Level                    *int           `json:"level"`
	TotalXP                  *int64         `json:"totalXP"`
	Stats                    map[string]int `json:"stats"`
	StreakDays               *int           `json:"streakDays"`
	LastActivityDate         *string        `json:"lastActivityDate"`
	Achievements             []string       `json:"achievements"`
	UnlockedCosmetics        []string       `json:"unlockedCosmetics"`
	StatPrestige             map[string]int `json:"statPrestige"`
	ClassID                  *string        `json:"classId"`
	StarterWeapon            *string        `json:"starterWeapon"`
	ActiveBossID             *string        `json:"activeBossId"`
	BossesDefeatedCount      *int           `json:"bossesDefeatedCount"`
	FinalBossesDefeatedCount *int           `json:"finalBossesDefeatedCount"`
	CreatedAt                *time.Time     `json:"createdAt"`
}

func decodeV1(data []byte) (*characterV1, error) {
	var v1 characterV1
	if err := json.Unmarshal(data, &v1); err != nil {
		return nil, fmt.Errorf("failed to decode v1 character: %w", err)
	}
	if v1.ID == "" {
		return nil, fmt.Errorf("%w: v1 character has no id", domain.ErrInvalidInput)
	}
	return &v1, nil
}

// migrateV1 maps a legacy document onto the current model.
// Missing stats start at the baseline; unknown stat keys are dropped.
// CompletedQuests did not exist in v1 and starts empty.
func migrateV1(v1 *characterV1) *domain.Character {
	c := &domain.Character{
		ID:                       v1.ID,
		Name:                     v1.Name,
		Username:                 v1.Username,
		TotalXP:                  deref(v1.TotalXP),
		Stats:                    domain.NewStatBlock(domain.BaselineStat),
		StreakDays:               deref(v1.StreakDays),
		Achievements:             v1.Achievements,
		UnlockedCosmetics:        v1.UnlockedCosmetics,
		StatPrestige:             make(map[domain.Stat]int),
		ClassID:                  domain.ClassID(deref(v1.ClassID)),
		StarterWeapon:            deref(v1.StarterWeapon),
		ActiveBossID:             deref(v1.ActiveBossID),
		BossesDefeatedCount:      deref(v1.BossesDefeatedCount),
		FinalBossesDefeatedCount: deref(v1.FinalBossesDefeatedCount),
		CompletedQuests:          []string{},
	}

	for key, value := range v1.Stats {
		if st, err := domain.ParseStat(strings.ToLower(key)); err == nil {
			c.Stats.Set(st, value)
		}
	}
	for key, count := range v1.StatPrestige {
		if st, err := domain.ParseStat(strings.ToLower(key)); err == nil && count > 0 {
			c.StatPrestige[st] = count
		}
	}

	// Legacy clients stored either YYYY-MM-DD or a full timestamp
	if raw := deref(v1.LastActivityDate); raw != "" {
		if len(raw) >= len(domain.DateLayout) {
			if d, err := domain.ParseDate(raw[:len(domain.DateLayout)]); err == nil {
				c.LastActivityDate = d
			}
		}
	}

	if v1.CreatedAt != nil {
		c.CreatedAt = *v1.CreatedAt
		c.UpdatedAt = *v1.CreatedAt
	}
	return c
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
