package achievement

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/StudyQuest_Go/internal/domain"
)

func TestNames(t *testing.T) {
	assert.Equal(t, "Reached Level 4", ReachedLevel(4))
	assert.Equal(t, "Defeated Calculus Boss (+150 XP)", BossDefeated("Calculus", 150))
	assert.Equal(t, "Looted: 🦉 Study Owl", Looted("🦉", "Study Owl"))
	assert.Equal(t, "Quest Complete: Ace the Midterm", QuestComplete("Ace the Midterm"))
	assert.Equal(t, "Knowledge Prestige 2", Prestige(domain.StatKnowledge, 2))
}

func TestGrant_Idempotent(t *testing.T) {
	c := &domain.Character{}

	granted := Grant(c, nil, FirstQuest)
	granted = Grant(c, granted, FirstQuest)

	assert.Equal(t, []string{FirstQuest}, granted)
	assert.Equal(t, []string{FirstQuest}, c.Achievements)
}

func TestGrantXP_LevelAchievements(t *testing.T) {
	c := &domain.Character{Level: 1, TotalXP: 90}

	granted := GrantXP(c, 720, nil)

	assert.Equal(t, int64(810), c.TotalXP)
	assert.Equal(t, 4, c.Level)
	assert.Equal(t, []string{"Reached Level 2", "Reached Level 3", "Reached Level 4"}, granted)
}

func TestGrantXP_NoLevelChange(t *testing.T) {
	c := &domain.Character{Level: 1, TotalXP: 10}

	granted := GrantXP(c, 5, nil)

	assert.Equal(t, int64(15), c.TotalXP)
	assert.Equal(t, 1, c.Level)
	assert.Empty(t, granted)
}

func TestGrantXP_IgnoresNonPositive(t *testing.T) {
	c := &domain.Character{Level: 2, TotalXP: 120}

	assert.Empty(t, GrantXP(c, 0, nil))
	assert.Empty(t, GrantXP(c, -50, nil))
	assert.Equal(t, int64(120), c.TotalXP)
}

func TestGrantStreak(t *testing.T) {
	tests := []struct {
		days     int
		expected []string
	}{
		{6, nil},
		{7, []string{Streak7}},
		{29, []string{Streak7}},
		{30, []string{Streak7, Streak30}},
	}

	for _, tt := range tests {
		c := &domain.Character{}
		assert.Equal(t, tt.expected, GrantStreak(c, tt.days, nil), "days: %d", tt.days)
	}
}
