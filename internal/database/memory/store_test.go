package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/StudyQuest_Go/internal/domain"
	"github.com/osse101/StudyQuest_Go/internal/repository"
)

func newCharacter(username string) *domain.Character {
	return &domain.Character{
		ID:                uuid.NewString(),
		Name:              "Hero",
		Username:          username,
		Level:             1,
		Stats:             domain.NewStatBlock(domain.BaselineStat),
		Achievements:      []string{},
		UnlockedCosmetics: []string{},
		CompletedQuests:   []string{},
		StatPrestige:      map[domain.Stat]int{},
		CreatedAt:         time.Now().UTC(),
	}
}

func TestStore_CreateAndGet(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	c := newCharacter("Alice")
	require.NoError(t, s.CreateCharacter(ctx, c))

	got, err := s.GetCharacter(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Username)

	// Reads are copies
	got.Stats.Focus = 99
	again, err := s.GetCharacter(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BaselineStat, again.Stats.Focus)

	byName, err := s.GetCharacterByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, c.ID, byName.ID)

	_, err = s.GetCharacter(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrCharacterNotFound)
}

func TestStore_UsernameUniqueCaseInsensitive(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	require.NoError(t, s.CreateCharacter(ctx, newCharacter("Bob")))
	err := s.CreateCharacter(ctx, newCharacter("BOB"))
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestStore_TxBuffersUntilCommit(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	c := newCharacter("carol")
	require.NoError(t, s.CreateCharacter(ctx, c))

	tx, err := s.BeginCharacterTx(ctx, c.ID)
	require.NoError(t, err)

	locked, err := tx.GetCharacter(ctx)
	require.NoError(t, err)
	locked.TotalXP = 120
	require.NoError(t, tx.UpdateCharacter(ctx, locked))
	require.NoError(t, tx.AppendActivityLog(ctx, &domain.ActivityLog{
		ID: uuid.NewString(), CharacterID: c.ID, ActivityID: "study", LocalDate: "2024-05-01", XPEarned: 120,
	}))
	require.NoError(t, tx.InsertBoss(ctx, &domain.UserBoss{ID: "b1", Name: "Essay", MaxHP: 250, CurrentHP: 250}))

	// Uncommitted writes are visible inside the tx only
	sum, err := tx.SumXPForDate(ctx, "2024-05-01")
	require.NoError(t, err)
	assert.Equal(t, 120, sum)
	live, err := tx.ListLiveBosses(ctx)
	require.NoError(t, err)
	assert.Len(t, live, 1)

	outside, err := s.GetCharacter(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), outside.TotalXP)
	bosses, err := s.ListBosses(ctx, c.ID)
	require.NoError(t, err)
	assert.Empty(t, bosses)

	require.NoError(t, tx.Commit(ctx))

	committed, err := s.GetCharacter(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(120), committed.TotalXP)
	assert.Equal(t, 2, committed.Level)

	logs, err := s.ListActivityLogs(ctx, c.ID, "2024-04-25", "2024-05-01")
	require.NoError(t, err)
	assert.Len(t, logs, 1)

	bosses, err = s.ListBosses(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, bosses, 1)
	assert.Equal(t, c.ID, bosses[0].OwnerID)
}

func TestStore_RollbackDiscards(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	c := newCharacter("dave")
	require.NoError(t, s.CreateCharacter(ctx, c))

	tx, err := s.BeginCharacterTx(ctx, c.ID)
	require.NoError(t, err)
	locked, err := tx.GetCharacter(ctx)
	require.NoError(t, err)
	locked.StreakDays = 9
	require.NoError(t, tx.UpdateCharacter(ctx, locked))
	require.NoError(t, tx.Rollback(ctx))

	got, err := s.GetCharacter(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.StreakDays)

	assert.EqualError(t, tx.Rollback(ctx), domain.ErrMsgTxClosed)
	assert.EqualError(t, tx.Commit(ctx), domain.ErrMsgTxClosed)

	// SafeRollback after commit stays quiet and the lock is free again
	tx2, err := s.BeginCharacterTx(ctx, c.ID)
	require.NoError(t, err)
	require.NoError(t, tx2.Commit(ctx))
	repository.SafeRollback(ctx, tx2)
}

func TestStore_BeginUnknownCharacter(t *testing.T) {
	s := NewStore()
	_, err := s.BeginCharacterTx(context.Background(), "nobody")
	assert.ErrorIs(t, err, domain.ErrCharacterNotFound)
}

func TestStore_TxLockIsExclusive(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	c := newCharacter("erin")
	require.NoError(t, s.CreateCharacter(ctx, c))

	first, err := s.BeginCharacterTx(ctx, c.ID)
	require.NoError(t, err)

	waitCtx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()
	_, err = s.BeginCharacterTx(waitCtx, c.ID)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	require.NoError(t, first.Rollback(ctx))
	second, err := s.BeginCharacterTx(ctx, c.ID)
	require.NoError(t, err)
	require.NoError(t, second.Rollback(ctx))
}

func TestStore_ConcurrentIncrementsAreSerialized(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	c := newCharacter("frank")
	require.NoError(t, s.CreateCharacter(ctx, c))

	const writers = 25
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tx, err := s.BeginCharacterTx(ctx, c.ID)
			if !assert.NoError(t, err) {
				return
			}
			defer repository.SafeRollback(ctx, tx)
			locked, err := tx.GetCharacter(ctx)
			if !assert.NoError(t, err) {
				return
			}
			locked.TotalXP += 10
			assert.NoError(t, tx.UpdateCharacter(ctx, locked))
			assert.NoError(t, tx.Commit(ctx))
		}()
	}
	wg.Wait()

	got, err := s.GetCharacter(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(writers*10), got.TotalXP)
}

func TestStore_RemovedBossesLeaveRoster(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	c := newCharacter("gina")
	require.NoError(t, s.CreateCharacter(ctx, c))

	tx, err := s.BeginCharacterTx(ctx, c.ID)
	require.NoError(t, err)
	require.NoError(t, tx.InsertBoss(ctx, &domain.UserBoss{ID: "a", Name: "A", MaxHP: 250, CurrentHP: 250}))
	require.NoError(t, tx.InsertBoss(ctx, &domain.UserBoss{ID: "b", Name: "B", MaxHP: 300, CurrentHP: 300}))
	require.NoError(t, tx.Commit(ctx))

	tx, err = s.BeginCharacterTx(ctx, c.ID)
	require.NoError(t, err)
	b, err := tx.GetBoss(ctx, "a")
	require.NoError(t, err)
	b.Removed = true
	require.NoError(t, tx.UpdateBoss(ctx, b))
	require.NoError(t, tx.Commit(ctx))

	bosses, err := s.ListBosses(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, bosses, 1)
	assert.Equal(t, "b", bosses[0].ID)
}

func TestStore_TopCharacters(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	low := newCharacter("low")
	low.TotalXP = 50
	high := newCharacter("high")
	high.TotalXP = 5000
	mid := newCharacter("mid")
	mid.TotalXP = 700
	for _, c := range []*domain.Character{low, high, mid} {
		require.NoError(t, s.CreateCharacter(ctx, c))
	}

	top, err := s.TopCharacters(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "high", top[0].Username)
	assert.Equal(t, "mid", top[1].Username)
}
