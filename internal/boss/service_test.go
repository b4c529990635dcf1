package boss

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/StudyQuest_Go/internal/domain"
	"github.com/osse101/StudyQuest_Go/internal/repository"
)

// MockRepository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateCharacter(ctx context.Context, c *domain.Character) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockRepository) GetCharacter(ctx context.Context, id string) (*domain.Character, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Character), args.Error(1)
}

func (m *MockRepository) GetCharacterByUsername(ctx context.Context, username string) (*domain.Character, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Character), args.Error(1)
}

func (m *MockRepository) TopCharacters(ctx context.Context, limit int) ([]domain.Character, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Character), args.Error(1)
}

func (m *MockRepository) ListBosses(ctx context.Context, characterID string) ([]domain.UserBoss, error) {
	args := m.Called(ctx, characterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserBoss), args.Error(1)
}

func (m *MockRepository) ListActivityLogs(ctx context.Context, characterID string, from, to domain.Date) ([]domain.ActivityLog, error) {
	args := m.Called(ctx, characterID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ActivityLog), args.Error(1)
}

func (m *MockRepository) BeginCharacterTx(ctx context.Context, characterID string) (repository.CharacterTx, error) {
	args := m.Called(ctx, characterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.CharacterTx), args.Error(1)
}

// MockTx
type MockTx struct {
	mock.Mock
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) GetCharacter(ctx context.Context) (*domain.Character, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Character), args.Error(1)
}

func (m *MockTx) UpdateCharacter(ctx context.Context, c *domain.Character) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockTx) AppendActivityLog(ctx context.Context, log *domain.ActivityLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockTx) SumXPForDate(ctx context.Context, date domain.Date) (int, error) {
	args := m.Called(ctx, date)
	return args.Int(0), args.Error(1)
}

func (m *MockTx) GetBoss(ctx context.Context, bossID string) (*domain.UserBoss, error) {
	args := m.Called(ctx, bossID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserBoss), args.Error(1)
}

func (m *MockTx) ListLiveBosses(ctx context.Context) ([]domain.UserBoss, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserBoss), args.Error(1)
}

func (m *MockTx) InsertBoss(ctx context.Context, b *domain.UserBoss) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockTx) UpdateBoss(ctx context.Context, b *domain.UserBoss) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

// MockCache
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Invalidate(characterID string) {
	m.Called(characterID)
}

func setupService() (*service, *MockRepository, *MockTx, *MockCache) {
	repo := new(MockRepository)
	tx := new(MockTx)
	cache := new(MockCache)
	svc := NewService(repo, NewResolver(rand.New(rand.NewSource(5))), cache).(*service)
	tx.On("Rollback", mock.Anything).Return(nil).Maybe()
	return svc, repo, tx, cache
}

func liveRoster(n int) []domain.UserBoss {
	out := make([]domain.UserBoss, n)
	for i := range out {
		out[i] = domain.UserBoss{ID: string(rune('a' + i)), OwnerID: "char-1", MaxHP: 250, CurrentHP: 250}
	}
	return out
}

func TestAddUserBoss_Success(t *testing.T) {
	ctx := context.Background()
	svc, repo, tx, cache := setupService()
	c := newCharacter()
	c.ActiveBossID = ""

	repo.On("BeginCharacterTx", ctx, "char-1").Return(tx, nil)
	tx.On("GetCharacter", ctx).Return(c, nil)
	tx.On("ListLiveBosses", ctx).Return(liveRoster(3), nil)
	tx.On("InsertBoss", ctx, mock.AnythingOfType("*domain.UserBoss")).Return(nil)
	tx.On("UpdateCharacter", ctx, c).Return(nil)
	tx.On("Commit", ctx).Return(nil)
	cache.On("Invalidate", "char-1").Return()

	b, err := svc.AddUserBoss(ctx, "char-1", "  Organic Chemistry ", 400, true)

	require.NoError(t, err)
	assert.Equal(t, "Organic Chemistry", b.Name)
	assert.Equal(t, 400, b.MaxHP)
	assert.Equal(t, 400, b.CurrentHP)
	assert.Equal(t, 175, b.XPReward)
	assert.Contains(t, domain.AllStats, b.WeaknessStat)
	assert.NotEmpty(t, b.ID)
	assert.Equal(t, b.ID, c.ActiveBossID)
	repo.AssertExpectations(t)
	tx.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestAddUserBoss_RaisesHPToMinimum(t *testing.T) {
	ctx := context.Background()
	svc, repo, tx, cache := setupService()

	repo.On("BeginCharacterTx", ctx, "char-1").Return(tx, nil)
	tx.On("GetCharacter", ctx).Return(newCharacter(), nil)
	tx.On("ListLiveBosses", ctx).Return([]domain.UserBoss{}, nil)
	tx.On("InsertBoss", ctx, mock.AnythingOfType("*domain.UserBoss")).Return(nil)
	tx.On("Commit", ctx).Return(nil)
	cache.On("Invalidate", "char-1").Return()

	b, err := svc.AddUserBoss(ctx, "char-1", "Quiz", 10, false)

	require.NoError(t, err)
	assert.Equal(t, domain.MinBossHP, b.MaxHP)
	assert.Equal(t, 100, b.XPReward)
	tx.AssertNotCalled(t, "UpdateCharacter", mock.Anything, mock.Anything)
}

func TestAddUserBoss_AtCapacity(t *testing.T) {
	ctx := context.Background()
	svc, repo, tx, cache := setupService()

	repo.On("BeginCharacterTx", ctx, "char-1").Return(tx, nil)
	tx.On("GetCharacter", ctx).Return(newCharacter(), nil)
	tx.On("ListLiveBosses", ctx).Return(liveRoster(domain.MaxUserBosses), nil)

	b, err := svc.AddUserBoss(ctx, "char-1", "Fifth", 300, true)

	assert.Nil(t, b)
	assert.True(t, errors.Is(err, domain.ErrBossCapacity))
	tx.AssertNotCalled(t, "InsertBoss", mock.Anything, mock.Anything)
	tx.AssertNotCalled(t, "Commit", mock.Anything)
	tx.AssertCalled(t, "Rollback", mock.Anything)
	cache.AssertNotCalled(t, "Invalidate", mock.Anything)
}

func TestAddUserBoss_InvalidName(t *testing.T) {
	svc, repo, _, _ := setupService()

	_, err := svc.AddUserBoss(context.Background(), "char-1", "   ", 300, false)

	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	repo.AssertNotCalled(t, "BeginCharacterTx", mock.Anything, mock.Anything)
}

func TestAddUserBoss_CharacterNotFound(t *testing.T) {
	ctx := context.Background()
	svc, repo, _, _ := setupService()
	repo.On("BeginCharacterTx", ctx, "ghost").Return(nil, domain.ErrCharacterNotFound)

	_, err := svc.AddUserBoss(ctx, "ghost", "Boss", 300, false)

	assert.True(t, errors.Is(err, domain.ErrCharacterNotFound))
}

func TestDeleteUserBoss_ClearsActivePointer(t *testing.T) {
	ctx := context.Background()
	svc, repo, tx, cache := setupService()
	c := newCharacter()
	b := newBoss(300, domain.StatFocus)

	repo.On("BeginCharacterTx", ctx, "char-1").Return(tx, nil)
	tx.On("GetCharacter", ctx).Return(c, nil)
	tx.On("GetBoss", ctx, "boss-1").Return(b, nil)
	tx.On("UpdateBoss", ctx, b).Return(nil)
	tx.On("UpdateCharacter", ctx, c).Return(nil)
	tx.On("Commit", ctx).Return(nil)
	cache.On("Invalidate", "char-1").Return()

	err := svc.DeleteUserBoss(ctx, "char-1", "boss-1")

	require.NoError(t, err)
	assert.True(t, b.Removed)
	assert.False(t, b.Defeated, "deleting grants nothing")
	assert.Empty(t, c.ActiveBossID)
	assert.Equal(t, int64(0), c.TotalXP)
	tx.AssertExpectations(t)
}

func TestDeleteUserBoss_KeepsOtherActivePointer(t *testing.T) {
	ctx := context.Background()
	svc, repo, tx, cache := setupService()
	c := newCharacter()
	c.ActiveBossID = "boss-2"
	b := newBoss(300, domain.StatFocus)

	repo.On("BeginCharacterTx", ctx, "char-1").Return(tx, nil)
	tx.On("GetCharacter", ctx).Return(c, nil)
	tx.On("GetBoss", ctx, "boss-1").Return(b, nil)
	tx.On("UpdateBoss", ctx, b).Return(nil)
	tx.On("Commit", ctx).Return(nil)
	cache.On("Invalidate", "char-1").Return()

	require.NoError(t, svc.DeleteUserBoss(ctx, "char-1", "boss-1"))
	assert.Equal(t, "boss-2", c.ActiveBossID)
	tx.AssertNotCalled(t, "UpdateCharacter", mock.Anything, mock.Anything)
}

func TestDeleteUserBoss_OtherOwner(t *testing.T) {
	ctx := context.Background()
	svc, repo, tx, _ := setupService()
	b := newBoss(300, domain.StatFocus)
	b.OwnerID = "someone-else"

	repo.On("BeginCharacterTx", ctx, "char-1").Return(tx, nil)
	tx.On("GetCharacter", ctx).Return(newCharacter(), nil)
	tx.On("GetBoss", ctx, "boss-1").Return(b, nil)

	err := svc.DeleteUserBoss(ctx, "char-1", "boss-1")

	assert.True(t, errors.Is(err, domain.ErrBossNotFound))
	assert.False(t, b.Removed)
}

func TestSetActiveBossID(t *testing.T) {
	ctx := context.Background()

	t.Run("targets a live boss", func(t *testing.T) {
		svc, repo, tx, cache := setupService()
		c := newCharacter()
		c.ActiveBossID = ""
		repo.On("BeginCharacterTx", ctx, "char-1").Return(tx, nil)
		tx.On("GetCharacter", ctx).Return(c, nil)
		tx.On("GetBoss", ctx, "boss-1").Return(newBoss(300, domain.StatFocus), nil)
		tx.On("UpdateCharacter", ctx, c).Return(nil)
		tx.On("Commit", ctx).Return(nil)
		cache.On("Invalidate", "char-1").Return()

		require.NoError(t, svc.SetActiveBossID(ctx, "char-1", "boss-1"))
		assert.Equal(t, "boss-1", c.ActiveBossID)
	})

	t.Run("clears the target", func(t *testing.T) {
		svc, repo, tx, cache := setupService()
		c := newCharacter()
		repo.On("BeginCharacterTx", ctx, "char-1").Return(tx, nil)
		tx.On("GetCharacter", ctx).Return(c, nil)
		tx.On("UpdateCharacter", ctx, c).Return(nil)
		tx.On("Commit", ctx).Return(nil)
		cache.On("Invalidate", "char-1").Return()

		require.NoError(t, svc.SetActiveBossID(ctx, "char-1", ""))
		assert.Empty(t, c.ActiveBossID)
		tx.AssertNotCalled(t, "GetBoss", mock.Anything, mock.Anything)
	})

	t.Run("rejects a defeated boss", func(t *testing.T) {
		svc, repo, tx, _ := setupService()
		b := newBoss(300, domain.StatFocus)
		b.Defeated = true
		b.Removed = true
		repo.On("BeginCharacterTx", ctx, "char-1").Return(tx, nil)
		tx.On("GetCharacter", ctx).Return(newCharacter(), nil)
		tx.On("GetBoss", ctx, "boss-1").Return(b, nil)

		err := svc.SetActiveBossID(ctx, "char-1", "boss-1")
		assert.True(t, errors.Is(err, domain.ErrBossNotFound))
		tx.AssertNotCalled(t, "Commit", mock.Anything)
	})
}

func TestListBosses(t *testing.T) {
	ctx := context.Background()
	svc, repo, _, _ := setupService()
	repo.On("GetCharacter", ctx, "char-1").Return(newCharacter(), nil)
	repo.On("ListBosses", ctx, "char-1").Return(liveRoster(2), nil)

	bosses, err := svc.ListBosses(ctx, "char-1")

	require.NoError(t, err)
	assert.Len(t, bosses, 2)
}
