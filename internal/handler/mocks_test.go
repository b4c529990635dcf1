package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/StudyQuest_Go/internal/domain"
)

// MockProgressionService mocks progression.Service
type MockProgressionService struct {
	mock.Mock
}

func (m *MockProgressionService) CreateCharacter(ctx context.Context, in domain.CreateCharacterInput) (*domain.Character, error) {
	args := m.Called(ctx, in)
	if c := args.Get(0); c != nil {
		return c.(*domain.Character), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProgressionService) ImportCharacter(ctx context.Context, doc []byte) (*domain.Character, error) {
	args := m.Called(ctx, doc)
	if c := args.Get(0); c != nil {
		return c.(*domain.Character), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProgressionService) GetCharacter(ctx context.Context, id string) (*domain.Character, error) {
	args := m.Called(ctx, id)
	if c := args.Get(0); c != nil {
		return c.(*domain.Character), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProgressionService) LogActivity(ctx context.Context, characterID, activityID string, opts domain.LogOptions) (*domain.LogResult, error) {
	args := m.Called(ctx, characterID, activityID, opts)
	if res := args.Get(0); res != nil {
		return res.(*domain.LogResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProgressionService) CompleteSpecialQuest(ctx context.Context, characterID, questID, proof string) (*domain.QuestResult, error) {
	args := m.Called(ctx, characterID, questID, proof)
	if res := args.Get(0); res != nil {
		return res.(*domain.QuestResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProgressionService) PrestigeStat(ctx context.Context, characterID string, stat domain.Stat) (*domain.Character, error) {
	args := m.Called(ctx, characterID, stat)
	if c := args.Get(0); c != nil {
		return c.(*domain.Character), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProgressionService) WeeklyRecap(ctx context.Context, characterID string) (*domain.WeeklyRecap, error) {
	args := m.Called(ctx, characterID)
	if res := args.Get(0); res != nil {
		return res.(*domain.WeeklyRecap), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProgressionService) Quests() []domain.SpecialQuest {
	args := m.Called()
	return args.Get(0).([]domain.SpecialQuest)
}

func (m *MockProgressionService) Invalidate(characterID string) {
	m.Called(characterID)
}

// MockBossService mocks boss.Service
type MockBossService struct {
	mock.Mock
}

func (m *MockBossService) AddUserBoss(ctx context.Context, characterID, name string, hp int, setActive bool) (*domain.UserBoss, error) {
	args := m.Called(ctx, characterID, name, hp, setActive)
	if b := args.Get(0); b != nil {
		return b.(*domain.UserBoss), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBossService) DeleteUserBoss(ctx context.Context, characterID, bossID string) error {
	return m.Called(ctx, characterID, bossID).Error(0)
}

func (m *MockBossService) SetActiveBossID(ctx context.Context, characterID, bossID string) error {
	return m.Called(ctx, characterID, bossID).Error(0)
}

func (m *MockBossService) ListBosses(ctx context.Context, characterID string) ([]domain.UserBoss, error) {
	args := m.Called(ctx, characterID)
	if b := args.Get(0); b != nil {
		return b.([]domain.UserBoss), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockDBPool mocks the readiness pinger
type MockDBPool struct {
	mock.Mock
}

func (m *MockDBPool) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// withURLParams attaches chi route params to a request
func withURLParams(r *http.Request, kv ...string) *http.Request {
	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(kv); i += 2 {
		rctx.URLParams.Add(kv[i], kv[i+1])
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
