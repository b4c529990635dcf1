package eventlog

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/StudyQuest_Go/internal/domain"
	"github.com/osse101/StudyQuest_Go/internal/event"
)

// MockEventBus is a mock implementation of event.Bus
type MockEventBus struct {
	mock.Mock
}

func (m *MockEventBus) Publish(ctx context.Context, evt event.Event) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

func (m *MockEventBus) Subscribe(eventType event.Type, handler event.Handler) {
	m.Called(eventType, handler)
}

func fixedNow() time.Time {
	return time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
}

func newTestService(repo Repository) *service {
	svc := NewService(repo).(*service)
	svc.now = fixedNow
	return svc
}

func TestService_Subscribe(t *testing.T) {
	mockBus := new(MockEventBus)
	for _, et := range LoggedEventTypes {
		mockBus.On("Subscribe", et, mock.Anything).Return()
	}

	require.NoError(t, NewService(new(MockRepository)).Subscribe(mockBus))
	mockBus.AssertExpectations(t)
}

func TestService_HandleEvent(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := newTestService(mockRepo)
	ctx := context.Background()

	c := &domain.Character{ID: "c1", Username: "ada", TotalXP: 300, Level: 2}
	evt := event.NewQuestCompletedEvent(c, "ace-midterm", 250)

	mockRepo.On("LogEvent", ctx, mock.MatchedBy(func(e Entry) bool {
		var p domain.QuestCompletedPayload
		return json.Unmarshal(e.Payload, &p) == nil &&
			e.EventType == string(event.QuestCompleted) &&
			e.CharacterID == "c1" &&
			e.CreatedAt.Equal(fixedNow()) &&
			p.QuestID == "ace-midterm"
	})).Return(nil)

	require.NoError(t, svc.handleEvent(ctx, evt))
	mockRepo.AssertExpectations(t)
}

func TestService_HandleEvent_SwallowsStoreErrors(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := newTestService(mockRepo)
	mockRepo.On("LogEvent", mock.Anything, mock.Anything).Return(assert.AnError)

	assert.NoError(t, svc.handleEvent(context.Background(), event.NewStatPrestigedEvent("c1", domain.StatFocus, 1)))
	mockRepo.AssertExpectations(t)
}

func TestService_HandleEvent_UnencodablePayload(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := newTestService(mockRepo)

	assert.NoError(t, svc.handleEvent(context.Background(), event.Event{Type: event.LevelUp, Payload: make(chan int)}))
	mockRepo.AssertNotCalled(t, "LogEvent", mock.Anything, mock.Anything)
}

func TestService_HistoryClampsLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"default", 0, DefaultHistoryLimit},
		{"explicit", 5, 5},
		{"clamped", 10_000, MaxHistoryLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			mockRepo.On("GetEvents", mock.Anything, Filter{CharacterID: "c1", Limit: tt.want}).Return([]Entry{}, nil)

			_, err := NewService(mockRepo).History(context.Background(), "c1", "", tt.limit)
			require.NoError(t, err)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestService_CleanupOldEvents(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := newTestService(mockRepo)
	ctx := context.Background()

	mockRepo.On("CleanupOldEvents", ctx, fixedNow().AddDate(0, 0, -10)).Return(int64(5), nil)

	count, err := svc.CleanupOldEvents(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)
	mockRepo.AssertExpectations(t)
}

func TestService_WithMemoryRepository(t *testing.T) {
	repo := NewMemoryRepository()
	bus := event.NewMemoryBus()
	svc := NewService(repo)
	require.NoError(t, svc.Subscribe(bus))
	ctx := context.Background()

	ada := &domain.Character{ID: "c1", Username: "ada"}
	bob := &domain.Character{ID: "c2", Username: "bob"}
	require.NoError(t, bus.Publish(ctx, event.NewCharacterCreatedEvent(ada)))
	require.NoError(t, bus.Publish(ctx, event.NewCharacterCreatedEvent(bob)))
	require.NoError(t, bus.Publish(ctx, event.NewLevelUpEvent(ada, 1, 2, "activity")))

	history, err := svc.History(ctx, "c1", "", 0)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, string(event.LevelUp), history[0].EventType)
	assert.Equal(t, string(event.CharacterCreated), history[1].EventType)
	assert.Greater(t, history[0].ID, history[1].ID)

	levels, err := svc.History(ctx, "c1", string(event.LevelUp), 0)
	require.NoError(t, err)
	assert.Len(t, levels, 1)
}
