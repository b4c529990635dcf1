package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/StudyQuest_Go/internal/event"
	"github.com/osse101/StudyQuest_Go/internal/eventlog"
	"github.com/osse101/StudyQuest_Go/internal/leaderboard"
	"github.com/osse101/StudyQuest_Go/internal/metrics"
	"github.com/osse101/StudyQuest_Go/internal/sse"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus    event.Bus
	Leaderboard leaderboard.Board
	EventLog    eventlog.Service // optional
	Hub         *sse.Hub         // optional
}

// RegisterEventHandlers subscribes the metrics collector, the leaderboard, the
// event history and the event stream to the domain events published after
// each character transaction.
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	leaderboard.NewSubscriber(deps.Leaderboard).Register(deps.EventBus)
	slog.Info(LogMsgLeaderboardSubscribed)

	if deps.EventLog != nil {
		if err := deps.EventLog.Subscribe(deps.EventBus); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedSubscribeEventLog, err)
		}
		slog.Info(LogMsgEventLogSubscribed)
	}

	if deps.Hub != nil {
		sse.NewSubscriber(deps.Hub).Register(deps.EventBus)
	}

	return nil
}
