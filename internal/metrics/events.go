package metrics

import (
	"context"
	"strconv"

	"github.com/osse101/StudyQuest_Go/internal/domain"
	"github.com/osse101/StudyQuest_Go/internal/event"
	"github.com/osse101/StudyQuest_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.CharacterCreated,
		event.ActivityLogged,
		event.LevelUp,
		event.StreakExtended,
		event.BossDefeated,
		event.QuestCompleted,
		event.StatPrestiged,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.CharacterCreated:
		CharactersCreated.Inc()

	case event.ActivityLogged:
		var p domain.ActivityLoggedPayload
		if p, err = event.DecodePayload[domain.ActivityLoggedPayload](evt.Payload); err == nil {
			ActivitiesLogged.WithLabelValues(p.ActivityID, string(p.Stat)).Inc()
			XPAwarded.WithLabelValues(SourceActivity).Add(float64(p.XPEarned))
		}

	case event.LevelUp:
		var p domain.LevelUpPayload
		if p, err = event.DecodePayload[domain.LevelUpPayload](evt.Payload); err == nil {
			LevelUps.WithLabelValues(p.Source).Add(float64(p.NewLevel - p.OldLevel))
		}

	case event.StreakExtended:
		StreaksExtended.Inc()

	case event.BossDefeated:
		var p domain.BossDefeatedPayload
		if p, err = event.DecodePayload[domain.BossDefeatedPayload](evt.Payload); err == nil {
			BossesDefeated.WithLabelValues(strconv.FormatBool(p.Final)).Inc()
			XPAwarded.WithLabelValues(SourceBoss).Add(float64(p.XPAwarded))
		}

	case event.QuestCompleted:
		var p domain.QuestCompletedPayload
		if p, err = event.DecodePayload[domain.QuestCompletedPayload](evt.Payload); err == nil {
			QuestsCompleted.WithLabelValues(p.QuestID).Inc()
			XPAwarded.WithLabelValues(SourceQuest).Add(float64(p.XPAwarded))
		}

	case event.StatPrestiged:
		var p domain.StatPrestigedPayload
		if p, err = event.DecodePayload[domain.StatPrestigedPayload](evt.Payload); err == nil {
			StatPrestiges.WithLabelValues(string(p.Stat)).Inc()
		}
	}

	if err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgEventPayloadInvalid, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
