package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/StudyQuest_Go/internal/event"
	"github.com/osse101/StudyQuest_Go/internal/logger"
)

// StreamedEventTypes are the milestones worth pushing to clients
var StreamedEventTypes = []event.Type{
	event.LevelUp,
	event.StreakExtended,
	event.BossDefeated,
	event.QuestCompleted,
	event.StatPrestiged,
}

type characterRef struct {
	CharacterID string `json:"character_id"`
}

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub) *Subscriber {
	return &Subscriber{hub: hub}
}

// Register subscribes to every streamed event type
func (s *Subscriber) Register(bus event.Bus) {
	for _, t := range StreamedEventTypes {
		bus.Subscribe(t, s.HandleEvent)
	}
	slog.Info(LogMsgSubscriberReady, "types", StreamedEventTypes)
}

// HandleEvent forwards the event payload unchanged. Delivery is best effort,
// so it never reports an error back to the publisher.
func (s *Subscriber) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	ref, err := event.DecodePayload[characterRef](evt.Payload)
	if err != nil || ref.CharacterID == "" {
		log.Debug(LogMsgPayloadNoCharacter, "type", evt.Type)
		return nil
	}

	s.hub.Broadcast(string(evt.Type), ref.CharacterID, evt.Payload)
	log.Debug(LogMsgEventBroadcast, "type", evt.Type, "character_id", ref.CharacterID)
	return nil
}
