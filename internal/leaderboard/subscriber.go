package leaderboard

import (
	"context"

	"github.com/osse101/StudyQuest_Go/internal/domain"
	"github.com/osse101/StudyQuest_Go/internal/event"
	"github.com/osse101/StudyQuest_Go/internal/logger"
)

// Subscriber keeps a Board current from XP-changing events
type Subscriber struct {
	board Board
}

// NewSubscriber creates a subscriber feeding board
func NewSubscriber(board Board) *Subscriber {
	return &Subscriber{board: board}
}

// Register subscribes to every event that changes total XP
func (s *Subscriber) Register(bus event.Bus) {
	for _, t := range event.XPEventTypes {
		bus.Subscribe(t, s.HandleEvent)
	}
}

// HandleEvent records the character carried by an XP event. Failures are
// logged, never returned, so the publisher does not replay the event to
// other subscribers. The periodic rebuild repairs missed entries.
func (s *Subscriber) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)
	payload, err := event.DecodePayload[domain.CharacterXPPayload](evt.Payload)
	if err != nil {
		log.Warn(LogMsgDecodeFailed, "type", evt.Type, "error", err)
		return nil
	}
	if err := s.board.Record(ctx, payload); err != nil {
		log.Warn(LogMsgRecordFailed, "character_id", payload.CharacterID, "type", evt.Type, "error", err)
	}
	return nil
}
