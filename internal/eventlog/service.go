// Package eventlog keeps a queryable history of domain events.
package eventlog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/osse101/StudyQuest_Go/internal/event"
	"github.com/osse101/StudyQuest_Go/internal/logger"
)

// Service handles event logging business logic
type Service interface {
	// Subscribe registers the event logger to listen to all events
	Subscribe(bus event.Bus) error

	// History returns a character's events, newest first. eventType may be empty.
	History(ctx context.Context, characterID, eventType string, limit int) ([]Entry, error)

	// CleanupOldEvents removes events older than retention period
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a new event logging service
func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) Subscribe(bus event.Bus) error {
	for _, eventType := range LoggedEventTypes {
		bus.Subscribe(eventType, s.handleEvent)
	}
	return nil
}

type characterRef struct {
	CharacterID string `json:"character_id"`
}

// handleEvent stores the payload as JSON. Storage failures are logged only:
// a returned error would make the publisher replay the event to every subscriber.
func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(evt.Payload)
	if err != nil {
		log.Warn(LogMsgEncodeFailed, "type", evt.Type, "error", err)
		return nil
	}

	var ref characterRef
	_ = json.Unmarshal(payload, &ref)

	entry := Entry{
		EventType:   string(evt.Type),
		CharacterID: ref.CharacterID,
		Payload:     payload,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.repo.LogEvent(ctx, entry); err != nil {
		log.Error(LogMsgFailedToLogEvent, "error", err, "type", evt.Type)
		return nil
	}

	log.Debug(LogMsgEventLogged, "type", evt.Type, "character_id", ref.CharacterID)
	return nil
}

func (s *service) History(ctx context.Context, characterID, eventType string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	return s.repo.GetEvents(ctx, Filter{CharacterID: characterID, EventType: eventType, Limit: limit})
}

func (s *service) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	cutoff := s.now().UTC().AddDate(0, 0, -retentionDays)
	return s.repo.CleanupOldEvents(ctx, cutoff)
}
