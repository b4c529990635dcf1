package eventlog

import (
	"context"
	"encoding/json"
	"time"
)

// Entry is one persisted domain event
type Entry struct {
	ID          int64           `json:"id"`
	EventType   string          `json:"event_type"`
	CharacterID string          `json:"character_id,omitempty"`
	Payload     json.RawMessage `json:"payload"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Filter narrows a history query. Empty fields match everything.
type Filter struct {
	CharacterID string
	EventType   string
	Limit       int
}

// Repository defines the interface for event logging storage
type Repository interface {
	// LogEvent stores an entry; the store assigns the ID
	LogEvent(ctx context.Context, entry Entry) error

	// GetEvents returns matching entries, newest first
	GetEvents(ctx context.Context, filter Filter) ([]Entry, error)

	// CleanupOldEvents removes entries created before cutoff
	CleanupOldEvents(ctx context.Context, cutoff time.Time) (int64, error)
}
