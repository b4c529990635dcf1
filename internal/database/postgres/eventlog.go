package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/StudyQuest_Go/internal/eventlog"
)

// EventLogRepository implements eventlog.Repository for PostgreSQL
type EventLogRepository struct {
	db *pgxpool.Pool
}

// NewEventLogRepository creates a new EventLogRepository
func NewEventLogRepository(db *pgxpool.Pool) *EventLogRepository {
	return &EventLogRepository{db: db}
}

func (r *EventLogRepository) LogEvent(ctx context.Context, entry eventlog.Entry) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO event_log (event_type, character_id, payload, created_at)
		VALUES ($1, $2, $3, $4)`,
		entry.EventType, entry.CharacterID, []byte(entry.Payload), entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertEvent, err)
	}
	return nil
}

func (r *EventLogRepository) GetEvents(ctx context.Context, filter eventlog.Filter) ([]eventlog.Entry, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = eventlog.MaxHistoryLimit
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, event_type, character_id, payload, created_at
		FROM event_log
		WHERE ($1::text = '' OR character_id = $1)
		  AND ($2::text = '' OR event_type = $2)
		ORDER BY created_at DESC, id DESC
		LIMIT $3`,
		filter.CharacterID, filter.EventType, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryEvents, err)
	}

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (eventlog.Entry, error) {
		var e eventlog.Entry
		var payload []byte
		if err := row.Scan(&e.ID, &e.EventType, &e.CharacterID, &payload, &e.CreatedAt); err != nil {
			return e, err
		}
		e.Payload = payload
		return e, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanEventRow, err)
	}
	return entries, nil
}

func (r *EventLogRepository) CleanupOldEvents(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM event_log WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCleanupEvents, err)
	}
	return tag.RowsAffected(), nil
}
