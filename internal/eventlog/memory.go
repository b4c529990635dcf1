package eventlog

import (
	"context"
	"slices"
	"sync"
	"time"
)

// MemoryRepository keeps the event log in process for STORE_BACKEND=memory
type MemoryRepository struct {
	mu      sync.RWMutex
	entries []Entry
	nextID  int64
}

// NewMemoryRepository creates an empty log
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{nextID: 1}
}

func (r *MemoryRepository) LogEvent(_ context.Context, entry Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry.ID = r.nextID
	entry.Payload = slices.Clone(entry.Payload)
	r.nextID++
	r.entries = append(r.entries, entry)
	return nil
}

func (r *MemoryRepository) GetEvents(_ context.Context, filter Filter) ([]Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Entry
	for i := len(r.entries) - 1; i >= 0; i-- {
		e := r.entries[i]
		if filter.CharacterID != "" && e.CharacterID != filter.CharacterID {
			continue
		}
		if filter.EventType != "" && e.EventType != filter.EventType {
			continue
		}
		e.Payload = slices.Clone(e.Payload)
		out = append(out, e)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

func (r *MemoryRepository) CleanupOldEvents(_ context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	before := len(r.entries)
	r.entries = slices.DeleteFunc(r.entries, func(e Entry) bool {
		return e.CreatedAt.Before(cutoff)
	})
	return int64(before - len(r.entries)), nil
}
