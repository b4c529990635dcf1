package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/StudyQuest_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Domain event types
const (
	CharacterCreated Type = domain.EventTypeCharacterCreated
	ActivityLogged   Type = domain.EventTypeActivityLogged
	LevelUp          Type = domain.EventTypeLevelUp
	StreakExtended   Type = domain.EventTypeStreakExtended
	BossDefeated     Type = domain.EventTypeBossDefeated
	QuestCompleted   Type = domain.EventTypeQuestCompleted
	StatPrestiged    Type = domain.EventTypeStatPrestiged
)

// XPEventTypes are the events that change a character's total XP
var XPEventTypes = []Type{CharacterCreated, ActivityLogged, LevelUp, BossDefeated, QuestCompleted}

// Type-safe event constructors

// NewCharacterCreatedEvent creates a character created event
func NewCharacterCreatedEvent(c *domain.Character) Event {
	return Event{
		Version:  EventSchemaVersion,
		Type:     CharacterCreated,
		Payload:  domain.XPPayloadOf(c),
		Metadata: nil,
	}
}

// NewActivityLoggedEvent creates an activity logged event from a committed log
func NewActivityLoggedEvent(c *domain.Character, log domain.ActivityLog, stat domain.Stat) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ActivityLogged,
		Payload: domain.ActivityLoggedPayload{
			CharacterXPPayload: domain.XPPayloadOf(c),
			ActivityID:         log.ActivityID,
			Stat:               stat,
			XPEarned:           log.XPEarned,
			Minutes:            log.Minutes,
			Timestamp:          log.LoggedAt.Unix(),
		},
		Metadata: map[string]interface{}{
			"log_id": log.ID,
		},
	}
}

// NewLevelUpEvent creates a level up event
func NewLevelUpEvent(c *domain.Character, oldLevel, newLevel int, source string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    LevelUp,
		Payload: domain.LevelUpPayload{
			CharacterXPPayload: domain.XPPayloadOf(c),
			OldLevel:           oldLevel,
			NewLevel:           newLevel,
			Source:             source,
		},
		Metadata: map[string]interface{}{
			"source": source,
		},
	}
}

// NewStreakExtendedEvent creates a streak extended event
func NewStreakExtendedEvent(characterID string, streakDays int, date domain.Date) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    StreakExtended,
		Payload: domain.StreakExtendedPayload{
			CharacterID: characterID,
			StreakDays:  streakDays,
			Date:        date,
		},
		Metadata: nil,
	}
}

// NewBossDefeatedEvent creates a boss defeated event
func NewBossDefeatedEvent(c *domain.Character, b *domain.UserBoss, lootID string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    BossDefeated,
		Payload: domain.BossDefeatedPayload{
			CharacterXPPayload: domain.XPPayloadOf(c),
			BossID:             b.ID,
			BossName:           b.Name,
			MaxHP:              b.MaxHP,
			XPAwarded:          b.XPReward,
			LootID:             lootID,
			Final:              b.IsFinalBoss(),
		},
		Metadata: nil,
	}
}

// NewQuestCompletedEvent creates a quest completed event
func NewQuestCompletedEvent(c *domain.Character, questID string, xp int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    QuestCompleted,
		Payload: domain.QuestCompletedPayload{
			CharacterXPPayload: domain.XPPayloadOf(c),
			QuestID:            questID,
			XPAwarded:          xp,
		},
		Metadata: nil,
	}
}

// NewStatPrestigedEvent creates a stat prestiged event
func NewStatPrestigedEvent(characterID string, stat domain.Stat, prestige int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    StatPrestiged,
		Payload: domain.StatPrestigedPayload{
			CharacterID: characterID,
			Stat:        stat,
			Prestige:    prestige,
		},
		Metadata: map[string]interface{}{
			"timestamp": time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	// Handlers run synchronously in subscription order
	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
