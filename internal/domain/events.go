package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking. These represent domain events that are published after
// a character transaction commits.
//
// Event types follow the pattern: <entity>.<action> (e.g., "activity.logged")
const (
	// EventTypeCharacterCreated is published when a new character is created
	EventTypeCharacterCreated = "character.created"

	// EventTypeActivityLogged is published after every successful activity log
	EventTypeActivityLogged = "activity.logged"

	// EventTypeLevelUp is published when a character's level increases
	EventTypeLevelUp = "character.level_up"

	// EventTypeStreakExtended is published when a log extends or starts a streak
	EventTypeStreakExtended = "streak.extended"

	// EventTypeBossDefeated is published when an active boss reaches 0 HP
	EventTypeBossDefeated = "boss.defeated"

	// EventTypeQuestCompleted is published when a special quest is claimed
	EventTypeQuestCompleted = "quest.completed"

	// EventTypeStatPrestiged is published when a maxed stat is reset for prestige
	EventTypeStatPrestiged = "stat.prestiged"
)
