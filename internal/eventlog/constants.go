package eventlog

import "github.com/osse101/StudyQuest_Go/internal/event"

// LoggedEventTypes are persisted to the event log
var LoggedEventTypes = []event.Type{
	event.CharacterCreated,
	event.ActivityLogged,
	event.LevelUp,
	event.StreakExtended,
	event.BossDefeated,
	event.QuestCompleted,
	event.StatPrestiged,
}

// History limits
const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 200
)

// JobNameCleanup identifies cleanup runs in worker logs
const JobNameCleanup = "event_log_cleanup"

// Log messages - service events
const (
	LogMsgEncodeFailed     = "Failed to encode event payload, skipping log"
	LogMsgFailedToLogEvent = "Failed to log event to database"
	LogMsgEventLogged      = "Event logged to database"
)

// Log messages - cleanup job
const (
	LogMsgCleanupJobStarting  = "Starting event log cleanup job"
	LogMsgCleanupJobFailed    = "Event log cleanup failed"
	LogMsgCleanupJobCompleted = "Event log cleanup completed"
)
