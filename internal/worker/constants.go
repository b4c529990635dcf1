package worker

import "time"

// Log messages for worker lifecycle
const (
	LogMsgWorkerJobFailed        = "Worker job failed"
	LogMsgWorkerShuttingDown     = "Shutting down worker"
	LogMsgWorkerShutdownComplete = "Worker shutdown complete"
	LogMsgWorkerShutdownTimeout  = "Worker shutdown timeout"
)

// Log messages for periodic jobs
const (
	LogMsgJobScheduled     = "Periodic job scheduled"
	LogMsgJobSkipped       = "Periodic job skipped, previous run still queued"
	LogMsgRebuildCompleted = "Leaderboard rebuilt"
)

const (
	// JobNameLeaderboardRebuild identifies rebuild jobs in logs
	JobNameLeaderboardRebuild = "leaderboard_rebuild"

	// DefaultRebuildInterval applies when the configured interval is not positive
	DefaultRebuildInterval = 10 * time.Minute

	// RebuildTimeout bounds a single rebuild
	RebuildTimeout = 30 * time.Second
)
