package bootstrap

import (
	"log/slog"

	"github.com/osse101/StudyQuest_Go/internal/config"
	"github.com/osse101/StudyQuest_Go/internal/eventlog"
	"github.com/osse101/StudyQuest_Go/internal/leaderboard"
	"github.com/osse101/StudyQuest_Go/internal/worker"
)

// StartWorkers starts the leaderboard rebuild and, unless retention is
// disabled, the event log cleanup. The returned workers need Shutdown.
func StartWorkers(cfg *config.Config, board leaderboard.Board, history eventlog.Service) []*worker.PeriodicWorker {
	workers := []*worker.PeriodicWorker{
		worker.NewLeaderboardWorker(board, cfg.LeaderboardRebuildInterval),
	}

	if cfg.EventLogRetentionDays > 0 {
		interval := cfg.EventLogCleanupInterval
		if interval <= 0 {
			interval = DefaultEventLogCleanupInterval
		}
		job := eventlog.NewCleanupJob(history, cfg.EventLogRetentionDays)
		workers = append(workers, worker.NewPeriodicWorker(job, interval))
	} else {
		slog.Info(LogMsgEventLogCleanupDisabled)
	}

	for _, w := range workers {
		w.Start()
	}
	return workers
}
