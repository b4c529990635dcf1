package worker

import (
	"context"
	"time"

	"github.com/osse101/StudyQuest_Go/internal/leaderboard"
	"github.com/osse101/StudyQuest_Go/internal/logger"
)

// rebuildJob reloads the leaderboard from the character store
type rebuildJob struct {
	board leaderboard.Board
}

func (j rebuildJob) Name() string { return JobNameLeaderboardRebuild }

func (j rebuildJob) Process(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, RebuildTimeout)
	defer cancel()

	start := time.Now()
	if err := j.board.Rebuild(ctx); err != nil {
		return err
	}
	logger.FromContext(ctx).Debug(LogMsgRebuildCompleted, "duration_ms", time.Since(start).Milliseconds())
	return nil
}

// NewLeaderboardWorker rebuilds the leaderboard on start and every interval
// so rankings recover from missed events.
func NewLeaderboardWorker(board leaderboard.Board, interval time.Duration) *PeriodicWorker {
	if interval <= 0 {
		interval = DefaultRebuildInterval
	}
	return NewPeriodicWorker(rebuildJob{board: board}, interval)
}
