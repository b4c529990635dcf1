package worker

import (
	"context"
	"time"

	"github.com/osse101/StudyQuest_Go/internal/logger"
	"github.com/osse101/StudyQuest_Go/internal/metrics"
)

// PeriodicWorker runs one job immediately on Start and again on every tick.
// The single-slot pool makes a tick that finds the previous run still queued skip.
type PeriodicWorker struct {
	BaseWorker
	job      Job
	pool     *Pool
	interval time.Duration
}

// NewPeriodicWorker creates a worker for job; interval must be positive
func NewPeriodicWorker(job Job, interval time.Duration) *PeriodicWorker {
	w := &PeriodicWorker{
		job:      job,
		pool:     NewPool(1, 1),
		interval: interval,
	}
	w.init()
	return w
}

// Name returns the name of the scheduled job
func (w *PeriodicWorker) Name() string {
	return w.job.Name()
}

// Start queues the first run and starts the ticker
func (w *PeriodicWorker) Start() {
	w.pool.Start()
	w.trigger()

	logger.FromContext(context.Background()).Info(LogMsgJobScheduled, "job", w.job.Name(), "interval", w.interval.String())

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				w.trigger()
			case <-w.shutdown:
				return
			}
		}
	}()
}

func (w *PeriodicWorker) trigger() {
	if w.stopping() {
		return
	}
	if !w.pool.TryEnqueue(w.job) {
		metrics.WorkerJobRuns.WithLabelValues(w.job.Name(), metrics.JobStatusSkipped).Inc()
		logger.FromContext(context.Background()).Warn(LogMsgJobSkipped, "job", w.job.Name())
	}
}

// Shutdown stops the ticker, then cancels and drains the pool
func (w *PeriodicWorker) Shutdown(ctx context.Context) error {
	err := w.shutdownInternal(ctx, w.job.Name())
	w.pool.Stop()
	return err
}
