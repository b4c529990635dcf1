package worker

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/StudyQuest_Go/internal/logger"
	"github.com/osse101/StudyQuest_Go/internal/metrics"
)

// Job represents a task to be executed by a worker
type Job interface {
	Name() string
	Process(ctx context.Context) error
}

// Pool runs jobs on a fixed number of goroutines
type Pool struct {
	workers  int
	jobQueue chan Job
	wg       sync.WaitGroup
	quit     chan struct{}
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		workers:  workers,
		jobQueue: make(chan Job, queueSize),
		quit:     make(chan struct{}),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start starts the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobQueue:
			p.run(job)
		case <-p.quit:
			return
		}
	}
}

// run processes one job and records its outcome
func (p *Pool) run(job Job) {
	start := time.Now()
	err := job.Process(p.ctx)
	metrics.WorkerJobDuration.WithLabelValues(job.Name()).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.WorkerJobRuns.WithLabelValues(job.Name(), metrics.JobStatusError).Inc()
		logger.FromContext(p.ctx).Error(LogMsgWorkerJobFailed, "job", job.Name(), "error", err)
		return
	}
	metrics.WorkerJobRuns.WithLabelValues(job.Name(), metrics.JobStatusOK).Inc()
}

// Enqueue blocks until the job is queued
func (p *Pool) Enqueue(job Job) {
	p.jobQueue <- job
}

// TryEnqueue queues the job unless the queue is full
func (p *Pool) TryEnqueue(job Job) bool {
	select {
	case p.jobQueue <- job:
		return true
	default:
		return false
	}
}

// Stop cancels running jobs and waits for the workers to exit.
// Jobs still queued are dropped.
func (p *Pool) Stop() {
	close(p.quit)
	p.cancel()
	p.wg.Wait()
}
