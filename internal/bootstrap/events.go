package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/StudyQuest_Go/internal/config"
	"github.com/osse101/StudyQuest_Go/internal/event"
)

// InitializeEventSystem creates the event bus and the resilient publisher
// that retries failed deliveries and dead-letters exhausted ones.
func InitializeEventSystem(cfg *config.Config) (event.Bus, *event.ResilientPublisher, error) {
	eventBus := event.NewMemoryBus()

	maxRetries := cfg.EventMaxRetries
	if maxRetries <= 0 {
		maxRetries = config.DefaultEventMaxRetries
	}

	deadLetterPath := cfg.DeadLetterPath
	if deadLetterPath == "" {
		deadLetterPath = config.DefaultDeadLetterPath
	}

	if err := os.MkdirAll(filepath.Dir(deadLetterPath), DirPermission); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateDeadLetterDir, err)
	}

	reportDeadLetterBacklog(deadLetterPath)

	resilientPublisher, err := event.NewResilientPublisher(eventBus, maxRetries, cfg.EventRetryDelay, deadLetterPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateResilientPublisher, err)
	}

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", maxRetries,
		"retry_delay", cfg.EventRetryDelay,
		"deadletter_path", deadLetterPath)

	return eventBus, resilientPublisher, nil
}

// reportDeadLetterBacklog warns about events left undelivered by earlier runs
func reportDeadLetterBacklog(path string) {
	entries, skipped, err := event.ReadDeadLetters(path)
	if err != nil {
		slog.Warn(LogMsgDeadLetterReadFailed, "path", path, "error", err)
		return
	}
	if len(entries) == 0 && skipped == 0 {
		return
	}
	counts := make(map[string]int, len(entries))
	for t, n := range event.CountByType(entries) {
		counts[string(t)] = n
	}
	slog.Warn(LogMsgDeadLetterBacklog, "path", path, "entries", len(entries), "unreadable", skipped, "by_type", counts)
}
