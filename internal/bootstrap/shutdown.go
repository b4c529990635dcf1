package bootstrap

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/osse101/StudyQuest_Go/internal/event"
	"github.com/osse101/StudyQuest_Go/internal/server"
	"github.com/osse101/StudyQuest_Go/internal/sse"
	"github.com/osse101/StudyQuest_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil fields are skipped.
type ShutdownComponents struct {
	Hub                *sse.Hub
	Server             *server.Server
	Workers            []*worker.PeriodicWorker
	ResilientPublisher *event.ResilientPublisher
	Redis              *redis.Client
	Storage            *Storage
}

// GracefulShutdown stops components in dependency order:
// 1. Event stream (open streams never go idle on their own)
// 2. HTTP server (stop accepting new requests)
// 3. Background workers
// 4. Event publisher (flush pending retries)
// 5. Redis and the database pool
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Hub != nil {
		components.Hub.Stop()
	}

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	for _, w := range components.Workers {
		if err := w.Shutdown(ctx); err != nil {
			slog.Error(LogMsgWorkerShutdownFailed, "worker", w.Name(), "error", err)
		}
	}

	if components.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	if components.Redis != nil {
		if err := components.Redis.Close(); err != nil {
			slog.Error(LogMsgRedisCloseFailed, "error", err)
		}
	}

	if components.Storage != nil {
		components.Storage.Close()
	}

	slog.Info(LogMsgServerStopped)
}
