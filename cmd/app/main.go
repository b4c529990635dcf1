package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/StudyQuest_Go/internal/boss"
	"github.com/osse101/StudyQuest_Go/internal/bootstrap"
	"github.com/osse101/StudyQuest_Go/internal/config"
	"github.com/osse101/StudyQuest_Go/internal/eventlog"
	"github.com/osse101/StudyQuest_Go/internal/handler"
	"github.com/osse101/StudyQuest_Go/internal/progression"
	"github.com/osse101/StudyQuest_Go/internal/server"
	"github.com/osse101/StudyQuest_Go/internal/sse"
)

const shutdownTimeout = 30 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	for _, warning := range cfg.Warnings() {
		slog.Warn("Configuration warning", "detail", warning)
	}

	handler.InitValidator()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storage, err := bootstrap.InitializeStorage(ctx, cfg)
	if err != nil {
		return err
	}

	quests, err := bootstrap.LoadQuestCatalog(cfg)
	if err != nil {
		storage.Close()
		return err
	}

	eventBus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		storage.Close()
		return err
	}

	board, redisClient := bootstrap.InitializeLeaderboard(ctx, cfg, storage.Characters)

	history := eventlog.NewService(storage.EventLog)

	hub := sse.NewHub()
	hub.Start()

	if err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus:    eventBus,
		Leaderboard: board,
		EventLog:    history,
		Hub:         hub,
	}); err != nil {
		hub.Stop()
		storage.Close()
		return err
	}

	resolver := boss.NewResolver(rand.New(rand.NewSource(time.Now().UnixNano())))
	progressionService := progression.NewService(storage.Characters, resolver, quests, publisher, progression.Config{
		Location:  cfg.Location,
		CacheSize: cfg.CacheSize,
		CacheTTL:  cfg.CacheTTL,
	})
	bossService := boss.NewService(storage.Characters, resolver, progressionService)

	workers := bootstrap.StartWorkers(cfg, board, history)

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		ServiceName:    cfg.ServiceName,
		Version:        cfg.Version,
	}, storage.Pinger(), progressionService, bossService, board, history, hub)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
	case err = <-serverErr:
		if err != nil {
			slog.Error("Server failed", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Hub:                hub,
		Server:             srv,
		Workers:            workers,
		ResilientPublisher: publisher,
		Redis:              redisClient,
		Storage:            storage,
	})
	return err
}
