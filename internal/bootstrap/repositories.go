package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/osse101/StudyQuest_Go/internal/config"
	"github.com/osse101/StudyQuest_Go/internal/database"
	"github.com/osse101/StudyQuest_Go/internal/database/memory"
	"github.com/osse101/StudyQuest_Go/internal/database/postgres"
	"github.com/osse101/StudyQuest_Go/internal/eventlog"
	"github.com/osse101/StudyQuest_Go/internal/handler"
	"github.com/osse101/StudyQuest_Go/internal/leaderboard"
	"github.com/osse101/StudyQuest_Go/internal/quest"
	"github.com/osse101/StudyQuest_Go/internal/repository"
)

// Storage holds the repositories of the configured backend and, for postgres, its pool
type Storage struct {
	Characters repository.Character
	EventLog   eventlog.Repository
	DB         database.Pool
}

// Pinger returns the readiness check target, nil for the memory store
func (s *Storage) Pinger() handler.Pinger {
	if s.DB == nil {
		return nil
	}
	return s.DB
}

// Close releases the database pool if there is one
func (s *Storage) Close() {
	if s.DB != nil {
		s.DB.Close()
	}
}

// InitializeStorage opens the configured character store. For postgres the
// embedded migrations run before the repository is returned.
func InitializeStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	if cfg.UseMemoryStore() {
		slog.Info(LogMsgUsingMemoryStore)
		return &Storage{Characters: memory.NewStore(), EventLog: eventlog.NewMemoryRepository()}, nil
	}

	pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
	}
	if err := database.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
	}

	slog.Info(LogMsgUsingPostgresStore, "host", cfg.DBHost, "db", cfg.DBName)
	return &Storage{
		Characters: postgres.NewCharacterRepository(pool),
		EventLog:   postgres.NewEventLogRepository(pool),
		DB:         pool,
	}, nil
}

// InitializeLeaderboard returns a redis board when REDIS_ADDR is set and a
// store board otherwise. The returned client is nil for the store board.
func InitializeLeaderboard(ctx context.Context, cfg *config.Config, repo repository.Character) (leaderboard.Board, *redis.Client) {
	if cfg.RedisAddr == "" {
		slog.Info(LogMsgUsingStoreBoard)
		return leaderboard.NewStoreBoard(repo), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		slog.Warn(LogMsgRedisPingFailed, "addr", cfg.RedisAddr, "error", err)
	}

	slog.Info(LogMsgUsingRedisBoard, "addr", cfg.RedisAddr)
	return leaderboard.NewRedisBoard(client, repo, cfg.LeaderboardSize), client
}

// LoadQuestCatalog reads the special quests from QUEST_CONFIG_PATH or the built-in set
func LoadQuestCatalog(cfg *config.Config) (*quest.Catalog, error) {
	catalog, err := quest.LoadCatalog(cfg.QuestConfigPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadQuests, err)
	}

	source := cfg.QuestConfigPath
	if source == "" {
		source = "built-in"
	}
	slog.Info(LogMsgQuestCatalogLoaded, "source", source, "quests", len(catalog.All()))
	return catalog, nil
}
