// Package leaderboard ranks characters by total XP. Rankings are eventually
// consistent: they follow committed events, not transactions.
package leaderboard

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/osse101/StudyQuest_Go/internal/domain"
	"github.com/osse101/StudyQuest_Go/internal/logger"
	"github.com/osse101/StudyQuest_Go/internal/repository"
)

// Board serves the XP leaderboard
type Board interface {
	Top(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
	Record(ctx context.Context, entry domain.CharacterXPPayload) error
	Rebuild(ctx context.Context) error
}

// ClampLimit bounds a requested page size to [1, MaxLimit]
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// StoreBoard reads rankings straight from the character store
type StoreBoard struct {
	repo repository.Character
}

// NewStoreBoard creates a board backed only by the store
func NewStoreBoard(repo repository.Character) *StoreBoard {
	return &StoreBoard{repo: repo}
}

func (b *StoreBoard) Top(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	chars, err := b.repo.TopCharacters(ctx, ClampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to load top characters: %w", err)
	}
	out := make([]domain.LeaderboardEntry, 0, len(chars))
	for i := range chars {
		c := &chars[i]
		out = append(out, domain.LeaderboardEntry{
			Rank:        i + 1,
			CharacterID: c.ID,
			Username:    c.Username,
			Name:        c.Name,
			TotalXP:     c.TotalXP,
			Level:       c.Level,
		})
	}
	return out, nil
}

// Record is a no-op: the store is always current
func (b *StoreBoard) Record(context.Context, domain.CharacterXPPayload) error { return nil }

// Rebuild is a no-op for the same reason
func (b *StoreBoard) Rebuild(context.Context) error { return nil }

// RedisBoard keeps a sorted set of total XP plus a hash of display fields.
// Reads fall back to the store when redis fails.
type RedisBoard struct {
	client      *redis.Client
	store       *StoreBoard
	rebuildSize int
}

// NewRedisBoard creates a redis-backed board
func NewRedisBoard(client *redis.Client, repo repository.Character, rebuildSize int) *RedisBoard {
	if rebuildSize <= 0 {
		rebuildSize = DefaultRebuildSize
	}
	return &RedisBoard{client: client, store: NewStoreBoard(repo), rebuildSize: rebuildSize}
}

func (b *RedisBoard) Top(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	limit = ClampLimit(limit)
	entries, err := b.topFromRedis(ctx, limit)
	if err != nil || len(entries) == 0 {
		if err != nil {
			logger.FromContext(ctx).Warn(LogMsgRedisUnavailable, "error", err)
		}
		return b.store.Top(ctx, limit)
	}
	return entries, nil
}

func (b *RedisBoard) topFromRedis(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, redisTimeout)
	defer cancel()

	ranked, err := b.client.ZRevRangeWithScores(ctx, KeyXP, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	if len(ranked) == 0 {
		return nil, nil
	}

	ids := make([]string, len(ranked))
	for i, z := range ranked {
		ids[i], _ = z.Member.(string)
	}
	infos, err := b.client.HMGet(ctx, KeyInfo, ids...).Result()
	if err != nil {
		return nil, err
	}

	out := make([]domain.LeaderboardEntry, 0, len(ranked))
	for i, z := range ranked {
		entry := domain.LeaderboardEntry{CharacterID: ids[i], TotalXP: int64(z.Score)}
		if raw, ok := infos[i].(string); ok {
			var info domain.CharacterXPPayload
			if err := json.Unmarshal([]byte(raw), &info); err == nil {
				entry.Username = info.Username
				entry.Name = info.Name
				entry.Level = info.Level
			}
		}
		entry.Rank = i + 1
		out = append(out, entry)
	}
	return out, nil
}

// Record upserts one character's score and display fields
func (b *RedisBoard) Record(ctx context.Context, entry domain.CharacterXPPayload) error {
	if entry.CharacterID == "" {
		return fmt.Errorf("%w: empty character id", domain.ErrInvalidInput)
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal leaderboard entry: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, redisTimeout)
	defer cancel()

	pipe := b.client.TxPipeline()
	pipe.ZAdd(ctx, KeyXP, redis.Z{Score: float64(entry.TotalXP), Member: entry.CharacterID})
	pipe.HSet(ctx, KeyInfo, entry.CharacterID, data)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record leaderboard entry: %w", err)
	}
	return nil
}

// Rebuild replaces the redis rankings with the store's current top characters
func (b *RedisBoard) Rebuild(ctx context.Context) error {
	chars, err := b.store.repo.TopCharacters(ctx, b.rebuildSize)
	if err != nil {
		return fmt.Errorf("failed to load characters for rebuild: %w", err)
	}

	pipe := b.client.TxPipeline()
	pipe.Del(ctx, KeyXP, KeyInfo)
	for i := range chars {
		payload := domain.XPPayloadOf(&chars[i])
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal leaderboard entry: %w", err)
		}
		pipe.ZAdd(ctx, KeyXP, redis.Z{Score: float64(payload.TotalXP), Member: payload.CharacterID})
		pipe.HSet(ctx, KeyInfo, payload.CharacterID, data)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to rebuild leaderboard: %w", err)
	}

	logger.FromContext(ctx).Info(LogMsgRebuilt, "entries", len(chars))
	return nil
}

var (
	_ Board = (*StoreBoard)(nil)
	_ Board = (*RedisBoard)(nil)
)
