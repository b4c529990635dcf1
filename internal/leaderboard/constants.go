package leaderboard

import "time"

// Redis keys
const (
	// KeyXP is the sorted set of character id -> total XP
	KeyXP = "leaderboard:xp"

	// KeyInfo is the hash of character id -> entry JSON
	KeyInfo = "leaderboard:info"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100

	// DefaultRebuildSize is how many store rows a rebuild loads into redis
	DefaultRebuildSize = 1000

	redisTimeout = 2 * time.Second
)

// Log messages
const (
	LogMsgRedisUnavailable = "Leaderboard redis unavailable, falling back to store"
	LogMsgRecordFailed     = "Failed to record leaderboard entry"
	LogMsgDecodeFailed     = "Failed to decode leaderboard event"
	LogMsgRebuilt          = "Leaderboard rebuilt"
)
