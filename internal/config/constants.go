package config

// Store backends
const (
	StoreBackendPostgres = "postgres"
	StoreBackendMemory   = "memory"
)

// Defaults
const (
	DefaultPort            = "8080"
	DefaultTimezone        = "UTC"
	DefaultCacheSize       = 1000
	DefaultDBMaxConns      = 20
	DefaultEventMaxRetries = 5
	DefaultLeaderboardSize = 1000
	DefaultDeadLetterPath  = "logs/deadletter.jsonl"

	DefaultEventLogRetentionDays = 90
)
