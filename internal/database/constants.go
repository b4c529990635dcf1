package database

import "time"

// Pool sizing
const (
	// DefaultMinConnections is kept warm unless the pool is smaller than that
	DefaultMinConnections = 2

	// ConnectTimeout bounds the initial ping of a new pool
	ConnectTimeout = 10 * time.Second
)

// goose settings for the embedded migrations
const (
	MigrationDialect = "postgres"
	MigrationsDir    = "migrations"
)

const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
	ErrMsgFailedToMigrate         = "failed to apply migrations"
)

const (
	LogMsgConnected         = "Connected to PostgreSQL"
	LogMsgMigrationsApplied = "Database migrations applied"
)
