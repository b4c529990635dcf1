package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older session logs kept next to the new one
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting StudyQuest"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Event System
// =============================================================================

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized         = "Event system initialized"
	LogMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory"
	LogMsgDeadLetterBacklog              = "Dead-letter file holds undelivered events"
	LogMsgDeadLetterReadFailed           = "Failed to read dead-letter file"
	LogMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
)

// Log messages for event handler registration
const (
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgLeaderboardSubscribed      = "Leaderboard subscriber registered"
	LogMsgEventLogSubscribed         = "Event log subscriber registered"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
	ErrMsgFailedSubscribeEventLog    = "failed to subscribe event log"
)

// =============================================================================
// Workers
// =============================================================================

const (
	// DefaultEventLogCleanupInterval applies when the configured interval is not positive
	DefaultEventLogCleanupInterval = 24 * time.Hour

	LogMsgEventLogCleanupDisabled = "Event log cleanup disabled"
)

// =============================================================================
// Storage
// =============================================================================

const (
	LogMsgUsingMemoryStore     = "Using in-memory character store"
	LogMsgUsingPostgresStore   = "Using postgres character store"
	LogMsgUsingRedisBoard      = "Using redis leaderboard"
	LogMsgUsingStoreBoard      = "Using store leaderboard"
	LogMsgRedisPingFailed      = "Redis ping failed, leaderboard will fall back to the store until it recovers"
	LogMsgQuestCatalogLoaded   = "Quest catalog loaded"
	ErrMsgFailedConnectDB      = "failed to connect to database"
	ErrMsgFailedMigrate        = "failed to run migrations"
	ErrMsgFailedLoadQuests     = "failed to load quest catalog"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
	LogMsgWorkerShutdownFailed       = "Worker shutdown failed"
	LogMsgRedisCloseFailed           = "Redis close failed"
)
