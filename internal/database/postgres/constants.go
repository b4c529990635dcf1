package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - Character Operations
const (
	ErrMsgInvalidCharacterID        = "invalid character id"
	ErrMsgFailedToInsertCharacter   = "failed to insert character"
	ErrMsgFailedToUpdateCharacter   = "failed to update character"
	ErrMsgFailedToGetCharacter      = "failed to get character"
	ErrMsgFailedToLockCharacter     = "failed to lock character"
	ErrMsgFailedToQueryTopCharacter = "failed to query top characters"
	ErrMsgFailedToEncodeCharacter   = "failed to encode character"
)

// Error Messages - Boss Operations
const (
	ErrMsgInvalidBossID       = "invalid boss id"
	ErrMsgFailedToGetBoss     = "failed to get boss"
	ErrMsgFailedToQueryBosses = "failed to query bosses"
	ErrMsgFailedToInsertBoss  = "failed to insert boss"
	ErrMsgFailedToUpdateBoss  = "failed to update boss"
	ErrMsgBossRowNotAffected  = "boss update affected no rows"
	ErrMsgFailedToScanBossRow = "failed to scan boss row"
)

// Error Messages - Activity Log Operations
const (
	ErrMsgFailedToScanLogRow = "failed to scan activity log row"
	ErrMsgFailedToAppendLog  = "failed to append activity log"
	ErrMsgFailedToQueryLogs  = "failed to query activity logs"
	ErrMsgFailedToSumDailyXP = "failed to sum daily xp"
)

// Error Messages - Event Log Operations
const (
	ErrMsgFailedToInsertEvent   = "failed to insert event log entry"
	ErrMsgFailedToQueryEvents   = "failed to query event log"
	ErrMsgFailedToScanEventRow  = "failed to scan event log row"
	ErrMsgFailedToCleanupEvents = "failed to clean up event log"
)
