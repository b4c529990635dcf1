package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidLimit          = "Invalid limit parameter"
)

// Success messages for API responses
const (
	MsgBossDeleted      = "Boss deleted"
	MsgActiveBossSet    = "Active boss updated"
	MsgActiveBossClear  = "Active boss cleared"
	MsgStoreNotRequired = "in-memory store"
)

// Log messages
const (
	LogMsgServiceError    = "Service call failed"
	LogMsgReadinessFailed = "Readiness check failed"
)

// URL parameters
const (
	ParamCharacterID = "id"
	ParamQuestID     = "questID"
	ParamBossID      = "bossID"
	QueryLimit       = "limit"
	QueryEventType   = "type"
)
