package logger

// Context keys
const (
	ContextKeyRequestID   = "request_id"
	ContextKeyCharacterID = "character_id"
)

// Accepted LOG_LEVEL values; "warning" is an alias of "warn"
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

const (
	DefaultServiceName = "studyquest"
	DefaultVersion     = "dev"
	EnvironmentDev     = "dev"
)

// Attribute keys attached to every record or derived from the context
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
	AttrKeyCharacterID = "character_id"
)
