package event

import "time"

// EventSchemaVersion is stamped on every event built by the constructors
const EventSchemaVersion = "1.0"

// Retry queue
const (
	RetryQueueBufferSize = 1000

	// RetryMaxAttempts applies when the configured retry count is not positive
	RetryMaxAttempts = 5

	// MaxRetryDelay caps the exponential backoff
	MaxRetryDelay = 5 * time.Minute
)

// Dead-letter file
const (
	DeadLetterFilePermissions = 0o644

	// DeadLetterMaxLineSize bounds a single JSON line when reading the file back
	DeadLetterMaxLineSize = 1 << 20
)

// Log messages
const (
	LogMsgEventPublishFailed    = "Event publish failed, queuing for retry"
	LogMsgRetryQueueFull        = "Retry queue full, event dropped to dead-letter"
	LogMsgDeadLetterWriteFailed = "Failed to write to dead letter"
	LogMsgEventDeadLettered     = "Event dead-lettered"
	LogMsgEventRetryExhausted   = "Event retry exhausted, writing to dead-letter"
	LogMsgEventRetryFailed      = "Event retry failed, scheduling next attempt"
	LogMsgEventRetrySucceeded   = "Event retry succeeded"
	LogMsgEventDroppedShutdown  = "Event dropped during shutdown"
	LogMsgQueueDrainedShutdown  = "Drained retry queue during shutdown"
	LogMsgShutdownTimeout       = "Resilient publisher shutdown timed out"

	LogMsgHandlerErrorFormat = "%d of the handlers for %s failed: %v"
)

// CalculateRetryDelay doubles baseDelay for every attempt after the first,
// capped at MaxRetryDelay.
func CalculateRetryDelay(baseDelay time.Duration, attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	if attempt > 20 {
		return MaxRetryDelay
	}
	delay := baseDelay * time.Duration(1<<(attempt-1))
	if delay > MaxRetryDelay || delay < 0 {
		return MaxRetryDelay
	}
	return delay
}
