package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Character errors
	ErrMsgCharacterNotFound = "character not found"
	ErrMsgUsernameTaken     = "username is already taken"
	ErrMsgInvalidClass      = "invalid character class"

	// Logging errors
	ErrMsgProofRequired   = "proof is required"
	ErrMsgUnknownActivity = "unknown activity"

	// Quest errors
	ErrMsgUnknownQuest          = "unknown quest"
	ErrMsgQuestAlreadyCompleted = "quest already completed"

	// Stat errors
	ErrMsgInvalidStat  = "invalid stat"
	ErrMsgStatNotMaxed = "stat is not at max"

	// Boss errors
	ErrMsgBossCapacity = "boss roster is at capacity"
	ErrMsgBossNotFound = "boss not found"

	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Storage errors
	ErrMsgTxClosed = "tx is closed"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Character errors
	ErrCharacterNotFound = errors.New(ErrMsgCharacterNotFound)
	ErrUsernameTaken     = errors.New(ErrMsgUsernameTaken)
	ErrInvalidClass      = errors.New(ErrMsgInvalidClass)

	// ErrTxClosed is returned by Commit or Rollback on a finished transaction
	ErrTxClosed = errors.New(ErrMsgTxClosed)

	// Logging errors
	ErrProofRequired   = errors.New(ErrMsgProofRequired)
	ErrUnknownActivity = errors.New(ErrMsgUnknownActivity)

	// Quest errors
	ErrUnknownQuest          = errors.New(ErrMsgUnknownQuest)
	ErrQuestAlreadyCompleted = errors.New(ErrMsgQuestAlreadyCompleted)

	// Stat errors
	ErrInvalidStat  = errors.New(ErrMsgInvalidStat)
	ErrStatNotMaxed = errors.New(ErrMsgStatNotMaxed)

	// Boss errors
	ErrBossCapacity = errors.New(ErrMsgBossCapacity)
	ErrBossNotFound = errors.New(ErrMsgBossNotFound)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
