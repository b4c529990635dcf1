package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/StudyQuest_Go/internal/domain"
	"github.com/osse101/StudyQuest_Go/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and maps it to a response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgServiceError, "op", opName, "error", err)
	} else {
		log.Warn(LogMsgServiceError, "op", opName, "error", err)
	}
	respondError(w, status, msg)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgCharacterNotFoundError = "Character not found"
	ErrMsgUsernameTakenError     = "That username is already taken"
	ErrMsgInvalidClassError      = "Unknown character class"
	ErrMsgProofRequiredError     = "Proof is required. Add a photo or link."
	ErrMsgUnknownActivityError   = "Unknown activity"
	ErrMsgUnknownQuestError      = "Unknown quest"
	ErrMsgQuestCompletedError    = "You already completed that quest"
	ErrMsgInvalidStatError       = "Unknown stat"
	ErrMsgStatNotMaxedError      = "That stat must be at 100 to prestige"
	ErrMsgBossCapacityError      = "You already have the maximum number of bosses"
	ErrMsgBossNotFoundError      = "Boss not found"
	ErrMsgInvalidInputError      = "Invalid request. Please check your inputs."
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses.
// Unknown errors never leak their text.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrCharacterNotFound):
		return http.StatusNotFound, ErrMsgCharacterNotFoundError
	case errors.Is(err, domain.ErrBossNotFound):
		return http.StatusNotFound, ErrMsgBossNotFoundError
	case errors.Is(err, domain.ErrUsernameTaken):
		return http.StatusConflict, ErrMsgUsernameTakenError
	case errors.Is(err, domain.ErrQuestAlreadyCompleted):
		return http.StatusConflict, ErrMsgQuestCompletedError
	case errors.Is(err, domain.ErrBossCapacity):
		return http.StatusConflict, ErrMsgBossCapacityError
	case errors.Is(err, domain.ErrStatNotMaxed):
		return http.StatusConflict, ErrMsgStatNotMaxedError
	case errors.Is(err, domain.ErrProofRequired):
		return http.StatusBadRequest, ErrMsgProofRequiredError
	case errors.Is(err, domain.ErrUnknownActivity):
		return http.StatusBadRequest, ErrMsgUnknownActivityError
	case errors.Is(err, domain.ErrUnknownQuest):
		return http.StatusNotFound, ErrMsgUnknownQuestError
	case errors.Is(err, domain.ErrInvalidClass):
		return http.StatusBadRequest, ErrMsgInvalidClassError
	case errors.Is(err, domain.ErrInvalidStat):
		return http.StatusBadRequest, ErrMsgInvalidStatError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
