package handler

import (
	"context"
	"net/http"

	"github.com/osse101/StudyQuest_Go/internal/eventlog"
)

// EventHistory reads persisted domain events
type EventHistory interface {
	History(ctx context.Context, characterID, eventType string, limit int) ([]eventlog.Entry, error)
}

// HandleGetHistory returns a character's recent events, newest first
// @Summary Get character event history
// @Tags characters
// @Produce json
// @Param id path string true "Character ID"
// @Param type query string false "Event type filter"
// @Param limit query int false "Max entries (1-200)"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /characters/{id}/history [get]
func HandleGetHistory(history EventHistory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := getQueryInt(r, QueryLimit, eventlog.DefaultHistoryLimit)
		if !ok {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
			return
		}

		entries, err := history.History(r.Context(), characterID(r), r.URL.Query().Get(QueryEventType), limit)
		if err != nil {
			respondServiceError(w, r, "Get history", err)
			return
		}
		if entries == nil {
			entries = []eventlog.Entry{}
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: entries})
	}
}
