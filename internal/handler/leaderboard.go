package handler

import (
	"net/http"

	"github.com/osse101/StudyQuest_Go/internal/leaderboard"
)

// HandleGetLeaderboard returns the top characters by total XP
// @Summary Get leaderboard
// @Tags leaderboard
// @Produce json
// @Param limit query int false "Max entries (1-100)"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /leaderboard [get]
func HandleGetLeaderboard(board leaderboard.Board) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := getQueryInt(r, QueryLimit, leaderboard.DefaultLimit)
		if !ok {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
			return
		}

		entries, err := board.Top(r.Context(), leaderboard.ClampLimit(limit))
		if err != nil {
			respondServiceError(w, r, "Get leaderboard", err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: entries})
	}
}
