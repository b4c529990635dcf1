package handler

import (
	"net/http"

	"github.com/osse101/StudyQuest_Go/internal/domain"
)

// LogActivityRequest is the body of POST /characters/{id}/activities.
// Minutes are clamped by the engine, not rejected.
type LogActivityRequest struct {
	ActivityID string   `json:"activity_id" validate:"required,max=64"`
	Minutes    int      `json:"minutes,omitempty"`
	ProofURL   string   `json:"proof_url" validate:"max=2048"`
	Tags       []string `json:"tags,omitempty" validate:"max=10,dive,max=64"`
}

// HandleLogActivity logs one activity
// @Summary Log activity
// @Tags characters
// @Accept json
// @Produce json
// @Param id path string true "Character ID"
// @Param request body LogActivityRequest true "Activity details"
// @Success 201 {object} domain.LogResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /characters/{id}/activities [post]
func (h *CharacterHandlers) HandleLogActivity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LogActivityRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Log activity"); err != nil {
			return
		}

		id := characterID(r)
		res, err := h.progression.LogActivity(r.Context(), id, req.ActivityID, domain.LogOptions{
			Minutes:  req.Minutes,
			ProofURL: req.ProofURL,
			Tags:     req.Tags,
		})
		if err != nil {
			respondServiceError(w, r, "Log activity", err)
			return
		}

		respondJSON(w, http.StatusCreated, res)
	}
}

// CompleteQuestRequest is the body of POST /characters/{id}/quests/{questID}/complete
type CompleteQuestRequest struct {
	ProofURL string `json:"proof_url" validate:"max=2048"`
}

// HandleCompleteQuest claims a special quest
func (h *CharacterHandlers) HandleCompleteQuest() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CompleteQuestRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Complete quest"); err != nil {
			return
		}

		id := characterID(r)
		questID := chiParam(r, ParamQuestID)
		res, err := h.progression.CompleteSpecialQuest(r.Context(), id, questID, req.ProofURL)
		if err != nil {
			respondServiceError(w, r, "Complete quest", err)
			return
		}

		respondJSON(w, http.StatusOK, res)
	}
}

// PrestigeRequest is the body of POST /characters/{id}/prestige
type PrestigeRequest struct {
	Stat string `json:"stat" validate:"required,stat"`
}

// HandlePrestige resets a maxed stat for a prestige point
func (h *CharacterHandlers) HandlePrestige() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PrestigeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Prestige stat"); err != nil {
			return
		}

		id := characterID(r)
		c, err := h.progression.PrestigeStat(r.Context(), id, domain.Stat(req.Stat))
		if err != nil {
			respondServiceError(w, r, "Prestige stat", err)
			return
		}

		respondJSON(w, http.StatusOK, c)
	}
}
