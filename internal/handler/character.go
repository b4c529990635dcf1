package handler

import (
	"io"
	"net/http"

	"github.com/osse101/StudyQuest_Go/internal/boss"
	"github.com/osse101/StudyQuest_Go/internal/domain"
	"github.com/osse101/StudyQuest_Go/internal/progression"
)

// CharacterHandlers serves the character-scoped API
type CharacterHandlers struct {
	progression progression.Service
	bosses      boss.Service
}

// NewCharacterHandlers creates the character handlers
func NewCharacterHandlers(progressionSvc progression.Service, bossSvc boss.Service) *CharacterHandlers {
	return &CharacterHandlers{progression: progressionSvc, bosses: bossSvc}
}

// CreateCharacterRequest is the body of POST /characters
type CreateCharacterRequest struct {
	Name          string `json:"name" validate:"max=50,excludesall=\x00\n\r\t"`
	Username      string `json:"username" validate:"required,max=32,excludesall=\x00\n\r\t"`
	ClassID       string `json:"class_id,omitempty" validate:"max=32"`
	StarterWeapon string `json:"starter_weapon,omitempty" validate:"max=64"`
}

// HandleCreate creates a character
// @Summary Create character
// @Tags characters
// @Accept json
// @Produce json
// @Param request body CreateCharacterRequest true "Character details"
// @Success 201 {object} domain.Character
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /characters [post]
func (h *CharacterHandlers) HandleCreate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateCharacterRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create character"); err != nil {
			return
		}

		c, err := h.progression.CreateCharacter(r.Context(), domain.CreateCharacterInput{
			Name:          req.Name,
			Username:      req.Username,
			ClassID:       domain.ClassID(req.ClassID),
			StarterWeapon: req.StarterWeapon,
		})
		if err != nil {
			respondServiceError(w, r, "Create character", err)
			return
		}

		respondJSON(w, http.StatusCreated, c)
	}
}

// HandleImport stores a saved character document of any schema version as a new character
func (h *CharacterHandlers) HandleImport() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := io.ReadAll(r.Body)
		if err != nil || len(doc) == 0 {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		c, err := h.progression.ImportCharacter(r.Context(), doc)
		if err != nil {
			respondServiceError(w, r, "Import character", err)
			return
		}

		respondJSON(w, http.StatusCreated, c)
	}
}

// HandleGet returns a character
// @Summary Get character
// @Tags characters
// @Produce json
// @Param id path string true "Character ID"
// @Success 200 {object} domain.Character
// @Failure 404 {object} ErrorResponse
// @Router /characters/{id} [get]
func (h *CharacterHandlers) HandleGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := h.progression.GetCharacter(r.Context(), characterID(r))
		if err != nil {
			respondServiceError(w, r, "Get character", err)
			return
		}
		respondJSON(w, http.StatusOK, c)
	}
}

// HandleRecap returns the trailing seven-day recap
func (h *CharacterHandlers) HandleRecap() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recap, err := h.progression.WeeklyRecap(r.Context(), characterID(r))
		if err != nil {
			respondServiceError(w, r, "Weekly recap", err)
			return
		}
		respondJSON(w, http.StatusOK, recap)
	}
}
