package handler

import "net/http"

// AddBossRequest is the body of POST /characters/{id}/bosses.
// HP below the minimum is raised by the engine.
type AddBossRequest struct {
	Name      string `json:"name" validate:"required,max=50,excludesall=\x00\n\r\t"`
	HP        int    `json:"hp" validate:"gte=0,lte=1000000"`
	SetActive bool   `json:"set_active,omitempty"`
}

// SetActiveBossRequest is the body of PUT /characters/{id}/bosses/active.
// An empty boss id clears the target.
type SetActiveBossRequest struct {
	BossID string `json:"boss_id" validate:"max=64"`
}

// HandleListBosses returns the live roster
func (h *CharacterHandlers) HandleListBosses() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bosses, err := h.bosses.ListBosses(r.Context(), characterID(r))
		if err != nil {
			respondServiceError(w, r, "List bosses", err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: bosses})
	}
}

// HandleAddBoss creates a boss on the roster
// @Summary Add boss
// @Tags bosses
// @Accept json
// @Produce json
// @Param id path string true "Character ID"
// @Param request body AddBossRequest true "Boss details"
// @Success 201 {object} domain.UserBoss
// @Failure 409 {object} ErrorResponse
// @Router /characters/{id}/bosses [post]
func (h *CharacterHandlers) HandleAddBoss() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddBossRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Add boss"); err != nil {
			return
		}

		id := characterID(r)
		b, err := h.bosses.AddUserBoss(r.Context(), id, req.Name, req.HP, req.SetActive)
		if err != nil {
			respondServiceError(w, r, "Add boss", err)
			return
		}

		respondJSON(w, http.StatusCreated, b)
	}
}

// HandleDeleteBoss removes a boss from the roster
func (h *CharacterHandlers) HandleDeleteBoss() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := characterID(r)
		bossID := chiParam(r, ParamBossID)
		if err := h.bosses.DeleteUserBoss(r.Context(), id, bossID); err != nil {
			respondServiceError(w, r, "Delete boss", err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgBossDeleted})
	}
}

// HandleSetActiveBoss points damage at a boss
func (h *CharacterHandlers) HandleSetActiveBoss() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SetActiveBossRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Set active boss"); err != nil {
			return
		}

		id := characterID(r)
		if err := h.bosses.SetActiveBossID(r.Context(), id, req.BossID); err != nil {
			respondServiceError(w, r, "Set active boss", err)
			return
		}

		msg := MsgActiveBossSet
		if req.BossID == "" {
			msg = MsgActiveBossClear
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: msg})
	}
}
