package handler

import (
	"errors"
	"net/http"

	"github.com/blaisecz/soulsync/internal/domain"
	"github.com/blaisecz/soulsync/internal/service"
	"github.com/blaisecz/soulsync/pkg/problem"
)

type RitualHandler struct {
	service service.RitualService
}

func NewRitualHandler(service service.RitualService) *RitualHandler {
	return &RitualHandler{service: service}
}

// Get handles GET /v1/users/{userId}/rituals
// @Summary Get healing rituals
// @Description Focus areas, practices and insights for the most imbalanced chakras, with the recommended coach and affirmations.
// @Tags rituals
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Success 200 {object} domain.RitualsResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/rituals [get]
func (h *RitualHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	resp, err := h.service.Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to build rituals").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
