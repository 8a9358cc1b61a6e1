package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/blaisecz/soulsync/internal/api/validation"
	"github.com/blaisecz/soulsync/internal/domain"
	"github.com/blaisecz/soulsync/internal/service"
	"github.com/blaisecz/soulsync/pkg/problem"
)

// AssessmentHandler handles chakra assessment endpoints.
type AssessmentHandler struct {
	service service.AssessmentService
}

func NewAssessmentHandler(service service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{service: service}
}

// Put handles PUT /v1/users/{userId}/chakras
// @Summary Submit a chakra assessment
// @Description Replace the user's assessment with all seven ratings (1-10). Statuses and overall balance are computed from the stored values.
// @Tags chakras
// @Accept json
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param request body domain.AssessmentRequest true "All seven chakra ratings"
// @Success 200 {object} domain.ChakraProfileResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/chakras [put]
func (h *AssessmentHandler) Put(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	var req domain.AssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	resp, err := h.service.Submit(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			problem.NotFound("User not found").Write(w)
		case errors.Is(err, domain.ErrInvalidInput):
			problem.ValidationError(err.Error(), nil).Write(w)
		default:
			problem.InternalError("Failed to store assessment").Write(w)
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /v1/users/{userId}/chakras
// @Summary Get the chakra profile
// @Description Current ratings with per-chakra status and overall balance. A user without an assessment gets assessed=false and the "Not assessed" balance.
// @Tags chakras
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Success 200 {object} domain.ChakraProfileResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/chakras [get]
func (h *AssessmentHandler) Get(w http.ResponseWriter, r *http.Request) {
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
		problem.InternalError("Failed to load assessment").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Reference handles GET /v1/chakras
// @Summary List chakra reference data
// @Description Names, elements, symptoms, healing practices and affirmations for all seven chakras, root to crown.
// @Tags chakras
// @Produce json
// @Success 200 {array} chakra.Info
// @Router /chakras [get]
func (h *AssessmentHandler) Reference(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Reference())
}
