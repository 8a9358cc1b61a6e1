package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/blaisecz/soulsync/internal/api/validation"
	"github.com/blaisecz/soulsync/internal/domain"
	"github.com/blaisecz/soulsync/internal/llm"
	"github.com/blaisecz/soulsync/internal/service"
	"github.com/blaisecz/soulsync/pkg/problem"
	"go.uber.org/zap"
)

// CoachHandler handles the coaching chat endpoints.
type CoachHandler struct {
	service service.CoachService
}

func NewCoachHandler(service service.CoachService) *CoachHandler {
	return &CoachHandler{service: service}
}

// SendMessage handles POST /v1/users/{userId}/coach/messages
// @Summary Talk to a coach
// @Description Send a message to the coach chosen from the user's primary focus chakra (or the requested coach). Free members are limited per UTC day.
// @Tags coach
// @Accept json
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param request body domain.SendMessageRequest true "Chat message"
// @Success 200 {object} domain.SendMessageResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem
// @Failure 429 {object} problem.Problem "Daily free limit reached"
// @Failure 502 {object} problem.Problem "LLM request failed"
// @Failure 503 {object} problem.Problem "LLM not configured"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/coach/messages [post]
func (h *CoachHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	var req domain.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	resp, err := h.service.Send(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			problem.NotFound("User not found").Write(w)
		case errors.Is(err, domain.ErrQuotaExceeded):
			problem.TooManyRequests("Free members can send a limited number of coach messages per day. Upgrade to premium for unlimited coaching.").Write(w)
		case errors.Is(err, llm.ErrOpenAIUnavailable):
			problem.ServiceUnavailable("Coaching is not configured").Write(w)
		case errors.Is(err, llm.ErrOpenAIRequest), errors.Is(err, llm.ErrOpenAIResponse):
			zap.L().Warn("coach reply failed", zap.String("user_id", userID.String()), zap.Error(err))
			problem.BadGateway("Failed to get a reply from the coach").Write(w)
		default:
			zap.L().Error("coach message failed", zap.String("user_id", userID.String()), zap.Error(err))
			problem.InternalError("Failed to process message").Write(w)
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// History handles GET /v1/users/{userId}/coach/messages
// @Summary Get chat history
// @Description Latest chat turns, oldest first.
// @Tags coach
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param limit query integer false "Number of turns" default(12) minimum(1) maximum(100)
// @Success 200 {object} domain.ChatHistoryResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/coach/messages [get]
func (h *CoachHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		parsed, err := strconv.Atoi(s)
		if err != nil || parsed < 1 || parsed > service.MaxChatHistoryLimit {
			problem.ValidationError("Invalid query parameters", []problem.FieldError{{
				Field:   "limit",
				Message: "must be an integer between 1 and " + strconv.Itoa(service.MaxChatHistoryLimit),
			}}).Write(w)
			return
		}
		limit = parsed
	}

	resp, err := h.service.History(r.Context(), userID, limit)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to load chat history").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Feedback handles POST /v1/users/{userId}/coach/feedback
// @Summary Rate a coach reply
// @Description Submit a 1-5 rating and optional comment for a reply, identified by its trace id.
// @Tags coach
// @Accept json
// @Param userId path string true "User ID" format(uuid)
// @Param request body domain.FeedbackRequest true "Feedback"
// @Success 204 "Feedback submitted"
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User or trace not found"
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/coach/feedback [post]
func (h *CoachHandler) Feedback(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	var req domain.FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	if err := h.service.Feedback(r.Context(), userID, &req); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User or trace not found").Write(w)
			return
		}
		// A failed score does not fail the request.
		zap.L().Warn("feedback not recorded", zap.String("trace_id", req.TraceID), zap.Error(err))
	}

	w.WriteHeader(http.StatusNoContent)
}
