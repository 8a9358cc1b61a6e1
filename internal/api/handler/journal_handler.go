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

type JournalHandler struct {
	service service.JournalService
}

func NewJournalHandler(service service.JournalService) *JournalHandler {
	return &JournalHandler{service: service}
}

// Create handles POST /v1/users/{userId}/journal
// @Summary Write a journal entry
// @Description Store an entry tagged with sentiment (label and score in [-1, 1]) and detected emotions.
// @Tags journal
// @Accept json
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param request body domain.CreateJournalEntryRequest true "Journal entry"
// @Success 201 {object} domain.JournalEntryResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/journal [post]
func (h *JournalHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	var req domain.CreateJournalEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	entry, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to create journal entry").Write(w)
		return
	}

	writeJSON(w, http.StatusCreated, entry.ToResponse())
}

// List handles GET /v1/users/{userId}/journal
// @Summary List journal entries
// @Description Newest first, cursor paginated, optionally filtered by creation time.
// @Tags journal
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Param from query string false "Only entries created at or after (RFC3339)" format(date-time)
// @Param to query string false "Only entries created at or before (RFC3339)" format(date-time)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.JournalListResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/journal [get]
func (h *JournalHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	filter, fieldErrors := parseJournalFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	resp, err := h.service.List(r.Context(), userID, filter)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to list journal entries").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func parseJournalFilter(r *http.Request) (domain.JournalFilter, []problem.FieldError) {
	var filter domain.JournalFilter

	limit, cursor, fieldErrors := parsePaging(r)
	filter.Limit = limit
	filter.Cursor = cursor
	filter.From = parseTimeParam(r, "from", &fieldErrors)
	filter.To = parseTimeParam(r, "to", &fieldErrors)

	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		fieldErrors = append(fieldErrors, problem.FieldError{
			Field:   "to",
			Message: "must not be before from",
		})
	}

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}
	return filter, nil
}
