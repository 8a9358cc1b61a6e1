package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/blaisecz/soulsync/pkg/pagination"
	"github.com/blaisecz/soulsync/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// userIDParam parses the {userId} path parameter, writing a 400 on failure.
func userIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return uuid.Nil, false
	}
	return userID, true
}

// parsePaging reads the limit and cursor query parameters.
func parsePaging(r *http.Request) (int, string, []problem.FieldError) {
	var (
		limit       int
		fieldErrors []problem.FieldError
	)

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 || parsed > pagination.MaxLimit {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "limit",
				Message: "must be an integer between 1 and " + strconv.Itoa(pagination.MaxLimit),
			})
		} else {
			limit = parsed
		}
	}

	cursor := r.URL.Query().Get("cursor")
	if _, err := pagination.DecodeCursor(cursor); err != nil {
		fieldErrors = append(fieldErrors, problem.FieldError{
			Field:   "cursor",
			Message: "is not a valid cursor",
		})
	}

	return limit, cursor, fieldErrors
}

func parseTimeParam(r *http.Request, name string, fieldErrors *[]problem.FieldError) *time.Time {
	s := r.URL.Query().Get(name)
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		*fieldErrors = append(*fieldErrors, problem.FieldError{
			Field:   name,
			Message: "must be a valid RFC3339 timestamp",
		})
		return nil
	}
	t = t.UTC()
	return &t
}
