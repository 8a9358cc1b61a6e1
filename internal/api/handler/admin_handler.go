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

// AdminHandler handles membership administration. Routes are guarded by
// middleware.AdminToken.
type AdminHandler struct {
	service service.AdminService
}

func NewAdminHandler(service service.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

// ListUsers handles GET /v1/admin/users
// @Summary List users
// @Description Newest first, cursor paginated.
// @Tags admin
// @Produce json
// @Security AdminToken
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.UserListResponse
// @Failure 401 {object} problem.Problem
// @Failure 403 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	limit, cursor, fieldErrors := parsePaging(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	resp, err := h.service.ListUsers(r.Context(), domain.UserFilter{Limit: limit, Cursor: cursor})
	if err != nil {
		problem.InternalError("Failed to list users").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// UpdateMembership handles PATCH /v1/admin/users/{userId}
// @Summary Change membership or role
// @Tags admin
// @Accept json
// @Produce json
// @Security AdminToken
// @Param userId path string true "User ID" format(uuid)
// @Param request body domain.UpdateMembershipRequest true "Fields to change"
// @Success 200 {object} domain.UserResponse
// @Failure 400 {object} problem.Problem
// @Failure 401 {object} problem.Problem
// @Failure 403 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /admin/users/{userId} [patch]
func (h *AdminHandler) UpdateMembership(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	var req domain.UpdateMembershipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}
	if req.Membership == nil && req.Role == nil {
		problem.ValidationError("Nothing to update", []problem.FieldError{{
			Field:   "membership",
			Message: "membership or role is required",
		}}).Write(w)
		return
	}

	user, err := h.service.UpdateMembership(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to update user").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, user.ToResponse())
}

// Stats handles GET /v1/admin/stats
// @Summary Service statistics
// @Tags admin
// @Produce json
// @Security AdminToken
// @Success 200 {object} domain.StatsResponse
// @Failure 401 {object} problem.Problem
// @Failure 403 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /admin/stats [get]
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		problem.InternalError("Failed to compute stats").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
