package handler

import (
	"log/slog"
	"net/http"

	"workboard/internal/domain/services"
	"workboard/internal/httputil"
)

// UserHandler handles user profile and assignment HTTP requests
type UserHandler struct {
	userService services.UserService
	logger      *slog.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService services.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// ListUsers lists every user, e.g. for assignee pickers
// GET /api/users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context(), httputil.GetUserID(r))
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, newUserResponses(users))
}

// GetUser retrieves a user profile; "me" is the caller
// GET /api/users/{id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.GetUser(r.Context(), httputil.GetUserID(r), r.PathValue("id"))
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, newUserResponse(user))
}

// Assignments lists the tasks assigned to the caller
// GET /api/users/{id}/assignments
func (h *UserHandler) Assignments(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.userService.UserAssignments(r.Context(), httputil.GetUserID(r), r.PathValue("id"))
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, newTaskResponses(tasks))
}

// AssignedBoards lists boards holding the caller's assignments
// GET /api/users/{id}/assigned-boards
func (h *UserHandler) AssignedBoards(w http.ResponseWriter, r *http.Request) {
	boards, err := h.userService.UserAssignedBoards(r.Context(), httputil.GetUserID(r), r.PathValue("id"))
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, newBoardResponses(boards))
}
