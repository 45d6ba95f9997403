package handler

import (
	"log/slog"
	"net/http"

	"workboard/internal/domain/services"
	"workboard/internal/httputil"
)

// AuthHandler exchanges credentials for bearer tokens
type AuthHandler struct {
	identityService services.IdentityService
	logger          *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(identityService services.IdentityService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		identityService: identityService,
		logger:          logger,
	}
}

// Login verifies a username and password
// POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req services.LoginRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		badBody(w)
		return
	}

	result, err := h.identityService.Login(r.Context(), &req)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, result)
}
