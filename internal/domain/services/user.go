package services

import (
	"context"
	"time"

	"workboard/internal/domain/models"
)

// LoginRequest carries password credentials
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResult is an issued access token
type LoginResult struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IdentityService authenticates credentials into access tokens
type IdentityService interface {
	// Login verifies username and password and issues a token
	Login(ctx context.Context, req *LoginRequest) (*LoginResult, error)
}

// UserService exposes user profiles and the per-user assignment views
type UserService interface {
	// ListUsers retrieves all users (for assignee pickers)
	ListUsers(ctx context.Context, userID string) ([]models.User, error)

	// GetUser retrieves a user profile; targetID "me" means userID
	GetUser(ctx context.Context, userID, targetID string) (*models.User, error)

	// UserAssignments retrieves tasks assigned to targetID. Only the user
	// themself may ask.
	UserAssignments(ctx context.Context, userID, targetID string) ([]models.TaskDetail, error)

	// UserAssignedBoards retrieves boards holding tasks assigned to targetID,
	// each embedding only those assigned tasks. Only the user themself may ask.
	UserAssignedBoards(ctx context.Context, userID, targetID string) ([]models.BoardDetail, error)
}
