package services

import (
	"context"

	"workboard/internal/domain/models"
)

// CreateBoardRequest represents a request to create a board
type CreateBoardRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateBoardRequest is a partial update; nil fields are left unchanged.
// Transport-agnostic: handlers map from httputil.OptionalString.
type UpdateBoardRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// BoardService defines business logic operations for boards
type BoardService interface {
	// CreateBoard creates a board owned by userID
	CreateBoard(ctx context.Context, userID string, req *CreateBoardRequest) (*models.BoardDetail, error)

	// GetBoard retrieves a board the user may read; out-of-scope boards are not found
	GetBoard(ctx context.Context, userID, boardID string) (*models.BoardDetail, error)

	// ListBoards retrieves every board in the user's scope
	ListBoards(ctx context.Context, userID string) ([]models.BoardDetail, error)

	// UpdateBoard changes a board's name or description (owner only)
	UpdateBoard(ctx context.Context, userID, boardID string, req *UpdateBoardRequest) (*models.BoardDetail, error)

	// DeleteBoard removes a board and all of its tasks (owner only)
	DeleteBoard(ctx context.Context, userID, boardID string) error
}
