package repositories

import (
	"context"

	"workboard/internal/domain/models"
)

// BoardRepository defines data access operations for boards
type BoardRepository interface {
	// Create inserts a board and fills in its generated ID and timestamps
	Create(ctx context.Context, board *models.Board) error

	// GetByID retrieves a board by ID without any scoping.
	// Callers must authorize the result before exposing it.
	GetByID(ctx context.Context, id string) (*models.Board, error)

	// GetForShare retrieves a board and, inside a transaction, holds a share
	// lock on its row until commit so a concurrent delete cannot interleave.
	GetForShare(ctx context.Context, id string) (*models.Board, error)

	// List retrieves boards matching filter, newest first
	List(ctx context.Context, filter BoardFilter) ([]models.Board, error)

	// Update persists name, description and updated_at
	Update(ctx context.Context, board *models.Board) error

	// Delete removes a board. Tasks are removed by the foreign key cascade.
	Delete(ctx context.Context, id string) error
}
