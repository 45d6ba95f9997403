package repositories

import (
	"context"

	"workboard/internal/domain/models"
)

// UserRepository defines read access to identities plus the writes the
// seeder needs.
type UserRepository interface {
	// Create inserts a user and fills in its generated ID
	Create(ctx context.Context, user *models.User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (*models.User, error)

	// GetByUsername retrieves a user by unique username
	GetByUsername(ctx context.Context, username string) (*models.User, error)

	// GetByIDs resolves many users at once, keyed by ID. Unknown IDs are absent.
	GetByIDs(ctx context.Context, ids []string) (map[string]*models.User, error)

	// List retrieves all users ordered by username
	List(ctx context.Context) ([]models.User, error)
}
