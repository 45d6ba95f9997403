package repositories

import (
	"context"

	"workboard/internal/domain/models"
)

// TaskRepository defines data access operations for tasks
type TaskRepository interface {
	// Create inserts a task and fills in its generated ID and timestamps
	Create(ctx context.Context, task *models.Task) error

	// GetByID retrieves a task by ID without any scoping
	GetByID(ctx context.Context, id string) (*models.Task, error)

	// List retrieves tasks matching filter, newest first
	List(ctx context.Context, filter TaskFilter) ([]models.Task, error)

	// ListAssigneeIDs returns the distinct assignees of tasks on a board
	ListAssigneeIDs(ctx context.Context, boardID string) ([]string, error)

	// Update persists title, description, status, assignee and updated_at
	Update(ctx context.Context, task *models.Task) error

	// Delete removes a task
	Delete(ctx context.Context, id string) error

	// DeleteByBoard removes every task on a board and returns how many were removed
	DeleteByBoard(ctx context.Context, boardID string) (int64, error)
}
