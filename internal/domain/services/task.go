package services

import (
	"context"

	"workboard/internal/domain/models"
)

// CreateTaskRequest represents a request to create a task
type CreateTaskRequest struct {
	BoardID     string  `json:"board"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	AssigneeID  *string `json:"assignee_id"`
}

// UpdateTaskRequest is a partial update; nil fields are left unchanged.
// ClearAssignee unassigns the task and wins over AssigneeID. BoardID may
// only repeat the task's current board.
type UpdateTaskRequest struct {
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	Status        *string `json:"status"`
	AssigneeID    *string `json:"assignee_id"`
	ClearAssignee bool    `json:"-"`
	BoardID       *string `json:"board"`
}

// TaskService defines business logic operations for tasks
type TaskService interface {
	// CreateTask places a task on a board the user owns
	CreateTask(ctx context.Context, userID string, req *CreateTaskRequest) (*models.TaskDetail, error)

	// GetTask retrieves a task the user may read; others are not found
	GetTask(ctx context.Context, userID, taskID string) (*models.TaskDetail, error)

	// ListTasks retrieves every task in the user's scope
	ListTasks(ctx context.Context, userID string) ([]models.TaskDetail, error)

	// UpdateTask applies a partial update (creator, board owner or assignee)
	UpdateTask(ctx context.Context, userID, taskID string, req *UpdateTaskRequest) (*models.TaskDetail, error)

	// DeleteTask removes a task (board owner only)
	DeleteTask(ctx context.Context, userID, taskID string) error
}
