package services

import (
	"workboard/internal/domain/models"
	"workboard/internal/domain/repositories"
)

// ResourceAuthorizer decides whether an identity may perform an operation
// on a resource. Services call it after loading the target and before
// touching the store.
type ResourceAuthorizer interface {
	// Authorize evaluates the policy for (resource type, operation)
	Authorize(userID string, op models.Operation, res models.Resource) models.Decision
}

// VisibilityScoper computes the filters list operations must run through.
type VisibilityScoper interface {
	// Boards selects boards the user owns or holds an assignment on
	Boards(userID string) repositories.BoardFilter

	// Tasks selects tasks on boards the user owns or assigned to the user
	Tasks(userID string) repositories.TaskFilter

	// BoardTasks selects the visible tasks of the given boards
	BoardTasks(userID string, boardIDs []string) repositories.TaskFilter

	// AssignedTasks selects tasks assigned to the user
	AssignedTasks(userID string) repositories.TaskFilter

	// AssignedBoards selects boards holding a task assigned to the user
	AssignedBoards(userID string) repositories.BoardFilter

	// AssignedBoardTasks selects the user's assigned tasks on the given boards
	AssignedBoardTasks(userID string, boardIDs []string) repositories.TaskFilter
}
