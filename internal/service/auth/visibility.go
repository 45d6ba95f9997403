package auth

import (
	"workboard/internal/domain/repositories"
	"workboard/internal/domain/services"
)

// Visibility builds the scope filters that every list operation runs
// through. Its predicates mirror the read rules of the policy table:
//
//	boards: owner == user OR EXISTS task WHERE task.assignee == user
//	tasks:  task.board.owner == user OR task.assignee == user
type Visibility struct{}

// NewVisibility creates the visibility scoper
func NewVisibility() services.VisibilityScoper {
	return Visibility{}
}

func (Visibility) Boards(userID string) repositories.BoardFilter {
	return repositories.BoardFilter{VisibleTo: userID}
}

func (Visibility) Tasks(userID string) repositories.TaskFilter {
	return repositories.TaskFilter{VisibleTo: userID}
}

func (Visibility) BoardTasks(userID string, boardIDs []string) repositories.TaskFilter {
	return repositories.TaskFilter{VisibleTo: userID, BoardIDs: nonNil(boardIDs)}
}

// AssignedTasks intersects the visible tasks with the user's assignments,
// which for an assignee is exactly the set of tasks assigned to them.
func (Visibility) AssignedTasks(userID string) repositories.TaskFilter {
	return repositories.TaskFilter{VisibleTo: userID, AssignedTo: userID}
}

func (Visibility) AssignedBoards(userID string) repositories.BoardFilter {
	return repositories.BoardFilter{VisibleTo: userID, AssignedTo: userID}
}

func (Visibility) AssignedBoardTasks(userID string, boardIDs []string) repositories.TaskFilter {
	return repositories.TaskFilter{VisibleTo: userID, AssignedTo: userID, BoardIDs: nonNil(boardIDs)}
}

// nonNil keeps "no boards" from widening into "any board".
func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
