package models

import "workboard/internal/domain"

// Operation is an action an identity attempts on a resource.
type Operation string

const (
	OpCreate Operation = "create"
	OpRead   Operation = "read"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// ResourceType identifies the kind of resource being authorized.
type ResourceType string

const (
	ResourceBoard       ResourceType = "board"
	ResourceTask        ResourceType = "task"
	ResourceAssignments ResourceType = "assignments"
)

// Resource holds the relationship facts the authorization policy needs.
// OwnerID is always the owner of the board involved (the board itself, or
// the board a task lives on).
type Resource struct {
	Type        ResourceType
	ID          string
	OwnerID     string
	CreatorID   string
	AssigneeIDs []string
}

// BoardResource describes a board together with the assignees of its tasks.
func BoardResource(board *Board, assigneeIDs []string) Resource {
	return Resource{
		Type:        ResourceBoard,
		ID:          board.ID,
		OwnerID:     board.OwnerID,
		AssigneeIDs: assigneeIDs,
	}
}

// NewBoardResource describes a board that does not exist yet.
func NewBoardResource() Resource {
	return Resource{Type: ResourceBoard}
}

// TaskResource describes an existing task on a board owned by boardOwnerID.
func TaskResource(task *Task, boardOwnerID string) Resource {
	res := Resource{
		Type:      ResourceTask,
		ID:        task.ID,
		OwnerID:   boardOwnerID,
		CreatorID: task.CreatedBy,
	}
	if task.AssigneeID != nil {
		res.AssigneeIDs = []string{*task.AssigneeID}
	}
	return res
}

// NewTaskResource describes a task about to be placed on board.
func NewTaskResource(board *Board) Resource {
	return Resource{
		Type:    ResourceTask,
		OwnerID: board.OwnerID,
	}
}

// AssignmentsResource describes the assignment views of a user.
func AssignmentsResource(userID string) Resource {
	return Resource{
		Type:    ResourceAssignments,
		ID:      userID,
		OwnerID: userID,
	}
}

// HasAssignee reports whether userID is among the resource's assignees.
func (r Resource) HasAssignee(userID string) bool {
	for _, id := range r.AssigneeIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// Decision is the outcome of an authorization check.
type Decision struct {
	Allowed bool
	Reason  domain.DenyReason
}

// Allow is the decision granting access.
func Allow() Decision {
	return Decision{Allowed: true}
}

// Deny is a decision refusing access for reason.
func Deny(reason domain.DenyReason) Decision {
	return Decision{Reason: reason}
}

// Err converts a denial into an *domain.AccessDeniedError; nil when allowed.
func (d Decision) Err(res Resource) error {
	if d.Allowed {
		return nil
	}
	return &domain.AccessDeniedError{
		Reason:     d.Reason,
		Resource:   string(res.Type),
		ResourceID: res.ID,
	}
}
