package repositories

import "errors"

// ErrUnscopedQuery is returned by list operations called without a scope.
// Every enumeration must run through a visibility filter.
var ErrUnscopedQuery = errors.New("list query requires a visibility scope")

// BoardFilter restricts which boards a list query returns.
// At least one of VisibleTo or AssignedTo must be set; set fields are ANDed.
type BoardFilter struct {
	// VisibleTo selects boards owned by the user or containing a task
	// assigned to the user.
	VisibleTo string

	// AssignedTo selects boards containing a task assigned to the user.
	AssignedTo string
}

// Scoped reports whether the filter names an identity.
func (f BoardFilter) Scoped() bool {
	return f.VisibleTo != "" || f.AssignedTo != ""
}

// TaskFilter restricts which tasks a list query returns.
// At least one of VisibleTo or AssignedTo must be set; set fields are ANDed.
type TaskFilter struct {
	// VisibleTo selects tasks whose board the user owns or that are
	// assigned to the user.
	VisibleTo string

	// AssignedTo selects tasks assigned to the user.
	AssignedTo string

	// BoardIDs limits results to these boards. nil means any board;
	// an empty non-nil slice matches nothing.
	BoardIDs []string
}

// Scoped reports whether the filter names an identity.
func (f TaskFilter) Scoped() bool {
	return f.VisibleTo != "" || f.AssignedTo != ""
}
