package sqlite

import (
	"gorm.io/gorm"
	"workboard/internal/domain/repositories"
)

// scopeBoards applies a board filter to a query over boards aliased b
func scopeBoards(q *gorm.DB, f repositories.BoardFilter, tables *TableNames) (*gorm.DB, error) {
	if !f.Scoped() {
		return nil, repositories.ErrUnscopedQuery
	}

	assigned := "EXISTS (SELECT 1 FROM " + tables.Tasks + " t WHERE t.board_id = b.id AND t.assignee_id = ?)"
	if f.VisibleTo != "" {
		q = q.Where("(b.owner_id = ? OR "+assigned+")", f.VisibleTo, f.VisibleTo)
	}
	if f.AssignedTo != "" {
		q = q.Where(assigned, f.AssignedTo)
	}
	return q, nil
}

// scopeTasks applies a task filter to a query over tasks aliased t joined
// to their board as b
func scopeTasks(q *gorm.DB, f repositories.TaskFilter) (*gorm.DB, error) {
	if !f.Scoped() {
		return nil, repositories.ErrUnscopedQuery
	}

	if f.VisibleTo != "" {
		q = q.Where("(b.owner_id = ? OR t.assignee_id = ?)", f.VisibleTo, f.VisibleTo)
	}
	if f.AssignedTo != "" {
		q = q.Where("t.assignee_id = ?", f.AssignedTo)
	}
	if f.BoardIDs != nil {
		q = q.Where("t.board_id IN ?", f.BoardIDs)
	}
	return q, nil
}
