package postgres

import (
	"fmt"
	"strings"

	"workboard/internal/domain/repositories"
)

// whereClause accumulates ANDed conditions with positional arguments.
type whereClause struct {
	conds []string
	args  []interface{}
}

// arg registers a value and returns its placeholder
func (w *whereClause) arg(v interface{}) string {
	w.args = append(w.args, v)
	return fmt.Sprintf("$%d", len(w.args))
}

func (w *whereClause) add(cond string) {
	w.conds = append(w.conds, cond)
}

func (w *whereClause) String() string {
	if len(w.conds) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(w.conds, " AND ")
}

// boardWhere translates a board filter; the board table is aliased b.
func boardWhere(f repositories.BoardFilter, tables *TableNames) (*whereClause, error) {
	if !f.Scoped() {
		return nil, repositories.ErrUnscopedQuery
	}

	w := &whereClause{}
	if f.VisibleTo != "" {
		p := w.arg(f.VisibleTo)
		w.add(fmt.Sprintf(`(b.owner_id = %s OR EXISTS (
			SELECT 1 FROM %s t WHERE t.board_id = b.id AND t.assignee_id = %s))`, p, tables.Tasks, p))
	}
	if f.AssignedTo != "" {
		p := w.arg(f.AssignedTo)
		w.add(fmt.Sprintf(`EXISTS (SELECT 1 FROM %s t WHERE t.board_id = b.id AND t.assignee_id = %s)`, tables.Tasks, p))
	}
	return w, nil
}

// taskWhere translates a task filter; tasks are aliased t and joined to
// their board as b.
func taskWhere(f repositories.TaskFilter) (*whereClause, error) {
	if !f.Scoped() {
		return nil, repositories.ErrUnscopedQuery
	}

	w := &whereClause{}
	if f.VisibleTo != "" {
		p := w.arg(f.VisibleTo)
		w.add(fmt.Sprintf(`(b.owner_id = %s OR t.assignee_id = %s)`, p, p))
	}
	if f.AssignedTo != "" {
		w.add(fmt.Sprintf(`t.assignee_id = %s`, w.arg(f.AssignedTo)))
	}
	if f.BoardIDs != nil {
		w.add(fmt.Sprintf(`t.board_id = ANY(%s::uuid[])`, w.arg(f.BoardIDs)))
	}
	return w, nil
}
