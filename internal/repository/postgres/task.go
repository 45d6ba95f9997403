package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"workboard/internal/domain"
	"workboard/internal/domain/models"
	"workboard/internal/domain/repositories"
)

const taskColumns = `t.id, t.title, t.description, t.status, t.board_id, t.assignee_id, t.created_by, t.created_at, t.updated_at`

// PostgresTaskRepository implements the TaskRepository interface
type PostgresTaskRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
	logger *slog.Logger
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(config *RepositoryConfig) repositories.TaskRepository {
	return &PostgresTaskRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// Create creates a new task
func (r *PostgresTaskRepository) Create(ctx context.Context, task *models.Task) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (title, description, status, board_id, assignee_id, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`, r.tables.Tasks)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		task.Title,
		task.Description,
		task.Status,
		task.BoardID,
		task.AssigneeID,
		task.CreatedBy,
		task.CreatedAt,
		task.UpdatedAt,
	).Scan(&task.ID, &task.CreatedAt, &task.UpdatedAt)

	if err != nil {
		if IsPgForeignKeyError(err) {
			if PgConstraintColumn(err) == "assignee_id" {
				return domain.UnknownAssigneeError()
			}
			// Board vanished under a concurrent delete
			return fmt.Errorf("task references: %w", domain.ErrNotFound)
		}
		return fmt.Errorf("create task: %w", err)
	}

	return nil
}

// GetByID retrieves a task by ID
func (r *PostgresTaskRepository) GetByID(ctx context.Context, id string) (*models.Task, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s t WHERE t.id = $1`, taskColumns, r.tables.Tasks)

	executor := GetExecutor(ctx, r.pool)
	task, err := scanTask(executor.QueryRow(ctx, query, id))
	if err != nil {
		if IsPgNoRowsError(err) || IsPgInvalidTextError(err) {
			return nil, fmt.Errorf("task %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get task: %w", err)
	}

	return task, nil
}

// List retrieves tasks matching the filter, newest first
func (r *PostgresTaskRepository) List(ctx context.Context, filter repositories.TaskFilter) ([]models.Task, error) {
	where, err := taskWhere(filter)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s t
		JOIN %s b ON b.id = t.board_id
		%s
		ORDER BY t.created_at DESC, t.id
	`, taskColumns, r.tables.Tasks, r.tables.Boards, where)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, where.args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, *task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}

	return tasks, nil
}

// ListAssigneeIDs returns the distinct assignees of a board's tasks
func (r *PostgresTaskRepository) ListAssigneeIDs(ctx context.Context, boardID string) ([]string, error) {
	query := fmt.Sprintf(`
		SELECT DISTINCT assignee_id::text
		FROM %s
		WHERE board_id = $1 AND assignee_id IS NOT NULL
	`, r.tables.Tasks)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, boardID)
	if err != nil {
		return nil, fmt.Errorf("list assignees: %w", err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("collect assignees: %w", err)
	}
	return ids, nil
}

// Update updates a task's mutable fields. board_id and created_by never change.
func (r *PostgresTaskRepository) Update(ctx context.Context, task *models.Task) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET title = $1, description = $2, status = $3, assignee_id = $4, updated_at = $5
		WHERE id = $6
	`, r.tables.Tasks)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query,
		task.Title,
		task.Description,
		task.Status,
		task.AssigneeID,
		task.UpdatedAt,
		task.ID,
	)
	if err != nil {
		// assignee_id is the only reference an update can change
		if IsPgForeignKeyError(err) {
			return domain.UnknownAssigneeError()
		}
		return fmt.Errorf("update task: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("task %s: %w", task.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a task
func (r *PostgresTaskRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.tables.Tasks)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("task %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// DeleteByBoard removes every task on a board
func (r *PostgresTaskRepository) DeleteByBoard(ctx context.Context, boardID string) (int64, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE board_id = $1`, r.tables.Tasks)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, boardID)
	if err != nil {
		return 0, fmt.Errorf("delete board tasks: %w", err)
	}

	return result.RowsAffected(), nil
}

func scanTask(row pgx.Row) (*models.Task, error) {
	var task models.Task
	err := row.Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.Status,
		&task.BoardID,
		&task.AssigneeID,
		&task.CreatedBy,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &task, nil
}
