package sqlite

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"workboard/internal/domain"
	"workboard/internal/domain/models"
	"workboard/internal/domain/repositories"
)

// TaskRepository implements repositories.TaskRepository on gorm
type TaskRepository struct {
	db     *gorm.DB
	tables *TableNames
	logger *slog.Logger
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(config *RepositoryConfig) repositories.TaskRepository {
	return &TaskRepository{db: config.DB, tables: config.Tables, logger: config.Logger}
}

func (r *TaskRepository) Create(ctx context.Context, task *models.Task) error {
	rec := taskFromModel(task)
	if err := conn(ctx, r.db).Omit(clause.Associations).Create(rec).Error; err != nil {
		if isForeignKey(err) {
			return fmt.Errorf("task references: %w", domain.ErrNotFound)
		}
		return fmt.Errorf("create task: %w", err)
	}
	task.ID = rec.ID
	return nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id string) (*models.Task, error) {
	var rec TaskRecord
	if err := conn(ctx, r.db).Where("id = ?", id).Take(&rec).Error; err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("task %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	task := rec.toModel()
	return &task, nil
}

func (r *TaskRepository) List(ctx context.Context, filter repositories.TaskFilter) ([]models.Task, error) {
	base := conn(ctx, r.db).
		Table(r.tables.Tasks + " AS t").
		Joins("JOIN " + r.tables.Boards + " AS b ON b.id = t.board_id")
	q, err := scopeTasks(base, filter)
	if err != nil {
		return nil, err
	}
	if filter.BoardIDs != nil && len(filter.BoardIDs) == 0 {
		return []models.Task{}, nil
	}

	var recs []TaskRecord
	if err := q.Select("t.*").Order("t.created_at DESC, t.id").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	tasks := make([]models.Task, 0, len(recs))
	for i := range recs {
		tasks = append(tasks, recs[i].toModel())
	}
	return tasks, nil
}

func (r *TaskRepository) ListAssigneeIDs(ctx context.Context, boardID string) ([]string, error) {
	var ids []string
	err := conn(ctx, r.db).Model(&TaskRecord{}).
		Where("board_id = ? AND assignee_id IS NOT NULL", boardID).
		Distinct("assignee_id").
		Pluck("assignee_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("list assignees: %w", err)
	}
	return ids, nil
}

func (r *TaskRepository) Update(ctx context.Context, task *models.Task) error {
	result := conn(ctx, r.db).Model(&TaskRecord{}).Where("id = ?", task.ID).Updates(map[string]interface{}{
		"title":       task.Title,
		"description": task.Description,
		"status":      string(task.Status),
		"assignee_id": task.AssigneeID,
		"updated_at":  task.UpdatedAt,
	})
	if result.Error != nil {
		// assignee_id is the only reference an update can change
		if isForeignKey(result.Error) {
			return domain.UnknownAssigneeError()
		}
		return fmt.Errorf("update task: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("task %s: %w", task.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	result := conn(ctx, r.db).Where("id = ?", id).Delete(&TaskRecord{})
	if result.Error != nil {
		return fmt.Errorf("delete task: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("task %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *TaskRepository) DeleteByBoard(ctx context.Context, boardID string) (int64, error) {
	result := conn(ctx, r.db).Where("board_id = ?", boardID).Delete(&TaskRecord{})
	if result.Error != nil {
		return 0, fmt.Errorf("delete board tasks: %w", result.Error)
	}
	return result.RowsAffected, nil
}
