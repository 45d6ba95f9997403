package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"workboard/internal/config"
	"workboard/internal/domain"
	"workboard/internal/domain/models"
	"workboard/internal/domain/repositories"
	"workboard/internal/domain/services"
)

type taskService struct {
	taskRepo  repositories.TaskRepository
	boardRepo repositories.BoardRepository
	userRepo  repositories.UserRepository
	txManager repositories.TransactionManager
	authz     services.ResourceAuthorizer
	scope     services.VisibilityScoper
	hydrate   *hydrator
	logger    *slog.Logger
}

// NewTaskService creates a new task service
func NewTaskService(
	taskRepo repositories.TaskRepository,
	boardRepo repositories.BoardRepository,
	userRepo repositories.UserRepository,
	txManager repositories.TransactionManager,
	authz services.ResourceAuthorizer,
	scope services.VisibilityScoper,
	logger *slog.Logger,
) services.TaskService {
	return &taskService{
		taskRepo:  taskRepo,
		boardRepo: boardRepo,
		userRepo:  userRepo,
		txManager: txManager,
		authz:     authz,
		scope:     scope,
		hydrate:   &hydrator{users: userRepo},
		logger:    logger,
	}
}

// CreateTask places a new task on a board owned by the caller
func (s *taskService) CreateTask(ctx context.Context, userID string, req *services.CreateTaskRequest) (*models.TaskDetail, error) {
	if err := requireIdentity(userID); err != nil {
		return nil, err
	}

	r := *req
	r.Title = strings.TrimSpace(r.Title)
	if r.Status == "" {
		r.Status = string(models.TaskStatusToDo)
	}
	if err := validateCreateTask(&r); err != nil {
		return nil, err
	}

	board, err := s.boardRepo.GetByID(ctx, r.BoardID)
	if err != nil {
		return nil, err
	}

	res := models.NewTaskResource(board)
	if err := s.authz.Authorize(userID, models.OpCreate, res).Err(res); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	task := &models.Task{
		Title:       r.Title,
		Description: r.Description,
		Status:      models.TaskStatus(r.Status),
		BoardID:     board.ID,
		AssigneeID:  r.AssigneeID,
		CreatedBy:   userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		// Hold the board until commit and re-check ownership against the
		// locked row; a concurrent delete either waits or wins outright.
		locked, err := s.boardRepo.GetForShare(txCtx, board.ID)
		if err != nil {
			return err
		}
		res := models.NewTaskResource(locked)
		if err := s.authz.Authorize(userID, models.OpCreate, res).Err(res); err != nil {
			return err
		}

		if err := s.checkAssignee(txCtx, r.AssigneeID); err != nil {
			return err
		}

		return s.taskRepo.Create(txCtx, task)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("task created",
		"id", task.ID,
		"board_id", task.BoardID,
		"assignee_id", task.AssigneeID,
		"user_id", userID,
	)

	return s.detail(ctx, task)
}

// GetTask retrieves a task in the caller's scope
func (s *taskService) GetTask(ctx context.Context, userID, taskID string) (*models.TaskDetail, error) {
	if err := requireIdentity(userID); err != nil {
		return nil, err
	}
	if !isUUID(taskID) {
		return nil, fmt.Errorf("task %s: %w", taskID, domain.ErrNotFound)
	}

	task, board, err := s.load(ctx, taskID)
	if err != nil {
		return nil, err
	}

	res := models.TaskResource(task, board.OwnerID)
	if !s.authz.Authorize(userID, models.OpRead, res).Allowed {
		return nil, fmt.Errorf("task %s: %w", taskID, domain.ErrNotFound)
	}

	return s.detail(ctx, task)
}

// ListTasks retrieves every task the caller may see, newest first
func (s *taskService) ListTasks(ctx context.Context, userID string) ([]models.TaskDetail, error) {
	if err := requireIdentity(userID); err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.List(ctx, s.scope.Tasks(userID))
	if err != nil {
		return nil, err
	}

	return s.hydrate.tasks(ctx, tasks)
}

// UpdateTask applies a partial update
func (s *taskService) UpdateTask(ctx context.Context, userID, taskID string, req *services.UpdateTaskRequest) (*models.TaskDetail, error) {
	if err := requireIdentity(userID); err != nil {
		return nil, err
	}

	r := *req
	r.Title = trimmed(r.Title)
	if r.ClearAssignee {
		r.AssigneeID = nil
	}
	if err := validateUpdateTask(&r); err != nil {
		return nil, err
	}
	if !isUUID(taskID) {
		return nil, fmt.Errorf("task %s: %w", taskID, domain.ErrNotFound)
	}

	var task *models.Task
	err := s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		var (
			board *models.Board
			err   error
		)
		task, board, err = s.load(txCtx, taskID)
		if err != nil {
			return err
		}

		res := models.TaskResource(task, board.OwnerID)
		if err := s.authz.Authorize(userID, models.OpUpdate, res).Err(res); err != nil {
			return err
		}

		if r.BoardID != nil && *r.BoardID != task.BoardID {
			return domain.NewValidationError("board", "cannot be changed")
		}

		if err := s.checkAssignee(txCtx, r.AssigneeID); err != nil {
			return err
		}

		if r.Title != nil {
			task.Title = *r.Title
		}
		if r.Description != nil {
			task.Description = *r.Description
		}
		if r.Status != nil {
			task.Status = models.TaskStatus(*r.Status)
		}
		if r.ClearAssignee {
			task.AssigneeID = nil
		} else if r.AssigneeID != nil {
			task.AssigneeID = r.AssigneeID
		}
		task.UpdatedAt = touch(task.CreatedAt, time.Now().UTC())

		return s.taskRepo.Update(txCtx, task)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("task updated",
		"id", task.ID,
		"status", task.Status,
		"assignee_id", task.AssigneeID,
		"user_id", userID,
	)

	return s.detail(ctx, task)
}

// DeleteTask removes a task from a board the caller owns
func (s *taskService) DeleteTask(ctx context.Context, userID, taskID string) error {
	if err := requireIdentity(userID); err != nil {
		return err
	}
	if !isUUID(taskID) {
		return fmt.Errorf("task %s: %w", taskID, domain.ErrNotFound)
	}

	err := s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		task, board, err := s.load(txCtx, taskID)
		if err != nil {
			return err
		}

		res := models.TaskResource(task, board.OwnerID)
		if err := s.authz.Authorize(userID, models.OpDelete, res).Err(res); err != nil {
			return err
		}

		return s.taskRepo.Delete(txCtx, task.ID)
	})
	if err != nil {
		return err
	}

	s.logger.Info("task deleted", "id", taskID, "user_id", userID)
	return nil
}

// load fetches a task and the board it lives on
func (s *taskService) load(ctx context.Context, taskID string) (*models.Task, *models.Board, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, nil, err
	}

	board, err := s.boardRepo.GetByID(ctx, task.BoardID)
	if err != nil {
		return nil, nil, fmt.Errorf("board of task %s: %w", taskID, err)
	}
	return task, board, nil
}

// checkAssignee requires a referenced assignee to exist. A delete racing
// past it still fails on the foreign key, which repositories report the
// same way.
func (s *taskService) checkAssignee(ctx context.Context, assigneeID *string) error {
	if assigneeID == nil {
		return nil
	}
	if _, err := s.userRepo.GetByID(ctx, *assigneeID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.UnknownAssigneeError()
		}
		return err
	}
	return nil
}

func (s *taskService) detail(ctx context.Context, task *models.Task) (*models.TaskDetail, error) {
	details, err := s.hydrate.tasks(ctx, []models.Task{*task})
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

func validateCreateTask(req *services.CreateTaskRequest) error {
	return validationFailed(validation.ValidateStruct(req,
		validation.Field(&req.BoardID, validation.Required, is.UUID),
		validation.Field(&req.Title,
			validation.Required,
			validation.RuneLength(1, config.MaxTaskTitleLength),
		),
		validation.Field(&req.Description, validation.RuneLength(0, config.MaxDescriptionLength)),
		validation.Field(&req.Status, validation.Required, statusRule),
		validation.Field(&req.AssigneeID, is.UUID),
	))
}

func validateUpdateTask(req *services.UpdateTaskRequest) error {
	return validationFailed(validation.ValidateStruct(req,
		validation.Field(&req.Title,
			validation.NilOrNotEmpty,
			validation.RuneLength(1, config.MaxTaskTitleLength),
		),
		validation.Field(&req.Description, validation.RuneLength(0, config.MaxDescriptionLength)),
		validation.Field(&req.Status, validation.NilOrNotEmpty, statusRule),
		validation.Field(&req.AssigneeID, is.UUID),
		validation.Field(&req.BoardID, is.UUID),
	))
}
