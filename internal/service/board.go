package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"workboard/internal/config"
	"workboard/internal/domain"
	"workboard/internal/domain/models"
	"workboard/internal/domain/repositories"
	"workboard/internal/domain/services"
)

type boardService struct {
	boardRepo repositories.BoardRepository
	taskRepo  repositories.TaskRepository
	txManager repositories.TransactionManager
	authz     services.ResourceAuthorizer
	scope     services.VisibilityScoper
	hydrate   *hydrator
	logger    *slog.Logger
}

// NewBoardService creates a new board service
func NewBoardService(
	boardRepo repositories.BoardRepository,
	taskRepo repositories.TaskRepository,
	userRepo repositories.UserRepository,
	txManager repositories.TransactionManager,
	authz services.ResourceAuthorizer,
	scope services.VisibilityScoper,
	logger *slog.Logger,
) services.BoardService {
	return &boardService{
		boardRepo: boardRepo,
		taskRepo:  taskRepo,
		txManager: txManager,
		authz:     authz,
		scope:     scope,
		hydrate:   &hydrator{users: userRepo},
		logger:    logger,
	}
}

// CreateBoard creates a board owned by the caller
func (s *boardService) CreateBoard(ctx context.Context, userID string, req *services.CreateBoardRequest) (*models.BoardDetail, error) {
	if err := requireIdentity(userID); err != nil {
		return nil, err
	}

	r := *req
	r.Name = strings.TrimSpace(r.Name)
	if err := validateCreateBoard(&r); err != nil {
		return nil, err
	}

	res := models.NewBoardResource()
	if err := s.authz.Authorize(userID, models.OpCreate, res).Err(res); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	board := &models.Board{
		Name:        r.Name,
		Description: r.Description,
		OwnerID:     userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.boardRepo.Create(ctx, board); err != nil {
		return nil, err
	}

	s.logger.Info("board created",
		"id", board.ID,
		"name", board.Name,
		"owner_id", userID,
	)

	return s.detail(ctx, userID, board)
}

// GetBoard retrieves a board in the caller's scope
func (s *boardService) GetBoard(ctx context.Context, userID, boardID string) (*models.BoardDetail, error) {
	if err := requireIdentity(userID); err != nil {
		return nil, err
	}
	if !isUUID(boardID) {
		return nil, fmt.Errorf("board %s: %w", boardID, domain.ErrNotFound)
	}

	board, err := s.boardRepo.GetByID(ctx, boardID)
	if err != nil {
		return nil, err
	}

	assignees, err := s.taskRepo.ListAssigneeIDs(ctx, board.ID)
	if err != nil {
		return nil, err
	}

	// Boards outside the caller's scope do not exist for them
	res := models.BoardResource(board, assignees)
	if !s.authz.Authorize(userID, models.OpRead, res).Allowed {
		return nil, fmt.Errorf("board %s: %w", boardID, domain.ErrNotFound)
	}

	return s.detail(ctx, userID, board)
}

// ListBoards retrieves the caller's boards, newest first
func (s *boardService) ListBoards(ctx context.Context, userID string) ([]models.BoardDetail, error) {
	if err := requireIdentity(userID); err != nil {
		return nil, err
	}

	boards, err := s.boardRepo.List(ctx, s.scope.Boards(userID))
	if err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.List(ctx, s.scope.BoardTasks(userID, boardIDs(boards)))
	if err != nil {
		return nil, err
	}

	return s.hydrate.boards(ctx, boards, tasks)
}

// UpdateBoard renames or re-describes a board
func (s *boardService) UpdateBoard(ctx context.Context, userID, boardID string, req *services.UpdateBoardRequest) (*models.BoardDetail, error) {
	if err := requireIdentity(userID); err != nil {
		return nil, err
	}

	r := *req
	r.Name = trimmed(r.Name)
	if err := validateUpdateBoard(&r); err != nil {
		return nil, err
	}
	if !isUUID(boardID) {
		return nil, fmt.Errorf("board %s: %w", boardID, domain.ErrNotFound)
	}

	var board *models.Board
	err := s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		var err error
		board, err = s.boardRepo.GetByID(txCtx, boardID)
		if err != nil {
			return err
		}

		res := models.BoardResource(board, nil)
		if err := s.authz.Authorize(userID, models.OpUpdate, res).Err(res); err != nil {
			return err
		}

		if r.Name != nil {
			board.Name = *r.Name
		}
		if r.Description != nil {
			board.Description = *r.Description
		}
		board.UpdatedAt = touch(board.CreatedAt, time.Now().UTC())

		return s.boardRepo.Update(txCtx, board)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("board updated",
		"id", board.ID,
		"name", board.Name,
		"user_id", userID,
	)

	return s.detail(ctx, userID, board)
}

// DeleteBoard removes a board and every task on it in one transaction
func (s *boardService) DeleteBoard(ctx context.Context, userID, boardID string) error {
	if err := requireIdentity(userID); err != nil {
		return err
	}
	if !isUUID(boardID) {
		return fmt.Errorf("board %s: %w", boardID, domain.ErrNotFound)
	}

	var removed int64
	err := s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		board, err := s.boardRepo.GetByID(txCtx, boardID)
		if err != nil {
			return err
		}

		res := models.BoardResource(board, nil)
		if err := s.authz.Authorize(userID, models.OpDelete, res).Err(res); err != nil {
			return err
		}

		removed, err = s.taskRepo.DeleteByBoard(txCtx, board.ID)
		if err != nil {
			return err
		}

		return s.boardRepo.Delete(txCtx, board.ID)
	})
	if err != nil {
		return err
	}

	s.logger.Info("board deleted",
		"id", boardID,
		"tasks_removed", removed,
		"user_id", userID,
	)

	return nil
}

// detail hydrates a single board with the tasks the caller may see
func (s *boardService) detail(ctx context.Context, userID string, board *models.Board) (*models.BoardDetail, error) {
	tasks, err := s.taskRepo.List(ctx, s.scope.BoardTasks(userID, []string{board.ID}))
	if err != nil {
		return nil, err
	}

	details, err := s.hydrate.boards(ctx, []models.Board{*board}, tasks)
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

func validateCreateBoard(req *services.CreateBoardRequest) error {
	return validationFailed(validation.ValidateStruct(req,
		validation.Field(&req.Name,
			validation.Required,
			validation.RuneLength(1, config.MaxBoardNameLength),
		),
		validation.Field(&req.Description, validation.RuneLength(0, config.MaxDescriptionLength)),
	))
}

func validateUpdateBoard(req *services.UpdateBoardRequest) error {
	return validationFailed(validation.ValidateStruct(req,
		validation.Field(&req.Name,
			validation.NilOrNotEmpty,
			validation.RuneLength(1, config.MaxBoardNameLength),
		),
		validation.Field(&req.Description, validation.RuneLength(0, config.MaxDescriptionLength)),
	))
}
