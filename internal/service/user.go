package service

import (
	"context"
	"fmt"
	"log/slog"

	"workboard/internal/domain"
	"workboard/internal/domain/models"
	"workboard/internal/domain/repositories"
	"workboard/internal/domain/services"
)

// MeAlias names the calling user in user routes
const MeAlias = "me"

type userService struct {
	userRepo  repositories.UserRepository
	boardRepo repositories.BoardRepository
	taskRepo  repositories.TaskRepository
	authz     services.ResourceAuthorizer
	scope     services.VisibilityScoper
	hydrate   *hydrator
	logger    *slog.Logger
}

// NewUserService creates a new user service
func NewUserService(
	userRepo repositories.UserRepository,
	boardRepo repositories.BoardRepository,
	taskRepo repositories.TaskRepository,
	authz services.ResourceAuthorizer,
	scope services.VisibilityScoper,
	logger *slog.Logger,
) services.UserService {
	return &userService{
		userRepo:  userRepo,
		boardRepo: boardRepo,
		taskRepo:  taskRepo,
		authz:     authz,
		scope:     scope,
		hydrate:   &hydrator{users: userRepo},
		logger:    logger,
	}
}

func (s *userService) ListUsers(ctx context.Context, userID string) ([]models.User, error) {
	if err := requireIdentity(userID); err != nil {
		return nil, err
	}
	return s.userRepo.List(ctx)
}

func (s *userService) GetUser(ctx context.Context, userID, targetID string) (*models.User, error) {
	if err := requireIdentity(userID); err != nil {
		return nil, err
	}

	targetID = resolveMe(userID, targetID)
	if !isUUID(targetID) {
		return nil, fmt.Errorf("user %s: %w", targetID, domain.ErrNotFound)
	}
	return s.userRepo.GetByID(ctx, targetID)
}

// UserAssignments lists the caller's assigned tasks. Asking for anyone
// else's is denied without looking them up.
func (s *userService) UserAssignments(ctx context.Context, userID, targetID string) ([]models.TaskDetail, error) {
	if err := s.authorizeAssignments(userID, targetID); err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.List(ctx, s.scope.AssignedTasks(userID))
	if err != nil {
		return nil, err
	}

	return s.hydrate.tasks(ctx, tasks)
}

// UserAssignedBoards lists boards holding the caller's assignments, each
// embedding only those assigned tasks.
func (s *userService) UserAssignedBoards(ctx context.Context, userID, targetID string) ([]models.BoardDetail, error) {
	if err := s.authorizeAssignments(userID, targetID); err != nil {
		return nil, err
	}

	boards, err := s.boardRepo.List(ctx, s.scope.AssignedBoards(userID))
	if err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.List(ctx, s.scope.AssignedBoardTasks(userID, boardIDs(boards)))
	if err != nil {
		return nil, err
	}

	return s.hydrate.boards(ctx, boards, tasks)
}

func (s *userService) authorizeAssignments(userID, targetID string) error {
	if err := requireIdentity(userID); err != nil {
		return err
	}
	res := models.AssignmentsResource(resolveMe(userID, targetID))
	return s.authz.Authorize(userID, models.OpRead, res).Err(res)
}

func resolveMe(userID, targetID string) string {
	if targetID == MeAlias {
		return userID
	}
	return targetID
}
