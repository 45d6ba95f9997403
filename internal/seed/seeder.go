package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"workboard/internal/auth"
	"workboard/internal/domain"
	"workboard/internal/domain/models"
	"workboard/internal/domain/repositories"
	"workboard/internal/domain/services"
)

// Result counts what a seeding run created
type Result struct {
	Users  int
	Boards int
	Tasks  int
}

// Seeder creates fixture data. Users go straight to the repository;
// boards and tasks go through the services so the same validation and
// authorization apply as for API clients.
type Seeder struct {
	userRepo     repositories.UserRepository
	boardService services.BoardService
	taskService  services.TaskService
	logger       *slog.Logger
}

// NewSeeder creates a new seeder
func NewSeeder(
	userRepo repositories.UserRepository,
	boardService services.BoardService,
	taskService services.TaskService,
	logger *slog.Logger,
) *Seeder {
	return &Seeder{
		userRepo:     userRepo,
		boardService: boardService,
		taskService:  taskService,
		logger:       logger,
	}
}

// Run seeds f. Users that already exist are reused, so re-running only
// adds boards and tasks.
func (s *Seeder) Run(ctx context.Context, f *Fixture) (*Result, error) {
	result := &Result{}
	ids := make(map[string]string, len(f.Users))

	for _, uf := range f.Users {
		user, created, err := s.ensureUser(ctx, uf)
		if err != nil {
			return result, fmt.Errorf("user %s: %w", uf.Username, err)
		}
		ids[uf.Username] = user.ID
		if created {
			result.Users++
		}
	}

	for _, bf := range f.Boards {
		ownerID := ids[bf.Owner]
		board, err := s.boardService.CreateBoard(ctx, ownerID, &services.CreateBoardRequest{
			Name:        bf.Name,
			Description: bf.Description,
		})
		if err != nil {
			return result, fmt.Errorf("board %s: %w", bf.Name, err)
		}
		result.Boards++

		for _, tf := range bf.Tasks {
			req := &services.CreateTaskRequest{
				BoardID:     board.ID,
				Title:       tf.Title,
				Description: tf.Description,
				Status:      tf.Status,
			}
			if tf.Assignee != "" {
				assigneeID := ids[tf.Assignee]
				req.AssigneeID = &assigneeID
			}

			if _, err := s.taskService.CreateTask(ctx, ownerID, req); err != nil {
				return result, fmt.Errorf("task %s: %w", tf.Title, err)
			}
			result.Tasks++
		}

		s.logger.Info("seeded board", "name", bf.Name, "owner", bf.Owner, "tasks", len(bf.Tasks))
	}

	return result, nil
}

func (s *Seeder) ensureUser(ctx context.Context, uf UserFixture) (*models.User, bool, error) {
	existing, err := s.userRepo.GetByUsername(ctx, uf.Username)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, false, err
	}

	user := &models.User{
		Username:  uf.Username,
		Email:     uf.Email,
		FirstName: uf.FirstName,
		LastName:  uf.LastName,
		CreatedAt: time.Now().UTC(),
	}
	if uf.Password != "" {
		hash, err := auth.HashPassword(uf.Password)
		if err != nil {
			return nil, false, err
		}
		user.PasswordHash = hash
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, false, err
	}
	return user, true, nil
}
