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

// UserRepository implements repositories.UserRepository on gorm
type UserRepository struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(config *RepositoryConfig) repositories.UserRepository {
	return &UserRepository{db: config.DB, logger: config.Logger}
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	rec := userFromModel(user)
	if err := conn(ctx, r.db).Omit(clause.Associations).Create(rec).Error; err != nil {
		if isDuplicate(err) {
			return &domain.ConflictError{
				Message:      fmt.Sprintf("username '%s' already exists", user.Username),
				ResourceType: "user",
			}
		}
		return fmt.Errorf("create user: %w", err)
	}
	user.ID = rec.ID
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.getOne(ctx, "id = ?", id)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getOne(ctx, "username = ?", username)
}

func (r *UserRepository) getOne(ctx context.Context, cond, arg string) (*models.User, error) {
	var rec UserRecord
	if err := conn(ctx, r.db).Where(cond, arg).Take(&rec).Error; err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("user %s: %w", arg, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	user := rec.toModel()
	return &user, nil
}

func (r *UserRepository) GetByIDs(ctx context.Context, ids []string) (map[string]*models.User, error) {
	users := make(map[string]*models.User, len(ids))
	if len(ids) == 0 {
		return users, nil
	}

	var recs []UserRecord
	if err := conn(ctx, r.db).Where("id IN ?", ids).Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("get users: %w", err)
	}
	for i := range recs {
		user := recs[i].toModel()
		users[user.ID] = &user
	}
	return users, nil
}

func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	var recs []UserRecord
	if err := conn(ctx, r.db).Order("username").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	users := make([]models.User, 0, len(recs))
	for i := range recs {
		users = append(users, recs[i].toModel())
	}
	return users, nil
}
