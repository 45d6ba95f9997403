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

// BoardRepository implements repositories.BoardRepository on gorm
type BoardRepository struct {
	db     *gorm.DB
	tables *TableNames
	logger *slog.Logger
}

// NewBoardRepository creates a new BoardRepository
func NewBoardRepository(config *RepositoryConfig) repositories.BoardRepository {
	return &BoardRepository{db: config.DB, tables: config.Tables, logger: config.Logger}
}

func (r *BoardRepository) Create(ctx context.Context, board *models.Board) error {
	rec := boardFromModel(board)
	if err := conn(ctx, r.db).Omit(clause.Associations).Create(rec).Error; err != nil {
		if isForeignKey(err) {
			return fmt.Errorf("owner %s: %w", board.OwnerID, domain.ErrNotFound)
		}
		return fmt.Errorf("create board: %w", err)
	}
	board.ID = rec.ID
	return nil
}

func (r *BoardRepository) GetByID(ctx context.Context, id string) (*models.Board, error) {
	var rec BoardRecord
	if err := conn(ctx, r.db).Where("id = ?", id).Take(&rec).Error; err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("board %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get board: %w", err)
	}
	board := rec.toModel()
	return &board, nil
}

// GetForShare is a plain read: SQLite has no row locks, and the single
// connection already serializes the surrounding transaction.
func (r *BoardRepository) GetForShare(ctx context.Context, id string) (*models.Board, error) {
	return r.GetByID(ctx, id)
}

func (r *BoardRepository) List(ctx context.Context, filter repositories.BoardFilter) ([]models.Board, error) {
	q, err := scopeBoards(conn(ctx, r.db).Table(r.tables.Boards+" AS b"), filter, r.tables)
	if err != nil {
		return nil, err
	}

	var recs []BoardRecord
	if err := q.Select("b.*").Order("b.created_at DESC, b.id").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list boards: %w", err)
	}

	boards := make([]models.Board, 0, len(recs))
	for i := range recs {
		boards = append(boards, recs[i].toModel())
	}
	return boards, nil
}

func (r *BoardRepository) Update(ctx context.Context, board *models.Board) error {
	result := conn(ctx, r.db).Model(&BoardRecord{}).Where("id = ?", board.ID).Updates(map[string]interface{}{
		"name":        board.Name,
		"description": board.Description,
		"updated_at":  board.UpdatedAt,
	})
	if result.Error != nil {
		return fmt.Errorf("update board: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("board %s: %w", board.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *BoardRepository) Delete(ctx context.Context, id string) error {
	result := conn(ctx, r.db).Where("id = ?", id).Delete(&BoardRecord{})
	if result.Error != nil {
		return fmt.Errorf("delete board: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("board %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
