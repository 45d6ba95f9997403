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

const boardColumns = `b.id, b.name, b.description, b.owner_id, b.created_at, b.updated_at`

// PostgresBoardRepository implements the BoardRepository interface
type PostgresBoardRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
	logger *slog.Logger
}

// NewBoardRepository creates a new board repository
func NewBoardRepository(config *RepositoryConfig) repositories.BoardRepository {
	return &PostgresBoardRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// Create creates a new board
func (r *PostgresBoardRepository) Create(ctx context.Context, board *models.Board) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (name, description, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, r.tables.Boards)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		board.Name,
		board.Description,
		board.OwnerID,
		board.CreatedAt,
		board.UpdatedAt,
	).Scan(&board.ID, &board.CreatedAt, &board.UpdatedAt)

	if err != nil {
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("owner %s: %w", board.OwnerID, domain.ErrNotFound)
		}
		return fmt.Errorf("create board: %w", err)
	}

	return nil
}

// GetByID retrieves a board by ID
func (r *PostgresBoardRepository) GetByID(ctx context.Context, id string) (*models.Board, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s b WHERE b.id = $1`, boardColumns, r.tables.Boards)
	return r.getOne(ctx, query, id)
}

// GetForShare retrieves a board with FOR SHARE, blocking concurrent deletes
// of the row until the surrounding transaction ends
func (r *PostgresBoardRepository) GetForShare(ctx context.Context, id string) (*models.Board, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s b WHERE b.id = $1 FOR SHARE`, boardColumns, r.tables.Boards)
	return r.getOne(ctx, query, id)
}

func (r *PostgresBoardRepository) getOne(ctx context.Context, query, id string) (*models.Board, error) {
	executor := GetExecutor(ctx, r.pool)
	board, err := scanBoard(executor.QueryRow(ctx, query, id))
	if err != nil {
		if IsPgNoRowsError(err) || IsPgInvalidTextError(err) {
			return nil, fmt.Errorf("board %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get board: %w", err)
	}
	return board, nil
}

// List retrieves boards matching the filter, newest first
func (r *PostgresBoardRepository) List(ctx context.Context, filter repositories.BoardFilter) ([]models.Board, error) {
	where, err := boardWhere(filter, r.tables)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s b
		%s
		ORDER BY b.created_at DESC, b.id
	`, boardColumns, r.tables.Boards, where)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, where.args...)
	if err != nil {
		return nil, fmt.Errorf("list boards: %w", err)
	}
	defer rows.Close()

	boards := []models.Board{}
	for rows.Next() {
		board, err := scanBoard(rows)
		if err != nil {
			return nil, fmt.Errorf("scan board: %w", err)
		}
		boards = append(boards, *board)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate boards: %w", err)
	}

	return boards, nil
}

// Update updates a board's name, description and updated_at timestamp
func (r *PostgresBoardRepository) Update(ctx context.Context, board *models.Board) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $1, description = $2, updated_at = $3
		WHERE id = $4
	`, r.tables.Boards)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query,
		board.Name,
		board.Description,
		board.UpdatedAt,
		board.ID,
	)
	if err != nil {
		return fmt.Errorf("update board: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("board %s: %w", board.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a board; its tasks go with it through ON DELETE CASCADE
func (r *PostgresBoardRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.tables.Boards)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete board: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("board %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

func scanBoard(row pgx.Row) (*models.Board, error) {
	var board models.Board
	err := row.Scan(
		&board.ID,
		&board.Name,
		&board.Description,
		&board.OwnerID,
		&board.CreatedAt,
		&board.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &board, nil
}
