package repository

import (
	"context"
	"fmt"
	"log/slog"

	"workboard/internal/config"
	"workboard/internal/domain/repositories"
	"workboard/internal/repository/postgres"
	"workboard/internal/repository/sqlite"
)

// Storage drivers accepted in STORAGE_DRIVER
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Store bundles the repositories for one backing database
type Store struct {
	Users  repositories.UserRepository
	Boards repositories.BoardRepository
	Tasks  repositories.TaskRepository
	Tx     repositories.TransactionManager

	close func() error
}

// Close releases the database handle
func (s *Store) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// Open connects to the configured backend and makes sure its schema exists
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Store, error) {
	switch cfg.StorageDriver {
	case DriverPostgres:
		return openPostgres(ctx, cfg, logger)
	case DriverSQLite:
		return OpenSQLite(cfg.SQLitePath, cfg.TablePrefix, logger)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

func openPostgres(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Store, error) {
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required for the postgres driver")
	}

	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	tables := postgres.NewTableNames(cfg.TablePrefix)
	if err := postgres.EnsureSchema(ctx, pool, tables); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	logger.Info("connected to postgres", "table_prefix", cfg.TablePrefix)

	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}

	return &Store{
		Users:  postgres.NewUserRepository(repoConfig),
		Boards: postgres.NewBoardRepository(repoConfig),
		Tasks:  postgres.NewTaskRepository(repoConfig),
		Tx:     postgres.NewTransactionManager(pool, logger),
		close: func() error {
			pool.Close()
			return nil
		},
	}, nil
}

// OpenSQLite opens a gorm-backed SQLite store. Tests use it with an
// in-memory DSN such as "file:name?mode=memory&cache=shared".
func OpenSQLite(path, tablePrefix string, logger *slog.Logger) (*Store, error) {
	repoConfig, err := sqlite.Open(path, tablePrefix, logger)
	if err != nil {
		return nil, err
	}

	return &Store{
		Users:  sqlite.NewUserRepository(repoConfig),
		Boards: sqlite.NewBoardRepository(repoConfig),
		Tasks:  sqlite.NewTaskRepository(repoConfig),
		Tx:     sqlite.NewTransactionManager(repoConfig),
		close:  repoConfig.Close,
	}, nil
}
