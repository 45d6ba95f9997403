package sqlite

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// TableNames holds prefixed table names, matching the postgres layout
type TableNames struct {
	Users  string
	Boards string
	Tasks  string
}

// RepositoryConfig holds configuration for repository implementations
type RepositoryConfig struct {
	DB     *gorm.DB
	Tables *TableNames
	Logger *slog.Logger
}

// Open opens (creating if needed) a SQLite database at path and migrates
// the schema. path may be ":memory:"-style DSN such as
// "file:name?mode=memory&cache=shared".
func Open(path, tablePrefix string, log *slog.Logger) (*RepositoryConfig, error) {
	if path == "" {
		return nil, fmt.Errorf("empty database path")
	}
	if !strings.HasPrefix(path, "file:") {
		if err := ensureDir(path); err != nil {
			return nil, err
		}
	}

	db, err := gorm.Open(sqlite.Open(withForeignKeys(path)), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			TablePrefix:  tablePrefix,
			NameReplacer: strings.NewReplacer("Record", ""),
		},
		Logger:         logger.Discard,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// SQLite serializes writers; one connection keeps transactions from
	// failing with SQLITE_BUSY and keeps in-memory databases alive.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if err := db.AutoMigrate(&UserRecord{}, &BoardRecord{}, &TaskRecord{}); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("migrate sqlite: %w", err)
	}

	log.Info("sqlite database ready", "path", path, "table_prefix", tablePrefix)

	return &RepositoryConfig{
		DB: db,
		Tables: &TableNames{
			Users:  tablePrefix + "users",
			Boards: tablePrefix + "boards",
			Tasks:  tablePrefix + "tasks",
		},
		Logger: log,
	}, nil
}

// Close releases the underlying connection
func (c *RepositoryConfig) Close() error {
	sqlDB, err := c.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// withForeignKeys enables FK enforcement, which SQLite leaves off by default
func withForeignKeys(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on&_busy_timeout=5000"
}

func ensureDir(dbPath string) error {
	dir := filepath.Dir(dbPath)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

type txContextKey struct{}

// conn returns the transaction carried by ctx, or the base handle
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txContextKey{}).(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}
