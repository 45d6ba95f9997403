package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"

	"workboard/internal/config"
	"workboard/internal/repository"
	"workboard/internal/repository/postgres"
	"workboard/internal/seed"
	"workboard/internal/service"
	authz "workboard/internal/service/auth"

	"github.com/joho/godotenv"
)

func main() {
	dropTables := flag.Bool("drop-tables", false, "Drop all tables before seeding (fresh start)")
	schemaOnly := flag.Bool("schema-only", false, "Only set up schema, don't seed data")
	fixturePath := flag.String("file", "", "YAML fixture to seed instead of the built-in demo data")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()

	// SAFETY: Prevent destructive operations in production
	if cfg.Environment == "prod" && *dropTables {
		log.Fatalf("BLOCKED: cannot run --drop-tables in production environment")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	ctx := context.Background()

	if *dropTables {
		log.Printf("Dropping all tables (driver: %s, prefix: %s)", cfg.StorageDriver, cfg.TablePrefix)
		if err := drop(ctx, cfg); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
	}

	store, err := repository.Open(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer func() { _ = store.Close() }()

	if *schemaOnly {
		log.Printf("Schema ready (environment: %s, prefix: %s)", cfg.Environment, cfg.TablePrefix)
		return
	}

	var fixture *seed.Fixture
	if *fixturePath != "" {
		fixture, err = seed.LoadFile(*fixturePath)
	} else {
		fixture, err = seed.Default()
	}
	if err != nil {
		log.Fatalf("Failed to load fixture: %v", err)
	}

	policy := authz.NewPolicyAuthorizer(logger)
	scope := authz.NewVisibility()
	boardService := service.NewBoardService(store.Boards, store.Tasks, store.Users, store.Tx, policy, scope, logger)
	taskService := service.NewTaskService(store.Tasks, store.Boards, store.Users, store.Tx, policy, scope, logger)

	result, err := seed.NewSeeder(store.Users, boardService, taskService, logger).Run(ctx, fixture)
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("Seeded %d users, %d boards, %d tasks (environment: %s)",
		result.Users, result.Boards, result.Tasks, cfg.Environment)
}

func drop(ctx context.Context, cfg *config.Config) error {
	switch cfg.StorageDriver {
	case repository.DriverPostgres:
		pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer pool.Close()
		return postgres.DropSchema(ctx, pool, postgres.NewTableNames(cfg.TablePrefix))
	case repository.DriverSQLite:
		if strings.HasPrefix(cfg.SQLitePath, "file:") {
			return nil
		}
		if err := os.Remove(cfg.SQLitePath); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
		return nil
	default:
		return errors.New("unknown storage driver " + cfg.StorageDriver)
	}
}
