package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"workboard/internal/config"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	cfg := config.Load()
	if cfg.Environment == "prod" {
		log.Fatal("refusing to drop tables in the prod environment")
	}
	prefix := cfg.TablePrefix

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() { _ = db.Close() }() // Error ignored: script exiting

	// Children first; CASCADE covers anything left over
	dropSQL := fmt.Sprintf(`
		DROP TABLE IF EXISTS %stasks CASCADE;
		DROP TABLE IF EXISTS %sboards CASCADE;
		DROP TABLE IF EXISTS %susers CASCADE;
	`, prefix, prefix, prefix)

	if _, err := db.Exec(dropSQL); err != nil {
		log.Fatalf("Failed to drop tables: %v", err)
	}

	fmt.Printf("All tables dropped successfully (prefix: %s)\n", prefix)
}
