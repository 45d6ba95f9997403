package postgres

import (
	"context"
	"fmt"
)

// EnsureSchema creates the workboard tables if they do not exist.
// Task rows reference their board with ON DELETE CASCADE and their assignee
// with ON DELETE SET NULL, so neither orphans nor dangling assignees survive.
func EnsureSchema(ctx context.Context, db DBTX, tables *TableNames) error {
	statements := []string{
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			username VARCHAR(150) NOT NULL UNIQUE,
			email TEXT NOT NULL DEFAULT '',
			first_name TEXT NOT NULL DEFAULT '',
			last_name TEXT NOT NULL DEFAULT '',
			password_hash TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`, tables.Users),

		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			owner_id UUID NOT NULL REFERENCES %s(id) ON DELETE CASCADE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CHECK (updated_at >= created_at)
		)`, tables.Boards, tables.Users),

		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s_owner_id_idx ON %s(owner_id)`, tables.Boards, tables.Boards),

		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			title VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			status VARCHAR(20) NOT NULL DEFAULT 'todo'
				CHECK (status IN ('todo', 'in_progress', 'completed')),
			board_id UUID NOT NULL REFERENCES %s(id) ON DELETE CASCADE,
			assignee_id UUID REFERENCES %s(id) ON DELETE SET NULL,
			created_by UUID NOT NULL REFERENCES %s(id) ON DELETE CASCADE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CHECK (updated_at >= created_at)
		)`, tables.Tasks, tables.Boards, tables.Users, tables.Users),

		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s_board_id_idx ON %s(board_id)`, tables.Tasks, tables.Tasks),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s_assignee_id_idx ON %s(assignee_id)`, tables.Tasks, tables.Tasks),
	}

	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// DropSchema drops the workboard tables, children first.
func DropSchema(ctx context.Context, db DBTX, tables *TableNames) error {
	stmt := fmt.Sprintf(`DROP TABLE IF EXISTS %s, %s, %s CASCADE`, tables.Tasks, tables.Boards, tables.Users)
	if _, err := db.Exec(ctx, stmt); err != nil {
		return fmt.Errorf("drop schema: %w", err)
	}
	return nil
}
