package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// IsPgDuplicateError checks if error is a unique constraint violation
func IsPgDuplicateError(err error) bool {
	return hasPgCode(err, "23505")
}

// IsPgNoRowsError checks if error is a "no rows" error
func IsPgNoRowsError(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// IsPgForeignKeyError checks if error is a foreign key violation. Raised
// when a task references a board deleted by a concurrent transaction.
func IsPgForeignKeyError(err error) bool {
	return hasPgCode(err, "23503")
}

// IsPgInvalidTextError checks for malformed input such as a non-UUID id
func IsPgInvalidTextError(err error) bool {
	return hasPgCode(err, "22P02")
}

// PgConstraintColumn extracts the column from a default-named foreign key
// constraint such as "dev_tasks_assignee_id_fkey". Empty if unknown.
func PgConstraintColumn(err error) string {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return ""
	}
	name := strings.TrimSuffix(pgErr.ConstraintName, "_fkey")
	if name == pgErr.ConstraintName || pgErr.TableName == "" {
		return ""
	}
	return strings.TrimPrefix(name, pgErr.TableName+"_")
}

func hasPgCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}
