package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestPgConstraintColumn(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "assignee fk",
			err:  &pgconn.PgError{Code: "23503", TableName: "dev_tasks", ConstraintName: "dev_tasks_assignee_id_fkey"},
			want: "assignee_id",
		},
		{
			name: "wrapped board fk",
			err:  fmt.Errorf("create task: %w", &pgconn.PgError{Code: "23503", TableName: "dev_tasks", ConstraintName: "dev_tasks_board_id_fkey"}),
			want: "board_id",
		},
		{
			name: "custom constraint name",
			err:  &pgconn.PgError{Code: "23503", TableName: "dev_tasks", ConstraintName: "tasks_owner"},
			want: "",
		},
		{
			name: "not a pg error",
			err:  errors.New("boom"),
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PgConstraintColumn(tt.err); got != tt.want {
				t.Errorf("PgConstraintColumn() = %q, want %q", got, tt.want)
			}
			if tt.want != "" && !IsPgForeignKeyError(tt.err) {
				t.Error("expected a foreign key error")
			}
		})
	}
}
