package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"workboard/internal/domain"
	"workboard/internal/domain/models"
)

// statusRule accepts the known task statuses
var statusRule = validation.In(statusValues()...).Error("must be one of todo, in_progress, completed")

func statusValues() []interface{} {
	values := make([]interface{}, len(models.TaskStatuses))
	for i, s := range models.TaskStatuses {
		values[i] = string(s)
	}
	return values
}

// requireIdentity rejects calls without an authenticated user
func requireIdentity(userID string) error {
	if userID == "" {
		return domain.ErrUnauthorized
	}
	return nil
}

// isUUID reports whether id is a well-formed UUID. Path ids that are not
// cannot name any row, so callers report them as not found.
func isUUID(id string) bool {
	return uuid.Validate(id) == nil
}

// validationFailed converts ozzo errors into a *domain.ValidationError
// keyed by JSON field name.
func validationFailed(err error) error {
	if err == nil {
		return nil
	}

	var internal validation.InternalError
	if errors.As(err, &internal) {
		return fmt.Errorf("validate: %w", err)
	}

	var errs validation.Errors
	if !errors.As(err, &errs) {
		return &domain.ValidationError{Message: err.Error()}
	}

	fields := make(map[string]string, len(errs))
	keys := make([]string, 0, len(errs))
	for field, fieldErr := range errs {
		if fieldErr == nil {
			continue
		}
		fields[field] = fieldErr.Error()
		keys = append(keys, field)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + fields[k]
	}
	return &domain.ValidationError{
		Message: strings.Join(parts, "; "),
		Fields:  fields,
	}
}

// trimmed returns a trimmed copy of an optional string
func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}

// touch sets updated_at to now, never earlier than created_at
func touch(createdAt time.Time, now time.Time) time.Time {
	if now.Before(createdAt) {
		return createdAt
	}
	return now
}
