package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError defines errors that can be mapped to HTTP status codes.
type HTTPError interface {
	error
	StatusCode() int
}

// Sentinel errors - use with errors.Is()
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("already exists")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// DenyReason is the machine-readable cause of an authorization denial.
// It is logged but never sent to the caller.
type DenyReason string

const (
	ReasonUnauthenticated           DenyReason = "Unauthenticated"
	ReasonNotInScope                DenyReason = "NotInScope"
	ReasonNotOwner                  DenyReason = "NotOwner"
	ReasonNotBoardOwner             DenyReason = "NotBoardOwner"
	ReasonNotBoardOwnerOrAssignee   DenyReason = "NotBoardOwnerOrAssignee"
	ReasonNotCreatorOwnerOrAssignee DenyReason = "NotCreatorOwnerOrAssignee"
	ReasonNotSelf                   DenyReason = "NotSelf"
	ReasonUnknownOperation          DenyReason = "UnknownOperation"
)

// AccessDeniedError indicates an authenticated identity is not allowed to
// perform an operation. Matches ErrForbidden.
type AccessDeniedError struct {
	Reason     DenyReason
	Resource   string
	ResourceID string
}

func (e *AccessDeniedError) Error() string {
	if e.ResourceID == "" {
		return fmt.Sprintf("access denied to %s (%s)", e.Resource, e.Reason)
	}
	return fmt.Sprintf("access denied to %s %s (%s)", e.Resource, e.ResourceID, e.Reason)
}

func (e *AccessDeniedError) StatusCode() int { return http.StatusForbidden }

// Is allows errors.Is() to match against ErrForbidden
func (e *AccessDeniedError) Is(target error) bool {
	return target == ErrForbidden
}

// ValidationError carries per-field messages for malformed input.
// Matches ErrValidation.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return ErrValidation.Error()
}

func (e *ValidationError) StatusCode() int { return http.StatusBadRequest }

// Is allows errors.Is() to match against ErrValidation
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Message: fmt.Sprintf("%s: %s", field, message),
		Fields:  map[string]string{field: message},
	}
}

// UnknownAssigneeError reports an assignee_id that names no user
func UnknownAssigneeError() *ValidationError {
	return NewValidationError("assignee_id", "unknown user")
}

// ConflictError represents a resource conflict with details about the existing resource
type ConflictError struct {
	Message      string
	ResourceType string
	ResourceID   string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func (e *ConflictError) StatusCode() int {
	return http.StatusConflict
}

// Is allows errors.Is() to match against ErrConflict
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}
