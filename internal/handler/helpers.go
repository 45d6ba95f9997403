package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"workboard/internal/domain"
	"workboard/internal/httputil"
)

// handleError converts domain errors to HTTP responses.
// Access denials are reported uniformly; the deny reason only reaches the logs.
func handleError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	var (
		validationErr *domain.ValidationError
		conflictErr   *domain.ConflictError
	)

	switch {
	case errors.As(err, &validationErr):
		var extras map[string]interface{}
		if len(validationErr.Fields) > 0 {
			extras = map[string]interface{}{"errors": validationErr.Fields}
		}
		httputil.RespondErrorWithExtras(w, http.StatusBadRequest, validationErr.Error(), extras)
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrUnauthorized):
		httputil.RespondError(w, http.StatusUnauthorized, "authentication required")
	case errors.Is(err, domain.ErrForbidden):
		httputil.RespondError(w, http.StatusForbidden, "forbidden")
	case errors.As(err, &conflictErr):
		httputil.RespondError(w, http.StatusConflict, conflictErr.Error())
	default:
		logger.Error("request failed",
			"error", err,
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", httputil.GetRequestID(r),
		)
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}

// badBody reports an undecodable request body
func badBody(w http.ResponseWriter) {
	httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
}

// isUUIDPath reports whether a path id can name a row at all
func isUUIDPath(id string) bool {
	return uuid.Validate(id) == nil
}

// rejectNulls fails for every field sent as JSON null
func rejectNulls(fields map[string]httputil.OptionalString) error {
	var verr *domain.ValidationError
	for field, value := range fields {
		if !value.IsNull() {
			continue
		}
		if verr == nil {
			verr = &domain.ValidationError{Fields: map[string]string{}}
		}
		verr.Fields[field] = "may not be null"
	}
	if verr == nil {
		return nil
	}
	verr.Message = "fields may not be null"
	return verr
}
