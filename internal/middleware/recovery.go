package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"workboard/internal/httputil"
)

// Recovery turns a handler panic into an opaque 500. The log line carries
// the same method/path/request_id fields as RequestLogger, and the
// response carries the request id so a report can be matched to it.
// http.ErrAbortHandler is re-raised for net/http to abort the connection.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}

				requestID := httputil.GetRequestID(r)
				logger.Log(r.Context(), slog.LevelError, "panic",
					"method", r.Method,
					"path", r.URL.Path,
					"request_id", requestID,
					"panic", fmt.Sprint(rec),
					"stack", string(debug.Stack()),
				)

				var extras map[string]interface{}
				if requestID != "" {
					extras = map[string]interface{}{"request_id": requestID}
				}
				httputil.RespondErrorWithExtras(w, http.StatusInternalServerError, "internal server error", extras)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
