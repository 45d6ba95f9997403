package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"workboard/internal/domain"
	"workboard/internal/domain/models"
	"workboard/internal/httputil"
)

type stubVerifier struct {
	tokens map[string]string
}

func (s stubVerifier) VerifyToken(token string) (*models.Claims, error) {
	sub, ok := s.tokens[token]
	if !ok {
		return nil, errors.New("bad token")
	}
	claims := &models.Claims{}
	claims.Subject = sub
	return claims, nil
}

func (s stubVerifier) Close() error { return nil }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAuthMiddleware(t *testing.T) {
	verifier := stubVerifier{tokens: map[string]string{"good": "user-1"}}

	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = httputil.GetUserID(r)
		w.WriteHeader(http.StatusOK)
	})
	h := AuthMiddleware(verifier, discardLogger())(next)

	tests := []struct {
		name     string
		method   string
		path     string
		header   string
		want     int
		wantUser string
	}{
		{"valid token", http.MethodGet, "/api/boards", "Bearer good", http.StatusOK, "user-1"},
		{"lowercase scheme", http.MethodGet, "/api/boards", "bearer good", http.StatusOK, "user-1"},
		{"missing header", http.MethodGet, "/api/boards", "", http.StatusUnauthorized, ""},
		{"wrong scheme", http.MethodGet, "/api/boards", "Basic good", http.StatusUnauthorized, ""},
		{"bad token", http.MethodGet, "/api/boards", "Bearer forged", http.StatusUnauthorized, ""},
		{"public health", http.MethodGet, "/health", "", http.StatusOK, ""},
		{"public login", http.MethodPost, "/api/auth/login", "", http.StatusOK, ""},
		{"login is POST only", http.MethodGet, "/api/auth/login", "", http.StatusUnauthorized, ""},
		{"preflight", http.MethodOptions, "/api/boards", "", http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = ""
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d", rec.Code, tt.want)
			}
			if seen != tt.wantUser {
				t.Errorf("user = %q, want %q", seen, tt.wantUser)
			}
		})
	}
}

func TestRecovery(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))
	h := RequestID(Recovery(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(fmt.Errorf("lookup board: %w", domain.ErrNotFound))
	})))

	incoming := "5b0e4b8c-2f0c-4c1f-9a59-0d4f1f2e9b10"
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	req.Header.Set(RequestIDHeader, incoming)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("content type = %q", ct)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["detail"] != "internal server error" || body["request_id"] != incoming {
		t.Errorf("unexpected body: %v", body)
	}
	if strings.Contains(rec.Body.String(), "lookup board") {
		t.Errorf("panic value leaked to client: %s", rec.Body.String())
	}

	var entry map[string]interface{}
	if err := json.Unmarshal(logs.Bytes(), &entry); err != nil {
		t.Fatalf("decode log line: %v (%s)", err, logs.String())
	}
	if entry["request_id"] != incoming || entry["method"] != http.MethodGet || entry["path"] != "/boom" {
		t.Errorf("log fields missing: %v", entry)
	}
	if entry["panic"] != "lookup board: not found" {
		t.Errorf("panic = %v", entry["panic"])
	}
}

func TestRecovery_AbortHandler(t *testing.T) {
	h := Recovery(discardLogger())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	defer func() {
		if rec := recover(); rec != http.ErrAbortHandler {
			t.Errorf("recovered %v, want http.ErrAbortHandler", rec)
		}
	}()
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	t.Error("ErrAbortHandler was swallowed")
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = httputil.GetRequestID(r)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if seen == "" || rec.Header().Get(RequestIDHeader) != seen {
		t.Fatalf("generated id %q not echoed (%q)", seen, rec.Header().Get(RequestIDHeader))
	}

	incoming := "5b0e4b8c-2f0c-4c1f-9a59-0d4f1f2e9b10"
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, incoming)
	h.ServeHTTP(httptest.NewRecorder(), req)
	if seen != incoming {
		t.Errorf("incoming id not reused: got %q", seen)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "<script>")
	h.ServeHTTP(httptest.NewRecorder(), req)
	if seen == "<script>" {
		t.Error("malformed incoming id was trusted")
	}
}
