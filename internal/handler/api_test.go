package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"workboard/internal/auth"
	"workboard/internal/domain/models"
	"workboard/internal/middleware"
	"workboard/internal/repository"
	"workboard/internal/service"
	authz "workboard/internal/service/auth"
)

const testPassword = "correct horse battery"

type apiEnv struct {
	server *httptest.Server
	users  map[string]*models.User
}

func newAPIEnv(t *testing.T, usernames ...string) *apiEnv {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	store, err := repository.OpenSQLite(dsn, "test_", logger)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	hash, err := auth.HashPassword(testPassword)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	users := make(map[string]*models.User, len(usernames))
	for _, name := range usernames {
		u := &models.User{Username: name, Email: name + "@example.com", PasswordHash: hash, CreatedAt: time.Now().UTC()}
		if err := store.Users.Create(context.Background(), u); err != nil {
			t.Fatalf("create user: %v", err)
		}
		users[name] = u
	}

	tokens, err := auth.NewHMACTokenService("0123456789abcdef0123456789abcdef", "workboard", time.Hour, logger)
	if err != nil {
		t.Fatalf("token service: %v", err)
	}

	policy := authz.NewPolicyAuthorizer(logger)
	scope := authz.NewVisibility()

	mux := http.NewServeMux()
	RegisterRoutes(mux, &Handlers{
		Auth:   NewAuthHandler(service.NewIdentityService(store.Users, tokens, logger), logger),
		Users:  NewUserHandler(service.NewUserService(store.Users, store.Boards, store.Tasks, policy, scope, logger), logger),
		Boards: NewBoardHandler(service.NewBoardService(store.Boards, store.Tasks, store.Users, store.Tx, policy, scope, logger), logger),
		Tasks:  NewTaskHandler(service.NewTaskService(store.Tasks, store.Boards, store.Users, store.Tx, policy, scope, logger), logger),
	})

	var h http.Handler = mux
	h = middleware.AuthMiddleware(tokens, logger)(h)
	h = middleware.Recovery(logger)(h)

	server := httptest.NewServer(h)
	t.Cleanup(server.Close)

	return &apiEnv{server: server, users: users}
}

// do sends a JSON request and decodes the response into out when non-nil
func (e *apiEnv) do(t *testing.T, token, method, path string, body interface{}, out interface{}) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, e.server.URL+path, reader)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.server.Client().Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < 300 && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s %s: %v", method, path, err)
		}
	}
	return resp.StatusCode
}

func (e *apiEnv) login(t *testing.T, username string) string {
	t.Helper()
	var result struct {
		Token string `json:"token"`
	}
	status := e.do(t, "", http.MethodPost, "/api/auth/login",
		map[string]string{"username": username, "password": testPassword}, &result)
	if status != http.StatusOK || result.Token == "" {
		t.Fatalf("login %s: status %d", username, status)
	}
	return result.Token
}

func TestAPI_SprintScenario(t *testing.T) {
	env := newAPIEnv(t, "alice", "bob", "carol")
	alice := env.login(t, "alice")
	bob := env.login(t, "bob")
	carol := env.login(t, "carol")
	bobID := env.users["bob"].ID

	var board BoardResponse
	if status := env.do(t, alice, http.MethodPost, "/api/boards", map[string]string{"name": "Sprint 1"}, &board); status != http.StatusCreated {
		t.Fatalf("create board: status %d", status)
	}
	if board.Owner == nil || board.Owner.Username != "alice" || board.Tasks == nil {
		t.Fatalf("unexpected board: %+v", board)
	}

	var task TaskResponse
	status := env.do(t, alice, http.MethodPost, "/api/boards/"+board.ID+"/tasks",
		map[string]interface{}{"title": "Fix bug", "assignee_id": bobID}, &task)
	if status != http.StatusCreated {
		t.Fatalf("create task: status %d", status)
	}
	if task.Board != board.ID || task.Status != "todo" || task.Assignee == nil || task.Assignee.ID != bobID {
		t.Fatalf("unexpected task: %+v", task)
	}

	t.Run("assignee lists the board", func(t *testing.T) {
		var boards []BoardResponse
		if status := env.do(t, bob, http.MethodGet, "/api/boards", nil, &boards); status != http.StatusOK {
			t.Fatalf("status %d", status)
		}
		if len(boards) != 1 || len(boards[0].Tasks) != 1 || boards[0].Tasks[0].ID != task.ID {
			t.Fatalf("unexpected boards: %+v", boards)
		}
	})

	t.Run("assignee updates status", func(t *testing.T) {
		var updated TaskResponse
		status := env.do(t, bob, http.MethodPatch, "/api/tasks/"+task.ID, map[string]string{"status": "completed"}, &updated)
		if status != http.StatusOK || updated.Status != "completed" {
			t.Fatalf("status %d, task %+v", status, updated)
		}
	})

	t.Run("stranger is refused", func(t *testing.T) {
		var boards []BoardResponse
		if status := env.do(t, carol, http.MethodGet, "/api/boards", nil, &boards); status != http.StatusOK || len(boards) != 0 {
			t.Fatalf("list: status %d, %d boards", status, len(boards))
		}
		if status := env.do(t, carol, http.MethodGet, "/api/boards/"+board.ID, nil, nil); status != http.StatusNotFound {
			t.Errorf("get board: status %d, want 404", status)
		}
		if status := env.do(t, carol, http.MethodPatch, "/api/tasks/"+task.ID, map[string]string{"title": "x"}, nil); status != http.StatusForbidden {
			t.Errorf("update task: status %d, want 403", status)
		}
		if status := env.do(t, carol, http.MethodDelete, "/api/boards/"+board.ID, nil, nil); status != http.StatusForbidden {
			t.Errorf("delete board: status %d, want 403", status)
		}
		if status := env.do(t, carol, http.MethodGet, "/api/users/"+bobID+"/assignments", nil, nil); status != http.StatusForbidden {
			t.Errorf("assignments: status %d, want 403", status)
		}
	})

	t.Run("assignments for self", func(t *testing.T) {
		var tasks []TaskResponse
		if status := env.do(t, bob, http.MethodGet, "/api/users/me/assignments", nil, &tasks); status != http.StatusOK {
			t.Fatalf("status %d", status)
		}
		if len(tasks) != 1 || tasks[0].ID != task.ID {
			t.Fatalf("unexpected tasks: %+v", tasks)
		}
	})

	t.Run("null assignee unassigns", func(t *testing.T) {
		var updated TaskResponse
		status := env.do(t, alice, http.MethodPatch, "/api/tasks/"+task.ID, map[string]interface{}{"assignee_id": nil}, &updated)
		if status != http.StatusOK || updated.Assignee != nil {
			t.Fatalf("status %d, assignee %+v", status, updated.Assignee)
		}
	})

	t.Run("owner deletes board", func(t *testing.T) {
		if status := env.do(t, alice, http.MethodDelete, "/api/boards/"+board.ID, nil, nil); status != http.StatusNoContent {
			t.Fatalf("status %d", status)
		}
		if status := env.do(t, alice, http.MethodGet, "/api/tasks/"+task.ID, nil, nil); status != http.StatusNotFound {
			t.Errorf("task after board delete: status %d, want 404", status)
		}
	})
}

func TestAPI_Errors(t *testing.T) {
	env := newAPIEnv(t, "alice")
	alice := env.login(t, "alice")

	if status := env.do(t, "", http.MethodGet, "/api/boards", nil, nil); status != http.StatusUnauthorized {
		t.Errorf("no token: status %d, want 401", status)
	}
	if status := env.do(t, "", http.MethodPost, "/api/auth/login",
		map[string]string{"username": "alice", "password": "wrong"}, nil); status != http.StatusUnauthorized {
		t.Errorf("bad password: status %d, want 401", status)
	}
	if status := env.do(t, alice, http.MethodGet, "/api/boards/not-a-uuid", nil, nil); status != http.StatusNotFound {
		t.Errorf("malformed id: status %d, want 404", status)
	}
	if status := env.do(t, "", http.MethodGet, "/health", nil, nil); status != http.StatusOK {
		t.Errorf("health: status %d", status)
	}

	req, err := http.NewRequest(http.MethodPost, env.server.URL+"/api/boards", strings.NewReader(`{"name": "   "}`))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer "+alice)
	resp, err := env.server.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("blank name: status %d, want 400", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("content type = %q", ct)
	}
	var problem struct {
		Status int               `json:"status"`
		Errors map[string]string `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&problem); err != nil {
		t.Fatalf("decode problem: %v", err)
	}
	if problem.Status != http.StatusBadRequest || problem.Errors["name"] == "" {
		t.Errorf("unexpected problem: %+v", problem)
	}
}
