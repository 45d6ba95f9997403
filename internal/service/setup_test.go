package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"unicode"

	"workboard/internal/domain/models"
	"workboard/internal/domain/services"
	"workboard/internal/repository"
	authz "workboard/internal/service/auth"
)

type testEnv struct {
	store  *repository.Store
	boards services.BoardService
	tasks  services.TaskService
	users  services.UserService
	logger *slog.Logger
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	name := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '_'
	}, t.Name())

	store, err := repository.OpenSQLite(fmt.Sprintf("file:%s?mode=memory&cache=shared", name), "test_", logger)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	policy := authz.NewPolicyAuthorizer(logger)
	scope := authz.NewVisibility()

	return &testEnv{
		store:  store,
		boards: NewBoardService(store.Boards, store.Tasks, store.Users, store.Tx, policy, scope, logger),
		tasks:  NewTaskService(store.Tasks, store.Boards, store.Users, store.Tx, policy, scope, logger),
		users:  NewUserService(store.Users, store.Boards, store.Tasks, policy, scope, logger),
		logger: logger,
	}
}

func (e *testEnv) user(t *testing.T, username string) *models.User {
	t.Helper()
	u := &models.User{
		Username:  username,
		Email:     username + "@example.com",
		FirstName: strings.ToUpper(username[:1]) + username[1:],
	}
	if err := e.store.Users.Create(context.Background(), u); err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return u
}

func (e *testEnv) board(t *testing.T, owner *models.User, name string) *models.BoardDetail {
	t.Helper()
	b, err := e.boards.CreateBoard(context.Background(), owner.ID, &services.CreateBoardRequest{Name: name})
	if err != nil {
		t.Fatalf("create board %s: %v", name, err)
	}
	return b
}

func (e *testEnv) task(t *testing.T, owner *models.User, boardID, title string, assignee *models.User) *models.TaskDetail {
	t.Helper()
	req := &services.CreateTaskRequest{BoardID: boardID, Title: title}
	if assignee != nil {
		req.AssigneeID = &assignee.ID
	}
	task, err := e.tasks.CreateTask(context.Background(), owner.ID, req)
	if err != nil {
		t.Fatalf("create task %s: %v", title, err)
	}
	return task
}

func strPtr(s string) *string { return &s }

func boardNames(boards []models.BoardDetail) []string {
	names := make([]string, len(boards))
	for i, b := range boards {
		names[i] = b.Name
	}
	return names
}

func taskTitles(tasks []models.TaskDetail) []string {
	titles := make([]string, len(tasks))
	for i, t := range tasks {
		titles[i] = t.Title
	}
	return titles
}

func equal(a, b []string) bool {
	return strings.Join(a, "\x00") == strings.Join(b, "\x00")
}
