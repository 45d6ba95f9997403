package handler

import "net/http"

// Handlers groups the HTTP handlers mounted by RegisterRoutes
type Handlers struct {
	Auth   *AuthHandler
	Users  *UserHandler
	Boards *BoardHandler
	Tasks  *TaskHandler
}

// RegisterRoutes mounts the API on mux (Go 1.22+ method patterns)
func RegisterRoutes(mux *http.ServeMux, h *Handlers) {
	mux.HandleFunc("GET /health", HealthCheck)

	// Auth routes
	mux.HandleFunc("POST /api/auth/login", h.Auth.Login)

	// User routes
	mux.HandleFunc("GET /api/users", h.Users.ListUsers)
	mux.HandleFunc("GET /api/users/{id}", h.Users.GetUser)
	mux.HandleFunc("GET /api/users/{id}/assignments", h.Users.Assignments)
	mux.HandleFunc("GET /api/users/{id}/assigned-boards", h.Users.AssignedBoards)

	// Board routes
	mux.HandleFunc("GET /api/boards", h.Boards.ListBoards)
	mux.HandleFunc("POST /api/boards", h.Boards.CreateBoard)
	mux.HandleFunc("GET /api/boards/{id}", h.Boards.GetBoard)
	mux.HandleFunc("PATCH /api/boards/{id}", h.Boards.UpdateBoard)
	mux.HandleFunc("DELETE /api/boards/{id}", h.Boards.DeleteBoard)
	mux.HandleFunc("POST /api/boards/{id}/tasks", h.Tasks.CreateBoardTask)

	// Task routes
	mux.HandleFunc("GET /api/tasks", h.Tasks.ListTasks)
	mux.HandleFunc("POST /api/tasks", h.Tasks.CreateTask)
	mux.HandleFunc("GET /api/tasks/{id}", h.Tasks.GetTask)
	mux.HandleFunc("PATCH /api/tasks/{id}", h.Tasks.UpdateTask)
	mux.HandleFunc("DELETE /api/tasks/{id}", h.Tasks.DeleteTask)
}
