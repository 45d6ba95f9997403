package handler

import (
	"log/slog"
	"net/http"

	"workboard/internal/domain"
	"workboard/internal/domain/services"
	"workboard/internal/httputil"
)

// TaskHandler handles task HTTP requests
type TaskHandler struct {
	taskService services.TaskService
	logger      *slog.Logger
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService services.TaskService, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		logger:      logger,
	}
}

// ListTasks lists tasks the caller may see
// GET /api/tasks
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.ListTasks(r.Context(), httputil.GetUserID(r))
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, newTaskResponses(tasks))
}

// CreateTask creates a task on the board named in the body
// POST /api/tasks
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req services.CreateTaskRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		badBody(w)
		return
	}

	h.create(w, r, &req)
}

// CreateBoardTask creates a task on the board in the path
// POST /api/boards/{id}/tasks
func (h *TaskHandler) CreateBoardTask(w http.ResponseWriter, r *http.Request) {
	var req services.CreateTaskRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		badBody(w)
		return
	}

	// Path wins over any board in the body
	boardID := r.PathValue("id")
	if !isUUIDPath(boardID) {
		handleError(w, r, h.logger, domain.ErrNotFound)
		return
	}
	req.BoardID = boardID

	h.create(w, r, &req)
}

func (h *TaskHandler) create(w http.ResponseWriter, r *http.Request, req *services.CreateTaskRequest) {
	task, err := h.taskService.CreateTask(r.Context(), httputil.GetUserID(r), req)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, newTaskResponse(task))
}

// GetTask retrieves a task
// GET /api/tasks/{id}
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	task, err := h.taskService.GetTask(r.Context(), httputil.GetUserID(r), r.PathValue("id"))
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, newTaskResponse(task))
}

// updateTaskBody distinguishes absent fields from explicit nulls
type updateTaskBody struct {
	Title       httputil.OptionalString `json:"title"`
	Description httputil.OptionalString `json:"description"`
	Status      httputil.OptionalString `json:"status"`
	AssigneeID  httputil.OptionalString `json:"assignee_id"`
	Board       httputil.OptionalString `json:"board"`
}

// UpdateTask partially updates a task. "assignee_id": null unassigns.
// PATCH /api/tasks/{id}
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	var body updateTaskBody
	if err := httputil.ParseJSON(w, r, &body); err != nil {
		badBody(w)
		return
	}

	if err := rejectNulls(map[string]httputil.OptionalString{
		"title":  body.Title,
		"status": body.Status,
		"board":  body.Board,
	}); err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	req := &services.UpdateTaskRequest{
		Title:         body.Title.Ptr(),
		Description:   body.Description.Ptr(),
		Status:        body.Status.Ptr(),
		AssigneeID:    body.AssigneeID.Ptr(),
		ClearAssignee: body.AssigneeID.IsNull(),
		BoardID:       body.Board.Ptr(),
	}
	if body.Description.IsNull() {
		empty := ""
		req.Description = &empty
	}

	task, err := h.taskService.UpdateTask(r.Context(), httputil.GetUserID(r), r.PathValue("id"), req)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, newTaskResponse(task))
}

// DeleteTask removes a task
// DELETE /api/tasks/{id}
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	if err := h.taskService.DeleteTask(r.Context(), httputil.GetUserID(r), r.PathValue("id")); err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondNoContent(w)
}
