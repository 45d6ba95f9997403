package handler

import (
	"time"

	"workboard/internal/domain/models"
)

// UserResponse is the public shape of a user everywhere it appears
type UserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// TaskResponse embeds related users; board is the board's id
type TaskResponse struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Status      string        `json:"status"`
	Board       string        `json:"board"`
	Assignee    *UserResponse `json:"assignee"`
	CreatedBy   *UserResponse `json:"created_by"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// BoardResponse embeds the owner and the tasks visible to the caller
type BoardResponse struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Owner       *UserResponse  `json:"owner"`
	Tasks       []TaskResponse `json:"tasks"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func newUserResponse(u *models.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

func newUserResponses(users []models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, *newUserResponse(&users[i]))
	}
	return out
}

func newTaskResponse(t *models.TaskDetail) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Board:       t.BoardID,
		Assignee:    newUserResponse(t.Assignee),
		CreatedBy:   newUserResponse(t.Creator),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func newTaskResponses(tasks []models.TaskDetail) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, newTaskResponse(&tasks[i]))
	}
	return out
}

func newBoardResponse(b *models.BoardDetail) BoardResponse {
	return BoardResponse{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		Owner:       newUserResponse(b.Owner),
		Tasks:       newTaskResponses(b.Tasks),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func newBoardResponses(boards []models.BoardDetail) []BoardResponse {
	out := make([]BoardResponse, 0, len(boards))
	for i := range boards {
		out = append(out, newBoardResponse(&boards[i]))
	}
	return out
}
