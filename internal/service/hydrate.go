package service

import (
	"context"

	"workboard/internal/domain/models"
	"workboard/internal/domain/repositories"
)

// hydrator resolves the users referenced by boards and tasks with a single
// batched lookup per response.
type hydrator struct {
	users repositories.UserRepository
}

func (h *hydrator) load(ctx context.Context, boards []models.Board, tasks []models.Task) (map[string]*models.User, error) {
	seen := make(map[string]struct{})
	var ids []string
	add := func(id string) {
		if id == "" {
			return
		}
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	for _, b := range boards {
		add(b.OwnerID)
	}
	for _, t := range tasks {
		add(t.CreatedBy)
		if t.AssigneeID != nil {
			add(*t.AssigneeID)
		}
	}

	return h.users.GetByIDs(ctx, ids)
}

func taskDetail(t models.Task, users map[string]*models.User) models.TaskDetail {
	detail := models.TaskDetail{Task: t, Creator: users[t.CreatedBy]}
	if t.AssigneeID != nil {
		detail.Assignee = users[*t.AssigneeID]
	}
	return detail
}

// tasks hydrates a task list, preserving order
func (h *hydrator) tasks(ctx context.Context, tasks []models.Task) ([]models.TaskDetail, error) {
	users, err := h.load(ctx, nil, tasks)
	if err != nil {
		return nil, err
	}

	details := make([]models.TaskDetail, 0, len(tasks))
	for _, t := range tasks {
		details = append(details, taskDetail(t, users))
	}
	return details, nil
}

// boards hydrates boards and attaches tasks to the board they belong to.
// tasks must already be filtered to what the caller may see.
func (h *hydrator) boards(ctx context.Context, boards []models.Board, tasks []models.Task) ([]models.BoardDetail, error) {
	users, err := h.load(ctx, boards, tasks)
	if err != nil {
		return nil, err
	}

	byBoard := make(map[string][]models.TaskDetail, len(boards))
	for _, t := range tasks {
		byBoard[t.BoardID] = append(byBoard[t.BoardID], taskDetail(t, users))
	}

	details := make([]models.BoardDetail, 0, len(boards))
	for _, b := range boards {
		boardTasks := byBoard[b.ID]
		if boardTasks == nil {
			boardTasks = []models.TaskDetail{}
		}
		details = append(details, models.BoardDetail{
			Board: b,
			Owner: users[b.OwnerID],
			Tasks: boardTasks,
		})
	}
	return details, nil
}

func boardIDs(boards []models.Board) []string {
	ids := make([]string, len(boards))
	for i, b := range boards {
		ids[i] = b.ID
	}
	return ids
}
