package task

import (
	"time"

	domain "github.com/example/task-manager-api/domain/task"
)

// TaskInput carries the caller-editable fields of a task. State, owner, and
// creation time are never client-supplied; the service assigns them.
type TaskInput struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueAt       time.Time `json:"due_at"`
}

// ListTasksRequest asks for every task owned by the caller.
type ListTasksRequest struct {
	Email string `json:"email"`
}

// ListTasksResponse carries the caller's tasks ordered by creation time.
type ListTasksResponse struct {
	Tasks []TaskData `json:"tasks"`
	Total int        `json:"total"`
}

// CreateTaskRequest creates a task owned by the caller.
type CreateTaskRequest struct {
	Email string    `json:"email"`
	Input TaskInput `json:"input"`
}

// UpdateTaskRequest rewrites the editable fields of one of the caller's tasks.
type UpdateTaskRequest struct {
	Email string    `json:"email"`
	ID    string    `json:"id"`
	Input TaskInput `json:"input"`
}

// DeleteTaskRequest removes one of the caller's tasks permanently.
type DeleteTaskRequest struct {
	Email string `json:"email"`
	ID    string `json:"id"`
}

// DeleteTaskResponse reports the outcome of a delete.
type DeleteTaskResponse struct {
	Deleted bool   `json:"deleted"`
	ID      string `json:"id"`
}

// TaskData is the task representation exchanged between modules. It carries
// the state by name and never embeds the owning user.
type TaskData struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueAt       time.Time `json:"due_at"`
	State       string    `json:"state"`
	CreatedAt   time.Time `json:"created_at"`
}

// TaskResponse wraps a single task.
type TaskResponse struct {
	Task TaskData `json:"task"`
}

// toTaskData converts a task entity to its inter-module representation.
func toTaskData(t *domain.Task) TaskData {
	return TaskData{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		DueAt:       t.DueAt,
		State:       t.State.Name,
		CreatedAt:   t.CreatedAt,
	}
}
