package task

import (
	"context"
	"encoding/json"
	"fmt"

	domain "github.com/example/task-manager-api/domain/task"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// TaskPort defines the interface for ownership-gated task operations. Every
// method takes the caller identity established by the auth gateway.
type TaskPort interface {
	List(ctx context.Context, email string) ([]*domain.Task, error)
	Create(ctx context.Context, email string, in TaskInput) (*domain.Task, error)
	Update(ctx context.Context, email, id string, in TaskInput) (*domain.Task, error)
	Delete(ctx context.Context, email, id string) error
}

// TaskAdapter implements TaskPort using the service container.
type TaskAdapter struct {
	container mono.ServiceContainer
}

var _ TaskPort = (*TaskAdapter)(nil)

// NewTaskAdapter creates a new TaskAdapter.
func NewTaskAdapter(container mono.ServiceContainer) *TaskAdapter {
	return &TaskAdapter{
		container: container,
	}
}

// List returns every task owned by the caller.
func (a *TaskAdapter) List(ctx context.Context, email string) ([]*domain.Task, error) {
	req := ListTasksRequest{Email: email}
	var resp ListTasksResponse

	if err := helper.CallRequestReplyService(
		ctx, a.container, "list", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("list request failed: %w", err)
	}

	tasks := make([]*domain.Task, 0, len(resp.Tasks))
	for i := range resp.Tasks {
		tasks = append(tasks, fromTaskData(resp.Tasks[i]))
	}
	return tasks, nil
}

// Create persists a new task owned by the caller.
func (a *TaskAdapter) Create(ctx context.Context, email string, in TaskInput) (*domain.Task, error) {
	req := CreateTaskRequest{Email: email, Input: in}
	var resp TaskResponse

	if err := helper.CallRequestReplyService(
		ctx, a.container, "create", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("create request failed: %w", err)
	}

	return fromTaskData(resp.Task), nil
}

// Update rewrites the editable fields of one of the caller's tasks.
func (a *TaskAdapter) Update(ctx context.Context, email, id string, in TaskInput) (*domain.Task, error) {
	req := UpdateTaskRequest{Email: email, ID: id, Input: in}
	var resp TaskResponse

	if err := helper.CallRequestReplyService(
		ctx, a.container, "update", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("update request failed: %w", err)
	}

	return fromTaskData(resp.Task), nil
}

// Delete removes one of the caller's tasks permanently.
func (a *TaskAdapter) Delete(ctx context.Context, email, id string) error {
	req := DeleteTaskRequest{Email: email, ID: id}
	var resp DeleteTaskResponse

	if err := helper.CallRequestReplyService(
		ctx, a.container, "delete", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return fmt.Errorf("delete request failed: %w", err)
	}
	return nil
}

// fromTaskData rebuilds a task entity from its inter-module representation.
// Only the fields the API surface needs survive the round trip.
func fromTaskData(d TaskData) *domain.Task {
	return &domain.Task{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		DueAt:       d.DueAt,
		State:       domain.State{Name: d.State},
		CreatedAt:   d.CreatedAt,
	}
}
