package task

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/example/task-manager-api/domain/task"
	userdomain "github.com/example/task-manager-api/domain/user"
	"github.com/example/task-manager-api/modules/auth"
	"github.com/google/uuid"
)

var (
	// ErrAccessDenied is returned for every resolution failure: no identity,
	// identity mapping to no user, task missing, or task owned by someone
	// else. A single kind prevents existence leakage.
	ErrAccessDenied = errors.New("access denied")
	// ErrStateNotSeeded is returned when the Pendiente reference state is
	// missing. That is a startup invariant violation, not a client error.
	ErrStateNotSeeded = errors.New("pending state not seeded")
	// ErrTitleRequired is returned when a task title is empty.
	ErrTitleRequired = errors.New("title is required")
)

// UserResolver resolves an authenticated email to its user record.
type UserResolver interface {
	GetUserByEmail(ctx context.Context, email string) (*userdomain.User, error)
}

// TaskService enforces ownership and state rules over task records. Every
// operation resolves the caller identity first and answers ErrAccessDenied
// on any failure along the way.
type TaskService struct {
	tasks  *TaskRepository
	states *StateRepository
	users  UserResolver
}

// TaskService satisfies TaskPort so tests and in-process callers can use it
// without going through the service container.
var _ TaskPort = (*TaskService)(nil)

// NewTaskService creates a new TaskService.
func NewTaskService(tasks *TaskRepository, states *StateRepository, users UserResolver) *TaskService {
	return &TaskService{
		tasks:  tasks,
		states: states,
		users:  users,
	}
}

// resolveOwner maps the caller identity to a user record. An absent identity
// or one that maps to no user folds into ErrAccessDenied.
func (s *TaskService) resolveOwner(ctx context.Context, email string) (*userdomain.User, error) {
	if email == "" {
		return nil, ErrAccessDenied
	}
	owner, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return nil, ErrAccessDenied
		}
		return nil, fmt.Errorf("failed to resolve caller: %w", err)
	}
	return owner, nil
}

// List returns every task owned by the caller, oldest first.
func (s *TaskService) List(ctx context.Context, email string) ([]*domain.Task, error) {
	owner, err := s.resolveOwner(ctx, email)
	if err != nil {
		return nil, err
	}
	return s.tasks.FindByOwner(owner.ID)
}

// Create persists a new task owned by the caller. The state is always
// Pendiente and the creation timestamp is stamped server-side; whatever the
// client sent for those fields never reaches this point.
func (s *TaskService) Create(ctx context.Context, email string, in TaskInput) (*domain.Task, error) {
	owner, err := s.resolveOwner(ctx, email)
	if err != nil {
		return nil, err
	}

	if in.Title == "" {
		return nil, ErrTitleRequired
	}

	pending, err := s.states.FindByName(domain.StatePending)
	if err != nil {
		if errors.Is(err, ErrStateNotFound) {
			return nil, ErrStateNotSeeded
		}
		return nil, err
	}

	task := &domain.Task{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		DueAt:       in.DueAt,
		OwnerID:     owner.ID,
		StateID:     pending.ID,
		State:       *pending,
	}

	if err := s.tasks.Create(task); err != nil {
		return nil, err
	}
	return task, nil
}

// Update rewrites the title, description, and due date of one of the
// caller's tasks. Owner, creation time, and state stay untouched. A missing
// task and a foreign task are indistinguishable to the caller.
func (s *TaskService) Update(ctx context.Context, email, id string, in TaskInput) (*domain.Task, error) {
	owner, err := s.resolveOwner(ctx, email)
	if err != nil {
		return nil, err
	}

	task, err := s.tasks.FindByID(id)
	if err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			return nil, ErrAccessDenied
		}
		return nil, err
	}
	if task.OwnerID != owner.ID {
		return nil, ErrAccessDenied
	}

	if in.Title == "" {
		return nil, ErrTitleRequired
	}

	task.Title = in.Title
	task.Description = in.Description
	task.DueAt = in.DueAt

	if err := s.tasks.Save(task); err != nil {
		return nil, err
	}
	return task, nil
}

// Delete removes one of the caller's tasks permanently.
func (s *TaskService) Delete(ctx context.Context, email, id string) error {
	owner, err := s.resolveOwner(ctx, email)
	if err != nil {
		return err
	}

	task, err := s.tasks.FindByID(id)
	if err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			return ErrAccessDenied
		}
		return err
	}
	if task.OwnerID != owner.ID {
		return ErrAccessDenied
	}

	return s.tasks.Delete(task.ID)
}
