package task

import (
	"errors"
	"fmt"

	domain "github.com/example/task-manager-api/domain/task"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrTaskNotFound is returned when a task is not found.
	ErrTaskNotFound = errors.New("task not found")
	// ErrStateNotFound is returned when a lifecycle state is not found.
	ErrStateNotFound = errors.New("task state not found")
)

// StateRepository provides access to the fixed lifecycle states.
type StateRepository struct {
	db *gorm.DB
}

// NewStateRepository creates a new StateRepository.
func NewStateRepository(db *gorm.DB) *StateRepository {
	return &StateRepository{db: db}
}

// Seed inserts the three lifecycle states when the table is empty. It runs
// once at startup; the states are read-only reference data afterwards.
func (r *StateRepository) Seed() error {
	var count int64
	if err := r.db.Model(&domain.State{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count states: %w", err)
	}
	if count > 0 {
		return nil
	}

	states := []*domain.State{
		{ID: uuid.New().String(), Name: domain.StatePending},
		{ID: uuid.New().String(), Name: domain.StateInProgress},
		{ID: uuid.New().String(), Name: domain.StateCompleted},
	}
	if err := r.db.Create(&states).Error; err != nil {
		return fmt.Errorf("failed to seed states: %w", err)
	}
	return nil
}

// FindByName retrieves a state by its label.
func (r *StateRepository) FindByName(name string) (*domain.State, error) {
	var state domain.State
	if err := r.db.First(&state, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStateNotFound
		}
		return nil, fmt.Errorf("failed to find state: %w", err)
	}
	return &state, nil
}

// TaskRepository provides access to task storage.
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository.
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create saves a new task to the database.
func (r *TaskRepository) Create(task *domain.Task) error {
	if err := r.db.Create(task).Error; err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

// FindByID retrieves a task by its ID with the state preloaded.
func (r *TaskRepository) FindByID(id string) (*domain.Task, error) {
	var task domain.Task
	if err := r.db.Preload("State").First(&task, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return &task, nil
}

// FindByOwner retrieves every task owned by the given user, oldest first.
func (r *TaskRepository) FindByOwner(ownerID string) ([]*domain.Task, error) {
	var tasks []*domain.Task
	err := r.db.Preload("State").
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find tasks: %w", err)
	}
	return tasks, nil
}

// Save persists the current state of an existing task.
func (r *TaskRepository) Save(task *domain.Task) error {
	if err := r.db.Save(task).Error; err != nil {
		return fmt.Errorf("failed to save task: %w", err)
	}
	return nil
}

// Delete removes a task permanently. There is no soft delete.
func (r *TaskRepository) Delete(id string) error {
	result := r.db.Delete(&domain.Task{}, "id = ?", id)
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}
