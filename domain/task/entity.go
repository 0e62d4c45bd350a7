package task

import (
	"time"
)

// Lifecycle state names, seeded once at startup. The API surface keeps the
// original Spanish labels for wire compatibility.
const (
	StatePending    = "Pendiente"
	StateInProgress = "En Progreso"
	StateCompleted  = "Completada"
)

// State is one of the three fixed lifecycle labels. It is reference data:
// seeded when the table is empty and never modified through the API.
type State struct {
	ID   string `gorm:"primaryKey;type:text"`
	Name string `gorm:"uniqueIndex;not null;type:text"`
}

// TableName returns the table name for the State entity.
func (State) TableName() string {
	return "task_states"
}

// Task is a to-do item owned by exactly one user. OwnerID and CreatedAt are
// set at creation and never change; ownership is a one-directional reference
// resolved by querying tasks by owner, never by embedding the user.
type Task struct {
	ID          string `gorm:"primaryKey;type:text"`
	Title       string `gorm:"not null;type:text"`
	Description string `gorm:"type:text"`
	DueAt       time.Time
	OwnerID     string `gorm:"index;not null;type:text"`
	StateID     string `gorm:"not null;type:text"`
	State       State  `gorm:"foreignKey:StateID"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName returns the table name for the Task entity.
func (Task) TableName() string {
	return "tasks"
}
