// Package tasks defines the employee task list.
package tasks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/renantrendt/yates-inc-sub001/internal/pkg/validators"
)

// Task statuses
const (
	StatusTodo       = "todo"
	StatusInProgress = "in_progress"
	StatusDone       = "done"
)

var (
	// ErrNotFound is returned when a task does not exist.
	ErrNotFound = errors.New("task not found")

	// ErrInvalidTransition is returned when a status change is not allowed.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// Task is a unit of work assigned to an employee
type Task struct {
	ID          string     `validate:"required,uuid4"`
	EmployeeID  string     `validate:"required,uuid4"`
	Title       string     `validate:"required,min=1,max=200"`
	Description string     `validate:"max=2000"`
	Status      string     `validate:"required,oneof=todo in_progress done"`
	DueDate     *time.Time `validate:"omitempty"`
	CreatedAt   time.Time  `validate:"required"`
	UpdatedAt   time.Time  `validate:"required"`
}

// Validate for validating Task struct
func (t *Task) Validate() error {
	return validators.Struct(t)
}

// CanTransition reports whether the task may move to status.
// Reopening a finished task straight to todo is rejected; it goes back through in_progress.
func (t *Task) CanTransition(status string) bool {
	switch status {
	case StatusTodo, StatusInProgress, StatusDone:
	default:
		return false
	}
	return !(t.Status == StatusDone && status == StatusTodo)
}

// Overdue reports whether the task is unfinished past its due date
func (t *Task) Overdue(now time.Time) bool {
	return t.DueDate != nil && t.Status != StatusDone && now.After(*t.DueDate)
}

// Query filters and pages task listings
type Query struct {
	EmployeeID string `validate:"omitempty,uuid4"`
	Status     string `validate:"omitempty,oneof=todo in_progress done"`
	Limit      int    `validate:"omitempty,gt=0,max=200"`
	Offset     int    `validate:"omitempty,gte=0"`
	SortBy     string `validate:"omitempty,oneof=created_at updated_at due_date title"`
	SortOrder  string `validate:"omitempty,oneof=asc desc"`
}

// NewQuery returns a query with default paging
func NewQuery() *Query {
	return &Query{Limit: 50}
}

// Validate for validating Query struct
func (q *Query) Validate() error {
	if q.Limit < 0 || q.Offset < 0 {
		return fmt.Errorf("%w: limit and offset must not be negative", validators.ErrValidation)
	}
	return validators.Struct(q)
}

// CreateRequest carries the fields of a new task
type CreateRequest struct {
	EmployeeID  string
	Title       string
	Description string
	DueDate     *time.Time
}

// TaskService defines task management operations
type TaskService interface {
	Create(ctx context.Context, req CreateRequest) (*Task, error)
	List(ctx context.Context, query *Query) ([]*Task, error)
	GetByID(ctx context.Context, taskID string) (*Task, error)
	UpdateStatus(ctx context.Context, taskID, status string) (*Task, error)
	DeleteByID(ctx context.Context, taskID string) error
}

// Repository defines persistence of tasks
type Repository interface {
	Create(ctx context.Context, task *Task) error
	List(ctx context.Context, query *Query) ([]*Task, error)
	GetByID(ctx context.Context, taskID string) (*Task, error)
	UpdateByID(ctx context.Context, task *Task) error
	DeleteByID(ctx context.Context, taskID string) error
}
