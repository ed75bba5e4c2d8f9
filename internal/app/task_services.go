package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/tasks"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/logger"
)

// taskService implements the TaskService interface
type taskService struct {
	repo   tasks.Repository
	logger logger.Logger
	now    func() time.Time
}

// NewTaskService creates a new instance of TaskService
func NewTaskService(repo tasks.Repository, logger logger.Logger) (tasks.TaskService, error) {
	return &taskService{
		repo:   repo,
		logger: logger.Named("tasks"),
		now:    clock,
	}, nil
}

func (s *taskService) Create(ctx context.Context, req tasks.CreateRequest) (*tasks.Task, error) {
	now := s.now()
	task := &tasks.Task{
		ID:          uuid.NewString(),
		EmployeeID:  req.EmployeeID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Status:      tasks.StatusTodo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if req.DueDate != nil {
		due := req.DueDate.UTC()
		task.DueDate = &due
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) List(ctx context.Context, query *tasks.Query) ([]*tasks.Task, error) {
	if query == nil {
		query = tasks.NewQuery()
	}
	return s.repo.List(ctx, query)
}

func (s *taskService) GetByID(ctx context.Context, taskID string) (*tasks.Task, error) {
	return s.repo.GetByID(ctx, taskID)
}

// UpdateStatus moves a task to status. done -> todo is rejected.
func (s *taskService) UpdateStatus(ctx context.Context, taskID, status string) (*tasks.Task, error) {
	task, err := s.repo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if !task.CanTransition(status) {
		return nil, fmt.Errorf("%s -> %s: %w", task.Status, status, tasks.ErrInvalidTransition)
	}

	task.Status = status
	task.UpdatedAt = s.now()
	if err := s.repo.UpdateByID(ctx, task); err != nil {
		return nil, err
	}
	s.logger.Info("Task ", task.ID, " moved to ", status)
	return task, nil
}

func (s *taskService) DeleteByID(ctx context.Context, taskID string) error {
	return s.repo.DeleteByID(ctx, taskID)
}
