package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/renantrendt/yates-inc-sub001/internal/domain/tasks"
	"github.com/renantrendt/yates-inc-sub001/internal/infrastructure/persistence/models"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormTaskRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormTaskRepository creates a new GORM-based task Repository implementation
func NewGormTaskRepository(db *gorm.DB, logger logger.Logger) (tasks.Repository, error) {
	return &gormTaskRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormTaskRepository) Create(ctx context.Context, task *tasks.Task) error {
	if err := task.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.TaskModel{}
	model.FromDomain(task)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	r.logger.Info("Created task with id ", task.ID)
	return nil
}

func (r *gormTaskRepository) List(ctx context.Context, query *tasks.Query) ([]*tasks.Task, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.TaskModel
	dbQuery := r.db.WithContext(ctx).Model(&models.TaskModel{})

	if query.EmployeeID != "" {
		dbQuery = dbQuery.Where("employee_id = ?", query.EmployeeID)
	}
	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", query.Status)
	}

	sortBy := query.SortBy
	if sortBy == "" {
		sortBy = "created_at"
	}
	order := query.SortOrder
	if order == "" {
		order = "asc"
	}
	dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", sortBy, order))

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch tasks: %w", err)
	}

	domainList := make([]*tasks.Task, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormTaskRepository) GetByID(ctx context.Context, taskID string) (*tasks.Task, error) {
	var model models.TaskModel
	if err := r.db.WithContext(ctx).Where("id = ?", taskID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("task with ID %s: %w", taskID, tasks.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch task: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormTaskRepository) UpdateByID(ctx context.Context, task *tasks.Task) error {
	if err := task.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.TaskModel{}
	model.FromDomain(task)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	r.logger.Info("Updated task with id ", task.ID)
	return nil
}

func (r *gormTaskRepository) DeleteByID(ctx context.Context, taskID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", taskID).Delete(&models.TaskModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete task: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("task with ID %s: %w", taskID, tasks.ErrNotFound)
	}

	r.logger.Info("Deleted task with id ", taskID)
	return nil
}
