package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/renantrendt/yates-inc-sub001/internal/domain/accounts"
	"github.com/renantrendt/yates-inc-sub001/internal/infrastructure/persistence/models"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormClientRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormClientRepository creates a new GORM-based ClientRepository implementation
func NewGormClientRepository(db *gorm.DB, logger logger.Logger) (accounts.ClientRepository, error) {
	return &gormClientRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormClientRepository) Create(ctx context.Context, client *accounts.Client) error {
	if err := client.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ClientModel{}
	model.FromDomain(client)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("username or email taken: %w", accounts.ErrConflict)
		}
		return fmt.Errorf("failed to create client: %w", err)
	}

	r.logger.Info("Created client with id ", client.ID)
	return nil
}

func (r *gormClientRepository) GetByID(ctx context.Context, clientID string) (*accounts.Client, error) {
	return r.first(ctx, "id = ?", clientID)
}

func (r *gormClientRepository) GetByUsername(ctx context.Context, username string) (*accounts.Client, error) {
	return r.first(ctx, "username_key = ?", strings.ToLower(username))
}

func (r *gormClientRepository) GetByEmail(ctx context.Context, email string) (*accounts.Client, error) {
	return r.first(ctx, "email = ?", accounts.NormalizeEmail(email))
}

func (r *gormClientRepository) first(ctx context.Context, cond string, arg string) (*accounts.Client, error) {
	var model models.ClientModel
	if err := r.db.WithContext(ctx).Where(cond, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("client %s: %w", arg, accounts.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch client: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormClientRepository) UpdateByID(ctx context.Context, client *accounts.Client) error {
	if err := client.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ClientModel{}
	model.FromDomain(client)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("username or email taken: %w", accounts.ErrConflict)
		}
		return fmt.Errorf("failed to update client: %w", err)
	}

	r.logger.Info("Updated client with id ", client.ID)
	return nil
}

type gormEmployeeRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormEmployeeRepository creates a new GORM-based EmployeeRepository implementation
func NewGormEmployeeRepository(db *gorm.DB, logger logger.Logger) (accounts.EmployeeRepository, error) {
	return &gormEmployeeRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormEmployeeRepository) Create(ctx context.Context, employee *accounts.Employee) error {
	if err := employee.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.EmployeeModel{}
	model.FromDomain(employee)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("employee number %s taken: %w", employee.EmployeeNumber, accounts.ErrConflict)
		}
		return fmt.Errorf("failed to create employee: %w", err)
	}

	r.logger.Info("Created employee with id ", employee.ID)
	return nil
}

func (r *gormEmployeeRepository) GetByID(ctx context.Context, employeeID string) (*accounts.Employee, error) {
	return r.first(ctx, "id = ?", employeeID)
}

func (r *gormEmployeeRepository) GetByNumber(ctx context.Context, employeeNumber string) (*accounts.Employee, error) {
	return r.first(ctx, "employee_number = ?", employeeNumber)
}

func (r *gormEmployeeRepository) first(ctx context.Context, cond string, arg string) (*accounts.Employee, error) {
	var model models.EmployeeModel
	if err := r.db.WithContext(ctx).Where(cond, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("employee %s: %w", arg, accounts.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch employee: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormEmployeeRepository) List(ctx context.Context) ([]*accounts.Employee, error) {
	var modelList []*models.EmployeeModel
	if err := r.db.WithContext(ctx).Order("employee_number asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch employees: %w", err)
	}

	domainList := make([]*accounts.Employee, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormEmployeeRepository) UpdateByID(ctx context.Context, employee *accounts.Employee) error {
	if err := employee.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.EmployeeModel{}
	model.FromDomain(employee)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}

	r.logger.Info("Updated employee with id ", employee.ID)
	return nil
}
