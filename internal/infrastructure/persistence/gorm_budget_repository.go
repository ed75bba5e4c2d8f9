package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/renantrendt/yates-inc-sub001/internal/domain/budget"
	"github.com/renantrendt/yates-inc-sub001/internal/infrastructure/persistence/models"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormBudgetRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormBudgetRepository creates a new GORM-based budget Repository implementation
func NewGormBudgetRepository(db *gorm.DB, logger logger.Logger) (budget.Repository, error) {
	return &gormBudgetRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormBudgetRepository) CreateBudget(ctx context.Context, b *budget.Budget) error {
	if err := b.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.BudgetModel{}
	model.FromDomain(b)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create budget: %w", err)
	}

	r.logger.Info("Created budget with id ", b.ID)
	return nil
}

func (r *gormBudgetRepository) GetBudget(ctx context.Context, budgetID string) (*budget.Budget, error) {
	var model models.BudgetModel
	if err := r.db.WithContext(ctx).Where("id = ?", budgetID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("budget with ID %s: %w", budgetID, budget.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch budget: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormBudgetRepository) ListBudgets(ctx context.Context, ownerID string) ([]*budget.Budget, error) {
	var modelList []*models.BudgetModel
	err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("created_at asc").Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch budgets: %w", err)
	}

	domainList := make([]*budget.Budget, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

// DeleteBudget removes a budget together with its ledger
func (r *gormBudgetRepository) DeleteBudget(ctx context.Context, budgetID string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("budget_id = ?", budgetID).Delete(&models.TransactionModel{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", budgetID).Delete(&models.BudgetModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("budget with ID %s: %w", budgetID, budget.ErrNotFound)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, budget.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete budget: %w", err)
	}

	r.logger.Info("Deleted budget with id ", budgetID)
	return nil
}

func (r *gormBudgetRepository) AddTransaction(ctx context.Context, t *budget.Transaction) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.TransactionModel{}
	model.FromDomain(t)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	r.logger.Info("Created transaction with id ", t.ID)
	return nil
}

func (r *gormBudgetRepository) ListTransactions(ctx context.Context, budgetID string, query *budget.Query) ([]*budget.Transaction, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.TransactionModel
	dbQuery := r.db.WithContext(ctx).Model(&models.TransactionModel{}).Where("budget_id = ?", budgetID)

	if query.Category != "" {
		dbQuery = dbQuery.Where("category = ?", query.Category)
	}
	if !query.Since.IsZero() {
		dbQuery = dbQuery.Where("occurred_at >= ?", query.Since)
	}

	order := query.SortOrder
	if order == "" {
		order = "asc"
	}
	dbQuery = dbQuery.Order(fmt.Sprintf("occurred_at %s", order))

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	domainList := make([]*budget.Transaction, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

// CreatePaycheck stores a paycheck and, when income is given, its ledger entry atomically
func (r *gormBudgetRepository) CreatePaycheck(ctx context.Context, paycheck *budget.Paycheck, income *budget.Transaction) error {
	if err := paycheck.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}
	if income != nil {
		if err := income.Validate(); err != nil {
			return fmt.Errorf("validation error: %w", err)
		}
	}

	paycheckModel := &models.PaycheckModel{}
	paycheckModel.FromDomain(paycheck)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(paycheckModel).Error; err != nil {
			return err
		}
		if income == nil {
			return nil
		}
		incomeModel := &models.TransactionModel{}
		incomeModel.FromDomain(income)
		return tx.Create(incomeModel).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create paycheck: %w", err)
	}

	r.logger.Info("Created paycheck with id ", paycheck.ID)
	return nil
}

func (r *gormBudgetRepository) ListPaychecks(ctx context.Context, employeeID string) ([]*budget.Paycheck, error) {
	var modelList []*models.PaycheckModel
	err := r.db.WithContext(ctx).Where("employee_id = ?", employeeID).Order("issued_at desc").Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch paychecks: %w", err)
	}

	domainList := make([]*budget.Paycheck, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}
