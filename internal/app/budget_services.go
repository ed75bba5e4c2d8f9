package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/accounts"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/budget"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/events"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/logger"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/tracing"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/validators"
)

// budgetService implements the BudgetService interface
type budgetService struct {
	repo   budget.Repository
	logger logger.Logger
	now    func() time.Time
}

// NewBudgetService creates a new instance of BudgetService
func NewBudgetService(repo budget.Repository, logger logger.Logger) (budget.BudgetService, error) {
	return &budgetService{
		repo:   repo,
		logger: logger.Named("budget"),
		now:    clock,
	}, nil
}

func (s *budgetService) CreateBudget(ctx context.Context, ownerID, name string, limitCents int64) (*budget.Budget, error) {
	b := &budget.Budget{
		ID:         uuid.NewString(),
		OwnerID:    ownerID,
		Name:       strings.TrimSpace(name),
		LimitCents: limitCents,
		CreatedAt:  s.now(),
	}
	if err := s.repo.CreateBudget(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *budgetService) ListBudgets(ctx context.Context, ownerID string) ([]*budget.Budget, error) {
	return s.repo.ListBudgets(ctx, ownerID)
}

// owned loads a budget and checks it belongs to ownerID
func (s *budgetService) owned(ctx context.Context, ownerID, budgetID string) (*budget.Budget, error) {
	b, err := s.repo.GetBudget(ctx, budgetID)
	if err != nil {
		return nil, err
	}
	if b.OwnerID != ownerID {
		return nil, budget.ErrForbidden
	}
	return b, nil
}

func (s *budgetService) AddTransaction(ctx context.Context, ownerID, budgetID string, amountCents int64, category, note string, occurredAt time.Time) (*budget.Transaction, error) {
	if _, err := s.owned(ctx, ownerID, budgetID); err != nil {
		return nil, err
	}
	if occurredAt.IsZero() {
		occurredAt = s.now()
	}

	tx := &budget.Transaction{
		ID:          uuid.NewString(),
		BudgetID:    budgetID,
		AmountCents: amountCents,
		Category:    strings.ToLower(strings.TrimSpace(category)),
		Note:        note,
		OccurredAt:  occurredAt.UTC(),
	}
	if err := s.repo.AddTransaction(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (s *budgetService) ListTransactions(ctx context.Context, ownerID, budgetID string, query *budget.Query) ([]*budget.Transaction, error) {
	if _, err := s.owned(ctx, ownerID, budgetID); err != nil {
		return nil, err
	}
	if query == nil {
		query = &budget.Query{}
	}
	return s.repo.ListTransactions(ctx, budgetID, query)
}

func (s *budgetService) Summary(ctx context.Context, ownerID, budgetID string) (*budget.Summary, error) {
	b, err := s.owned(ctx, ownerID, budgetID)
	if err != nil {
		return nil, err
	}
	txs, err := s.repo.ListTransactions(ctx, budgetID, &budget.Query{})
	if err != nil {
		return nil, err
	}
	return budget.Summarize(b, txs), nil
}

func (s *budgetService) DeleteBudget(ctx context.Context, ownerID, budgetID string) error {
	if _, err := s.owned(ctx, ownerID, budgetID); err != nil {
		return err
	}
	if err := s.repo.DeleteBudget(ctx, budgetID); err != nil {
		return err
	}
	s.logger.Info("Deleted budget ", budgetID)
	return nil
}

// payrollService implements the PayrollService interface
type payrollService struct {
	repo      budget.Repository
	employees accounts.EmployeeRepository
	publisher events.Publisher
	logger    logger.Logger
	now       func() time.Time
}

// NewPayrollService creates a new instance of PayrollService
func NewPayrollService(repo budget.Repository, employees accounts.EmployeeRepository, publisher events.Publisher, logger logger.Logger) (budget.PayrollService, error) {
	return &payrollService{
		repo:      repo,
		employees: employees,
		publisher: publisher,
		logger:    logger.Named("payroll"),
		now:       clock,
	}, nil
}

// IssuePaycheck withholds tax from the gross and, when a budget of the employee is
// named, posts the net as income to it.
func (s *payrollService) IssuePaycheck(ctx context.Context, req budget.IssueRequest) (paycheck *budget.Paycheck, err error) {
	ctx, span := tracing.Start(ctx, "budget.IssuePaycheck")
	defer func() { tracing.End(span, err) }()

	employee, err := s.employees.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}

	gross := req.GrossCents
	if gross == 0 {
		gross = budget.GrossFromSalary(employee.SalaryCents)
	}
	if gross <= 0 {
		return nil, fmt.Errorf("%w: employee %s has no salary to pay", validators.ErrValidation, employee.EmployeeNumber)
	}
	tax := budget.Withholding(gross)

	now := s.now()
	paycheck = &budget.Paycheck{
		ID:          uuid.NewString(),
		EmployeeID:  employee.ID,
		GrossCents:  gross,
		TaxCents:    tax,
		NetCents:    gross - tax,
		PeriodStart: req.PeriodStart.UTC(),
		PeriodEnd:   req.PeriodEnd.UTC(),
		IssuedAt:    now,
	}

	var income *budget.Transaction
	if req.BudgetID != "" {
		b, err := s.repo.GetBudget(ctx, req.BudgetID)
		if err != nil {
			return nil, err
		}
		if b.OwnerID != employee.ID {
			return nil, budget.ErrForbidden
		}
		income = &budget.Transaction{
			ID:          uuid.NewString(),
			BudgetID:    b.ID,
			AmountCents: paycheck.NetCents,
			Category:    budget.CategoryPaycheck,
			Note:        fmt.Sprintf("paycheck %s to %s", paycheck.PeriodStart.Format(time.DateOnly), paycheck.PeriodEnd.Format(time.DateOnly)),
			OccurredAt:  now,
		}
	}

	if err := s.repo.CreatePaycheck(ctx, paycheck, income); err != nil {
		return nil, err
	}

	payload := events.PaycheckIssuedPayload{PaycheckID: paycheck.ID, EmployeeID: employee.ID, NetCents: paycheck.NetCents}
	if err := s.publisher.Publish(ctx, events.PaycheckIssued, payload); err != nil {
		s.logger.Warn("Failed to publish ", events.PaycheckIssued, ": ", err)
	}

	s.logger.Info("Issued paycheck ", paycheck.ID, " to employee ", employee.EmployeeNumber)
	return paycheck, nil
}

func (s *payrollService) ListPaychecks(ctx context.Context, employeeID string) ([]*budget.Paycheck, error) {
	return s.repo.ListPaychecks(ctx, employeeID)
}
