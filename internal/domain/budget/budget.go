// Package budget defines budgets, their ledger of transactions and employee paychecks.
package budget

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/renantrendt/yates-inc-sub001/internal/pkg/validators"
)

// PayPeriodsPerYear is used to derive a paycheck from an annual salary.
const PayPeriodsPerYear = 26

// CategoryPaycheck is the category of the income posted by a paycheck.
const CategoryPaycheck = "paycheck"

var (
	// ErrNotFound is returned when a budget or paycheck does not exist.
	ErrNotFound = errors.New("budget not found")

	// ErrForbidden is returned when a principal touches a budget it does not own.
	ErrForbidden = errors.New("budget belongs to another owner")
)

// Budget is a spending envelope owned by a client or employee
type Budget struct {
	ID         string    `validate:"required,uuid4"`
	OwnerID    string    `validate:"required,uuid4"`
	Name       string    `validate:"required,min=1,max=100"`
	LimitCents int64     `validate:"required,gt=0"`
	CreatedAt  time.Time `validate:"required"`
}

// Validate for validating Budget struct
func (b *Budget) Validate() error {
	return validators.Struct(b)
}

// Transaction is a ledger entry. Negative amounts are expenses.
type Transaction struct {
	ID          string    `validate:"required,uuid4"`
	BudgetID    string    `validate:"required,uuid4"`
	AmountCents int64     `validate:"required,ne=0"`
	Category    string    `validate:"required,min=1,max=50"`
	Note        string    `validate:"max=500"`
	OccurredAt  time.Time `validate:"required"`
}

// Validate for validating Transaction struct
func (t *Transaction) Validate() error {
	return validators.Struct(t)
}

// Paycheck is a salary payment to an employee for a period
type Paycheck struct {
	ID          string    `validate:"required,uuid4"`
	EmployeeID  string    `validate:"required,uuid4"`
	GrossCents  int64     `validate:"required,gt=0"`
	TaxCents    int64     `validate:"min=0"`
	NetCents    int64     `validate:"min=0"`
	PeriodStart time.Time `validate:"required"`
	PeriodEnd   time.Time `validate:"required,gtfield=PeriodStart"`
	IssuedAt    time.Time `validate:"required"`
}

// Validate for validating Paycheck struct
func (p *Paycheck) Validate() error {
	if err := validators.Struct(p); err != nil {
		return err
	}
	if p.GrossCents != p.TaxCents+p.NetCents {
		return fmt.Errorf("%w: gross %d does not equal tax %d plus net %d", validators.ErrValidation, p.GrossCents, p.TaxCents, p.NetCents)
	}
	return nil
}

// Summary aggregates a budget's ledger
type Summary struct {
	Budget         *Budget
	IncomeCents    int64
	ExpenseCents   int64
	BalanceCents   int64
	RemainingCents int64
	OverLimit      bool
}

// Summarize folds transactions into a Summary. Expenses count against the limit.
func Summarize(b *Budget, txs []*Transaction) *Summary {
	s := &Summary{Budget: b}
	for _, tx := range txs {
		if tx.AmountCents > 0 {
			s.IncomeCents += tx.AmountCents
		} else {
			s.ExpenseCents += -tx.AmountCents
		}
	}
	s.BalanceCents = s.IncomeCents - s.ExpenseCents
	s.RemainingCents = b.LimitCents - s.ExpenseCents
	s.OverLimit = s.RemainingCents < 0
	return s
}

// taxBracket applies Rate to the portion of gross up to UpToCents.
// The last bracket has UpToCents 0 and is unbounded.
type taxBracket struct {
	UpToCents int64
	Rate      float64
}

var withholdingBrackets = []taxBracket{
	{UpToCents: 100_000, Rate: 0.10},
	{UpToCents: 500_000, Rate: 0.20},
	{UpToCents: 0, Rate: 0.30},
}

// Withholding computes the tax withheld from a gross paycheck with progressive brackets:
// 10% up to 1,000.00, 20% up to 5,000.00 and 30% above. Each slice is rounded half up.
func Withholding(grossCents int64) int64 {
	var tax int64
	var lower int64
	for _, b := range withholdingBrackets {
		if grossCents <= lower {
			break
		}
		upper := grossCents
		if b.UpToCents > 0 && b.UpToCents < grossCents {
			upper = b.UpToCents
		}
		tax += roundHalfUp(float64(upper-lower) * b.Rate)
		lower = upper
	}
	return tax
}

// GrossFromSalary derives the per-period gross of an annual salary.
func GrossFromSalary(annualCents int64) int64 {
	return roundHalfUp(float64(annualCents) / PayPeriodsPerYear)
}

func roundHalfUp(v float64) int64 {
	return int64(v + 0.5)
}

// IssueRequest asks for a paycheck. GrossCents 0 derives it from the salary.
// BudgetID, when set, receives the net as income.
type IssueRequest struct {
	EmployeeID  string
	GrossCents  int64
	PeriodStart time.Time
	PeriodEnd   time.Time
	BudgetID    string
}

// Query filters and pages ledger listings
type Query struct {
	Category  string    `validate:"omitempty,max=50"`
	Since     time.Time `validate:"omitempty"`
	Limit     int       `validate:"omitempty,gt=0,max=500"`
	Offset    int       `validate:"omitempty,gte=0"`
	SortOrder string    `validate:"omitempty,oneof=asc desc"`
}

// Validate for validating Query struct
func (q *Query) Validate() error {
	if q.Limit < 0 || q.Offset < 0 {
		return fmt.Errorf("%w: limit and offset must not be negative", validators.ErrValidation)
	}
	return validators.Struct(q)
}

// BudgetService defines budget and ledger operations
type BudgetService interface {
	CreateBudget(ctx context.Context, ownerID, name string, limitCents int64) (*Budget, error)
	ListBudgets(ctx context.Context, ownerID string) ([]*Budget, error)
	AddTransaction(ctx context.Context, ownerID, budgetID string, amountCents int64, category, note string, occurredAt time.Time) (*Transaction, error)
	ListTransactions(ctx context.Context, ownerID, budgetID string, query *Query) ([]*Transaction, error)
	Summary(ctx context.Context, ownerID, budgetID string) (*Summary, error)
	DeleteBudget(ctx context.Context, ownerID, budgetID string) error
}

// PayrollService defines paycheck operations
type PayrollService interface {
	IssuePaycheck(ctx context.Context, req IssueRequest) (*Paycheck, error)
	ListPaychecks(ctx context.Context, employeeID string) ([]*Paycheck, error)
}

// Repository defines persistence of budgets, transactions and paychecks
type Repository interface {
	CreateBudget(ctx context.Context, budget *Budget) error
	GetBudget(ctx context.Context, budgetID string) (*Budget, error)
	ListBudgets(ctx context.Context, ownerID string) ([]*Budget, error)
	DeleteBudget(ctx context.Context, budgetID string) error

	AddTransaction(ctx context.Context, tx *Transaction) error
	ListTransactions(ctx context.Context, budgetID string, query *Query) ([]*Transaction, error)

	CreatePaycheck(ctx context.Context, paycheck *Paycheck, income *Transaction) error
	ListPaychecks(ctx context.Context, employeeID string) ([]*Paycheck, error)
}
