package models

import (
	"time"

	"github.com/renantrendt/yates-inc-sub001/internal/domain/budget"
)

// BudgetModel is the GORM database model for budgets
type BudgetModel struct {
	ID         string    `gorm:"primaryKey;type:uuid"`
	OwnerID    string    `gorm:"not null;index;type:uuid"`
	Name       string    `gorm:"not null;type:varchar(100)"`
	LimitCents int64     `gorm:"not null"`
	CreatedAt  time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (BudgetModel) TableName() string {
	return "budgets"
}

// ToDomain converts GORM model to domain entity
func (m *BudgetModel) ToDomain() *budget.Budget {
	return &budget.Budget{
		ID:         m.ID,
		OwnerID:    m.OwnerID,
		Name:       m.Name,
		LimitCents: m.LimitCents,
		CreatedAt:  m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *BudgetModel) FromDomain(b *budget.Budget) {
	m.ID = b.ID
	m.OwnerID = b.OwnerID
	m.Name = b.Name
	m.LimitCents = b.LimitCents
	m.CreatedAt = b.CreatedAt
}

// TransactionModel is the GORM database model for ledger entries
type TransactionModel struct {
	ID          string    `gorm:"primaryKey;type:uuid"`
	BudgetID    string    `gorm:"not null;index;type:uuid"`
	AmountCents int64     `gorm:"not null"`
	Category    string    `gorm:"not null;index;type:varchar(50)"`
	Note        string    `gorm:"type:varchar(500)"`
	OccurredAt  time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (TransactionModel) TableName() string {
	return "budget_transactions"
}

// ToDomain converts GORM model to domain entity
func (m *TransactionModel) ToDomain() *budget.Transaction {
	return &budget.Transaction{
		ID:          m.ID,
		BudgetID:    m.BudgetID,
		AmountCents: m.AmountCents,
		Category:    m.Category,
		Note:        m.Note,
		OccurredAt:  m.OccurredAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *TransactionModel) FromDomain(t *budget.Transaction) {
	m.ID = t.ID
	m.BudgetID = t.BudgetID
	m.AmountCents = t.AmountCents
	m.Category = t.Category
	m.Note = t.Note
	m.OccurredAt = t.OccurredAt
}

// PaycheckModel is the GORM database model for paychecks
type PaycheckModel struct {
	ID          string    `gorm:"primaryKey;type:uuid"`
	EmployeeID  string    `gorm:"not null;index;type:uuid"`
	GrossCents  int64     `gorm:"not null"`
	TaxCents    int64     `gorm:"not null"`
	NetCents    int64     `gorm:"not null"`
	PeriodStart time.Time `gorm:"not null"`
	PeriodEnd   time.Time `gorm:"not null"`
	IssuedAt    time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (PaycheckModel) TableName() string {
	return "paychecks"
}

// ToDomain converts GORM model to domain entity
func (m *PaycheckModel) ToDomain() *budget.Paycheck {
	return &budget.Paycheck{
		ID:          m.ID,
		EmployeeID:  m.EmployeeID,
		GrossCents:  m.GrossCents,
		TaxCents:    m.TaxCents,
		NetCents:    m.NetCents,
		PeriodStart: m.PeriodStart,
		PeriodEnd:   m.PeriodEnd,
		IssuedAt:    m.IssuedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *PaycheckModel) FromDomain(p *budget.Paycheck) {
	m.ID = p.ID
	m.EmployeeID = p.EmployeeID
	m.GrossCents = p.GrossCents
	m.TaxCents = p.TaxCents
	m.NetCents = p.NetCents
	m.PeriodStart = p.PeriodStart
	m.PeriodEnd = p.PeriodEnd
	m.IssuedAt = p.IssuedAt
}
