package models

import (
	"strings"
	"time"

	"github.com/renantrendt/yates-inc-sub001/internal/domain/accounts"
)

// ClientModel is the GORM database model for clients
type ClientModel struct {
	ID           string    `gorm:"primaryKey;type:uuid"`
	Username     string    `gorm:"not null;type:varchar(32)"`
	UsernameKey  string    `gorm:"not null;uniqueIndex;type:varchar(32)"` // lowercased username
	Email        string    `gorm:"not null;uniqueIndex;type:varchar(254)"`
	PasswordHash string    `gorm:"not null;type:varchar(255)"`
	MailHandle   string    `gorm:"type:varchar(64)"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (ClientModel) TableName() string {
	return "clients"
}

// ToDomain converts GORM model to domain entity
func (m *ClientModel) ToDomain() *accounts.Client {
	return &accounts.Client{
		ID:           m.ID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		MailHandle:   m.MailHandle,
		CreatedAt:    m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ClientModel) FromDomain(c *accounts.Client) {
	m.ID = c.ID
	m.Username = c.Username
	m.UsernameKey = strings.ToLower(c.Username)
	m.Email = accounts.NormalizeEmail(c.Email)
	m.PasswordHash = c.PasswordHash
	m.MailHandle = c.MailHandle
	m.CreatedAt = c.CreatedAt
}

// EmployeeModel is the GORM database model for employees
type EmployeeModel struct {
	ID             string    `gorm:"primaryKey;type:uuid"`
	EmployeeNumber string    `gorm:"not null;uniqueIndex;type:varchar(6)"`
	Name           string    `gorm:"not null;type:varchar(100)"`
	Role           string    `gorm:"not null;type:varchar(20)"`
	PasswordHash   string    `gorm:"type:varchar(255)"`
	MailHandle     string    `gorm:"type:varchar(64)"`
	SalaryCents    int64     `gorm:"not null"`
	CreatedAt      time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (EmployeeModel) TableName() string {
	return "employees"
}

// ToDomain converts GORM model to domain entity
func (m *EmployeeModel) ToDomain() *accounts.Employee {
	return &accounts.Employee{
		ID:             m.ID,
		EmployeeNumber: m.EmployeeNumber,
		Name:           m.Name,
		Role:           m.Role,
		PasswordHash:   m.PasswordHash,
		MailHandle:     m.MailHandle,
		SalaryCents:    m.SalaryCents,
		CreatedAt:      m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *EmployeeModel) FromDomain(e *accounts.Employee) {
	m.ID = e.ID
	m.EmployeeNumber = e.EmployeeNumber
	m.Name = e.Name
	m.Role = e.Role
	m.PasswordHash = e.PasswordHash
	m.MailHandle = e.MailHandle
	m.SalaryCents = e.SalaryCents
	m.CreatedAt = e.CreatedAt
}
