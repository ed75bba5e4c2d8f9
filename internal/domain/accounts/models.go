package accounts

import (
	"fmt"
	"strings"
	"time"

	"github.com/renantrendt/yates-inc-sub001/internal/pkg/validators"
)

// Client is a customer account of the store
type Client struct {
	ID           string    `validate:"required,uuid4"`
	Username     string    `validate:"required,username"`
	Email        string    `validate:"required,email,max=254"`
	PasswordHash string    `validate:"required"`
	MailHandle   string    `validate:"omitempty,max=64"`
	CreatedAt    time.Time `validate:"required"`
}

// Validate for validating Client struct
func (c *Client) Validate() error {
	return validators.Struct(c)
}

// Principal returns the authenticated identity of the client
func (c *Client) Principal() *Principal {
	return &Principal{
		ID:   c.ID,
		Kind: KindClient,
		Name: c.Username,
		Role: RoleClient,
	}
}

// Employee is a member of Yates Inc. staff
type Employee struct {
	ID             string    `validate:"required,uuid4"`
	EmployeeNumber string    `validate:"required,employeenumber"`
	Name           string    `validate:"required,min=1,max=100"`
	Role           string    `validate:"required,oneof=ceo manager engineer sales intern"`
	PasswordHash   string    // empty until the employee sets one
	MailHandle     string    `validate:"omitempty,max=64"`
	SalaryCents    int64     `validate:"min=0"`
	CreatedAt      time.Time `validate:"required"`
}

// Validate for validating Employee struct
func (e *Employee) Validate() error {
	return validators.Struct(e)
}

// HasPassword reports whether the employee has set a password
func (e *Employee) HasPassword() bool {
	return e.PasswordHash != ""
}

// Principal returns the authenticated identity of the employee
func (e *Employee) Principal() *Principal {
	return &Principal{
		ID:   e.ID,
		Kind: KindEmployee,
		Name: e.Name,
		Role: e.Role,
	}
}

// Principal is an authenticated identity. It never carries password material.
type Principal struct {
	ID   string
	Kind string
	Name string
	Role string
}

// IsEmployee reports whether the principal is a staff member
func (p *Principal) IsEmployee() bool {
	return p.Kind == KindEmployee
}

// HasRole reports whether the principal holds one of roles
func (p *Principal) HasRole(roles ...string) bool {
	for _, r := range roles {
		if p.Role == r {
			return true
		}
	}
	return false
}

// Session pairs a principal with the signed token issued at login
type Session struct {
	Principal *Principal
	Token     string
	ExpiresAt time.Time
}

// ValidatePassword checks the password length bounds
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength || len(password) > MaxPasswordLength {
		return fmt.Errorf("%w: password must be between %d and %d characters", validators.ErrValidation, MinPasswordLength, MaxPasswordLength)
	}
	if strings.TrimSpace(password) == "" {
		return fmt.Errorf("%w: password must not be blank", validators.ErrValidation)
	}
	return nil
}

// NormalizeEmail lowercases and trims an email address for lookups
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
