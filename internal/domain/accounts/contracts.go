package accounts

import (
	"context"
	"time"
)

// RegisterRequest carries the fields of a client registration
type RegisterRequest struct {
	Username string
	Email    string
	Password string
}

// SetPasswordRequest carries an employee password set or change.
// AccessCode is required for the first password, CurrentPassword for a change.
type SetPasswordRequest struct {
	EmployeeNumber  string
	NewPassword     string
	CurrentPassword string
	AccessCode      string
}

// CreateEmployeeRequest carries the fields of a new employee record
type CreateEmployeeRequest struct {
	EmployeeNumber string
	Name           string
	Role           string
	SalaryCents    int64
}

// AccountService defines registration, login and credential management.
type AccountService interface {
	// Register creates a client account and returns it.
	Register(ctx context.Context, req RegisterRequest) (*Client, error)

	// Login authenticates a client (username or email) or an employee (employee number)
	// and issues a session token.
	Login(ctx context.Context, kind, identifier, password string) (*Session, error)

	// Logout revokes the token identified by tokenID until it would have expired.
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error

	// CheckPassword reports whether the employee still needs to set a password.
	CheckPassword(ctx context.Context, employeeNumber string) (bool, error)

	// SetPassword sets or changes an employee password.
	SetPassword(ctx context.Context, req SetPasswordRequest) error
}

// DirectoryService defines lookups and staff management.
type DirectoryService interface {
	GetClient(ctx context.Context, clientID string) (*Client, error)
	GetEmployee(ctx context.Context, employeeID string) (*Employee, error)
	ListEmployees(ctx context.Context) ([]*Employee, error)

	// CreateEmployee adds a staff member. Only ceo and manager principals may do so.
	CreateEmployee(ctx context.Context, actor *Principal, req CreateEmployeeRequest) (*Employee, error)
}

// AccessCodeService exposes the time-windowed rotating access code.
type AccessCodeService interface {
	// Current returns the code of the running window and when it expires.
	Current(now time.Time) (string, time.Time)

	// Verify reports whether code matches the current or previous window.
	Verify(code string, now time.Time) bool
}

// ClientRepository defines persistence of clients
type ClientRepository interface {
	Create(ctx context.Context, client *Client) error
	GetByID(ctx context.Context, clientID string) (*Client, error)
	GetByUsername(ctx context.Context, username string) (*Client, error)
	GetByEmail(ctx context.Context, email string) (*Client, error)
	UpdateByID(ctx context.Context, client *Client) error
}

// EmployeeRepository defines persistence of employees
type EmployeeRepository interface {
	Create(ctx context.Context, employee *Employee) error
	GetByID(ctx context.Context, employeeID string) (*Employee, error)
	GetByNumber(ctx context.Context, employeeNumber string) (*Employee, error)
	List(ctx context.Context) ([]*Employee, error)
	UpdateByID(ctx context.Context, employee *Employee) error
}

// PasswordHasher hashes and compares passwords
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenClaims is the verified content of a session token
type TokenClaims struct {
	TokenID   string
	Principal *Principal
	ExpiresAt time.Time
}

// TokenIssuer signs and verifies session tokens
type TokenIssuer interface {
	Issue(principal *Principal, now time.Time) (token string, claims *TokenClaims, err error)
	Verify(token string) (*TokenClaims, error)
}

// SessionStore tracks revoked session tokens
type SessionStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
