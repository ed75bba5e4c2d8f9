package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/accounts"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/events"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/logger"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/tracing"
)

// accountService implements the AccountService interface
type accountService struct {
	clients     accounts.ClientRepository
	employees   accounts.EmployeeRepository
	hasher      accounts.PasswordHasher
	tokens      accounts.TokenIssuer
	sessions    accounts.SessionStore
	accessCodes accounts.AccessCodeService
	publisher   events.Publisher
	logger      logger.Logger
	now         func() time.Time
}

// NewAccountService creates a new instance of AccountService
func NewAccountService(
	clients accounts.ClientRepository,
	employees accounts.EmployeeRepository,
	hasher accounts.PasswordHasher,
	tokens accounts.TokenIssuer,
	sessions accounts.SessionStore,
	accessCodes accounts.AccessCodeService,
	publisher events.Publisher,
	logger logger.Logger,
) (accounts.AccountService, error) {
	return &accountService{
		clients:     clients,
		employees:   employees,
		hasher:      hasher,
		tokens:      tokens,
		sessions:    sessions,
		accessCodes: accessCodes,
		publisher:   publisher,
		logger:      logger.Named("accounts"),
		now:         clock,
	}, nil
}

// Register creates a client account. Username and email are unique regardless of case.
func (s *accountService) Register(ctx context.Context, req accounts.RegisterRequest) (client *accounts.Client, err error) {
	ctx, span := tracing.Start(ctx, "accounts.Register")
	defer func() { tracing.End(span, err) }()

	if err := accounts.ValidatePassword(req.Password); err != nil {
		return nil, err
	}

	client = &accounts.Client{
		ID:        uuid.NewString(),
		Username:  strings.TrimSpace(req.Username),
		Email:     accounts.NormalizeEmail(req.Email),
		CreatedAt: s.now(),
	}

	if _, err := s.clients.GetByUsername(ctx, client.Username); err == nil {
		return nil, fmt.Errorf("username %s: %w", client.Username, accounts.ErrConflict)
	} else if !errors.Is(err, accounts.ErrNotFound) {
		return nil, err
	}
	if _, err := s.clients.GetByEmail(ctx, client.Email); err == nil {
		return nil, fmt.Errorf("email %s: %w", client.Email, accounts.ErrConflict)
	} else if !errors.Is(err, accounts.ErrNotFound) {
		return nil, err
	}

	client.PasswordHash, err = s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}
	if err := s.clients.Create(ctx, client); err != nil {
		return nil, err
	}

	s.publish(ctx, events.AccountRegistered, events.AccountRegisteredPayload{ClientID: client.ID, Username: client.Username})
	s.logger.Info("Registered client ", client.Username)
	return client, nil
}

// Login authenticates a client by username or email, or an employee by number.
// Every failure is reported as ErrInvalidCredentials.
func (s *accountService) Login(ctx context.Context, kind, identifier, password string) (session *accounts.Session, err error) {
	ctx, span := tracing.Start(ctx, "accounts.Login")
	defer func() { tracing.End(span, err) }()

	identifier = strings.TrimSpace(identifier)
	var principal *accounts.Principal
	var hash string

	switch kind {
	case accounts.KindClient:
		client, err := s.findClient(ctx, identifier)
		if err != nil {
			return nil, err
		}
		principal, hash = client.Principal(), client.PasswordHash
	case accounts.KindEmployee:
		employee, err := s.employees.GetByNumber(ctx, identifier)
		if err != nil {
			return nil, s.credentialError(err)
		}
		if !employee.HasPassword() {
			return nil, accounts.ErrInvalidCredentials
		}
		principal, hash = employee.Principal(), employee.PasswordHash
	default:
		return nil, accounts.ErrInvalidCredentials
	}

	if err := s.hasher.Compare(hash, password); err != nil {
		return nil, accounts.ErrInvalidCredentials
	}

	token, claims, err := s.tokens.Issue(principal, s.now())
	if err != nil {
		return nil, err
	}

	s.logger.Info("Login of ", principal.Kind, " ", principal.ID)
	return &accounts.Session{
		Principal: principal,
		Token:     token,
		ExpiresAt: claims.ExpiresAt,
	}, nil
}

func (s *accountService) findClient(ctx context.Context, identifier string) (*accounts.Client, error) {
	client, err := s.clients.GetByUsername(ctx, identifier)
	if err == nil {
		return client, nil
	}
	if !errors.Is(err, accounts.ErrNotFound) || !strings.Contains(identifier, "@") {
		return nil, s.credentialError(err)
	}
	client, err = s.clients.GetByEmail(ctx, identifier)
	if err != nil {
		return nil, s.credentialError(err)
	}
	return client, nil
}

// credentialError hides lookups misses behind ErrInvalidCredentials and passes storage errors on
func (s *accountService) credentialError(err error) error {
	if errors.Is(err, accounts.ErrNotFound) {
		return accounts.ErrInvalidCredentials
	}
	return err
}

// Logout revokes the token until it would have expired on its own
func (s *accountService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(s.now())
	if err := s.sessions.Revoke(ctx, tokenID, ttl); err != nil {
		return err
	}
	s.logger.Debug("Revoked session ", tokenID)
	return nil
}

// CheckPassword reports whether the employee still has to set a password
func (s *accountService) CheckPassword(ctx context.Context, employeeNumber string) (bool, error) {
	employee, err := s.employees.GetByNumber(ctx, employeeNumber)
	if err != nil {
		return false, err
	}
	return !employee.HasPassword(), nil
}

// SetPassword sets the first password of an employee with a valid access code, or
// changes it given the current one.
func (s *accountService) SetPassword(ctx context.Context, req accounts.SetPasswordRequest) (err error) {
	ctx, span := tracing.Start(ctx, "accounts.SetPassword")
	defer func() { tracing.End(span, err) }()

	if err := accounts.ValidatePassword(req.NewPassword); err != nil {
		return err
	}

	employee, err := s.employees.GetByNumber(ctx, req.EmployeeNumber)
	if err != nil {
		return err
	}

	if employee.HasPassword() {
		if req.CurrentPassword == "" {
			return accounts.ErrPasswordAlreadySet
		}
		if err := s.hasher.Compare(employee.PasswordHash, req.CurrentPassword); err != nil {
			return accounts.ErrInvalidCredentials
		}
	} else if !s.accessCodes.Verify(strings.TrimSpace(req.AccessCode), s.now()) {
		return accounts.ErrInvalidAccessCode
	}

	employee.PasswordHash, err = s.hasher.Hash(req.NewPassword)
	if err != nil {
		return err
	}
	if err := s.employees.UpdateByID(ctx, employee); err != nil {
		return err
	}

	s.logger.Info("Password set for employee ", employee.EmployeeNumber)
	return nil
}

func (s *accountService) publish(ctx context.Context, key string, payload any) {
	if err := s.publisher.Publish(ctx, key, payload); err != nil {
		s.logger.Warn("Failed to publish ", key, ": ", err)
	}
}

// directoryService implements the DirectoryService interface
type directoryService struct {
	clients   accounts.ClientRepository
	employees accounts.EmployeeRepository
	logger    logger.Logger
	now       func() time.Time
}

// NewDirectoryService creates a new instance of DirectoryService
func NewDirectoryService(clients accounts.ClientRepository, employees accounts.EmployeeRepository, logger logger.Logger) (accounts.DirectoryService, error) {
	return &directoryService{
		clients:   clients,
		employees: employees,
		logger:    logger.Named("directory"),
		now:       clock,
	}, nil
}

func (s *directoryService) GetClient(ctx context.Context, clientID string) (*accounts.Client, error) {
	return s.clients.GetByID(ctx, clientID)
}

func (s *directoryService) GetEmployee(ctx context.Context, employeeID string) (*accounts.Employee, error) {
	return s.employees.GetByID(ctx, employeeID)
}

func (s *directoryService) ListEmployees(ctx context.Context) ([]*accounts.Employee, error) {
	return s.employees.List(ctx)
}

// CreateEmployee adds a staff member. Managers may hire anyone but a CEO.
func (s *directoryService) CreateEmployee(ctx context.Context, actor *accounts.Principal, req accounts.CreateEmployeeRequest) (*accounts.Employee, error) {
	if actor == nil || !actor.IsEmployee() || !actor.HasRole(accounts.RoleCEO, accounts.RoleManager) {
		return nil, accounts.ErrForbidden
	}
	if req.Role == accounts.RoleCEO && actor.Role != accounts.RoleCEO {
		return nil, accounts.ErrForbidden
	}

	employee := &accounts.Employee{
		ID:             uuid.NewString(),
		EmployeeNumber: strings.TrimSpace(req.EmployeeNumber),
		Name:           strings.TrimSpace(req.Name),
		Role:           req.Role,
		SalaryCents:    req.SalaryCents,
		CreatedAt:      s.now(),
	}
	if err := employee.Validate(); err != nil {
		return nil, err
	}
	if err := s.employees.Create(ctx, employee); err != nil {
		return nil, err
	}

	s.logger.Info("Employee ", employee.EmployeeNumber, " created by ", actor.ID)
	return employee, nil
}
