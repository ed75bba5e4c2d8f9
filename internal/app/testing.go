//go:build integration
// +build integration

package app

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/renantrendt/yates-inc-sub001/internal/domain/accounts"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/budget"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/game"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/mail"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/store"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/tasks"
	"github.com/renantrendt/yates-inc-sub001/internal/infrastructure/connector"
	"github.com/renantrendt/yates-inc-sub001/internal/infrastructure/cryptography"
	"github.com/renantrendt/yates-inc-sub001/internal/infrastructure/persistence"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/config"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/testutil"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// Test constants for credentials
const (
	TestJWTSecret        = "integration-jwt-secret-0123456789"
	TestAccessCodeSecret = "integration-access-code-secret-01"
	TestPassword         = "correct horse battery"
)

// RecordedEvent is an event captured by RecordingPublisher
type RecordedEvent struct {
	RoutingKey string
	Payload    any
}

// RecordingPublisher keeps published events in memory
type RecordingPublisher struct {
	mu     sync.Mutex
	events []RecordedEvent
}

func (p *RecordingPublisher) Publish(_ context.Context, routingKey string, payload any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, RecordedEvent{RoutingKey: routingKey, Payload: payload})
	return nil
}

func (p *RecordingPublisher) Close() error {
	return nil
}

// Keys returns the routing keys published so far, in order
func (p *RecordingPublisher) Keys() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	keys := make([]string, 0, len(p.events))
	for _, e := range p.events {
		keys = append(keys, e.RoutingKey)
	}
	return keys
}

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	AccountService   accounts.AccountService
	DirectoryService accounts.DirectoryService
	MailService      mail.MailService
	TaskService      tasks.TaskService
	BudgetService    budget.BudgetService
	PayrollService   budget.PayrollService
	CheckoutService  store.CheckoutService
	GameService      game.GameService

	AccessCodes accounts.AccessCodeService
	Tokens      accounts.TokenIssuer
	Sessions    accounts.SessionStore
	Market      *game.Market
	Publisher   *RecordingPublisher

	// Infrastructure
	DBContext *persistence.TestContext
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)
	publisher := &RecordingPublisher{}

	hasher, err := cryptography.NewBcryptHasher(bcrypt.MinCost, logger)
	require.NoError(t, err, "Failed to create password hasher")

	tokens, err := cryptography.NewJWTIssuer(TestJWTSecret, time.Hour, logger)
	require.NoError(t, err, "Failed to create token issuer")

	accessCodes, err := cryptography.NewAccessCodeService(TestAccessCodeSecret, time.Minute, 6, logger)
	require.NoError(t, err, "Failed to create access code service")

	sessions := connector.NewMemorySessionStore()
	market := game.NewMarket(game.DefaultListings, 42)

	s := &TestServices{
		AccessCodes: accessCodes,
		Tokens:      tokens,
		Sessions:    sessions,
		Market:      market,
		Publisher:   publisher,
		DBContext:   dbContext,
	}

	s.AccountService, err = NewAccountService(dbContext.ClientRepo, dbContext.EmployeeRepo, hasher, tokens, sessions, accessCodes, publisher, logger)
	require.NoError(t, err)

	s.DirectoryService, err = NewDirectoryService(dbContext.ClientRepo, dbContext.EmployeeRepo, logger)
	require.NoError(t, err)

	s.MailService, err = NewMailService(dbContext.MailRepo, publisher, logger)
	require.NoError(t, err)

	s.TaskService, err = NewTaskService(dbContext.TaskRepo, logger)
	require.NoError(t, err)

	s.BudgetService, err = NewBudgetService(dbContext.BudgetRepo, logger)
	require.NoError(t, err)

	s.PayrollService, err = NewPayrollService(dbContext.BudgetRepo, dbContext.EmployeeRepo, publisher, logger)
	require.NoError(t, err)

	storeSettings := &config.StoreSettings{TaxRate: 0.0825, ShippingCents: 499, FreeShippingThresholdCents: 5000}
	s.CheckoutService, err = NewCheckoutService(storeSettings, "usd", dbContext.PurchaseRepo, connector.NewHouseGateway(logger), publisher, logger)
	require.NoError(t, err)

	gameSettings := &config.GameSettings{MarketTick: time.Second, OfflineCap: 8 * time.Hour, Seed: 7, MaxClicksPerRequest: 100}
	s.GameService, err = NewGameService(gameSettings, dbContext.SaveRepo, market, publisher, logger)
	require.NoError(t, err)

	return s
}

// CreateEmployee stores an employee directly, bypassing the role checks of DirectoryService
func (s *TestServices) CreateEmployee(t *testing.T, number, role string) *accounts.Employee {
	t.Helper()

	employee := persistence.CreateTestEmployee(t, number, role)
	require.NoError(t, s.DBContext.EmployeeRepo.Create(context.Background(), employee))
	return employee
}
