//go:build unit
// +build unit

package v1

import (
	"context"
	"time"

	"github.com/renantrendt/yates-inc-sub001/internal/domain/accounts"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/budget"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/game"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/mail"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/store"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/tasks"
	"github.com/stretchr/testify/mock"
)

// MockAccountService is a mock implementation of AccountService
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) Register(ctx context.Context, req accounts.RegisterRequest) (*accounts.Client, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.Client), args.Error(1)
}

func (m *MockAccountService) Login(ctx context.Context, kind, identifier, password string) (*accounts.Session, error) {
	args := m.Called(ctx, kind, identifier, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.Session), args.Error(1)
}

func (m *MockAccountService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	args := m.Called(ctx, tokenID, expiresAt)
	return args.Error(0)
}

func (m *MockAccountService) CheckPassword(ctx context.Context, employeeNumber string) (bool, error) {
	args := m.Called(ctx, employeeNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountService) SetPassword(ctx context.Context, req accounts.SetPasswordRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

// MockDirectoryService is a mock implementation of DirectoryService
type MockDirectoryService struct {
	mock.Mock
}

func (m *MockDirectoryService) GetClient(ctx context.Context, clientID string) (*accounts.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.Client), args.Error(1)
}

func (m *MockDirectoryService) GetEmployee(ctx context.Context, employeeID string) (*accounts.Employee, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.Employee), args.Error(1)
}

func (m *MockDirectoryService) ListEmployees(ctx context.Context) ([]*accounts.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*accounts.Employee), args.Error(1)
}

func (m *MockDirectoryService) CreateEmployee(ctx context.Context, actor *accounts.Principal, req accounts.CreateEmployeeRequest) (*accounts.Employee, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.Employee), args.Error(1)
}

// MockAccessCodeService is a mock implementation of AccessCodeService
type MockAccessCodeService struct {
	mock.Mock
}

func (m *MockAccessCodeService) Current(now time.Time) (string, time.Time) {
	args := m.Called(now)
	return args.String(0), args.Get(1).(time.Time)
}

func (m *MockAccessCodeService) Verify(code string, now time.Time) bool {
	args := m.Called(code, now)
	return args.Bool(0)
}

// MockTokenIssuer is a mock implementation of TokenIssuer
type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) Issue(principal *accounts.Principal, now time.Time) (string, *accounts.TokenClaims, error) {
	args := m.Called(principal, now)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*accounts.TokenClaims), args.Error(2)
}

func (m *MockTokenIssuer) Verify(token string) (*accounts.TokenClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.TokenClaims), args.Error(1)
}

// MockSessionStore is a mock implementation of SessionStore
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, ttl)
	return args.Error(0)
}

func (m *MockSessionStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

// MockMailService is a mock implementation of MailService
type MockMailService struct {
	mock.Mock
}

func (m *MockMailService) ClaimHandle(ctx context.Context, principal *accounts.Principal, name string) (*mail.Handle, error) {
	args := m.Called(ctx, principal, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mail.Handle), args.Error(1)
}

func (m *MockMailService) HandleOf(ctx context.Context, principal *accounts.Principal) (*mail.Handle, error) {
	args := m.Called(ctx, principal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mail.Handle), args.Error(1)
}

func (m *MockMailService) Start(ctx context.Context, principal *accounts.Principal, req mail.StartRequest) (*mail.Conversation, *mail.Message, error) {
	args := m.Called(ctx, principal, req)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*mail.Conversation), args.Get(1).(*mail.Message), args.Error(2)
}

func (m *MockMailService) Reply(ctx context.Context, principal *accounts.Principal, conversationID, body string) (*mail.Message, error) {
	args := m.Called(ctx, principal, conversationID, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mail.Message), args.Error(1)
}

func (m *MockMailService) ListConversations(ctx context.Context, principal *accounts.Principal) ([]*mail.ConversationSummary, error) {
	args := m.Called(ctx, principal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*mail.ConversationSummary), args.Error(1)
}

func (m *MockMailService) ListMessages(ctx context.Context, principal *accounts.Principal, conversationID string) ([]*mail.Message, error) {
	args := m.Called(ctx, principal, conversationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*mail.Message), args.Error(1)
}

func (m *MockMailService) MarkRead(ctx context.Context, principal *accounts.Principal, conversationID string) error {
	args := m.Called(ctx, principal, conversationID)
	return args.Error(0)
}

// MockTaskService is a mock implementation of TaskService
type MockTaskService struct {
	mock.Mock
}

func (m *MockTaskService) Create(ctx context.Context, req tasks.CreateRequest) (*tasks.Task, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tasks.Task), args.Error(1)
}

func (m *MockTaskService) List(ctx context.Context, query *tasks.Query) ([]*tasks.Task, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*tasks.Task), args.Error(1)
}

func (m *MockTaskService) GetByID(ctx context.Context, taskID string) (*tasks.Task, error) {
	args := m.Called(ctx, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tasks.Task), args.Error(1)
}

func (m *MockTaskService) UpdateStatus(ctx context.Context, taskID, status string) (*tasks.Task, error) {
	args := m.Called(ctx, taskID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tasks.Task), args.Error(1)
}

func (m *MockTaskService) DeleteByID(ctx context.Context, taskID string) error {
	args := m.Called(ctx, taskID)
	return args.Error(0)
}

// MockBudgetService is a mock implementation of BudgetService
type MockBudgetService struct {
	mock.Mock
}

func (m *MockBudgetService) CreateBudget(ctx context.Context, ownerID, name string, limitCents int64) (*budget.Budget, error) {
	args := m.Called(ctx, ownerID, name, limitCents)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*budget.Budget), args.Error(1)
}

func (m *MockBudgetService) ListBudgets(ctx context.Context, ownerID string) ([]*budget.Budget, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*budget.Budget), args.Error(1)
}

func (m *MockBudgetService) AddTransaction(ctx context.Context, ownerID, budgetID string, amountCents int64, category, note string, occurredAt time.Time) (*budget.Transaction, error) {
	args := m.Called(ctx, ownerID, budgetID, amountCents, category, note, occurredAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*budget.Transaction), args.Error(1)
}

func (m *MockBudgetService) ListTransactions(ctx context.Context, ownerID, budgetID string, query *budget.Query) ([]*budget.Transaction, error) {
	args := m.Called(ctx, ownerID, budgetID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*budget.Transaction), args.Error(1)
}

func (m *MockBudgetService) Summary(ctx context.Context, ownerID, budgetID string) (*budget.Summary, error) {
	args := m.Called(ctx, ownerID, budgetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*budget.Summary), args.Error(1)
}

func (m *MockBudgetService) DeleteBudget(ctx context.Context, ownerID, budgetID string) error {
	args := m.Called(ctx, ownerID, budgetID)
	return args.Error(0)
}

// MockPayrollService is a mock implementation of PayrollService
type MockPayrollService struct {
	mock.Mock
}

func (m *MockPayrollService) IssuePaycheck(ctx context.Context, req budget.IssueRequest) (*budget.Paycheck, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*budget.Paycheck), args.Error(1)
}

func (m *MockPayrollService) ListPaychecks(ctx context.Context, employeeID string) ([]*budget.Paycheck, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*budget.Paycheck), args.Error(1)
}

// MockCheckoutService is a mock implementation of CheckoutService
type MockCheckoutService struct {
	mock.Mock
}

func (m *MockCheckoutService) Quote(ctx context.Context, items []store.CartItem) (*store.Quote, error) {
	args := m.Called(ctx, items)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Quote), args.Error(1)
}

func (m *MockCheckoutService) Checkout(ctx context.Context, clientID string, items []store.CartItem, cardToken string) (*store.Purchase, error) {
	args := m.Called(ctx, clientID, items, cardToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Purchase), args.Error(1)
}

func (m *MockCheckoutService) ListPurchases(ctx context.Context, clientID string) ([]*store.Purchase, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*store.Purchase), args.Error(1)
}

func (m *MockCheckoutService) GetPurchase(ctx context.Context, clientID, purchaseID string) (*store.Purchase, error) {
	args := m.Called(ctx, clientID, purchaseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Purchase), args.Error(1)
}

// MockGameService is a mock implementation of GameService
type MockGameService struct {
	mock.Mock
}

func (m *MockGameService) save(args mock.Arguments) *game.Save {
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*game.Save)
}

func (m *MockGameService) Load(ctx context.Context, userID string) (*game.Save, error) {
	args := m.Called(ctx, userID)
	return m.save(args), args.Error(1)
}

func (m *MockGameService) Click(ctx context.Context, userID string, clicks int) (*game.Save, game.MiningResult, error) {
	args := m.Called(ctx, userID, clicks)
	return m.save(args), args.Get(1).(game.MiningResult), args.Error(2)
}

func (m *MockGameService) BuyPickaxe(ctx context.Context, userID, pickaxeID string) (*game.Save, error) {
	args := m.Called(ctx, userID, pickaxeID)
	return m.save(args), args.Error(1)
}

func (m *MockGameService) EquipPickaxe(ctx context.Context, userID, pickaxeID string) (*game.Save, error) {
	args := m.Called(ctx, userID, pickaxeID)
	return m.save(args), args.Error(1)
}

func (m *MockGameService) SelectRock(ctx context.Context, userID, rockID string) (*game.Save, error) {
	args := m.Called(ctx, userID, rockID)
	return m.save(args), args.Error(1)
}

func (m *MockGameService) HireMiners(ctx context.Context, userID string, count int64) (*game.Save, float64, error) {
	args := m.Called(ctx, userID, count)
	return m.save(args), args.Get(1).(float64), args.Error(2)
}

func (m *MockGameService) Prestige(ctx context.Context, userID string) (*game.Save, *game.PrestigeResult, error) {
	args := m.Called(ctx, userID)
	result, _ := args.Get(1).(*game.PrestigeResult)
	return m.save(args), result, args.Error(2)
}

func (m *MockGameService) BuildWizardTower(ctx context.Context, userID string) (*game.Save, error) {
	args := m.Called(ctx, userID)
	return m.save(args), args.Error(1)
}

func (m *MockGameService) PerformRitual(ctx context.Context, userID, ritualID string) (*game.Save, error) {
	args := m.Called(ctx, userID, ritualID)
	return m.save(args), args.Error(1)
}

func (m *MockGameService) SacrificeMiners(ctx context.Context, userID string, count int64) (*game.Save, error) {
	args := m.Called(ctx, userID, count)
	return m.save(args), args.Error(1)
}

func (m *MockGameService) BuyStokens(ctx context.Context, userID string, count int64) (*game.Save, float64, error) {
	args := m.Called(ctx, userID, count)
	return m.save(args), args.Get(1).(float64), args.Error(2)
}

func (m *MockGameService) BuyTickets(ctx context.Context, userID string, count int64) (*game.Save, error) {
	args := m.Called(ctx, userID, count)
	return m.save(args), args.Error(1)
}

func (m *MockGameService) DrawLottery(ctx context.Context, userID string) (*game.Save, *game.Prize, error) {
	args := m.Called(ctx, userID)
	prize, _ := args.Get(1).(*game.Prize)
	return m.save(args), prize, args.Error(2)
}

func (m *MockGameService) BuyShares(ctx context.Context, userID, symbol string, shares int64) (*game.Save, *game.Trade, error) {
	args := m.Called(ctx, userID, symbol, shares)
	trade, _ := args.Get(1).(*game.Trade)
	return m.save(args), trade, args.Error(2)
}

func (m *MockGameService) SellShares(ctx context.Context, userID, symbol string, shares int64) (*game.Save, *game.Trade, error) {
	args := m.Called(ctx, userID, symbol, shares)
	trade, _ := args.Get(1).(*game.Trade)
	return m.save(args), trade, args.Error(2)
}

func (m *MockGameService) Sync(ctx context.Context, userID string, baseVersion int64, state *game.State) (*game.Save, error) {
	args := m.Called(ctx, userID, baseVersion, state)
	return m.save(args), args.Error(1)
}

// MockMarketService is a mock implementation of MarketService
type MockMarketService struct {
	mock.Mock
}

func (m *MockMarketService) Quotes() []game.StockQuote {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]game.StockQuote)
}

func (m *MockMarketService) Quote(symbol string) (game.StockQuote, error) {
	args := m.Called(symbol)
	return args.Get(0).(game.StockQuote), args.Error(1)
}
