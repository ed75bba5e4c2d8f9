package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/accounts"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/budget"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/game"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/mail"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/store"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/tasks"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/logger"
)

// Services groups everything the version 1 routes depend on
type Services struct {
	AccountService   accounts.AccountService
	DirectoryService accounts.DirectoryService
	AccessCodes      accounts.AccessCodeService
	Tokens           accounts.TokenIssuer
	Sessions         accounts.SessionStore
	MailService      mail.MailService
	TaskService      tasks.TaskService
	BudgetService    budget.BudgetService
	PayrollService   budget.PayrollService
	CheckoutService  store.CheckoutService
	GameService      game.GameService
	MarketService    game.MarketService
}

// SetupRoutes sets up all the API routes for version 1.
// limiter guards login and game clicks; it may be nil to disable rate limiting.
func SetupRoutes(r *gin.Engine, services *Services, limiter *RateLimiter, logger logger.Logger) {
	v1 := r.Group(BasePath) // lookup in version file

	throttle := func(c *gin.Context) { c.Next() }
	if limiter != nil {
		throttle = limiter.Middleware()
	}
	auth := JWTAuth(services.Tokens, services.Sessions, logger)

	authHandler := NewAuthHandler(services.AccountService, services.DirectoryService, services.AccessCodes, logger)
	employeeHandler := NewEmployeeHandler(services.DirectoryService)
	mailHandler := NewMailHandler(services.MailService)
	taskHandler := NewTaskHandler(services.TaskService)
	budgetHandler := NewBudgetHandler(services.BudgetService, services.PayrollService)
	storeHandler := NewStoreHandler(services.CheckoutService)
	gameHandler := NewGameHandler(services.GameService, services.MarketService)

	// Public routes
	v1.POST("/auth/register", authHandler.Register)
	v1.POST("/auth/login", throttle, authHandler.Login)
	v1.GET("/auth/employees/:number/password", authHandler.CheckPassword)
	v1.PUT("/auth/employees/:number/password", throttle, authHandler.SetPassword)
	v1.POST("/access-code/verify", throttle, authHandler.VerifyAccessCode)
	v1.GET("/store/products", storeHandler.ListProducts)
	v1.POST("/store/quote", storeHandler.Quote)
	v1.GET("/game/catalog", gameHandler.Catalog)
	v1.GET("/game/market", gameHandler.ListQuotes)
	v1.GET("/game/market/:symbol", gameHandler.GetQuote)

	// Authenticated routes
	private := v1.Group("", auth)
	private.POST("/auth/logout", authHandler.Logout)
	private.GET("/me", authHandler.Me)

	staff := private.Group("", RequireEmployee())
	staff.GET("/access-code", authHandler.CurrentAccessCode)
	staff.GET("/employees", employeeHandler.List)
	staff.GET("/employees/:id", employeeHandler.GetByID)
	staff.POST("/employees", RequireRole(accounts.RoleCEO, accounts.RoleManager), employeeHandler.Create)

	staff.POST("/tasks", taskHandler.Create)
	staff.GET("/tasks", taskHandler.List)
	staff.GET("/tasks/:id", taskHandler.GetByID)
	staff.PATCH("/tasks/:id", taskHandler.UpdateStatus)
	staff.DELETE("/tasks/:id", taskHandler.DeleteByID)

	staff.POST("/paychecks", RequireRole(accounts.RoleCEO, accounts.RoleManager), budgetHandler.IssuePaycheck)
	staff.GET("/paychecks", budgetHandler.ListPaychecks)

	private.POST("/mail/handle", mailHandler.ClaimHandle)
	private.GET("/mail/handle", mailHandler.GetHandle)
	private.POST("/mail/conversations", mailHandler.StartConversation)
	private.GET("/mail/conversations", mailHandler.ListConversations)
	private.GET("/mail/conversations/:id/messages", mailHandler.ListMessages)
	private.POST("/mail/conversations/:id/messages", mailHandler.Reply)
	private.POST("/mail/conversations/:id/read", mailHandler.MarkRead)

	private.POST("/budgets", budgetHandler.CreateBudget)
	private.GET("/budgets", budgetHandler.ListBudgets)
	private.DELETE("/budgets/:id", budgetHandler.DeleteBudget)
	private.POST("/budgets/:id/transactions", budgetHandler.AddTransaction)
	private.GET("/budgets/:id/transactions", budgetHandler.ListTransactions)
	private.GET("/budgets/:id/summary", budgetHandler.Summary)

	private.POST("/store/checkout", storeHandler.Checkout)
	private.GET("/store/purchases", storeHandler.ListPurchases)
	private.GET("/store/purchases/:id", storeHandler.GetPurchase)

	private.GET("/game", gameHandler.Load)
	private.PUT("/game", gameHandler.Sync)
	private.POST("/game/click", throttle, gameHandler.Click)
	private.POST("/game/pickaxes/:id/buy", gameHandler.BuyPickaxe)
	private.POST("/game/pickaxes/:id/equip", gameHandler.EquipPickaxe)
	private.PUT("/game/rock", gameHandler.SelectRock)
	private.POST("/game/miners", gameHandler.HireMiners)
	private.POST("/game/prestige", gameHandler.Prestige)
	private.POST("/game/wizard-tower", gameHandler.BuildWizardTower)
	private.POST("/game/rituals/:id", gameHandler.PerformRitual)
	private.POST("/game/sacrifice", gameHandler.SacrificeMiners)
	private.POST("/game/shop/stokens", gameHandler.BuyStokens)
	private.POST("/game/shop/tickets", gameHandler.BuyTickets)
	private.POST("/game/lottery", gameHandler.DrawLottery)
	private.POST("/game/market/:symbol/buy", gameHandler.BuyShares)
	private.POST("/game/market/:symbol/sell", gameHandler.SellShares)
}
