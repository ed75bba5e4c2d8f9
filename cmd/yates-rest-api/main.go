// cmd/yates-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	v1 "github.com/renantrendt/yates-inc-sub001/internal/api/rest/v1"
	"github.com/renantrendt/yates-inc-sub001/internal/app"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/accounts"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/events"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/game"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/store"
	"github.com/renantrendt/yates-inc-sub001/internal/infrastructure/connector"
	"github.com/renantrendt/yates-inc-sub001/internal/infrastructure/cryptography"
	"github.com/renantrendt/yates-inc-sub001/internal/infrastructure/persistence"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/config"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/logger"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/tracing"
	"golang.org/x/crypto/bcrypt"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, &restConfig.Tracing)
	if err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Warn("Failed to flush traces: ", err)
		}
	}()

	// Initialize application dependencies
	deps, err := initializeDependencies(ctx, restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := deps.publisher.Close(); err != nil {
			log.Warn("Failed to close event publisher: ", err)
		}
	}()

	go deps.market.Run(ctx, restConfig.Game.MarketTick)

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(ctx, restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	services  *v1.Services
	market    *game.Market
	publisher events.Publisher
}

// initializeDependencies sets up all application components
func initializeDependencies(ctx context.Context, cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := persistence.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	repos, err := initializeRepositories(db, log)
	if err != nil {
		return nil, err
	}

	// Initialize connectors
	sessions, err := initializeSessionStore(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session store: %w", err)
	}

	publisher, err := initializePublisher(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize event publisher: %w", err)
	}

	gateway, err := initializePaymentGateway(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize payment gateway: %w", err)
	}

	market := game.NewMarket(game.DefaultListings, cfg.Game.Seed)

	// Initialize services
	services, err := initializeApplicationServices(cfg, repos, sessions, publisher, gateway, market, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &appDependencies{
		services:  services,
		market:    market,
		publisher: publisher,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(ctx context.Context, cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup API routes
	v1.SetupRoutes(r, deps.services, v1.NewRateLimiter(&cfg.RateLimit), log)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, v1.InfoResponse{Message: "ok"})
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		log.Info("Received shutdown signal, initiating graceful shutdown")
	}

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

// initializeSessionStore picks Redis when enabled, otherwise an in-process store
func initializeSessionStore(ctx context.Context, cfg *config.RestConfig, log logger.Logger) (accounts.SessionStore, error) {
	if !cfg.Redis.Enabled {
		log.Warn("Redis disabled, revoked sessions are kept in memory and lost on restart")
		return connector.NewMemorySessionStore(), nil
	}

	sessions, err := connector.NewRedisSessionStore(ctx, &cfg.Redis, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create redis session store: %w", err)
	}

	log.Info("Redis session store initialized successfully")
	return sessions, nil
}

// initializePublisher picks RabbitMQ when enabled, otherwise events are only logged
func initializePublisher(cfg *config.RestConfig, log logger.Logger) (events.Publisher, error) {
	if !cfg.Broker.Enabled {
		return connector.NewLogPublisher(log), nil
	}

	publisher, err := connector.NewAMQPPublisher(&cfg.Broker, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create amqp publisher: %w", err)
	}

	log.Info("AMQP publisher initialized successfully")
	return publisher, nil
}

// initializePaymentGateway sets up the checkout gateway for the configured provider
func initializePaymentGateway(cfg *config.RestConfig, log logger.Logger) (store.PaymentGateway, error) {
	switch cfg.Payments.Provider {
	case config.HousePaymentProvider:
		return connector.NewHouseGateway(log), nil
	case config.OmisePaymentProvider:
		gateway, err := connector.NewOmiseGateway(&cfg.Payments, log)
		if err != nil {
			return nil, fmt.Errorf("failed to create omise gateway: %w", err)
		}
		return gateway, nil
	default:
		return nil, fmt.Errorf("unsupported payment provider: %s", cfg.Payments.Provider)
	}
}

// initializeApplicationServices sets up all application services
func initializeApplicationServices(
	cfg *config.RestConfig,
	repos *repositories,
	sessions accounts.SessionStore,
	publisher events.Publisher,
	gateway store.PaymentGateway,
	market *game.Market,
	log logger.Logger,
) (*v1.Services, error) {
	hasher, err := cryptography.NewBcryptHasher(bcrypt.DefaultCost, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create password hasher: %w", err)
	}

	tokens, err := cryptography.NewJWTIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create token issuer: %w", err)
	}

	accessCodes, err := cryptography.NewAccessCodeService(cfg.Auth.AccessCodeSecret, cfg.Auth.AccessCodeWindow, cfg.Auth.AccessCodeDigits, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create access code service: %w", err)
	}

	accountService, err := app.NewAccountService(repos.clients, repos.employees, hasher, tokens, sessions, accessCodes, publisher, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create account service: %w", err)
	}

	directoryService, err := app.NewDirectoryService(repos.clients, repos.employees, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory service: %w", err)
	}

	mailService, err := app.NewMailService(repos.mail, publisher, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create mail service: %w", err)
	}

	taskService, err := app.NewTaskService(repos.tasks, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	budgetService, err := app.NewBudgetService(repos.budgets, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create budget service: %w", err)
	}

	payrollService, err := app.NewPayrollService(repos.budgets, repos.employees, publisher, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create payroll service: %w", err)
	}

	checkoutService, err := app.NewCheckoutService(&cfg.Store, cfg.Payments.Currency, repos.purchases, gateway, publisher, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout service: %w", err)
	}

	gameService, err := app.NewGameService(&cfg.Game, repos.saves, market, publisher, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create game service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &v1.Services{
		AccountService:   accountService,
		DirectoryService: directoryService,
		AccessCodes:      accessCodes,
		Tokens:           tokens,
		Sessions:         sessions,
		MailService:      mailService,
		TaskService:      taskService,
		BudgetService:    budgetService,
		PayrollService:   payrollService,
		CheckoutService:  checkoutService,
		GameService:      gameService,
		MarketService:    market,
	}, nil
}
