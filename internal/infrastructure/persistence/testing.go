//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/accounts"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/budget"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/game"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/mail"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/store"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/tasks"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/config"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/testutil"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB           *gorm.DB
	ClientRepo   accounts.ClientRepository
	EmployeeRepo accounts.EmployeeRepository
	MailRepo     mail.Repository
	TaskRepo     tasks.Repository
	BudgetRepo   budget.Repository
	PurchaseRepo store.Repository
	SaveRepo     game.SaveRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	cleanupFunc := func() {}

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type:   config.PostgresDbType,
			DSN:    "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			DBName: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, Migrate(db), "Failed to migrate schema")

	logger := testutil.SetupTestLogger(t)
	tc := &TestContext{DB: db}

	tc.ClientRepo, err = NewGormClientRepository(db, logger)
	require.NoError(t, err)
	tc.EmployeeRepo, err = NewGormEmployeeRepository(db, logger)
	require.NoError(t, err)
	tc.MailRepo, err = NewGormMailRepository(db, logger)
	require.NoError(t, err)
	tc.TaskRepo, err = NewGormTaskRepository(db, logger)
	require.NoError(t, err)
	tc.BudgetRepo, err = NewGormBudgetRepository(db, logger)
	require.NoError(t, err)
	tc.PurchaseRepo, err = NewGormPurchaseRepository(db, logger)
	require.NoError(t, err)
	tc.SaveRepo, err = NewGormGameSaveRepository(db, logger)
	require.NoError(t, err)

	return tc
}

// CreateTestClient returns a valid client with the given username
func CreateTestClient(t *testing.T, username string) *accounts.Client {
	t.Helper()

	return &accounts.Client{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        strings.ToLower(username) + "@example.com",
		PasswordHash: "$2a$10$hash",
		CreatedAt:    time.Now().UTC(),
	}
}

// CreateTestEmployee returns a valid employee without a password
func CreateTestEmployee(t *testing.T, number, role string) *accounts.Employee {
	t.Helper()

	return &accounts.Employee{
		ID:             uuid.NewString(),
		EmployeeNumber: number,
		Name:           "Employee " + number,
		Role:           role,
		SalaryCents:    5_200_000,
		CreatedAt:      time.Now().UTC(),
	}
}
