package main

import (
	"fmt"

	"github.com/renantrendt/yates-inc-sub001/internal/domain/accounts"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/budget"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/game"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/mail"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/store"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/tasks"
	"github.com/renantrendt/yates-inc-sub001/internal/infrastructure/persistence"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/logger"
	"gorm.io/gorm"
)

type repositories struct {
	clients   accounts.ClientRepository
	employees accounts.EmployeeRepository
	mail      mail.Repository
	tasks     tasks.Repository
	budgets   budget.Repository
	purchases store.Repository
	saves     game.SaveRepository
}

// initializeRepositories creates the gorm repositories over one connection
func initializeRepositories(db *gorm.DB, log logger.Logger) (*repositories, error) {
	var (
		repos repositories
		err   error
	)

	if repos.clients, err = persistence.NewGormClientRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create client repository: %w", err)
	}
	if repos.employees, err = persistence.NewGormEmployeeRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create employee repository: %w", err)
	}
	if repos.mail, err = persistence.NewGormMailRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create mail repository: %w", err)
	}
	if repos.tasks, err = persistence.NewGormTaskRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create task repository: %w", err)
	}
	if repos.budgets, err = persistence.NewGormBudgetRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create budget repository: %w", err)
	}
	if repos.purchases, err = persistence.NewGormPurchaseRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create purchase repository: %w", err)
	}
	if repos.saves, err = persistence.NewGormGameSaveRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create game save repository: %w", err)
	}

	return &repos, nil
}
