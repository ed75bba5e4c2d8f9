package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/accounts"
	"github.com/renantrendt/yates-inc-sub001/internal/infrastructure/persistence"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// EmployeeCommandHandler bootstraps staff records directly in the database.
// The REST API only lets a ceo or manager add employees, so the first ceo is created here.
type EmployeeCommandHandler struct {
	logger logger.Logger
}

// NewEmployeeCommandHandler initializes and returns an EmployeeCommandHandler instance
func NewEmployeeCommandHandler() (*EmployeeCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &EmployeeCommandHandler{
		logger: loggerInstance,
	}, nil
}

func (commandHandler *EmployeeCommandHandler) repository() (accounts.EmployeeRepository, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}
	if err := persistence.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return persistence.NewGormEmployeeRepository(db, commandHandler.logger)
}

// CreateEmployeeCmd inserts an employee without a password; they set one with the access code
func (commandHandler *EmployeeCommandHandler) CreateEmployeeCmd(cmd *cobra.Command, _ []string) {
	number, err := cmd.Flags().GetString("number")
	if err != nil {
		commandHandler.logger.Error("invalid number flag ", err)
		return
	}
	name, err := cmd.Flags().GetString("name")
	if err != nil {
		commandHandler.logger.Error("invalid name flag ", err)
		return
	}
	role, err := cmd.Flags().GetString("role")
	if err != nil {
		commandHandler.logger.Error("invalid role flag ", err)
		return
	}
	salary, err := cmd.Flags().GetInt64("salary-cents")
	if err != nil {
		commandHandler.logger.Error("invalid salary-cents flag ", err)
		return
	}

	employee := &accounts.Employee{
		ID:             uuid.NewString(),
		EmployeeNumber: number,
		Name:           name,
		Role:           role,
		SalaryCents:    salary,
		CreatedAt:      time.Now().UTC(),
	}
	if err := employee.Validate(); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	repo, err := commandHandler.repository()
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if err := repo.Create(context.Background(), employee); err != nil {
		commandHandler.logger.Error("failed to create employee ", number, ": ", err)
		return
	}
	commandHandler.logger.Info("Employee ", number, " created with id ", employee.ID)
}

// ListEmployeesCmd prints the staff directory
func (commandHandler *EmployeeCommandHandler) ListEmployeesCmd(_ *cobra.Command, _ []string) {
	repo, err := commandHandler.repository()
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	employees, err := repo.List(context.Background())
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	for _, e := range employees {
		fmt.Printf("%s\t%-9s\t%s\tpassword set: %t\n", e.EmployeeNumber, e.Role, e.Name, e.HasPassword())
	}
}

// InitEmployeeCommands registers the staff commands
func InitEmployeeCommands(rootCmd *cobra.Command) error {
	handler, err := NewEmployeeCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create employee command handler %w", err)
	}

	var createCmd = &cobra.Command{
		Use:   "create-employee",
		Short: "Create an employee record",
		Run:   handler.CreateEmployeeCmd,
	}
	createCmd.Flags().StringP("number", "", "", "Six digit employee number")
	createCmd.Flags().StringP("name", "", "", "Display name")
	createCmd.Flags().StringP("role", "", accounts.RoleEngineer, "One of ceo, manager, engineer, sales, intern")
	createCmd.Flags().Int64P("salary-cents", "", 0, "Annual salary in cents")
	rootCmd.AddCommand(createCmd)

	var listCmd = &cobra.Command{
		Use:   "list-employees",
		Short: "List employees",
		Run:   handler.ListEmployeesCmd,
	}
	rootCmd.AddCommand(listCmd)

	return nil
}
