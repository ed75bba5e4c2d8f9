package commands

import (
	"fmt"
	"time"

	"github.com/renantrendt/yates-inc-sub001/internal/domain/accounts"
	"github.com/renantrendt/yates-inc-sub001/internal/infrastructure/cryptography"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// AccessCodeCommandHandler shows and checks the rotating employee access code
type AccessCodeCommandHandler struct {
	logger logger.Logger
}

// NewAccessCodeCommandHandler initializes and returns an AccessCodeCommandHandler instance
func NewAccessCodeCommandHandler() (*AccessCodeCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &AccessCodeCommandHandler{
		logger: loggerInstance,
	}, nil
}

func (commandHandler *AccessCodeCommandHandler) accessCodes() (accounts.AccessCodeService, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return cryptography.NewAccessCodeService(cfg.Auth.AccessCodeSecret, cfg.Auth.AccessCodeWindow, cfg.Auth.AccessCodeDigits, commandHandler.logger)
}

// CurrentAccessCodeCmd prints the code of the running window
func (commandHandler *AccessCodeCommandHandler) CurrentAccessCodeCmd(_ *cobra.Command, _ []string) {
	codes, err := commandHandler.accessCodes()
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	code, expiresAt := codes.Current(time.Now().UTC())
	fmt.Printf("%s (valid until %s)\n", code, expiresAt.Format(time.RFC3339))
}

// VerifyAccessCodeCmd checks a code against the current and previous windows
func (commandHandler *AccessCodeCommandHandler) VerifyAccessCodeCmd(cmd *cobra.Command, _ []string) {
	code, err := cmd.Flags().GetString("code")
	if err != nil {
		commandHandler.logger.Error("invalid code flag ", err)
		return
	}

	codes, err := commandHandler.accessCodes()
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if !codes.Verify(code, time.Now().UTC()) {
		commandHandler.logger.Warn("Access code ", code, " is not valid")
		return
	}
	commandHandler.logger.Info("Access code ", code, " is valid")
}

// InitAccessCodeCommands registers the access code commands
func InitAccessCodeCommands(rootCmd *cobra.Command) error {
	handler, err := NewAccessCodeCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create access code command handler %w", err)
	}

	var currentCmd = &cobra.Command{
		Use:   "access-code",
		Short: "Print the current employee access code",
		Run:   handler.CurrentAccessCodeCmd,
	}
	rootCmd.AddCommand(currentCmd)

	var verifyCmd = &cobra.Command{
		Use:   "verify-access-code",
		Short: "Check an employee access code",
		Run:   handler.VerifyAccessCodeCmd,
	}
	verifyCmd.Flags().StringP("code", "", "", "Access code to check")
	rootCmd.AddCommand(verifyCmd)

	return nil
}
