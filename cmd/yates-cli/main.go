// Package main is the entry point for the yates-cli application.
// It registers the operator sub-commands (access code, staff bootstrap, store quotes
// and offline game and market simulations) and executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/renantrendt/yates-inc-sub001/cmd/yates-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "yates-cli",
		Short: "Yates Inc. operator tool",
		Long: `yates-cli is a command-line tool for operating the Yates Inc. backend.
Shows and checks the rotating employee access code, bootstraps staff records,
prices store carts and runs the mining game and stock market offline.

Commands that need configuration read the same file as the REST service:
- CONFIG_PATH (defaults to configs/rest-app.yaml)
- YATES_* environment variables override individual keys`,
	}

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitAccessCodeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize access code commands: %w", err)
	}

	if err := commands.InitEmployeeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize employee commands: %w", err)
	}

	if err := commands.InitStoreCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize store commands: %w", err)
	}

	if err := commands.InitSimulationCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize simulation commands: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	// Set log flags for better error messages
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Ensure proper exit codes on errors
	log.SetOutput(os.Stderr)
}
