// Package main is the entry point for the eprofos-cli application.
// It registers the maintenance, scoring and token sub-commands and executes
// the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/eprofos/eprofos-2-sub017/cmd/eprofos-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "eprofos-cli",
		Short: "EPROFOS platform maintenance tool",
		Long: `eprofos-cli runs maintenance tasks against the EPROFOS platform.
It migrates the database schema, purges old audit entries and re-evaluates
student risk. It also computes lead and Qualiopi compliance scores offline and
issues API tokens for operators.

Commands that touch the database read the same configuration file as the
REST API. Set CONFIG_PATH or pass --config.`,
	}

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitDatabaseCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize database commands: %w", err)
	}

	if err := commands.InitScoringCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize scoring commands: %w", err)
	}

	if err := commands.InitEngagementCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize engagement commands: %w", err)
	}

	if err := commands.InitTokenCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize token commands: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
