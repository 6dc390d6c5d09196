package commands

import (
	"fmt"
	"time"

	"github.com/eprofos/eprofos-2-sub017/internal/app"
	"github.com/eprofos/eprofos-2-sub017/internal/infrastructure/messaging"
	"github.com/eprofos/eprofos-2-sub017/internal/infrastructure/persistence"
	"github.com/eprofos/eprofos-2-sub017/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// DatabaseCommandHandler runs schema and retention tasks.
type DatabaseCommandHandler struct {
	logger logger.Logger
	now    func() time.Time
}

// NewDatabaseCommandHandler initializes a DatabaseCommandHandler with a console logger.
func NewDatabaseCommandHandler() (*DatabaseCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return &DatabaseCommandHandler{logger: loggerInstance, now: time.Now}, nil
}

// MigrateCmd creates or updates the database schema
func (commandHandler *DatabaseCommandHandler) MigrateCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to create db connection: %w", err)
	}
	if err := persistence.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	commandHandler.logger.Info("Database migrations completed successfully")
	return nil
}

// PurgeAuditCmd deletes audit entries older than the retention period
func (commandHandler *DatabaseCommandHandler) PurgeAuditCmd(cmd *cobra.Command, _ []string) error {
	days, err := cmd.Flags().GetInt("older-than-days")
	if err != nil {
		return fmt.Errorf("invalid older-than-days flag: %w", err)
	}
	if days < 1 {
		return fmt.Errorf("older-than-days must be at least 1, got %d", days)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to create db connection: %w", err)
	}

	repo, err := persistence.NewGormAuditRepository(db, commandHandler.logger)
	if err != nil {
		return fmt.Errorf("failed to create audit repository: %w", err)
	}

	service, err := app.NewAuditService(repo, messaging.NewNoopPublisher(), nil, commandHandler.logger)
	if err != nil {
		return fmt.Errorf("failed to create audit service: %w", err)
	}

	cutoff := commandHandler.now().AddDate(0, 0, -days)
	purged, err := service.Purge(cmd.Context(), cutoff)
	if err != nil {
		return err
	}

	commandHandler.logger.Info(fmt.Sprintf("Purged %d audit entries logged before %s", purged, cutoff.Format(time.RFC3339)))
	return nil
}

// InitDatabaseCommands registers the migrate and audit purge commands.
func InitDatabaseCommands(rootCmd *cobra.Command) error {
	handler, err := NewDatabaseCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create database command handler: %w", err)
	}

	var migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE:  handler.MigrateCmd,
	}
	addConfigFlag(migrateCmd)
	rootCmd.AddCommand(migrateCmd)

	var auditCmd = &cobra.Command{
		Use:   "audit",
		Short: "Audit log maintenance",
	}

	var purgeCmd = &cobra.Command{
		Use:   "purge",
		Short: "Delete audit entries older than the retention period",
		RunE:  handler.PurgeAuditCmd,
	}
	addConfigFlag(purgeCmd)
	purgeCmd.Flags().Int("older-than-days", 365, "Retention period in days")
	auditCmd.AddCommand(purgeCmd)
	rootCmd.AddCommand(auditCmd)

	return nil
}
