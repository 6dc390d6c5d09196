package commands

import (
	"context"
	"fmt"

	"github.com/eprofos/eprofos-2-sub017/internal/app"
	"github.com/eprofos/eprofos-2-sub017/internal/domain/engagement"
	"github.com/eprofos/eprofos-2-sub017/internal/infrastructure/cache"
	"github.com/eprofos/eprofos-2-sub017/internal/infrastructure/messaging"
	"github.com/eprofos/eprofos-2-sub017/internal/infrastructure/notification"
	"github.com/eprofos/eprofos-2-sub017/internal/infrastructure/persistence"
	"github.com/eprofos/eprofos-2-sub017/internal/pkg/config"
	"github.com/eprofos/eprofos-2-sub017/internal/pkg/logger"

	"github.com/spf13/cobra"
)

const cliUsername = "eprofos-cli"

// EngagementCommandHandler runs scheduled engagement maintenance.
type EngagementCommandHandler struct {
	logger logger.Logger
}

// NewEngagementCommandHandler initializes an EngagementCommandHandler with a console logger.
func NewEngagementCommandHandler() (*EngagementCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return &EngagementCommandHandler{logger: loggerInstance}, nil
}

// ReevaluateCmd recomputes the risk of every stored record as of now and
// sends alerts for students who became at risk since their last update.
func (commandHandler *EngagementCommandHandler) ReevaluateCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	service, closeAll, err := commandHandler.newEngagementService(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer closeAll()

	updated, err := service.Reevaluate(cmd.Context(), cliUsername)
	if err != nil {
		return fmt.Errorf("failed to re-evaluate engagement records: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d engagement records updated\n", updated)
	return nil
}

func (commandHandler *EngagementCommandHandler) newEngagementService(ctx context.Context, cfg *config.RestConfig) (engagement.EngagementService, func(), error) {
	log := commandHandler.logger
	var closers []func() error
	closeAll := func() {
		for _, c := range closers {
			if err := c(); err != nil {
				log.Warn("Failed to release resource: ", err)
			}
		}
	}

	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, closeAll, fmt.Errorf("failed to create db connection: %w", err)
	}

	repo, err := persistence.NewGormEngagementRepository(db, log)
	if err != nil {
		return nil, closeAll, fmt.Errorf("failed to create engagement repository: %w", err)
	}
	auditRepo, err := persistence.NewGormAuditRepository(db, log)
	if err != nil {
		return nil, closeAll, fmt.Errorf("failed to create audit repository: %w", err)
	}
	auditService, err := app.NewAuditService(auditRepo, messaging.NewNoopPublisher(), nil, log)
	if err != nil {
		return nil, closeAll, fmt.Errorf("failed to create audit service: %w", err)
	}

	dashboardCache := cache.NewNoopDashboardCache()
	if cfg.Redis.Enabled {
		client, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return nil, closeAll, fmt.Errorf("failed to connect to redis: %w", err)
		}
		closers = append(closers, client.Close)
		if dashboardCache, err = cache.NewRedisDashboardCache(client, log); err != nil {
			return nil, closeAll, fmt.Errorf("failed to create dashboard cache: %w", err)
		}
	}

	sender := notification.NewLogSender(log)
	if cfg.Mail.Provider == config.MailProviderSES {
		client, err := notification.NewSESClient(ctx, cfg.Mail)
		if err != nil {
			return nil, closeAll, fmt.Errorf("failed to create SES client: %w", err)
		}
		sender = notification.NewSESSender(client, cfg.Mail, log)
	}
	renderer, err := notification.NewRenderer()
	if err != nil {
		return nil, closeAll, fmt.Errorf("failed to load mail templates: %w", err)
	}

	service, err := app.NewEngagementService(app.EngagementDependencies{
		Repository: repo,
		Cache:      dashboardCache,
		Notifier:   notification.NewMailNotifier(sender, renderer, "EPROFOS", cfg.Mail.AlertRecipients, log),
		Recorder:   auditService,
		CacheTTL:   cfg.Redis.TTL(),
	}, log)
	if err != nil {
		return nil, closeAll, fmt.Errorf("failed to create engagement service: %w", err)
	}
	return service, closeAll, nil
}

// InitEngagementCommands registers the engagement reevaluate command.
func InitEngagementCommands(rootCmd *cobra.Command) error {
	handler, err := NewEngagementCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create engagement command handler: %w", err)
	}

	var engagementCmd = &cobra.Command{
		Use:   "engagement",
		Short: "Student engagement maintenance",
	}

	var reevaluateCmd = &cobra.Command{
		Use:   "reevaluate",
		Short: "Recompute student risk as of now and send risk alerts",
		Long: `reevaluate recomputes the dropout risk of every stored engagement record
using the current time, so students without recent activity become at risk
even when nobody updated their record. Run it daily from a scheduler.`,
		RunE: handler.ReevaluateCmd,
	}
	addConfigFlag(reevaluateCmd)
	engagementCmd.AddCommand(reevaluateCmd)
	rootCmd.AddCommand(engagementCmd)

	return nil
}
