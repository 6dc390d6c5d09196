// cmd/eprofos-rest-api/main.go
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

	v1 "github.com/eprofos/eprofos-2-sub017/internal/api/rest/v1"
	"github.com/eprofos/eprofos-2-sub017/internal/app"
	"github.com/eprofos/eprofos-2-sub017/internal/domain/audit"
	"github.com/eprofos/eprofos-2-sub017/internal/domain/engagement"
	"github.com/eprofos/eprofos-2-sub017/internal/infrastructure/cache"
	"github.com/eprofos/eprofos-2-sub017/internal/infrastructure/export"
	"github.com/eprofos/eprofos-2-sub017/internal/infrastructure/messaging"
	"github.com/eprofos/eprofos-2-sub017/internal/infrastructure/notification"
	"github.com/eprofos/eprofos-2-sub017/internal/infrastructure/persistence"
	"github.com/eprofos/eprofos-2-sub017/internal/infrastructure/storage"
	"github.com/eprofos/eprofos-2-sub017/internal/pkg/config"
	"github.com/eprofos/eprofos-2-sub017/internal/pkg/logger"
	"github.com/gin-contrib/cors"

	"github.com/gin-gonic/gin"
)

const organizationName = "EPROFOS"

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

	ctx := context.Background()

	// Initialize application dependencies
	deps, err := initializeDependencies(ctx, restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer deps.close(log)

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	services  *v1.Services
	publisher audit.EventPublisher
	closers   []func() error
}

func (d *appDependencies) close(log logger.Logger) {
	if err := d.publisher.Close(); err != nil {
		log.Warn("Failed to close audit publisher: ", err)
	}
	for _, closeFn := range d.closers {
		if err := closeFn(); err != nil {
			log.Warn("Failed to release resource: ", err)
		}
	}
}

// adapters are the outbound integrations, each replaced by a local fallback
// when disabled in the configuration.
type adapters struct {
	cache     engagement.DashboardCache
	publisher audit.EventPublisher
	notifier  *notification.MailNotifier
	archiver  engagement.Archiver
	closers   []func() error
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
	prospectRepo, err := persistence.NewGormProspectRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create prospect repository: %w", err)
	}
	mentorRepo, err := persistence.NewGormMentorRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create mentor repository: %w", err)
	}
	contractRepo, err := persistence.NewGormContractRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create contract repository: %w", err)
	}
	engagementRepo, err := persistence.NewGormEngagementRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create engagement repository: %w", err)
	}
	auditRepo, err := persistence.NewGormAuditRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create audit repository: %w", err)
	}

	// Initialize outbound adapters
	outbound, err := initializeAdapters(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize adapters: %w", err)
	}

	// Initialize services
	auditService, err := app.NewAuditService(auditRepo, outbound.publisher, nil, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create audit service: %w", err)
	}

	prospectService, err := app.NewProspectService(prospectRepo, auditService, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create prospect service: %w", err)
	}

	activityService, err := app.NewProspectActivityService(prospectRepo, outbound.notifier, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create prospect activity service: %w", err)
	}

	mentorService, err := app.NewMentorService(mentorRepo, auditService, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create mentor service: %w", err)
	}

	contractService, err := app.NewContractService(contractRepo, mentorRepo, auditService, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create contract service: %w", err)
	}

	engagementService, err := app.NewEngagementService(app.EngagementDependencies{
		Repository: engagementRepo,
		Cache:      outbound.cache,
		Exporters:  export.NewRegistry(),
		Archiver:   outbound.archiver,
		Notifier:   outbound.notifier,
		Recorder:   auditService,
		CacheTTL:   cfg.Redis.TTL(),
	}, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create engagement service: %w", err)
	}

	dashboardService, err := app.NewDashboardService(prospectService, engagementService, contractService, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create dashboard service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appDependencies{
		services: &v1.Services{
			Prospects:  prospectService,
			Activity:   activityService,
			Mentors:    mentorService,
			Contracts:  contractService,
			Engagement: engagementService,
			Audit:      auditService,
			Dashboard:  dashboardService,
		},
		publisher: outbound.publisher,
		closers:   outbound.closers,
	}, nil
}

// initializeAdapters connects redis, kafka, SES and S3 when enabled
func initializeAdapters(ctx context.Context, cfg *config.RestConfig, log logger.Logger) (*adapters, error) {
	out := &adapters{
		cache:     cache.NewNoopDashboardCache(),
		publisher: messaging.NewNoopPublisher(),
	}

	if cfg.Redis.Enabled {
		client, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		out.closers = append(out.closers, client.Close)

		dashboardCache, err := cache.NewRedisDashboardCache(client, log)
		if err != nil {
			return nil, fmt.Errorf("failed to create dashboard cache: %w", err)
		}
		out.cache = dashboardCache
		log.Info("Redis dashboard cache enabled at ", cfg.Redis.Addr)
	}

	if cfg.Kafka.Enabled {
		publisher, err := messaging.NewKafkaAuditPublisher(cfg.Kafka, log)
		if err != nil {
			return nil, fmt.Errorf("failed to create kafka audit publisher: %w", err)
		}
		out.publisher = publisher
		log.Info("Kafka audit publisher enabled on topic ", cfg.Kafka.Topic)
	}

	sender := notification.NewLogSender(log)
	if cfg.Mail.Provider == config.MailProviderSES {
		client, err := notification.NewSESClient(ctx, cfg.Mail)
		if err != nil {
			return nil, fmt.Errorf("failed to create SES client: %w", err)
		}
		sender = notification.NewSESSender(client, cfg.Mail, log)
		log.Info("SES mail sender enabled in region ", cfg.Mail.Region)
	}

	renderer, err := notification.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load mail templates: %w", err)
	}
	out.notifier = notification.NewMailNotifier(sender, renderer, organizationName, cfg.Mail.AlertRecipients, log)

	if cfg.ExportStorage.Enabled {
		client, err := storage.NewS3Client(ctx, cfg.ExportStorage)
		if err != nil {
			return nil, fmt.Errorf("failed to create S3 client: %w", err)
		}
		out.archiver = storage.NewS3Archiver(client, cfg.ExportStorage, log)
		log.Info("Export archiving enabled to bucket ", cfg.ExportStorage.Bucket)
	}

	return out, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Content-Disposition", "X-Archive-Location"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup API routes
	v1.SetupRoutes(r, deps.services, cfg.Auth)

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

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
