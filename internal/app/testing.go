//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/eprofos/eprofos-2-sub017/internal/domain/alternance"
	"github.com/eprofos/eprofos-2-sub017/internal/domain/audit"
	"github.com/eprofos/eprofos-2-sub017/internal/domain/dashboard"
	"github.com/eprofos/eprofos-2-sub017/internal/domain/engagement"
	"github.com/eprofos/eprofos-2-sub017/internal/domain/prospects"
	"github.com/eprofos/eprofos-2-sub017/internal/infrastructure/cache"
	"github.com/eprofos/eprofos-2-sub017/internal/infrastructure/export"
	"github.com/eprofos/eprofos-2-sub017/internal/infrastructure/messaging"
	"github.com/eprofos/eprofos-2-sub017/internal/infrastructure/notification"
	"github.com/eprofos/eprofos-2-sub017/internal/infrastructure/persistence"
	"github.com/eprofos/eprofos-2-sub017/internal/pkg/config"
	"github.com/eprofos/eprofos-2-sub017/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	AuditService      audit.AuditService
	ProspectService   prospects.ProspectService
	ActivityService   prospects.ProspectActivityService
	MentorService     alternance.MentorService
	ContractService   alternance.ContractService
	EngagementService engagement.EngagementService
	DashboardService  dashboard.DashboardService

	// Infrastructure
	DBContext *persistence.TestContext
	Redis     *miniredis.Miniredis
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	ctx := context.Background()
	log := testutil.SetupTestLogger(t)

	dbContext := persistence.SetupTestDB(t, dbType)

	redisServer := miniredis.RunT(t)
	redisClient, err := cache.NewRedisClient(ctx, config.RedisSettings{Enabled: true, Addr: redisServer.Addr()})
	require.NoError(t, err, "Failed to connect to redis")
	t.Cleanup(func() { _ = redisClient.Close() })

	dashboardCache, err := cache.NewRedisDashboardCache(redisClient, log)
	require.NoError(t, err)

	renderer, err := notification.NewRenderer()
	require.NoError(t, err, "Failed to parse mail templates")
	notifier := notification.NewMailNotifier(notification.NewLogSender(log), renderer, "EPROFOS", []string{"direction@eprofos.fr"}, log)

	auditService, err := NewAuditService(dbContext.AuditRepo, messaging.NewNoopPublisher(), nil, log)
	require.NoError(t, err)

	prospectService, err := NewProspectService(dbContext.ProspectRepo, auditService, log)
	require.NoError(t, err)

	activityService, err := NewProspectActivityService(dbContext.ProspectRepo, notifier, log)
	require.NoError(t, err)

	mentorService, err := NewMentorService(dbContext.MentorRepo, auditService, log)
	require.NoError(t, err)

	contractService, err := NewContractService(dbContext.ContractRepo, dbContext.MentorRepo, auditService, log)
	require.NoError(t, err)

	engagementService, err := NewEngagementService(EngagementDependencies{
		Repository: dbContext.EngagementRepo,
		Cache:      dashboardCache,
		Exporters:  export.NewRegistry(),
		Notifier:   notifier,
		Recorder:   auditService,
		CacheTTL:   config.RedisSettings{}.TTL(),
	}, log)
	require.NoError(t, err)

	dashboardService, err := NewDashboardService(prospectService, engagementService, contractService, log)
	require.NoError(t, err)

	return &TestServices{
		AuditService:      auditService,
		ProspectService:   prospectService,
		ActivityService:   activityService,
		MentorService:     mentorService,
		ContractService:   contractService,
		EngagementService: engagementService,
		DashboardService:  dashboardService,
		DBContext:         dbContext,
		Redis:             redisServer,
	}
}
