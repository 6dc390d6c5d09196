//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"

	"github.com/eprofos/eprofos-2-sub017/internal/domain/alternance"
	"github.com/eprofos/eprofos-2-sub017/internal/domain/audit"
	"github.com/eprofos/eprofos-2-sub017/internal/domain/engagement"
	"github.com/eprofos/eprofos-2-sub017/internal/domain/prospects"
	"github.com/eprofos/eprofos-2-sub017/internal/pkg/config"
	"github.com/eprofos/eprofos-2-sub017/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB             *gorm.DB
	ProspectRepo   prospects.ProspectRepository
	MentorRepo     alternance.MentorRepository
	ContractRepo   alternance.ContractRepository
	EngagementRepo engagement.EngagementRepository
	AuditRepo      audit.AuditRepository
}

// SetupTestDB initializes a migrated test database with automatic cleanup
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

	log := testutil.SetupTestLogger(t)

	prospectRepo, err := NewGormProspectRepository(db, log)
	require.NoError(t, err)
	mentorRepo, err := NewGormMentorRepository(db, log)
	require.NoError(t, err)
	contractRepo, err := NewGormContractRepository(db, log)
	require.NoError(t, err)
	engagementRepo, err := NewGormEngagementRepository(db, log)
	require.NoError(t, err)
	auditRepo, err := NewGormAuditRepository(db, log)
	require.NoError(t, err)

	return &TestContext{
		DB:             db,
		ProspectRepo:   prospectRepo,
		MentorRepo:     mentorRepo,
		ContractRepo:   contractRepo,
		EngagementRepo: engagementRepo,
		AuditRepo:      auditRepo,
	}
}
