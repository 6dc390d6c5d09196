//go:build integration
// +build integration

package commands

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/eprofos/eprofos-2-sub017/internal/domain/audit"
	"github.com/eprofos/eprofos-2-sub017/internal/infrastructure/persistence"
	"github.com/eprofos/eprofos-2-sub017/internal/pkg/config"
	"github.com/eprofos/eprofos-2-sub017/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestConfig(t *testing.T) (string, config.DatabaseSettings) {
	t.Helper()
	dir := t.TempDir()
	db := config.DatabaseSettings{Type: config.SqliteDbType, DSN: filepath.Join(dir, "eprofos.db")}
	path := filepath.Join(dir, "rest-app.yaml")
	content := fmt.Sprintf(`port: "8080"
database:
  type: sqlite
  dsn: %q
logger:
  log_level: info
  log_type: console
mail:
  provider: log
  from_email: no-reply@eprofos.fr
auth:
  jwt_secret: integration-secret-with-32-characters
`, db.DSN)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path, db
}

func executeDatabase(t *testing.T, args ...string) error {
	t.Helper()
	root := &cobra.Command{Use: "eprofos-cli"}
	require.NoError(t, InitDatabaseCommands(root))
	root.SetOut(&bytes.Buffer{})
	root.SetArgs(args)
	return root.Execute()
}

func TestMigrateAndPurgeAudit(t *testing.T) {
	configPath, dbSettings := writeTestConfig(t)

	require.NoError(t, executeDatabase(t, "migrate", "--config", configPath))

	db, err := persistence.NewDBConnection(dbSettings)
	require.NoError(t, err)
	repo, err := persistence.NewGormAuditRepository(db, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	ctx := context.Background()
	old := &audit.LogEntry{
		ID: uuid.NewString(), Action: audit.ActionCreate, LoggedAt: time.Now().AddDate(-2, 0, 0),
		ObjectID: "p1", ObjectClass: "Prospect", Version: 1, Username: "admin",
	}
	recent := &audit.LogEntry{
		ID: uuid.NewString(), Action: audit.ActionUpdate, LoggedAt: time.Now(),
		ObjectID: "p1", ObjectClass: "Prospect", Version: 2, Username: "admin",
	}
	require.NoError(t, repo.Create(ctx, old))
	require.NoError(t, repo.Create(ctx, recent))

	require.NoError(t, executeDatabase(t, "audit", "purge", "--config", configPath, "--older-than-days", "365"))

	entries, err := repo.ListByObject(ctx, "Prospect", "p1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, recent.ID, entries[0].ID)
}

func TestPurgeAudit_RejectsZeroRetention(t *testing.T) {
	configPath, _ := writeTestConfig(t)
	assert.Error(t, executeDatabase(t, "audit", "purge", "--config", configPath, "--older-than-days", "0"))
}
