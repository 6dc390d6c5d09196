//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rest-app.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestInitializeRestConfig(t *testing.T) {
	path := writeConfig(t, `
port: "8081"
database:
  type: sqlite
  dsn: ":memory:"
logger:
  log_level: debug
  log_type: console
redis:
  enabled: true
  addr: localhost:6379
  ttl_seconds: 60
mail:
  provider: log
  from_email: contact@eprofos.fr
  alert_recipients:
    - direction@eprofos.fr
auth:
  jwt_secret: `+testSecret+`
`)

	cfg, err := InitializeRestConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, SqliteDbType, cfg.Database.Type)
	assert.Equal(t, LogLevelDebug, cfg.Logger.LogLevel)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, time.Minute, cfg.Redis.TTL())
	assert.Equal(t, []string{"direction@eprofos.fr"}, cfg.Mail.AlertRecipients)
	assert.Equal(t, "eprofos.audit", cfg.Kafka.Topic)
	assert.False(t, cfg.Kafka.Enabled)
}

func TestInitializeRestConfig_EnvOverride(t *testing.T) {
	path := writeConfig(t, `
port: "8081"
auth:
  jwt_secret: `+testSecret+`
`)
	t.Setenv("EPROFOS_PORT", "9090")

	cfg, err := InitializeRestConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
}

func TestInitializeRestConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"short secret", "auth:\n  jwt_secret: short\n"},
		{"redis enabled without addr", "auth:\n  jwt_secret: " + testSecret + "\nredis:\n  enabled: true\n"},
		{"ses without region", "auth:\n  jwt_secret: " + testSecret + "\nmail:\n  provider: ses\n"},
		{"unknown log type", "auth:\n  jwt_secret: " + testSecret + "\nlogger:\n  log_type: syslog\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := InitializeRestConfig(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestInitializeRestConfig_MissingFile(t *testing.T) {
	_, err := InitializeRestConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestRedisSettings_DefaultTTL(t *testing.T) {
	assert.Equal(t, 5*time.Minute, RedisSettings{}.TTL())
}
