package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "loan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
jwt:
  secret: test-secret
eligibility:
  strategy: legacy_rule
  throttle_days: 3
redis:
  snapshot_ttl: 30s
`), 0o600))

	t.Setenv("CONFIG_PATH", path)
	t.Setenv("LOAN_ADMIN_MAX_ADMINS", "5")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "test-secret", cfg.JWT.Secret)
	assert.Equal(t, 24*time.Hour, cfg.JWT.TTL)
	assert.Equal(t, "legacy_rule", cfg.Eligibility.Strategy)
	assert.Equal(t, 3, cfg.Eligibility.ThrottleDays)
	assert.Equal(t, 5, cfg.Eligibility.MaxReasons)
	assert.Equal(t, 5.0, cfg.Eligibility.LoanMultiplier)
	assert.True(t, cfg.Eligibility.RequireDOB)
	assert.Equal(t, 30*time.Second, cfg.Redis.SnapshotTTL)
	assert.Equal(t, 5, cfg.Admin.MaxAdmins)
	assert.Equal(t, "Asia/Kolkata", cfg.Service.Timezone)
}

func TestLoadConfigRequiresJWTSecret(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	pg := DatabaseConfig{Driver: "postgres", Host: "db", Port: 5432, User: "u", Password: "p", Name: "loan", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=loan sslmode=disable", pg.DSN())

	lite := DatabaseConfig{Driver: "sqlite", Name: "loan.db"}
	assert.Equal(t, "loan.db", lite.DSN())
}
