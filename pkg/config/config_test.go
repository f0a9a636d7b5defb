package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FileDefaultsAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "loan.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  http:\n    port: 9090\nlog:\n  level: debug\n"), 0o600))

	t.Setenv("CONFIG_PATH", path)
	t.Setenv("LOAN_LOG_LEVEL", "warn")

	cfg, err := Load("loan", map[string]interface{}{
		"server.http.host":  "0.0.0.0",
		"eligibility.limit": 5,
	})
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.GetInt("server.http.port"))
	assert.Equal(t, "0.0.0.0", cfg.GetString("server.http.host"))
	assert.Equal(t, 5, cfg.GetInt("eligibility.limit"))
	assert.Equal(t, "warn", cfg.GetString("log.level"))
}

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", t.TempDir())

	cfg, err := Load("loan", map[string]interface{}{"service.name": "loan-eligibility"})
	require.NoError(t, err)
	assert.Equal(t, "loan-eligibility", cfg.GetString("service.name"))
}
