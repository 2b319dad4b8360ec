package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) {
	t.Helper()

	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	for _, key := range []string{
		"APP_ENV", "RUN_ADDRESS", "HTTPS_ADDRESS", "TLS_CERT_FILE", "TLS_KEY_FILE",
		"DATA_DIR", "HASHING_SECRET", "TOKEN_TTL", "MAX_CHECKS", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvLocal, cfg.Env)
	assert.Equal(t, ":3000", cfg.Server.RunAddress)
	assert.False(t, cfg.Server.HTTPSEnabled())
	assert.Equal(t, ".data", cfg.Storage.DataDir)
	assert.Equal(t, DevHashingSecret, cfg.Auth.HashingSecret)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 5, cfg.Checks.MaxChecks)
}

func TestLoad_FromEnv(t *testing.T) {
	isolate(t)
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("RUN_ADDRESS", ":8080")
	t.Setenv("DATA_DIR", "/var/lib/uptime")
	t.Setenv("HASHING_SECRET", "s3cr3t")
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("MAX_CHECKS", "3")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDev, cfg.Env)
	assert.Equal(t, ":8080", cfg.Server.RunAddress)
	assert.Equal(t, "/var/lib/uptime", cfg.Storage.DataDir)
	assert.Equal(t, "s3cr3t", cfg.Auth.HashingSecret)
	assert.Equal(t, 30*time.Minute, cfg.Auth.TokenTTL)
	assert.Equal(t, 3, cfg.Checks.MaxChecks)
}

func TestLoad_DotEnvFile(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("MAX_CHECKS=7\nRUN_ADDRESS=:4000\n"), 0o600))
	t.Setenv("ENV_FILE", path)
	t.Cleanup(func() {
		os.Unsetenv("MAX_CHECKS")
		os.Unsetenv("RUN_ADDRESS")
	})

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Checks.MaxChecks)
	assert.Equal(t, ":4000", cfg.Server.RunAddress)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown env", env: map[string]string{"APP_ENV": "staging"}},
		{name: "prod without secret", env: map[string]string{"APP_ENV": EnvProd}},
		{name: "prod with dev secret", env: map[string]string{"APP_ENV": EnvProd, "HASHING_SECRET": DevHashingSecret}},
		{name: "zero checks", env: map[string]string{"MAX_CHECKS": "0"}},
		{name: "negative ttl", env: map[string]string{"TOKEN_TTL": "-1m"}},
		{name: "https without cert", env: map[string]string{"HTTPS_ADDRESS": ":3001"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
