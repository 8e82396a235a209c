package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corebank/ledgerengine/internal/domain"
	"github.com/corebank/ledgerengine/internal/infrastructure/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.DatabaseURL)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, config.StoragePostgres, cfg.Storage)
	assert.Equal(t, config.PublisherLog, cfg.OutboxPublisher)
	assert.Equal(t, 30*time.Second, cfg.DayCloseDrainTimeout)
	assert.Equal(t, 10*time.Second, cfg.DatabaseTxTimeout)
	assert.Equal(t, domain.DefaultPolicy(), cfg.Policy())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("REDIS_URL", "redis://example")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DATABASE_TIMEOUT", "45s")
	t.Setenv("DATABASE_TX_TIMEOUT", "2s")
	t.Setenv("STORAGE", "memory")
	t.Setenv("CONFIG_SOURCE", "yaml")
	t.Setenv("SHARE_RESIDUAL_PARTY", "first")
	t.Setenv("CORRESPONDING_PRECEDENCE", "conditional")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://ops.example")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://example", cfg.DatabaseURL)
	assert.Equal(t, "redis://example", cfg.RedisURL)
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, 45*time.Second, cfg.DatabaseTimeout)
	assert.Equal(t, 2*time.Second, cfg.DatabaseTxTimeout)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, []string{"https://ops.example"}, cfg.CORSAllowedOrigins)

	policy := cfg.Policy()
	assert.Equal(t, domain.ResidualToFirst, policy.Residual)
	assert.Equal(t, domain.ConditionalOverridesException, policy.Precedence)
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"invalid duration", "HTTP_READ_TIMEOUT", "not-a-duration"},
		{"unknown storage", "STORAGE", "sqlite"},
		{"unknown publisher", "OUTBOX_PUBLISHER", "nats"},
		{"unknown residual party", "SHARE_RESIDUAL_PARTY", "middle"},
		{"zero retries", "TRACKER_MAX_RETRIES", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadMemoryStorageNeedsYAMLSource(t *testing.T) {
	t.Setenv("STORAGE", "memory")
	t.Setenv("CONFIG_SOURCE", "postgres")

	_, err := config.Load()
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("HEAD_OFFICE_BRANCH=HQ\nTRACKER_MAX_RETRIES=7\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("HEAD_OFFICE_BRANCH")
		os.Unsetenv("TRACKER_MAX_RETRIES")
	})

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "HQ", cfg.HeadOfficeBranch)
	assert.Equal(t, 7, cfg.TrackerMaxRetries)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
