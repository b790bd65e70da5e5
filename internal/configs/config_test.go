package configs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"APP_NAME", "PORT", "CORS_ALLOWED_ORIGINS", "FIXTURE_LATENCY_MS", "SAVED_STORE", "DATABASE_URL",
	"RABBITMQ_ENABLED", "RABBITMQ_URL", "FLUENTBIT_ENABLED", "FLUENTBIT_HOST", "FLUENTBIT_PORT",
	"FLUENTBIT_LOG_LEVEL", "STDOUT_LOG_LEVEL",
}

// clearEnv снимает переменные на время теста; t.Setenv восстанавливает исходные значения.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "absent.env")
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "estate-view", cfg.AppName)
	assert.Equal(t, "8080", cfg.Rest.PORT)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.Rest.CorsAllowedOrigins)
	assert.Equal(t, 300, cfg.Fixture.LatencyMS)
	assert.Equal(t, SavedStoreMemory, cfg.SavedStore)
	assert.False(t, cfg.RabbitMQ.Enabled)
	assert.False(t, cfg.FluentBit.Enabled)
	assert.Equal(t, "debug", cfg.StdoutLogger.Level)
}

func TestLoadConfig_FromEnvFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), ".env")
	content := "PORT=9090\nCORS_ALLOWED_ORIGINS=http://a.test, ,http://b.test\nFIXTURE_LATENCY_MS=0\n" +
		"SAVED_STORE=postgres\nDATABASE_URL=postgres://u:p@localhost:5432/estate\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Rest.PORT)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Rest.CorsAllowedOrigins)
	assert.Equal(t, 0, cfg.Fixture.LatencyMS)
	assert.Equal(t, SavedStorePostgres, cfg.SavedStore)
	assert.Equal(t, "postgres://u:p@localhost:5432/estate", cfg.Database.URL)
}

func TestLoadConfig_RequiredKeys(t *testing.T) {
	clearEnv(t)
	t.Setenv("SAVED_STORE", "postgres")
	_, err := LoadConfig(missingEnvFile(t))
	assert.ErrorContains(t, err, "DATABASE_URL")

	clearEnv(t)
	t.Setenv("RABBITMQ_ENABLED", "true")
	_, err = LoadConfig(missingEnvFile(t))
	assert.ErrorContains(t, err, "RABBITMQ_URL")

	clearEnv(t)
	t.Setenv("SAVED_STORE", "redis")
	_, err = LoadConfig(missingEnvFile(t))
	assert.ErrorContains(t, err, "SAVED_STORE")
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("FIXTURE_LATENCY_MS", "slow")
	t.Setenv("RABBITMQ_ENABLED", "maybe")
	t.Setenv("FLUENTBIT_ENABLED", "true")

	cfg, err := LoadConfig(missingEnvFile(t))
	require.NoError(t, err)
	assert.Equal(t, 300, cfg.Fixture.LatencyMS)
	assert.False(t, cfg.RabbitMQ.Enabled)
	// FLUENTBIT_HOST не задан
	assert.False(t, cfg.FluentBit.Enabled)
}
