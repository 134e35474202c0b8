package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearStorageEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SERVER_HOST", "SERVER_PORT", "STORAGE_DRIVER", "SQLITE_PATH",
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSL_MODE",
		"REDIS_HOST", "REDIS_PORT", "REDIS_PASSWORD", "REDIS_DB", "REDIS_URL",
		"SEED_SAMPLE_RECIPES",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearStorageEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, DriverSQLite, cfg.StorageDriver)
	assert.Equal(t, "mealkeep.db", cfg.SQLitePath)
	assert.True(t, cfg.SeedSampleRecipes)
}

func TestLoadConfigPostgresRequiresCredentials(t *testing.T) {
	clearStorageEnv(t)
	t.Setenv("STORAGE_DRIVER", DriverPostgres)

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_USER")
}

func TestLoadConfigPostgres(t *testing.T) {
	clearStorageEnv(t)
	t.Setenv("STORAGE_DRIVER", DriverPostgres)
	t.Setenv("DB_USER", "mealkeep")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "mealkeep")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, DriverPostgres, cfg.StorageDriver)
	assert.Equal(t, "disable", cfg.DBSSLMode)
}

func TestLoadConfigRedisAcceptsURL(t *testing.T) {
	clearStorageEnv(t)
	t.Setenv("STORAGE_DRIVER", DriverRedis)
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
}

func TestLoadConfigRejectsUnknownDriver(t *testing.T) {
	clearStorageEnv(t)
	t.Setenv("STORAGE_DRIVER", "cassandra")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown storage driver")
}

func TestLoadConfigRejectsInvalidRedisDB(t *testing.T) {
	clearStorageEnv(t)
	t.Setenv("REDIS_DB", "not-a-number")

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestSeedToggle(t *testing.T) {
	clearStorageEnv(t)
	t.Setenv("SEED_SAMPLE_RECIPES", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.False(t, cfg.SeedSampleRecipes)
}
