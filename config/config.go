package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Storage drivers the key-value layer can be backed by.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverMemory   = "memory"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerHost string
	ServerPort string

	// Storage configuration
	StorageDriver string
	SQLitePath    string

	// Postgres configuration (STORAGE_DRIVER=postgres)
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration (STORAGE_DRIVER=redis)
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// Seed the built-in sample recipes when the recipes key is absent
	SeedSampleRecipes bool
}

// LoadConfig creates a new Config instance from environment variables. In
// development a .env file in the working directory is loaded first.
func LoadConfig() (*Config, error) {
	if IsDevelopment() {
		// Missing .env is fine; plain environment variables still apply.
		_ = godotenv.Load()
	}

	redisDB := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB %q: %w", v, err)
		}
		redisDB = n
	}

	cfg := &Config{
		ServerHost:        getEnv("SERVER_HOST", "0.0.0.0"),
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		StorageDriver:     getEnv("STORAGE_DRIVER", DriverSQLite),
		SQLitePath:        getEnv("SQLITE_PATH", "mealkeep.db"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBUser:            os.Getenv("DB_USER"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBName:            getEnv("DB_NAME", "mealkeep"),
		DBSSLMode:         getEnv("DB_SSL_MODE", "disable"),
		RedisHost:         getEnv("REDIS_HOST", "localhost"),
		RedisPort:         getEnv("REDIS_PORT", "6379"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		RedisDB:           redisDB,
		RedisURL:          os.Getenv("REDIS_URL"),
		SeedSampleRecipes: getEnv("SEED_SAMPLE_RECIPES", "true") != "false",
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// getEnv reads an environment variable with a fallback default
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
