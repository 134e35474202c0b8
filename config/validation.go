package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the configuration is complete for the selected
// storage driver. Requirements differ per driver, not per environment: the
// sqlite and memory drivers need nothing beyond their defaults.
func ValidateConfig(cfg *Config) error {
	var errors []string

	if cfg.ServerPort == "" {
		errors = append(errors, "SERVER_PORT must not be empty")
	}

	switch cfg.StorageDriver {
	case DriverSQLite:
		if cfg.SQLitePath == "" {
			errors = append(errors, "SQLITE_PATH is required for the sqlite storage driver")
		}
	case DriverPostgres:
		if cfg.DBUser == "" {
			errors = append(errors, "DB_USER is required for the postgres storage driver")
		}
		if cfg.DBPassword == "" {
			errors = append(errors, "DB_PASSWORD is required for the postgres storage driver")
		}
		if cfg.DBName == "" {
			errors = append(errors, "DB_NAME is required for the postgres storage driver")
		}
	case DriverRedis:
		if cfg.RedisURL == "" && (cfg.RedisHost == "" || cfg.RedisPort == "") {
			errors = append(errors, "REDIS_URL or REDIS_HOST/REDIS_PORT are required for the redis storage driver")
		}
	case DriverMemory:
		// Nothing to validate; state lives for the process lifetime only.
	default:
		errors = append(errors, fmt.Sprintf("unknown storage driver %q", cfg.StorageDriver))
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "\n"))
	}

	return nil
}
