package database

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mealkeep/backend/config"
	"github.com/mealkeep/backend/internal/kvstore"
)

// New opens the gorm database for the configured driver and runs migrations
func New(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.StorageDriver {
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.SQLitePath)
	case config.DriverPostgres:
		dsn := fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode,
		)
		// Log connection target (without password)
		log.Printf("Connecting to database at %s:%s as user %s", cfg.DBHost, cfg.DBPort, cfg.DBUser)
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("storage driver %q is not database-backed", cfg.StorageDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates or updates the key-value schema.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&kvstore.Entry{}); err != nil {
		return fmt.Errorf("error migrating schema: %w", err)
	}
	return nil
}

// NewKV builds the key-value layer for the configured storage driver.
func NewKV(cfg *config.Config) (kvstore.KV, error) {
	switch cfg.StorageDriver {
	case config.DriverMemory:
		return kvstore.NewMemoryKV(), nil
	case config.DriverRedis:
		client, err := NewRedisClient(cfg)
		if err != nil {
			return nil, err
		}
		return kvstore.NewRedisKV(client), nil
	case config.DriverSQLite, config.DriverPostgres:
		db, err := New(cfg)
		if err != nil {
			return nil, err
		}
		return kvstore.NewGormKV(db), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
