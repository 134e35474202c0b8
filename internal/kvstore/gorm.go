package kvstore

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entry is one persisted key-value row.
type Entry struct {
	Key   string `gorm:"primaryKey;size:255"`
	Value string `gorm:"type:text;not null"`
}

// TableName overrides the gorm default table name
func (Entry) TableName() string {
	return "kv_entries"
}

// GormKV stores values in a single table through gorm, backed by sqlite for
// local single-device use or postgres when configured.
type GormKV struct {
	db *gorm.DB
}

// NewGormKV creates a KV over an already-opened gorm database.
func NewGormKV(db *gorm.DB) *GormKV {
	return &GormKV{db: db}
}

func (g *GormKV) Get(ctx context.Context, key string) (string, error) {
	var entry Entry
	err := g.db.WithContext(ctx).First(&entry, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrKeyNotFound
		}
		return "", err
	}
	return entry.Value, nil
}

func (g *GormKV) Set(ctx context.Context, key, value string) error {
	entry := Entry{Key: key, Value: value}
	return g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&entry).Error
}
