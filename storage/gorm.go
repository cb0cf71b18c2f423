package storage

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVEntry is the table backing the Gorm store, one row per key.
type KVEntry struct {
	Key   string `gorm:"primaryKey;size:255"`
	Value string
}

// Gorm persists values in a key-value table through a GORM connection.
// Used with the Postgres driver in production wiring.
type Gorm struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) (*Gorm, error) {
	if err := db.AutoMigrate(&KVEntry{}); err != nil {
		return nil, fmt.Errorf("storage: migrate: %w", err)
	}
	return &Gorm{db: db}, nil
}

func (g *Gorm) Get(key string) (string, bool) {
	var entry KVEntry
	if err := g.db.First(&entry, "key = ?", key).Error; err != nil {
		return "", false
	}
	return entry.Value, true
}

func (g *Gorm) Set(key, value string) error {
	entry := KVEntry{Key: key, Value: value}
	err := g.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("storage: upsert %s: %w", key, err)
	}
	return nil
}

func (g *Gorm) Delete(key string) error {
	err := g.db.Delete(&KVEntry{}, "key = ?", key).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("storage: delete %s: %w", key, err)
	}
	return nil
}
