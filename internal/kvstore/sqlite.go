package kvstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"finance-planner/internal/config"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// kvItem is the single table backing the store: one row per key.
type kvItem struct {
	Key   string `gorm:"primaryKey;size:128"`
	Value string `gorm:"type:text;not null"`
}

func (kvItem) TableName() string { return "kv_items" }

// SQLite is the durable Store backed by a local SQLite file.
type SQLite struct {
	db *gorm.DB
}

// OpenSQLite opens (or creates) the SQLite database with basic tuning and
// migrates the kv_items table.
func OpenSQLite(cfg config.StorageConfig) (*SQLite, error) {
	// ensure parent directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	gormLogger := logger.Default
	if !cfg.LogMode {
		gormLogger = gormLogger.LogMode(logger.Silent)
	}

	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}

	// connection pool
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// SQLite performance and reliability tuning
	_, _ = sqlDB.Exec("PRAGMA journal_mode = WAL;")
	_, _ = sqlDB.Exec("PRAGMA synchronous = NORMAL;")

	if err := db.AutoMigrate(&kvItem{}); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}

	return &SQLite{db: db}, nil
}

func (s *SQLite) Get(key string) (string, error) {
	var item kvItem
	if err := s.db.First(&item, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrKeyNotFound
		}
		return "", err
	}
	return item.Value, nil
}

func (s *SQLite) Set(key, value string) error {
	item := kvItem{Key: key, Value: value}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&item).Error
}

func (s *SQLite) Delete(key string) error {
	return s.db.Delete(&kvItem{}, "key = ?", key).Error
}

func (s *SQLite) Keys(prefix string) ([]string, error) {
	var keys []string
	err := s.db.Model(&kvItem{}).
		Where("key LIKE ?", prefix+"%").
		Order("key").
		Pluck("key", &keys).Error
	if err != nil {
		return nil, err
	}
	return keys, nil
}
