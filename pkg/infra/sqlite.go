package infra

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSQLiteConnection opens a single-file key store, creating its directory if needed.
// Use ":memory:" for an in-process database.
func NewSQLiteConnection(path string) (*gorm.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("infra.NewSQLiteConnection: %w", err)
		}
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("infra.NewSQLiteConnection: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("infra.NewSQLiteConnection: %w", err)
	}
	// sqlite allows a single writer
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}
