package db

import (
	"fmt"
	"log"

	"rental_quote_app_go/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Initialize opens the quote database with WAL mode for concurrent renders
// and migrates the quote audit table. The service persists a single model,
// so migration is part of startup rather than a separate step.
func Initialize(dbPath string, environment string) error {
	// Quiet the query log in production; renders are chatty enough
	logLevel := logger.Info
	if environment == "production" {
		logLevel = logger.Warn
	}

	// Enable WAL mode so concurrent generate requests can append audit rows
	dsn := dbPath + "?_journal_mode=WAL"

	var err error
	DB, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to quote database: %w", err)
	}

	if err := DB.AutoMigrate(&models.QuoteDocument{}); err != nil {
		return fmt.Errorf("failed to migrate quote audit table: %w", err)
	}

	log.Println("Quote database ready (WAL mode, audit table migrated)")
	return nil
}

// Close closes the quote database connection
func Close() error {
	if DB == nil {
		return nil
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	return sqlDB.Close()
}
