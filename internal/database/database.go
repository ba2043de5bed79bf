package database

import (
	"database/sql"
	"fmt"

	"social-dashboard/internal/config"
	"social-dashboard/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// InitDB opens the notification history database and migrates its schema
func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	switch cfg.Type {
	case "sqlite":
		// Use pure Go SQLite driver (modernc.org/sqlite)
		sqlDB, err := sql.Open("sqlite", cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		// Every connection to ":memory:" is a separate database
		sqlDB.SetMaxOpenConns(1)

		db, err := gorm.Open(sqlite.Dialector{
			Conn: sqlDB,
		}, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize GORM: %w", err)
		}

		if err := db.AutoMigrate(&models.Notification{}); err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}

		return db, nil
	default:
		return nil, fmt.Errorf("unsupported database type: %s", cfg.Type)
	}
}

// Close releases the underlying connection pool
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
