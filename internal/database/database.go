// Package database manages the application's persistent store. The
// default backend is a local SQLite file, which plays the role the
// per-browser storage played in the original dashboard: one store, one
// user, overwritten in place. A Postgres backend can be selected for
// setups that already run a server.
package database

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"finboard/internal/config"
	"finboard/internal/models"
)

// Manager handles database connections and schema setup.
type Manager struct {
	db     *gorm.DB
	driver string
	dsn    string
}

// NewManager opens a database connection for the configured driver.
func NewManager(cfg *config.Config) (*Manager, error) {
	var (
		db  *gorm.DB
		dsn string
		err error
	)

	switch cfg.DBDriver {
	case "sqlite":
		if dir := filepath.Dir(cfg.SQLitePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create data directory: %w", err)
			}
		}
		dsn = cfg.SQLitePath
		db, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	case "postgres":
		dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode)
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (use sqlite or postgres)", cfg.DBDriver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return &Manager{db: db, driver: cfg.DBDriver, dsn: dsn}, nil
}

// Migrate brings the schema up to date. The SQLite backend runs the
// embedded SQL migrations; the Postgres backend uses GORM's
// auto-migration since the SQL files are written in SQLite dialect.
func (m *Manager) Migrate() error {
	if m.driver == "sqlite" {
		return m.runSQLMigrations()
	}
	return m.db.AutoMigrate(
		&models.Profile{},
		&models.Transaction{},
		&models.Goal{},
		&models.CategoryBudget{},
	)
}

// DB returns the underlying GORM database instance.
func (m *Manager) DB() *gorm.DB {
	return m.db
}
