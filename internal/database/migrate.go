package database

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"finboard/internal/logger"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// runSQLMigrations applies the embedded SQL migrations to the SQLite store.
func (m *Manager) runSQLMigrations() error {
	logger.Get().Info("Running database migrations...")

	if err := m.withMigrate(func(mig *migrate.Migrate) error {
		if err := mig.Up(); err != nil && err != migrate.ErrNoChange {
			return fmt.Errorf("migration failed: %w", err)
		}
		return nil
	}); err != nil {
		return err
	}

	logger.Get().Info("Database migrations completed successfully")
	return nil
}

// Rollback reverts the given number of migration steps (SQLite only).
func (m *Manager) Rollback(steps int) error {
	return m.withMigrate(func(mig *migrate.Migrate) error {
		if err := mig.Steps(-steps); err != nil && err != migrate.ErrNoChange {
			return fmt.Errorf("rollback failed: %w", err)
		}
		return nil
	})
}

// Version reports the current migration version and dirty state.
func (m *Manager) Version() (version uint, dirty bool, err error) {
	err = m.withMigrate(func(mig *migrate.Migrate) error {
		var vErr error
		version, dirty, vErr = mig.Version()
		return vErr
	})
	return version, dirty, err
}

// withMigrate runs fn with a migrate instance bound to a dedicated
// connection, so migrations never interfere with GORM's pool.
func (m *Manager) withMigrate(fn func(*migrate.Migrate) error) error {
	if m.driver != "sqlite" {
		return fmt.Errorf("SQL migrations are only supported for the sqlite driver")
	}

	migrateDB, err := sql.Open("sqlite3", m.dsn)
	if err != nil {
		return fmt.Errorf("failed to open migration connection: %w", err)
	}
	defer func() {
		if err := migrateDB.Close(); err != nil {
			logger.Get().Warnf("migrate connection close error: %v", err)
		}
	}()

	dbDriver, err := migratesqlite.WithInstance(migrateDB, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("failed to create sqlite migrate driver: %w", err)
	}

	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create iofs source: %w", err)
	}

	mig, err := migrate.NewWithInstance("iofs", src, "sqlite3", dbDriver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	return fn(mig)
}
