package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/jask/placelist/internal/database/migrations"
)

// RunMigrations applies all up migrations found at path.
func RunMigrations(dbPath, migrationsPath string) error {
	dsn := fmt.Sprintf("sqlite3://%s?_foreign_keys=on", dbPath)

	m, err := migrate.New(
		fmt.Sprintf("file://%s", migrationsPath),
		dsn,
	)
	if err != nil {
		return err
	}
	defer m.Close()

	return up(m)
}

// RunEmbeddedMigrations applies the migrations compiled into the binary
// using an existing *sql.DB.
func RunEmbeddedMigrations(db *sql.DB) error {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("migrations source: %w", err)
	}
	defer src.Close()
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		return err
	}
	// m.Close would also close db, which the caller still owns; only the
	// source is released.
	return up(m)
}

func up(m *migrate.Migrate) error {
	err := m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	return err
}
