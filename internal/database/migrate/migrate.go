// Package migrate applies the database schema with golang-migrate.
package migrate

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/gorm"

	"github.com/festy23/training_grounds/internal/config"
)

//go:embed migrations/*.sql
var embedded embed.FS

// GetMigrationsPath returns the migrations directory override, if any.
// Empty means the migrations compiled into the binary.
func GetMigrationsPath() string {
	return config.GetEnv("MIGRATIONS_PATH", "")
}

func source() (fs.FS, string, error) {
	dir := GetMigrationsPath()
	if dir == "" {
		return embedded, "migrations", nil
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, "", fmt.Errorf("migrations directory does not exist: %s", dir)
	}
	return os.DirFS(dir), ".", nil
}

// Migrate applies all pending migrations to db.
func Migrate(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	fsys, dir, err := source()
	if err != nil {
		return err
	}
	src, err := iofs.New(fsys, dir)
	if err != nil {
		return fmt.Errorf("failed to open migrations source: %w", err)
	}

	driver, err := sqlite3.WithInstance(sqlDB, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("failed to create sqlite3 driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}
