package migrate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func createTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func tableNames(t *testing.T, db *gorm.DB) []string {
	t.Helper()
	var names []string
	require.NoError(t, db.Raw("SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name").Scan(&names).Error)
	return names
}

func TestGetMigrationsPath(t *testing.T) {
	t.Run("default is embedded", func(t *testing.T) {
		t.Setenv("MIGRATIONS_PATH", "")
		assert.Equal(t, "", GetMigrationsPath())
	})

	t.Run("custom path from env", func(t *testing.T) {
		t.Setenv("MIGRATIONS_PATH", "custom/migrations")
		assert.Equal(t, "custom/migrations", GetMigrationsPath())
	})
}

func TestMigrate(t *testing.T) {
	t.Run("applies embedded migrations", func(t *testing.T) {
		t.Setenv("MIGRATIONS_PATH", "")
		db := createTestDB(t)

		require.NoError(t, Migrate(db))

		names := tableNames(t, db)
		for _, want := range []string{"team_members", "scoreboard", "settings", "feedback_log", "game_history", "seeded_tables", "schema_migrations"} {
			assert.Contains(t, names, want)
		}
	})

	t.Run("second run is a no-op", func(t *testing.T) {
		t.Setenv("MIGRATIONS_PATH", "")
		db := createTestDB(t)

		require.NoError(t, Migrate(db))
		assert.NoError(t, Migrate(db))
	})

	t.Run("directory override", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "000001_extra.up.sql"), []byte("CREATE TABLE extra (id INTEGER);"), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "000001_extra.down.sql"), []byte("DROP TABLE extra;"), 0o644))
		t.Setenv("MIGRATIONS_PATH", dir)
		db := createTestDB(t)

		require.NoError(t, Migrate(db))
		assert.Contains(t, tableNames(t, db), "extra")
	})

	t.Run("non-existent directory", func(t *testing.T) {
		t.Setenv("MIGRATIONS_PATH", "/non/existent/path")
		db := createTestDB(t)

		err := Migrate(db)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "migrations directory does not exist")
	})

	t.Run("nil database", func(t *testing.T) {
		err := Migrate(nil)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "database connection is nil")
	})

	t.Run("closed connection", func(t *testing.T) {
		t.Setenv("MIGRATIONS_PATH", "")
		db := createTestDB(t)
		sqlDB, err := db.DB()
		require.NoError(t, err)
		require.NoError(t, sqlDB.Close())

		assert.Error(t, Migrate(db))
	})
}
