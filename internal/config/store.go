package config

import (
	"fmt"
	"path/filepath"
	"time"
)

// Store backends.
const (
	BackendCSV    = "csv"
	BackendSQLite = "sqlite"
)

// StoreConfig holds persistence configuration shared by the store and the
// leaderboard job. All relative table paths resolve against DataDir.
type StoreConfig struct {
	// Backend selects the table storage (csv or sqlite).
	Backend string `yaml:"backend"`
	// DataDir is the directory holding every table file.
	DataDir string `yaml:"data_dir"`
	// SQLitePath is the database file for the sqlite backend.
	// Empty means <DataDir>/training_grounds.db.
	SQLitePath string `yaml:"sqlite_path"`
	// BusyTimeout is how long sqlite waits on a locked database.
	BusyTimeout time.Duration `yaml:"busy_timeout"`
}

// LoadStoreConfigFromEnv loads store configuration from environment variables.
func LoadStoreConfigFromEnv() StoreConfig {
	return StoreConfig{
		Backend:     GetEnv("STORE_BACKEND", BackendCSV),
		DataDir:     GetEnv("DATA_DIR", "data"),
		SQLitePath:  GetEnv("SQLITE_PATH", ""),
		BusyTimeout: GetEnvDuration("SQLITE_BUSY_TIMEOUT", 5*time.Second),
	}
}

// Validate validates store configuration.
func (c StoreConfig) Validate() error {
	if c.Backend != BackendCSV && c.Backend != BackendSQLite {
		return fmt.Errorf("invalid STORE_BACKEND: %s (must be: csv, sqlite)", c.Backend)
	}
	if c.DataDir == "" {
		return fmt.Errorf("DataDir must not be empty")
	}
	if c.BusyTimeout < 0 {
		return fmt.Errorf("BusyTimeout must be non-negative")
	}
	return nil
}

// ResolvePath joins name onto DataDir unless name is already absolute.
func (c StoreConfig) ResolvePath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.DataDir, name)
}

// DatabasePath returns the sqlite database file location.
func (c StoreConfig) DatabasePath() string {
	if c.SQLitePath != "" {
		return c.SQLitePath
	}
	return c.ResolvePath("training_grounds.db")
}
