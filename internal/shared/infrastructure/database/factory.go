package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Config selects and tunes the backend.
type Config struct {
	// Driver forces a backend; empty or "auto" detects from URL.
	Driver Driver
	// URL is the PostgreSQL connection string.
	URL string
	// SQLitePath is the database file for the SQLite backend.
	SQLitePath string
	// MaxConns bounds the PostgreSQL pool.
	MaxConns int
}

// Open creates a connection for the configured backend. Driver packages
// register themselves via their init functions; importing
// database/postgres and database/sqlite wires both in.
func Open(ctx context.Context, cfg Config) (Connection, error) {
	driver := cfg.Driver
	if driver == "" || driver == "auto" {
		driver = DetectDriver(cfg.URL)
	}

	switch driver {
	case DriverPostgres:
		if openPostgres == nil {
			return nil, fmt.Errorf("postgres driver not linked in")
		}
		return openPostgres(ctx, cfg)
	case DriverSQLite:
		if openSQLite == nil {
			return nil, fmt.Errorf("sqlite driver not linked in")
		}
		return openSQLite(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}
}

// DefaultSQLitePath is the zero-config database location.
func DefaultSQLitePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".landadmin", "registry.db")
}

// EnsureDirectory creates the parent directory of a database file.
func EnsureDirectory(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}

var (
	openPostgres func(ctx context.Context, cfg Config) (Connection, error)
	openSQLite   func(ctx context.Context, cfg Config) (Connection, error)
)

// RegisterPostgresDriver is called by the postgres subpackage's init.
func RegisterPostgresDriver(fn func(ctx context.Context, cfg Config) (Connection, error)) {
	openPostgres = fn
}

// RegisterSQLiteDriver is called by the sqlite subpackage's init.
func RegisterSQLiteDriver(fn func(ctx context.Context, cfg Config) (Connection, error)) {
	openSQLite = fn
}
