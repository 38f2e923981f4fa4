// Package storage opens the goal database on either SQLite or Postgres
// and applies schema migrations.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib" // Postgres driver
	_ "modernc.org/sqlite"             // Pure Go SQLite driver
)

// Driver selects the database backend.
type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

// Config configures the database connection.
type Config struct {
	// Driver forces a backend; empty means auto-detect.
	Driver string

	// DatabaseURL is the Postgres connection string.
	DatabaseURL string

	// SQLitePath is the SQLite file path; empty means a default under the
	// user home directory.
	SQLitePath string
}

// DetectDriver picks the backend: an explicit driver wins, otherwise a
// configured DatabaseURL selects Postgres, otherwise SQLite.
func DetectDriver(cfg Config) Driver {
	switch strings.ToLower(cfg.Driver) {
	case string(DriverSQLite):
		return DriverSQLite
	case string(DriverPostgres), "pg", "postgresql":
		return DriverPostgres
	}
	if cfg.DatabaseURL != "" {
		return DriverPostgres
	}
	return DriverSQLite
}

// Open connects to the configured database, verifies the connection, and
// applies migrations.
func Open(ctx context.Context, cfg Config) (*sql.DB, Driver, error) {
	driver := DetectDriver(cfg)

	var db *sql.DB
	var err error
	switch driver {
	case DriverPostgres:
		db, err = sql.Open("pgx", cfg.DatabaseURL)
		if err != nil {
			return nil, driver, fmt.Errorf("open postgres: %w", err)
		}
	default:
		db, err = openSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, driver, err
		}
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, driver, fmt.Errorf("ping %s database: %w", driver, err)
	}
	if err := Migrate(ctx, db, driver); err != nil {
		db.Close()
		return nil, driver, err
	}
	return db, driver, nil
}

func openSQLite(path string) (*sql.DB, error) {
	if path == "" {
		path = defaultSQLitePath()
	}
	if dir := filepath.Dir(path); dir != "." && !strings.HasPrefix(path, ":memory:") {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	dsn := path
	if strings.Contains(dsn, "?") {
		dsn += "&"
	} else {
		dsn += "?"
	}
	dsn += "_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// SQLite supports a single writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	return db, nil
}

func defaultSQLitePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "daybook.db"
	}
	return filepath.Join(home, ".daybook", "daybook.db")
}

// Migrate creates the schema. Idempotent; the DDL is shared between both
// backends.
func Migrate(ctx context.Context, db *sql.DB, driver Driver) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS goals (
    id              TEXT PRIMARY KEY,
    owner_id        TEXT NOT NULL,
    target_activity TEXT NOT NULL,
    target_count    INTEGER NOT NULL,
    period          TEXT NOT NULL,
    created_at      TEXT NOT NULL,
    UNIQUE (owner_id, target_activity)
)`,
		`CREATE INDEX IF NOT EXISTS idx_goals_owner ON goals (owner_id)`,
	}
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate %s schema: %w", driver, err)
		}
	}
	return nil
}
