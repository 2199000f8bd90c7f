package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"serverless_blog/internal/repository/db/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// Supported values for Config.Driver.
const (
	DriverSQLite = "sqlite"
	DriverPgx    = "pgx"
)

// Migration commands accepted by Migrate.
const (
	MigrateUp     = "up"
	MigrateDown   = "down"
	MigrateStatus = "status"
)

const (
	defaultSQLitePath   = "blog.db"
	defaultMaxOpenConns = 10
	connMaxLifetime     = 30 * time.Minute
	pingTimeout         = 5 * time.Second
)

// Config describes how to reach the store.
type Config struct {
	Driver       string
	DSN          string
	MaxOpenConns int
}

// Open returns a pooled handle for the configured driver. The handle is shared
// by all repositories; callers own Close.
func Open(ctx context.Context, cfg Config) (*sql.DB, error) {
	switch cfg.Driver {
	case "", DriverSQLite:
		return openSQLite(ctx, cfg.DSN)
	case DriverPgx:
		return openPostgres(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.Driver)
	}
}

// InitDB opens the store and applies pending migrations.
func InitDB(ctx context.Context, cfg Config) (*sql.DB, error) {
	conn, err := Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := Migrate(ctx, conn, cfg.Driver, MigrateUp); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return conn, nil
}

func openSQLite(ctx context.Context, path string) (*sql.DB, error) {
	if path == "" {
		path = defaultSQLitePath
	}
	conn, err := sql.Open(DriverSQLite, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %q: %w", path, err)
	}

	// Single writer; pragmas are per connection.
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA foreign_keys = ON;",
		"PRAGMA busy_timeout = 5000;",
	} {
		if _, err := conn.ExecContext(ctx, pragma); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("set %s: %w", pragma, err)
		}
	}

	if err := ping(ctx, conn); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return conn, nil
}

func openPostgres(ctx context.Context, cfg Config) (*sql.DB, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("db.dsn is required for driver %q", DriverPgx)
	}
	conn, err := sql.Open(DriverPgx, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	maxOpen := cfg.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = defaultMaxOpenConns
	}
	conn.SetMaxOpenConns(maxOpen)
	conn.SetMaxIdleConns(maxOpen)
	conn.SetConnMaxLifetime(connMaxLifetime)

	if err := ping(ctx, conn); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return conn, nil
}

func ping(ctx context.Context, conn *sql.DB) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return conn.PingContext(ctx)
}

// Migrate runs a goose command against the embedded migrations.
func Migrate(ctx context.Context, conn *sql.DB, driver, command string) error {
	dialect, err := gooseDialect(driver)
	if err != nil {
		return err
	}

	goose.SetBaseFS(migrations.FS)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("set goose dialect %q: %w", dialect, err)
	}

	switch command {
	case MigrateUp:
		err = goose.UpContext(ctx, conn, ".")
	case MigrateDown:
		err = goose.DownContext(ctx, conn, ".")
	case MigrateStatus:
		err = goose.StatusContext(ctx, conn, ".")
	default:
		return fmt.Errorf("unknown migrate command %q", command)
	}
	if err != nil {
		return fmt.Errorf("migrate %s: %w", command, err)
	}
	return nil
}

func gooseDialect(driver string) (string, error) {
	switch driver {
	case "", DriverSQLite:
		return "sqlite3", nil
	case DriverPgx:
		return "postgres", nil
	default:
		return "", fmt.Errorf("unsupported db driver %q", driver)
	}
}
