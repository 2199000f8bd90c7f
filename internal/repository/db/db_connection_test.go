package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDB_SQLiteAppliesMigrations(t *testing.T) {
	ctx := context.Background()
	conn, err := InitDB(ctx, Config{Driver: DriverSQLite, DSN: filepath.Join(t.TempDir(), "blog.db")})
	require.NoError(t, err)
	defer conn.Close()

	for _, table := range []string{"users", "posts"} {
		var name string
		err := conn.QueryRowContext(ctx,
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = $1`, table).Scan(&name)
		require.NoError(t, err, "table %s", table)
		assert.Equal(t, table, name)
	}

	// Re-running is a no-op.
	require.NoError(t, Migrate(ctx, conn, DriverSQLite, MigrateUp))
	require.NoError(t, Migrate(ctx, conn, DriverSQLite, MigrateStatus))
}

func TestMigrate_DownDropsTables(t *testing.T) {
	ctx := context.Background()
	conn, err := InitDB(ctx, Config{DSN: filepath.Join(t.TempDir(), "blog.db")})
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, Migrate(ctx, conn, "", MigrateDown))

	var n int
	err = conn.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('users', 'posts')`).Scan(&n)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestOpen_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := Open(ctx, Config{Driver: "mysql"})
	assert.ErrorContains(t, err, "unsupported db driver")

	_, err = Open(ctx, Config{Driver: DriverPgx})
	assert.ErrorContains(t, err, "db.dsn is required")
}

func TestMigrate_UnknownCommand(t *testing.T) {
	ctx := context.Background()
	conn, err := Open(ctx, Config{DSN: filepath.Join(t.TempDir(), "blog.db")})
	require.NoError(t, err)
	defer conn.Close()

	assert.ErrorContains(t, Migrate(ctx, conn, DriverSQLite, "sideways"), "unknown migrate command")
	assert.ErrorContains(t, Migrate(ctx, conn, "mysql", MigrateUp), "unsupported db driver")
}
