// Package dbtest provides throwaway databases migrated through database.InitializeDatabase.
package dbtest

import (
	"path/filepath"
	"runtime"
	"testing"

	"starwars-api/config"
	"starwars-api/database"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

// MigrationsRoot returns the absolute path of database/migrations
func MigrationsRoot() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "migrations")
}

// Open initializes a database exactly like the server does and closes it when the test ends.
func Open(t testing.TB, driver, dsn string) *sqlx.DB {
	t.Helper()

	db, err := database.InitializeDatabase(config.DatabaseConfig{
		Driver:        driver,
		DSN:           dsn,
		MigrationsDir: MigrationsRoot(),
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

// NewSQLite returns a migrated SQLite database in a temp dir.
func NewSQLite(t testing.TB) *sqlx.DB {
	t.Helper()
	return Open(t, "sqlite3", filepath.Join(t.TempDir(), "starwars.db"))
}
