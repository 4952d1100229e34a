package database

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"starwars-api/config"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/umakantv/go-utils/logger"
)

func TestMain(m *testing.M) {
	logger.Init(logger.LoggerConfig{
		CallerKey:  "file",
		TimeKey:    "timestamp",
		CallerSkip: 1,
	})
	os.Exit(m.Run())
}

func migrationsRoot() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "migrations")
}

func TestInitializeDatabaseSQLite(t *testing.T) {
	cfg := config.DatabaseConfig{
		Driver:        "sqlite3",
		DSN:           filepath.Join(t.TempDir(), "starwars.db"),
		MigrationsDir: migrationsRoot(),
	}

	db, err := InitializeDatabase(cfg)
	require.NoError(t, err)

	for _, table := range []string{"users", "people", "planets", "vehicles", "favorites"} {
		var n int
		assert.NoError(t, db.Get(&n, "SELECT COUNT(*) FROM "+table), table)
	}
	_, err = db.Exec("INSERT INTO users (email, password, is_active) VALUES ('a@example.com', 'x', 1)")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// Second start on the same file keeps data and skips applied migrations
	db, err = InitializeDatabase(cfg)
	require.NoError(t, err)
	defer db.Close()

	var n int
	require.NoError(t, db.Get(&n, "SELECT COUNT(*) FROM users"))
	assert.Equal(t, 1, n)
}

func TestInitializeDatabaseReportsConnectionFailure(t *testing.T) {
	_, err := InitializeDatabase(config.DatabaseConfig{
		Driver:        "sqlite3",
		DSN:           filepath.Join(t.TempDir(), "missing", "dir", "starwars.db"),
		MigrationsDir: migrationsRoot(),
	})
	assert.Error(t, err)
}

func TestMigrationsDir(t *testing.T) {
	assert.Equal(t, filepath.Join("m", "sqlite3"), MigrationsDir(config.DatabaseConfig{Driver: "sqlite3", MigrationsDir: "m"}))
	assert.Equal(t, filepath.Join("m", "postgres"), MigrationsDir(config.DatabaseConfig{Driver: "pgx", MigrationsDir: "m"}))
}

func TestLoadMigrationsPostgres(t *testing.T) {
	all, err := LoadMigrations(filepath.Join(migrationsRoot(), "postgres"))
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, "20250101000001", all[0].Version)
	assert.Equal(t, "20250101000005_create_favorites.sql", all[4].Name)

	// The favorites file holds a table and an index
	stmts := SplitStatements(all[4].SQL)
	require.Len(t, stmts, 2)
	assert.Contains(t, stmts[0], "CREATE TABLE IF NOT EXISTS favorites")
	assert.Contains(t, stmts[1], "CREATE INDEX IF NOT EXISTS idx_favorites_user")

	for _, m := range all {
		for _, stmt := range SplitStatements(m.SQL) {
			assert.NotContains(t, stmt, "AUTOINCREMENT", m.Name)
		}
	}
}

func TestLoadMigrationsRejectsBadNames(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "create.sql"), []byte("SELECT 1;"), 0o644))

	_, err := LoadMigrations(dir)
	assert.Error(t, err)
}

func TestSplitStatements(t *testing.T) {
	sql := "-- header\nCREATE TABLE a (id INT);\n\n-- only a comment;\nCREATE INDEX i ON a (id);\n"
	assert.Equal(t, []string{
		"-- header\nCREATE TABLE a (id INT)",
		"CREATE INDEX i ON a (id)",
	}, SplitStatements(sql))
}
