package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/umakantv/go-utils/logger"
	"go.uber.org/zap"
)

// migrationLockID is the postgres advisory lock held while migrating
const migrationLockID int64 = 0x5357415049 // "SWAPI"

// Migration is one .sql file; Version is the file name prefix before the first "_"
type Migration struct {
	Version string
	Name    string
	SQL     string
}

// LoadMigrations reads dir's .sql files in version order
func LoadMigrations(dir string) ([]Migration, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(files)

	var out []Migration
	for _, f := range files {
		base := filepath.Base(f)
		version, _, ok := strings.Cut(strings.TrimSuffix(base, ".sql"), "_")
		if !ok || version == "" {
			return nil, fmt.Errorf("migration %s: name must look like <version>_<name>.sql", base)
		}
		raw, err := os.ReadFile(f)
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", base, err)
		}
		out = append(out, Migration{Version: version, Name: base, SQL: string(raw)})
	}
	return out, nil
}

// MigratePostgres applies the pending migrations of dir, each in its own transaction.
// Applied versions are tracked in schema_migrations; an advisory lock keeps
// concurrent starts from racing.
func MigratePostgres(ctx context.Context, dsn, dir string) error {
	all, err := LoadMigrations(dir)
	if err != nil {
		return err
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer pool.Close()

	// Advisory locks belong to a session, so everything runs on one connection
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "SELECT pg_advisory_lock($1)", migrationLockID); err != nil {
		return fmt.Errorf("acquire migration lock: %w", err)
	}
	defer conn.Exec(context.Background(), "SELECT pg_advisory_unlock($1)", migrationLockID)

	_, err = conn.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version VARCHAR(32) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			applied_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	for _, m := range all {
		var applied bool
		err := conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)", m.Version).Scan(&applied)
		if err != nil {
			return fmt.Errorf("check migration %s: %w", m.Name, err)
		}
		if applied {
			continue
		}

		if err := pgx.BeginFunc(ctx, conn, func(tx pgx.Tx) error {
			for _, stmt := range SplitStatements(m.SQL) {
				if _, err := tx.Exec(ctx, stmt); err != nil {
					return err
				}
			}
			_, err := tx.Exec(ctx, "INSERT INTO schema_migrations (version, name) VALUES ($1, $2)", m.Version, m.Name)
			return err
		}); err != nil {
			return fmt.Errorf("failed to run migration %s: %w", m.Name, err)
		}

		logger.Info("Migration applied", zap.String("version", m.Version), zap.String("name", m.Name))
	}
	return nil
}

// SplitStatements cuts a migration on ";" and drops chunks holding only comments.
// Migrations must not put ";" inside string literals.
func SplitStatements(sql string) []string {
	var out []string
	for _, chunk := range strings.Split(sql, ";") {
		if hasCode(chunk) {
			out = append(out, strings.TrimSpace(chunk))
		}
	}
	return out
}

func hasCode(chunk string) bool {
	for _, line := range strings.Split(chunk, "\n") {
		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, "--") {
			return true
		}
	}
	return false
}
