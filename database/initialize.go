package database

import (
	"context"
	"fmt"
	"path/filepath"

	"starwars-api/config"

	"github.com/jmoiron/sqlx"
	"github.com/umakantv/go-utils/db"
	"github.com/umakantv/go-utils/db/migrations"
	"github.com/umakantv/go-utils/logger"
	"go.uber.org/zap"
)

// InitializeDatabase opens the configured database and brings the schema up to date
// Drivers must be registered by the caller (see main.go)
func InitializeDatabase(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	dbConn, err := open(cfg)
	if err != nil {
		return nil, err
	}

	dir := MigrationsDir(cfg)
	if err := migrate(cfg, dbConn, dir); err != nil {
		dbConn.Close()
		return nil, fmt.Errorf("run migrations from %s: %w", dir, err)
	}

	logger.Info("Database initialized successfully",
		zap.String("driver", cfg.Driver),
		zap.String("migrations", dir))
	return dbConn, nil
}

// MigrationsDir is the per-driver folder holding the .sql files
func MigrationsDir(cfg config.DatabaseConfig) string {
	sub := cfg.Driver
	if sub == "pgx" {
		sub = "postgres"
	}
	return filepath.Join(cfg.MigrationsDir, sub)
}

// migrate picks the runner for the driver.
// go-utils migrations sends "?" placeholders, which postgres rejects, so pgx gets its own runner.
func migrate(cfg config.DatabaseConfig, dbConn *sqlx.DB, dir string) error {
	if cfg.Driver == "pgx" {
		return MigratePostgres(context.Background(), cfg.DSN, dir)
	}
	return migrations.Migrate(dbConn, dir)
}

func open(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	if cfg.Driver == "sqlite3" {
		dbConn, err := sqliteConnection(cfg.DSN)
		if err != nil {
			return nil, err
		}
		// SQLite allows a single writer; serialise on one connection
		dbConn.SetMaxOpenConns(1)
		return dbConn, nil
	}

	dbConn, err := sqlx.Connect(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.Driver, err)
	}
	return dbConn, nil
}

// sqliteConnection wraps db.GetDBConnection, which panics when open or ping fails
func sqliteConnection(path string) (dbConn *sqlx.DB, err error) {
	defer func() {
		if r := recover(); r != nil {
			dbConn, err = nil, fmt.Errorf("connect sqlite3 %s: %v", path, r)
		}
	}()

	return db.GetDBConnection(db.DatabaseConfig{
		DRIVER: "sqlite3",
		DB:     path,
	}), nil
}
