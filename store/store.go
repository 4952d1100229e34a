// Package store reads the catalog tables and keeps the favorites ledger.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// ErrNotFound is matched by every *NotFoundError
var ErrNotFound = errors.New("not found")

// NotFoundError names the entity that is missing ("User", "Planet", ...)
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// Store wraps the database handle shared by all requests
type Store struct {
	db *sqlx.DB
}

// New creates a store on top of an open connection pool
func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// Ping checks the database is reachable
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func listRows[T any](ctx context.Context, q sqlx.QueryerContext, query string, args ...interface{}) ([]T, error) {
	rows := []T{}
	if err := sqlx.SelectContext(ctx, q, &rows, query, args...); err != nil {
		return nil, err
	}
	return rows, nil
}

func getRow[T any](ctx context.Context, q sqlx.QueryerContext, entity, query string, args ...interface{}) (T, error) {
	var row T
	err := sqlx.GetContext(ctx, q, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return row, &NotFoundError{Entity: entity}
	}
	if err != nil {
		return row, fmt.Errorf("get %s: %w", entity, err)
	}
	return row, nil
}

// withTx runs fn in a transaction, committing on success and rolling back otherwise
func (s *Store) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
