// Package postgres stores the escrow state in PostgreSQL through
// database/sql and lib/pq.
package postgres

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/lib/pq"

	"rentescrow-backend/internal/logger"
	"rentescrow-backend/internal/repository"
)

//go:embed schema.sql
var schema string

// settlementLockKey is the advisory lock every write transaction takes, so
// settlement calls run one at a time across all server and keeper processes.
const settlementLockKey = 7_412_093

type Store struct {
	db *sql.DB
}

var _ repository.Store = (*Store)(nil)

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Open connects with lib/pq and pings the database.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

// Migrate creates the tables if they do not exist.
func Migrate(ctx context.Context, db *sql.DB) error {
	logger.DatabaseCall("Migrate", "schema.sql")
	_, err := db.ExecContext(ctx, schema)
	logger.DatabaseResult("Migrate", 0, err)
	return err
}

func (s *Store) Begin(ctx context.Context) (repository.Tx, error) {
	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	if _, err := sqlTx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", settlementLockKey); err != nil {
		sqlTx.Rollback()
		return nil, fmt.Errorf("failed to acquire settlement lock: %w", err)
	}
	return &tx{tx: sqlTx}, nil
}

// tx implements every repository over one sql.Tx.
type tx struct {
	tx *sql.Tx
}

func (t *tx) Commit() error {
	return t.tx.Commit()
}

func (t *tx) Rollback() error {
	err := t.tx.Rollback()
	if err == sql.ErrTxDone {
		return nil
	}
	return err
}

// exec runs a write statement and logs it.
func (t *tx) exec(ctx context.Context, operation, query string, args ...any) error {
	logger.DatabaseCall(operation, query)
	res, err := t.tx.ExecContext(ctx, query, args...)
	var n int64
	if err == nil {
		n, _ = res.RowsAffected()
	}
	logger.DatabaseResult(operation, n, err)
	return err
}

// get runs a single-row query. A missing row yields (false, nil).
func (t *tx) get(ctx context.Context, operation, query string, args []any, dest ...any) (bool, error) {
	logger.DatabaseCall(operation, query)
	err := t.tx.QueryRowContext(ctx, query, args...).Scan(dest...)
	if err == sql.ErrNoRows {
		logger.DatabaseResult(operation, 0, nil)
		return false, nil
	}
	logger.DatabaseResult(operation, 1, err)
	if err != nil {
		return false, err
	}
	return true, nil
}
