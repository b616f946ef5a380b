// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"

	sq "github.com/Masterminds/squirrel"
	"github.com/mshconnect/campus-hustle/internal/logger"
	"github.com/mshconnect/campus-hustle/migrations"
)

// Dialect names as understood by goose.
const (
	dialectPostgres = "postgres"
	dialectSQLite   = "sqlite3"
)

// DB wraps a *sql.DB with what the repositories need on top of it: the SQL
// dialect, a squirrel builder using that dialect's placeholders, an error
// classifier deciding retries and the process-wide write lock.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger

	// writeMu serializes every write transaction issued by this process.
	writeMu sync.Mutex
}

func newDB(conn *sql.DB, dialect string, classifier ErrorClassificator, log *logger.Logger) *DB {
	var placeholder sq.PlaceholderFormat = sq.Question
	if dialect == dialectPostgres {
		placeholder = sq.Dollar
	}

	return &DB{
		DB:                 conn,
		dialect:            dialect,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassificator: classifier,
		logger:             log,
	}
}

// NewConnectDatabase opens the database named by dsn. postgres:// and
// postgresql:// use pgx, sqlite:// and file: use sqlite3.
func NewConnectDatabase(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return NewConnectPostgres(ctx, dsn, log)
	case strings.HasPrefix(dsn, "sqlite://"), strings.HasPrefix(dsn, "file:"):
		return NewConnectSQLite(ctx, dsn, log)
	default:
		return nil, fmt.Errorf("%w: expected postgres:// or sqlite:// scheme", ErrUnsupportedDSN)
	}
}

// Migrate applies all pending schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// lockForUpdate returns the row locking suffix for SELECTs issued inside a
// write transaction. SQLite locks the whole database on BEGIN IMMEDIATE.
func (db *DB) lockForUpdate() string {
	if db.dialect == dialectPostgres {
		return "FOR UPDATE"
	}
	return ""
}

// withRetry runs op and repeats it once when the first failure is classified
// as retryable.
func (db *DB) withRetry(ctx context.Context, funcName string, op func() error) error {
	err := op()
	if err == nil || db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
		return err
	}

	logger.FromContext(ctx).Warn().Err(err).Str("func", funcName).Msg("retrying after retryable database error")
	return op()
}

// inWriteTx runs fn inside a transaction holding the write lock. The
// transaction is committed when fn succeeds and rolled back otherwise.
func (db *DB) inWriteTx(ctx context.Context, funcName string, fn func(tx *sql.Tx) error) error {
	db.writeMu.Lock()
	defer db.writeMu.Unlock()

	return db.withRetry(ctx, funcName, func() error {
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
		}
		defer tx.Rollback()

		if err := fn(tx); err != nil {
			return err
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
		}
		return nil
	})
}
