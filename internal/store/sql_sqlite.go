// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-sqlite3"
	"github.com/mshconnect/campus-hustle/internal/logger"
)

// sqliteDSNOptions make writers wait for each other instead of failing with
// SQLITE_BUSY and take the write lock at BEGIN.
const sqliteDSNOptions = "_busy_timeout=5000&_txlock=immediate"

func NewConnectSQLite(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	dsn, dbFile := sqliteDSN(dsn)

	// db will be in file
	if err := createLocalDBFileIfNotExists(dbFile); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file: %w", err)
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	conn.SetMaxOpenConns(4)

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		conn.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return newDB(conn, dialectSQLite, NewSQLiteErrorClassifier(), log), nil
}

// sqliteDSN turns a sqlite:// DSN into a go-sqlite3 file: DSN and returns the
// database file path. file: DSNs are passed through and have no path to
// pre-create.
func sqliteDSN(dsn string) (string, string) {
	if strings.HasPrefix(dsn, "file:") {
		return dsn, ""
	}

	path := strings.TrimPrefix(dsn, "sqlite://")
	query := sqliteDSNOptions
	if i := strings.IndexByte(path, '?'); i >= 0 {
		query = path[i+1:] + "&" + sqliteDSNOptions
		path = path[:i]
	}

	return "file:" + path + "?" + query, path
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if dbFile == "" {
		return nil
	}

	if _, err := os.Stat(dbFile); errors.Is(err, os.ErrNotExist) {
		if err := os.MkdirAll(filepath.Dir(dbFile), 0o755); err != nil {
			return fmt.Errorf("error creating DB directory: %w", err)
		}

		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}

func sqliteUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}
