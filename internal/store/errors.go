// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrProfileNotFound is returned when no profile has the requested id
	// or email.
	ErrProfileNotFound = errors.New("profile was not found")

	// ErrEmailAlreadyExists is returned when a create or update would give
	// two profiles the same email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUnsupportedDSN is returned when the database DSN scheme matches
	// none of the supported drivers.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")
)

// Low-level storage errors. These are returned (or wrapped) when an I/O or
// SQL-level operation fails before any domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingColumn is returned when a list column (services, products)
	// cannot be converted to or from its JSON text form.
	ErrEncodingColumn = errors.New("failed to encode column")

	// ErrReadingDocument is returned when the JSON document cannot be read
	// or decoded.
	ErrReadingDocument = errors.New("failed to read document")

	// ErrWritingDocument is returned when the JSON document cannot be
	// written durably.
	ErrWritingDocument = errors.New("failed to write document")
)
