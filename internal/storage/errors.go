// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors for storage operations.
var (
	ErrNotFound            = errors.New("resource not found")
	ErrDuplicateKey        = errors.New("duplicate key violation")
	ErrForeignKeyViolation = errors.New("foreign key violation")
	ErrCheckViolation      = errors.New("check constraint violation")
)

// PostgreSQL error codes
const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
	pgErrCodeCheckViolation      = "23514"
	pgErrCodeInvalidText         = "22P02"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsDuplicateKeyError checks if the error is a PostgreSQL unique constraint violation.
func IsDuplicateKeyError(err error) bool {
	return pgErrorCode(err) == pgErrCodeUniqueViolation
}

// IsForeignKeyViolation checks if the error is a PostgreSQL foreign key violation.
func IsForeignKeyViolation(err error) bool {
	return pgErrorCode(err) == pgErrCodeForeignKeyViolation
}

// IsCheckViolation checks if the error is a PostgreSQL check constraint violation.
func IsCheckViolation(err error) bool {
	return pgErrorCode(err) == pgErrCodeCheckViolation
}

// IsNoRows matches the empty result error of both the pgx and database/sql drivers.
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}

// IsInvalidIdentifier checks if a malformed value, such as a non uuid id, was rejected by PostgreSQL.
func IsInvalidIdentifier(err error) bool {
	return pgErrorCode(err) == pgErrCodeInvalidText
}

// WrapDuplicateKeyError wraps a duplicate key error with context about which constraint was violated.
func WrapDuplicateKeyError(err error, context string) error {
	if !IsDuplicateKeyError(err) {
		return err
	}
	return fmt.Errorf("%s: %w", context, ErrDuplicateKey)
}

// WrapForeignKeyError wraps a foreign key violation with context.
func WrapForeignKeyError(err error, context string) error {
	if !IsForeignKeyViolation(err) {
		return err
	}
	return fmt.Errorf("%s: %w", context, ErrForeignKeyViolation)
}

// writeError classifies a failed write into the storage sentinels.
func writeError(err error, what string) error {
	switch {
	case IsDuplicateKeyError(err):
		return WrapDuplicateKeyError(err, what)
	case IsForeignKeyViolation(err):
		return WrapForeignKeyError(err, what)
	case IsCheckViolation(err):
		return fmt.Errorf("%s: %w", what, ErrCheckViolation)
	case IsNoRows(err), IsInvalidIdentifier(err):
		return ErrNotFound
	}
	return fmt.Errorf("failed to %s: %w", what, err)
}

// readError maps an empty single row result to ErrNotFound, a malformed id cannot match any row.
func readError(err error, what string) error {
	if IsNoRows(err) || IsInvalidIdentifier(err) {
		return ErrNotFound
	}
	return fmt.Errorf("failed to %s: %w", what, err)
}
