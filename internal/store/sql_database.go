// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-scrims/internal/config"
	"github.com/MKhiriev/go-scrims/internal/logger"
	"github.com/MKhiriev/go-scrims/migrations"
)

// DB is a database connection bound to its SQL dialect and error classifier.
type DB struct {
	*sql.DB
	dialect            Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens a connection for cfg.Driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case PostgresDialect.Driver:
		return NewConnectPostgres(ctx, cfg, log)
	case SQLiteDialect.Driver:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// Migrate applies the embedded migration set ([migrations.Identity] or
// [migrations.Team]) for the connection's dialect.
func (db *DB) Migrate(set string) error {
	return migrations.Migrate(db.DB, set, db.dialect.Driver)
}

// Dialect returns the SQL dialect of the connection.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// retryable reports whether the driver classifies err as transient.
func (db *DB) retryable(err error) bool {
	return db.errorClassificator.Classify(err) == Retryable
}

// uniqueViolationError maps a unique constraint violation to the matching
// sentinel. It returns nil when err is not a unique violation.
func (db *DB) uniqueViolationError(err error) error {
	target, ok := db.errorClassificator.UniqueViolation(err)
	if !ok {
		return nil
	}

	switch target {
	case "users.username":
		return ErrUsernameAlreadyExists
	case "users.email":
		return ErrEmailAlreadyExists
	case "teams.name":
		return ErrTeamNameAlreadyExists
	default:
		return fmt.Errorf("unique constraint violated on %s: %w", target, err)
	}
}
