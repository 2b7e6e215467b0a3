// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "plain error", err: errors.New("boom"), want: NonRetryable},
		{name: "connection failure", err: pgError(pgerrcode.ConnectionFailure), want: Retryable},
		{name: "serialization failure", err: pgError(pgerrcode.SerializationFailure), want: Retryable},
		{name: "deadlock wrapped", err: fmt.Errorf("exec: %w", pgError(pgerrcode.DeadlockDetected)), want: Retryable},
		{name: "cannot connect now", err: pgError(pgerrcode.CannotConnectNow), want: Retryable},
		{name: "unique violation", err: pgError(pgerrcode.UniqueViolation), want: NonRetryable},
		{name: "syntax error", err: pgError(pgerrcode.SyntaxError), want: NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestPostgresErrorClassifier_UniqueViolation(t *testing.T) {
	c := NewPostgresErrorClassifier()

	target, ok := c.UniqueViolation(fmt.Errorf("insert: %w", pgUniqueError("users", "uq_users_email")))
	assert.True(t, ok)
	assert.Equal(t, "users.email", target)

	target, ok = c.UniqueViolation(pgUniqueError("teams", "uq_teams_name"))
	assert.True(t, ok)
	assert.Equal(t, "teams.name", target)

	target, ok = c.UniqueViolation(pgUniqueError("teams", "teams_pkey"))
	assert.True(t, ok)
	assert.Equal(t, "teams_pkey", target)

	_, ok = c.UniqueViolation(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation})
	assert.False(t, ok)

	_, ok = c.UniqueViolation(errors.New("not a pg error"))
	assert.False(t, ok)
}

func TestDB_Retryable(t *testing.T) {
	postgres := &DB{errorClassificator: NewPostgresErrorClassifier()}
	sqlite := &DB{errorClassificator: NewSQLiteErrorClassifier()}

	tests := []struct {
		name string
		db   *DB
		err  error
		want bool
	}{
		{name: "postgres connection failure", db: postgres, err: pgError(pgerrcode.ConnectionFailure), want: true},
		{name: "postgres wrapped deadlock", db: postgres, err: fmt.Errorf("%w: %w", ErrExecutingStatement, pgError(pgerrcode.DeadlockDetected)), want: true},
		{name: "postgres syntax error", db: postgres, err: pgError(pgerrcode.SyntaxError)},
		{name: "postgres plain error", db: postgres, err: errors.New("boom")},
		{name: "sqlite busy", db: sqlite, err: sqlite3.Error{Code: sqlite3.ErrBusy}, want: true},
		{name: "sqlite locked", db: sqlite, err: sqlite3.Error{Code: sqlite3.ErrLocked}, want: true},
		{name: "sqlite constraint", db: sqlite, err: sqlite3.Error{Code: sqlite3.ErrConstraint}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.db.retryable(tt.err))
		})
	}
}

func TestPostgresError(t *testing.T) {
	assert.Equal(t, pgerrcode.UniqueViolation, postgresError(fmt.Errorf("wrapped: %w", pgError(pgerrcode.UniqueViolation))))
	assert.Empty(t, postgresError(errors.New("plain")))
}

func TestIsInMemoryDSN(t *testing.T) {
	assert.True(t, isInMemoryDSN(":memory:"))
	assert.True(t, isInMemoryDSN("file::memory:?cache=shared"))
	assert.True(t, isInMemoryDSN("file:scrims?mode=memory&cache=shared"))
	assert.False(t, isInMemoryDSN("file:/var/lib/scrims/identity.db"))
}
