// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the SQL schema of both services and applies it
// with goose. Each service has its own migration set with one directory per
// supported SQL dialect.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"path"
	"sync"

	"github.com/pressly/goose/v3"
)

// Migration sets, one per service. Each service owns its database, so the
// identity schema never creates team tables and vice versa.
const (
	Identity = "identity"
	Team     = "team"
)

//go:embed identity/*/*.sql team/*/*.sql
var embedMigrations embed.FS

// dialectDirs maps a database/sql driver name to the directory holding its
// scripts inside a migration set.
var dialectDirs = map[string]string{
	"pgx":     "postgres",
	"sqlite3": "sqlite",
}

var (
	// ErrUnsupportedDialect is returned when no migrations exist for a dialect.
	ErrUnsupportedDialect = errors.New("unsupported migration dialect")
	// ErrUnknownSet is returned for a migration set other than [Identity] or [Team].
	ErrUnknownSet = errors.New("unknown migration set")
)

// goose keeps its dialect and filesystem in package globals.
var gooseMu sync.Mutex

// Migrate brings the schema of set up to date in db. dialect is the
// database/sql driver name ("pgx" or "sqlite3"). Every set records its
// applied versions in its own goose table.
func Migrate(db *sql.DB, set, dialect string) error {
	if db == nil {
		return fmt.Errorf("migration error: db is nil")
	}

	if set != Identity && set != Team {
		return fmt.Errorf("migration error: %w: %q", ErrUnknownSet, set)
	}

	dir, ok := dialectDirs[dialect]
	if !ok {
		return fmt.Errorf("migration error: %w: %q", ErrUnsupportedDialect, dialect)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())
	goose.SetTableName("goose_" + set + "_version")

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, path.Join(set, dir)); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
