// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// Dialect captures the SQL differences between the supported drivers.
type Dialect struct {
	// Driver is the database/sql driver name.
	Driver string

	placeholder sq.PlaceholderFormat

	// containsFunc is a function f(haystack, needle) returning the 1-based
	// position of needle, or 0. Both strpos and instr are case-sensitive.
	containsFunc string
}

var (
	// PostgresDialect targets the pgx driver.
	PostgresDialect = Dialect{Driver: "pgx", placeholder: sq.Dollar, containsFunc: "strpos"}

	// SQLiteDialect targets the go-sqlite3 driver.
	SQLiteDialect = Dialect{Driver: "sqlite3", placeholder: sq.Question, containsFunc: "instr"}
)

// DialectFor returns the dialect of a database/sql driver name.
func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case PostgresDialect.Driver:
		return PostgresDialect, nil
	case SQLiteDialect.Driver:
		return SQLiteDialect, nil
	default:
		return Dialect{}, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
}

func (d Dialect) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(d.placeholder)
}

// contains renders a case-sensitive substring predicate on column.
func (d Dialect) contains(column, substr string) sq.Sqlizer {
	return sq.Expr(fmt.Sprintf("%s(%s, ?) > 0", d.containsFunc, column), substr)
}
