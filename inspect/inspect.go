// Package inspect reads live database schemas and normalizes them into
// the column model consumed by the analyzers. It supports MySQL,
// Postgres and SQLite through their native information schemas, plus a
// URL-driven backend built on Atlas.
package inspect

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bladegen/bladegen/schema"
)

// Sentinel errors returned by schema sources.
var (
	// ErrTableNotFound indicates the requested table does not exist
	// in the inspected schema.
	ErrTableNotFound = errors.New("bladegen: table not found")
	// ErrUnknownDriver indicates an unsupported driver name.
	ErrUnknownDriver = errors.New("bladegen: unknown driver")
)

// A Source supplies schema snapshots for a database.
type Source interface {
	// Tables lists the base table names of the inspected schema,
	// sorted by name.
	Tables(ctx context.Context) ([]string, error)

	// Table returns the ordered column snapshot of one table.
	// It returns ErrTableNotFound if the table does not exist.
	Table(ctx context.Context, name string) (*schema.Table, error)
}

// Open connects to a database and returns a schema source for it.
// Supported drivers: "mysql", "postgres", "sqlite".
func Open(driver, dsn string) (Source, *sql.DB, error) {
	switch driver {
	case "mysql", "postgres", "sqlite", "sqlite3":
	default:
		return nil, nil, fmt.Errorf("inspect: %w: %q", ErrUnknownDriver, driver)
	}
	db, err := sql.Open(driverName(driver), dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("inspect: open %s: %w", driver, err)
	}
	switch driver {
	case "mysql":
		return NewMySQL(db), db, nil
	case "postgres":
		return NewPostgres(db), db, nil
	default:
		return NewSQLite(db), db, nil
	}
}

// driverName maps a user-facing driver token to the database/sql
// registration name. modernc.org/sqlite registers as "sqlite".
func driverName(driver string) string {
	if driver == "sqlite3" {
		return "sqlite"
	}
	return driver
}

// scanTables drains a single-column rows result into a string slice.
func scanTables(rows *sql.Rows) ([]string, error) {
	defer rows.Close()
	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
