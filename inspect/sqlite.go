package inspect

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/bladegen/bladegen/schema"
)

// SQLite inspects schemas through PRAGMA table_info on a SQLite
// connection (modernc.org/sqlite).
type SQLite struct {
	db *sql.DB
}

// NewSQLite returns a SQLite source over an open connection.
func NewSQLite(db *sql.DB) *SQLite {
	return &SQLite{db: db}
}

// Tables implements Source.
func (s *SQLite) Tables(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
		ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("inspect: sqlite tables: %w", err)
	}
	return scanTables(rows)
}

// Table implements Source.
func (s *SQLite) Table(ctx context.Context, name string) (*schema.Table, error) {
	// PRAGMA does not support bind parameters; quote the identifier.
	quoted := strings.ReplaceAll(name, `"`, `""`)
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`PRAGMA table_info("%s")`, quoted))
	if err != nil {
		return nil, fmt.Errorf("inspect: sqlite columns of %s: %w", name, err)
	}
	defer rows.Close()

	t := &schema.Table{Name: name}
	for rows.Next() {
		var (
			cid, notNull, pk int
			col              schema.Column
			rawType          string
			defaultValue     sql.NullString
		)
		if err := rows.Scan(&cid, &col.Name, &rawType, &notNull, &defaultValue, &pk); err != nil {
			return nil, fmt.Errorf("inspect: sqlite scan %s: %w", name, err)
		}
		col.Type = schema.ParseType(rawType)
		col.Nullable = notNull == 0
		if defaultValue.Valid {
			v := strings.Trim(defaultValue.String, "'")
			col.Default = &v
		}
		t.Columns = append(t.Columns, col)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	// PRAGMA table_info returns no rows for unknown tables.
	if len(t.Columns) == 0 {
		return nil, fmt.Errorf("inspect: %w: %q", ErrTableNotFound, name)
	}
	return t, nil
}
