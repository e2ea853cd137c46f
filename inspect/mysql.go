package inspect

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/bladegen/bladegen/schema"
)

// MySQL inspects schemas through information_schema on a MySQL or
// MariaDB connection.
type MySQL struct {
	db *sql.DB
}

// NewMySQL returns a MySQL source over an open connection.
func NewMySQL(db *sql.DB) *MySQL {
	return &MySQL{db: db}
}

// Tables implements Source.
func (m *MySQL) Tables(ctx context.Context) ([]string, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = DATABASE() AND table_type = 'BASE TABLE'
		ORDER BY table_name`)
	if err != nil {
		return nil, fmt.Errorf("inspect: mysql tables: %w", err)
	}
	return scanTables(rows)
}

// Table implements Source.
func (m *MySQL) Table(ctx context.Context, name string) (*schema.Table, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT column_name, column_type, is_nullable, column_default, extra, column_comment
		FROM information_schema.columns
		WHERE table_schema = DATABASE() AND table_name = ?
		ORDER BY ordinal_position`, name)
	if err != nil {
		return nil, fmt.Errorf("inspect: mysql columns of %s: %w", name, err)
	}
	defer rows.Close()

	t := &schema.Table{Name: name}
	for rows.Next() {
		var (
			col               schema.Column
			rawType, nullable string
			defaultValue      sql.NullString
			extra, comment    sql.NullString
		)
		if err := rows.Scan(&col.Name, &rawType, &nullable, &defaultValue, &extra, &comment); err != nil {
			return nil, fmt.Errorf("inspect: mysql scan %s: %w", name, err)
		}
		col.Type = schema.ParseType(rawType)
		col.Nullable = strings.EqualFold(nullable, "YES")
		col.Extra = extra.String
		col.Comment = comment.String
		if defaultValue.Valid {
			v := defaultValue.String
			col.Default = &v
		}
		t.Columns = append(t.Columns, col)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(t.Columns) == 0 {
		if ok, err := m.exists(ctx, name); err != nil {
			return nil, err
		} else if !ok {
			return nil, fmt.Errorf("inspect: %w: %q", ErrTableNotFound, name)
		}
	}
	return t, nil
}

func (m *MySQL) exists(ctx context.Context, name string) (bool, error) {
	var n int
	err := m.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM information_schema.tables
		WHERE table_schema = DATABASE() AND table_name = ?`, name).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("inspect: mysql table check %s: %w", name, err)
	}
	return n > 0, nil
}
