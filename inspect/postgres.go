package inspect

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/bladegen/bladegen/schema"
)

// Postgres inspects schemas through information_schema on a PostgreSQL
// connection.
type Postgres struct {
	db *sql.DB
}

// NewPostgres returns a Postgres source over an open connection.
func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

// Tables implements Source.
func (p *Postgres) Tables(ctx context.Context) ([]string, error) {
	rows, err := p.db.QueryContext(ctx, `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = current_schema() AND table_type = 'BASE TABLE'
		ORDER BY table_name`)
	if err != nil {
		return nil, fmt.Errorf("inspect: postgres tables: %w", err)
	}
	return scanTables(rows)
}

// Table implements Source.
func (p *Postgres) Table(ctx context.Context, name string) (*schema.Table, error) {
	rows, err := p.db.QueryContext(ctx, `
		SELECT column_name, data_type, is_nullable, column_default
		FROM information_schema.columns
		WHERE table_schema = current_schema() AND table_name = $1
		ORDER BY ordinal_position`, name)
	if err != nil {
		return nil, fmt.Errorf("inspect: postgres columns of %s: %w", name, err)
	}
	defer rows.Close()

	t := &schema.Table{Name: name}
	for rows.Next() {
		var (
			col               schema.Column
			rawType, nullable string
			defaultValue      sql.NullString
		)
		if err := rows.Scan(&col.Name, &rawType, &nullable, &defaultValue); err != nil {
			return nil, fmt.Errorf("inspect: postgres scan %s: %w", name, err)
		}
		col.Type = schema.ParseType(rawType)
		col.Nullable = strings.EqualFold(nullable, "YES")
		if defaultValue.Valid {
			applyPostgresDefault(&col, defaultValue.String)
		}
		t.Columns = append(t.Columns, col)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(t.Columns) == 0 {
		return nil, fmt.Errorf("inspect: %w: %q", ErrTableNotFound, name)
	}
	return t, nil
}

// applyPostgresDefault normalizes a pg_catalog default expression.
// Sequence-backed defaults (serial columns) are reported as an
// auto_increment extra with no default, matching how MySQL reports
// them, so "required" classification behaves the same on both drivers.
func applyPostgresDefault(col *schema.Column, expr string) {
	if strings.HasPrefix(expr, "nextval(") {
		col.Extra = "auto_increment"
		return
	}
	// Strip the "::type" cast suffix and literal quoting:
	// 'active'::character varying -> active.
	if i := strings.Index(expr, "::"); i >= 0 {
		expr = expr[:i]
	}
	expr = strings.Trim(expr, "'")
	col.Default = &expr
}
