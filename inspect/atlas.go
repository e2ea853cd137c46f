package inspect

import (
	"context"
	"fmt"
	"sort"
	"strings"

	atlasschema "ariga.io/atlas/sql/schema"
	"ariga.io/atlas/sql/sqlclient"

	"github.com/bladegen/bladegen/schema"
)

// Atlas inspects schemas through an Atlas sqlclient, selected by a
// database URL ("mysql://...", "postgres://...", "sqlite://..."). It
// covers every dialect Atlas supports without a dedicated source here.
type Atlas struct {
	client *sqlclient.Client
}

// OpenAtlas connects to the database behind url and returns an
// Atlas-backed source. Callers own the returned source and must Close it.
func OpenAtlas(ctx context.Context, url string) (*Atlas, error) {
	client, err := sqlclient.Open(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("inspect: atlas open: %w", err)
	}
	return &Atlas{client: client}, nil
}

// Close releases the underlying connection.
func (a *Atlas) Close() error {
	return a.client.Close()
}

// Tables implements Source.
func (a *Atlas) Tables(ctx context.Context) ([]string, error) {
	s, err := a.client.InspectSchema(ctx, "", nil)
	if err != nil {
		return nil, fmt.Errorf("inspect: atlas schema: %w", err)
	}
	names := make([]string, 0, len(s.Tables))
	for _, t := range s.Tables {
		names = append(names, t.Name)
	}
	sort.Strings(names)
	return names, nil
}

// Table implements Source.
func (a *Atlas) Table(ctx context.Context, name string) (*schema.Table, error) {
	s, err := a.client.InspectSchema(ctx, "", &atlasschema.InspectOptions{Tables: []string{name}})
	if err != nil {
		return nil, fmt.Errorf("inspect: atlas schema: %w", err)
	}
	t, ok := s.Table(name)
	if !ok {
		return nil, fmt.Errorf("inspect: %w: %q", ErrTableNotFound, name)
	}
	out := &schema.Table{Name: name, Columns: make([]schema.Column, 0, len(t.Columns))}
	for _, c := range t.Columns {
		out.Columns = append(out.Columns, convertAtlasColumn(c))
	}
	return out, nil
}

func convertAtlasColumn(c *atlasschema.Column) schema.Column {
	col := schema.Column{
		Name:     c.Name,
		Type:     convertAtlasType(c.Type.Type, c.Type.Raw),
		Nullable: c.Type.Null,
	}
	switch d := c.Default.(type) {
	case *atlasschema.Literal:
		v := strings.Trim(d.V, `'"`)
		col.Default = &v
	case *atlasschema.RawExpr:
		v := d.X
		col.Default = &v
	}
	for _, attr := range c.Attrs {
		if cm, ok := attr.(*atlasschema.Comment); ok {
			col.Comment = cm.Text
		}
	}
	return col
}

func convertAtlasType(t atlasschema.Type, raw string) schema.Type {
	switch t := t.(type) {
	case *atlasschema.BoolType:
		return schema.TypeBool
	case *atlasschema.IntegerType:
		switch {
		case strings.Contains(t.T, "big"):
			return schema.TypeBigInteger
		case strings.Contains(t.T, "small"), strings.Contains(t.T, "tiny"):
			return schema.TypeSmallInteger
		default:
			return schema.TypeInteger
		}
	case *atlasschema.DecimalType:
		return schema.TypeDecimal
	case *atlasschema.FloatType:
		if strings.Contains(t.T, "double") {
			return schema.TypeDouble
		}
		return schema.TypeFloat
	case *atlasschema.StringType:
		return schema.ParseType(t.T)
	case *atlasschema.EnumType:
		return schema.TypeEnum
	case *atlasschema.BinaryType:
		return schema.TypeBinary
	case *atlasschema.JSONType:
		return schema.TypeJSON
	case *atlasschema.UUIDType:
		return schema.TypeUUID
	case *atlasschema.TimeType:
		return schema.ParseType(t.T)
	default:
		return schema.ParseType(raw)
	}
}
