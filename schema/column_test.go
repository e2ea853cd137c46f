package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseType(t *testing.T) {
	tests := []struct {
		raw      string
		expected Type
	}{
		{"varchar", TypeString},
		{"varchar(255)", TypeString},
		{"VARCHAR(100)", TypeString},
		{"text", TypeText},
		{"longtext", TypeLongText},
		{"int", TypeInteger},
		{"int(11)", TypeInteger},
		{"bigint", TypeBigInteger},
		{"bigint(20) unsigned", TypeBigInteger},
		{"smallint", TypeSmallInteger},
		{"tinyint(1)", TypeBool},
		{"tinyint(4)", TypeSmallInteger},
		{"decimal(10,2)", TypeDecimal},
		{"numeric", TypeDecimal},
		{"double precision", TypeDouble},
		{"float", TypeFloat},
		{"boolean", TypeBool},
		{"date", TypeDate},
		{"datetime", TypeDateTime},
		{"timestamp", TypeTimestamp},
		{"timestamp with time zone", TypeTimestamp},
		{"timestamptz", TypeTimestamp},
		{"time", TypeTime},
		{"json", TypeJSON},
		{"jsonb", TypeJSON},
		{"enum('a','b')", TypeEnum},
		{"uuid", TypeUUID},
		{"blob", TypeBinary},
		{"bytea", TypeBinary},
		// Unknown types degrade to string instead of failing.
		{"geometry", TypeString},
		{"cidr", TypeString},
		{"", TypeString},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseType(tt.raw))
		})
	}
}

func TestTypePredicates(t *testing.T) {
	assert.True(t, TypeInteger.Numeric())
	assert.True(t, TypeDecimal.Numeric())
	assert.False(t, TypeString.Numeric())

	assert.True(t, TypeBigInteger.Integer())
	assert.False(t, TypeFloat.Integer())

	assert.True(t, TypeDouble.Float())
	assert.False(t, TypeInteger.Float())

	assert.True(t, TypeTimestamp.Temporal())
	assert.False(t, TypeTime.Temporal())
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "bigInteger", TypeBigInteger.String())
	assert.Equal(t, "boolean", TypeBool.String())
	assert.Equal(t, "invalid", TypeInvalid.String())
	assert.Equal(t, "invalid", Type(200).String())
}

func TestColumnValidate(t *testing.T) {
	col := Column{Name: "title", Type: TypeString}
	require.NoError(t, col.Validate())

	col.Name = ""
	require.ErrorIs(t, col.Validate(), ErrEmptyColumnName)

	col.Name = "   "
	require.ErrorIs(t, col.Validate(), ErrEmptyColumnName)
}

func TestColumnHasDefault(t *testing.T) {
	col := Column{Name: "status"}
	assert.False(t, col.HasDefault())

	v := "active"
	col.Default = &v
	assert.True(t, col.HasDefault())
}

func TestTableValidate(t *testing.T) {
	tbl := Table{
		Name: "posts",
		Columns: []Column{
			{Name: "id", Type: TypeBigInteger},
			{Name: "title", Type: TypeString},
		},
	}
	require.NoError(t, tbl.Validate())

	tbl.Columns = append(tbl.Columns, Column{Name: ""})
	require.ErrorIs(t, tbl.Validate(), ErrEmptyColumnName)

	tbl = Table{Name: ""}
	require.ErrorIs(t, tbl.Validate(), ErrEmptyTableName)
}

func TestTableColumnLookup(t *testing.T) {
	tbl := Table{
		Name: "posts",
		Columns: []Column{
			{Name: "id", Type: TypeBigInteger},
			{Name: "title", Type: TypeString},
		},
	}
	col, ok := tbl.Column("title")
	require.True(t, ok)
	assert.Equal(t, TypeString, col.Type)

	_, ok = tbl.Column("missing")
	assert.False(t, ok)
}
