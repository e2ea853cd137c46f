// Package schema defines the column and table model produced by schema
// inspection and consumed by the analyzers and the planner.
package schema

import (
	"strings"
)

// A Type represents the semantic database type of a column.
// Raw driver types are normalized into this closed set by ParseType.
type Type uint8

// List of semantic column types.
const (
	TypeInvalid Type = iota
	TypeString
	TypeText
	TypeLongText
	TypeInteger
	TypeBigInteger
	TypeSmallInteger
	TypeDecimal
	TypeFloat
	TypeDouble
	TypeBool
	TypeDate
	TypeDateTime
	TypeTimestamp
	TypeTime
	TypeJSON
	TypeEnum
	TypeUUID
	TypeBinary
	endTypes
)

var typeNames = [...]string{
	TypeInvalid:      "invalid",
	TypeString:       "string",
	TypeText:         "text",
	TypeLongText:     "longText",
	TypeInteger:      "integer",
	TypeBigInteger:   "bigInteger",
	TypeSmallInteger: "smallInteger",
	TypeDecimal:      "decimal",
	TypeFloat:        "float",
	TypeDouble:       "double",
	TypeBool:         "boolean",
	TypeDate:         "date",
	TypeDateTime:     "datetime",
	TypeTimestamp:    "timestamp",
	TypeTime:         "time",
	TypeJSON:         "json",
	TypeEnum:         "enum",
	TypeUUID:         "uuid",
	TypeBinary:       "binary",
}

// String returns the string representation of a type.
func (t Type) String() string {
	if t < endTypes {
		return typeNames[t]
	}
	return typeNames[TypeInvalid]
}

// Valid reports if the given type is a member of the recognized type set.
func (t Type) Valid() bool {
	return t > TypeInvalid && t < endTypes
}

// Numeric reports if the given type is a numeric type.
func (t Type) Numeric() bool {
	switch t {
	case TypeInteger, TypeBigInteger, TypeSmallInteger, TypeDecimal, TypeFloat, TypeDouble:
		return true
	}
	return false
}

// Integer reports if the given type is an integer type.
func (t Type) Integer() bool {
	switch t {
	case TypeInteger, TypeBigInteger, TypeSmallInteger:
		return true
	}
	return false
}

// Float reports if the given type is a fractional numeric type.
func (t Type) Float() bool {
	switch t {
	case TypeDecimal, TypeFloat, TypeDouble:
		return true
	}
	return false
}

// Temporal reports if the given type carries a date component.
func (t Type) Temporal() bool {
	switch t {
	case TypeDate, TypeDateTime, TypeTimestamp:
		return true
	}
	return false
}

// rawTypes maps lower-cased driver type names onto semantic types. Names
// not present here fall back to TypeString (permissive degradation).
var rawTypes = map[string]Type{
	"varchar":          TypeString,
	"char":             TypeString,
	"character":        TypeString,
	"string":           TypeString,
	"text":             TypeText,
	"tinytext":         TypeText,
	"mediumtext":       TypeText,
	"longtext":         TypeLongText,
	"clob":             TypeText,
	"int":              TypeInteger,
	"integer":          TypeInteger,
	"mediumint":        TypeInteger,
	"tinyint":          TypeSmallInteger,
	"smallint":         TypeSmallInteger,
	"smallinteger":     TypeSmallInteger,
	"bigint":           TypeBigInteger,
	"biginteger":       TypeBigInteger,
	"serial":           TypeInteger,
	"bigserial":        TypeBigInteger,
	"decimal":          TypeDecimal,
	"numeric":          TypeDecimal,
	"money":            TypeDecimal,
	"float":            TypeFloat,
	"real":             TypeFloat,
	"double":           TypeDouble,
	"double precision": TypeDouble,
	"bool":             TypeBool,
	"boolean":          TypeBool,
	"bit":              TypeBool,
	"date":             TypeDate,
	"datetime":         TypeDateTime,
	"timestamp":        TypeTimestamp,
	"timestamptz":      TypeTimestamp,
	"time":             TypeTime,
	"timetz":           TypeTime,
	"json":             TypeJSON,
	"jsonb":            TypeJSON,
	"enum":             TypeEnum,
	"set":              TypeEnum,
	"uuid":             TypeUUID,
	"uniqueidentifier": TypeUUID,
	"binary":           TypeBinary,
	"varbinary":        TypeBinary,
	"blob":             TypeBinary,
	"mediumblob":       TypeBinary,
	"longblob":         TypeBinary,
	"bytea":            TypeBinary,
}

// ParseType normalizes a raw driver type name into a semantic Type.
// Size and precision qualifiers are stripped ("varchar(255)" -> "varchar").
// MySQL reports booleans as "tinyint(1)"; that special case is kept here
// so the boolean branch of the classifiers fires for it. Unrecognized
// names degrade to TypeString rather than failing.
func ParseType(raw string) Type {
	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "" {
		return TypeString
	}
	if i := strings.IndexByte(name, '('); i > 0 {
		if name[:i] == "tinyint" && strings.HasPrefix(name[i:], "(1)") {
			return TypeBool
		}
		name = name[:i]
	}
	// "timestamp with time zone" and friends.
	for _, suffix := range []string{" with time zone", " without time zone", " unsigned", " signed", " zerofill"} {
		name = strings.TrimSuffix(name, suffix)
	}
	if t, ok := rawTypes[strings.TrimSpace(name)]; ok {
		return t
	}
	return TypeString
}

// A Column is the normalized schema metadata of a single table column.
// It is the unit of input for the analyzers.
type Column struct {
	// Name is the column identifier. Never empty for a valid column.
	Name string `msgpack:"name"`

	// Type is the semantic column type.
	Type Type `msgpack:"type"`

	// Nullable indicates if the column accepts NULL.
	Nullable bool `msgpack:"nullable"`

	// Default holds the column default literal, or nil if the column
	// has no default.
	Default *string `msgpack:"default"`

	// Comment holds the column comment when the source database
	// exposes one.
	Comment string `msgpack:"comment,omitempty"`

	// Extra holds driver-specific attributes such as "auto_increment".
	Extra string `msgpack:"extra,omitempty"`
}

// HasDefault reports if the column declares a default value.
func (c *Column) HasDefault() bool {
	return c.Default != nil
}

// Validate reports an error for malformed column metadata. A column with
// an empty name must be rejected before classification rather than
// silently producing a mislabeled field.
func (c *Column) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyColumnName
	}
	return nil
}

// A Table is an ordered set of columns for a named table.
type Table struct {
	Name    string   `msgpack:"name"`
	Columns []Column `msgpack:"columns"`
}

// Column returns the column with the given name, if it exists.
func (t *Table) Column(name string) (*Column, bool) {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return &t.Columns[i], true
		}
	}
	return nil, false
}

// Validate validates the table, including all of its columns.
func (t *Table) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return ErrEmptyTableName
	}
	for i := range t.Columns {
		if err := t.Columns[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}
