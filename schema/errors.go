package schema

import "errors"

// Sentinel errors for malformed schema metadata.
var (
	// ErrEmptyColumnName indicates a column descriptor with an empty name.
	ErrEmptyColumnName = errors.New("bladegen: column name cannot be empty")
	// ErrEmptyTableName indicates a table descriptor with an empty name.
	ErrEmptyTableName = errors.New("bladegen: table name cannot be empty")
)
