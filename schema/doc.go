// Package schema holds the database-agnostic table model shared by the
// inspectors and the generator: a [Table] is a named, ordered list of
// [Column] values, and [ParseType] folds the raw column types reported
// by MySQL, Postgres and SQLite into one [Type] enum.
//
// Columns carry only what view generation needs: name, folded type,
// nullability, default, comment and extra flags. Indexes, foreign key
// constraints and storage attributes are intentionally not modeled.
package schema
