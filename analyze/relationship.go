package analyze

import "strings"

// RelBelongsTo is the only relationship kind inferred from column
// naming conventions.
const RelBelongsTo = "belongsTo"

// A Relationship is a belongs-to association guessed from a
// foreign-key column name.
type Relationship struct {
	// Kind is always RelBelongsTo.
	Kind string

	// Name is the relation accessor name (the column name without
	// its "_id" suffix).
	Name string

	// ForeignKey is the originating column name.
	ForeignKey string

	// TableGuess is the pluralized guess of the related table name.
	TableGuess string

	// EntityGuess is the studly-cased singular guess of the related
	// entity name.
	EntityGuess string
}

// DetectRelationship infers a belongs-to relationship from a column
// name following the "<relation>_id" convention. It returns nil for
// names that do not match, including the bare primary key "id" and a
// literal "_id" with no remainder. Compound prefixes are kept intact:
// "parent_category_id" relates to "parent_categories".
func DetectRelationship(columnName string) *Relationship {
	if !strings.HasSuffix(columnName, "_id") {
		return nil
	}
	name := strings.TrimSuffix(columnName, "_id")
	if name == "" {
		return nil
	}
	return &Relationship{
		Kind:        RelBelongsTo,
		Name:        name,
		ForeignKey:  columnName,
		TableGuess:  Pluralize(name),
		EntityGuess: Pascal(Singularize(name)),
	}
}

// Relationships detects belongs-to relationships over an ordered
// column-name list, preserving input order.
func Relationships(columnNames []string) []Relationship {
	rels := make([]Relationship, 0, len(columnNames))
	for _, name := range columnNames {
		if r := DetectRelationship(name); r != nil {
			rels = append(rels, *r)
		}
	}
	return rels
}
