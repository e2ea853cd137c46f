package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectRelationship(t *testing.T) {
	r := DetectRelationship("category_id")
	require.NotNil(t, r)
	assert.Equal(t, RelBelongsTo, r.Kind)
	assert.Equal(t, "category", r.Name)
	assert.Equal(t, "category_id", r.ForeignKey)
	assert.Equal(t, "categories", r.TableGuess)
	assert.Equal(t, "Category", r.EntityGuess)
}

func TestDetectRelationshipCompoundPrefix(t *testing.T) {
	r := DetectRelationship("parent_category_id")
	require.NotNil(t, r)
	assert.Equal(t, "parent_category", r.Name)
	assert.Equal(t, "parent_categories", r.TableGuess)
	assert.Equal(t, "ParentCategory", r.EntityGuess)
}

func TestDetectRelationshipNoMatch(t *testing.T) {
	assert.Nil(t, DetectRelationship("name"))
	assert.Nil(t, DetectRelationship("id"))
	assert.Nil(t, DetectRelationship("_id"))
	assert.Nil(t, DetectRelationship("identity"))
	assert.Nil(t, DetectRelationship(""))
}

func TestDetectRelationshipIrregularPlural(t *testing.T) {
	r := DetectRelationship("person_id")
	require.NotNil(t, r)
	assert.Equal(t, "people", r.TableGuess)
	assert.Equal(t, "Person", r.EntityGuess)
}

func TestRelationships(t *testing.T) {
	rels := Relationships([]string{"id", "title", "user_id", "parent_category_id", "status"})
	require.Len(t, rels, 2)
	assert.Equal(t, "user_id", rels[0].ForeignKey)
	assert.Equal(t, "users", rels[0].TableGuess)
	assert.Equal(t, "parent_category_id", rels[1].ForeignKey)

	assert.Empty(t, Relationships(nil))
}
