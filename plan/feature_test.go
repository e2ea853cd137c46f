package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeatureByName(t *testing.T) {
	f, err := FeatureByName("search")
	require.NoError(t, err)
	assert.Equal(t, FeatureSearch.Name, f.Name)

	_, err = FeatureByName("nope")
	require.Error(t, err)
}

func TestDefaults(t *testing.T) {
	f := Defaults()
	assert.True(t, f.Responsive)
	assert.False(t, f.Search)
	assert.False(t, f.AJAX)
	assert.Equal(t, 15, f.PerPage)
}

func TestEnable(t *testing.T) {
	var f Features
	require.NoError(t, f.Enable("search", "sorting", "bulk-actions"))
	assert.True(t, f.Search)
	assert.True(t, f.Sorting)
	assert.True(t, f.BulkActions)
	assert.False(t, f.Export)

	require.Error(t, f.Enable("searching"))
}

func TestNamespaceDefault(t *testing.T) {
	assert.Equal(t, "components", Features{}.namespace())
	assert.Equal(t, "ui", Features{ComponentNamespace: "ui"}.namespace())
}
