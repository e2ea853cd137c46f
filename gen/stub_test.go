package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bladegen/bladegen/plan"
)

func TestNewStore(t *testing.T) {
	for _, f := range Frameworks {
		s, err := NewStore(f)
		require.NoError(t, err)
		assert.Equal(t, f, s.Framework())
	}

	_, err := NewStore("bulma")
	require.ErrorIs(t, err, ErrUnknownFramework)
}

func TestStoreCoversPlannedStubs(t *testing.T) {
	// Every stub the planner can reference must exist in every
	// built-in framework.
	flags := plan.Features{
		Search: true, Sorting: true, Filtering: true, BulkActions: true,
		Export: true, AJAX: true, Responsive: true, Auth: true,
	}
	entries := plan.Manifest("posts", plan.AllCategories, flags)
	for _, framework := range Frameworks {
		store, err := NewStore(framework)
		require.NoError(t, err)
		for _, e := range entries {
			content, err := store.Load(e.Stub)
			require.NoErrorf(t, err, "framework %s stub %s", framework, e.Stub)
			assert.NotEmpty(t, content)
		}
	}
}

func TestStoreLoadMissing(t *testing.T) {
	store, err := NewStore(FrameworkBootstrap)
	require.NoError(t, err)
	_, err = store.Load("crud/nonexistent.stub")
	require.ErrorIs(t, err, ErrStubNotFound)
}

func TestStoreCustomDirShadowsEmbedded(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "crud"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "crud", "index.stub"), []byte("custom {{ table }}"), 0o644))

	store, err := NewStore(FrameworkBootstrap)
	require.NoError(t, err)
	store.WithDir(dir)

	content, err := store.Load("crud/index.stub")
	require.NoError(t, err)
	assert.Equal(t, "custom {{ table }}", content)

	// Stubs absent from the custom dir fall back to the embedded set.
	content, err = store.Load("crud/show.stub")
	require.NoError(t, err)
	assert.Contains(t, content, "@extends")
}

func TestRender(t *testing.T) {
	out := Render("Hello {{ name }} and {{name}}!", map[string]string{"name": "world"})
	assert.Equal(t, "Hello world and world!", out)
}

func TestRenderLeavesBladeEchoesAlone(t *testing.T) {
	stub := `{{ $post->title }} / {{ route('posts.index') }} / {{ route }}`
	out := Render(stub, map[string]string{"route": "posts"})
	assert.Equal(t, `{{ $post->title }} / {{ route('posts.index') }} / posts`, out)
}

func TestRenderUnknownPlaceholderUntouched(t *testing.T) {
	out := Render("{{ mystery }}", map[string]string{"route": "posts"})
	assert.Equal(t, "{{ mystery }}", out)
}
