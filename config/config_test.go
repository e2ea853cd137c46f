package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bladegen/bladegen/gen"
	"github.com/bladegen/bladegen/plan"
)

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, "mysql", c.Driver)
	assert.Equal(t, gen.FrameworkBootstrap, c.Framework)
	assert.Equal(t, 15, c.PerPage)
	require.NoError(t, c.Validate())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bladegen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
driver: postgres
dsn: postgres://localhost/app
framework: tailwind
output: resources/views
categories: [crud, tables]
features: [search, sorting]
per_page: 25
`), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "postgres", c.Driver)
	assert.Equal(t, "tailwind", c.Framework)
	assert.Equal(t, []string{"crud", "tables"}, c.Categories)
	assert.Equal(t, 25, c.PerPage)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadInvalidFramework(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bladegen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("framework: bulma\n"), 0o644))
	_, err := Load(path)
	require.ErrorIs(t, err, gen.ErrUnknownFramework)
}

func TestLoadInvalidCategory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bladegen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("categories: [bogus]\n"), 0o644))
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_DSN", "file:app.db")
	t.Setenv("BLADEGEN_FRAMEWORK", "tailwind")

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "sqlite", c.Driver)
	assert.Equal(t, "file:app.db", c.DSN)
	assert.Equal(t, "tailwind", c.Framework)
}

func TestLoadOptionsWin(t *testing.T) {
	t.Setenv("BLADEGEN_FRAMEWORK", "tailwind")
	c, err := Load("", WithFramework(gen.FrameworkBootstrap), WithDatabase("postgres", "dsn"))
	require.NoError(t, err)
	assert.Equal(t, gen.FrameworkBootstrap, c.Framework)
	assert.Equal(t, "postgres", c.Driver)
}

func TestLoadEnvFileMissingIsFine(t *testing.T) {
	require.NoError(t, LoadEnvFile(filepath.Join(t.TempDir(), ".env")))
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DB_DRIVER=postgres\n"), 0o644))
	t.Setenv("DB_DRIVER", "")
	os.Unsetenv("DB_DRIVER")
	require.NoError(t, LoadEnvFile(path))
	assert.Equal(t, "postgres", os.Getenv("DB_DRIVER"))
}

func TestPlanFeatures(t *testing.T) {
	c := Default()
	c.Features = []string{"search", "ajax"}
	c.PerPage = 30
	c.ComponentNamespace = "ui"

	f, err := c.PlanFeatures()
	require.NoError(t, err)
	assert.True(t, f.Search)
	assert.True(t, f.AJAX)
	assert.True(t, f.Responsive, "defaults stay enabled")
	assert.Equal(t, 30, f.PerPage)
	assert.Equal(t, "ui", f.ComponentNamespace)

	c.Features = []string{"bogus"}
	_, err = c.PlanFeatures()
	require.Error(t, err)
}

func TestPlanCategories(t *testing.T) {
	c := Default()
	cats, err := c.PlanCategories()
	require.NoError(t, err)
	assert.Equal(t, plan.AllCategories, cats)

	c.Categories = []string{"crud", "forms"}
	cats, err = c.PlanCategories()
	require.NoError(t, err)
	assert.Equal(t, []plan.Category{plan.CategoryCRUD, plan.CategoryForms}, cats)
}
