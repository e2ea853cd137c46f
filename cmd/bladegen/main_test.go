package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandVerbs(t *testing.T) {
	verbs := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		verbs[c.Name()] = true
	}
	for _, name := range []string{"tables", "plan", "generate"} {
		assert.True(t, verbs[name], "missing %s command", name)
	}
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("driver"))
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("framework"))
	assert.NotNil(t, generateCmd.Flags().Lookup("dry-run"))
	assert.NotNil(t, generateCmd.Flags().Lookup("watch"))
}

func TestPlanCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"plan", "blog_posts"})
	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, out.String(), "CRUD Views:")
	assert.Contains(t, out.String(), "views/blog-posts/index.blade.php")
	assert.Contains(t, out.String(), "Layout Views:")
}

func TestPlanCommandRequiresTable(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"plan"})
	require.Error(t, rootCmd.Execute())
}
