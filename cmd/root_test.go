package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandTree(t *testing.T) {
	for _, path := range [][]string{
		{"project", "list"},
		{"project", "create"},
		{"project", "rename"},
		{"project", "delete"},
		{"project", "use"},
		{"export"},
		{"import"},
		{"reset"},
	} {
		cmd, _, err := rootCmd.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}
}

func TestNeedsStore(t *testing.T) {
	assert.False(t, needsStore(rootCmd), "the board opens its own database")

	project, _, err := rootCmd.Find([]string{"project"})
	require.NoError(t, err)
	assert.False(t, needsStore(project), "group commands only print help")

	list, _, err := rootCmd.Find([]string{"project", "list"})
	require.NoError(t, err)
	assert.True(t, needsStore(list))

	export, _, err := rootCmd.Find([]string{"export"})
	require.NoError(t, err)
	assert.True(t, needsStore(export))
}
