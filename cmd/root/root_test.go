package root_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhaysalunke711/bank-statement-analyzer/cmd/root"
	"github.com/abhaysalunke711/bank-statement-analyzer/internal/logging"
)

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "bank-statement-analyzer", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "bank statement")
	assert.Contains(t, root.Cmd.Long, "keyword table")
	assert.NotNil(t, root.Cmd.Run)
	assert.NotNil(t, root.Cmd.PersistentPreRun)
}

func TestRootCommand_Flags(t *testing.T) {
	// Init may already have run from another test; tolerate both states.
	if root.Cmd.PersistentFlags().Lookup("output") == nil {
		root.Init()
	}

	outputFlag := root.Cmd.PersistentFlags().Lookup("output")
	require.NotNil(t, outputFlag)
	assert.Equal(t, "o", outputFlag.Shorthand)

	keywordsFlag := root.Cmd.PersistentFlags().Lookup("keywords")
	require.NotNil(t, keywordsFlag)
	assert.Equal(t, "k", keywordsFlag.Shorthand)
}

func TestLoadKeywordTable_ExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keywords.yaml")
	content := `
categories:
  - name: "Coffee"
    exact: ["starbucks"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	original := root.KeywordsFile
	defer func() { root.KeywordsFile = original }()
	root.KeywordsFile = path

	table, err := root.LoadKeywordTable(logging.NewMockLogger())
	require.NoError(t, err)
	require.Len(t, table.Categories, 1)
	assert.Equal(t, "Coffee", table.Categories[0].Name)
}

func TestLoadKeywordTable_ExplicitFileMissingIsError(t *testing.T) {
	original := root.KeywordsFile
	defer func() { root.KeywordsFile = original }()
	root.KeywordsFile = filepath.Join(t.TempDir(), "missing.yaml")

	_, err := root.LoadKeywordTable(logging.NewMockLogger())
	assert.Error(t, err)
}

func TestLoadKeywordTable_FallsBackToDefaults(t *testing.T) {
	// Run from an empty directory so no keywords.yaml is discoverable.
	originalDir, err := os.Getwd()
	require.NoError(t, err)
	defer func() { require.NoError(t, os.Chdir(originalDir)) }()
	require.NoError(t, os.Chdir(t.TempDir()))

	original := root.KeywordsFile
	defer func() { root.KeywordsFile = original }()
	root.KeywordsFile = ""

	logger := logging.NewMockLogger()
	table, err := root.LoadKeywordTable(logger)
	require.NoError(t, err)
	assert.Len(t, table.Categories, 5)
	assert.True(t, logger.HasMessage("No keyword table found, using built-in defaults"))

	// The starter template was exported for the next run.
	_, err = os.Stat(filepath.Join("config", "keywords.yaml"))
	assert.NoError(t, err)
}
