package categorize

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhaysalunke711/bank-statement-analyzer/cmd/root"
	"github.com/abhaysalunke711/bank-statement-analyzer/internal/config"
	"github.com/abhaysalunke711/bank-statement-analyzer/internal/logging"
)

func TestCategorizeCommandMetadata(t *testing.T) {
	assert.Equal(t, "categorize", Cmd.Use)
	assert.Contains(t, Cmd.Short, "Categorize")
	assert.NotNil(t, Cmd.RunE)
}

func TestCategorizeCommandFlags(t *testing.T) {
	descFlag := Cmd.Flags().Lookup("description")
	require.NotNil(t, descFlag)
	assert.Equal(t, "d", descFlag.Shorthand)

	amountFlag := Cmd.Flags().Lookup("amount")
	require.NotNil(t, amountFlag)
	assert.Equal(t, "a", amountFlag.Shorthand)
	assert.Equal(t, "", amountFlag.DefValue)
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Categorize.FuzzyThreshold = 0.8
	return cfg
}

func writeKeywords(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "keywords.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
categories:
  - name: "Food & Dining"
    exact: ["starbucks"]
`), 0600))
	return path
}

func TestCategorizeCommandRun(t *testing.T) {
	mock := logging.NewMockLogger()
	origLog, origConfig, origKeywords := root.Log, root.AppConfig, root.KeywordsFile
	origDesc, origAmount := description, amount
	defer func() {
		root.Log, root.AppConfig, root.KeywordsFile = origLog, origConfig, origKeywords
		description, amount = origDesc, origAmount
	}()
	root.Log = mock
	root.AppConfig = testConfig()
	root.KeywordsFile = writeKeywords(t)
	description = "STARBUCKS STORE #1234"
	amount = "-5.75"

	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())

	require.NoError(t, categorizeFunc(cmd, nil))
	assert.True(t, mock.HasMessage("Categorization result"))
}

func TestCategorizeCommandRunBadAmount(t *testing.T) {
	mock := logging.NewMockLogger()
	origLog, origConfig, origKeywords := root.Log, root.AppConfig, root.KeywordsFile
	origDesc, origAmount := description, amount
	defer func() {
		root.Log, root.AppConfig, root.KeywordsFile = origLog, origConfig, origKeywords
		description, amount = origDesc, origAmount
	}()
	root.Log = mock
	root.AppConfig = testConfig()
	root.KeywordsFile = writeKeywords(t)
	description = "UNKNOWN MERCHANT"
	amount = "not-a-number"

	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())

	require.NoError(t, categorizeFunc(cmd, nil))
	assert.True(t, mock.HasMessage("Could not parse amount, classifying on description only"))
}
