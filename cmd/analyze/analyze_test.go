package analyze

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhaysalunke711/bank-statement-analyzer/cmd/root"
	"github.com/abhaysalunke711/bank-statement-analyzer/internal/config"
	"github.com/abhaysalunke711/bank-statement-analyzer/internal/logging"
	"github.com/abhaysalunke711/bank-statement-analyzer/internal/report"
)

func writeStatement(t *testing.T, dir, name, text string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(text), 0600))
	return path
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Extract.FallbackYear = 2024
	cfg.Extract.AmountPolicy = "last"
	cfg.Categorize.FuzzyThreshold = 0.8
	cfg.Pipeline.Workers = 2
	cfg.CSV.Delimiter = ","
	return cfg
}

func TestAnalyzeCommand(t *testing.T) {
	dir := t.TempDir()
	statement := writeStatement(t, dir, "january.txt",
		"01/15/2024 STARBUCKS STORE #1234 SEATTLE WA -$5.75\n"+
			"01/16/2024 UBER TRIP 8812 -14.20\n")
	keywords := writeStatement(t, dir, "keywords.yaml", `
categories:
  - name: "Food & Dining"
    exact: ["starbucks"]
  - name: "Transportation"
    exact: ["uber"]
`)
	output := filepath.Join(dir, "out.csv")

	origConfig, origKeywords, origOutput := root.AppConfig, root.KeywordsFile, root.Output
	defer func() {
		root.AppConfig, root.KeywordsFile, root.Output = origConfig, origKeywords, origOutput
	}()
	root.AppConfig = testConfig()
	root.KeywordsFile = keywords
	root.Output = output

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	cmd.SetOut(&buf)

	require.NoError(t, analyzeFunc(cmd, []string{statement}))

	// The CSV landed where --output pointed.
	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "STARBUCKS STORE #1234")
	assert.Contains(t, string(data), "Food & Dining")
	assert.Contains(t, string(data), "Transportation")
	assert.Contains(t, string(data), "january.txt")

	// The monthly summary printed as JSON.
	var rows []report.MonthSummary
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "2024-01", rows[0].Month)
	assert.Equal(t, 2, rows[0].ExpenseCount)
}

func TestReadDocumentsExpandsDirectories(t *testing.T) {
	dir := t.TempDir()
	writeStatement(t, dir, "feb.txt", "02/01/2024 RENT -1200.00\n")
	writeStatement(t, dir, "jan.txt", "01/01/2024 RENT -1200.00\n")
	writeStatement(t, dir, "notes.md", "not a statement")
	extra := writeStatement(t, dir, "extra.log", "03/01/2024 RENT -1200.00\n")

	docs, err := readDocuments([]string{dir, extra}, logging.NewMockLogger())
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, "extra.log", docs[2].Name)
	assert.Equal(t, []string{"feb.txt", "jan.txt"}, []string{docs[0].Name, docs[1].Name})
}

func TestAnalyzeCommandMissingFile(t *testing.T) {
	origConfig, origKeywords := root.AppConfig, root.KeywordsFile
	defer func() { root.AppConfig, root.KeywordsFile = origConfig, origKeywords }()
	root.AppConfig = testConfig()
	root.KeywordsFile = writeStatement(t, t.TempDir(), "keywords.yaml", `
categories:
  - name: "Coffee"
    exact: ["starbucks"]
`)

	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())

	err := analyzeFunc(cmd, []string{"/nonexistent/statement.txt"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading statement file")
}

func TestCommandMetadata(t *testing.T) {
	assert.Equal(t, "analyze [files...]", Cmd.Use)
	assert.NotNil(t, Cmd.RunE)
	assert.NotNil(t, Cmd.Flags().Lookup("summary"))
}
