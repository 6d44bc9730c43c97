package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhaysalunke711/bank-statement-analyzer/internal/logging"
	"github.com/abhaysalunke711/bank-statement-analyzer/internal/models"
	"github.com/abhaysalunke711/bank-statement-analyzer/internal/parsererror"
)

const sampleYAML = `
categories:
  - name: "Food & Dining"
    exact: ["starbucks", "mcdonalds"]
    fuzzy: ["restaurant"]
    regex: ["grubhub|doordash"]
  - name: "Transportation"
    exact: ["uber"]
    regex: ["parking\\s+garage"]
`

func TestParseTable(t *testing.T) {
	s := NewKeywordStore("", logging.NewMockLogger())

	table, err := s.ParseTable([]byte(sampleYAML), "test")
	require.NoError(t, err)

	require.Len(t, table.Categories, 2)
	assert.Equal(t, "Food & Dining", table.Categories[0].Name)
	assert.Equal(t, []string{"starbucks", "mcdonalds"}, table.Categories[0].Exact)
	require.Len(t, table.Categories[0].Compiled, 1)
	assert.True(t, table.Categories[0].Compiled[0].MatchString("DOORDASH ORDER"))
	assert.Equal(t, 6, table.KeywordCount())
}

func TestParseTableInvalidYAML(t *testing.T) {
	s := NewKeywordStore("", logging.NewMockLogger())

	_, err := s.ParseTable([]byte("categories: [unclosed"), "bad.yaml")
	require.Error(t, err)

	var cfgErr *parsererror.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "bad.yaml", cfgErr.Source)
}

func TestParseTableSkipsInvalidRegex(t *testing.T) {
	logger := logging.NewMockLogger()
	s := NewKeywordStore("", logger)

	yaml := `
categories:
  - name: "Test"
    regex: ["valid.*", "[unclosed"]
`
	table, err := s.ParseTable([]byte(yaml), "test")
	require.NoError(t, err)

	require.Len(t, table.Categories[0].Compiled, 1)
	assert.True(t, logger.HasMessage("Skipping invalid regex pattern"))
}

func TestLoadTableMissingFile(t *testing.T) {
	s := NewKeywordStore(filepath.Join(t.TempDir(), "nope.yaml"), logging.NewMockLogger())

	_, err := s.LoadTable()
	require.Error(t, err)

	var cfgErr *parsererror.ConfigError
	assert.True(t, errors.As(err, &cfgErr))
}

func TestLoadTableRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keywords.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0600))

	s := NewKeywordStore(path, logging.NewMockLogger())

	table, err := s.LoadTable()
	require.NoError(t, err)
	assert.Len(t, table.Categories, 2)
}

func TestSaveTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keywords.yaml")
	s := NewKeywordStore(path, logging.NewMockLogger())

	table := &models.KeywordTable{
		Categories: []models.CategoryRule{
			{Name: "Coffee", Exact: []string{"starbucks"}},
		},
	}
	require.NoError(t, s.SaveTable(table))

	loaded, err := s.LoadTable()
	require.NoError(t, err)
	require.Len(t, loaded.Categories, 1)
	assert.Equal(t, "Coffee", loaded.Categories[0].Name)
}

func TestExportTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "keywords.yaml")
	s := NewKeywordStore("", logging.NewMockLogger())

	require.NoError(t, s.ExportTemplate(path))

	loaded, err := NewKeywordStore(path, logging.NewMockLogger()).LoadTable()
	require.NoError(t, err)
	assert.Len(t, loaded.Categories, 5)
	assert.Equal(t, models.CategoryFoodDining, loaded.Categories[0].Name)
}

func TestDefaultTableCompiled(t *testing.T) {
	table := DefaultTable()

	require.Len(t, table.Categories, 5)
	for _, rule := range table.Categories {
		assert.Len(t, rule.Compiled, len(rule.Regex), rule.Name)
	}
	assert.True(t, table.Categories[0].Compiled[0].MatchString("LOCAL RESTAURANT GROUP"))
}
