// Package store provides loading and saving of keyword table configuration.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/abhaysalunke711/bank-statement-analyzer/internal/fileutils"
	"github.com/abhaysalunke711/bank-statement-analyzer/internal/logging"
	"github.com/abhaysalunke711/bank-statement-analyzer/internal/models"
	"github.com/abhaysalunke711/bank-statement-analyzer/internal/parsererror"
)

// KeywordStore manages loading and saving of the keyword table used for
// categorization. A table is loaded once per batch and treated as immutable;
// replacing it wholesale between batches is the supported way to update
// keywords.
type KeywordStore struct {
	TableFile string
	logger    logging.Logger
}

// NewKeywordStore creates a store for the given keyword table file.
func NewKeywordStore(tableFile string, logger logging.Logger) *KeywordStore {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &KeywordStore{
		TableFile: tableFile,
		logger:    logger,
	}
}

// FindConfigFile looks for a configuration file in standard locations
func (s *KeywordStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "bank-statement-analyzer", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadTable loads and compiles the keyword table from YAML. A missing or
// unreadable file is a hard configuration error: the pipeline refuses to
// categorize without a table. Invalid regex patterns inside an otherwise
// valid table are skipped with a warning so the remaining patterns still
// apply.
func (s *KeywordStore) LoadTable() (*models.KeywordTable, error) {
	filename := s.TableFile
	if filename == "" {
		filename = "keywords.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		return nil, &parsererror.ConfigError{
			Source: filename,
			Reason: "keyword table file not found",
			Err:    err,
		}
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, &parsererror.ConfigError{
			Source: filePath,
			Reason: "could not read keyword table",
			Err:    err,
		}
	}

	return s.ParseTable(data, filePath)
}

// ParseTable unmarshals and compiles a keyword table from raw YAML bytes.
func (s *KeywordStore) ParseTable(data []byte, source string) (*models.KeywordTable, error) {
	var table models.KeywordTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, &parsererror.ConfigError{
			Source: source,
			Reason: "could not parse keyword table",
			Err:    err,
		}
	}

	for i := range table.Categories {
		rule := &table.Categories[i]
		rule.Compiled = compilePatterns(rule.Name, rule.Regex, s.logger)
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldCount, Value: len(table.Categories)},
		logging.Field{Key: "keywords", Value: table.KeywordCount()},
	).Debug("Loaded keyword table")

	return &table, nil
}

// compilePatterns compiles the regex tier for one category. Patterns are
// matched case-insensitively; invalid ones are logged and skipped.
func compilePatterns(category string, patterns []string, logger logging.Logger) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile("(?i)" + p)
		if err != nil {
			logger.WithError(err).WithFields(
				logging.Field{Key: logging.FieldCategory, Value: category},
				logging.Field{Key: logging.FieldPattern, Value: p},
			).Warn("Skipping invalid regex pattern")
			continue
		}
		compiled = append(compiled, re)
	}
	return compiled
}

// SaveTable writes the keyword table back to YAML.
func (s *KeywordStore) SaveTable(table *models.KeywordTable) error {
	filename := s.TableFile
	if filename == "" {
		filename = "keywords.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if !filepath.IsAbs(filename) {
			filePath = filepath.Join("config", filename)
		} else {
			filePath = filename
		}
	}

	data, err := yaml.Marshal(table)
	if err != nil {
		return fmt.Errorf("error marshaling keyword table: %w", err)
	}

	if err := fileutils.WriteFile(filePath, data, models.PermissionReportFile); err != nil {
		return fmt.Errorf("error writing keyword table: %w", err)
	}

	s.logger.WithField(logging.FieldCount, len(table.Categories)).Debug("Saved keyword table")
	return nil
}

// ExportTemplate writes a starter keyword table so new installs have a
// sensible category set to edit.
func (s *KeywordStore) ExportTemplate(outputPath string) error {
	table := DefaultTable()

	data, err := yaml.Marshal(table)
	if err != nil {
		return fmt.Errorf("error marshaling template: %w", err)
	}

	if err := fileutils.WriteFile(outputPath, data, models.PermissionReportFile); err != nil {
		return fmt.Errorf("error writing template: %w", err)
	}

	s.logger.WithField(logging.FieldSourceFile, outputPath).Info("Keyword template exported")
	return nil
}

// DefaultTable returns the built-in starter categories, with the regex tier
// already compiled.
func DefaultTable() *models.KeywordTable {
	table := &models.KeywordTable{
		Categories: []models.CategoryRule{
			{
				Name:  models.CategoryFoodDining,
				Exact: []string{"restaurant", "cafe", "pizza", "mcdonald", "starbucks", "subway"},
				Fuzzy: []string{"dining", "food", "lunch", "dinner"},
				Regex: []string{`.*restaurant.*`, `.*cafe.*`},
			},
			{
				Name:  models.CategoryTransportation,
				Exact: []string{"gas", "fuel", "uber", "lyft", "taxi", "parking"},
				Fuzzy: []string{"transport", "travel"},
				Regex: []string{`.*gas.*station.*`, `.*parking.*`},
			},
			{
				Name:  models.CategoryShopping,
				Exact: []string{"amazon", "walmart", "target", "costco", "mall"},
				Fuzzy: []string{"shopping", "store"},
				Regex: []string{`.*shop.*`, `.*store.*`},
			},
			{
				Name:  models.CategoryUtilities,
				Exact: []string{"electric", "water", "gas bill", "internet", "phone"},
				Fuzzy: []string{"utility", "bill"},
				Regex: []string{`.*electric.*company.*`, `.*water.*dept.*`},
			},
			{
				Name:  models.CategoryHealthcare,
				Exact: []string{"hospital", "pharmacy", "doctor", "medical"},
				Fuzzy: []string{"health", "medical"},
				Regex: []string{`.*medical.*`, `.*pharmacy.*`},
			},
		},
	}
	for i := range table.Categories {
		rule := &table.Categories[i]
		for _, p := range rule.Regex {
			rule.Compiled = append(rule.Compiled, regexp.MustCompile("(?i)"+p))
		}
	}
	return table
}
