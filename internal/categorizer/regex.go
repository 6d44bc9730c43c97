package categorizer

import (
	"context"
	"strings"

	"github.com/abhaysalunke711/bank-statement-analyzer/internal/logging"
	"github.com/abhaysalunke711/bank-statement-analyzer/internal/models"
)

// RegexStrategy implements the third categorization tier: matching the
// description against each category's compiled regex patterns. Patterns are
// compiled case-insensitively when the table is loaded; invalid patterns were
// already skipped there.
type RegexStrategy struct {
	table  *models.KeywordTable
	logger logging.Logger
}

// NewRegexStrategy creates a RegexStrategy over the given table snapshot.
func NewRegexStrategy(table *models.KeywordTable, logger logging.Logger) *RegexStrategy {
	return &RegexStrategy{table: table, logger: logger}
}

// Name returns the name of this strategy for logging and debugging.
func (s *RegexStrategy) Name() string {
	return "Regex"
}

// Categorize matches the description against each category's regex patterns.
func (s *RegexStrategy) Categorize(_ context.Context, tx models.Transaction) (models.Category, bool, error) {
	description := strings.ToLower(strings.TrimSpace(tx.Description))
	if description == "" {
		return models.Category{}, false, nil
	}

	for _, rule := range s.table.Categories {
		for _, re := range rule.Compiled {
			if re.MatchString(description) {
				s.logger.WithFields(
					logging.Field{Key: logging.FieldStrategy, Value: s.Name()},
					logging.Field{Key: logging.FieldPattern, Value: re.String()},
					logging.Field{Key: logging.FieldCategory, Value: rule.Name},
				).Debug("Transaction categorized by regex pattern")
				return models.Category{Name: rule.Name}, true, nil
			}
		}
	}

	return models.Category{}, false, nil
}
