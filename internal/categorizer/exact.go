package categorizer

import (
	"context"
	"strings"

	"github.com/abhaysalunke711/bank-statement-analyzer/internal/logging"
	"github.com/abhaysalunke711/bank-statement-analyzer/internal/models"
)

// ExactStrategy implements the first categorization tier: case-insensitive
// substring containment of a category's exact keywords. The first category in
// table order with a hit wins.
type ExactStrategy struct {
	table  *models.KeywordTable
	logger logging.Logger
}

// NewExactStrategy creates an ExactStrategy over the given table snapshot.
func NewExactStrategy(table *models.KeywordTable, logger logging.Logger) *ExactStrategy {
	return &ExactStrategy{table: table, logger: logger}
}

// Name returns the name of this strategy for logging and debugging.
func (s *ExactStrategy) Name() string {
	return "Exact"
}

// Categorize matches the description against each category's exact keywords.
func (s *ExactStrategy) Categorize(_ context.Context, tx models.Transaction) (models.Category, bool, error) {
	description := strings.ToLower(strings.TrimSpace(tx.Description))
	if description == "" {
		return models.Category{}, false, nil
	}

	for _, rule := range s.table.Categories {
		for _, keyword := range rule.Exact {
			if strings.Contains(description, strings.ToLower(keyword)) {
				s.logger.WithFields(
					logging.Field{Key: logging.FieldStrategy, Value: s.Name()},
					logging.Field{Key: logging.FieldKeyword, Value: keyword},
					logging.Field{Key: logging.FieldCategory, Value: rule.Name},
				).Debug("Transaction categorized by exact keyword")
				return models.Category{Name: rule.Name}, true, nil
			}
		}
	}

	return models.Category{}, false, nil
}
