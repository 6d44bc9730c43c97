package categorizer

import (
	"context"
	"strings"

	"github.com/abhaysalunke711/bank-statement-analyzer/internal/logging"
	"github.com/abhaysalunke711/bank-statement-analyzer/internal/models"
)

// AIStrategy is the optional last tier in the chain. It consults an external
// AI service only when every keyword tier has missed, and only when enabled
// in configuration. Failures never propagate: an AI error just means "no
// match" so the transaction falls through to Uncategorized.
type AIStrategy struct {
	aiClient   AIClient
	categories []string
	logger     logging.Logger
}

// NewAIStrategy creates a new AIStrategy instance.
func NewAIStrategy(aiClient AIClient, table *models.KeywordTable, logger logging.Logger) *AIStrategy {
	names := make([]string, 0, len(table.Categories))
	for _, rule := range table.Categories {
		names = append(names, rule.Name)
	}
	return &AIStrategy{
		aiClient:   aiClient,
		categories: names,
		logger:     logger,
	}
}

// Name returns the name of this strategy for logging and debugging.
func (s *AIStrategy) Name() string {
	return "AI"
}

// Categorize attempts to categorize a transaction using the AI client.
func (s *AIStrategy) Categorize(ctx context.Context, tx models.Transaction) (models.Category, bool, error) {
	if s.aiClient == nil {
		return models.Category{}, false, nil
	}
	if strings.TrimSpace(tx.Description) == "" {
		return models.Category{}, false, nil
	}

	name, err := s.aiClient.Categorize(ctx, tx, s.categories)
	if err != nil {
		s.logger.WithError(err).WithField(logging.FieldStrategy, s.Name()).
			Warn("AI categorization failed")
		return models.Category{}, false, nil
	}

	if strings.TrimSpace(name) == "" || name == models.CategoryUncategorized {
		return models.Category{}, false, nil
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldStrategy, Value: s.Name()},
		logging.Field{Key: logging.FieldCategory, Value: name},
	).Debug("Transaction categorized by AI")
	return models.Category{Name: name}, true, nil
}
