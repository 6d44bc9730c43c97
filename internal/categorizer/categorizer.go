// Package categorizer assigns categories to transactions using a chain of
// matching strategies. Tiers run cheapest first: exact substring match, then
// fuzzy similarity, then regular expressions, then (optionally) an AI
// service. The first tier that produces a match wins; ties inside a tier are
// broken by category order in the keyword table, so results are deterministic
// for a given table.
package categorizer

import (
	"context"

	"github.com/abhaysalunke711/bank-statement-analyzer/internal/logging"
	"github.com/abhaysalunke711/bank-statement-analyzer/internal/models"
	"github.com/abhaysalunke711/bank-statement-analyzer/internal/parsererror"
)

// Categorizer runs transactions through the strategy chain.
type Categorizer struct {
	table      *models.KeywordTable
	strategies []Strategy
	logger     logging.Logger
}

// NewCategorizer builds the strategy chain from a loaded keyword table.
// The AI client is optional; pass nil to run keyword tiers only.
func NewCategorizer(table *models.KeywordTable, fuzzyThreshold float64, aiClient AIClient, logger logging.Logger) (*Categorizer, error) {
	if table == nil {
		return nil, &parsererror.ConfigError{
			Source: "categorizer",
			Reason: "no keyword table loaded",
		}
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	if fuzzyThreshold <= 0 || fuzzyThreshold > 1 {
		fuzzyThreshold = DefaultFuzzyThreshold
	}

	strategies := []Strategy{
		NewExactStrategy(table, logger),
		NewFuzzyStrategy(table, fuzzyThreshold, logger),
		NewRegexStrategy(table, logger),
	}
	if aiClient != nil {
		strategies = append(strategies, NewAIStrategy(aiClient, table, logger))
	}

	return &Categorizer{
		table:      table,
		strategies: strategies,
		logger:     logger,
	}, nil
}

// Categorize assigns a category to a single transaction. A transaction that
// no tier matches gets the Uncategorized fallback; strategy errors are
// logged and the chain continues with the next tier.
func (c *Categorizer) Categorize(ctx context.Context, tx models.Transaction) models.Category {
	for _, strategy := range c.strategies {
		category, found, err := strategy.Categorize(ctx, tx)
		if err != nil {
			c.logger.WithError(err).WithField(logging.FieldStrategy, strategy.Name()).
				Warn("Categorization strategy failed, trying next")
			continue
		}
		if found {
			return category
		}
	}
	return models.Category{Name: models.CategoryUncategorized}
}

// CategorizeAll categorizes a batch of transactions in place and returns the
// number that matched a real category.
func (c *Categorizer) CategorizeAll(ctx context.Context, txs []models.Transaction) int {
	matched := 0
	for i := range txs {
		category := c.Categorize(ctx, txs[i])
		txs[i].Category = category.Name
		if category.Name != models.CategoryUncategorized {
			matched++
		}
	}
	c.logger.WithFields(
		logging.Field{Key: logging.FieldCount, Value: len(txs)},
		logging.Field{Key: "matched", Value: matched},
	).Debug("Batch categorization complete")
	return matched
}

// Table returns the keyword table backing this categorizer.
func (c *Categorizer) Table() *models.KeywordTable {
	return c.table
}
