package categorizer

import (
	"context"
	"strings"

	"github.com/xrash/smetrics"

	"github.com/abhaysalunke711/bank-statement-analyzer/internal/logging"
	"github.com/abhaysalunke711/bank-statement-analyzer/internal/models"
)

// DefaultFuzzyThreshold is the similarity score a fuzzy keyword must exceed
// to categorize a transaction.
const DefaultFuzzyThreshold = 0.8

// substringFloor is the minimum similarity credited to a fuzzy keyword that
// also occurs literally inside the description.
const substringFloor = 0.9

// FuzzyStrategy implements the second categorization tier: string similarity
// between each category's fuzzy keywords and the full description. The single
// best-scoring category across the whole table wins, provided its score
// strictly exceeds the threshold. Ties keep the earliest qualifying category
// in table order.
type FuzzyStrategy struct {
	table     *models.KeywordTable
	threshold float64
	logger    logging.Logger
}

// NewFuzzyStrategy creates a FuzzyStrategy with the given acceptance
// threshold; pass 0 to use DefaultFuzzyThreshold.
func NewFuzzyStrategy(table *models.KeywordTable, threshold float64, logger logging.Logger) *FuzzyStrategy {
	if threshold <= 0 {
		threshold = DefaultFuzzyThreshold
	}
	return &FuzzyStrategy{table: table, threshold: threshold, logger: logger}
}

// Name returns the name of this strategy for logging and debugging.
func (s *FuzzyStrategy) Name() string {
	return "Fuzzy"
}

// Categorize scores every fuzzy keyword against the description and accepts
// the best category when its score clears the threshold.
func (s *FuzzyStrategy) Categorize(_ context.Context, tx models.Transaction) (models.Category, bool, error) {
	description := strings.ToLower(strings.TrimSpace(tx.Description))
	if description == "" {
		return models.Category{}, false, nil
	}

	bestScore := 0.0
	bestCategory := ""

	for _, rule := range s.table.Categories {
		for _, keyword := range rule.Fuzzy {
			score := Similarity(strings.ToLower(keyword), description)
			if score > s.threshold && score > bestScore {
				bestScore = score
				bestCategory = rule.Name
			}
		}
	}

	if bestCategory == "" {
		return models.Category{}, false, nil
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldStrategy, Value: s.Name()},
		logging.Field{Key: logging.FieldCategory, Value: bestCategory},
		logging.Field{Key: "score", Value: bestScore},
	).Debug("Transaction categorized by fuzzy keyword")
	return models.Category{Name: bestCategory}, true, nil
}

// Similarity returns the similarity of a keyword to a description in [0,1].
// Jaro-Winkler handles near-miss spellings; a keyword appearing literally as
// a substring is floored at 0.9 so short keywords inside long descriptions
// still qualify.
func Similarity(keyword, description string) float64 {
	score := smetrics.JaroWinkler(keyword, description, 0.7, 4)
	if strings.Contains(description, keyword) && score < substringFloor {
		score = substringFloor
	}
	return score
}
