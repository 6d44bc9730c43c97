package categorizer

import (
	"context"

	"github.com/abhaysalunke711/bank-statement-analyzer/internal/models"
)

// Strategy defines one method for categorizing transactions. Each strategy
// implements a specific matching tier (exact, fuzzy, regex, AI).
type Strategy interface {
	// Categorize attempts to categorize a transaction using this strategy.
	// Returns the category, a boolean indicating if categorization was
	// successful, and any error encountered during the process.
	//
	// Parameters:
	//   - ctx: Context for cancellation and request-scoped values
	//   - tx: Transaction to categorize
	//
	// Returns:
	//   - models.Category: The assigned category (only valid if found is true)
	//   - bool: Whether categorization was successful
	//   - error: Any error encountered during categorization
	Categorize(ctx context.Context, tx models.Transaction) (models.Category, bool, error)

	// Name returns the name of this strategy for logging and debugging purposes.
	Name() string
}
