package categorizer

import (
	"context"

	"github.com/abhaysalunke711/bank-statement-analyzer/internal/models"
)

// AIClient defines the interface for AI-backed categorization services.
// It exists so the AI tier can be mocked in tests and disabled entirely
// without touching the strategy chain.
type AIClient interface {
	// Categorize asks the AI service for a category name given the
	// transaction and the allowed category names.
	Categorize(ctx context.Context, tx models.Transaction, categories []string) (string, error)

	// Close releases any underlying connections.
	Close() error
}
