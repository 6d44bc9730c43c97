package categorizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/abhaysalunke711/bank-statement-analyzer/internal/logging"
	"github.com/abhaysalunke711/bank-statement-analyzer/internal/models"
)

// GeminiClient implements the AIClient interface using the Google Gemini API.
type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
	logger logging.Logger
}

// NewGeminiClient creates a Gemini-backed AIClient with the given API key
// and model name.
func NewGeminiClient(ctx context.Context, apiKey, modelName string, logger logging.Logger) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key not set")
	}
	if logger == nil {
		logger = logging.GetLogger()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		model:  client.GenerativeModel(modelName),
		logger: logger,
	}, nil
}

// Categorize asks Gemini to assign the transaction to one of the configured
// category names.
func (c *GeminiClient) Categorize(ctx context.Context, tx models.Transaction, categories []string) (string, error) {
	prompt := fmt.Sprintf(`Categorize the following financial transaction:
Description: %s
Amount: %s
Date: %s

Please assign this transaction to exactly one of the following categories:
%s

Respond in this format:
Category: [Selected Category Name]`,
		tx.Description,
		tx.Amount.StringFixed(2),
		tx.Date,
		strings.Join(categories, ", "))

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from Gemini API")
	}

	responseText := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	category := extractCategoryFromResponse(responseText, categories)

	c.logger.WithFields(
		logging.Field{Key: logging.FieldCategory, Value: category},
	).Debug("Gemini categorized transaction")

	return category, nil
}

// Close releases the underlying API client.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// extractCategoryFromResponse parses the Gemini response for the category
// line, falling back to scanning for any known category name.
func extractCategoryFromResponse(response string, categories []string) string {
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "Category:") {
			return strings.TrimSpace(strings.TrimPrefix(line, "Category:"))
		}
	}

	lower := strings.ToLower(response)
	for _, name := range categories {
		if strings.Contains(lower, strings.ToLower(name)) {
			return name
		}
	}

	return ""
}
