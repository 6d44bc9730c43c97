// Package categorize implements one-shot categorization of a single
// transaction description from the command line.
package categorize

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/abhaysalunke711/bank-statement-analyzer/cmd/root"
	"github.com/abhaysalunke711/bank-statement-analyzer/internal/categorizer"
	"github.com/abhaysalunke711/bank-statement-analyzer/internal/classifier"
	"github.com/abhaysalunke711/bank-statement-analyzer/internal/logging"
	"github.com/abhaysalunke711/bank-statement-analyzer/internal/models"
)

var (
	description string
	amount      string
)

// Cmd represents the categorize command
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Categorize a single transaction description",
	Long: `Categorize a single transaction description against the keyword table
and classify it as income or expense. Useful for checking how a description
would be handled before running a full analysis.`,
	RunE: categorizeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&description, "description", "d", "", "Transaction description to categorize")
	Cmd.Flags().StringVarP(&amount, "amount", "a", "", "Transaction amount (optional, e.g. -5.75)")
	_ = Cmd.MarkFlagRequired("description")
}

func categorizeFunc(cmd *cobra.Command, args []string) error {
	log := root.Log
	cfg := root.AppConfig

	table, err := root.LoadKeywordTable(log)
	if err != nil {
		return err
	}

	var aiClient categorizer.AIClient
	if cfg.AI.Enabled {
		client, err := categorizer.NewGeminiClient(cmd.Context(), cfg.AI.APIKey, cfg.AI.Model, log)
		if err != nil {
			log.WithError(err).Warn("Could not initialize AI client, continuing without AI tier")
		} else {
			defer func() {
				if err := client.Close(); err != nil {
					log.WithError(err).Warn("Failed to close AI client")
				}
			}()
			aiClient = client
		}
	}

	cat, err := categorizer.NewCategorizer(table, cfg.Categorize.FuzzyThreshold, aiClient, log)
	if err != nil {
		return err
	}

	tx := models.Transaction{Description: description}
	if amount != "" {
		amt, err := decimal.NewFromString(amount)
		if err != nil {
			log.WithError(err).Warn("Could not parse amount, classifying on description only")
		} else {
			tx.Amount = amt
		}
	}

	category := cat.Categorize(cmd.Context(), tx)
	result := classifier.NewClassifier(log).Classify(tx)

	log.Info("Categorization result",
		logging.Field{Key: "category", Value: category.Name},
		logging.Field{Key: "type", Value: string(result.Type)},
		logging.Field{Key: "confidence", Value: result.Confidence},
		logging.Field{Key: "reason", Value: result.Reason})
	return nil
}
