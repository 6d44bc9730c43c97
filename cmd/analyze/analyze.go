// Package analyze implements the statement analysis command: extract,
// categorize and classify transactions from statement text files and write
// the result as CSV plus a monthly summary report.
package analyze

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abhaysalunke711/bank-statement-analyzer/cmd/root"
	"github.com/abhaysalunke711/bank-statement-analyzer/internal/categorizer"
	"github.com/abhaysalunke711/bank-statement-analyzer/internal/extractor"
	"github.com/abhaysalunke711/bank-statement-analyzer/internal/fileutils"
	"github.com/abhaysalunke711/bank-statement-analyzer/internal/logging"
	"github.com/abhaysalunke711/bank-statement-analyzer/internal/pipeline"
	"github.com/abhaysalunke711/bank-statement-analyzer/internal/report"
)

var summaryFormat string

// Cmd represents the analyze command
var Cmd = &cobra.Command{
	Use:   "analyze [files...]",
	Short: "Analyze bank statement text files",
	Long: `Analyze one or more bank statement text files: extract transactions,
assign categories from the keyword table, classify each as income or expense,
and write the classified batch to CSV with a per-month summary.`,
	Args: cobra.MinimumNArgs(1),
	RunE: analyzeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&summaryFormat, "summary", "s", "json", "Summary report format (json or yaml)")
}

func analyzeFunc(cmd *cobra.Command, args []string) error {
	log := root.Log
	cfg := root.AppConfig

	table, err := root.LoadKeywordTable(log)
	if err != nil {
		return err
	}

	opts := []pipeline.Option{
		pipeline.WithFuzzyThreshold(cfg.Categorize.FuzzyThreshold),
		pipeline.WithWorkers(cfg.Pipeline.Workers),
		pipeline.WithExtractor(newExtractor(cfg.Extract.FallbackYear, cfg.Extract.AmountPolicy, log)),
	}
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
			opts = append(opts, pipeline.WithAIClient(client))
		}
	}

	pipe := pipeline.New(log, opts...)
	pipe.SwapTable(table)

	docs, err := readDocuments(args, log)
	if err != nil {
		return err
	}

	txs, err := pipe.Process(cmd.Context(), docs)
	if err != nil {
		return err
	}

	output := root.Output
	if output == "" {
		output = "transactions.csv"
	}
	if err := report.WriteCSV(txs, output, log); err != nil {
		return err
	}

	stats := pipeline.Stats(txs)
	log.WithFields(
		logging.Field{Key: logging.FieldCount, Value: stats.Total},
		logging.Field{Key: "categorized", Value: stats.Categorized},
		logging.Field{Key: "uncategorized", Value: stats.Uncategorized},
	).Info("Categorization statistics")

	summary, err := report.NewReportGenerator(log).
		GenerateReport(report.SummarizeByMonth(txs), summaryFormat)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(summary))
	return nil
}

func newExtractor(fallbackYear int, amountPolicy string, log logging.Logger) *extractor.Extractor {
	pick := extractor.PickLast
	if amountPolicy == "first" {
		pick = extractor.PickFirst
	}
	return extractor.NewExtractor(log,
		extractor.WithFallbackYear(fallbackYear),
		extractor.WithAmountPicker(pick),
	)
}

// readDocuments loads each statement text file into a Document named after
// its base filename. A directory argument expands to every .txt file it
// contains.
func readDocuments(paths []string, log logging.Logger) ([]pipeline.Document, error) {
	docs := make([]pipeline.Document, 0, len(paths))
	for _, path := range paths {
		if fileutils.DirectoryExists(path) {
			listed, err := fileutils.ListFilesWithExtension(path, ".txt")
			if err != nil {
				return nil, fmt.Errorf("error listing statement directory %s: %w", path, err)
			}
			if len(listed) == 0 {
				log.WithField(logging.FieldSourceFile, path).Warn("No .txt statements in directory")
			}
			expanded, err := readDocuments(listed, log)
			if err != nil {
				return nil, err
			}
			docs = append(docs, expanded...)
			continue
		}

		data, err := fileutils.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("error reading statement file %s: %w", path, err)
		}
		docs = append(docs, pipeline.Document{
			Name: filepath.Base(path),
			Text: string(data),
		})
		log.WithField(logging.FieldSourceFile, path).Debug("Loaded statement file")
	}
	return docs, nil
}
