// Package report renders processed batches: CSV export of classified
// transactions and per-month income/expense summaries.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/abhaysalunke711/bank-statement-analyzer/internal/logging"
	"github.com/abhaysalunke711/bank-statement-analyzer/internal/models"
)

// Delimiter is the CSV output delimiter. Configurable for locales whose
// spreadsheet tools expect semicolons.
var Delimiter rune = ','

// SetDelimiter changes the delimiter for subsequent CSV output.
func SetDelimiter(delim rune) {
	Delimiter = delim
	gocsv.TagSeparator = fmt.Sprintf("%c", delim)
}

// WriteCSV writes classified transactions to a CSV file, creating parent
// directories as needed. Column layout comes from the csv tags on
// models.Transaction.
func WriteCSV(transactions []models.Transaction, csvFile string, logger logging.Logger) error {
	if transactions == nil {
		return fmt.Errorf("cannot write nil transactions to CSV")
	}
	if logger == nil {
		logger = logging.GetLogger()
	}

	logger.WithFields(
		logging.Field{Key: "file", Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)},
	).Info("Writing transactions to CSV file")

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, models.PermissionDirectory); err != nil {
		logger.WithError(err).Error("Failed to create directory")
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		logger.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	// Amounts render with exactly 2 decimal places.
	for i := range transactions {
		transactions[i].Amount = transactions[i].Amount.Round(2)
	}

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(&transactions, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		logger.WithError(err).Error("Failed to marshal transactions to CSV")
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	logger.WithFields(
		logging.Field{Key: "file", Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)},
	).Info("Successfully wrote transactions to CSV file")
	return nil
}
