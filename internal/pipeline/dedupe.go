package pipeline

import (
	"sort"

	"github.com/abhaysalunke711/bank-statement-analyzer/internal/logging"
	"github.com/abhaysalunke711/bank-statement-analyzer/internal/models"
)

// SortChronologically orders a batch by month key, then raw date, then
// amount. Transactions without a month key sort last. Raw dates within one
// month share a layout, so string comparison orders them correctly.
func SortChronologically(txs []models.Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		ki, kj := txs[i].MonthKey, txs[j].MonthKey
		if ki != kj {
			if ki == "" {
				return false
			}
			if kj == "" {
				return true
			}
			return ki < kj
		}
		if txs[i].Date != txs[j].Date {
			return txs[i].Date < txs[j].Date
		}
		return txs[i].Amount.LessThan(txs[j].Amount)
	})
}

// DetectDuplicates logs a warning for each transaction identity that occurs
// more than once in the batch and returns the number of extra occurrences.
// Overlapping statement exports produce these; the batch is left intact so
// the caller decides what to drop.
func DetectDuplicates(txs []models.Transaction, logger logging.Logger) int {
	if logger == nil {
		logger = logging.GetLogger()
	}

	seen := make(map[string]int, len(txs))
	for _, tx := range txs {
		seen[tx.Key()]++
	}

	duplicateCount := 0
	warned := make(map[string]bool)
	for _, tx := range txs {
		key := tx.Key()
		if seen[key] < 2 || warned[key] {
			continue
		}
		warned[key] = true
		duplicateCount += seen[key] - 1
		logger.Warn("Potential duplicate transaction",
			logging.Field{Key: logging.FieldDate, Value: tx.Date},
			logging.Field{Key: logging.FieldAmount, Value: tx.Amount.String()},
			logging.Field{Key: "description", Value: tx.Description},
			logging.Field{Key: "occurrences", Value: seen[key]})
	}

	if duplicateCount > 0 {
		logger.Warn("Found potential duplicate transactions",
			logging.Field{Key: logging.FieldCount, Value: duplicateCount})
	}
	return duplicateCount
}
