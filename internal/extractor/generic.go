package extractor

import (
	"strings"

	"github.com/abhaysalunke711/bank-statement-analyzer/internal/currencyutils"
	"github.com/abhaysalunke711/bank-statement-analyzer/internal/dateutils"
	"github.com/abhaysalunke711/bank-statement-analyzer/internal/models"
)

// parseGeneric scans every non-empty line for a date-shaped and an
// amount-shaped token. A line qualifies only when both are present; the
// description is the line with the chosen amount token removed.
func (e *Extractor) parseGeneric(text string) []models.Transaction {
	txs := []models.Transaction{}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		date := dateutils.FindDate(line)
		if date == "" {
			continue
		}

		amounts := currencyutils.FindAmounts(line)
		if len(amounts) == 0 {
			continue
		}
		amount := e.pickAmount(amounts)

		description := strings.TrimSpace(strings.Replace(line, amount, "", 1))
		if description == "" {
			description = line
		}

		txs = append(txs, e.newTransaction(date, description, amount, line))
	}

	return txs
}
