package report

import (
	"github.com/shopspring/decimal"

	"github.com/abhaysalunke711/bank-statement-analyzer/internal/models"
	"github.com/abhaysalunke711/bank-statement-analyzer/internal/pipeline"
)

// Summary aggregates income and expense figures over a set of
// transactions. All amounts are absolute values.
type Summary struct {
	TotalIncome    decimal.Decimal
	TotalExpenses  decimal.Decimal
	Net            decimal.Decimal
	IncomeCount    int
	ExpenseCount   int
	IncomeAverage  decimal.Decimal
	ExpenseAverage decimal.Decimal
}

// Summarize computes income/expense totals for a batch of classified
// transactions. Unclassified transactions are ignored.
func Summarize(txs []models.Transaction) Summary {
	var s Summary

	for _, tx := range txs {
		amount := tx.Amount.Abs()
		switch tx.Type {
		case models.TypeIncome:
			s.TotalIncome = s.TotalIncome.Add(amount)
			s.IncomeCount++
		case models.TypeExpense:
			s.TotalExpenses = s.TotalExpenses.Add(amount)
			s.ExpenseCount++
		}
	}

	s.Net = s.TotalIncome.Sub(s.TotalExpenses)
	if s.IncomeCount > 0 {
		s.IncomeAverage = s.TotalIncome.Div(decimal.NewFromInt(int64(s.IncomeCount))).Round(2)
	}
	if s.ExpenseCount > 0 {
		s.ExpenseAverage = s.TotalExpenses.Div(decimal.NewFromInt(int64(s.ExpenseCount))).Round(2)
	}
	return s
}

// SummarizeByMonth groups transactions by month key and summarizes each
// group. Transactions without a month key land under the Unknown bucket.
func SummarizeByMonth(txs []models.Transaction) map[string]Summary {
	summaries := make(map[string]Summary)
	for key, group := range pipeline.GroupByMonth(txs) {
		summaries[key] = Summarize(group)
	}
	return summaries
}
