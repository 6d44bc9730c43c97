package report

import (
	"encoding/json"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/abhaysalunke711/bank-statement-analyzer/internal/logging"
	"github.com/abhaysalunke711/bank-statement-analyzer/internal/models"
)

// MonthSummary pairs a month key with its income/expense summary for
// serialized reports.
type MonthSummary struct {
	Month          string `json:"month" yaml:"month"`
	TotalIncome    string `json:"total_income" yaml:"total_income"`
	TotalExpenses  string `json:"total_expenses" yaml:"total_expenses"`
	Net            string `json:"net" yaml:"net"`
	IncomeCount    int    `json:"income_count" yaml:"income_count"`
	ExpenseCount   int    `json:"expense_count" yaml:"expense_count"`
	IncomeAverage  string `json:"income_average" yaml:"income_average"`
	ExpenseAverage string `json:"expense_average" yaml:"expense_average"`
}

// ReportGenerator renders monthly summaries in machine-readable formats.
type ReportGenerator struct {
	logger logging.Logger
}

// NewReportGenerator creates a new instance of ReportGenerator.
func NewReportGenerator(logger logging.Logger) *ReportGenerator {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &ReportGenerator{logger: logger}
}

// GenerateReport renders per-month summaries in the specified format (json
// or yaml). Months are ordered ascending with the Unknown bucket last.
func (g *ReportGenerator) GenerateReport(byMonth map[string]Summary, format string) ([]byte, error) {
	rows := orderedRows(byMonth)

	switch format {
	case "json":
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			g.logger.WithError(err).Error("Failed to marshal JSON report")
			return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
		}
		return data, nil
	case "yaml":
		data, err := yaml.Marshal(rows)
		if err != nil {
			g.logger.WithError(err).Error("Failed to marshal YAML report")
			return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

func orderedRows(byMonth map[string]Summary) []MonthSummary {
	keys := make([]string, 0, len(byMonth))
	hasUnknown := false
	for key := range byMonth {
		if key == models.MonthKeyUnknown {
			hasUnknown = true
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	if hasUnknown {
		keys = append(keys, models.MonthKeyUnknown)
	}

	rows := make([]MonthSummary, 0, len(keys))
	for _, key := range keys {
		s := byMonth[key]
		rows = append(rows, MonthSummary{
			Month:          key,
			TotalIncome:    s.TotalIncome.StringFixed(2),
			TotalExpenses:  s.TotalExpenses.StringFixed(2),
			Net:            s.Net.StringFixed(2),
			IncomeCount:    s.IncomeCount,
			ExpenseCount:   s.ExpenseCount,
			IncomeAverage:  s.IncomeAverage.StringFixed(2),
			ExpenseAverage: s.ExpenseAverage.StringFixed(2),
		})
	}
	return rows
}
