package report

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/abhaysalunke711/bank-statement-analyzer/internal/logging"
	"github.com/abhaysalunke711/bank-statement-analyzer/internal/models"
)

func sampleSummaries() map[string]Summary {
	return map[string]Summary{
		"2024-02": {
			TotalExpenses:  decimal.NewFromFloat(120.25),
			Net:            decimal.NewFromFloat(-120.25),
			ExpenseCount:   1,
			ExpenseAverage: decimal.NewFromFloat(120.25),
		},
		"2024-01": {
			TotalIncome:    decimal.NewFromFloat(2500),
			TotalExpenses:  decimal.NewFromFloat(5.75),
			Net:            decimal.NewFromFloat(2494.25),
			IncomeCount:    1,
			ExpenseCount:   1,
			IncomeAverage:  decimal.NewFromFloat(2500),
			ExpenseAverage: decimal.NewFromFloat(5.75),
		},
		models.MonthKeyUnknown: {
			TotalExpenses:  decimal.NewFromFloat(10),
			Net:            decimal.NewFromFloat(-10),
			ExpenseCount:   1,
			ExpenseAverage: decimal.NewFromFloat(10),
		},
	}
}

func TestReportGenerator_GenerateReport_JSON(t *testing.T) {
	generator := NewReportGenerator(logging.NewMockLogger())

	jsonBytes, err := generator.GenerateReport(sampleSummaries(), "json")
	require.NoError(t, err)

	var rows []MonthSummary
	require.NoError(t, json.Unmarshal(jsonBytes, &rows))

	require.Len(t, rows, 3)
	assert.Equal(t, "2024-01", rows[0].Month)
	assert.Equal(t, "2024-02", rows[1].Month)
	assert.Equal(t, models.MonthKeyUnknown, rows[2].Month)
	assert.Equal(t, "2494.25", rows[0].Net)
	assert.Equal(t, "2500.00", rows[0].TotalIncome)
	assert.Equal(t, 1, rows[0].IncomeCount)
}

func TestReportGenerator_GenerateReport_YAML(t *testing.T) {
	generator := NewReportGenerator(logging.NewMockLogger())

	yamlBytes, err := generator.GenerateReport(sampleSummaries(), "yaml")
	require.NoError(t, err)

	var rows []MonthSummary
	require.NoError(t, yaml.Unmarshal(yamlBytes, &rows))

	require.Len(t, rows, 3)
	assert.Equal(t, "2024-01", rows[0].Month)
	assert.Equal(t, "-120.25", rows[1].Net)
}

func TestReportGenerator_GenerateReport_UnsupportedFormat(t *testing.T) {
	generator := NewReportGenerator(logging.NewMockLogger())

	_, err := generator.GenerateReport(sampleSummaries(), "csv")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported report format: csv")
}

func TestReportGenerator_GenerateReport_Empty(t *testing.T) {
	generator := NewReportGenerator(logging.NewMockLogger())

	jsonBytes, err := generator.GenerateReport(map[string]Summary{}, "json")
	require.NoError(t, err)

	var rows []MonthSummary
	require.NoError(t, json.Unmarshal(jsonBytes, &rows))
	assert.Empty(t, rows)
}
