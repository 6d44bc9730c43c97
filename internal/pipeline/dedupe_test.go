package pipeline

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/abhaysalunke711/bank-statement-analyzer/internal/logging"
	"github.com/abhaysalunke711/bank-statement-analyzer/internal/models"
)

func tx(date, monthKey, description string, amount float64) models.Transaction {
	return models.Transaction{
		Date:        date,
		MonthKey:    monthKey,
		Description: description,
		Amount:      decimal.NewFromFloat(amount),
	}
}

func TestSortChronologically(t *testing.T) {
	batch := []models.Transaction{
		tx("02/01/2024", "2024-02", "RENT", -1200),
		tx("garbage", "", "UNKNOWN DATE", -1),
		tx("01/16/2024", "2024-01", "UBER", -14.20),
		tx("01/15/2024", "2024-01", "PAYROLL", 2500),
		tx("01/16/2024", "2024-01", "COFFEE", -5.75),
	}

	SortChronologically(batch)

	assert.Equal(t, "PAYROLL", batch[0].Description)
	// Same month and date: smaller amount first.
	assert.Equal(t, "UBER", batch[1].Description)
	assert.Equal(t, "COFFEE", batch[2].Description)
	assert.Equal(t, "RENT", batch[3].Description)
	assert.Equal(t, "UNKNOWN DATE", batch[4].Description)
}

func TestDetectDuplicates(t *testing.T) {
	mock := logging.NewMockLogger()
	batch := []models.Transaction{
		tx("01/15/2024", "2024-01", "STARBUCKS", -5.75),
		tx("01/15/2024", "2024-01", "STARBUCKS", -5.75),
		tx("01/15/2024", "2024-01", "STARBUCKS", -5.75),
		tx("01/16/2024", "2024-01", "UBER", -14.20),
	}

	count := DetectDuplicates(batch, mock)

	assert.Equal(t, 2, count)
	assert.Len(t, batch, 4, "duplicates are reported, not removed")
	assert.True(t, mock.HasMessage("Potential duplicate transaction"))
	assert.True(t, mock.HasMessage("Found potential duplicate transactions"))
}

func TestDetectDuplicatesCleanBatch(t *testing.T) {
	mock := logging.NewMockLogger()
	batch := []models.Transaction{
		tx("01/15/2024", "2024-01", "STARBUCKS", -5.75),
		tx("01/15/2024", "2024-01", "STARBUCKS", -6.75),
	}

	assert.Equal(t, 0, DetectDuplicates(batch, mock))
	assert.False(t, mock.HasMessage("Potential duplicate transaction"))
}
