package textutils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhaysalunke711/bank-statement-analyzer/internal/textutils"
)

func TestCollapseWhitespace(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"column padding", "STARBUCKS   STORE    #1234", "STARBUCKS STORE #1234"},
		{"tabs and newlines", "DIRECT\tDEPOSIT\nPAYROLL", "DIRECT DEPOSIT PAYROLL"},
		{"leading and trailing", "  RENT PAYMENT  ", "RENT PAYMENT"},
		{"already clean", "UBER TRIP 8812", "UBER TRIP 8812"},
		{"empty", "", ""},
		{"only whitespace", "   \t ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, textutils.CollapseWhitespace(tt.input))
		})
	}
}

func TestContainsAny(t *testing.T) {
	keywords := []string{"summary", "balance", "fees"}

	assert.True(t, textutils.ContainsAny("account summary for january", keywords))
	assert.True(t, textutils.ContainsAny("ending balance", keywords))
	assert.False(t, textutils.ContainsAny("deposits and other credits", keywords))
	assert.False(t, textutils.ContainsAny("", keywords))
	assert.False(t, textutils.ContainsAny("anything", nil))
}
