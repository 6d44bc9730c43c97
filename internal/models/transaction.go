// Package models provides the data structures used throughout the application.
package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction moves money in or out.
type TransactionType string

const (
	// TypeIncome marks incoming money (deposits, payroll, refunds).
	TypeIncome TransactionType = "income"
	// TypeExpense marks outgoing money (purchases, withdrawals, fees).
	TypeExpense TransactionType = "expense"
)

// Transaction represents a single financial event extracted from a bank
// statement. It is created once by the extractor and then enriched in place:
// the categorizer sets Category, the classifier sets Type, TypeConfidence and
// TypeReason. Date, Description, Amount and SourceFile are never mutated
// after extraction.
type Transaction struct {
	Date           string          `csv:"Date"`           // Raw date string as printed in the statement
	MonthKey       string          `csv:"MonthKey"`       // Canonical YYYY-MM key, empty when the date is unparseable
	Description    string          `csv:"Description"`    // Trimmed description text
	Amount         decimal.Decimal `csv:"Amount"`         // Signed amount, normalized to 2 decimal places
	Category       string          `csv:"Category"`       // Spending category, never empty once categorized
	Type           TransactionType `csv:"Type"`           // income or expense
	TypeConfidence float64         `csv:"TypeConfidence"` // Classification confidence in [0,1]
	TypeReason     string          `csv:"TypeReason"`     // Human-readable justification, for audit only
	SourceFile     string          `csv:"SourceFile"`     // Originating document identifier
	RawLine        string          `csv:"-"`              // Statement line the transaction was extracted from
}

// IsIncome returns true if the transaction has been classified as income.
func (t *Transaction) IsIncome() bool {
	return t.Type == TypeIncome
}

// IsExpense returns true if the transaction has been classified as expense.
func (t *Transaction) IsExpense() bool {
	return t.Type == TypeExpense
}

// HasMonthKey reports whether the transaction date normalized successfully.
func (t *Transaction) HasMonthKey() bool {
	return t.MonthKey != ""
}

// Key returns a deduplication key built from the immutable fields.
func (t *Transaction) Key() string {
	return fmt.Sprintf("%s|%s|%s", t.Date, t.Description, t.Amount.StringFixed(2))
}
