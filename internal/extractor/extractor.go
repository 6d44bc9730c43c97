// Package extractor turns raw statement text into transactions. A format
// detector picks a bank-specific parser; documents no detector recognizes
// go through a generic line scanner that requires both a date-shaped and an
// amount-shaped token on the same line. Extraction never fails: a document
// that yields nothing returns an empty slice and a warning.
package extractor

import (
	"strings"

	"github.com/abhaysalunke711/bank-statement-analyzer/internal/currencyutils"
	"github.com/abhaysalunke711/bank-statement-analyzer/internal/dateutils"
	"github.com/abhaysalunke711/bank-statement-analyzer/internal/logging"
	"github.com/abhaysalunke711/bank-statement-analyzer/internal/models"
	"github.com/abhaysalunke711/bank-statement-analyzer/internal/parsererror"
	"github.com/abhaysalunke711/bank-statement-analyzer/internal/textutils"
)

// AmountPicker selects the transaction amount when a line carries several
// amount-shaped tokens. The slice is never empty.
type AmountPicker func(amounts []string) string

// PickLast returns the last amount on the line. Trailing numbers are usually
// the settled amount; earlier ones tend to be reference numbers. Statements
// with a balance column after the amount column will mis-extract under this
// policy, which is why it is swappable.
func PickLast(amounts []string) string {
	return amounts[len(amounts)-1]
}

// PickFirst returns the first amount on the line, for layouts that print the
// amount before a running balance.
func PickFirst(amounts []string) string {
	return amounts[0]
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithAmountPicker overrides the default last-amount-wins policy.
func WithAmountPicker(pick AmountPicker) Option {
	return func(e *Extractor) {
		if pick != nil {
			e.pickAmount = pick
		}
	}
}

// WithFallbackYear sets the year assumed for bare MM/DD dates.
func WithFallbackYear(year int) Option {
	return func(e *Extractor) {
		if year > 0 {
			e.fallbackYear = year
		}
	}
}

// Extractor extracts candidate transactions from statement text.
type Extractor struct {
	logger       logging.Logger
	pickAmount   AmountPicker
	fallbackYear int
}

// NewExtractor creates an Extractor with the default policies.
func NewExtractor(logger logging.Logger, opts ...Option) *Extractor {
	if logger == nil {
		logger = logging.GetLogger()
	}
	e := &Extractor{
		logger:       logger,
		pickAmount:   PickLast,
		fallbackYear: dateutils.DefaultFallbackYear,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses the document text with the parser matching its detected
// bank format. An empty or unparseable document returns an empty slice.
func (e *Extractor) Extract(text string) []models.Transaction {
	if strings.TrimSpace(text) == "" {
		e.logger.Warn("Empty document text, nothing to extract")
		return []models.Transaction{}
	}

	format := DetectFormat(text)
	e.logger.WithField(logging.FieldBankFormat, string(format)).Info("Detected bank format")

	var txs []models.Transaction
	switch format {
	case FormatChase:
		txs = e.parseChase(text)
	default:
		// The remaining named formats have no dedicated layout parser yet
		// and share the generic scanner.
		txs = e.parseGeneric(text)
	}

	if len(txs) == 0 {
		e.logger.WithField(logging.FieldBankFormat, string(format)).
			Warn("No transactions extracted from document")
	} else {
		e.logger.WithFields(
			logging.Field{Key: logging.FieldBankFormat, Value: string(format)},
			logging.Field{Key: logging.FieldCount, Value: len(txs)},
		).Info("Extracted transactions")
	}
	return txs
}

// newTransaction builds a transaction from raw tokens, normalizing the month
// key and amount. Date and amount normalization failures degrade (empty
// month key, zero amount) instead of dropping the record.
func (e *Extractor) newTransaction(date, description, amount, rawLine string) models.Transaction {
	monthKey, ok := dateutils.NormalizeMonthKeyWithYear(date, e.fallbackYear)
	if !ok {
		err := &parsererror.ParseError{Parser: "extractor", Field: "date", Value: date}
		e.logger.WithError(err).Warn("Date did not normalize to a month key")
		monthKey = ""
	}
	return models.Transaction{
		Date:        date,
		MonthKey:    monthKey,
		Description: textutils.CollapseWhitespace(description),
		Amount:      currencyutils.NormalizeOrWarn(amount, e.logger),
		RawLine:     rawLine,
	}
}
