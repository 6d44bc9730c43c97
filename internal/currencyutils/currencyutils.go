// Package currencyutils provides amount normalization for statement text.
// Currency-formatted strings (symbols, thousands separators, accounting
// parentheses, sign prefixes) are reduced to signed decimal values.
package currencyutils

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/abhaysalunke711/bank-statement-analyzer/internal/logging"
)

// symbolsRe strips currency symbols and whitespace before parsing.
var symbolsRe = regexp.MustCompile(`[€$£¥\s]`)

// AmountRe matches amount-shaped tokens inside free text. The extractor uses
// it to locate candidate amounts on statement lines.
var AmountRe = regexp.MustCompile(`[-+]?\$?\d{1,3}(?:,\d{3})*\.?\d{0,2}`)

// Normalize converts a currency-formatted string to a signed decimal rounded
// to 2 places. Parentheses mark negative amounts (accounting convention) and
// a leading plus sign is dropped. Any parse failure yields decimal.Zero so a
// single malformed record never aborts a batch; use NormalizeOrWarn when the
// failure should be logged.
func Normalize(raw string) decimal.Decimal {
	d, _ := normalize(raw)
	return d
}

// NormalizeOrWarn is Normalize with a warning logged on parse failure.
func NormalizeOrWarn(raw string, log logging.Logger) decimal.Decimal {
	d, ok := normalize(raw)
	if !ok && log != nil {
		log.WithField(logging.FieldAmount, raw).Warn("Could not parse amount, defaulting to zero")
	}
	return d
}

func normalize(raw string) (decimal.Decimal, bool) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return decimal.Zero, false
	}

	// Strip currency symbols and thousands separators.
	cleaned = symbolsRe.ReplaceAllString(cleaned, "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")

	// Accounting convention: (45.00) means -45.00.
	if strings.HasPrefix(cleaned, "(") && strings.HasSuffix(cleaned, ")") {
		cleaned = "-" + cleaned[1:len(cleaned)-1]
	}

	cleaned = strings.TrimPrefix(cleaned, "+")

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, false
	}
	return d.Round(2), true
}

// IsNegative checks if an amount is negative
func IsNegative(amount decimal.Decimal) bool {
	return amount.LessThan(decimal.Zero)
}

// IsPositive checks if an amount is positive
func IsPositive(amount decimal.Decimal) bool {
	return amount.GreaterThan(decimal.Zero)
}

// FindAmounts returns every amount-shaped token in the line, in order.
func FindAmounts(line string) []string {
	return AmountRe.FindAllString(line, -1)
}
