package extractor

import "strings"

// BankFormat names a statement layout and selects the parsing strategy.
type BankFormat string

const (
	// FormatGeneric is the fallback for documents no detector recognizes.
	FormatGeneric BankFormat = "generic"
	// FormatChase covers JPMorgan Chase checking statements.
	FormatChase BankFormat = "chase"
	// FormatBofA covers Bank of America statements.
	FormatBofA BankFormat = "bofa"
	// FormatWellsFargo covers Wells Fargo statements.
	FormatWellsFargo BankFormat = "wells_fargo"
	// FormatCiti covers Citibank statements.
	FormatCiti BankFormat = "citi"
	// FormatCapitalOne covers Capital One statements.
	FormatCapitalOne BankFormat = "capital_one"
)

// DetectFormat inspects the full document text for bank-identifying
// substrings. Detection is case-insensitive and ordered, so a statement
// naming several institutions resolves to the first match.
func DetectFormat(text string) BankFormat {
	lower := strings.ToLower(text)

	switch {
	case strings.Contains(lower, "jpmorgan chase") || strings.Contains(lower, "chase bank"):
		return FormatChase
	case strings.Contains(lower, "bank of america") || strings.Contains(lower, "boa"):
		return FormatBofA
	case strings.Contains(lower, "wells fargo"):
		return FormatWellsFargo
	case strings.Contains(lower, "citibank") || strings.Contains(lower, "citi"):
		return FormatCiti
	case strings.Contains(lower, "capital one"):
		return FormatCapitalOne
	default:
		return FormatGeneric
	}
}
