// Package dateutils provides date normalization for statement transaction
// dates. Heterogeneous date strings are reduced to a canonical YYYY-MM month
// key which the pipeline uses for monthly aggregation.
package dateutils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultFallbackYear is the statement year assumed for bare MM/DD dates.
// Statement text carries no year on such lines, so cross-year attribution is
// only correct when the caller supplies the real statement year through
// NormalizeMonthKeyWithYear. This is a documented limitation, not a bug.
const DefaultFallbackYear = 2025

// MonthKeyLayout is the canonical output format for month keys.
const MonthKeyLayout = "2006-01"

// monthKeyLayouts are the strict templates tried in order before falling back
// to regex extraction. Month-first variants come first, matching the US
// statement formats this pipeline targets.
var monthKeyLayouts = []string{
	"01/02/2006", // MM/DD/YYYY
	"01-02-2006", // MM-DD-YYYY
	"2006-01-02", // YYYY-MM-DD
	"02/01/2006", // DD/MM/YYYY
	"02-01-2006", // DD-MM-YYYY
	"01/02/06",   // MM/DD/YY
	"01-02-06",   // MM-DD-YY
}

var (
	bareMonthDayRe = regexp.MustCompile(`^\d{1,2}/\d{1,2}$`)
	spacesRe       = regexp.MustCompile(`\s+`)

	// Numeric triple patterns for the regex fallback, tried in order.
	tripleRes = []*regexp.Regexp{
		regexp.MustCompile(`(\d{1,2})[/-](\d{1,2})[/-](\d{4})`),
		regexp.MustCompile(`(\d{1,2})[/-](\d{1,2})[/-](\d{2})`),
		regexp.MustCompile(`(\d{4})[/-](\d{1,2})[/-](\d{1,2})`),
	}
)

// NormalizeMonthKey converts a raw date string into a YYYY-MM month key.
// It returns ("", false) when no recognized date pattern exists; it never
// returns an error, so callers bucket failures under the Unknown group
// instead of dropping records. Bare MM/DD dates use DefaultFallbackYear.
func NormalizeMonthKey(raw string) (string, bool) {
	return NormalizeMonthKeyWithYear(raw, DefaultFallbackYear)
}

// NormalizeMonthKeyWithYear behaves like NormalizeMonthKey but lets the
// caller supply the statement year used for bare MM/DD dates.
func NormalizeMonthKeyWithYear(raw string, fallbackYear int) (string, bool) {
	cleaned := CleanDateString(raw)
	if cleaned == "" {
		return "", false
	}

	// Bare MM/DD carries no year; assume the statement year.
	if bareMonthDayRe.MatchString(cleaned) {
		cleaned = fmt.Sprintf("%s/%d", cleaned, fallbackYear)
	}

	for _, layout := range monthKeyLayouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			year := adjustCentury(t.Year(), layout)
			return fmt.Sprintf("%04d-%02d", year, int(t.Month())), true
		}
	}

	return extractMonthKey(cleaned)
}

// adjustCentury maps two-digit years onto the <50 -> 2000s, >=50 -> 1900s
// convention. Go's own two-digit pivot is 69, so years parsed via a "06"
// layout need correcting for the 50-68 range.
func adjustCentury(year int, layout string) int {
	if strings.HasSuffix(layout, "06") && !strings.HasSuffix(layout, "2006") {
		if year >= 2050 {
			return year - 100
		}
	}
	return year
}

// extractMonthKey is the last-resort path: pull a numeric (g1,g2,g3) triple
// out of the string and infer which group is the month. Ambiguous day/month
// order defaults to month-first.
func extractMonthKey(s string) (string, bool) {
	for i, re := range tripleRes {
		m := re.FindStringSubmatch(s)
		if m == nil {
			continue
		}

		var year, month int
		if i == 2 { // YYYY first
			year, _ = strconv.Atoi(m[1])
			month, _ = strconv.Atoi(m[2])
		} else {
			y, _ := strconv.Atoi(m[3])
			if len(m[3]) == 2 {
				if y < 50 {
					year = 2000 + y
				} else {
					year = 1900 + y
				}
			} else {
				year = y
			}
			g1, _ := strconv.Atoi(m[1])
			g2, _ := strconv.Atoi(m[2])
			if g1 <= 12 {
				month = g1
			} else {
				month = g2
			}
		}

		if month < 1 || month > 12 {
			continue
		}
		return fmt.Sprintf("%04d-%02d", year, month), true
	}

	return "", false
}

// CleanDateString removes unwanted characters and normalizes a date string
func CleanDateString(dateStr string) string {
	dateStr = strings.TrimSpace(dateStr)
	return spacesRe.ReplaceAllString(dateStr, " ")
}

// ContainsDate reports whether the line holds any date-shaped substring.
// The extractor uses this per line to decide whether a line can be a
// transaction at all.
func ContainsDate(line string) bool {
	return FindDate(line) != ""
}

// datePatterns are the date-shaped substrings recognized inside free text.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`),
	regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`),
	regexp.MustCompile(`\b\d{1,2}\s+[A-Za-z]{3}\s+\d{4}\b`),
	regexp.MustCompile(`\b\d{1,2}/\d{1,2}\b`),
}

// FindDate returns the first date-shaped substring in the line, or "".
func FindDate(line string) string {
	for _, re := range datePatterns {
		if m := re.FindString(line); m != "" {
			return m
		}
	}
	return ""
}
