// Package textutils provides text manipulation utilities shared by the
// statement parsers.
package textutils

import (
	"regexp"
	"strings"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// CollapseWhitespace trims the string and collapses internal runs of
// whitespace to a single space. Statement lines carry column padding that
// would otherwise leak into descriptions.
func CollapseWhitespace(s string) string {
	return whitespaceRe.ReplaceAllString(strings.TrimSpace(s), " ")
}

// ContainsAny reports whether s contains any of the given substrings.
// Callers lowercase s and the keywords for case-insensitive matching.
func ContainsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}
