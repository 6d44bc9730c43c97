package models

import "regexp"

// Category represents a transaction category
type Category struct {
	Name        string
	Description string
}

// CategoryRule holds the keyword patterns for one category. The three lists
// correspond to the matching tiers: exact substrings, fuzzy candidates, and
// regular expressions. Rules keep their file order so that tie-breaks are
// deterministic for a given table version.
type CategoryRule struct {
	Name  string   `yaml:"name"`
	Exact []string `yaml:"exact"`
	Fuzzy []string `yaml:"fuzzy"`
	Regex []string `yaml:"regex"`

	// Compiled is populated by the store when the table is loaded. Invalid
	// patterns are skipped, so len(Compiled) may be less than len(Regex).
	Compiled []*regexp.Regexp `yaml:"-"`
}

// KeywordTable is the full set of category rules for a batch run. It is
// loaded once and treated as immutable; hot-swapping between batches replaces
// the whole table.
type KeywordTable struct {
	Categories []CategoryRule `yaml:"categories"`
}

// KeywordCount returns the total number of configured keywords across all
// tiers, used for logging after a table load.
func (t *KeywordTable) KeywordCount() int {
	n := 0
	for _, c := range t.Categories {
		n += len(c.Exact) + len(c.Fuzzy) + len(c.Regex)
	}
	return n
}
