package pipeline

import (
	"sort"

	"github.com/abhaysalunke711/bank-statement-analyzer/internal/models"
)

// GroupByMonth buckets transactions by month key. Transactions whose date
// never normalized land in the Unknown bucket instead of being dropped.
func GroupByMonth(txs []models.Transaction) map[string][]models.Transaction {
	groups := make(map[string][]models.Transaction)
	for _, tx := range txs {
		key := tx.MonthKey
		if key == "" {
			key = models.MonthKeyUnknown
		}
		groups[key] = append(groups[key], tx)
	}
	return groups
}

// SortedMonthKeys returns the group keys in ascending order with the Unknown
// bucket always last.
func SortedMonthKeys(groups map[string][]models.Transaction) []string {
	keys := make([]string, 0, len(groups))
	hasUnknown := false
	for key := range groups {
		if key == models.MonthKeyUnknown {
			hasUnknown = true
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	if hasUnknown {
		keys = append(keys, models.MonthKeyUnknown)
	}
	return keys
}

// CategoryStats summarizes how a batch categorized.
type CategoryStats struct {
	Total         int
	Categorized   int
	Uncategorized int
	PerCategory   map[string]int
}

// Stats tallies category assignments over a processed batch.
func Stats(txs []models.Transaction) CategoryStats {
	stats := CategoryStats{
		Total:       len(txs),
		PerCategory: make(map[string]int),
	}
	for _, tx := range txs {
		category := tx.Category
		if category == "" {
			category = models.CategoryUncategorized
		}
		stats.PerCategory[category]++
		if category == models.CategoryUncategorized {
			stats.Uncategorized++
		} else {
			stats.Categorized++
		}
	}
	return stats
}
