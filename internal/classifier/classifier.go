// Package classifier labels transactions as income or expense. Three
// evidence sources are consulted in priority order: strong regex patterns
// (confidence 0.9), themed keyword scoring, and finally the sign of the
// amount. Classification is heuristic and never fails; low-confidence
// results carry a reason string so reviewers can audit them.
package classifier

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/abhaysalunke711/bank-statement-analyzer/internal/currencyutils"
	"github.com/abhaysalunke711/bank-statement-analyzer/internal/logging"
	"github.com/abhaysalunke711/bank-statement-analyzer/internal/models"
)

// Result is the outcome of classifying one transaction.
type Result struct {
	Type       models.TransactionType
	Confidence float64
	Reason     string
}

// Strong patterns override keyword and amount evidence when they match.
var incomePatterns = compileAll(
	`direct dep|dd\s+|payroll|salary`,
	`ach credit|credit\s+\d+`,
	`deposit.*\+|\+.*deposit`,
	`refund|return|reimbursement`,
	`interest.*earned|dividend`,
	`transfer.*in|incoming`,
)

var expensePatterns = compileAll(
	`debit purchase|pos purchase|card purchase`,
	`withdrawal|atm|cash advance`,
	`check.*\d+|ck\s+\d+`,
	`payment.*to|pay\s+to`,
	`fee|charge|penalty`,
	`transfer.*out|outgoing`,
)

// Keyword themes vote when no strong pattern matches. The theme names only
// show up in log output; scoring counts individual keyword hits.
var incomeKeywords = map[string][]string{
	"salary":     {"salary", "payroll", "wages", "income", "pay check", "paycheck"},
	"deposit":    {"deposit", "direct deposit", "ach credit", "credit", "transfer in"},
	"refund":     {"refund", "return", "reimbursement", "cashback", "cash back"},
	"interest":   {"interest", "dividend", "earnings"},
	"business":   {"payment received", "invoice payment", "client payment"},
	"government": {"tax refund", "stimulus", "unemployment", "social security"},
	"other":      {"bonus", "commission", "freelance", "consulting"},
}

var expenseKeywords = map[string][]string{
	"retail":        {"purchase", "walmart", "target", "amazon", "costco", "store"},
	"food":          {"restaurant", "cafe", "food", "dining", "mcdonald", "starbucks", "pizza"},
	"transport":     {"gas", "fuel", "uber", "lyft", "taxi", "parking", "toll"},
	"utilities":     {"electric", "water", "gas bill", "internet", "phone", "cable"},
	"healthcare":    {"hospital", "pharmacy", "doctor", "medical", "dental"},
	"banking":       {"fee", "charge", "atm", "overdraft", "service charge"},
	"entertainment": {"movie", "netflix", "spotify", "gaming", "entertainment"},
	"housing":       {"rent", "mortgage", "insurance", "property"},
	"other":         {"withdrawal", "debit", "payment", "transfer out"},
}

func compileAll(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		compiled = append(compiled, regexp.MustCompile("(?i)"+p))
	}
	return compiled
}

// Classifier determines the transaction type from description and amount.
type Classifier struct {
	logger logging.Logger
}

// NewClassifier creates a Classifier.
func NewClassifier(logger logging.Logger) *Classifier {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Classifier{logger: logger}
}

// Classify determines whether a single transaction is income or expense.
// It is a pure function of Description and Amount.
func (c *Classifier) Classify(tx models.Transaction) Result {
	description := strings.ToLower(strings.TrimSpace(tx.Description))

	baseType, baseConfidence := amountBaseline(tx)
	patternType, patternConf, patternReason := analyzePatterns(description)
	keywordType, keywordConf, keywordReason := analyzeKeywords(description)

	result := combine(baseType, baseConfidence, patternType, patternConf, patternReason,
		keywordType, keywordConf, keywordReason, tx)
	result.Confidence = clamp(result.Confidence)
	return result
}

// ClassifyAll classifies a batch of transactions in place.
func (c *Classifier) ClassifyAll(txs []models.Transaction) {
	for i := range txs {
		result := c.Classify(txs[i])
		txs[i].Type = result.Type
		txs[i].TypeConfidence = result.Confidence
		txs[i].TypeReason = result.Reason
	}
	c.logger.WithField(logging.FieldCount, len(txs)).Debug("Batch classification complete")
}

// amountBaseline derives the weakest evidence tier from the amount's sign.
// Zero amounts carry almost no signal so the default leans expense.
func amountBaseline(tx models.Transaction) (models.TransactionType, float64) {
	switch {
	case currencyutils.IsPositive(tx.Amount):
		return models.TypeIncome, 0.6
	case currencyutils.IsNegative(tx.Amount):
		return models.TypeExpense, 0.6
	default:
		return models.TypeExpense, 0.3
	}
}

func analyzePatterns(description string) (models.TransactionType, float64, string) {
	for _, re := range incomePatterns {
		if re.MatchString(description) {
			return models.TypeIncome, 0.9, fmt.Sprintf("Income pattern: %s", re.String())
		}
	}
	for _, re := range expensePatterns {
		if re.MatchString(description) {
			return models.TypeExpense, 0.9, fmt.Sprintf("Expense pattern: %s", re.String())
		}
	}
	return "", 0.0, "No pattern match"
}

func analyzeKeywords(description string) (models.TransactionType, float64, string) {
	incomeScore := 0
	expenseScore := 0
	var matched []string

	for _, keywords := range incomeKeywords {
		for _, keyword := range keywords {
			if strings.Contains(description, keyword) {
				incomeScore++
				matched = append(matched, "income:"+keyword)
			}
		}
	}
	for _, keywords := range expenseKeywords {
		for _, keyword := range keywords {
			if strings.Contains(description, keyword) {
				expenseScore++
				matched = append(matched, "expense:"+keyword)
			}
		}
	}

	// Theme maps iterate in random order; sort so the reason string is
	// stable across runs.
	sort.Strings(matched)
	if len(matched) > 3 {
		matched = matched[:3]
	}

	switch {
	case incomeScore > expenseScore:
		confidence := min(0.8, 0.5+float64(incomeScore-expenseScore)*0.1)
		return models.TypeIncome, confidence, fmt.Sprintf("Keywords: %s", strings.Join(matched, ", "))
	case expenseScore > incomeScore:
		confidence := min(0.8, 0.5+float64(expenseScore-incomeScore)*0.1)
		return models.TypeExpense, confidence, fmt.Sprintf("Keywords: %s", strings.Join(matched, ", "))
	default:
		return "", 0.0, "No keyword match"
	}
}

// combine merges the three evidence tiers. Strong patterns win outright,
// qualifying keyword scores come second, and the amount sign is the fallback
// with its confidence damped when keywords weakly disagree.
func combine(baseType models.TransactionType, baseConfidence float64,
	patternType models.TransactionType, patternConf float64, patternReason string,
	keywordType models.TransactionType, keywordConf float64, keywordReason string,
	tx models.Transaction) Result {

	if patternType != "" && patternConf >= 0.8 {
		return Result{Type: patternType, Confidence: patternConf, Reason: patternReason}
	}
	if keywordType != "" && keywordConf >= 0.6 {
		return Result{Type: keywordType, Confidence: keywordConf, Reason: keywordReason}
	}

	if keywordType != "" && keywordType != baseType && keywordConf >= 0.4 {
		return Result{
			Type:       baseType,
			Confidence: max(0.3, baseConfidence-0.2),
			Reason:     fmt.Sprintf("Amount-based (%s) but %s", baseType, keywordReason),
		}
	}

	return Result{
		Type:       baseType,
		Confidence: baseConfidence,
		Reason:     fmt.Sprintf("Amount-based classification ($%s)", tx.Amount.StringFixed(2)),
	}
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
