package extractor

import (
	"regexp"
	"strings"

	"github.com/abhaysalunke711/bank-statement-analyzer/internal/dateutils"
	"github.com/abhaysalunke711/bank-statement-analyzer/internal/models"
	"github.com/abhaysalunke711/bank-statement-analyzer/internal/textutils"
)

// Section markers for Chase checking statements. A line containing an exit
// marker only closes the section when it carries no transaction keyword,
// which guards against false exits on lines like "balance transfer".
var (
	chaseSectionEnter = []string{
		"checking account activity", "transaction",
		"deposits and other credits", "checks paid", "electronic withdrawals",
	}
	chaseSectionExit  = []string{"summary", "balance", "fees", "interest"}
	chaseSectionGuard = []string{"transaction", "deposit", "withdrawal", "check"}
)

// Anchored date patterns tried in order against a section line.
var chaseDateRes = []*regexp.Regexp{
	regexp.MustCompile(`^(\d{1,2}/\d{1,2}/\d{2,4})`),
	regexp.MustCompile(`^(\d{1,2}/\d{1,2})`),
	regexp.MustCompile(`(\d{1,2}/\d{1,2}/\d{2,4})`),
	regexp.MustCompile(`(\d{1,2}/\d{1,2})\s`),
}

// Amount patterns tried in order; Chase prints amounts at line end with
// optional sign and dollar symbol.
var chaseAmountRes = []*regexp.Regexp{
	regexp.MustCompile(`([-+]?\$?\d{1,3}(?:,\d{3})*\.\d{2})$`),
	regexp.MustCompile(`([-+]?\$?\d{1,3}(?:,\d{3})*\.\d{2})\s*$`),
	regexp.MustCompile(`\s([-+]?\$?\d{1,3}(?:,\d{3})*\.\d{2})\s`),
	regexp.MustCompile(`([-+]?\d{1,3}(?:,\d{3})*\.\d{2})$`),
}

// Full-line patterns for the line-by-line fallback pass. The three-group
// forms capture date, description and amount directly; the two-group forms
// capture date and amount and derive the description by removal.
var chaseLineRes = []*regexp.Regexp{
	regexp.MustCompile(`^(\d{1,2}/\d{1,2}/\d{2,4})\s+(.+?)\s+([-+]?\$?\d{1,3}(?:,\d{3})*\.\d{2})$`),
	regexp.MustCompile(`^(\d{1,2}/\d{1,2})\s+(.+?)\s+([-+]?\$?\d{1,3}(?:,\d{3})*\.\d{2})$`),
	regexp.MustCompile(`.*(\d{1,2}/\d{1,2}/\d{2,4}).*\s+([-+]?\$?\d{1,3}(?:,\d{3})*\.\d{2})$`),
	regexp.MustCompile(`.*(\d{1,2}/\d{1,2}).*\s+([-+]?\$?\d{1,3}(?:,\d{3})*\.\d{2})$`),
}

// parseChase walks the statement with a two-state section machine: SCANNING
// outside transaction blocks, IN_SECTION between an enter marker and an
// unguarded exit marker. If the section pass finds nothing it re-runs a
// line-by-line pass over the whole document, which recovers statements whose
// section headers were mangled by text extraction.
func (e *Extractor) parseChase(text string) []models.Transaction {
	txs := []models.Transaction{}
	lines := strings.Split(text, "\n")
	inSection := false

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)

		if textutils.ContainsAny(lower, chaseSectionEnter) {
			inSection = true
			continue
		}
		if inSection && textutils.ContainsAny(lower, chaseSectionExit) && !textutils.ContainsAny(lower, chaseSectionGuard) {
			inSection = false
			continue
		}

		if inSection {
			if tx, ok := e.parseChaseLine(line); ok {
				txs = append(txs, tx)
			}
		}
	}

	if len(txs) == 0 {
		e.logger.Info("No transactions found in sections, trying line-by-line parsing")
		txs = e.parseChaseLineByLine(lines)
	}
	return txs
}

// parseChaseLine parses one section line. A line counts as a transaction
// only when both a date and an amount pattern match.
func (e *Extractor) parseChaseLine(line string) (models.Transaction, bool) {
	var date, amount string

	for _, re := range chaseDateRes {
		if m := re.FindStringSubmatch(line); m != nil {
			date = m[1]
			break
		}
	}
	for _, re := range chaseAmountRes {
		if m := re.FindStringSubmatch(line); m != nil {
			amount = m[1]
			break
		}
	}
	if date == "" || amount == "" {
		return models.Transaction{}, false
	}

	description := line
	if idx := strings.Index(line, date); idx >= 0 {
		description = strings.TrimSpace(line[idx+len(date):])
	}
	description = strings.TrimSpace(strings.Replace(description, amount, "", 1))
	if description == "" {
		description = line
	}

	return e.newTransaction(date, description, amount, line), true
}

func (e *Extractor) parseChaseLineByLine(lines []string) []models.Transaction {
	txs := []models.Transaction{}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) < 10 || !dateutils.ContainsDate(line) {
			continue
		}

		for _, re := range chaseLineRes {
			m := re.FindStringSubmatch(line)
			if m == nil {
				continue
			}

			var date, description, amount string
			if len(m) == 4 {
				date, description, amount = m[1], m[2], m[3]
			} else {
				date, amount = m[1], m[2]
				description = strings.Replace(line, date, "", 1)
				description = strings.TrimSpace(strings.Replace(description, amount, "", 1))
			}

			txs = append(txs, e.newTransaction(date, description, amount, line))
			break
		}
	}
	return txs
}
