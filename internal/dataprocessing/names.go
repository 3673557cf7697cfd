package dataprocessing

import (
	"log/slog"
	"regexp"
	"strings"

	"rostercli/pkg/contracts/domain"
)

// aliasRule maps a roster shorthand to a substring that must appear in the
// canonical staff name. Rules are consulted in order before generic
// matching and short-circuit on the first textual hit.
type aliasRule struct {
	Trigger         string
	TargetSubstring string
}

// defaultAliases are the known disambiguation cases where substring matching
// alone is misleading: two different Clara Cheungs on the same roster.
var defaultAliases = []aliasRule{
	{Trigger: "clara ckm", TargetSubstring: "clara cheung ka man"},
	{Trigger: "clara cheung", TargetSubstring: "clara cheung wing kum"},
}

// parenPattern matches a parenthesized annotation and the whitespace
// around it, e.g. the "(am)" in "J. Smith (am)".
var parenPattern = regexp.MustCompile(`\s*\([^)]*\)\s*`)

// ResolveReport records how every name cell was matched.
type ResolveReport struct {
	Sheets []SheetResolveReport `json:"sheets"`
}

// SheetResolveReport is the per-tab portion of a ResolveReport.
type SheetResolveReport struct {
	Name string `json:"name"`
	// Outcomes has one entry per data row, in source order.
	Outcomes []domain.NameOutcome `json:"outcomes"`
}

// Counts aggregates outcomes across all sheets.
func (r ResolveReport) Counts() map[domain.NameOutcome]int {
	counts := make(map[domain.NameOutcome]int)
	for _, sheet := range r.Sheets {
		for _, o := range sheet.Outcomes {
			counts[o]++
		}
	}
	return counts
}

// Resolver rewrites the roster name column against a canonical staff list.
type Resolver struct {
	logger  *slog.Logger
	aliases []aliasRule
}

// NewResolver creates a resolver with the built-in alias table.
// A nil logger falls back to slog.Default.
func NewResolver(logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{logger: logger, aliases: defaultAliases}
}

// Resolve returns a new workbook where the name column of every data row is
// rewritten to the best-matching canonical staff name. Matching is ordered:
// alias table, case-insensitive exact, case-insensitive substring; a name
// that matches nothing is left as its annotation-stripped form. The staff
// list is read-only and the input workbook is never mutated.
func (r *Resolver) Resolve(wb domain.Workbook, staff domain.StaffList) (domain.Workbook, ResolveReport) {
	out := wb.Clone()
	report := ResolveReport{Sheets: make([]SheetResolveReport, 0, len(out.Sheets))}

	for si := range out.Sheets {
		sheet := &out.Sheets[si]
		sheetReport := SheetResolveReport{Name: sheet.Name}

		for ri := 1; ri < len(sheet.Rows); ri++ {
			row := sheet.Rows[ri]
			if len(row) <= domain.NameColumn {
				sheetReport.Outcomes = append(sheetReport.Outcomes, domain.NameEmpty)
				continue
			}
			resolved, outcome := r.resolveCell(row[domain.NameColumn], staff)
			row[domain.NameColumn] = resolved
			sheetReport.Outcomes = append(sheetReport.Outcomes, outcome)
		}
		report.Sheets = append(report.Sheets, sheetReport)
	}

	r.logger.Info("resolved roster names",
		slog.Int("sheet_count", len(out.Sheets)),
		slog.Any("outcomes", report.Counts()))

	return out, report
}

func (r *Resolver) resolveCell(cell domain.Cell, staff domain.StaffList) (domain.Cell, domain.NameOutcome) {
	raw := cell.Display()
	if strings.TrimSpace(raw) == "" {
		return cell, domain.NameEmpty
	}

	cleaned := StripAnnotations(raw)
	if cleaned == "" {
		// Nothing left after stripping; the cell stays as it was.
		return cell, domain.NameEmpty
	}

	lowered := strings.ToLower(cleaned)

	// Alias rules first. The first textual hit ends the alias phase whether
	// or not a staff entry satisfies its substring condition; a miss on the
	// staff side falls through to exact matching.
	for _, rule := range r.aliases {
		if lowered != rule.Trigger {
			continue
		}
		for _, name := range staff {
			if strings.Contains(strings.ToLower(name), rule.TargetSubstring) {
				return domain.TextCell(name), domain.NameMatchedAlias
			}
		}
		break
	}

	for _, name := range staff {
		if strings.EqualFold(name, cleaned) {
			return domain.TextCell(name), domain.NameMatchedExact
		}
	}

	for _, name := range staff {
		if strings.Contains(strings.ToLower(name), lowered) {
			return domain.TextCell(name), domain.NameMatchedSubstring
		}
	}

	return domain.TextCell(cleaned), domain.NameUnmatched
}

// StripAnnotations removes parenthesized annotations and the whitespace
// around them from a roster name, then trims the result.
func StripAnnotations(s string) string {
	return strings.TrimSpace(parenPattern.ReplaceAllString(s, " "))
}
