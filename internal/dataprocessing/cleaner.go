package dataprocessing

import (
	"log/slog"

	"rostercli/pkg/contracts/domain"
)

// CleanReport records what Clean did with every original data row, so the
// silent row drops stay observable to callers and tests.
type CleanReport struct {
	Sheets []SheetCleanReport `json:"sheets"`
}

// SheetCleanReport is the per-tab portion of a CleanReport.
type SheetCleanReport struct {
	Name string `json:"name"`
	// Removed is true when the sheet was left with only its header row and
	// was dropped from the result entirely.
	Removed bool `json:"removed"`
	// Outcomes has one entry per original data row, in source order.
	Outcomes []domain.RowOutcome `json:"outcomes"`
}

// Counts aggregates outcomes across all sheets.
func (r CleanReport) Counts() map[domain.RowOutcome]int {
	counts := make(map[domain.RowOutcome]int)
	for _, sheet := range r.Sheets {
		for _, o := range sheet.Outcomes {
			counts[o]++
		}
	}
	return counts
}

// Cleaner filters a workbook down to rows belonging to one target month and
// normalizes every surviving row to the fixed 8-cell shape.
type Cleaner struct {
	logger *slog.Logger
}

// NewCleaner creates a cleaner. A nil logger falls back to slog.Default.
func NewCleaner(logger *slog.Logger) *Cleaner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cleaner{logger: logger}
}

// Clean returns a new workbook where each sheet is truncated to at most
// MaxSheetRows rows, data rows outside the target month (or without a
// parseable date) are dropped, surviving rows carry exactly RowWidth cells
// with the date column rewritten to a true calendar date, and sheets left
// with only their header are removed. The input workbook is never mutated.
func (c *Cleaner) Clean(wb domain.Workbook, target domain.MonthKey) (domain.Workbook, CleanReport) {
	var out domain.Workbook
	report := CleanReport{Sheets: make([]SheetCleanReport, 0, len(wb.Sheets))}

	for _, sheet := range wb.Sheets {
		cleaned, sheetReport := c.cleanSheet(sheet, target)
		report.Sheets = append(report.Sheets, sheetReport)
		if !sheetReport.Removed {
			out.Sheets = append(out.Sheets, cleaned)
		}
	}

	c.logger.Info("cleaned workbook",
		slog.String("target_month", string(target)),
		slog.Int("sheets_in", len(wb.Sheets)),
		slog.Int("sheets_out", len(out.Sheets)))

	return out, report
}

func (c *Cleaner) cleanSheet(sheet domain.Sheet, target domain.MonthKey) (domain.Sheet, SheetCleanReport) {
	report := SheetCleanReport{Name: sheet.Name}
	if len(sheet.Rows) == 0 {
		report.Removed = true
		return domain.Sheet{}, report
	}

	report.Outcomes = make([]domain.RowOutcome, 0, sheet.DataRowCount())
	rows := [][]domain.Cell{shapeRow(sheet.Rows[0])}

	for i := 1; i < len(sheet.Rows); i++ {
		// Structural ceiling applies before the month filter.
		if i >= domain.MaxSheetRows {
			report.Outcomes = append(report.Outcomes, domain.RowDroppedOverflow)
			continue
		}

		row := sheet.Rows[i]
		var dateCell domain.Cell
		if len(row) > domain.DateColumn {
			dateCell = row[domain.DateColumn]
		}

		date, ok := ParseDateCell(dateCell)
		if !ok {
			report.Outcomes = append(report.Outcomes, domain.RowDroppedNoDate)
			continue
		}
		if date.Key() != target {
			report.Outcomes = append(report.Outcomes, domain.RowDroppedOffMonth)
			continue
		}

		shaped := shapeRow(row)
		shaped[domain.DateColumn] = domain.DateCell(date)
		rows = append(rows, shaped)
		report.Outcomes = append(report.Outcomes, domain.RowKept)
	}

	if len(rows) == 1 {
		report.Removed = true
		return domain.Sheet{}, report
	}
	return domain.Sheet{Name: sheet.Name, Rows: rows}, report
}

// shapeRow copies a row into exactly RowWidth cells, padding with nulls.
func shapeRow(row []domain.Cell) []domain.Cell {
	shaped := make([]domain.Cell, domain.RowWidth)
	for i := range shaped {
		if i < len(row) {
			shaped[i] = row[i]
		} else {
			shaped[i] = domain.NullCell()
		}
	}
	return shaped
}
