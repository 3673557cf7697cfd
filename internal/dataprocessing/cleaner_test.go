package dataprocessing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rostercli/pkg/contracts/domain"
)

func TestCleaner_TruncatesBeforeMonthFilter(t *testing.T) {
	rows := [][]domain.Cell{headerRow()}
	for i := 0; i < 80; i++ {
		rows = append(rows, rosterRow(fmt.Sprintf("2024/03/%02d", i%28+1), ""))
	}
	wb := domain.Workbook{Sheets: []domain.Sheet{{Name: "20240301", Rows: rows}}}

	cleaner := NewCleaner(nil)
	out, report := cleaner.Clean(wb, "2024-03")

	require.Len(t, out.Sheets, 1)
	// Header + at most 71 data rows regardless of how many match.
	assert.Len(t, out.Sheets[0].Rows, domain.MaxSheetRows)

	counts := report.Counts()
	assert.Equal(t, 71, counts[domain.RowKept])
	assert.Equal(t, 9, counts[domain.RowDroppedOverflow])
	assert.Len(t, report.Sheets[0].Outcomes, 80)
}

func TestCleaner_FiltersToTargetMonth(t *testing.T) {
	wb := domain.Workbook{Sheets: []domain.Sheet{{Name: "20240301", Rows: [][]domain.Cell{
		headerRow(),
		rosterRow("2024/03/01", "Jane Smith"),
		rosterRow("2024/04/01", "Li Wei"),
		rosterRow("not a date", "Clara"),
		rosterRow("", ""),
	}}}}

	cleaner := NewCleaner(nil)
	out, report := cleaner.Clean(wb, "2024-03")

	require.Len(t, out.Sheets, 1)
	assert.Len(t, out.Sheets[0].Rows, 2)

	assert.Equal(t, []domain.RowOutcome{
		domain.RowKept,
		domain.RowDroppedOffMonth,
		domain.RowDroppedNoDate,
		domain.RowDroppedNoDate,
	}, report.Sheets[0].Outcomes)
}

func TestCleaner_DateCellRewrittenToCalendarDate(t *testing.T) {
	wb := domain.Workbook{Sheets: []domain.Sheet{{Name: "20240301", Rows: [][]domain.Cell{
		headerRow(),
		rosterRow("2024/03/05", "Jane Smith"),
	}}}}

	cleaner := NewCleaner(nil)
	out, _ := cleaner.Clean(wb, "2024-03")

	cell := out.Sheets[0].Rows[1][domain.DateColumn]
	require.Equal(t, domain.CellDate, cell.Kind)
	assert.Equal(t, "2024-03-05", cell.Date.String())
}

func TestCleaner_RowsShapedToFixedWidth(t *testing.T) {
	short := []domain.Cell{
		domain.TextCell("Ward A"),
		domain.TextCell("AM"),
		domain.TextCell("2024/03/01"),
	}
	long := rosterRow("2024/03/02", "Jane Smith")
	long = append(long, domain.TextCell("spillover"), domain.TextCell("more"))

	wb := domain.Workbook{Sheets: []domain.Sheet{{Name: "20240301", Rows: [][]domain.Cell{
		{domain.TextCell("Ward"), domain.TextCell("Shift")},
		short,
		long,
	}}}}

	cleaner := NewCleaner(nil)
	out, _ := cleaner.Clean(wb, "2024-03")

	require.Len(t, out.Sheets, 1)
	for _, row := range out.Sheets[0].Rows {
		assert.Len(t, row, domain.RowWidth)
	}

	// Short rows are padded with nulls.
	padded := out.Sheets[0].Rows[1]
	assert.Equal(t, domain.CellNull, padded[domain.NameColumn].Kind)
	// Spillover columns are cut.
	assert.Equal(t, "Jane Smith", out.Sheets[0].Rows[2][domain.NameColumn].Text)
}

func TestCleaner_DropsSheetWithNoSurvivingRows(t *testing.T) {
	wb := domain.Workbook{Sheets: []domain.Sheet{
		{Name: "20240301", Rows: [][]domain.Cell{
			headerRow(),
			rosterRow("2024/03/01", ""),
		}},
		{Name: "20240401", Rows: [][]domain.Cell{
			headerRow(),
			rosterRow("2024/04/01", ""),
		}},
		{Name: "20240501", Rows: [][]domain.Cell{headerRow()}},
	}}

	cleaner := NewCleaner(nil)
	out, report := cleaner.Clean(wb, "2024-03")

	assert.Equal(t, []string{"20240301"}, out.SheetNames())
	assert.False(t, report.Sheets[0].Removed)
	assert.True(t, report.Sheets[1].Removed)
	assert.True(t, report.Sheets[2].Removed)
}

func TestCleaner_InputNotMutated(t *testing.T) {
	wb := domain.Workbook{Sheets: []domain.Sheet{{Name: "20240301", Rows: [][]domain.Cell{
		headerRow(),
		rosterRow("2024/03/05", "Jane Smith"),
	}}}}

	cleaner := NewCleaner(nil)
	_, _ = cleaner.Clean(wb, "2024-03")

	// The source date cell is still the original text representation.
	assert.Equal(t, domain.CellText, wb.Sheets[0].Rows[1][domain.DateColumn].Kind)
}
