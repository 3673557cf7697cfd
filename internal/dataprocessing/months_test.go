package dataprocessing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rostercli/pkg/contracts/domain"
)

func TestDominantMonth(t *testing.T) {
	var rows [][]domain.Cell
	rows = append(rows, headerRow())
	for i := 0; i < 10; i++ {
		rows = append(rows, rosterRow(fmt.Sprintf("2024/03/%02d", i+1), ""))
	}
	for i := 0; i < 3; i++ {
		rows = append(rows, rosterRow(fmt.Sprintf("2024/04/%02d", i+1), ""))
	}
	wb := domain.Workbook{Sheets: []domain.Sheet{{Name: "20240301", Rows: rows}}}

	key, ok := DominantMonth(wb)
	require.True(t, ok)
	assert.Equal(t, domain.MonthKey("2024-03"), key)
}

func TestDominantMonth_AcrossSheets(t *testing.T) {
	wb := domain.Workbook{Sheets: []domain.Sheet{
		{Name: "20240301", Rows: [][]domain.Cell{
			headerRow(),
			rosterRow("2024/03/01", ""),
			rosterRow("2024/04/01", ""),
		}},
		{Name: "20240401", Rows: [][]domain.Cell{
			headerRow(),
			rosterRow("2024/03/02", ""),
		}},
	}}

	key, ok := DominantMonth(wb)
	require.True(t, ok)
	assert.Equal(t, domain.MonthKey("2024-03"), key)
}

func TestDominantMonth_NoParseableDates(t *testing.T) {
	wb := domain.Workbook{Sheets: []domain.Sheet{
		{Name: "20240301", Rows: [][]domain.Cell{
			headerRow(),
			rosterRow("AM", ""),
			rosterRow("", ""),
			{domain.TextCell("short row")},
		}},
	}}

	_, ok := DominantMonth(wb)
	assert.False(t, ok)
}

func TestDominantMonth_HeaderRowSkipped(t *testing.T) {
	header := headerRow()
	header[domain.DateColumn] = domain.TextCell("2030/01/01")
	wb := domain.Workbook{Sheets: []domain.Sheet{
		{Name: "20240301", Rows: [][]domain.Cell{
			header,
			rosterRow("2024/03/01", ""),
		}},
	}}

	key, ok := DominantMonth(wb)
	require.True(t, ok)
	assert.Equal(t, domain.MonthKey("2024-03"), key)
}

func TestDominantMonth_TieBreakEarliestToReachMaximum(t *testing.T) {
	// 2024-04 reaches count 1 first, but 2024-03 is first to reach the
	// final maximum of 2, so it wins the tie.
	wb := domain.Workbook{Sheets: []domain.Sheet{
		{Name: "20240301", Rows: [][]domain.Cell{
			headerRow(),
			rosterRow("2024/04/01", ""),
			rosterRow("2024/03/01", ""),
			rosterRow("2024/03/02", ""),
			rosterRow("2024/04/02", ""),
		}},
	}}

	key, ok := DominantMonth(wb)
	require.True(t, ok)
	assert.Equal(t, domain.MonthKey("2024-03"), key)
}
