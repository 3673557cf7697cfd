package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWorkbook() Workbook {
	return Workbook{Sheets: []Sheet{
		{
			Name: "20240301",
			Rows: [][]Cell{
				{TextCell("Ward"), TextCell("Shift"), TextCell("Date")},
				{TextCell("A"), TextCell("AM"), TextCell("2024/03/01")},
			},
		},
	}}
}

func TestWorkbook_ApplyEdit(t *testing.T) {
	wb := testWorkbook()

	edited, err := wb.ApplyEdit("20240301", 1, 1, TextCell("PM"))
	require.NoError(t, err)

	assert.Equal(t, "PM", edited.Sheets[0].Rows[1][1].Text)
	// The original workbook is untouched.
	assert.Equal(t, "AM", wb.Sheets[0].Rows[1][1].Text)
}

func TestWorkbook_ApplyEdit_Errors(t *testing.T) {
	wb := testWorkbook()

	tests := []struct {
		name  string
		sheet string
		row   int
		col   int
	}{
		{name: "unknown sheet", sheet: "20240401", row: 0, col: 0},
		{name: "row out of range", sheet: "20240301", row: 5, col: 0},
		{name: "column out of range", sheet: "20240301", row: 1, col: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := wb.ApplyEdit(tt.sheet, tt.row, tt.col, NullCell())
			assert.Error(t, err)
		})
	}
}

func TestWorkbook_Clone(t *testing.T) {
	wb := testWorkbook()
	clone := wb.Clone()

	clone.Sheets[0].Rows[1][0] = TextCell("B")
	assert.Equal(t, "A", wb.Sheets[0].Rows[1][0].Text)
}

func TestNewStaffList(t *testing.T) {
	staff := NewStaffList([]string{"  Jane Smith ", "", "   ", "Li Wei"})
	assert.Equal(t, StaffList{"Jane Smith", "Li Wei"}, staff)
}

func TestWorkbook_Sheet(t *testing.T) {
	wb := testWorkbook()

	s, ok := wb.Sheet("20240301")
	require.True(t, ok)
	assert.Equal(t, "20240301", s.Name)

	_, ok = wb.Sheet("nope")
	assert.False(t, ok)
}
