package domain

import (
	"fmt"
	"strings"
)

// Fixed roster layout. The column positions are contract, not configuration:
// roster exports always carry the shift date in column 2 and the staff name
// in column 5 (zero-based), and a cleaned row is exactly 8 cells wide.
const (
	DateColumn = 2
	NameColumn = 5
	RowWidth   = 8

	// MaxSheetRows is the structural ceiling applied before month filtering:
	// header plus up to 71 data rows.
	MaxSheetRows = 72
)

// Sheet is one named tab: an ordered grid of cells.
// Row 0 is always the header row.
type Sheet struct {
	Name string   `json:"name"`
	Rows [][]Cell `json:"rows"`
}

// DataRowCount returns the number of rows excluding the header.
func (s Sheet) DataRowCount() int {
	if len(s.Rows) == 0 {
		return 0
	}
	return len(s.Rows) - 1
}

// Clone returns a deep copy of the sheet.
func (s Sheet) Clone() Sheet {
	rows := make([][]Cell, len(s.Rows))
	for i, row := range s.Rows {
		rows[i] = append([]Cell(nil), row...)
	}
	return Sheet{Name: s.Name, Rows: rows}
}

// Workbook is an ordered collection of sheets keyed by unique tab name.
type Workbook struct {
	Sheets []Sheet `json:"sheets"`
}

// SheetNames returns the tab names in order.
func (w Workbook) SheetNames() []string {
	names := make([]string, len(w.Sheets))
	for i, s := range w.Sheets {
		names[i] = s.Name
	}
	return names
}

// Sheet returns the sheet with the given name, if present.
func (w Workbook) Sheet(name string) (Sheet, bool) {
	for _, s := range w.Sheets {
		if s.Name == name {
			return s, true
		}
	}
	return Sheet{}, false
}

// Clone returns a deep copy of the workbook.
func (w Workbook) Clone() Workbook {
	sheets := make([]Sheet, len(w.Sheets))
	for i, s := range w.Sheets {
		sheets[i] = s.Clone()
	}
	return Workbook{Sheets: sheets}
}

// ApplyEdit returns a copy of the workbook with the cell at
// (sheet, row, col) replaced. The receiver is never mutated; interactive
// review edits go through this instead of touching shared state.
func (w Workbook) ApplyEdit(sheetName string, row, col int, cell Cell) (Workbook, error) {
	out := w.Clone()
	for i := range out.Sheets {
		if out.Sheets[i].Name != sheetName {
			continue
		}
		if row < 0 || row >= len(out.Sheets[i].Rows) {
			return Workbook{}, fmt.Errorf("row %d out of range for sheet %q", row, sheetName)
		}
		if col < 0 || col >= len(out.Sheets[i].Rows[row]) {
			return Workbook{}, fmt.Errorf("column %d out of range for sheet %q row %d", col, sheetName, row)
		}
		out.Sheets[i].Rows[row][col] = cell
		return out, nil
	}
	return Workbook{}, fmt.Errorf("sheet %q not found", sheetName)
}

// StaffList is the ordered canonical staff-name list. Entries are non-empty
// trimmed full names; duplicates are allowed and first match wins.
type StaffList []string

// NewStaffList trims the given names and drops empties, preserving order.
func NewStaffList(names []string) StaffList {
	out := make(StaffList, 0, len(names))
	for _, n := range names {
		if t := strings.TrimSpace(n); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// RowOutcome records what the cleaner did with one data row.
type RowOutcome string

const (
	RowKept            RowOutcome = "kept"
	RowDroppedNoDate   RowOutcome = "dropped_no_date"
	RowDroppedOffMonth RowOutcome = "dropped_other_month"
	RowDroppedOverflow RowOutcome = "dropped_overflow"
)

// NameOutcome records how one roster name cell was resolved.
type NameOutcome string

const (
	NameMatchedExact     NameOutcome = "exact"
	NameMatchedAlias     NameOutcome = "alias"
	NameMatchedSubstring NameOutcome = "substring"
	NameUnmatched        NameOutcome = "unmatched"
	NameEmpty            NameOutcome = "empty"
)
