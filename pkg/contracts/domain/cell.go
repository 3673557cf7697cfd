package domain

import (
	"fmt"
	"strconv"
	"time"
)

// CellKind identifies the concrete kind of a Cell. The set is closed:
// every pipeline stage switches over exactly these four cases.
type CellKind int

const (
	CellNull CellKind = iota
	CellText
	CellNumber
	CellDate
)

// Cell is one spreadsheet cell as a closed tagged variant.
// Only the field matching Kind is meaningful.
type Cell struct {
	Kind   CellKind     `json:"kind"`
	Text   string       `json:"text,omitempty"`
	Number float64      `json:"number,omitempty"`
	Date   CalendarDate `json:"date,omitempty"`
}

// NullCell returns the empty cell.
func NullCell() Cell {
	return Cell{Kind: CellNull}
}

// TextCell returns a text cell.
func TextCell(s string) Cell {
	return Cell{Kind: CellText, Text: s}
}

// NumberCell returns a numeric cell.
func NumberCell(f float64) Cell {
	return Cell{Kind: CellNumber, Number: f}
}

// DateCell returns a calendar-date cell.
func DateCell(d CalendarDate) Cell {
	return Cell{Kind: CellDate, Date: d}
}

// IsNull reports whether the cell carries no value.
func (c Cell) IsNull() bool {
	return c.Kind == CellNull
}

// Display returns the cell's display-string representation.
// Dates render as yyyy-mm-dd, matching the export format.
func (c Cell) Display() string {
	switch c.Kind {
	case CellText:
		return c.Text
	case CellNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case CellDate:
		return c.Date.String()
	default:
		return ""
	}
}

// MonthKey is the YYYY-MM grouping key used for dominant-month analysis.
// It is always derived from a CalendarDate, never stored independently.
type MonthKey string

// CalendarDate is a (year, month, day) triple with no time-of-day semantics.
type CalendarDate struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Day   int        `json:"day"`
}

// NewCalendarDate builds a CalendarDate and reports whether the components
// form a real calendar date (month 13 or Feb 29 in a non-leap year do not).
func NewCalendarDate(year int, month time.Month, day int) (CalendarDate, bool) {
	if year < 1 || month < time.January || month > time.December || day < 1 {
		return CalendarDate{}, false
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return CalendarDate{}, false
	}
	return CalendarDate{Year: year, Month: month, Day: day}, true
}

// DateFromTime truncates a time.Time to its calendar date.
func DateFromTime(t time.Time) CalendarDate {
	return CalendarDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Time returns the date at midnight local time.
func (d CalendarDate) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.Local)
}

// Key returns the YYYY-MM grouping key for this date.
func (d CalendarDate) Key() MonthKey {
	return MonthKey(fmt.Sprintf("%04d-%02d", d.Year, int(d.Month)))
}

// SameMonth reports whether two dates share year and month.
// Day is deliberately ignored; month membership is defined on year+month only.
func (d CalendarDate) SameMonth(o CalendarDate) bool {
	return d.Year == o.Year && d.Month == o.Month
}

// String renders the date as yyyy-mm-dd.
func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}
