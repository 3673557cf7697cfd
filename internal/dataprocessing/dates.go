package dataprocessing

import (
	"strconv"
	"strings"
	"time"

	"rostercli/pkg/contracts/domain"
)

// fallbackLayouts are tried, in order, when a date string is not a plain
// y/m/d triple. Roster exports are known to use yyyy/mm/dd or yyyy-mm-dd;
// these cover the irregular stragglers.
var fallbackLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
}

// ParseDateCell normalizes an arbitrary cell to a calendar date.
// It never fails hard: anything unrecognizable reports ok=false.
func ParseDateCell(cell domain.Cell) (domain.CalendarDate, bool) {
	switch cell.Kind {
	case domain.CellDate:
		return cell.Date, true
	case domain.CellNull:
		return domain.CalendarDate{}, false
	default:
		return ParseDateString(cell.Display())
	}
}

// ParseDateString parses a textual date representation.
//
// The explicit year/month/day split below avoids a generic parser's
// locale-dependent month/day-order ambiguity: component 1 is always the
// year, 2 the month, 3 the day. Only when the split fails or yields an
// impossible date (month 13, Feb 29 outside a leap year) are the general
// layouts tried.
func ParseDateString(s string) (domain.CalendarDate, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return domain.CalendarDate{}, false
	}

	if year, month, day, ok := splitDateComponents(s); ok {
		if date, valid := domain.NewCalendarDate(year, time.Month(month), day); valid {
			return date, true
		}
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return domain.DateFromTime(t), true
		}
	}

	return domain.CalendarDate{}, false
}

// splitDateComponents splits s on "/" or "-" into exactly three numeric
// components interpreted as year, month, day.
func splitDateComponents(s string) (year, month, day int, ok bool) {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '/' || r == '-'
	})
	if len(parts) != 3 {
		return 0, 0, 0, false
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return 0, 0, 0, false
		}
		nums[i] = n
	}
	return nums[0], nums[1], nums[2], true
}
