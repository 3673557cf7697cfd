package dataprocessing

import (
	"rostercli/pkg/contracts/domain"
)

// DominantMonth scans the date column of every data row across all sheets
// and returns the YYYY-MM key with the highest count. Header rows are
// skipped and unparseable cells ignored. When two keys tie, the first key
// to reach the maximum count during row-order iteration wins; ok is false
// when no row anywhere yields a parseable date.
func DominantMonth(wb domain.Workbook) (domain.MonthKey, bool) {
	counts := make(map[domain.MonthKey]int)

	var best domain.MonthKey
	bestCount := 0

	for _, sheet := range wb.Sheets {
		for i, row := range sheet.Rows {
			if i == 0 {
				continue
			}
			if len(row) <= domain.DateColumn {
				continue
			}
			date, ok := ParseDateCell(row[domain.DateColumn])
			if !ok {
				continue
			}
			key := date.Key()
			counts[key]++
			if counts[key] > bestCount {
				bestCount = counts[key]
				best = key
			}
		}
	}

	return best, bestCount > 0
}
