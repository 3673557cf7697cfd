package dataprocessing

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"rostercli/pkg/contracts/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// rosterRow builds an 8-wide data row with the given date and name strings.
func rosterRow(date, name string) []domain.Cell {
	row := make([]domain.Cell, domain.RowWidth)
	for i := range row {
		row[i] = domain.NullCell()
	}
	row[0] = domain.TextCell("Ward A")
	if date != "" {
		row[domain.DateColumn] = domain.TextCell(date)
	}
	if name != "" {
		row[domain.NameColumn] = domain.TextCell(name)
	}
	return row
}

// headerRow builds a standard roster header row.
func headerRow() []domain.Cell {
	return []domain.Cell{
		domain.TextCell("Ward"),
		domain.TextCell("Shift"),
		domain.TextCell("Date"),
		domain.TextCell("Start"),
		domain.TextCell("End"),
		domain.TextCell("Name"),
		domain.TextCell("Role"),
		domain.TextCell("Notes"),
	}
}
