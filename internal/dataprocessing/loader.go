package dataprocessing

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/xuri/excelize/v2"

	"rostercli/pkg/contracts/domain"
)

// rosterTabPattern matches tab names that identify roster tabs: exactly
// eight digits after trimming (read elsewhere as yyyymmdd; the loader does
// not validate the digits as a date).
var rosterTabPattern = regexp.MustCompile(`^\d{8}$`)

// Loader decodes raw workbook or CSV bytes into the grid model.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a loader. A nil logger falls back to slog.Default.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// Load reads and decodes the file at path.
func (l *Loader) Load(path string) (domain.Workbook, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Workbook{}, fmt.Errorf("read workbook %s: %w", path, err)
	}
	return l.LoadBytes(data, filepath.Base(path))
}

// LoadBytes decodes raw bytes into a workbook restricted to relevant tabs.
//
// For non-CSV files with at least one roster tab, only roster tabs are
// retained; otherwise all tabs survive, so a single-sheet CSV staff list
// passes through regardless of its tab name. Date-like cells keep their
// displayed string form here; ParseDateCell normalizes them downstream.
func (l *Loader) LoadBytes(data []byte, filename string) (domain.Workbook, error) {
	if strings.EqualFold(filepath.Ext(filename), ".csv") {
		return l.loadCSV(data, filename)
	}
	return l.loadExcel(data, filename)
}

func (l *Loader) loadExcel(data []byte, filename string) (domain.Workbook, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return domain.Workbook{}, fmt.Errorf("decode workbook %s: %w", filename, err)
	}
	defer f.Close()

	tabNames := f.GetSheetList()
	keep := rosterTabs(tabNames)
	if len(keep) == 0 {
		keep = tabNames
	}

	l.logger.Info("loading workbook",
		slog.String("filename", filename),
		slog.Int("tab_count", len(tabNames)),
		slog.Int("retained", len(keep)))

	var wb domain.Workbook
	for _, name := range keep {
		rows, err := f.GetRows(name)
		if err != nil {
			return domain.Workbook{}, fmt.Errorf("read tab %q: %w", name, err)
		}
		wb.Sheets = append(wb.Sheets, domain.Sheet{Name: name, Rows: toCells(rows)})
	}
	return wb, nil
}

func (l *Loader) loadCSV(data []byte, filename string) (domain.Workbook, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return domain.Workbook{}, fmt.Errorf("decode csv %s: %w", filename, err)
		}
		rows = append(rows, record)
	}

	name := strings.TrimSuffix(filename, filepath.Ext(filename))
	l.logger.Info("loading csv",
		slog.String("filename", filename),
		slog.Int("row_count", len(rows)))

	return domain.Workbook{Sheets: []domain.Sheet{{Name: name, Rows: toCells(rows)}}}, nil
}

// LoadStaffList reads the canonical staff-name list from the first column of
// the first sheet of the file at path.
func (l *Loader) LoadStaffList(path string) (domain.StaffList, error) {
	wb, err := l.Load(path)
	if err != nil {
		return nil, err
	}
	if len(wb.Sheets) == 0 {
		return nil, fmt.Errorf("staff list %s has no sheets", path)
	}

	var names []string
	for _, row := range wb.Sheets[0].Rows {
		if len(row) == 0 {
			continue
		}
		names = append(names, row[0].Display())
	}

	staff := domain.NewStaffList(names)
	l.logger.Info("loaded staff list",
		slog.String("path", path),
		slog.Int("name_count", len(staff)))
	return staff, nil
}

// rosterTabs returns the tab names whose trimmed form is exactly 8 digits.
func rosterTabs(names []string) []string {
	var out []string
	for _, name := range names {
		if rosterTabPattern.MatchString(strings.TrimSpace(name)) {
			out = append(out, name)
		}
	}
	return out
}

func toCells(rows [][]string) [][]domain.Cell {
	out := make([][]domain.Cell, len(rows))
	for i, row := range rows {
		cells := make([]domain.Cell, len(row))
		for j, v := range row {
			if strings.TrimSpace(v) == "" {
				cells[j] = domain.NullCell()
			} else {
				cells[j] = domain.TextCell(v)
			}
		}
		out[i] = cells
	}
	return out
}
