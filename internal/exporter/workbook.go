package exporter

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"rostercli/internal/dataprocessing"
	"rostercli/pkg/contracts/domain"
)

// dateNumberFormat is the display format applied to every exported date
// cell. It matches what ParseDateString accepts, so an exported workbook
// round-trips through the loader.
const dateNumberFormat = "yyyy-mm-dd"

// WorkbookExporter writes cleaned workbooks to .xlsx.
type WorkbookExporter struct {
	logger *slog.Logger
}

// NewWorkbookExporter creates an exporter. A nil logger falls back to
// slog.Default.
func NewWorkbookExporter(logger *slog.Logger) *WorkbookExporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &WorkbookExporter{logger: logger}
}

// Export writes the workbook to path.
func (e *WorkbookExporter) Export(wb domain.Workbook, path string) error {
	f, err := e.build(wb)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}

	e.logger.Info("exported workbook",
		slog.String("path", path),
		slog.Int("sheet_count", len(wb.Sheets)))
	return nil
}

// WriteTo writes the workbook's .xlsx byte stream to w.
func (e *WorkbookExporter) WriteTo(wb domain.Workbook, w io.Writer) error {
	f, err := e.build(wb)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func (e *WorkbookExporter) build(wb domain.Workbook) (*excelize.File, error) {
	f := excelize.NewFile()

	numFmt := dateNumberFormat
	dateStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create date style: %w", err)
	}

	for i, sheet := range wb.Sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sheet.Name); err != nil {
				f.Close()
				return nil, fmt.Errorf("rename sheet %q: %w", sheet.Name, err)
			}
		} else {
			if _, err := f.NewSheet(sheet.Name); err != nil {
				f.Close()
				return nil, fmt.Errorf("create sheet %q: %w", sheet.Name, err)
			}
		}
		if err := e.writeSheet(f, sheet, dateStyle); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

func (e *WorkbookExporter) writeSheet(f *excelize.File, sheet domain.Sheet, dateStyle int) error {
	for ri, row := range sheet.Rows {
		for ci, cell := range row {
			axis, err := excelize.CoordinatesToCellName(ci+1, ri+1)
			if err != nil {
				return fmt.Errorf("cell coordinates (%d,%d): %w", ci, ri, err)
			}

			// The date column of data rows is stored as a true date value.
			// Re-parse in case the cell was edited back to text after
			// cleaning; anything unparseable falls through as-is.
			if ri > 0 && ci == domain.DateColumn {
				if date, ok := dataprocessing.ParseDateCell(cell); ok {
					if err := f.SetCellValue(sheet.Name, axis, date.Time()); err != nil {
						return fmt.Errorf("set date cell %s!%s: %w", sheet.Name, axis, err)
					}
					if err := f.SetCellStyle(sheet.Name, axis, axis, dateStyle); err != nil {
						return fmt.Errorf("style date cell %s!%s: %w", sheet.Name, axis, err)
					}
					continue
				}
			}

			switch cell.Kind {
			case domain.CellNull:
				// Blank cells stay blank.
			case domain.CellText:
				if err := f.SetCellStr(sheet.Name, axis, cell.Text); err != nil {
					return fmt.Errorf("set cell %s!%s: %w", sheet.Name, axis, err)
				}
			case domain.CellNumber:
				if err := f.SetCellValue(sheet.Name, axis, cell.Number); err != nil {
					return fmt.Errorf("set cell %s!%s: %w", sheet.Name, axis, err)
				}
			case domain.CellDate:
				if err := f.SetCellValue(sheet.Name, axis, cell.Date.Time()); err != nil {
					return fmt.Errorf("set cell %s!%s: %w", sheet.Name, axis, err)
				}
				if err := f.SetCellStyle(sheet.Name, axis, axis, dateStyle); err != nil {
					return fmt.Errorf("style cell %s!%s: %w", sheet.Name, axis, err)
				}
			}
		}
	}
	return nil
}
