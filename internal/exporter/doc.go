// Package exporter serializes cleaned roster workbooks back to .xlsx files.
//
// Every sheet of the workbook becomes a tab with the same name. The date
// column of each data row is stored as a genuine date value with a fixed
// yyyy-mm-dd display format, re-parsed defensively in case the workbook was
// edited after cleaning; all other cells are written as their native kind.
//
// Example usage:
//
//	e := exporter.NewWorkbookExporter(logger)
//	err := e.Export(workbook, "Processed_Roster_2024-03.xlsx")
package exporter
