// Package dataprocessing implements the roster cleaning pipeline from raw
// workbook bytes to a name-normalized, single-month workbook.
//
// # Architecture
//
// The package is organized into four stages plus a shared date parser:
//
// 1. Loader: decodes workbook or CSV bytes into the grid model, filtering tabs
// 2. DominantMonth: finds the majority (year, month) across all date cells
// 3. Cleaner: filters rows to the majority month and normalizes row shape
// 4. Resolver: rewrites roster names against the canonical staff list
//
// # Data Flow
//
//	Raw bytes → Loader → Workbook → DominantMonth → Cleaner → Resolver → exporter
//
// Stages run strictly in sequence; each returns a freshly built Workbook and
// never mutates its input. Cleaner and Resolver also return a report with a
// tagged outcome per row or cell so callers can observe what was dropped,
// rewritten, or left alone.
package dataprocessing
