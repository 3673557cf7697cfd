// Package operations orchestrates the roster cleaning pipeline as an
// ordered sequence of steps: load roster, load staff list, analyze the
// dominant month, clean, resolve names, export.
//
// Steps execute strictly in sequence; each step's output is wholly consumed
// before the next begins. Fatal conditions (load failure, no roster tabs,
// no majority month, empty after cleaning) stop the pipeline before export
// and are surfaced as distinct errors, never retried. Every run carries a
// uuid run ID that is attached to all log records.
package operations
