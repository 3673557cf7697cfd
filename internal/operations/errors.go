package operations

import (
	"errors"
	"fmt"
)

// ErrorType classifies an operation error.
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeLoad       ErrorType = "load"
	ErrorTypeAnalysis   ErrorType = "analysis"
	ErrorTypeExecution  ErrorType = "execution"
	ErrorTypeExport     ErrorType = "export"
)

// Terminal pipeline conditions. These reflect structurally invalid input
// rather than transient faults, so none of them is retried.
var (
	// ErrNoRosterTabs: zero sheets survived the loader's tab filter.
	ErrNoRosterTabs = errors.New("no roster tabs to process")
	// ErrNoMajorityMonth: no row anywhere yielded a parseable date.
	ErrNoMajorityMonth = errors.New("no majority month found in roster")
	// ErrEmptyAfterCleaning: every sheet was dropped by the cleaner.
	ErrEmptyAfterCleaning = errors.New("roster empty after cleaning")
)

// OperationError is a step-scoped pipeline error.
type OperationError struct {
	Type    ErrorType `json:"type"`
	Step    string    `json:"step,omitempty"`
	Message string    `json:"message"`
	Cause   error     `json:"-"`
}

// Error implements the error interface.
func (e *OperationError) Error() string {
	if e == nil {
		return "unknown operation error"
	}
	if e.Step != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Type, e.Step, e.Message)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error.
func (e *OperationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// NewValidationError creates a validation error for the given step.
func NewValidationError(step, message string) *OperationError {
	return &OperationError{Type: ErrorTypeValidation, Step: step, Message: message}
}

// NewLoadError wraps a workbook decode or read failure.
func NewLoadError(step string, cause error) *OperationError {
	return &OperationError{Type: ErrorTypeLoad, Step: step, Message: "load failed", Cause: cause}
}

// NewAnalysisError wraps a terminal analysis condition.
func NewAnalysisError(step string, cause error) *OperationError {
	return &OperationError{Type: ErrorTypeAnalysis, Step: step, Message: cause.Error(), Cause: cause}
}

// NewExecutionError wraps a step execution failure.
func NewExecutionError(step string, cause error) *OperationError {
	return &OperationError{Type: ErrorTypeExecution, Step: step, Message: "step execution failed", Cause: cause}
}

// NewExportError wraps a workbook export failure.
func NewExportError(step string, cause error) *OperationError {
	return &OperationError{Type: ErrorTypeExport, Step: step, Message: "export failed", Cause: cause}
}
