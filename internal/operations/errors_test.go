package operations

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *OperationError
		want string
	}{
		{
			name: "with step",
			err:  NewValidationError("config", "roster path missing"),
			want: "[validation] config: roster path missing",
		},
		{
			name: "analysis wraps sentinel",
			err:  NewAnalysisError(StepAnalyze, ErrNoMajorityMonth),
			want: "[analysis] analyze_month: no majority month found in roster",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestOperationError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("decode workbook: bad zip")
	err := NewLoadError(StepLoadRoster, cause)

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, NewAnalysisError(StepClean, ErrEmptyAfterCleaning), ErrEmptyAfterCleaning)
	assert.ErrorIs(t, NewAnalysisError(StepAnalyze, ErrNoMajorityMonth), ErrNoMajorityMonth)

	var nilErr *OperationError
	assert.Nil(t, nilErr.Unwrap())
	assert.Equal(t, "unknown operation error", nilErr.Error())
}

func TestSentinelsAreDistinct(t *testing.T) {
	assert.False(t, errors.Is(ErrNoRosterTabs, ErrNoMajorityMonth))
	assert.False(t, errors.Is(ErrNoMajorityMonth, ErrEmptyAfterCleaning))
}
