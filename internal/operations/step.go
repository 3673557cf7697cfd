package operations

import (
	"time"
)

// StepStatus is the lifecycle state of a pipeline step.
type StepStatus string

const (
	StepStatusPending   StepStatus = "pending"
	StepStatusActive    StepStatus = "active"
	StepStatusCompleted StepStatus = "completed"
	StepStatusFailed    StepStatus = "failed"
)

// Step identifiers, in execution order.
const (
	StepLoadRoster = "load_roster"
	StepLoadStaff  = "load_staff"
	StepAnalyze    = "analyze_month"
	StepClean      = "clean"
	StepResolve    = "resolve_names"
	StepExport     = "export"
)

// StepState records the runtime state of a single step in a run.
type StepState struct {
	ID        string     `json:"id"`
	Status    StepStatus `json:"status"`
	StartTime *time.Time `json:"start_time,omitempty"`
	EndTime   *time.Time `json:"end_time,omitempty"`
	Error     error      `json:"-"`
}

func newStepState(id string) *StepState {
	return &StepState{ID: id, Status: StepStatusPending}
}

func (s *StepState) start() {
	now := time.Now()
	s.Status = StepStatusActive
	s.StartTime = &now
}

func (s *StepState) finish(err error) {
	now := time.Now()
	s.EndTime = &now
	if err != nil {
		s.Status = StepStatusFailed
		s.Error = err
		return
	}
	s.Status = StepStatusCompleted
}
