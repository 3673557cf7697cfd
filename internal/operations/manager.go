package operations

import (
	"context"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"rostercli/internal/dataprocessing"
	"rostercli/internal/exporter"
	"rostercli/internal/files"
	"rostercli/internal/infrastructure"
	"rostercli/pkg/contracts/domain"
)

// Config describes one pipeline run.
type Config struct {
	RosterPath string `validate:"required"`
	StaffPath  string `validate:"required"`
	OutputDir  string `validate:"required"`
}

// Result is the outcome of a completed run.
type Result struct {
	RunID      string                       `json:"run_id"`
	Month      domain.MonthKey              `json:"month"`
	OutputPath string                       `json:"output_path"`
	Workbook   domain.Workbook              `json:"-"`
	Clean      dataprocessing.CleanReport   `json:"clean"`
	Resolve    dataprocessing.ResolveReport `json:"resolve"`
	Steps      []*StepState                 `json:"steps"`
}

// Manager runs the roster cleaning pipeline.
type Manager struct {
	logger   *slog.Logger
	loader   *dataprocessing.Loader
	cleaner  *dataprocessing.Cleaner
	resolver *dataprocessing.Resolver
	exporter *exporter.WorkbookExporter
	validate *validator.Validate
}

// NewManager creates a pipeline manager. A nil logger falls back to
// slog.Default.
func NewManager(logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		logger:   logger,
		loader:   dataprocessing.NewLoader(logger),
		cleaner:  dataprocessing.NewCleaner(logger),
		resolver: dataprocessing.NewResolver(logger),
		exporter: exporter.NewWorkbookExporter(logger),
		validate: validator.New(),
	}
}

// Run executes load -> analyze -> clean -> resolve -> export. All fatal
// conditions stop the pipeline before export; the returned Result carries
// the per-step states and per-row reports for whatever completed.
func (m *Manager) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := m.validate.Struct(cfg); err != nil {
		return nil, NewValidationError("config", err.Error())
	}

	runID := uuid.New().String()
	ctx = infrastructure.WithRunID(ctx, runID)
	logger := m.logger.With(slog.String("run_id", runID))

	res := &Result{RunID: runID}
	logger.InfoContext(ctx, "starting roster pipeline",
		slog.String("roster", cfg.RosterPath),
		slog.String("staff", cfg.StaffPath),
		slog.String("output_dir", cfg.OutputDir))

	// load_roster
	step := res.beginStep(StepLoadRoster)
	wb, err := m.loader.Load(cfg.RosterPath)
	if err != nil {
		opErr := NewLoadError(StepLoadRoster, err)
		step.finish(opErr)
		return res, opErr
	}
	if len(wb.Sheets) == 0 {
		opErr := NewAnalysisError(StepLoadRoster, ErrNoRosterTabs)
		step.finish(opErr)
		return res, opErr
	}
	step.finish(nil)

	// load_staff
	step = res.beginStep(StepLoadStaff)
	staff, err := m.loader.LoadStaffList(cfg.StaffPath)
	if err != nil {
		opErr := NewLoadError(StepLoadStaff, err)
		step.finish(opErr)
		return res, opErr
	}
	if len(staff) == 0 {
		logger.WarnContext(ctx, "staff list is empty, names will pass through unmatched")
	}
	step.finish(nil)

	// analyze_month
	step = res.beginStep(StepAnalyze)
	month, ok := dataprocessing.DominantMonth(wb)
	if !ok {
		opErr := NewAnalysisError(StepAnalyze, ErrNoMajorityMonth)
		step.finish(opErr)
		return res, opErr
	}
	res.Month = month
	step.finish(nil)
	logger.InfoContext(ctx, "dominant month determined", slog.String("month", string(month)))

	// clean
	step = res.beginStep(StepClean)
	cleaned, cleanReport := m.cleaner.Clean(wb, month)
	res.Clean = cleanReport
	if len(cleaned.Sheets) == 0 {
		opErr := NewAnalysisError(StepClean, ErrEmptyAfterCleaning)
		step.finish(opErr)
		return res, opErr
	}
	step.finish(nil)

	// resolve_names
	step = res.beginStep(StepResolve)
	resolved, resolveReport := m.resolver.Resolve(cleaned, staff)
	res.Resolve = resolveReport
	res.Workbook = resolved
	step.finish(nil)

	// export
	step = res.beginStep(StepExport)
	if err := files.EnsureDir(cfg.OutputDir); err != nil {
		opErr := NewExportError(StepExport, err)
		step.finish(opErr)
		return res, opErr
	}
	outPath := files.OutputPath(cfg.OutputDir, month)
	if err := m.exporter.Export(resolved, outPath); err != nil {
		opErr := NewExportError(StepExport, err)
		step.finish(opErr)
		return res, opErr
	}
	res.OutputPath = outPath
	step.finish(nil)

	logger.InfoContext(ctx, "roster pipeline complete",
		slog.String("month", string(month)),
		slog.String("output", outPath),
		slog.Int("sheet_count", len(resolved.Sheets)))
	return res, nil
}

func (r *Result) beginStep(id string) *StepState {
	state := newStepState(id)
	state.start()
	r.Steps = append(r.Steps, state)
	return state
}
