package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"rostercli/internal/config"
	"rostercli/internal/files"
	"rostercli/internal/infrastructure"
	"rostercli/internal/operations"
	"rostercli/internal/validation"
	"rostercli/pkg/contracts"
	"rostercli/pkg/contracts/domain"
)

func main() {
	rosterPath := flag.String("in", "", "roster workbook file (.xlsx or .csv)")
	staffPath := flag.String("staff", "", "staff name list file (.xlsx or .csv)")
	outDir := flag.String("out", "", "output directory (defaults to configured paths.output_dir)")
	configPath := flag.String("config", "", "path to config.yaml (default: search working directory)")
	showVersion := flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(contracts.GetFullVersionString())
		return
	}

	cfg, err := config.LoadFrom(*configPath)
	if err != nil {
		slog.Warn("failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	if *staffPath == "" {
		fmt.Fprintln(os.Stderr, "usage: rosterclean [-in <roster file>] -staff <staff list> [-out <dir>]")
		flag.PrintDefaults()
		os.Exit(2)
	}
	if *rosterPath == "" {
		// No explicit input: take the most recent roster in the input dir.
		discovery := files.NewDiscovery(cfg.Paths.InputDir)
		found, err := discovery.FindRosterFiles(".")
		if err != nil || len(found) == 0 {
			fmt.Fprintf(os.Stderr, "no roster files found in %s; pass -in\n", cfg.Paths.InputDir)
			os.Exit(2)
		}
		*rosterPath = found[len(found)-1].Path
		logger.Info("discovered roster file", slog.String("path", *rosterPath))
	}
	if *outDir == "" {
		*outDir = cfg.Paths.OutputDir
	}

	logger.Info("starting roster cleaning",
		slog.String("roster", *rosterPath),
		slog.String("staff", *staffPath),
		slog.String("output_dir", *outDir))

	fileValidator := validation.NewFileValidator(logger)
	if err := fileValidator.ValidateRosterFile(*rosterPath); err != nil {
		logger.Error("invalid roster file", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := fileValidator.ValidateFile(*staffPath); err != nil {
		logger.Error("invalid staff list file", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := fileValidator.ValidateOutputDirectory(*outDir); err != nil {
		logger.Error("invalid output directory", slog.String("error", err.Error()))
		os.Exit(1)
	}

	fmt.Printf("Processing roster: %s\n", filepath.Base(*rosterPath))

	manager := operations.NewManager(logger)
	result, err := manager.Run(context.Background(), operations.Config{
		RosterPath: *rosterPath,
		StaffPath:  *staffPath,
		OutputDir:  *outDir,
	})
	if err != nil {
		switch {
		case errors.Is(err, operations.ErrNoRosterTabs):
			fmt.Println("Nothing to process: the workbook has no roster tabs")
		case errors.Is(err, operations.ErrNoMajorityMonth):
			fmt.Println("Nothing to process: no parseable dates found in the roster")
		case errors.Is(err, operations.ErrEmptyAfterCleaning):
			fmt.Println("Nothing to export: every sheet was empty after cleaning")
		default:
			fmt.Fprintf(os.Stderr, "Processing failed: %v\n", err)
		}
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	cleanCounts := result.Clean.Counts()
	resolveCounts := result.Resolve.Counts()
	fmt.Printf("Dominant month: %s\n", result.Month)
	fmt.Printf("Rows kept: %d (dropped: no date %d, other month %d, overflow %d)\n",
		cleanCounts[domain.RowKept],
		cleanCounts[domain.RowDroppedNoDate],
		cleanCounts[domain.RowDroppedOffMonth],
		cleanCounts[domain.RowDroppedOverflow])
	fmt.Printf("Names matched: exact %d, alias %d, substring %d, unmatched %d\n",
		resolveCounts[domain.NameMatchedExact],
		resolveCounts[domain.NameMatchedAlias],
		resolveCounts[domain.NameMatchedSubstring],
		resolveCounts[domain.NameUnmatched])
	fmt.Printf("Processing complete: %s\n", result.OutputPath)

	logger.Info("roster cleaning finished",
		slog.String("output", result.OutputPath),
		slog.String("month", string(result.Month)))
}
