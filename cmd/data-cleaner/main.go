package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"data-cleaner/internal/cleaner"
	"data-cleaner/internal/config"
	"data-cleaner/internal/logger"
	"data-cleaner/internal/model"
	"data-cleaner/internal/report"
	"data-cleaner/internal/ui"
)

const (
	appName    = "Data Cleaner"
	appVersion = "1.0.0"
	appDesc    = "Removes spreadsheet rows with an empty or missing 'text' value"
)

var (
	configPath  string
	inputPath   string
	outputPath  string
	verbose     bool
	showVersion bool
	pause       bool
)

func init() {
	flag.StringVar(&configPath, "config", "config.yaml", "Path to configuration file")
	flag.StringVar(&configPath, "c", "config.yaml", "Path to configuration file (shorthand)")
	flag.StringVar(&inputPath, "input", "", "Override input workbook from config")
	flag.StringVar(&inputPath, "i", "", "Override input workbook (shorthand)")
	flag.StringVar(&outputPath, "output", "", "Override output workbook from config")
	flag.StringVar(&outputPath, "o", "", "Override output workbook (shorthand)")
	flag.BoolVar(&verbose, "verbose", false, "Enable verbose logging (DEBUG level)")
	flag.BoolVar(&verbose, "v", false, "Enable verbose logging (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&pause, "pause", false, "Wait for Enter before exiting")
}

func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("\n❌ PANIC: %v\n", r)
		}
		if pause {
			waitForEnter()
		}
		os.Exit(exitCode)
	}()

	exitCode = run()
}

func run() int {
	flag.Parse()

	if showVersion {
		fmt.Printf("%s v%s\n%s\n", appName, appVersion, appDesc)
		return 0
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		return 1
	}

	if inputPath != "" {
		cfg.Input.Path = inputPath
	}
	if outputPath != "" {
		cfg.Output.Path = outputPath
	}
	if verbose {
		cfg.Log.Verbose = true
	}

	if err := logger.Init(os.Stdout, cfg.Log.File, cfg.Log.Verbose); err != nil {
		fmt.Printf("❌ Failed to initialize logger: %v\n", err)
		return 1
	}
	defer logger.Close()

	if logger.IsVerbose() {
		cfg.Print()
	}
	if path := logger.GetLogFilePath(); path != "" {
		logger.Debug("Writing log file to %s", path)
	}

	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration: %v", err)
		return 1
	}

	logger.InfoClean("--- 🧹 Starting Data Cleaning ---")

	stats, err := runClean(cfg)
	if err != nil {
		reportError(err)
		return 1
	}

	writeReports(stats, cfg, newPipeline(cfg, []ui.Phase{ui.PhaseReporting}))
	return 0
}

func newPipeline(cfg *config.Config, phases []ui.Phase) *ui.Pipeline {
	progress := ui.NewPipeline(phases)
	if !cfg.Progress.Enabled {
		progress.Disable()
	}
	return progress
}

func runClean(cfg *config.Config) (*model.CleanStats, error) {
	return cleaner.Clean(cleaner.Options{
		InputPath:  cfg.Input.Path,
		OutputPath: cfg.Output.Path,
		Progress:   newPipeline(cfg, cleaner.Phases()),
	})
}

// reportError converts a clean failure into the user-facing message
func reportError(err error) {
	switch cleaner.KindOf(err) {
	case cleaner.KindNotFound:
		logger.Error("Error: %v", err)
		logger.InfoClean("   Please check the file path and try again.")
	case cleaner.KindLoad:
		logger.Error("Error loading Excel file: %v", err)
	case cleaner.KindSchema:
		logger.Error("Error: input has no '%s' column: %v", cleaner.TextColumn, err)
	case cleaner.KindSave:
		logger.Error("Error saving cleaned file: %v", err)
	default:
		logger.Error("Cleaning failed: %v", err)
	}
}

// writeReports writes the configured run reports and returns how many failed.
// Failures are warnings only.
func writeReports(stats *model.CleanStats, cfg *config.Config, progress *ui.Pipeline) int {
	exporters := report.GetExporters(cfg.Report.Formats)
	if len(exporters) == 0 {
		return 0
	}

	bar := progress.NextPhase(len(exporters))
	failed := 0
	for _, exp := range exporters {
		if err := exp.Export(stats, cfg); err != nil {
			logger.Warn("Report export failed: %v", err)
			failed++
		}
		bar.Increment()
	}
	progress.Finish()

	logger.Info("📝 Reports written to: '%s'", cfg.GetReportDir())
	return failed
}

// waitForEnter pauses execution and waits for user to press Enter
// This prevents the console window from closing immediately when double-clicked
func waitForEnter() {
	fmt.Println("\n==========================================")
	fmt.Println("Execution Finished. Press 'Enter' to exit.")
	fmt.Println("==========================================")
	bufio.NewReader(os.Stdin).ReadBytes('\n')
}
