// Command aim-analyse analyses one recorded crosshair trace: it derives
// movement kinematics, classifies flicks/tracking/corrections, prints the
// summary and the sensitivity diagnosis, and optionally persists the run,
// exports JSON, and renders a path plot.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/crosshair-data/aim.report/internal/aim"
	"github.com/crosshair-data/aim.report/internal/aim/storage/sqlite"
	"github.com/crosshair-data/aim.report/internal/config"
	"github.com/crosshair-data/aim.report/internal/monitoring"
	"github.com/crosshair-data/aim.report/internal/report"
	"github.com/crosshair-data/aim.report/internal/trace"
	"github.com/crosshair-data/aim.report/internal/version"
)

func main() {
	var (
		tracePath   = flag.String("trace", "", "path to a tracking JSON file (required)")
		sensitivity = flag.Float64("sens", 0, "sensitivity the footage was recorded at")
		configPath  = flag.String("config", "", "optional tuning JSON file")
		smoothFlag  = flag.Int("smooth", -1, "moving-average window (0 disables, -1 uses tuning default)")
		jsonOut     = flag.String("json", "", "write the full analysis result to this JSON file")
		dbPath      = flag.String("db", "", "persist the run to this sqlite database")
		plotOut     = flag.String("plot", "", "render the crosshair path to this image file (.png/.svg)")
		verbose     = flag.Bool("verbose", false, "enable debug logging")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Println("aim-analyse", version.String())
		return
	}
	if *tracePath == "" {
		flag.Usage()
		os.Exit(2)
	}
	monitoring.SetDebug(*verbose)

	if err := run(*tracePath, *sensitivity, *configPath, *smoothFlag, *jsonOut, *dbPath, *plotOut); err != nil {
		log.Fatalf("aim-analyse: %v", err)
	}
}

func run(tracePath string, sensitivity float64, configPath string, smoothWindow int, jsonOut, dbPath, plotOut string) error {
	tuning := config.EmptyTuningConfig()
	if configPath != "" {
		loaded, err := config.LoadTuningConfig(configPath)
		if err != nil {
			return err
		}
		tuning = loaded
	}

	positions, err := trace.Load(tracePath)
	if err != nil {
		return err
	}
	if err := trace.Validate(positions); err != nil {
		monitoring.Logf("warning: trace is not strictly chronological: %v", err)
	}
	monitoring.Debugf("loaded %d positions from %s", len(positions), tracePath)

	if smoothWindow < 0 {
		smoothWindow = tuning.GetSmoothingWindow()
	}
	if smoothWindow > 1 {
		positions = trace.Smooth(positions, smoothWindow)
		monitoring.Debugf("smoothed trace with window %d", smoothWindow)
	}

	cfg := aim.ConfigFromTuning(tuning)
	result := aim.AnalyzeTrace(aim.TraceInput{
		Label:       tracePath,
		Sensitivity: sensitivity,
		Positions:   positions,
	}, cfg)

	printResult(result)

	if jsonOut != "" {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		if err := os.WriteFile(jsonOut, data, 0o644); err != nil {
			return fmt.Errorf("failed to write result file: %w", err)
		}
		monitoring.Logf("analysis saved to %s", jsonOut)
	}

	if dbPath != "" {
		if err := persistRun(dbPath, tracePath, sensitivity, cfg, result); err != nil {
			return err
		}
	}

	if plotOut != "" {
		title := fmt.Sprintf("Crosshair path (sens %.3f)", sensitivity)
		if err := report.SavePathPlot(positions, title, plotOut); err != nil {
			return err
		}
		monitoring.Logf("path plot saved to %s", plotOut)
	}

	return nil
}

func persistRun(dbPath, tracePath string, sensitivity float64, cfg aim.Config, result aim.TraceResult) error {
	store, err := sqlite.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	run := sqlite.NewAnalysisRun(tracePath, sensitivity)
	if err := run.SetParams(cfg); err != nil {
		return err
	}
	if err := run.SetSummary(result); err != nil {
		return err
	}
	if err := run.SetMetrics(result.Metrics); err != nil {
		return err
	}
	if err := run.SetVerdict(result.Verdict); err != nil {
		return err
	}
	if err := store.SaveRun(run); err != nil {
		return err
	}
	monitoring.Logf("run %s saved to %s", run.RunID, dbPath)
	return nil
}

func printResult(result aim.TraceResult) {
	s := result.Summary
	fmt.Println("=== CROSSHAIR ANALYSIS ===")
	fmt.Printf("Total frames tracked:    %d\n", s.TotalFrames)
	fmt.Printf("Total distance traveled: %.2f px\n", s.TotalDistance)
	fmt.Printf("Average velocity:        %.2f px/s\n", s.AverageVelocity)
	fmt.Printf("Max velocity:            %.2f px/s\n", s.MaxVelocity)
	fmt.Printf("Smoothness score:        %.2f (lower = smoother)\n", s.Smoothness)

	fmt.Println("\n=== FLICKS ===")
	fmt.Printf("Total flicks detected: %d\n", s.Flicks.Count)
	if s.Flicks.Count > 0 {
		fmt.Printf("Average flick distance: %.2f px\n", s.Flicks.AverageDistance)
		fmt.Printf("Average flick velocity: %.2f px/s\n", s.Flicks.AverageVelocity)
		fmt.Printf("Max flick distance:     %.2f px\n", s.Flicks.MaxDistance)
	}
	m := result.Metrics
	fmt.Printf("By tier: %d small / %d medium / %d large\n",
		m.SmallFlickCount, m.MediumFlickCount, m.LargeFlickCount)

	fmt.Println("\n=== TRACKING ===")
	fmt.Printf("Tracking segments:       %d\n", s.TrackingSegmentCount)
	fmt.Printf("Total tracking distance: %.2f px\n", s.TotalTrackingDistance)

	d := result.Distribution
	fmt.Println("\n=== VELOCITY DISTRIBUTION (px/s) ===")
	fmt.Printf("min %.2f / 25th %.2f / median %.2f / 75th %.2f / 95th %.2f / max %.2f\n",
		d.Min, d.P25, d.Median, d.P75, d.P95, d.Max)

	v := result.Verdict
	fmt.Println("\n=== SENSITIVITY DIAGNOSIS ===")
	for _, warning := range v.Warnings {
		fmt.Printf("  warning: %s\n", warning)
	}
	for _, strength := range v.Strengths {
		fmt.Printf("  strength: %s\n", strength)
	}
	switch v.Direction {
	case aim.SensTooLow:
		fmt.Printf("Sensitivity %.3f appears TOO LOW; try %.3f - %.3f\n",
			result.Sensitivity, v.SuggestedMin, v.SuggestedMax)
	case aim.SensTooHigh:
		fmt.Printf("Sensitivity %.3f appears TOO HIGH; try %.3f - %.3f\n",
			result.Sensitivity, v.SuggestedMin, v.SuggestedMax)
	default:
		fmt.Printf("Sensitivity %.3f seems REASONABLE; test slightly higher/lower to fine-tune\n",
			result.Sensitivity)
	}
	for _, reason := range v.Reasons {
		fmt.Printf("  - %s\n", reason)
	}
}
