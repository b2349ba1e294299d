// Command aim-compare compares analysis results across sensitivity settings.
// It either re-analyses a set of trace files given as sens=path arguments
// (each on its own goroutine) or loads previously persisted runs from a
// sqlite database, then prints the comparison tables and optionally writes
// JSON and HTML chart outputs.
//
//	aim-compare 0.11=exports/tracking_0.11.json 0.23=exports/tracking_0.23.json
//	aim-compare -db runs.db -html comparison.html
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"

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
		dbPath      = flag.String("db", "", "load persisted runs from this sqlite database")
		configPath  = flag.String("config", "", "optional tuning JSON file")
		jsonOut     = flag.String("json", "", "write the comparison to this JSON file")
		htmlOut     = flag.String("html", "", "render comparison charts to this HTML file")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Println("aim-compare", version.String())
		return
	}
	if *dbPath == "" && flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: aim-compare [-db runs.db] [sens=trace.json ...]")
		os.Exit(2)
	}

	if err := run(*dbPath, *configPath, *jsonOut, *htmlOut, flag.Args()); err != nil {
		log.Fatalf("aim-compare: %v", err)
	}
}

func run(dbPath, configPath, jsonOut, htmlOut string, args []string) error {
	var results []aim.TraceResult
	var err error
	if len(args) > 0 {
		results, err = analyseTraces(args, configPath)
	} else {
		results, err = loadStoredRuns(dbPath)
	}
	if err != nil {
		return err
	}
	if len(results) == 0 {
		return fmt.Errorf("nothing to compare")
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Sensitivity < results[j].Sensitivity })
	comparison := &report.Comparison{Results: results}

	comparison.WriteTables(os.Stdout)

	if jsonOut != "" {
		if err := comparison.SaveJSON(jsonOut); err != nil {
			return err
		}
		monitoring.Logf("comparison saved to %s", jsonOut)
	}
	if htmlOut != "" {
		if err := comparison.RenderHTML(htmlOut); err != nil {
			return err
		}
		monitoring.Logf("charts saved to %s", htmlOut)
	}
	return nil
}

// analyseTraces parses sens=path arguments, loads and smooths each trace, and
// analyses them as a batch.
func analyseTraces(args []string, configPath string) ([]aim.TraceResult, error) {
	tuning := config.EmptyTuningConfig()
	if configPath != "" {
		loaded, err := config.LoadTuningConfig(configPath)
		if err != nil {
			return nil, err
		}
		tuning = loaded
	}

	inputs := make([]aim.TraceInput, 0, len(args))
	for _, arg := range args {
		sensStr, path, found := strings.Cut(arg, "=")
		if !found {
			return nil, fmt.Errorf("argument %q is not of the form sensitivity=trace.json", arg)
		}
		sens, err := strconv.ParseFloat(sensStr, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid sensitivity in %q: %w", arg, err)
		}

		positions, err := trace.Load(path)
		if err != nil {
			return nil, err
		}
		if window := tuning.GetSmoothingWindow(); window > 1 {
			positions = trace.Smooth(positions, window)
		}
		inputs = append(inputs, aim.TraceInput{Label: path, Sensitivity: sens, Positions: positions})
	}

	return aim.AnalyzeBatch(inputs, aim.ConfigFromTuning(tuning)), nil
}

// loadStoredRuns reads persisted runs and decodes their stored results.
func loadStoredRuns(dbPath string) ([]aim.TraceResult, error) {
	store, err := sqlite.Open(dbPath)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	runs, err := store.ListRuns()
	if err != nil {
		return nil, err
	}

	results := make([]aim.TraceResult, 0, len(runs))
	for _, run := range runs {
		if run.Status != sqlite.RunStatusComplete || run.SummaryJSON == "" {
			continue
		}
		var result aim.TraceResult
		if err := json.Unmarshal([]byte(run.SummaryJSON), &result); err != nil {
			monitoring.Logf("skipping run %s: undecodable result: %v", run.RunID, err)
			continue
		}
		results = append(results, result)
	}
	return results, nil
}
