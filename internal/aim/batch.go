package aim

import "sync"

// TraceInput is one recording in a batch, tagged with the sensitivity it was
// recorded at.
type TraceInput struct {
	Label       string
	Sensitivity float64
	Positions   []Position
}

// TraceResult is the finished analysis for one batch input. It is the
// JSON-serialisable record the run store and the comparison report exchange.
type TraceResult struct {
	Label        string                  `json:"label"`
	Sensitivity  float64                 `json:"sensitivity"`
	Summary      Summary                 `json:"summary"`
	Distribution VelocityDistribution    `json:"velocities"`
	Tiers        map[FlickTier]TierStats `json:"flickAnalysis"`
	Metrics      DiagnosticMetrics       `json:"diagnostics"`
	Verdict      Verdict                 `json:"verdict"`
}

// AnalyzeTrace runs the full analysis for a single trace.
func AnalyzeTrace(input TraceInput, config Config) TraceResult {
	analyzer := NewAnalyzer(input.Positions, config)
	metrics := analyzer.DiagnosticMetrics()
	return TraceResult{
		Label:        input.Label,
		Sensitivity:  input.Sensitivity,
		Summary:      analyzer.Summary(),
		Distribution: analyzer.VelocityDistribution(),
		Tiers:        analyzer.TierAnalysis(),
		Metrics:      metrics,
		Verdict:      Diagnose(metrics, input.Sensitivity),
	}
}

// AnalyzeBatch analyses each trace on its own goroutine. The traces share no
// state, so no coordination beyond the final join is needed. Results keep the
// input order.
func AnalyzeBatch(inputs []TraceInput, config Config) []TraceResult {
	results := make([]TraceResult, len(inputs))

	var wg sync.WaitGroup
	for i, input := range inputs {
		wg.Add(1)
		go func(i int, input TraceInput) {
			defer wg.Done()
			results[i] = AnalyzeTrace(input, config)
		}(i, input)
	}
	wg.Wait()

	return results
}
