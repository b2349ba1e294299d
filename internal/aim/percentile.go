package aim

import (
	"math"
	"sort"
)

// percentile computes the p-th percentile (0–100) of values using linear
// interpolation between order statistics. Returns 0 for an empty input.
//
// gonum's stat.Quantile interpolates the empirical CDF, which lands on
// different values for small samples; the summary contract pins the
// interpolated-order-statistic definition, so it is computed directly here.
func percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	if p <= 0 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[len(sorted)-1]
	}

	rank := p / 100 * float64(len(sorted)-1)
	lower := int(math.Floor(rank))
	frac := rank - float64(lower)
	if lower+1 >= len(sorted) {
		return sorted[lower]
	}
	return sorted[lower] + frac*(sorted[lower+1]-sorted[lower])
}
