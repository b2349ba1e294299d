package aim

import (
	"math"
	"testing"
)

func TestPercentile(t *testing.T) {
	values := []float64{30, 10, 0, 20} // unsorted on purpose
	cases := []struct {
		name string
		p    float64
		want float64
	}{
		{"min", 0, 0},
		{"p25", 25, 7.5},
		{"median", 50, 15},
		{"p75", 75, 22.5},
		{"p95", 95, 28.5},
		{"max", 100, 30},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := percentile(values, tc.p); math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("percentile(%v) = %v, want %v", tc.p, got, tc.want)
			}
		})
	}
}

func TestPercentile_Degenerate(t *testing.T) {
	if got := percentile(nil, 50); got != 0 {
		t.Errorf("percentile of empty input = %v, want 0", got)
	}
	if got := percentile([]float64{42}, 95); got != 42 {
		t.Errorf("percentile of singleton = %v, want 42", got)
	}
}

func TestPercentile_DoesNotMutateInput(t *testing.T) {
	values := []float64{3, 1, 2}
	percentile(values, 50)
	if values[0] != 3 || values[1] != 1 || values[2] != 2 {
		t.Errorf("input slice was reordered: %v", values)
	}
}
