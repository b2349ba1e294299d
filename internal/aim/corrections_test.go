package aim

import (
	"math"
	"testing"
)

func mkDirectedMovement(frame int, dx, dy, velocity float64) Movement {
	return Movement{
		FrameStart: frame,
		FrameEnd:   frame + 1,
		DX:         dx,
		DY:         dy,
		Distance:   math.Hypot(dx, dy),
		Velocity:   velocity,
	}
}

func TestDetectReversalCorrections(t *testing.T) {
	cases := []struct {
		name      string
		movements []Movement
		want      int
	}{
		{
			name: "fast rightward then reversal",
			movements: []Movement{
				mkDirectedMovement(0, 100, 0, 4000),
				mkDirectedMovement(1, -20, 0, 400),
			},
			want: 1,
		},
		{
			name: "slow prior movement never qualifies",
			movements: []Movement{
				mkDirectedMovement(0, 100, 0, 1500), // at the velocity bound, not above
				mkDirectedMovement(1, -20, 0, 400),
			},
			want: 0,
		},
		{
			name: "right angle is not a reversal",
			movements: []Movement{
				mkDirectedMovement(0, 100, 0, 4000),
				mkDirectedMovement(1, 0, 20, 400), // exactly 90 degrees off
			},
			want: 0,
		},
		{
			name: "chained reversals each count",
			movements: []Movement{
				mkDirectedMovement(0, 100, 0, 4000),
				mkDirectedMovement(1, -80, 0, 3000),
				mkDirectedMovement(2, 20, 0, 800),
			},
			want: 2,
		},
		{
			name: "first movement has no predecessor",
			movements: []Movement{
				mkDirectedMovement(0, -20, 0, 400),
			},
			want: 0,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			corrections := DetectReversalCorrections(tc.movements)
			if len(corrections) != tc.want {
				t.Errorf("len(corrections) = %d, want %d", len(corrections), tc.want)
			}
		})
	}
}

func TestDetectReversalCorrections_UnwrappedAngles(t *testing.T) {
	// Headings of +170 and -170 degrees differ by only 20 degrees of actual
	// turn, but the raw atan2 difference is 340 degrees and the detector
	// deliberately does not wrap. The pair must count.
	movements := []Movement{
		mkDirectedMovement(0, -100, 17.6, 4000),  // ~ +170 degrees
		mkDirectedMovement(1, -100, -17.6, 3000), // ~ -170 degrees
	}
	corrections := DetectReversalCorrections(movements)
	if len(corrections) != 1 {
		t.Fatalf("len(corrections) = %d, want 1 (raw angle difference spans the branch cut)", len(corrections))
	}
	if corrections[0].Frame != 1 {
		t.Errorf("correction frame = %d, want 1", corrections[0].Frame)
	}
}
