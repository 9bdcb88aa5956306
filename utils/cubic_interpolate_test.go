// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestCubicInterpolate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		y0, y1, y2, y3 float32
		x              float32
		want           float32
		tolerance      float32
	}{
		{
			name: "x zero returns y1",
			y0:   0, y1: 1, y2: 2, y3: 3,
			x:    0,
			want: 1,
		},
		{
			name: "x one returns y2",
			y0:   0, y1: 1, y2: 2, y3: 3,
			x:    1,
			want: 2,
		},
		{
			name: "linear ramp is reproduced exactly",
			y0:   1, y1: 2, y2: 3, y3: 4,
			x:    0.25,
			want: 2.25,
		},
		{
			name: "linear ramp midpoint",
			y0:   0, y1: 1, y2: 2, y3: 3,
			x:    0.5,
			want: 1.5,
		},
		{
			name: "symmetric zero crossing",
			y0:   -1, y1: -0.5, y2: 0.5, y3: 1,
			x:         0.5,
			want:      0,
			tolerance: 0.001,
		},
		{
			name: "waveform peak stays near neighbors",
			y0:   0.5, y1: 0.9, y2: 0.7, y3: 0.3,
			x:         0.3,
			want:      0.88,
			tolerance: 0.05,
		},
		{
			name: "silence stays silent",
			y0:   0, y1: 0, y2: 0, y3: 0,
			x:    0.5,
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := CubicInterpolate(tt.y0, tt.y1, tt.y2, tt.y3, tt.x)
			diff := float32(math.Abs(float64(got - tt.want)))

			if diff > tt.tolerance {
				t.Errorf("CubicInterpolate() = %v, want %v (diff %v)",
					got, tt.want, diff)
			}
		})
	}
}

// Resampling walks spline segments back to back, so the join points must be
// exact for every input, not just the fixture values above.
func TestCubicInterpolate_SegmentJoins(t *testing.T) {
	t.Parallel()

	for i := range 100 {
		y0, y1, y2, y3 := float32(i), float32(i+1), float32(i+2), float32(i+3)

		if got := CubicInterpolate(y0, y1, y2, y3, 0); got != y1 {
			t.Errorf("x=0: got %v, want y1=%v", got, y1)
		}
		if got := CubicInterpolate(y0, y1, y2, y3, 1); got != y2 {
			t.Errorf("x=1: got %v, want y2=%v", got, y2)
		}
	}
}

func TestCubicInterpolate_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	allocs := testing.AllocsPerRun(1000, func() {
		_ = CubicInterpolate(0.5, 1.0, 0.8, 0.3, 0.5)
	})

	if allocs > 0 {
		t.Errorf("CubicInterpolate allocated %v times, want 0", allocs)
	}
}

func BenchmarkCubicInterpolate(b *testing.B) {
	var result float32

	b.ReportAllocs()

	for i := range b.N {
		x := float32(i%128) / 128.0
		result = CubicInterpolate(0.1, 0.5, 0.3, -0.2, x)
	}

	_ = result
}
