package resample

import (
	"errors"
	"testing"

	"github.com/dac1976/dsp/dsp/core"
	"github.com/dac1976/dsp/internal/testutil"
)

func TestInterpolate(t *testing.T) {
	tests := []struct {
		name string
		src  []float64
		dst  int
		want []float64
	}{
		{"same length copies", []float64{1, 2, 3}, 3, []float64{1, 2, 3}},
		{"single source fills", []float64{4}, 3, []float64{4, 4, 4}},
		{"upsample ramp", []float64{0, 1, 2, 3}, 7, []float64{0, 0.5, 1, 1.5, 2, 2.5, 3}},
		{"downsample ramp", []float64{0, 1, 2, 3, 4}, 3, []float64{0, 2, 4}},
		{"two points", []float64{0, 10}, 5, []float64{0, 2.5, 5, 7.5, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]float64, tt.dst)
			if err := Interpolate(dst, tt.src); err != nil {
				t.Fatalf("Interpolate: %v", err)
			}
			testutil.RequireSliceNearlyEqual(t, dst, tt.want, 1e-12)
		})
	}
}

func TestInterpolatePinsEndpoints(t *testing.T) {
	src := testutil.DeterministicNoise(3, 1, 17)
	dst := make([]float64, 41)
	if err := Interpolate(dst, src); err != nil {
		t.Fatalf("Interpolate: %v", err)
	}
	if dst[0] != src[0] {
		t.Errorf("dst[0] = %g, want %g", dst[0], src[0])
	}
	if dst[len(dst)-1] != src[len(src)-1] {
		t.Errorf("dst[last] = %g, want %g", dst[len(dst)-1], src[len(src)-1])
	}
}

func TestInterpolateValidation(t *testing.T) {
	if err := Interpolate(nil, []float64{1}); !errors.Is(err, ErrEmptySlice) {
		t.Errorf("empty dst = %v, want ErrEmptySlice", err)
	}
	if err := Interpolate([]float64{0}, nil); !errors.Is(err, ErrEmptySlice) {
		t.Errorf("empty src = %v, want ErrEmptySlice", err)
	}
	if err := Interpolate(nil, nil); !errors.Is(err, core.ErrSize) {
		t.Errorf("error does not wrap core.ErrSize")
	}
}
