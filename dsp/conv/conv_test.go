package conv

import (
	"errors"
	"math"
	"testing"

	"github.com/dac1976/dsp/dsp/core"
)

func TestDirect(t *testing.T) {
	tests := []struct {
		name string
		a    []float64
		b    []float64
		want []float64
	}{
		{
			name: "impulse identity",
			a:    []float64{1, 2, 3, 4},
			b:    []float64{1},
			want: []float64{1, 2, 3, 4},
		},
		{
			name: "shifted impulse",
			a:    []float64{1, 2, 3},
			b:    []float64{0, 1},
			want: []float64{0, 1, 2, 3},
		},
		{
			name: "boxcar with ramp",
			a:    []float64{1, 2, 3},
			b:    []float64{1, 1, 1},
			want: []float64{1, 3, 6, 5, 3},
		},
		{
			name: "two boxcars",
			a:    []float64{1, 1, 1, 1, 1, 1},
			b:    []float64{1, 1, 1, 1, 1, 1},
			want: []float64{1, 2, 3, 4, 5, 6, 5, 4, 3, 2, 1},
		},
		{
			name: "kernel longer than signal",
			a:    []float64{1, -1},
			b:    []float64{1, 0, 0, 1},
			want: []float64{1, -1, 0, 1, -1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Direct(tt.a, tt.b)
			if err != nil {
				t.Fatalf("Direct() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Direct() length = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if math.Abs(got[i]-tt.want[i]) > 1e-12 {
					t.Errorf("Direct()[%d] = %g, want %g", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDirectCommutative(t *testing.T) {
	a := []float64{0.5, -1.25, 2, 0.75, -0.5}
	b := []float64{1, 0.25, -0.125}

	ab, err := Direct(a, b)
	if err != nil {
		t.Fatalf("Direct(a, b) error = %v", err)
	}
	ba, err := Direct(b, a)
	if err != nil {
		t.Fatalf("Direct(b, a) error = %v", err)
	}

	for i := range ab {
		if math.Abs(ab[i]-ba[i]) > 1e-12 {
			t.Errorf("result[%d]: a*b = %g, b*a = %g", i, ab[i], ba[i])
		}
	}
}

func TestDirectErrors(t *testing.T) {
	if _, err := Direct(nil, []float64{1}); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Direct(nil, b) error = %v, want ErrEmptyInput", err)
	}
	if _, err := Direct([]float64{1}, nil); !errors.Is(err, ErrEmptyKernel) {
		t.Errorf("Direct(a, nil) error = %v, want ErrEmptyKernel", err)
	}
	if _, err := Direct(nil, []float64{1}); !errors.Is(err, core.ErrSize) {
		t.Errorf("empty input should wrap core.ErrSize, got %v", err)
	}
}

func TestDirectTo(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{1, 1}

	dst := make([]float64, len(a)+len(b)-1)
	if err := DirectTo(dst, a, b); err != nil {
		t.Fatalf("DirectTo() error = %v", err)
	}
	want := []float64{1, 3, 5, 3}
	for i := range dst {
		if math.Abs(dst[i]-want[i]) > 1e-12 {
			t.Errorf("DirectTo()[%d] = %g, want %g", i, dst[i], want[i])
		}
	}

	if err := DirectTo(make([]float64, 3), a, b); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("DirectTo() with short dst error = %v, want ErrLengthMismatch", err)
	}
}

func TestDirectSIMDMatchesScalar(t *testing.T) {
	// Exercise both inner-loop paths on the same data.
	a := make([]float64, 64)
	b := make([]float64, 16)
	for i := range a {
		a[i] = math.Sin(float64(i) * 0.37)
	}
	for j := range b {
		b[j] = math.Cos(float64(j) * 0.91)
	}

	n, m := len(a), len(b)
	fast := make([]float64, n+m-1)
	slow := make([]float64, n+m-1)
	directToSIMD(fast, a, b, n, m)
	directToScalar(slow, a, b, n, m)

	for i := range fast {
		if math.Abs(fast[i]-slow[i]) > 1e-12 {
			t.Errorf("path mismatch at %d: simd = %g, scalar = %g", i, fast[i], slow[i])
		}
	}
}
