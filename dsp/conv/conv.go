// Package conv provides direct time-domain convolution.
//
// Direct convolution is O(N*M) and suits short kernels. For long kernels
// use the FFT-based convolver in the fft package instead.
package conv

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
	"github.com/dac1976/dsp/dsp/core"
)

// Errors returned by convolution functions.
var (
	ErrEmptyInput     = fmt.Errorf("conv: empty input: %w", core.ErrSize)
	ErrEmptyKernel    = fmt.Errorf("conv: empty kernel: %w", core.ErrSize)
	ErrLengthMismatch = fmt.Errorf("conv: buffer length mismatch: %w", core.ErrSize)
)

// Direct performs direct time-domain linear convolution of a and b.
// Returns a new slice of length len(a) + len(b) - 1.
func Direct(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	result := make([]float64, len(a)+len(b)-1)
	if err := DirectTo(result, a, b); err != nil {
		return nil, err
	}
	return result, nil
}

// DirectTo performs direct convolution, writing to a pre-allocated destination.
// dst must have length len(a) + len(b) - 1.
func DirectTo(dst, a, b []float64) error {
	if len(a) == 0 {
		return ErrEmptyInput
	}
	if len(b) == 0 {
		return ErrEmptyKernel
	}
	n := len(a)
	m := len(b)
	if len(dst) != n+m-1 {
		return ErrLengthMismatch
	}

	core.Zero(dst)

	// Vectorized path pays off once the kernel spans a few samples.
	const simdThreshold = 4
	if m >= simdThreshold {
		directToSIMD(dst, a, b, n, m)
	} else {
		directToScalar(dst, a, b, n, m)
	}
	return nil
}

func directToScalar(dst, a, b []float64, n, m int) {
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			dst[i+j] += a[i] * b[j]
		}
	}
}

// directToSIMD vectorizes the inner loop through vecmath block operations.
func directToSIMD(dst, a, b []float64, n, m int) {
	temp := make([]float64, m)

	for i := 0; i < n; i++ {
		// temp = b * a[i], then dst[i:i+m] += temp
		vecmath.ScaleBlock(temp, b, a[i])
		vecmath.AddBlockInPlace(dst[i:i+m], temp)
	}
}
