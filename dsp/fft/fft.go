package fft

import (
	"fmt"
	"math"
	"math/bits"
	"math/cmplx"

	"github.com/dac1976/dsp/dsp/core"
)

// Errors returned by the transform functions.
var (
	ErrNotPowerOfTwo = fmt.Errorf("fft: length not a power of two: %w", core.ErrSize)
	ErrEmptyInput    = fmt.Errorf("fft: empty input: %w", core.ErrSize)
)

// Forward performs an in-place forward FFT on data.
// The result is unnormalized; call Normalize to divide by N.
// The length of data must be a power of two.
func Forward(data []complex128) error {
	if len(data) == 0 {
		return ErrEmptyInput
	}
	if !core.IsPowerOfTwo(len(data)) {
		return fmt.Errorf("%w (length %d)", ErrNotPowerOfTwo, len(data))
	}

	cooleyTukey(data)
	return nil
}

// Inverse performs an in-place inverse FFT on a denormalized spectrum.
// The output is scaled by 1/N, so Forward followed by Inverse reproduces
// the input. The length of data must be a power of two.
func Inverse(data []complex128) error {
	if len(data) == 0 {
		return ErrEmptyInput
	}
	if !core.IsPowerOfTwo(len(data)) {
		return fmt.Errorf("%w (length %d)", ErrNotPowerOfTwo, len(data))
	}

	conjugate(data)
	cooleyTukey(data)
	conjugate(data)
	Normalize(data)
	return nil
}

// Normalize scales every bin by 1/N in-place.
func Normalize(data []complex128) {
	n := complex(float64(len(data)), 0)
	for i := range data {
		data[i] /= n
	}
}

// Denormalize scales every bin by N in-place, undoing Normalize.
func Denormalize(data []complex128) {
	n := complex(float64(len(data)), 0)
	for i := range data {
		data[i] *= n
	}
}

func conjugate(data []complex128) {
	for i := range data {
		data[i] = cmplx.Conj(data[i])
	}
}

// cooleyTukey computes the DFT in-place. The butterfly pass halves the
// working stride from N down to 1, squaring the stage twiddle factor each
// time, then a bit-reversal permutation puts the bins in natural order.
func cooleyTukey(data []complex128) {
	n := uint32(len(data))
	k := n
	thetaT := math.Pi / float64(n)
	phiT := complex(math.Cos(thetaT), math.Sin(thetaT))

	for k > 1 {
		stride := k
		k >>= 1
		phiT *= phiT
		twiddle := complex(1, 0)

		for l := uint32(0); l < k; l++ {
			for a := l; a < n; a += stride {
				b := a + k
				t := data[a] - data[b]
				data[a] += data[b]
				data[b] = t * twiddle
			}
			twiddle *= phiT
		}
	}

	// Decimate: swap each index with its bit reversal over log2(N) bits.
	m := uint32(bits.TrailingZeros32(n))
	for a := uint32(0); a < n; a++ {
		b := bits.Reverse32(a) >> (32 - m)
		if b > a {
			data[a], data[b] = data[b], data[a]
		}
	}
}
