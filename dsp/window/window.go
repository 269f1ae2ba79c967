package window

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
	"github.com/dac1976/dsp/dsp/core"
)

// Errors returned by the window type.
var (
	ErrInvalidSize    = fmt.Errorf("window: size must be at least 2: %w", core.ErrConfig)
	ErrLengthMismatch = fmt.Errorf("window: data length mismatch: %w", core.ErrSize)
)

// Window holds a generated coefficient sequence together with the gain
// terms needed to correct spectral amplitudes afterwards.
//
// When a window is applied to data destined for an FFT, the frame is
// periodic: the last coefficient of a symmetric odd-length window would
// duplicate the first sample of the next frame. Constructing with
// wrapLastForFFT generates size coefficients but uses only the first
// size-1 of them, so generate with size = fftSize+1 in that case.
type Window struct {
	coeffs        []float64
	effectiveSize int
	coherentGain  float64
	powerGain     float64
	enbw          float64
}

// New generates a window of the given size.
func New(gen Generator, size int, wrapLastForFFT bool) (*Window, error) {
	if size < 2 {
		return nil, fmt.Errorf("%w (size %d)", ErrInvalidSize, size)
	}

	w := &Window{
		coeffs:        make([]float64, size),
		effectiveSize: size,
	}
	if wrapLastForFFT {
		w.effectiveSize = size - 1
	}

	gen.Generate(w.coeffs)
	w.computeGains()
	return w, nil
}

// ActualSize returns the number of generated coefficients.
func (w *Window) ActualSize() int {
	return len(w.coeffs)
}

// EffectiveSize returns the number of coefficients in use. This is one
// less than ActualSize for a window built with wrapLastForFFT.
func (w *Window) EffectiveSize() int {
	return w.effectiveSize
}

// CoherentGain returns the DC response of the window, sum(w)/N.
func (w *Window) CoherentGain() float64 {
	return w.coherentGain
}

// PowerGain returns the coherent gain squared times the ENBW.
func (w *Window) PowerGain() float64 {
	return w.powerGain
}

// CombinedGain returns coherent gain times power gain, the correction
// term for power spectra that are later reduced back to magnitudes.
func (w *Window) CombinedGain() float64 {
	return w.coherentGain * w.powerGain
}

// ENBW returns the equivalent noise bandwidth of the window in bins.
func (w *Window) ENBW() float64 {
	return w.enbw
}

// Coefficients returns a copy of the effective coefficients.
func (w *Window) Coefficients() []float64 {
	return append([]float64(nil), w.coeffs[:w.effectiveSize]...)
}

// Apply multiplies src by the window coefficients into dst. Both slices
// must have length EffectiveSize; dst may alias src.
func (w *Window) Apply(dst, src []float64) error {
	if len(src) != w.effectiveSize || len(dst) != w.effectiveSize {
		return fmt.Errorf("%w (have %d/%d, want %d)",
			ErrLengthMismatch, len(dst), len(src), w.effectiveSize)
	}

	vecmath.MulBlock(dst, src, w.coeffs[:w.effectiveSize])
	return nil
}

// ApplyComplex multiplies complex src by the window coefficients into
// dst. Both slices must have length EffectiveSize; dst may alias src.
func (w *Window) ApplyComplex(dst, src []complex128) error {
	if len(src) != w.effectiveSize || len(dst) != w.effectiveSize {
		return fmt.Errorf("%w (have %d/%d, want %d)",
			ErrLengthMismatch, len(dst), len(src), w.effectiveSize)
	}

	for i, c := range w.coeffs[:w.effectiveSize] {
		dst[i] = src[i] * complex(c, 0)
	}
	return nil
}

// CorrectGain divides src by gain into dst, undoing a window (or
// transform) gain applied earlier. dst may alias src.
func CorrectGain(dst, src []float64, gain float64) error {
	if len(dst) != len(src) {
		return fmt.Errorf("%w (have %d, want %d)", ErrLengthMismatch, len(dst), len(src))
	}

	vecmath.ScaleBlock(dst, src, 1/gain)
	return nil
}

func (w *Window) computeGains() {
	size := w.effectiveSize

	sum := 0.0
	sumSquares := 0.0
	for _, c := range w.coeffs[:size] {
		sum += c
		sumSquares += c * c
	}

	w.enbw = sumSquares
	if divisor := sum * sum; divisor > 1e-9 || divisor < -1e-9 {
		w.enbw = float64(size) * sumSquares / divisor
	}

	w.coherentGain = sum / float64(size)
	w.powerGain = w.coherentGain * w.coherentGain * w.enbw
}
