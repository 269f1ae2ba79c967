package fir

import (
	"fmt"

	"github.com/dac1976/dsp/dsp/conv"
	"github.com/dac1976/dsp/dsp/core"
	"github.com/dac1976/dsp/dsp/fft"
)

// Errors returned by the Holder.
var (
	ErrSignalLength = fmt.Errorf("fir: signal length must exceed 2: %w", core.ErrConfig)
	ErrNoCoeffs     = fmt.Errorf("fir: no filter coefficients: %w", core.ErrConfig)
	ErrInputLength  = fmt.Errorf("fir: input length mismatch: %w", core.ErrSize)
	ErrOutputLength = fmt.Errorf("fir: output length mismatch: %w", core.ErrSize)
)

// Holder binds a coefficient set to a fixed signal block length and
// applies it repeatedly without re-allocating. With useFastConvolution it
// convolves through an fft.Convolver, otherwise through the direct
// time-domain primitive; the fast path wins once the kernel stretches
// past a few dozen taps.
type Holder struct {
	signalLen int
	coeffs    []float64
	convolver *fft.Convolver
	filtered  []float64
}

// NewHolder creates a holder for blocks of signalLen samples. signalLen
// must exceed 2 and coeffs must be non-empty. The coefficients are copied.
func NewHolder(signalLen int, coeffs []float64, useFastConvolution bool) (*Holder, error) {
	if signalLen <= 2 {
		return nil, fmt.Errorf("%w (length %d)", ErrSignalLength, signalLen)
	}
	if len(coeffs) == 0 {
		return nil, ErrNoCoeffs
	}

	h := &Holder{
		signalLen: signalLen,
		coeffs:    append([]float64(nil), coeffs...),
		filtered:  make([]float64, signalLen+len(coeffs)-1),
	}

	if useFastConvolution {
		convolver, err := fft.NewConvolver(signalLen, len(coeffs))
		if err != nil {
			return nil, err
		}
		h.convolver = convolver
	}
	return h, nil
}

// SignalLen returns the bound signal block length.
func (h *Holder) SignalLen() int {
	return h.signalLen
}

// NumTaps returns the number of held coefficients.
func (h *Holder) NumTaps() int {
	return len(h.coeffs)
}

// ResultLen returns the full convolution length, SignalLen + NumTaps - 1.
func (h *Holder) ResultLen() int {
	return len(h.filtered)
}

// Coefficients returns a copy of the held coefficients.
func (h *Holder) Coefficients() []float64 {
	return append([]float64(nil), h.coeffs...)
}

// Apply filters a signal block into dst. The signal length must equal
// SignalLen.
//
// With removeDelay the holder trims floor((NumTaps-1)/2) samples from the
// front of the full convolution, returning SignalLen samples realigned to
// the input time axis; this compensates the group delay of a symmetric
// (linear phase) filter, as produced by every designer in this package.
// Without removeDelay dst receives the full ResultLen samples including
// both transient tails.
func (h *Holder) Apply(dst, signal []float64, removeDelay bool) error {
	if len(signal) != h.signalLen {
		return fmt.Errorf("%w (have %d, want %d)", ErrInputLength, len(signal), h.signalLen)
	}

	wantOut := len(h.filtered)
	if removeDelay {
		wantOut = h.signalLen
	}
	if len(dst) != wantOut {
		return fmt.Errorf("%w (have %d, want %d)", ErrOutputLength, len(dst), wantOut)
	}

	if h.convolver != nil {
		if err := h.convolver.Convolve(h.filtered, signal, h.coeffs); err != nil {
			return err
		}
	} else {
		if err := conv.DirectTo(h.filtered, signal, h.coeffs); err != nil {
			return err
		}
	}

	if removeDelay {
		offset := (len(h.filtered) - h.signalLen) >> 1
		copy(dst, h.filtered[offset:offset+h.signalLen])
	} else {
		copy(dst, h.filtered)
	}
	return nil
}
