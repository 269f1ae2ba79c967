// Package resample provides rational-ratio resampling through a
// zero-stuff, filter, decimate pipeline, a Stern-Brocot search for the
// rational factors, and a plain linear interpolator for cases where
// filter design is overkill.
package resample

import (
	"fmt"

	"github.com/dac1976/dsp/dsp/core"
	"github.com/dac1976/dsp/dsp/filter/fir"
	"github.com/dac1976/dsp/dsp/window"
)

// Errors returned by the resampler.
var (
	ErrSignalLength = fmt.Errorf("resample: signal length must be positive: %w", core.ErrConfig)
	ErrFactor       = fmt.Errorf("resample: factors must be positive: %w", core.ErrConfig)
	ErrInputLength  = fmt.Errorf("resample: input length mismatch: %w", core.ErrSize)
	ErrOutputLength = fmt.Errorf("resample: output length mismatch: %w", core.ErrSize)
)

// Resampler converts fixed-length blocks of samples between two rates
// related by a rational factor up/down. The input is zero-stuffed by the
// upsampling factor, low-pass filtered with a Kaiser-windowed FIR at the
// narrower of the two Nyquist limits, then decimated by the downsampling
// factor. A Resampler holds a fixed block size and filter state; build a
// replacement to change any of its parameters.
type Resampler struct {
	signalLen    int
	up           int
	down         int
	resampledLen int
	holder       *fir.Holder
	workspace    []float64
}

// NewResampler builds a resampler for signalLen-sample blocks at
// sampleRateHz, converting by the rational factor up/down. The anti-alias
// low pass uses numTaps Kaiser-windowed taps with the given beta; its
// cutoff is half the narrower of the input and output rates, clamped
// toward maxCutoffHz (an upper bound when upsampling, a lower bound when
// downsampling). Pass useFastConvolution to filter via FFT convolution.
func NewResampler(signalLen, up, down int, sampleRateHz, maxCutoffHz float64,
	numTaps int, beta float64, useFastConvolution bool) (*Resampler, error) {
	if signalLen <= 0 {
		return nil, fmt.Errorf("%w (have %d)", ErrSignalLength, signalLen)
	}
	if up <= 0 || down <= 0 {
		return nil, fmt.Errorf("%w (have %d/%d)", ErrFactor, up, down)
	}

	upsampledLen := signalLen * up
	upsampledRateHz := sampleRateHz * float64(up)
	resampledRateHz := upsampledRateHz / float64(down)

	cutoffHz := sampleRateHz / 2
	if resampledRateHz < sampleRateHz {
		cutoffHz = resampledRateHz / 2
	}
	if up > down {
		if maxCutoffHz < cutoffHz {
			cutoffHz = maxCutoffHz
		}
	} else if maxCutoffHz > cutoffHz {
		cutoffHz = maxCutoffHz
	}

	kaiser, err := window.NewKaiser(beta)
	if err != nil {
		return nil, err
	}
	coeffs, err := fir.LowPass(numTaps, cutoffHz, upsampledRateHz, kaiser)
	if err != nil {
		return nil, err
	}
	holder, err := fir.NewHolder(upsampledLen, coeffs, useFastConvolution)
	if err != nil {
		return nil, err
	}

	return &Resampler{
		signalLen:    signalLen,
		up:           up,
		down:         down,
		resampledLen: core.RoundHalfAway(float64(upsampledLen) / float64(down)),
		holder:       holder,
		workspace:    make([]float64, upsampledLen),
	}, nil
}

// InputLen reports the block size the resampler consumes.
func (r *Resampler) InputLen() int { return r.signalLen }

// ResampledLen reports the block size the resampler produces.
func (r *Resampler) ResampledLen() int { return r.resampledLen }

// Factors reports the rational conversion factor pair.
func (r *Resampler) Factors() (up, down int) { return r.up, r.down }

// Resample converts one block. signal must hold InputLen samples and dst
// must hold ResampledLen samples.
func (r *Resampler) Resample(dst, signal []float64) error {
	if len(signal) != r.signalLen {
		return fmt.Errorf("%w (have %d, want %d)", ErrInputLength, len(signal), r.signalLen)
	}
	if len(dst) != r.resampledLen {
		return fmt.Errorf("%w (have %d, want %d)", ErrOutputLength, len(dst), r.resampledLen)
	}

	if r.up > 1 {
		// Zero-stuffing spreads the signal energy across up spectral
		// images; scaling by up restores the passband amplitude.
		core.Zero(r.workspace)
		gain := float64(r.up)
		for i, s := range signal {
			r.workspace[i*r.up] = s * gain
		}
		if err := r.holder.Apply(r.workspace, r.workspace, true); err != nil {
			return err
		}
	} else if err := r.holder.Apply(r.workspace, signal, true); err != nil {
		return err
	}

	if r.down > 1 {
		for i := 0; i < r.resampledLen && i*r.down < len(r.workspace); i++ {
			dst[i] = r.workspace[i*r.down]
		}
	} else {
		copy(dst, r.workspace)
	}
	return nil
}
