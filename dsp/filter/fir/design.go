// Package fir provides windowed-sinc FIR filter design and a Holder that
// applies a fixed coefficient set to fixed-length signal blocks.
//
// All designers window the ideal impulse response with a caller-supplied
// generator; a Kaiser window is the usual choice since its beta parameter
// trades stop-band attenuation against transition width.
package fir

import (
	"fmt"
	"math"

	"github.com/dac1976/dsp/dsp/core"
	"github.com/dac1976/dsp/dsp/window"
)

// Errors returned by the filter designers.
var (
	ErrNumTaps    = fmt.Errorf("fir: need more than 2 taps: %w", core.ErrConfig)
	ErrEvenTaps   = fmt.Errorf("fir: tap count must be odd: %w", core.ErrConfig)
	ErrCutoff     = fmt.Errorf("fir: cutoff out of range: %w", core.ErrConfig)
	ErrSampleRate = fmt.Errorf("fir: sample rate must be positive: %w", core.ErrConfig)
	ErrBandwidth  = fmt.Errorf("fir: bandwidth out of range: %w", core.ErrConfig)
)

// LowPass designs a windowed-sinc low-pass filter.
// Requires numTaps > 2 and 0 < cutoffHz <= sampleRateHz/2. An odd tap
// count gives a single centre tap around which the filter is symmetric.
func LowPass(numTaps int, cutoffHz, sampleRateHz float64, gen window.Generator) ([]float64, error) {
	norm, err := normalizedCutoff(numTaps, cutoffHz, sampleRateHz)
	if err != nil {
		return nil, err
	}

	return design(numTaps, gen, func(arg float64) float64 {
		return norm * core.Sinc(norm*arg*math.Pi)
	})
}

// HighPass designs a windowed-sinc high-pass filter by spectral inversion
// of the matching low-pass. The tap count must be odd; an even count puts
// a zero at Nyquist and attenuates the passband.
func HighPass(numTaps int, cutoffHz, sampleRateHz float64, gen window.Generator) ([]float64, error) {
	norm, err := normalizedCutoff(numTaps, cutoffHz, sampleRateHz)
	if err != nil {
		return nil, err
	}
	if numTaps%2 == 0 {
		return nil, fmt.Errorf("%w (%d taps)", ErrEvenTaps, numTaps)
	}

	return design(numTaps, gen, func(arg float64) float64 {
		return core.Sinc(arg*math.Pi) - norm*core.Sinc(norm*arg*math.Pi)
	})
}

// BandPass designs a windowed-sinc band-pass filter with the given centre
// frequency and bandwidth. Requires 0 < bandwidthHz <= sampleRateHz/2 in
// addition to the usual centre-frequency bounds.
func BandPass(numTaps int, centreHz, bandwidthHz, sampleRateHz float64, gen window.Generator) ([]float64, error) {
	low, high, err := normalizedBand(numTaps, centreHz, bandwidthHz, sampleRateHz)
	if err != nil {
		return nil, err
	}

	return design(numTaps, gen, func(arg float64) float64 {
		if math.Abs(arg) < 1e-3 {
			return 0
		}
		return (math.Cos(low*arg*math.Pi) - math.Cos(high*arg*math.Pi)) / math.Pi / arg
	})
}

// Notch designs a windowed-sinc band-reject filter with the given centre
// frequency and bandwidth.
func Notch(numTaps int, centreHz, bandwidthHz, sampleRateHz float64, gen window.Generator) ([]float64, error) {
	low, high, err := normalizedBand(numTaps, centreHz, bandwidthHz, sampleRateHz)
	if err != nil {
		return nil, err
	}

	return design(numTaps, gen, func(arg float64) float64 {
		return core.Sinc(arg*math.Pi) -
			high*core.Sinc(high*arg*math.Pi) -
			low*core.Sinc(low*arg*math.Pi)
	})
}

// design evaluates the ideal impulse response around the filter centre
// and applies the window.
func design(numTaps int, gen window.Generator, ideal func(arg float64) float64) ([]float64, error) {
	coeffs := make([]float64, numTaps)
	centre := float64(numTaps-1) / 2

	for i := range coeffs {
		coeffs[i] = ideal(float64(i) - centre)
	}

	win, err := window.New(gen, numTaps, false)
	if err != nil {
		return nil, err
	}
	if err := win.Apply(coeffs, coeffs); err != nil {
		return nil, err
	}
	return coeffs, nil
}

func normalizedCutoff(numTaps int, cutoffHz, sampleRateHz float64) (float64, error) {
	if numTaps <= 2 {
		return 0, fmt.Errorf("%w (%d taps)", ErrNumTaps, numTaps)
	}
	if sampleRateHz <= 0 {
		return 0, fmt.Errorf("%w (%g Hz)", ErrSampleRate, sampleRateHz)
	}
	nyquist := sampleRateHz / 2
	if cutoffHz <= 0 || cutoffHz > nyquist {
		return 0, fmt.Errorf("%w (%g Hz, nyquist %g Hz)", ErrCutoff, cutoffHz, nyquist)
	}
	return cutoffHz / nyquist, nil
}

func normalizedBand(numTaps int, centreHz, bandwidthHz, sampleRateHz float64) (low, high float64, err error) {
	norm, err := normalizedCutoff(numTaps, centreHz, sampleRateHz)
	if err != nil {
		return 0, 0, err
	}
	nyquist := sampleRateHz / 2
	if bandwidthHz <= 0 || bandwidthHz > nyquist {
		return 0, 0, fmt.Errorf("%w (%g Hz, nyquist %g Hz)", ErrBandwidth, bandwidthHz, nyquist)
	}

	normBandwidth := bandwidthHz / nyquist
	return norm - normBandwidth/2, norm + normBandwidth/2, nil
}
