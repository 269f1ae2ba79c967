// Package signal generates deterministic test and excitation signals.
package signal

import (
	"fmt"
	"math"

	"github.com/dac1976/dsp/dsp/core"
)

// Errors returned by the generators.
var (
	ErrSampleCount = fmt.Errorf("signal: sample count must be positive: %w", core.ErrConfig)
	ErrSampleRate  = fmt.Errorf("signal: sample rate must be positive: %w", core.ErrConfig)
)

// Tone describes a single sinusoidal component.
type Tone struct {
	Amplitude float64
	Frequency float64
	Phase     float64
	Offset    float64
}

// Sine evaluates a sinusoid at time t seconds.
func Sine(amplitude, t, freqHz, phase, offset float64) float64 {
	return amplitude*math.Sin(core.TwoPi*freqHz*t+phase) + offset
}

// Generate renders n samples of the tone at the given sample rate.
func Generate(tone Tone, sampleRateHz float64, n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w (have %d)", ErrSampleCount, n)
	}
	if sampleRateHz <= 0 {
		return nil, fmt.Errorf("%w (have %g)", ErrSampleRate, sampleRateHz)
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = Sine(tone.Amplitude, float64(i)/sampleRateHz, tone.Frequency, tone.Phase, tone.Offset)
	}
	return out, nil
}

// GenerateMulti renders n samples of the summed tones at the given
// sample rate.
func GenerateMulti(tones []Tone, sampleRateHz float64, n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w (have %d)", ErrSampleCount, n)
	}
	if sampleRateHz <= 0 {
		return nil, fmt.Errorf("%w (have %g)", ErrSampleRate, sampleRateHz)
	}
	out := make([]float64, n)
	for i := range out {
		t := float64(i) / sampleRateHz
		sum := 0.0
		for _, tone := range tones {
			sum += Sine(tone.Amplitude, t, tone.Frequency, tone.Phase, tone.Offset)
		}
		out[i] = sum
	}
	return out, nil
}
