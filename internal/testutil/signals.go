// Package testutil provides deterministic signals and tolerance asserts
// shared by the dsp package tests.
package testutil

import (
	"math"
	"math/rand"

	"github.com/dac1976/dsp/dsp/core"
)

// DeterministicSine renders a sine tone with zero phase; the same
// arguments always produce the same samples.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := core.TwoPi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise renders seeded uniform noise in
// [-amplitude, amplitude].
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DeterministicComplexNoise renders seeded Gaussian noise with
// independent real and imaginary parts.
func DeterministicComplexNoise(seed int64, length int) []complex128 {
	out := make([]complex128, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = complex(rng.NormFloat64(), rng.NormFloat64())
	}
	return out
}

// Impulse renders a unit impulse at pos; out-of-range positions leave
// the slice all zero.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC renders a constant signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// ToComplex lifts a real slice into complex samples with zero imaginary
// parts, ready for the complex transform.
func ToComplex(src []float64) []complex128 {
	out := make([]complex128, len(src))
	for i, v := range src {
		out[i] = complex(v, 0)
	}
	return out
}
