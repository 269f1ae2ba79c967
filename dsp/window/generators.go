// Package window provides window-coefficient generators and a Window type
// that precomputes the gain terms needed for spectral amplitude correction.
package window

import (
	"fmt"
	"math"

	"github.com/dac1976/dsp/dsp/core"
)

// Generator fills a pre-sized slice with window coefficients.
// Implementations are pure shape functions; sizing and validation live in
// the Window type.
type Generator interface {
	Generate(coeffs []float64)
}

// generateSymmetric fills coeffs using eval(n, size-1), mirroring the
// first half onto the second to halve the evaluation count.
func generateSymmetric(coeffs []float64, eval func(n, sizeMinusOne float64) float64) {
	size := len(coeffs)
	if size < 2 {
		return
	}
	sizeMinusOne := float64(size - 1)
	half := size >> 1

	for n, rev := 0, size-1; n < half; n, rev = n+1, rev-1 {
		coeffs[n] = eval(float64(n), sizeMinusOne)
		coeffs[rev] = coeffs[n]
	}
	if size%2 == 1 {
		coeffs[half] = eval(float64(half), sizeMinusOne)
	}
}

// Hann generates the Hann (raised cosine) window.
type Hann struct{}

func (Hann) Generate(coeffs []float64) {
	generateSymmetric(coeffs, func(n, sizeMinusOne float64) float64 {
		return 0.5 * (1 - math.Cos(core.TwoPi*n/sizeMinusOne))
	})
}

// Hamming generates the Hamming window with the optimal 0.53836/0.46164
// coefficient pair.
type Hamming struct{}

func (Hamming) Generate(coeffs []float64) {
	generateSymmetric(coeffs, func(n, sizeMinusOne float64) float64 {
		return 0.53836 - 0.46164*math.Cos(core.TwoPi*n/sizeMinusOne)
	})
}

// Blackman generates the classic 0.42/0.5/0.08 Blackman window.
type Blackman struct{}

func (Blackman) Generate(coeffs []float64) {
	generateSymmetric(coeffs, func(n, sizeMinusOne float64) float64 {
		ratio := core.TwoPi * n / sizeMinusOne
		return 0.42 - 0.5*math.Cos(ratio) + 0.08*math.Cos(2*ratio)
	})
}

// ExactBlackman generates the Blackman window with the exact rational
// coefficients 7938/18608, 9240/18608, 1430/18608.
type ExactBlackman struct{}

func (ExactBlackman) Generate(coeffs []float64) {
	const (
		a0 = 7938.0 / 18608.0
		a1 = 9240.0 / 18608.0
		a2 = 1430.0 / 18608.0
	)
	generateSymmetric(coeffs, func(n, sizeMinusOne float64) float64 {
		ratio := core.TwoPi * n / sizeMinusOne
		return a0 - a1*math.Cos(ratio) + a2*math.Cos(2*ratio)
	})
}

// Bartlett generates the triangular Bartlett window.
type Bartlett struct{}

func (Bartlett) Generate(coeffs []float64) {
	generateSymmetric(coeffs, func(n, sizeMinusOne float64) float64 {
		centre := sizeMinusOne / 2
		return 1 - math.Abs(n-centre)/centre
	})
}

// Rectangle generates the all-ones rectangular window.
type Rectangle struct{}

func (Rectangle) Generate(coeffs []float64) {
	for i := range coeffs {
		coeffs[i] = 1
	}
}

// Lanczos generates the Lanczos (normalized sinc) window.
type Lanczos struct{}

func (Lanczos) Generate(coeffs []float64) {
	generateSymmetric(coeffs, func(n, sizeMinusOne float64) float64 {
		return core.SincNorm(2*n/sizeMinusOne - 1)
	})
}

// Kaiser generates a Kaiser-Bessel window with shape parameter Beta.
// Construct via NewKaiser to validate the parameter.
type Kaiser struct {
	Beta float64
}

// ErrInvalidBeta is returned for a non-positive Kaiser beta.
var ErrInvalidBeta = fmt.Errorf("window: kaiser beta must be positive: %w", core.ErrConfig)

// NewKaiser returns a Kaiser generator, rejecting beta <= 0.
func NewKaiser(beta float64) (Kaiser, error) {
	if beta <= 0 {
		return Kaiser{}, fmt.Errorf("%w (beta %g)", ErrInvalidBeta, beta)
	}
	return Kaiser{Beta: beta}, nil
}

func (k Kaiser) Generate(coeffs []float64) {
	denominator := core.BesselI0(k.Beta)
	generateSymmetric(coeffs, func(n, sizeMinusOne float64) float64 {
		t := 2*n/sizeMinusOne - 1
		return core.BesselI0(k.Beta*math.Sqrt(1-t*t)) / denominator
	})
}

// flatTop generates an alternating-sign cosine-series window
// w(n) = a0 - a1·cos(2πn/(N-1)) + a2·cos(4πn/(N-1)) - ...
type flatTop struct {
	eq []float64
}

func (f flatTop) Generate(coeffs []float64) {
	generateSymmetric(coeffs, func(n, sizeMinusOne float64) float64 {
		twoPiN := core.TwoPi * n
		sign := -1.0
		w := f.eq[0]
		for i := 1; i < len(f.eq); i++ {
			w += sign * f.eq[i] * math.Cos(float64(i)*twoPiN/sizeMinusOne)
			sign = -sign
		}
		return w
	})
}

// Flat-top window variants. Flat-top windows trade main-lobe width for
// very low amplitude error, making them the usual choice for calibrated
// amplitude measurement.
var (
	// FlatTopISO18431 is the ISO 18431-1 flat-top window.
	FlatTopISO18431 Generator = flatTop{eq: []float64{1, 1.933, 1.286, 0.388, 0.0322}}
	// FlatTop2Term is a minimal 2-term variant.
	FlatTop2Term Generator = flatTop{eq: []float64{0.2810639, 0.5208972, 0.1980399}}
	// FlatTopAlt4Term is an alternative 4-term variant.
	FlatTopAlt4Term Generator = flatTop{eq: []float64{0.21557895, 0.41663158, 0.277263158,
		0.083578947, 0.006947368}}
	// FlatTopHP301 is the Hewlett-Packard P301 flat-top window.
	FlatTopHP301 Generator = flatTop{eq: []float64{0.9994484, 1.911456, 1.076578, 0.183162}}
	// FlatTopHP4Term is the Hewlett-Packard 4-term flat-top window.
	FlatTopHP4Term Generator = flatTop{eq: []float64{1, 1.869032, 1.195972, 0.035928, 0.030916}}
	// FlatTopHP401 is the modified Hewlett-Packard P401 flat-top window.
	FlatTopHP401 Generator = flatTop{eq: []float64{1, 1.93774046310203, 1.32530734987255,
		0.43206975880342, 0.04359135851569, 0.00015175580171}}
	// FlatTopRS4Term is the Rohde & Schwarz 4-term flat-top window.
	FlatTopRS4Term Generator = flatTop{eq: []float64{0.1881999, 0.36923, 0.28702, 0.13077,
		0.02488}}
)
