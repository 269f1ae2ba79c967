package fir

import (
	"errors"
	"math"
	"testing"

	"github.com/dac1976/dsp/dsp/core"
	"github.com/dac1976/dsp/dsp/window"
)

// frequencyResponse evaluates |H(f)| of the coefficients at freqHz.
func frequencyResponse(coeffs []float64, freqHz, sampleRateHz float64) float64 {
	re, im := 0.0, 0.0
	w := core.TwoPi * freqHz / sampleRateHz
	for k, c := range coeffs {
		re += c * math.Cos(w*float64(k))
		im -= c * math.Sin(w*float64(k))
	}
	return math.Hypot(re, im)
}

func kaiser(t *testing.T, beta float64) window.Kaiser {
	t.Helper()
	k, err := window.NewKaiser(beta)
	if err != nil {
		t.Fatalf("NewKaiser(%g) error = %v", beta, err)
	}
	return k
}

func TestLowPassResponse(t *testing.T) {
	const (
		numTaps    = 127
		cutoffHz   = 4000.0
		sampleRate = 48000.0
	)

	coeffs, err := LowPass(numTaps, cutoffHz, sampleRate, kaiser(t, 9))
	if err != nil {
		t.Fatalf("LowPass() error = %v", err)
	}
	if len(coeffs) != numTaps {
		t.Fatalf("len(coeffs) = %d, want %d", len(coeffs), numTaps)
	}

	if g := frequencyResponse(coeffs, 0, sampleRate); math.Abs(g-1) > 0.01 {
		t.Errorf("DC gain = %g, want ~1", g)
	}
	if g := frequencyResponse(coeffs, 1000, sampleRate); math.Abs(g-1) > 0.01 {
		t.Errorf("passband gain at 1 kHz = %g, want ~1", g)
	}
	if g := frequencyResponse(coeffs, 12000, sampleRate); g > 1e-4 {
		t.Errorf("stopband gain at 12 kHz = %g, want <1e-4", g)
	}
}

func TestLowPassSymmetric(t *testing.T) {
	for _, numTaps := range []int{64, 65} {
		coeffs, err := LowPass(numTaps, 1000, 8000, kaiser(t, 6))
		if err != nil {
			t.Fatalf("LowPass(%d taps) error = %v", numTaps, err)
		}

		for i := 0; i < numTaps/2; i++ {
			if math.Abs(coeffs[i]-coeffs[numTaps-1-i]) > 1e-15 {
				t.Errorf("%d taps: coeffs[%d] = %g, coeffs[%d] = %g",
					numTaps, i, coeffs[i], numTaps-1-i, coeffs[numTaps-1-i])
			}
		}
	}
}

func TestHighPassResponse(t *testing.T) {
	const (
		numTaps    = 127
		cutoffHz   = 8000.0
		sampleRate = 48000.0
	)

	coeffs, err := HighPass(numTaps, cutoffHz, sampleRate, kaiser(t, 9))
	if err != nil {
		t.Fatalf("HighPass() error = %v", err)
	}

	if g := frequencyResponse(coeffs, 0, sampleRate); g > 1e-4 {
		t.Errorf("DC gain = %g, want <1e-4", g)
	}
	if g := frequencyResponse(coeffs, 2000, sampleRate); g > 1e-3 {
		t.Errorf("stopband gain at 2 kHz = %g, want <1e-3", g)
	}
	if g := frequencyResponse(coeffs, 16000, sampleRate); math.Abs(g-1) > 0.01 {
		t.Errorf("passband gain at 16 kHz = %g, want ~1", g)
	}
}

func TestHighPassRequiresOddTaps(t *testing.T) {
	if _, err := HighPass(64, 1000, 8000, kaiser(t, 6)); !errors.Is(err, ErrEvenTaps) {
		t.Errorf("HighPass(64 taps) error = %v, want ErrEvenTaps", err)
	}
	if _, err := HighPass(64, 1000, 8000, kaiser(t, 6)); !errors.Is(err, core.ErrConfig) {
		t.Errorf("even taps should wrap core.ErrConfig, got %v", err)
	}
}

func TestBandPassResponse(t *testing.T) {
	const (
		numTaps    = 255
		centreHz   = 6000.0
		widthHz    = 4000.0
		sampleRate = 48000.0
	)

	coeffs, err := BandPass(numTaps, centreHz, widthHz, sampleRate, kaiser(t, 9))
	if err != nil {
		t.Fatalf("BandPass() error = %v", err)
	}

	if g := frequencyResponse(coeffs, centreHz, sampleRate); math.Abs(g-1) > 0.01 {
		t.Errorf("centre gain = %g, want ~1", g)
	}
	if g := frequencyResponse(coeffs, 500, sampleRate); g > 1e-3 {
		t.Errorf("low stopband gain = %g, want <1e-3", g)
	}
	if g := frequencyResponse(coeffs, 15000, sampleRate); g > 1e-3 {
		t.Errorf("high stopband gain = %g, want <1e-3", g)
	}
}

func TestNotchResponse(t *testing.T) {
	const (
		numTaps    = 255
		centreHz   = 6000.0
		widthHz    = 4000.0
		sampleRate = 48000.0
	)

	coeffs, err := Notch(numTaps, centreHz, widthHz, sampleRate, kaiser(t, 9))
	if err != nil {
		t.Fatalf("Notch() error = %v", err)
	}

	centre := frequencyResponse(coeffs, centreHz, sampleRate)
	edgeLow := frequencyResponse(coeffs, 500, sampleRate)
	edgeHigh := frequencyResponse(coeffs, 18000, sampleRate)

	// The rejection band must sit well below the retained bands.
	if centre > 0.05*edgeLow || centre > 0.05*edgeHigh {
		t.Errorf("centre gain %g not rejected against band gains %g / %g",
			centre, edgeLow, edgeHigh)
	}
}

func TestDesignValidation(t *testing.T) {
	gen := kaiser(t, 6)

	tests := []struct {
		name    string
		design  func() ([]float64, error)
		wantErr error
	}{
		{
			name:    "too few taps",
			design:  func() ([]float64, error) { return LowPass(2, 100, 8000, gen) },
			wantErr: ErrNumTaps,
		},
		{
			name:    "zero cutoff",
			design:  func() ([]float64, error) { return LowPass(65, 0, 8000, gen) },
			wantErr: ErrCutoff,
		},
		{
			name:    "cutoff above nyquist",
			design:  func() ([]float64, error) { return LowPass(65, 5000, 8000, gen) },
			wantErr: ErrCutoff,
		},
		{
			name:    "bad sample rate",
			design:  func() ([]float64, error) { return HighPass(65, 100, 0, gen) },
			wantErr: ErrSampleRate,
		},
		{
			name:    "zero bandwidth",
			design:  func() ([]float64, error) { return BandPass(65, 1000, 0, 8000, gen) },
			wantErr: ErrBandwidth,
		},
		{
			name:    "notch bandwidth above nyquist",
			design:  func() ([]float64, error) { return Notch(65, 1000, 5000, 8000, gen) },
			wantErr: ErrBandwidth,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.design(); !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
