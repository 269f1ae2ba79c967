// Package spectrum provides windowed FFT analyzers that report calibrated
// per-bin amplitudes.
//
// MagnitudeAnalyzer reports the magnitude spectrum; ThreeBinAnalyzer sums
// each power bin with its neighbours before converting back to magnitude,
// which recovers the amplitude of a tone whose energy leaks across
// adjacent bins. Both fold the FFT normalization into the window gain
// correction so the spectrum is only traversed once.
//
// Analyzers own mutable workspaces and are not safe for concurrent use.
// To rebind to a new window or size, construct a replacement.
package spectrum

import (
	"fmt"
	"math/cmplx"

	"github.com/dac1976/dsp/dsp/core"
	"github.com/dac1976/dsp/dsp/fft"
	"github.com/dac1976/dsp/dsp/window"
)

// Errors returned by the analyzers.
var (
	ErrFFTSize      = fmt.Errorf("spectrum: FFT size not a power of two: %w", core.ErrSize)
	ErrSignalLength = fmt.Errorf("spectrum: signal length mismatch: %w", core.ErrSize)
	ErrOutputLength = fmt.Errorf("spectrum: output length mismatch: %w", core.ErrSize)
)

// MagnitudeAnalyzer converts fixed-size signal blocks to gain-corrected
// magnitude spectra.
type MagnitudeAnalyzer struct {
	win       *window.Window
	workspace []complex128
	scratch   []float64
}

// NewMagnitudeAnalyzer builds an analyzer for blocks of fftSize samples,
// windowed by the given generator. fftSize must be a power of two. The
// window is generated one sample longer than the FFT frame and wrapped,
// keeping it symmetric over the periodic extension of the block.
func NewMagnitudeAnalyzer(gen window.Generator, fftSize int) (*MagnitudeAnalyzer, error) {
	win, err := newAnalyzerWindow(gen, fftSize)
	if err != nil {
		return nil, err
	}

	return &MagnitudeAnalyzer{
		win:       win,
		workspace: make([]complex128, fftSize),
		scratch:   make([]float64, fftSize),
	}, nil
}

// FFTSize returns the bound block length.
func (a *MagnitudeAnalyzer) FFTSize() int {
	return len(a.workspace)
}

// BinCount returns the number of output bins for the half/full selection.
func (a *MagnitudeAnalyzer) BinCount(fullSpectrum bool) int {
	return binCount(len(a.workspace), fullSpectrum)
}

// Transform computes the magnitude spectrum of a real signal block into
// dst. The signal length must equal FFTSize and dst must have
// BinCount(fullSpectrum) elements.
func (a *MagnitudeAnalyzer) Transform(dst, signal []float64, fullSpectrum bool) error {
	return a.transform(dst, nil, signal, fullSpectrum)
}

// TransformWithPhases additionally writes the per-bin phases (radians)
// into phases, which must be the same length as dst.
func (a *MagnitudeAnalyzer) TransformWithPhases(dst, phases, signal []float64, fullSpectrum bool) error {
	return a.transform(dst, phases, signal, fullSpectrum)
}

// TransformComplex computes the magnitude spectrum of a complex signal
// block into dst.
func (a *MagnitudeAnalyzer) TransformComplex(dst []float64, signal []complex128, fullSpectrum bool) error {
	if err := a.prepareComplex(signal); err != nil {
		return err
	}
	return a.reduce(dst, nil, fullSpectrum)
}

func (a *MagnitudeAnalyzer) transform(dst, phases, signal []float64, fullSpectrum bool) error {
	if err := a.prepareReal(signal); err != nil {
		return err
	}
	return a.reduce(dst, phases, fullSpectrum)
}

func (a *MagnitudeAnalyzer) prepareReal(signal []float64) error {
	if len(signal) != len(a.workspace) {
		return fmt.Errorf("%w (have %d, want %d)", ErrSignalLength, len(signal), len(a.workspace))
	}

	if err := a.win.Apply(a.scratch, signal); err != nil {
		return err
	}
	for i, v := range a.scratch {
		a.workspace[i] = complex(v, 0)
	}
	return fft.Forward(a.workspace)
}

func (a *MagnitudeAnalyzer) prepareComplex(signal []complex128) error {
	if len(signal) != len(a.workspace) {
		return fmt.Errorf("%w (have %d, want %d)", ErrSignalLength, len(signal), len(a.workspace))
	}

	if err := a.win.ApplyComplex(a.workspace, signal); err != nil {
		return err
	}
	return fft.Forward(a.workspace)
}

func (a *MagnitudeAnalyzer) reduce(dst, phases []float64, fullSpectrum bool) error {
	bins := binCount(len(a.workspace), fullSpectrum)
	if len(dst) != bins {
		return fmt.Errorf("%w (have %d, want %d)", ErrOutputLength, len(dst), bins)
	}

	if err := fft.MagnitudeTo(dst, a.workspace, fullSpectrum); err != nil {
		return err
	}
	if phases != nil {
		if err := writePhases(phases, a.workspace, bins); err != nil {
			return err
		}
	}

	// The workspace was never normalized after the forward transform, so
	// fold the 1/N scaling into the window gain correction.
	gain := a.win.CoherentGain() * float64(len(a.workspace))
	return window.CorrectGain(dst, dst, gain)
}

// ThreeBinAnalyzer converts fixed-size signal blocks to gain-corrected
// 3-bin summed magnitude spectra. The summing makes the reported peak
// amplitude of a single tone insensitive to where it falls within a bin.
type ThreeBinAnalyzer struct {
	win       *window.Window
	workspace []complex128
	scratch   []float64
}

// NewThreeBinAnalyzer builds an analyzer for blocks of fftSize samples.
// fftSize must be a power of two.
func NewThreeBinAnalyzer(gen window.Generator, fftSize int) (*ThreeBinAnalyzer, error) {
	win, err := newAnalyzerWindow(gen, fftSize)
	if err != nil {
		return nil, err
	}

	return &ThreeBinAnalyzer{
		win:       win,
		workspace: make([]complex128, fftSize),
		scratch:   make([]float64, fftSize),
	}, nil
}

// FFTSize returns the bound block length.
func (a *ThreeBinAnalyzer) FFTSize() int {
	return len(a.workspace)
}

// BinCount returns the number of output bins for the half/full selection.
func (a *ThreeBinAnalyzer) BinCount(fullSpectrum bool) int {
	return binCount(len(a.workspace), fullSpectrum)
}

// Transform computes the 3-bin summed magnitude spectrum of a real signal
// block into dst. The signal length must equal FFTSize and dst must have
// BinCount(fullSpectrum) elements.
func (a *ThreeBinAnalyzer) Transform(dst, signal []float64, fullSpectrum bool) error {
	return a.transform(dst, nil, signal, fullSpectrum)
}

// TransformWithPhases additionally writes the per-bin phases (radians)
// into phases, which must be the same length as dst.
func (a *ThreeBinAnalyzer) TransformWithPhases(dst, phases, signal []float64, fullSpectrum bool) error {
	return a.transform(dst, phases, signal, fullSpectrum)
}

func (a *ThreeBinAnalyzer) transform(dst, phases, signal []float64, fullSpectrum bool) error {
	if len(signal) != len(a.workspace) {
		return fmt.Errorf("%w (have %d, want %d)", ErrSignalLength, len(signal), len(a.workspace))
	}
	bins := binCount(len(a.workspace), fullSpectrum)
	if len(dst) != bins {
		return fmt.Errorf("%w (have %d, want %d)", ErrOutputLength, len(dst), bins)
	}

	if err := a.win.Apply(a.scratch, signal); err != nil {
		return err
	}
	for i, v := range a.scratch {
		a.workspace[i] = complex(v, 0)
	}
	if err := fft.Forward(a.workspace); err != nil {
		return err
	}

	if err := fft.PowerTo(dst, a.workspace, fullSpectrum); err != nil {
		return err
	}
	if phases != nil {
		if err := writePhases(phases, a.workspace, bins); err != nil {
			return err
		}
	}

	// Power scales with the square of the FFT size, so the combined
	// window gain is corrected by N² rather than N.
	n := float64(len(a.workspace))
	if err := window.CorrectGain(dst, dst, a.win.CombinedGain()*n*n); err != nil {
		return err
	}

	return fft.ThreeBinSumTo(dst, dst)
}

func newAnalyzerWindow(gen window.Generator, fftSize int) (*window.Window, error) {
	if !core.IsPowerOfTwo(fftSize) {
		return nil, fmt.Errorf("%w (size %d)", ErrFFTSize, fftSize)
	}
	return window.New(gen, fftSize+1, true)
}

func binCount(fftSize int, fullSpectrum bool) int {
	if fullSpectrum {
		return fftSize
	}
	return fftSize / 2
}

func writePhases(phases []float64, workspace []complex128, bins int) error {
	if len(phases) != bins {
		return fmt.Errorf("%w (phases %d, want %d)", ErrOutputLength, len(phases), bins)
	}
	for i := 0; i < bins; i++ {
		phases[i] = cmplx.Phase(workspace[i])
	}
	return nil
}
