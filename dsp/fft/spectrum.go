package fft

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/dac1976/dsp/dsp/conv"
	"github.com/dac1976/dsp/dsp/core"
)

// ErrSpectrumLength is returned when a destination slice does not match the
// selected half or full spectrum window.
var ErrSpectrumLength = fmt.Errorf("fft: destination length mismatch: %w", core.ErrSize)

// halfSize returns the number of active bins for the half/full selection.
func halfSize(n int, fullSpectrum bool) int {
	if fullSpectrum {
		return n
	}
	return n / 2
}

// ToMagnitude converts a normalized spectrum to per-bin magnitudes in-place.
// After the call the real part of each active bin holds the magnitude and
// the imaginary part is zero. Non-DC bins are doubled first, since for real
// input the signal power is split between the positive and negative halves.
// With fullSpectrum false only the first N/2 bins are processed; zeroUnused
// clears the remaining bins.
func ToMagnitude(data []complex128, zeroUnused, fullSpectrum bool) {
	half := halfSize(len(data), fullSpectrum)

	for i := 0; i < half; i++ {
		z := data[i]
		if i != 0 {
			z *= 2
		}
		data[i] = complex(cmplx.Abs(z), 0)
	}

	if zeroUnused {
		core.ZeroComplex(data[half:])
	}
}

// MagnitudeTo writes the per-bin magnitudes of a normalized spectrum into
// dst without modifying data. dst must have length N/2, or N when
// fullSpectrum is set.
func MagnitudeTo(dst []float64, data []complex128, fullSpectrum bool) error {
	half := halfSize(len(data), fullSpectrum)
	if len(dst) != half {
		return fmt.Errorf("%w (have %d, want %d)", ErrSpectrumLength, len(dst), half)
	}

	for i := 0; i < half; i++ {
		z := data[i]
		if i != 0 {
			z *= 2
		}
		dst[i] = cmplx.Abs(z)
	}
	return nil
}

// ToPower converts a normalized spectrum to per-bin power re²+im² in-place.
// Only the real part of each active bin is valid afterwards.
func ToPower(data []complex128, zeroUnused, fullSpectrum bool) {
	half := halfSize(len(data), fullSpectrum)

	for i := 0; i < half; i++ {
		z := data[i]
		p := real(z)*real(z) + imag(z)*imag(z)
		data[i] = complex(p, 0)
	}

	if zeroUnused {
		core.ZeroComplex(data[half:])
	}
}

// PowerTo writes the per-bin power of a normalized spectrum into dst
// without modifying data. dst must match the selected window length.
func PowerTo(dst []float64, data []complex128, fullSpectrum bool) error {
	half := halfSize(len(data), fullSpectrum)
	if len(dst) != half {
		return fmt.Errorf("%w (have %d, want %d)", ErrSpectrumLength, len(dst), half)
	}

	for i := 0; i < half; i++ {
		z := data[i]
		dst[i] = real(z)*real(z) + imag(z)*imag(z)
	}
	return nil
}

// ToPsd converts a power spectrum held in the real parts of data to a power
// spectral density by dividing each active bin by the bin width in Hz.
func ToPsd(data []complex128, binWidthHz float64, zeroUnused, fullSpectrum bool) {
	half := halfSize(len(data), fullSpectrum)

	for i := 0; i < half; i++ {
		data[i] = complex(real(data[i])/binWidthHz, imag(data[i]))
	}

	if zeroUnused {
		core.ZeroComplex(data[half:])
	}
}

// PsdTo writes the power spectral density of a power spectrum held in data
// into dst. dst must match the selected window length.
func PsdTo(dst []float64, data []complex128, binWidthHz float64, fullSpectrum bool) error {
	half := halfSize(len(data), fullSpectrum)
	if len(dst) != half {
		return fmt.Errorf("%w (have %d, want %d)", ErrSpectrumLength, len(dst), half)
	}

	for i := 0; i < half; i++ {
		dst[i] = real(data[i]) / binWidthHz
	}
	return nil
}

// PsdInPlace divides a real-valued power spectrum by the bin width in Hz.
func PsdInPlace(powerSpectrum []float64, binWidthHz float64) {
	for i := range powerSpectrum {
		powerSpectrum[i] /= binWidthHz
	}
}

// To3BinSum converts a power spectrum held in the real parts of data to a
// 3-bin summed magnitude spectrum in-place. Each active bin becomes
// sqrt(sum of itself and both neighbours) * sqrt(2), converting summed RMS
// power back to a peak magnitude. Useful for estimating the amplitude of a
// tone whose energy leaks across adjacent bins.
func To3BinSum(data []complex128, zeroUnused, fullSpectrum bool) error {
	half := halfSize(len(data), fullSpectrum)

	power := make([]float64, half)
	for i := 0; i < half; i++ {
		power[i] = real(data[i])
	}

	summed, err := threeBinSum(power)
	if err != nil {
		return err
	}
	for i := 0; i < half; i++ {
		data[i] = complex(summed[i], 0)
	}

	if zeroUnused {
		core.ZeroComplex(data[half:])
	}
	return nil
}

// ThreeBinSumTo writes the 3-bin summed magnitude spectrum of a real-valued
// power spectrum into dst. dst must have the same length as powerSpectrum
// and may alias it.
func ThreeBinSumTo(dst, powerSpectrum []float64) error {
	if len(dst) != len(powerSpectrum) {
		return fmt.Errorf("%w (have %d, want %d)", ErrSpectrumLength, len(dst), len(powerSpectrum))
	}

	summed, err := threeBinSum(powerSpectrum)
	if err != nil {
		return err
	}
	copy(dst, summed)
	return nil
}

// threeBinSum convolves the power spectrum with {1,1,1} and drops the
// leading edge sample so each output bin sums itself with both neighbours.
func threeBinSum(powerSpectrum []float64) ([]float64, error) {
	boxcar := []float64{1, 1, 1}

	convolved, err := conv.Direct(powerSpectrum, boxcar)
	if err != nil {
		return nil, err
	}

	out := convolved[1 : len(powerSpectrum)+1]
	for i, v := range out {
		out[i] = math.Sqrt(v) * core.Sqrt2
	}
	return out, nil
}
