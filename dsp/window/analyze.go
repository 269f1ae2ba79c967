package window

import "math"

// Analysis holds numerically measured spectral properties of a window,
// complementing the closed-form gains on the Window type.
type Analysis struct {
	// Bandwidth3dB is the two-sided half-power main lobe width in bins.
	Bandwidth3dB float64
	// HighestSidelobedB is the highest sidelobe level relative to DC in dB.
	HighestSidelobedB float64
	// FirstMinimumBins is the first spectral null position in bins.
	FirstMinimumBins float64
	// ScallopLossdB is the worst-case amplitude error for an off-bin tone.
	ScallopLossdB float64
}

// Analyze measures the spectral properties of the effective coefficients
// by direct DFT evaluation.
func (w *Window) Analyze() Analysis {
	coeffs := w.coeffs[:w.effectiveSize]
	n := len(coeffs)

	dcRef := responseAt(coeffs, 0)
	if dcRef == 0 {
		return Analysis{}
	}

	// Scallop loss is the response half a bin off centre.
	halfBin := responseAt(coeffs, 0.5/float64(n))
	scallopLoss := 0.0
	if halfBin > 0 {
		scallopLoss = 10 * math.Log10(halfBin/dcRef)
	}

	firstMin := searchFirstMinimum(coeffs, n)

	return Analysis{
		Bandwidth3dB:      searchBandwidth(coeffs, dcRef),
		HighestSidelobedB: searchHighestSidelobe(coeffs, dcRef, firstMin, n),
		FirstMinimumBins:  firstMin,
		ScallopLossdB:     scallopLoss,
	}
}

// responseAt evaluates |DFT(freq)|^2 at a normalized frequency in [0, 1).
func responseAt(coeffs []float64, freq float64) float64 {
	re, im := 0.0, 0.0
	w := 2 * math.Pi * freq
	for k, c := range coeffs {
		phase := w * float64(k)
		re += c * math.Cos(phase)
		im -= c * math.Sin(phase)
	}
	return re*re + im*im
}

// searchBandwidth bisects for the half-power point of the main lobe and
// returns the two-sided width in bins.
func searchBandwidth(coeffs []float64, dcRef float64) float64 {
	invRef := 1.0 / dcRef

	lo, hi := 0.0, 0.5
	for i := 0; i < 80; i++ {
		mid := (lo + hi) / 2
		if responseAt(coeffs, mid)*invRef > 0.5 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return 2 * lo * float64(len(coeffs))
}

// searchFirstMinimum scans outward from DC for the first local minimum,
// then refines with golden-section search.
func searchFirstMinimum(coeffs []float64, n int) float64 {
	nf := float64(n)
	step := 1.0 / (nf * 8)

	dcVal := responseAt(coeffs, 0)
	prev := dcVal
	coarseMinFreq := step
	// Require descent to 10% of DC before accepting a turn-around, so the
	// wide main-lobe plateau of flat-top windows is not mistaken for a null.
	threshold := dcVal * 0.1

	for freq := step; freq < 0.5; freq += step {
		val := responseAt(coeffs, freq)
		if prev < threshold && val > prev {
			coarseMinFreq = freq - step
			break
		}
		prev = val
	}

	a := math.Max(coarseMinFreq-2*step, 0)
	b := math.Min(coarseMinFreq+2*step, 0.5)

	const phi = 0.6180339887498949 // (sqrt(5)-1)/2
	c := b - phi*(b-a)
	d := a + phi*(b-a)
	for i := 0; i < 80; i++ {
		if responseAt(coeffs, c) < responseAt(coeffs, d) {
			b = d
		} else {
			a = c
		}
		c = b - phi*(b-a)
		d = a + phi*(b-a)
	}
	return (a + b) / 2 * nf
}

// searchHighestSidelobe finds the peak sidelobe level in dB relative to
// DC, scanning from the first null out to Nyquist.
func searchHighestSidelobe(coeffs []float64, dcRef, firstMinBins float64, n int) float64 {
	nf := float64(n)
	startFreq := firstMinBins / nf
	step := 1.0 / (nf * 8)

	peakVal := 0.0
	peakFreq := startFreq
	for freq := startFreq; freq < 0.5; freq += step {
		if val := responseAt(coeffs, freq); val > peakVal {
			peakVal = val
			peakFreq = freq
		}
	}

	fineStep := step / 32
	refinedPeak := peakVal
	for freq := math.Max(peakFreq-step, 0); freq <= peakFreq+step; freq += fineStep {
		if val := responseAt(coeffs, freq); val > refinedPeak {
			refinedPeak = val
		}
	}

	if refinedPeak <= 0 {
		return math.Inf(-1)
	}
	return 10 * math.Log10(refinedPeak/dcRef)
}
