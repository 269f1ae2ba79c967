package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/dac1976/dsp/dsp/core"
)

// Errors returned by the noise and level helpers.
var (
	ErrAmplitude  = fmt.Errorf("signal: amplitude must not be negative: %w", core.ErrConfig)
	ErrTargetPeak = fmt.Errorf("signal: target peak must not be negative: %w", core.ErrConfig)
	ErrEmptyInput = fmt.Errorf("signal: input must not be empty: %w", core.ErrSize)
)

// WhiteNoise generates n samples of seeded uniform noise in
// [-amplitude, amplitude].
func WhiteNoise(seed int64, amplitude float64, n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w (have %d)", ErrSampleCount, n)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("%w (have %g)", ErrAmplitude, amplitude)
	}
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// Normalize scales data to the target peak amplitude, returning a new
// slice. All-zero input stays zero.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("%w (have %g)", ErrTargetPeak, targetPeak)
	}
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	maxAbs := 0.0
	for _, v := range data {
		if av := math.Abs(v); av > maxAbs {
			maxAbs = av
		}
	}

	out := make([]float64, len(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}
	scale := targetPeak / maxAbs
	for i, v := range data {
		out[i] = v * scale
	}
	return out, nil
}
