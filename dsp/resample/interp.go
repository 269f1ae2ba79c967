package resample

import (
	"fmt"
	"math"

	"github.com/dac1976/dsp/dsp/core"
)

// ErrEmptySlice is returned by Interpolate when either slice is empty.
var ErrEmptySlice = fmt.Errorf("resample: slices must not be empty: %w", core.ErrSize)

// Interpolate stretches or squeezes src onto dst by linear interpolation,
// pinning the first and last samples. It ignores aliasing entirely, which
// makes it suitable for resampling envelopes and other already-smooth
// data but not for audio-rate content.
func Interpolate(dst, src []float64) error {
	if len(src) == 0 || len(dst) == 0 {
		return ErrEmptySlice
	}
	if len(dst) == len(src) {
		copy(dst, src)
		return nil
	}
	if len(src) == 1 {
		for i := range dst {
			dst[i] = src[0]
		}
		return nil
	}

	stride := float64(len(src)-1) / float64(len(dst)-1)
	dst[0] = src[0]
	dst[len(dst)-1] = src[len(src)-1]

	exactPos := stride
	for i := 1; i < len(dst)-1; i++ {
		before := int(math.Floor(exactPos))
		// Accumulated stride error can land on the final sample.
		if before >= len(src)-1 {
			before = len(src) - 2
		}
		ratio := exactPos - float64(before)
		dst[i] = src[before] + (src[before+1]-src[before])*ratio
		exactPos += stride
	}
	return nil
}
