package resample

import (
	"fmt"
	"math"

	"github.com/dac1976/dsp/dsp/core"
)

// Errors returned by the factor search.
var (
	ErrRatio     = fmt.Errorf("resample: ratio must be positive: %w", core.ErrConfig)
	ErrBounds    = fmt.Errorf("resample: factor bounds must be positive: %w", core.ErrConfig)
	ErrNoFactors = fmt.Errorf("resample: no representable factor pair: %w", core.ErrConfig)
)

// DefaultMaxFactor bounds both sides of the rational approximation in
// DefaultFactors.
const DefaultMaxFactor = 128

// DefaultFactors approximates ratio with Factors bounds of 128/128.
func DefaultFactors(ratio float64) (up, down int, err error) {
	return Factors(ratio, DefaultMaxFactor, DefaultMaxFactor)
}

// Factors approximates a positive resampling ratio by a reduced fraction
// up/down with up <= maxUp and down <= maxDown, using Stern-Brocot
// mediant bisection seeded from floor(ratio)/1 and ceil(ratio)/1. It
// tracks the lowest-error mediant seen and stops as soon as a mediant
// breaches either bound, or when one hits the ratio exactly. The caller
// should check the achieved error |up/down - ratio| against its own
// accuracy needs; tight ratios may not be representable within the
// bounds.
func Factors(ratio float64, maxUp, maxDown int) (up, down int, err error) {
	if ratio <= 0 {
		return 0, 0, fmt.Errorf("%w (ratio %g)", ErrRatio, ratio)
	}
	if maxUp < 1 || maxDown < 1 {
		return 0, 0, fmt.Errorf("%w (%d/%d)", ErrBounds, maxUp, maxDown)
	}

	lowerN, lowerD := int(math.Floor(ratio)), 1
	upperN, upperD := int(math.Ceil(ratio)), 1
	bestErr := math.MaxFloat64

	for {
		n := lowerN + upperN
		d := lowerD + upperD
		if g := core.Gcd(n, d); g > 1 {
			n /= g
			d /= g
		}

		if n > maxUp || d > maxDown {
			break
		}

		mediant := float64(n) / float64(d)
		if diff := math.Abs(mediant - ratio); diff < bestErr {
			bestErr = diff
			up, down = n, d
		}

		// An exact hit cannot be improved on; stopping here also keeps
		// the search finite for whole-number ratios, where the reduced
		// mediant would otherwise repeat forever.
		if mediant == ratio {
			break
		}

		if mediant <= ratio {
			lowerN, lowerD = n, d
		} else {
			upperN, upperD = n, d
		}
	}

	if up == 0 {
		return 0, 0, fmt.Errorf("%w (ratio %g, bounds %d/%d)", ErrNoFactors, ratio, maxUp, maxDown)
	}
	return up, down, nil
}
