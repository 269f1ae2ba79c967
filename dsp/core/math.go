package core

import "math"

// sincThreshold controls when Sinc and SincNorm switch to the x=0 limit value.
const sincThreshold = 1e-9

// Sqrt2 is sqrt(2) to double precision.
const Sqrt2 = math.Sqrt2

// TwoPi is 2*pi to double precision.
const TwoPi = 2 * math.Pi

// Sinc returns the unnormalized sinc function sin(x)/x, with Sinc(0) == 1.
func Sinc(x float64) float64 {
	if math.Abs(x) < sincThreshold {
		return 1
	}

	return math.Sin(x) / x
}

// SincNorm returns the normalized sinc function sin(pi*x)/(pi*x).
func SincNorm(x float64) float64 {
	if math.Abs(x) < sincThreshold {
		return 1
	}

	px := math.Pi * x

	return math.Sin(px) / px
}

// BesselI0 returns the zeroth-order modified Bessel function of the first
// kind, computed as a truncated power series. Used by the Kaiser window.
func BesselI0(x float64) float64 {
	sum := 1.0
	term := 1.0

	x2 := (x * x) / 4
	for k := 1; k < 64; k++ {
		term *= x2 / float64(k*k)

		sum += term
		if term < 1e-16*sum {
			break
		}
	}

	return sum
}

// Gcd returns the greatest common divisor of a and b.
// Negative inputs are treated by absolute value; Gcd(0, 0) == 1.
func Gcd(a, b int) int {
	if a < 0 {
		a = -a
	}

	if b < 0 {
		b = -b
	}

	for b != 0 {
		a, b = b, a%b
	}

	if a == 0 {
		return 1
	}

	return a
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// NextPowerOfTwo returns the smallest power of two >= n.
func NextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p *= 2
	}

	return p
}

// RoundHalfAway rounds v to the nearest integer, halves away from zero.
func RoundHalfAway(v float64) int {
	if v < 0 {
		return int(math.Ceil(v - 0.5))
	}

	return int(math.Floor(v + 0.5))
}
