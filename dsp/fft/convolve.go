package fft

import (
	"fmt"
	"math"

	"github.com/dac1976/dsp/dsp/core"
)

// Errors returned by the Convolver.
var (
	ErrInvalidLength = fmt.Errorf("fft: length must be positive: %w", core.ErrConfig)
	ErrRangeTooLong  = fmt.Errorf("fft: range exceeds workspace: %w", core.ErrSize)
	ErrResultLength  = fmt.Errorf("fft: result length mismatch: %w", core.ErrSize)
)

// Convolver performs linear convolution in the frequency domain.
// It is sized once for a (signal, kernel) length pair and reuses its
// transform workspaces on every call, so repeated convolution with the
// same operand lengths does not allocate.
type Convolver struct {
	convLen    int
	workspace1 []complex128
	workspace2 []complex128
}

// NewConvolver creates a convolver for the given operand lengths.
// Both lengths must be positive. The workspaces are sized to the smallest
// power of two strictly greater than signalLen+kernelLen-1, which leaves
// extra headroom over the minimum transform size. The margin is kept
// deliberately so size-estimate rounding can never cause circular aliasing.
func NewConvolver(signalLen, kernelLen int) (*Convolver, error) {
	if signalLen <= 0 {
		return nil, fmt.Errorf("%w (signal length %d)", ErrInvalidLength, signalLen)
	}
	if kernelLen <= 0 {
		return nil, fmt.Errorf("%w (kernel length %d)", ErrInvalidLength, kernelLen)
	}

	convLen := signalLen + kernelLen - 1
	powerOfTwo := int(math.Floor(math.Log2(float64(convLen))) + 0.5)
	workspaceLen := 1 << (powerOfTwo + 1)

	return &Convolver{
		convLen:    convLen,
		workspace1: make([]complex128, workspaceLen),
		workspace2: make([]complex128, workspaceLen),
	}, nil
}

// ResultLen returns the length of the linear convolution result,
// signalLen + kernelLen - 1.
func (c *Convolver) ResultLen() int {
	return c.convLen
}

// Convolve computes the linear convolution of signal and kernel into dst.
// dst must have length ResultLen(). Either operand may be shorter than the
// length the convolver was sized for, but neither may exceed its workspace.
func (c *Convolver) Convolve(dst, signal, kernel []float64) error {
	if len(signal) > len(c.workspace1) {
		return fmt.Errorf("%w (signal length %d, capacity %d)",
			ErrRangeTooLong, len(signal), len(c.workspace1))
	}
	if len(kernel) > len(c.workspace2) {
		return fmt.Errorf("%w (kernel length %d, capacity %d)",
			ErrRangeTooLong, len(kernel), len(c.workspace2))
	}
	if len(dst) != c.convLen {
		return fmt.Errorf("%w (have %d, want %d)", ErrResultLength, len(dst), c.convLen)
	}

	fillComplex(c.workspace1, signal)
	fillComplex(c.workspace2, kernel)

	if err := Forward(c.workspace1); err != nil {
		return err
	}
	if err := Forward(c.workspace2); err != nil {
		return err
	}

	for i := range c.workspace1 {
		c.workspace1[i] *= c.workspace2[i]
	}

	if err := Inverse(c.workspace1); err != nil {
		return err
	}

	for i := 0; i < c.convLen; i++ {
		dst[i] = real(c.workspace1[i])
	}
	return nil
}

// fillComplex copies src into the head of dst and zero-pads the tail.
func fillComplex(dst []complex128, src []float64) {
	for i, v := range src {
		dst[i] = complex(v, 0)
	}
	core.ZeroComplex(dst[len(src):])
}
