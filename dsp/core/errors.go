package core

import "errors"

// Error classes shared across the dsp packages.
//
// Every package wraps its own, more specific errors around one of these two
// sentinels so callers can classify failures with errors.Is without parsing
// messages:
//
//   - ErrConfig: construction-time parameter violations (zero/negative lengths,
//     cutoff above Nyquist, non-positive bandwidth, ...).
//   - ErrSize: call-time range violations (length mismatch, non-power-of-two
//     FFT size, range exceeding a bound workspace).
//
// All failures are detected before any destructive mutation and are recoverable
// by the caller choosing different parameters.
var (
	ErrConfig = errors.New("dsp: invalid configuration")
	ErrSize   = errors.New("dsp: invalid size")
)
