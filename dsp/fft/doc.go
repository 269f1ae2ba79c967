// Package fft provides an in-place complex FFT for power-of-two sizes,
// spectrum reductions derived from it, and an FFT-based linear convolver.
//
// Forward computes the unnormalized discrete Fourier transform using an
// iterative Cooley-Tukey butterfly followed by a bit-reversal permutation.
// Inverse undoes a denormalized spectrum via the conjugation trick and
// scales by 1/N.
//
// The reduction helpers (ToMagnitude, ToPower, ToPsd, To3BinSum) collapse
// a complex spectrum into real per-bin values. By default they operate on
// the first N/2 bins only, since for real input the negative half mirrors
// the positive half; pass fullSpectrum to process every bin.
//
// For repeated spectral convolution with fixed operand lengths, use
// Convolver, which reuses its transform workspaces across calls.
package fft
