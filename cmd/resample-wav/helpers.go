package main

import "github.com/dac1976/dsp/dsp/core"

// sampleScale returns the full-scale PCM value for a bit depth.
func sampleScale(bitDepth int) float64 {
	switch bitDepth {
	case 8:
		return 127
	case 24:
		return 8388607
	case 32:
		return 2147483647
	default:
		return 32767
	}
}

// deinterleave splits interleaved PCM frames into per-channel slices
// normalized to [-1, 1].
func deinterleave(data []int, channels int, scale float64) [][]float64 {
	frames := len(data) / channels
	out := make([][]float64, channels)
	for ch := range out {
		out[ch] = make([]float64, frames)
	}
	for i := 0; i < frames; i++ {
		for ch := 0; ch < channels; ch++ {
			out[ch][i] = float64(data[i*channels+ch]) / scale
		}
	}
	return out
}

// interleave merges per-channel [-1, 1] slices back into clamped
// interleaved PCM frames.
func interleave(chans [][]float64, scale float64) []int {
	if len(chans) == 0 || len(chans[0]) == 0 {
		return nil
	}
	channels := len(chans)
	frames := len(chans[0])
	out := make([]int, frames*channels)
	for i := 0; i < frames; i++ {
		for ch := 0; ch < channels; ch++ {
			v := core.Clamp(chans[ch][i], -1, 1)
			out[i*channels+ch] = core.RoundHalfAway(v * scale)
		}
	}
	return out
}
