package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleScale(t *testing.T) {
	assert.Equal(t, 127.0, sampleScale(8))
	assert.Equal(t, 32767.0, sampleScale(16))
	assert.Equal(t, 8388607.0, sampleScale(24))
	assert.Equal(t, 2147483647.0, sampleScale(32))
	assert.Equal(t, 32767.0, sampleScale(0))
}

func TestDeinterleave(t *testing.T) {
	data := []int{100, -200, 300, -400, 500, -600}
	chans := deinterleave(data, 2, 1000)

	require.Len(t, chans, 2)
	assert.InDeltaSlice(t, []float64{0.1, 0.3, 0.5}, chans[0], 1e-12)
	assert.InDeltaSlice(t, []float64{-0.2, -0.4, -0.6}, chans[1], 1e-12)
}

func TestInterleave(t *testing.T) {
	chans := [][]float64{
		{0.1, 0.3, 0.5},
		{-0.2, -0.4, -0.6},
	}
	got := interleave(chans, 1000)
	assert.Equal(t, []int{100, -200, 300, -400, 500, -600}, got)
}

func TestInterleaveClampsOverRange(t *testing.T) {
	got := interleave([][]float64{{1.5, -1.5}}, 1000)
	assert.Equal(t, []int{1000, -1000}, got)
}

func TestInterleaveRoundTrip(t *testing.T) {
	data := []int{32767, -32768, 0, 12345, -12345, 1}
	chans := deinterleave(data, 3, 32767)
	got := interleave(chans, 32767)

	// Full-scale negative clamps to -32767; everything else survives.
	want := []int{32767, -32767, 0, 12345, -12345, 1}
	assert.Equal(t, want, got)
}

func TestInterleaveEmpty(t *testing.T) {
	assert.Nil(t, interleave(nil, 32767))
	assert.Nil(t, interleave([][]float64{{}}, 32767))
}
