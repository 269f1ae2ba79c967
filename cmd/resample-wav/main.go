// Command resample-wav converts a WAV file to a new sample rate.
//
// Usage:
//
//	resample-wav -rate 48000 input.wav output.wav
//	resample-wav -rate 44100 -taps 255 -beta 10 -fast input.wav output.wav
//
// The conversion factor is the closest rational approximation of the
// requested ratio; the WAV header carries the exact achieved rate.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/dac1976/dsp/dsp/core"
	"github.com/dac1976/dsp/dsp/resample"
)

func main() {
	rate := flag.Float64("rate", 48000, "target sample rate in Hz")
	taps := flag.Int("taps", 127, "anti-alias filter length in taps")
	beta := flag.Float64("beta", 8.6, "Kaiser window beta for the anti-alias filter")
	fast := flag.Bool("fast", true, "filter via FFT convolution")
	verbose := flag.Bool("v", false, "verbose output")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: resample-wav [flags] input.wav output.wav\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(args[0], args[1], *rate, *taps, *beta, *fast, *verbose); err != nil {
		log.Fatal(err)
	}
}

func run(inputPath, outputPath string, targetRate float64, taps int, beta float64, fast, verbose bool) error {
	in, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	decoder := wav.NewDecoder(in)
	if !decoder.IsValidFile() {
		return fmt.Errorf("not a valid WAV file: %s", inputPath)
	}
	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	inRate := buf.Format.SampleRate
	channels := buf.Format.NumChannels
	bitDepth := int(decoder.BitDepth)
	if verbose {
		log.Printf("input: %d Hz, %d channels, %d-bit, %d frames",
			inRate, channels, bitDepth, len(buf.Data)/channels)
	}

	up, down, err := resample.DefaultFactors(targetRate / float64(inRate))
	if err != nil {
		return fmt.Errorf("factor search: %w", err)
	}
	outRate := core.RoundHalfAway(float64(inRate) * float64(up) / float64(down))
	if verbose || float64(outRate) != targetRate {
		log.Printf("conversion factor %d/%d: %d Hz -> %d Hz", up, down, inRate, outRate)
	}

	scale := sampleScale(bitDepth)
	input := deinterleave(buf.Data, channels, scale)

	// One resampler pass per whole channel keeps the filter transient at
	// the file edges only.
	frameCount := len(input[0])
	resampler, err := resample.NewResampler(frameCount, up, down,
		float64(inRate), targetRate/2, taps, beta, fast)
	if err != nil {
		return fmt.Errorf("build resampler: %w", err)
	}

	output := make([][]float64, channels)
	for ch := range input {
		output[ch] = make([]float64, resampler.ResampledLen())
		if err := resampler.Resample(output[ch], input[ch]); err != nil {
			return fmt.Errorf("resample channel %d: %w", ch, err)
		}
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer out.Close()

	encoder := wav.NewEncoder(out, outRate, bitDepth, channels, 1)
	outBuf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: outRate},
		Data:           interleave(output, scale),
		SourceBitDepth: bitDepth,
	}
	if err := encoder.Write(outBuf); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("finalize output: %w", err)
	}

	if verbose {
		log.Printf("output: %d Hz, %d frames", outRate, resampler.ResampledLen())
	}
	return nil
}
