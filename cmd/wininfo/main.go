// Command wininfo prints spectral properties of DSP window functions.
//
// Usage:
//
//	wininfo [flags] [window-name ...]
//
// Without arguments it prints info for all known window types.
//
// Examples:
//
//	wininfo hann
//	wininfo -size 1024 blackman kaiser
//	wininfo -size 4096 -beta 8 kaiser
//	wininfo -list
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/dac1976/dsp/dsp/window"
)

type windowEntry struct {
	name    string
	hasBeta bool
	build   func(beta float64) (window.Generator, error)
}

func fixed(gen window.Generator) func(float64) (window.Generator, error) {
	return func(float64) (window.Generator, error) { return gen, nil }
}

var registry = []windowEntry{
	{"rectangular", false, fixed(window.Rectangle{})},
	{"hann", false, fixed(window.Hann{})},
	{"hamming", false, fixed(window.Hamming{})},
	{"blackman", false, fixed(window.Blackman{})},
	{"exact-blackman", false, fixed(window.ExactBlackman{})},
	{"bartlett", false, fixed(window.Bartlett{})},
	{"lanczos", false, fixed(window.Lanczos{})},
	{"kaiser", true, func(beta float64) (window.Generator, error) { return window.NewKaiser(beta) }},
	{"flat-top-iso", false, fixed(window.FlatTopISO18431)},
	{"flat-top-2t", false, fixed(window.FlatTop2Term)},
	{"flat-top-alt-4t", false, fixed(window.FlatTopAlt4Term)},
	{"flat-top-hp301", false, fixed(window.FlatTopHP301)},
	{"flat-top-hp-4t", false, fixed(window.FlatTopHP4Term)},
	{"flat-top-hp401", false, fixed(window.FlatTopHP401)},
	{"flat-top-rs-4t", false, fixed(window.FlatTopRS4Term)},
}

func main() {
	size := flag.Int("size", 1024, "window length in samples")
	beta := flag.Float64("beta", 8.6, "beta parameter for the kaiser window")
	list := flag.Bool("list", false, "list available window names")
	periodic := flag.Bool("periodic", false, "use periodic (FFT) form instead of symmetric")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: wininfo [flags] [window-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints spectral properties of DSP window functions.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints info for all windows.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  wininfo hann blackman\n")
		fmt.Fprintf(os.Stderr, "  wininfo -size 4096 -beta 8 kaiser\n")
		fmt.Fprintf(os.Stderr, "  wininfo -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	names := flag.Args()
	if len(names) == 0 {
		for _, e := range registry {
			names = append(names, e.name)
		}
	}

	entries := resolveEntries(names)
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching window types\n")
		os.Exit(1)
	}

	printAnalysis(entries, *size, *beta, *periodic)
}

func printList() {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

func resolveEntries(names []string) []windowEntry {
	byName := make(map[string]windowEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	var result []windowEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown window %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, e)
	}
	return result
}

func printAnalysis(entries []windowEntry, size int, beta float64, periodic bool) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Window\tSize\tCoherent Gain\tENBW [bins]\tBW 3dB [bins]\tSidelobe [dB]\t1st Min [bins]\tScallop [dB]\n")
	fmt.Fprintf(tw, "------\t----\t-------------\t----------\t-------------\t-------------\t--------------\t-----------\n")

	for _, e := range entries {
		gen, err := e.build(beta)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", e.name, err)
			continue
		}
		win, err := window.New(gen, size, periodic)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", e.name, err)
			continue
		}
		a := win.Analyze()

		label := e.name
		if e.hasBeta {
			label = fmt.Sprintf("%s (b=%.2f)", e.name, beta)
		}

		fmt.Fprintf(tw, "%s\t%d\t%.6f\t%.4f\t%.4f\t%.2f\t%.4f\t%.4f\n",
			label,
			size,
			win.CoherentGain(),
			win.ENBW(),
			a.Bandwidth3dB,
			a.HighestSidelobedB,
			a.FirstMinimumBins,
			a.ScallopLossdB,
		)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
