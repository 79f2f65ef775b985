// Command lcgrid prints the characteristic frequencies of a lightcurve and
// the strongest peaks of its Lomb-Scargle periodogram.
//
// Usage:
//
//	lcgrid [flags] [lightcurve-file]
//
// The input file holds one observation per line as "time flux", with '#'
// comments. Without a file argument, -synth generates a noisy sinusoid on
// an irregular cadence.
//
// Examples:
//
//	lcgrid observations.txt
//	lcgrid -peaks 10 -step 0.001 observations.txt
//	lcgrid -synth -n 200 -span 100 -freq 0.37
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/astrokit/timescales/lightcurve"
	"github.com/astrokit/timescales/periodogram"
	"github.com/astrokit/timescales/spectrum"
)

func main() {
	peaks := flag.Int("peaks", 5, "number of periodogram peaks to report")
	step := flag.Float64("step", 0, "frequency grid step (default 1/(2*deltaT))")
	synth := flag.Bool("synth", false, "generate a synthetic lightcurve instead of reading a file")
	n := flag.Int("n", 100, "synthetic: number of observations")
	span := flag.Float64("span", 100, "synthetic: time span of the cadence")
	freq := flag.Float64("freq", 0.25, "synthetic: injected sinusoid frequency")
	amp := flag.Float64("amp", 1.0, "synthetic: sinusoid amplitude")
	noise := flag.Float64("noise", 0.1, "synthetic: Gaussian noise sigma")
	seed := flag.Int64("seed", 1, "synthetic: random seed")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: lcgrid [flags] [lightcurve-file]\n\n")
		fmt.Fprintf(os.Stderr, "Prints grid statistics and periodogram peaks of a lightcurve.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	var times, fluxes []float64
	var err error

	switch {
	case *synth:
		times, fluxes, err = synthesize(*n, *span, *freq, *amp, *noise, *seed)
	case flag.NArg() == 1:
		times, fluxes, err = readLightCurve(flag.Arg(0))
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "lcgrid: %v\n", err)
		os.Exit(1)
	}

	if err := report(times, fluxes, *step, *peaks); err != nil {
		fmt.Fprintf(os.Stderr, "lcgrid: %v\n", err)
		os.Exit(1)
	}
}

func synthesize(n int, span, freq, amp, noise float64, seed int64) ([]float64, []float64, error) {
	gen := lightcurve.NewGenerator(lightcurve.WithSeed(seed))

	times, err := gen.RandomTimes(n, span)
	if err != nil {
		return nil, nil, err
	}
	fluxes, err := gen.Sine(times, freq, amp, 0)
	if err != nil {
		return nil, nil, err
	}
	if noise > 0 {
		deviates, err := gen.WhiteNoise(n, noise)
		if err != nil {
			return nil, nil, err
		}
		for i := range fluxes {
			fluxes[i] += deviates[i]
		}
	}
	return times, fluxes, nil
}

func readLightCurve(path string) ([]float64, []float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	var times, fluxes []float64
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) < 2 {
			return nil, nil, fmt.Errorf("%s:%d: expected \"time flux\", got %q", path, line, text)
		}
		t, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("%s:%d: bad time: %v", path, line, err)
		}
		x, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("%s:%d: bad flux: %v", path, line, err)
		}
		times = append(times, t)
		fluxes = append(fluxes, x)
	}
	if err := sc.Err(); err != nil {
		return nil, nil, err
	}
	return times, fluxes, nil
}

func report(times, fluxes []float64, step float64, nPeaks int) error {
	span, err := lightcurve.DeltaT(times)
	if err != nil {
		return err
	}
	pnf, err := lightcurve.PseudoNyquistFreq(times)
	if err != nil {
		return err
	}
	mf, err := lightcurve.MaxFreq(times)
	if err != nil {
		return err
	}

	var opts []lightcurve.GridOption
	if step > 0 {
		opts = append(opts, lightcurve.WithFreqStep(step))
	}
	grid, err := lightcurve.FreqGen(times, opts...)
	if err != nil {
		return err
	}

	power, err := periodogram.LombScargle(times, fluxes, grid)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "observations\t%d\n", len(times))
	fmt.Fprintf(w, "time span\t%g\n", span)
	fmt.Fprintf(w, "max frequency\t%g\n", mf)
	fmt.Fprintf(w, "pseudo-Nyquist\t%g\n", pnf)
	fmt.Fprintf(w, "grid points\t%d\n", len(grid))
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	w = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "rank\tfrequency\tperiod\tpower")

	for rank, p := range topPeaks(grid, power, nPeaks) {
		fmt.Fprintf(w, "%d\t%.6g\t%.6g\t%.4g\n", rank+1, p.freq, 1/p.freq, p.power)
	}
	return w.Flush()
}

type peak struct {
	freq, power float64
}

// topPeaks returns the k strongest local maxima of the periodogram,
// strongest first. Falls back to the global maximum when the grid is too
// short to define local maxima.
func topPeaks(freqs, power []float64, k int) []peak {
	var found []peak
	for i := 1; i < len(power)-1; i++ {
		if power[i] >= power[i-1] && power[i] > power[i+1] {
			found = append(found, peak{freqs[i], power[i]})
		}
	}
	if len(found) == 0 && len(power) > 0 {
		i, p := spectrum.Peak(power)
		found = append(found, peak{freqs[i], p})
	}

	sort.Slice(found, func(a, b int) bool { return found[a].power > found[b].power })
	if k > 0 && len(found) > k {
		found = found[:k]
	}
	return found
}
