package periodogram

import (
	"fmt"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/astrokit/timescales/lightcurve"
)

type simConfig struct {
	seed int64
}

// SimOption configures the Monte Carlo simulations behind [Threshold] and
// [NormalEDF].
type SimOption func(*simConfig)

// WithSeed sets the deterministic random seed for the noise simulations.
func WithSeed(seed int64) SimOption {
	return func(c *simConfig) {
		c.seed = seed
	}
}

// Threshold estimates the Lomb-Scargle power level exceeded by chance with
// probability fap (the false-alarm probability), for the given observing
// cadence and frequency grid.
//
// nSims Gaussian-noise lightcurves are simulated on the same epochs, the
// peak periodogram power of each is recorded, and the (1-fap) empirical
// quantile of those peaks is returned. Larger nSims gives a more stable
// estimate; a few hundred is typically enough for fap >= 0.01.
//
// fap must lie in (0, 1) and nSims must be >= 2, else
// [lightcurve.ErrInvalidArgument]. Sampling and frequency preconditions
// are those of [LombScargle].
func Threshold(times, freqs []float64, fap float64, nSims int, opts ...SimOption) (float64, error) {
	if fap <= 0 || fap >= 1 {
		return 0, fmt.Errorf("%w: false-alarm probability must be in (0, 1), got %g", lightcurve.ErrInvalidArgument, fap)
	}

	peaks, err := simulatePeaks(times, freqs, nSims, opts)
	if err != nil {
		return 0, err
	}

	return stat.Quantile(1-fap, stat.Empirical, peaks, nil), nil
}

// NormalEDF returns the empirical distribution function of peak
// Lomb-Scargle powers under the Gaussian-noise null hypothesis: powers is
// sorted ascending and probs[i] is the fraction of simulations whose peak
// did not exceed powers[i].
//
// The pair (powers, probs) lets a caller convert any observed peak power
// into a false-alarm probability by interpolation.
func NormalEDF(times, freqs []float64, nSims int, opts ...SimOption) (powers, probs []float64, err error) {
	peaks, err := simulatePeaks(times, freqs, nSims, opts)
	if err != nil {
		return nil, nil, err
	}

	probs = make([]float64, len(peaks))
	for i := range probs {
		probs[i] = float64(i+1) / float64(len(peaks))
	}

	return peaks, probs, nil
}

// simulatePeaks returns the sorted peak powers of nSims noise periodograms.
func simulatePeaks(times, freqs []float64, nSims int, opts []SimOption) ([]float64, error) {
	cfg := simConfig{seed: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if nSims < 2 {
		return nil, fmt.Errorf("%w: simulation count must be >= 2, got %d", lightcurve.ErrInvalidArgument, nSims)
	}
	if len(freqs) == 0 {
		return nil, fmt.Errorf("%w: frequency grid must not be empty", lightcurve.ErrInvalidArgument)
	}

	rng := rand.New(rand.NewSource(cfg.seed))
	fluxes := make([]float64, len(times))
	peaks := make([]float64, 0, nSims)

	for s := 0; s < nSims; s++ {
		for j := range fluxes {
			fluxes[j] = rng.NormFloat64()
		}

		power, err := LombScargle(times, fluxes, freqs)
		if err != nil {
			return nil, err
		}
		peaks = append(peaks, floats.Max(power))
	}

	sort.Float64s(peaks)
	return peaks, nil
}
