package lightcurve

import (
	"fmt"
	"math"
)

type gridConfig struct {
	fMin, fMax float64
	fStep      float64
	haveRange  bool
	haveStep   bool
}

// GridOption configures [FreqGen].
type GridOption func(*gridConfig)

// WithFreqRange sets the half-open frequency range [min, max) of the grid.
// The default range is (0, PseudoNyquistFreq(times)).
func WithFreqRange(min, max float64) GridOption {
	return func(c *gridConfig) {
		c.fMin = min
		c.fMax = max
		c.haveRange = true
	}
}

// WithFreqStep sets the grid spacing. The default is 1/(2*DeltaT(times)),
// half the natural frequency resolution of the data.
func WithFreqStep(step float64) GridOption {
	return func(c *gridConfig) {
		c.fStep = step
		c.haveStep = true
	}
}

// FreqGen builds an arithmetic frequency grid suitable for the DFT and
// periodogram routines. Without options the grid runs from one step above
// zero up to (but excluding) the pseudo-Nyquist frequency, in steps of half
// the natural resolution 1/deltaT.
//
// A lower bound of exactly zero is lifted to one step, since downstream
// transforms require strictly positive frequencies.
//
// Errors from [DeltaT] and [PseudoNyquistFreq] propagate unchanged;
// non-positive steps and inverted or negative ranges return
// [ErrInvalidArgument].
func FreqGen(times []float64, opts ...GridOption) ([]float64, error) {
	var cfg gridConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if !cfg.haveStep || !cfg.haveRange {
		span, err := DeltaT(times)
		if err != nil {
			return nil, err
		}
		if !cfg.haveStep {
			cfg.fStep = 0.5 / span
		}
		if !cfg.haveRange {
			cfg.fMin = 0
			cfg.fMax = 0.5 * float64(len(times)) / span
		}
	}

	if cfg.fStep <= 0 {
		return nil, fmt.Errorf("%w: frequency step must be > 0, got %g", ErrInvalidArgument, cfg.fStep)
	}
	if cfg.fMin < 0 {
		return nil, fmt.Errorf("%w: frequency range must be non-negative, got fMin=%g", ErrInvalidArgument, cfg.fMin)
	}
	if cfg.fMax <= cfg.fMin {
		return nil, fmt.Errorf("%w: empty frequency range [%g, %g)", ErrInvalidArgument, cfg.fMin, cfg.fMax)
	}

	start := cfg.fMin
	if start == 0 {
		start = cfg.fStep
	}
	if start >= cfg.fMax {
		return nil, fmt.Errorf("%w: no grid points in [%g, %g) with step %g", ErrInvalidArgument, cfg.fMin, cfg.fMax, cfg.fStep)
	}

	// Index-based stepping avoids accumulation drift on long grids.
	n := int(math.Ceil((cfg.fMax - start) / cfg.fStep))
	grid := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		f := start + float64(i)*cfg.fStep
		if f >= cfg.fMax {
			break
		}
		grid = append(grid, f)
	}

	return grid, nil
}
