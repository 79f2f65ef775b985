package lightcurve

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// Generator creates deterministic synthetic lightcurves for tests and
// Monte Carlo simulation.
type Generator struct {
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the deterministic random seed used for noise and random
// sampling epochs.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured lightcurve generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{seed: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Sine returns a sinusoidal flux series sampled at the given epochs:
// amplitude * sin(2*pi*freq*t + phase).
//
// The epochs may be arbitrarily spaced; no uniformity is assumed.
func (g *Generator) Sine(times []float64, freq, amplitude, phase float64) ([]float64, error) {
	if len(times) == 0 {
		return nil, fmt.Errorf("%w: sine requires at least one epoch", ErrInvalidArgument)
	}
	if freq <= 0 {
		return nil, fmt.Errorf("%w: sine frequency %g", ErrNegativeFrequency, freq)
	}

	out := make([]float64, len(times))
	omega := 2 * math.Pi * freq
	for i, t := range times {
		out[i] = amplitude * math.Sin(omega*t+phase)
	}
	return out, nil
}

// WhiteNoise returns n deterministic Gaussian flux deviates with standard
// deviation sigma and zero mean.
func (g *Generator) WhiteNoise(n int, sigma float64) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: noise length must be > 0, got %d", ErrInvalidArgument, n)
	}
	if sigma < 0 {
		return nil, fmt.Errorf("%w: noise sigma must be >= 0, got %g", ErrInvalidArgument, sigma)
	}

	out := make([]float64, n)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = rng.NormFloat64() * sigma
	}
	return out, nil
}

// RandomTimes returns n observation epochs drawn uniformly from [0, span)
// and sorted ascending, emulating an irregular observing cadence.
func (g *Generator) RandomTimes(n int, span float64) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: random cadence requires at least 2 epochs, got %d", ErrInvalidArgument, n)
	}
	if span <= 0 {
		return nil, fmt.Errorf("%w: cadence span must be > 0, got %g", ErrInvalidArgument, span)
	}

	out := make([]float64, n)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = rng.Float64() * span
	}
	sort.Float64s(out)
	return out, nil
}
