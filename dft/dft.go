// Package dft implements the discrete Fourier transform for irregularly
// sampled time series.
//
// Unlike an FFT, which requires a uniform sample grid, this package
// evaluates the literal DFT sum at an arbitrary grid of strictly positive
// frequencies. It is a reference implementation: O(N*F) time with no
// algorithmic shortcuts, intended for correctness rather than throughput.
package dft

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/astrokit/timescales/lightcurve"
)

// Transform evaluates the discrete Fourier transform of a flux series at
// each frequency in freqs:
//
//	X(f) = sum_j fluxes[j] * exp(-i * 2*pi*f * times[j])
//
// The returned spectrum has one entry per frequency, in grid order.
// Accumulation follows the input sample order in double-precision complex
// arithmetic; no windowing or detrending is applied.
//
// Preconditions, checked in order (the first violation is reported):
//
//  1. times contains at least two distinct values, else
//     [lightcurve.ErrDegenerateLightCurve]
//  2. times is sorted ascending, else [lightcurve.ErrNotSorted]
//  3. len(fluxes) == len(times), else [lightcurve.ErrInvalidArgument]
//  4. every frequency is strictly positive, else
//     [lightcurve.ErrNegativeFrequency]
//
// All validation happens before any output is allocated, and the result is
// built in a fresh slice returned only on success, so the caller's data is
// never touched by a failing call.
func Transform(times, fluxes, freqs []float64) ([]complex128, error) {
	if err := lightcurve.ValidateSampling(times); err != nil {
		return nil, err
	}
	if len(fluxes) != len(times) {
		return nil, fmt.Errorf("%w: times and fluxes are not the same length (got %d for times and %d for fluxes)",
			lightcurve.ErrInvalidArgument, len(times), len(fluxes))
	}
	if err := lightcurve.ValidateFreqs(freqs); err != nil {
		return nil, err
	}

	// No failure paths beyond this point.
	out := make([]complex128, len(freqs))
	for i, f := range freqs {
		omega := 2 * math.Pi * f
		var sum complex128
		for j, t := range times {
			sum += complex(fluxes[j], 0) * cmplx.Exp(complex(0, -omega*t))
		}
		out[i] = sum
	}

	return out, nil
}
