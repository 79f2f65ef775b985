// Package periodogram provides frequency-domain power estimates for
// irregularly sampled lightcurves: the Lomb-Scargle periodogram, the
// spectral window function of a sampling cadence, and Monte Carlo
// significance estimates for periodogram peaks.
package periodogram

import (
	"fmt"
	"math"

	"github.com/astrokit/timescales/lightcurve"
)

// LombScargle computes the normalized Lomb-Scargle periodogram of a flux
// series at each frequency in freqs.
//
// The estimate follows Scargle (1982): for each frequency a time offset tau
// is chosen so that the sine and cosine terms decouple, and the power is
// normalized by twice the sample variance of the fluxes. For a pure
// sinusoid the periodogram peaks at the injected frequency with power of
// order N/2.
//
// Preconditions match [github.com/astrokit/timescales/dft.Transform]: at
// least two distinct sorted times, equal-length fluxes, strictly positive
// frequencies. Additionally the fluxes must not all coincide, since the
// normalization divides by their variance; that case reports
// [lightcurve.ErrDegenerateLightCurve].
func LombScargle(times, fluxes, freqs []float64) ([]float64, error) {
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

	n := float64(len(fluxes))
	mean := 0.0
	for _, x := range fluxes {
		mean += x
	}
	mean /= n

	variance := 0.0
	for _, x := range fluxes {
		d := x - mean
		variance += d * d
	}
	variance /= n - 1

	if variance == 0 {
		return nil, fmt.Errorf("%w: fluxes contains only one unique value", lightcurve.ErrDegenerateLightCurve)
	}

	out := make([]float64, len(freqs))
	for i, f := range freqs {
		omega := 2 * math.Pi * f

		// Offset tau decouples the sine and cosine sums.
		var s2, c2 float64
		for _, t := range times {
			s, c := math.Sincos(2 * omega * t)
			s2 += s
			c2 += c
		}
		tau := math.Atan2(s2, c2) / (2 * omega)

		var cs, ss, cc, sq float64
		for j, t := range times {
			s, c := math.Sincos(omega * (t - tau))
			d := fluxes[j] - mean
			cs += d * c
			ss += d * s
			cc += c * c
			sq += s * s
		}

		p := 0.0
		if cc > 0 {
			p += cs * cs / cc
		}
		if sq > 0 {
			p += ss * ss / sq
		}
		out[i] = p / (2 * variance)
	}

	return out, nil
}
