package periodogram

import (
	"github.com/astrokit/timescales/dft"
	"github.com/astrokit/timescales/spectrum"
)

// Window computes the spectral window function of a sampling cadence at
// each frequency in freqs: the normalized power |W(f)|^2 / N^2 of the DFT
// of a unit flux series observed at the given epochs.
//
// The window function describes how the cadence alone redistributes signal
// power across frequencies; peaks away from zero reveal aliasing
// frequencies of the observing pattern. Values lie in [0, 1], with 1
// attained where all epochs contribute in phase.
//
// Preconditions are those of [dft.Transform].
func Window(times, freqs []float64) ([]float64, error) {
	ones := make([]float64, len(times))
	for i := range ones {
		ones[i] = 1
	}

	spec, err := dft.Transform(times, ones, freqs)
	if err != nil {
		return nil, err
	}

	out := spectrum.Power(spec)
	scale := 1 / (float64(len(times)) * float64(len(times)))
	for i := range out {
		out[i] *= scale
	}

	return out, nil
}
