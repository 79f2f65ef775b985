package periodogram_test

import (
	"fmt"
	"math"

	"github.com/astrokit/timescales/lightcurve"
	"github.com/astrokit/timescales/periodogram"
	"github.com/astrokit/timescales/spectrum"
)

func ExampleLombScargle() {
	// A period-10 sinusoid on a regular cadence of 100 epochs.
	times := make([]float64, 100)
	fluxes := make([]float64, 100)
	for i := range times {
		times[i] = float64(i)
		fluxes[i] = math.Sin(2 * math.Pi * 0.1 * times[i])
	}

	freqs, _ := lightcurve.FreqGen(times, lightcurve.WithFreqRange(0, 0.5), lightcurve.WithFreqStep(0.01))
	power, _ := periodogram.LombScargle(times, fluxes, freqs)

	peak, _ := spectrum.Peak(power)
	fmt.Printf("peak at f=%.2f\n", freqs[peak])

	// Output:
	// peak at f=0.10
}
