// Package lightcurve provides sampling-grid characterization for
// irregularly sampled astronomical time series.
//
// A lightcurve is a sequence of flux measurements paired one-to-one with
// observation times. Ground- and space-based surveys rarely observe on a
// uniform grid, so the classical Nyquist frequency does not apply directly.
// This package derives the quantities that bound the useful frequency
// domain of such data:
//
//   - [DeltaT]: the total time span covered by the observations
//   - [MaxFreq]: the highest probeable frequency, 1/(2*dtMin), from the
//     smallest positive gap between consecutive observations
//   - [PseudoNyquistFreq]: the average-rate estimate N/(2*span)
//
// [FreqGen] builds arithmetic frequency grids from these bounds, suitable
// for the DFT and periodogram packages. A [Generator] produces synthetic
// lightcurves for testing and Monte Carlo simulation.
//
// All functions are pure: they never retain references to their inputs and
// never modify them, on success or failure. Failures are classified by the
// exported sentinel errors and can be tested with errors.Is.
package lightcurve
