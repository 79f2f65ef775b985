// Package acf estimates autocorrelation functions of irregularly sampled
// lightcurves.
//
// Direct autocorrelation is undefined on an irregular grid, so the series
// is first resampled onto a uniform grid whose spacing matches the highest
// probeable frequency of the cadence (see lightcurve.MaxFreq), the ACF of
// the resampled series is computed with a zero-padded FFT, and the result
// is read back at the requested lag offsets. The sampling-window ACF from
// [Window] describes the contribution of the cadence itself.
package acf

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/astrokit/timescales/lightcurve"
)

// AutoCorr computes the normalized autocorrelation function of a flux
// series at the given lag offsets, using the cadence's own
// [lightcurve.MaxFreq] to choose the resampling rate.
//
// times must be sorted ascending with at least two distinct values; fluxes
// must have the same length; offsets must be non-negative, ascending, and
// within the observed time span. The ACF is normalized so that zero lag
// equals 1; the flux mean is subtracted before correlating.
func AutoCorr(times, fluxes, offsets []float64) ([]float64, error) {
	mf, err := lightcurve.MaxFreq(times)
	if err != nil {
		return nil, err
	}
	return AutoCorrMaxFreq(times, fluxes, offsets, mf)
}

// AutoCorrMaxFreq is [AutoCorr] with an explicit frequency bound. Smaller
// values of maxFreq give a coarser resampling grid and a cheaper, smoother
// estimate; maxFreq must be strictly positive.
func AutoCorrMaxFreq(times, fluxes, offsets []float64, maxFreq float64) ([]float64, error) {
	if err := lightcurve.ValidateSampling(times); err != nil {
		return nil, err
	}
	if len(fluxes) != len(times) {
		return nil, fmt.Errorf("%w: times and fluxes are not the same length (got %d for times and %d for fluxes)",
			lightcurve.ErrInvalidArgument, len(times), len(fluxes))
	}

	x, dt, err := resample(times, fluxes, maxFreq)
	if err != nil {
		return nil, err
	}

	// Correlate the mean-subtracted series.
	mean := 0.0
	for _, v := range x {
		mean += v
	}
	mean /= float64(len(x))
	for i := range x {
		x[i] -= mean
	}

	return sampleACF(x, dt, offsets)
}

// Window computes the normalized autocorrelation of the sampling window
// itself: the ACF that a constant unit flux observed at the given epochs
// would produce. It isolates the cadence's contribution to [AutoCorr]
// output. Window at zero offset is 1 by construction.
func Window(times, offsets []float64) ([]float64, error) {
	if err := lightcurve.ValidateSampling(times); err != nil {
		return nil, err
	}

	mf, err := lightcurve.MaxFreq(times)
	if err != nil {
		return nil, err
	}

	x, dt, err := resample(times, ones(len(times)), mf)
	if err != nil {
		return nil, err
	}

	return sampleACF(x, dt, offsets)
}

func ones(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}
	return out
}

// resample interpolates the series onto a uniform grid of spacing
// 1/(2*maxFreq) spanning [times[0], times[len-1]].
func resample(times, fluxes []float64, maxFreq float64) ([]float64, float64, error) {
	if maxFreq <= 0 {
		return nil, 0, fmt.Errorf("%w: maxFreq must be > 0, got %g", lightcurve.ErrInvalidArgument, maxFreq)
	}

	dt := 0.5 / maxFreq
	span := times[len(times)-1] - times[0]
	m := int(span/dt) + 1
	if m < 2 {
		m = 2
	}

	out := make([]float64, m)
	j := 0
	for i := 0; i < m; i++ {
		t := times[0] + float64(i)*dt

		// Advance to the segment containing t. Equal timestamps collapse
		// to the last value observed at that epoch.
		for j < len(times)-2 && times[j+1] <= t {
			j++
		}

		t0, t1 := times[j], times[j+1]
		if t1 == t0 {
			out[i] = fluxes[j+1]
			continue
		}
		if t >= t1 {
			out[i] = fluxes[j+1]
			continue
		}

		w := (t - t0) / (t1 - t0)
		out[i] = fluxes[j] + w*(fluxes[j+1]-fluxes[j])
	}

	return out, dt, nil
}

// sampleACF computes the FFT-based autocorrelation of x (grid spacing dt),
// normalizes it to the zero lag, and reads it back at the given offsets by
// linear interpolation between lag bins.
func sampleACF(x []float64, dt float64, offsets []float64) ([]float64, error) {
	if err := lightcurve.ValidateOffsets(offsets); err != nil {
		return nil, err
	}
	maxLag := float64(len(x)-1) * dt
	if len(offsets) > 0 && offsets[len(offsets)-1] > maxLag {
		return nil, fmt.Errorf("%w: offset %g exceeds the observed span %g",
			lightcurve.ErrInvalidArgument, offsets[len(offsets)-1], maxLag)
	}

	raw, err := autoCorrelate(x)
	if err != nil {
		return nil, err
	}
	if raw[0] <= 0 {
		return nil, fmt.Errorf("%w: series has no variance at zero lag", lightcurve.ErrDegenerateLightCurve)
	}

	inv := 1 / raw[0]
	out := make([]float64, len(offsets))
	for i, off := range offsets {
		lag := off / dt
		k := int(lag)
		if k >= len(raw)-1 {
			out[i] = raw[len(raw)-1] * inv
			continue
		}
		w := lag - float64(k)
		out[i] = (raw[k] + w*(raw[k+1]-raw[k])) * inv
	}

	return out, nil
}

// autoCorrelate returns the linear autocorrelation of x at lags 0..len(x)-1
// via a zero-padded FFT: r[k] = sum_i x[i]*x[i+k].
func autoCorrelate(x []float64) ([]float64, error) {
	fftSize := nextPowerOf2(2*len(x) - 1)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("acf: failed to create FFT plan: %w", err)
	}

	work := make([]complex128, fftSize)
	for i, v := range x {
		work[i] = complex(v, 0)
	}

	if err := plan.Forward(work, work); err != nil {
		return nil, fmt.Errorf("acf: forward FFT failed: %w", err)
	}

	for i, c := range work {
		re := real(c)
		im := imag(c)
		work[i] = complex(re*re+im*im, 0)
	}

	if err := plan.Inverse(work, work); err != nil {
		return nil, fmt.Errorf("acf: inverse FFT failed: %w", err)
	}

	out := make([]float64, len(x))
	for i := range out {
		out[i] = real(work[i])
	}
	return out, nil
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
