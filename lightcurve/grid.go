package lightcurve

import (
	"fmt"
	"sort"
)

// DeltaT returns the length of time covered by the observations, i.e. the
// difference between the latest and the earliest entry of times.
//
// times need not be sorted: a single scan tracks the running minimum and
// maximum. Returns [ErrInvalidArgument] if times has fewer than two
// entries, and [ErrDegenerateLightCurve] if all entries coincide.
func DeltaT(times []float64) (float64, error) {
	if len(times) < 2 {
		return 0, fmt.Errorf("%w: deltaT requires at least 2 observations, got %d", ErrInvalidArgument, len(times))
	}

	tMin := times[0]
	tMax := times[0]

	for _, t := range times[1:] {
		if t < tMin {
			tMin = t
		}
		if t > tMax {
			tMax = t
		}
	}

	if tMax <= tMin {
		return 0, fmt.Errorf("%w: times contains only one unique value", ErrDegenerateLightCurve)
	}

	return tMax - tMin, nil
}

// MaxFreq returns the highest frequency that can be probed by the data,
// defined as 1/(2*dtMin) where dtMin is the smallest strictly positive
// interval between consecutive observations.
//
// times must be sorted ascending. Returns [ErrInvalidArgument] for fewer
// than two entries, [ErrNotSorted] if the order precondition is violated,
// and [ErrDegenerateLightCurve] if no positive gap exists.
//
// When several gaps share the minimum, the first one seen wins; since the
// gaps are equal the result is unaffected.
func MaxFreq(times []float64) (float64, error) {
	if len(times) < 2 {
		return 0, fmt.Errorf("%w: maxFreq requires at least 2 observations, got %d", ErrInvalidArgument, len(times))
	}

	// O(N) order check, cheaper than sorting or a pairwise scan.
	if !sort.Float64sAreSorted(times) {
		return 0, fmt.Errorf("%w: times", ErrNotSorted)
	}

	minGap := 0.0
	for i := 1; i < len(times); i++ {
		gap := times[i] - times[i-1]
		if gap > 0 && (gap < minGap || minGap == 0) {
			minGap = gap
		}
	}

	if minGap == 0 {
		return 0, fmt.Errorf("%w: times contains only one unique value", ErrDegenerateLightCurve)
	}

	return 0.5 / minGap, nil
}

// PseudoNyquistFreq returns the pseudo-Nyquist frequency N/(2*deltaT), the
// average-sampling-rate analogue of the Nyquist frequency. Contrast with
// [MaxFreq], which is the worst-case bound from the finest gap present.
//
// Input validation is delegated to [DeltaT]; the same error conditions
// apply.
func PseudoNyquistFreq(times []float64) (float64, error) {
	span, err := DeltaT(times)
	if err != nil {
		return 0, err
	}

	return 0.5 * float64(len(times)) / span, nil
}
